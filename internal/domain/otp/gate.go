// Package otp gates service completion behind a one-time code the customer reads out to the partner.
package otp

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
)

const (
	CodeTTL           = 10 * time.Minute
	MaxFailedAttempts = 5

	minCode = 100000
	maxCode = 999999
)

var (
	ErrInvalidState     = errors.New("otp: order is not in progress")
	ErrNoOtpPending     = errors.New("otp: no verification pending")
	ErrExpired          = errors.New("otp: code expired")
	ErrMismatch         = errors.New("otp: code mismatch")
	ErrAttemptsExceeded = errors.New("otp: too many failed attempts, request a new code")
)

type Gate struct {
	now    func() time.Time
	random io.Reader
}

func NewGate() *Gate {
	return NewGateWith(time.Now, rand.Reader)
}

func NewGateWith(now func() time.Time, random io.Reader) *Gate {
	if now == nil {
		now = time.Now
	}
	if random == nil {
		random = rand.Reader
	}
	return &Gate{now: now, random: random}
}

// Start issues a fresh code on an in-progress order, replacing any pending one.
func (g *Gate) Start(o *entities.Order) (int, error) {
	if o.Status != entities.OrderStatusInProgress {
		return 0, ErrInvalidState
	}
	n, err := rand.Int(g.random, big.NewInt(maxCode-minCode+1))
	if err != nil {
		return 0, err
	}
	code := int(n.Int64()) + minCode
	expiry := g.now().UTC().Add(CodeTTL)

	o.ServiceOtp = &code
	o.ServiceOtpExpiry = &expiry
	o.OtpVerified = false
	o.OtpFailedAttempts = 0
	return code, nil
}

// Verify checks submitted against the pending code. A mismatch counts as a failed attempt and
// mutates the order; the caller must persist it. The fifth failure discards the code.
func (g *Gate) Verify(o *entities.Order, submitted string) error {
	if o.Status != entities.OrderStatusInProgress {
		return ErrInvalidState
	}
	if !o.OtpPending() {
		return ErrNoOtpPending
	}
	if o.ServiceOtpExpiry != nil && g.now().After(*o.ServiceOtpExpiry) {
		return ErrExpired
	}

	value, err := strconv.Atoi(strings.TrimSpace(submitted))
	if err != nil || value != *o.ServiceOtp {
		o.OtpFailedAttempts++
		if o.OtpFailedAttempts >= MaxFailedAttempts {
			o.ServiceOtp = nil
			o.ServiceOtpExpiry = nil
			return ErrAttemptsExceeded
		}
		return ErrMismatch
	}

	o.OtpVerified = true
	o.ServiceOtp = nil
	o.ServiceOtpExpiry = nil
	o.OtpFailedAttempts = 0
	return nil
}
