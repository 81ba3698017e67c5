package otp

import (
	"bytes"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestGate(c *clock) *Gate {
	return NewGateWith(c.now, bytes.NewReader(make([]byte, 64)))
}

func inProgress() entities.Order {
	return entities.Order{ID: "order-1", Status: entities.OrderStatusInProgress}
}

func TestGate_Start(t *testing.T) {
	c := &clock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}

	t.Run("requires in progress", func(t *testing.T) {
		for _, s := range []entities.OrderStatus{
			entities.OrderStatusInCart, entities.OrderStatusPending, entities.OrderStatusAssigned,
			entities.OrderStatusCompleted, entities.OrderStatusCancelled,
		} {
			o := entities.Order{Status: s}
			if _, err := newTestGate(c).Start(&o); !errors.Is(err, ErrInvalidState) {
				t.Fatalf("%s: expected ErrInvalidState, got %v", s, err)
			}
			if o.ServiceOtp != nil {
				t.Fatalf("%s: otp must not be stored", s)
			}
		}
	})

	t.Run("stores code with expiry and resets verification", func(t *testing.T) {
		o := inProgress()
		o.OtpVerified = true
		o.OtpFailedAttempts = 3

		code, err := newTestGate(c).Start(&o)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code != 100000 || o.ServiceOtp == nil || *o.ServiceOtp != code {
			t.Fatalf("unexpected code %d stored %v", code, o.ServiceOtp)
		}
		if !o.ServiceOtpExpiry.Equal(c.t.Add(CodeTTL)) {
			t.Fatalf("unexpected expiry %v", o.ServiceOtpExpiry)
		}
		if o.OtpVerified || o.OtpFailedAttempts != 0 {
			t.Fatalf("expected verification state reset: %+v", o)
		}
	})

	t.Run("codes are six digits", func(t *testing.T) {
		g := NewGate()
		for i := 0; i < 200; i++ {
			o := inProgress()
			code, err := g.Start(&o)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if code < 100000 || code > 999999 {
				t.Fatalf("code out of range: %d", code)
			}
		}
	})
}

func started(t *testing.T, c *clock) (entities.Order, int) {
	t.Helper()
	o := inProgress()
	code, err := newTestGate(c).Start(&o)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return o, code
}

func TestGate_Verify(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("no otp pending", func(t *testing.T) {
		o := inProgress()
		if err := newTestGate(&clock{t: start}).Verify(&o, "123456"); !errors.Is(err, ErrNoOtpPending) {
			t.Fatalf("expected ErrNoOtpPending, got %v", err)
		}
	})

	t.Run("wrong state", func(t *testing.T) {
		c := &clock{t: start}
		o, code := started(t, c)
		o.Status = entities.OrderStatusCancelled
		if err := newTestGate(c).Verify(&o, strconv.Itoa(code)); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("success is one shot", func(t *testing.T) {
		c := &clock{t: start}
		o, code := started(t, c)
		g := newTestGate(c)

		if err := g.Verify(&o, " "+strconv.Itoa(code)+" "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !o.OtpVerified || o.ServiceOtp != nil || o.ServiceOtpExpiry != nil {
			t.Fatalf("expected verified and cleared: %+v", o)
		}
		if err := g.Verify(&o, strconv.Itoa(code)); !errors.Is(err, ErrNoOtpPending) {
			t.Fatalf("expected reuse to fail with ErrNoOtpPending, got %v", err)
		}
	})

	t.Run("numeric comparison", func(t *testing.T) {
		c := &clock{t: start}
		o, code := started(t, c)
		if err := newTestGate(c).Verify(&o, "0"+strconv.Itoa(code)); err != nil {
			t.Fatalf("expected leading zero to match numerically, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		c := &clock{t: start}
		o, code := started(t, c)
		c.t = start.Add(CodeTTL + time.Second)
		if err := newTestGate(c).Verify(&o, strconv.Itoa(code)); !errors.Is(err, ErrExpired) {
			t.Fatalf("expected ErrExpired, got %v", err)
		}
		if o.OtpVerified {
			t.Fatalf("must not verify after expiry")
		}
	})

	t.Run("exactly at expiry still valid", func(t *testing.T) {
		c := &clock{t: start}
		o, code := started(t, c)
		c.t = start.Add(CodeTTL)
		if err := newTestGate(c).Verify(&o, strconv.Itoa(code)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mismatch counts attempts", func(t *testing.T) {
		c := &clock{t: start}
		o, code := started(t, c)
		g := newTestGate(c)

		if err := g.Verify(&o, "999999"); !errors.Is(err, ErrMismatch) {
			t.Fatalf("expected ErrMismatch, got %v", err)
		}
		if err := g.Verify(&o, "abc"); !errors.Is(err, ErrMismatch) {
			t.Fatalf("expected ErrMismatch for non numeric input, got %v", err)
		}
		if o.OtpFailedAttempts != 2 || o.OtpVerified {
			t.Fatalf("unexpected state: %+v", o)
		}
		if err := g.Verify(&o, strconv.Itoa(code)); err != nil {
			t.Fatalf("expected success after mismatches, got %v", err)
		}
		if o.OtpFailedAttempts != 0 {
			t.Fatalf("expected attempts reset, got %d", o.OtpFailedAttempts)
		}
	})

	t.Run("lockout after max attempts", func(t *testing.T) {
		c := &clock{t: start}
		o, code := started(t, c)
		g := newTestGate(c)

		for i := 1; i < MaxFailedAttempts; i++ {
			if err := g.Verify(&o, "999999"); !errors.Is(err, ErrMismatch) {
				t.Fatalf("attempt %d: expected ErrMismatch, got %v", i, err)
			}
		}
		if err := g.Verify(&o, "999999"); !errors.Is(err, ErrAttemptsExceeded) {
			t.Fatalf("expected ErrAttemptsExceeded, got %v", err)
		}
		if o.ServiceOtp != nil || o.ServiceOtpExpiry != nil {
			t.Fatalf("expected code discarded: %+v", o)
		}
		if err := g.Verify(&o, strconv.Itoa(code)); !errors.Is(err, ErrNoOtpPending) {
			t.Fatalf("expected ErrNoOtpPending after lockout, got %v", err)
		}

		if _, err := g.Start(&o); err != nil {
			t.Fatalf("restart: %v", err)
		}
		if o.OtpFailedAttempts != 0 {
			t.Fatalf("expected counter reset on restart")
		}
	})
}
