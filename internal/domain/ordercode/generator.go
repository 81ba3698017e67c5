// Package ordercode generates human-readable order identifiers.
//
// A code is Prefix + 6 base-36 characters of the Unix-millisecond clock + 4 random
// alphanumerics, e.g. FBORD1A2B3CX9QZ. Uniqueness is decided by the store: Generate hands each
// candidate to a claim function and retries on collision.
package ordercode

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	Prefix         = "FBORD"
	TimestampWidth = 6
	SuffixWidth    = 4
	Length         = len(Prefix) + TimestampWidth + SuffixWidth
	MaxAttempts    = 3

	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	// ErrCodeTaken is returned by a claim function when the candidate already exists.
	ErrCodeTaken = errors.New("ordercode: code already taken")
	// ErrGenerationExhausted means every attempt collided. Safe to retry the whole request.
	ErrGenerationExhausted = errors.New("ordercode: generation exhausted")
)

// ClaimFunc persists a candidate code. It returns ErrCodeTaken on collision.
type ClaimFunc func(ctx context.Context, code string) error

type Generator struct {
	now    func() time.Time
	random io.Reader
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now, random: rand.Reader}
}

// NewGeneratorWith allows tests to pin the clock and the random source.
func NewGeneratorWith(now func() time.Time, random io.Reader) *Generator {
	if now == nil {
		now = time.Now
	}
	if random == nil {
		random = rand.Reader
	}
	return &Generator{now: now, random: random}
}

// Candidate builds one code. It does not check uniqueness.
func (g *Generator) Candidate() (string, error) {
	suffix, err := g.randomSuffix()
	if err != nil {
		return "", err
	}
	return Prefix + timestampFragment(g.now()) + suffix, nil
}

// Generate claims a fresh candidate up to MaxAttempts times.
func (g *Generator) Generate(ctx context.Context, claim ClaimFunc) (string, error) {
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		code, err := g.Candidate()
		if err != nil {
			return "", err
		}
		err = claim(ctx, code)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, ErrCodeTaken) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %d attempts collided", ErrGenerationExhausted, MaxAttempts)
}

// Valid reports whether code has the generator's shape.
func Valid(code string) bool {
	if len(code) != Length || !strings.HasPrefix(code, Prefix) {
		return false
	}
	for _, r := range code[len(Prefix):] {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}

func timestampFragment(t time.Time) string {
	s := strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
	if len(s) >= TimestampWidth {
		return s[len(s)-TimestampWidth:]
	}
	return strings.Repeat("0", TimestampWidth-len(s)) + s
}

func (g *Generator) randomSuffix() (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	var b strings.Builder
	b.Grow(SuffixWidth)
	for i := 0; i < SuffixWidth; i++ {
		n, err := rand.Int(g.random, max)
		if err != nil {
			return "", fmt.Errorf("ordercode: random suffix: %w", err)
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}
