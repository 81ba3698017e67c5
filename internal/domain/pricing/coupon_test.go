package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestMatchRule(t *testing.T) {
	c := entities.Coupon{ApplicableTo: []entities.CouponRule{
		{ApplicationTypeID: "app-1", ServiceTypeIDs: []string{"svc-1", "svc-2"}},
		{ApplicationTypeID: "app-2"},
	}}

	cases := []struct {
		name      string
		serviceID string
		appTypeID string
		want      bool
	}{
		{name: "listed service", serviceID: "svc-2", appTypeID: "app-1", want: true},
		{name: "unlisted service", serviceID: "svc-3", appTypeID: "app-1", want: false},
		{name: "wildcard rule", serviceID: "anything", appTypeID: "app-2", want: true},
		{name: "service id alone is not enough", serviceID: "svc-1", appTypeID: "app-9", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, got := MatchRule(c, tc.serviceID, tc.appTypeID); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestMatchRule_FirstMatchWins(t *testing.T) {
	c := entities.Coupon{ApplicableTo: []entities.CouponRule{
		{ApplicationTypeID: "app-1"},
		{ApplicationTypeID: "app-1", ServiceTypeIDs: []string{"svc-1"}},
	}}
	rule, ok := MatchRule(c, "svc-1", "app-1")
	if !ok || len(rule.ServiceTypeIDs) != 0 {
		t.Fatalf("expected the wildcard rule, got %+v", rule)
	}
}

func TestEvaluateCoupon(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	base := decimal.NewFromInt(900)

	t.Run("uncapped", func(t *testing.T) {
		got, err := EvaluateCoupon(januaryCoupon(20, nil), "svc-1", "app-1", base, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(decimal.NewFromInt(180)) {
			t.Fatalf("expected 180, got %s", got)
		}
	})

	t.Run("capped", func(t *testing.T) {
		got, err := EvaluateCoupon(januaryCoupon(20, ptr(150.0)), "svc-1", "app-1", base, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(decimal.NewFromInt(150)) {
			t.Fatalf("expected 150, got %s", got)
		}
	})

	t.Run("cap above raw amount leaves it alone", func(t *testing.T) {
		got, err := EvaluateCoupon(januaryCoupon(20, ptr(500.0)), "svc-1", "app-1", base, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(decimal.NewFromInt(180)) {
			t.Fatalf("expected 180, got %s", got)
		}
	})

	t.Run("before validity window", func(t *testing.T) {
		early := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
		_, err := EvaluateCoupon(januaryCoupon(20, nil), "svc-1", "app-1", base, early)
		if !errors.Is(err, ErrCouponInapplicable) {
			t.Fatalf("expected ErrCouponInapplicable, got %v", err)
		}
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		c := januaryCoupon(20, nil)
		if _, err := EvaluateCoupon(c, "svc-1", "app-1", base, c.ValidFrom); err != nil {
			t.Fatalf("expected valid at ValidFrom, got %v", err)
		}
		if _, err := EvaluateCoupon(c, "svc-1", "app-1", base, c.ValidUntil); err != nil {
			t.Fatalf("expected valid at ValidUntil, got %v", err)
		}
	})
}
