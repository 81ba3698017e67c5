package pricing

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
)

type stubCoupons map[string]entities.Coupon

func (s stubCoupons) FindByCode(_ context.Context, code string) (entities.Coupon, error) {
	return s[code], nil
}

type failingCoupons struct{}

func (failingCoupons) FindByCode(context.Context, string) (entities.Coupon, error) {
	return entities.Coupon{}, errors.New("db")
}

func ptr[T any](v T) *T { return &v }

func fixedNow(t time.Time) func() time.Time { return func() time.Time { return t } }

var checkoutTime = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func baseOrder() entities.Order {
	return entities.Order{
		ID:                "order-1",
		CatalogItemID:     "svc-1",
		ApplicationTypeID: "app-1",
		BaseCost:          800,
		Quantity:          1,
		Status:            entities.OrderStatusInCart,
	}
}

func liveService(price string, pct float64, until *time.Time) *entities.ServiceSnapshot {
	return &entities.ServiceSnapshot{
		ServiceID:          "svc-1",
		ApplicationTypeID:  "app-1",
		Price:              price,
		DiscountPercentage: pct,
		DiscountValidUntil: until,
		IsActive:           true,
	}
}

func januaryCoupon(pct float64, limit *float64) entities.Coupon {
	return entities.Coupon{
		Code:               "SAVE20",
		DiscountPercentage: pct,
		MaxDiscountAmount:  limit,
		ValidFrom:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:         time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
		IsActive:           true,
		ApplicableTo:       []entities.CouponRule{{ApplicationTypeID: "app-1"}},
	}
}

func assertInvariant(t *testing.T, s entities.PricingSnapshot) {
	t.Helper()
	want := math.Max(0, s.OriginalServiceCost-s.ServiceLevelDiscountAmount-s.CouponDiscountAmount)
	if math.Abs(s.FinalAmount-want) > 1e-9 {
		t.Fatalf("invariant broken: final=%v want=%v snapshot=%+v", s.FinalAmount, want, s)
	}
}

func TestEngine_ScenarioA_ServiceDiscountOnly(t *testing.T) {
	e := NewEngine(stubCoupons{}, fixedNow(checkoutTime))
	until := checkoutTime.Add(24 * time.Hour)

	s, err := e.PriceOrder(context.Background(), baseOrder(), liveService("1000", 10, &until), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.OriginalServiceCost != 1000 || s.ServiceLevelDiscountAmount != 100 || s.FinalAmount != 900 {
		t.Fatalf("unexpected snapshot: %+v", s)
	}
	if s.ServiceLevelDiscountPercentage != 10 || s.CouponCode != "" || s.CouponDiscountAmount != 0 {
		t.Fatalf("unexpected snapshot: %+v", s)
	}
	if !s.PricedAt.Equal(checkoutTime) {
		t.Fatalf("expected priced at %v, got %v", checkoutTime, s.PricedAt)
	}
	assertInvariant(t, s)
}

func TestEngine_ScenarioB_CouponClampedToCap(t *testing.T) {
	e := NewEngine(stubCoupons{"SAVE20": januaryCoupon(20, ptr(150.0))}, fixedNow(checkoutTime))

	s, err := e.PriceOrder(context.Background(), baseOrder(), liveService("1000", 10, nil), " save20 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ServiceLevelDiscountAmount != 100 {
		t.Fatalf("expected service discount 100, got %v", s.ServiceLevelDiscountAmount)
	}
	if s.CouponDiscountAmount != 150 {
		t.Fatalf("expected coupon discount clamped to 150, got %v", s.CouponDiscountAmount)
	}
	if s.FinalAmount != 750 || s.CouponCode != "SAVE20" {
		t.Fatalf("unexpected snapshot: %+v", s)
	}
	assertInvariant(t, s)
}

func TestEngine_ScenarioC_ExpiredCoupon(t *testing.T) {
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	e := NewEngine(stubCoupons{"SAVE20": januaryCoupon(20, nil)}, fixedNow(feb))

	_, err := e.PriceOrder(context.Background(), baseOrder(), liveService("1000", 0, nil), "SAVE20")
	if !errors.Is(err, ErrCouponInapplicable) {
		t.Fatalf("expected ErrCouponInapplicable, got %v", err)
	}

	s, err := e.PriceOrder(context.Background(), baseOrder(), liveService("1000", 0, nil), "")
	if err != nil {
		t.Fatalf("expected checkout without coupon to succeed, got %v", err)
	}
	if s.FinalAmount != 1000 {
		t.Fatalf("expected 1000, got %v", s.FinalAmount)
	}
}

func TestEngine_CouponComputedAfterServiceDiscount(t *testing.T) {
	e := NewEngine(stubCoupons{"SAVE20": januaryCoupon(20, nil)}, fixedNow(checkoutTime))

	s, err := e.PriceOrder(context.Background(), baseOrder(), liveService("1000", 10, nil), "SAVE20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 20% of 900, not of 1000.
	if s.CouponDiscountAmount != 180 || s.FinalAmount != 720 {
		t.Fatalf("unexpected snapshot: %+v", s)
	}
	assertInvariant(t, s)
}

func TestEngine_OriginalCostSelection(t *testing.T) {
	e := NewEngine(nil, fixedNow(checkoutTime))

	cases := []struct {
		name string
		live *entities.ServiceSnapshot
		want float64
	}{
		{name: "live price wins", live: liveService("1200", 0, nil), want: 1200},
		{name: "missing record falls back", live: nil, want: 800},
		{name: "empty price falls back", live: liveService("", 0, nil), want: 800},
		{name: "non numeric falls back", live: liveService("call us", 0, nil), want: 800},
		{name: "zero price falls back", live: liveService("0", 0, nil), want: 800},
		{name: "negative price falls back", live: liveService("-5", 0, nil), want: 800},
		{name: "decimal text", live: liveService(" 499.99 ", 0, nil), want: 499.99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := e.PriceOrder(context.Background(), baseOrder(), tc.live, "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.OriginalServiceCost != tc.want || s.FinalAmount != tc.want {
				t.Fatalf("expected %v, got %+v", tc.want, s)
			}
		})
	}
}

func TestEngine_ServiceUnavailable(t *testing.T) {
	e := NewEngine(nil, fixedNow(checkoutTime))
	o := baseOrder()
	o.BaseCost = 0

	_, err := e.PriceOrder(context.Background(), o, nil, "")
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestEngine_ServiceDiscountWindow(t *testing.T) {
	e := NewEngine(nil, fixedNow(checkoutTime))

	t.Run("expired discount ignored", func(t *testing.T) {
		past := checkoutTime.Add(-time.Minute)
		s, err := e.PriceOrder(context.Background(), baseOrder(), liveService("1000", 10, &past), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ServiceLevelDiscountAmount != 0 || s.ServiceLevelDiscountPercentage != 0 || s.FinalAmount != 1000 {
			t.Fatalf("unexpected snapshot: %+v", s)
		}
	})

	t.Run("valid until exactly now applies", func(t *testing.T) {
		s, err := e.PriceOrder(context.Background(), baseOrder(), liveService("1000", 10, &checkoutTime), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ServiceLevelDiscountAmount != 100 {
			t.Fatalf("expected discount to apply, got %+v", s)
		}
	})

	t.Run("stored cost never gets the live discount without a record", func(t *testing.T) {
		s, err := e.PriceOrder(context.Background(), baseOrder(), nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ServiceLevelDiscountAmount != 0 {
			t.Fatalf("unexpected snapshot: %+v", s)
		}
	})
}

func TestEngine_CouponFailures(t *testing.T) {
	t.Run("unknown code", func(t *testing.T) {
		e := NewEngine(stubCoupons{}, fixedNow(checkoutTime))
		_, err := e.PriceOrder(context.Background(), baseOrder(), liveService("1000", 0, nil), "NOPE")
		if !errors.Is(err, ErrCouponInapplicable) {
			t.Fatalf("expected ErrCouponInapplicable, got %v", err)
		}
	})

	t.Run("inactive coupon", func(t *testing.T) {
		c := januaryCoupon(20, nil)
		c.IsActive = false
		e := NewEngine(stubCoupons{"SAVE20": c}, fixedNow(checkoutTime))
		_, err := e.PriceOrder(context.Background(), baseOrder(), liveService("1000", 0, nil), "SAVE20")
		if !errors.Is(err, ErrCouponInapplicable) {
			t.Fatalf("expected ErrCouponInapplicable, got %v", err)
		}
	})

	t.Run("no matching rule", func(t *testing.T) {
		c := januaryCoupon(20, nil)
		c.ApplicableTo = []entities.CouponRule{{ApplicationTypeID: "app-2"}}
		e := NewEngine(stubCoupons{"SAVE20": c}, fixedNow(checkoutTime))
		_, err := e.PriceOrder(context.Background(), baseOrder(), liveService("1000", 0, nil), "SAVE20")
		if !errors.Is(err, ErrCouponInapplicable) {
			t.Fatalf("expected ErrCouponInapplicable, got %v", err)
		}
	})

	t.Run("coupon store error propagates", func(t *testing.T) {
		e := NewEngine(failingCoupons{}, fixedNow(checkoutTime))
		_, err := e.PriceOrder(context.Background(), baseOrder(), liveService("1000", 0, nil), "SAVE20")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("live application type used for matching", func(t *testing.T) {
		o := baseOrder()
		o.ApplicationTypeID = "stale"
		e := NewEngine(stubCoupons{"SAVE20": januaryCoupon(10, nil)}, fixedNow(checkoutTime))
		s, err := e.PriceOrder(context.Background(), o, liveService("1000", 0, nil), "SAVE20")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.CouponDiscountAmount != 100 {
			t.Fatalf("unexpected snapshot: %+v", s)
		}
	})
}

func TestEngine_FinalAmountFlooredAtZero(t *testing.T) {
	c := januaryCoupon(100, nil)
	e := NewEngine(stubCoupons{"SAVE20": c}, fixedNow(checkoutTime))

	s, err := e.PriceOrder(context.Background(), baseOrder(), liveService("1000", 100, nil), "SAVE20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.FinalAmount != 0 {
		t.Fatalf("expected 0, got %+v", s)
	}
	assertInvariant(t, s)
}

func TestEngine_InvariantsAcrossInputs(t *testing.T) {
	prices := []string{"1", "99.99", "250", "1000", "1234.56", "100000"}
	pcts := []float64{0, 5, 12.5, 33.33, 50, 100}
	caps := []*float64{nil, ptr(0.0), ptr(10.0), ptr(150.0), ptr(1e6)}

	for _, price := range prices {
		for _, sp := range pcts {
			for _, cp := range pcts {
				for _, limit := range caps {
					c := januaryCoupon(cp, limit)
					e := NewEngine(stubCoupons{"SAVE20": c}, fixedNow(checkoutTime))
					s, err := e.PriceOrder(context.Background(), baseOrder(), liveService(price, sp, nil), "SAVE20")
					if err != nil {
						t.Fatalf("unexpected error for price=%s sp=%v cp=%v: %v", price, sp, cp, err)
					}
					assertInvariant(t, s)
					if limit != nil && s.CouponDiscountAmount > *limit {
						t.Fatalf("coupon discount %v exceeds cap %v", s.CouponDiscountAmount, *limit)
					}
					if s.FinalAmount < 0 {
						t.Fatalf("negative final amount: %+v", s)
					}
				}
			}
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := map[string]struct {
		want float64
		ok   bool
	}{
		"":        {0, false},
		"abc":     {0, false},
		"0":       {0, false},
		"-1":      {0, false},
		"150":     {150, true},
		" 99.999": {100, true},
	}
	for raw, tc := range cases {
		got, ok := ParsePrice(raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParsePrice(%q) = %v, %v; want %v, %v", raw, got, ok, tc.want, tc.ok)
		}
	}
}
