// Package pricing freezes the payable amount of an order at checkout.
//
// The layering order matters: the service-level discount is taken from the original cost,
// the coupon discount from what is left, and only then is the result floored at zero.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	// ErrCouponInapplicable blocks checkout; the caller may retry without the coupon.
	ErrCouponInapplicable = errors.New("pricing: coupon inapplicable")
	// ErrServiceUnavailable means neither the live catalog nor the order carries a usable price.
	ErrServiceUnavailable = errors.New("pricing: service unavailable")
)

var hundred = decimal.NewFromInt(100)

// CouponFinder looks coupons up by normalized code. A zero Coupon means not found.
type CouponFinder interface {
	FindByCode(ctx context.Context, code string) (entities.Coupon, error)
}

type Engine struct {
	coupons CouponFinder
	now     func() time.Time
}

func NewEngine(coupons CouponFinder, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{coupons: coupons, now: now}
}

// NormalizeCode trims and uppercases a coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// PriceOrder computes the checkout snapshot. live may be nil when the catalog record is gone.
// It never mutates the order, the catalog or the coupon.
func (e *Engine) PriceOrder(ctx context.Context, order entities.Order, live *entities.ServiceSnapshot, couponCode string) (entities.PricingSnapshot, error) {
	now := e.now().UTC()

	original, ok := livePrice(live)
	if !ok {
		original = decimal.NewFromFloat(order.BaseCost).Round(2)
	}
	if !original.IsPositive() {
		return entities.PricingSnapshot{}, fmt.Errorf("%w: no price for service %s", ErrServiceUnavailable, order.CatalogItemID)
	}

	servicePct := decimal.Zero
	serviceDiscount := decimal.Zero
	if live != nil && live.DiscountPercentage > 0 &&
		(live.DiscountValidUntil == nil || !live.DiscountValidUntil.Before(now)) {
		servicePct = decimal.NewFromFloat(live.DiscountPercentage)
		serviceDiscount = percentOf(original, servicePct)
	}
	afterService := original.Sub(serviceDiscount)

	code := NormalizeCode(couponCode)
	couponDiscount := decimal.Zero
	if code != "" {
		if e.coupons == nil {
			return entities.PricingSnapshot{}, fmt.Errorf("%w: coupons are not configured", ErrCouponInapplicable)
		}
		coupon, err := e.coupons.FindByCode(ctx, code)
		if err != nil {
			return entities.PricingSnapshot{}, err
		}
		if coupon.Code == "" {
			return entities.PricingSnapshot{}, fmt.Errorf("%w: coupon %s not found", ErrCouponInapplicable, code)
		}
		applicationTypeID := order.ApplicationTypeID
		if live != nil && live.ApplicationTypeID != "" {
			applicationTypeID = live.ApplicationTypeID
		}
		couponDiscount, err = EvaluateCoupon(coupon, order.CatalogItemID, applicationTypeID, afterService, now)
		if err != nil {
			return entities.PricingSnapshot{}, err
		}
	}

	final := afterService.Sub(couponDiscount)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return entities.PricingSnapshot{
		OriginalServiceCost:            original.InexactFloat64(),
		ServiceLevelDiscountPercentage: servicePct.InexactFloat64(),
		ServiceLevelDiscountAmount:     serviceDiscount.InexactFloat64(),
		CouponCode:                     code,
		CouponDiscountAmount:           couponDiscount.InexactFloat64(),
		FinalAmount:                    final.InexactFloat64(),
		PricedAt:                       now,
	}, nil
}

// ParsePrice reads a raw catalog price. Empty, non-numeric or non-positive values are unusable.
func ParsePrice(raw string) (float64, bool) {
	d, ok := parsePrice(raw)
	if !ok {
		return 0, false
	}
	return d.InexactFloat64(), true
}

func livePrice(live *entities.ServiceSnapshot) (decimal.Decimal, bool) {
	if live == nil {
		return decimal.Zero, false
	}
	return parsePrice(live.Price)
}

func parsePrice(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d.Round(2), true
}

func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred).Round(2)
}
