package pricing

import (
	"fmt"
	"slices"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MatchRule returns the first coupon rule covering the service, short-circuiting on the first hit.
func MatchRule(c entities.Coupon, serviceID, applicationTypeID string) (entities.CouponRule, bool) {
	for _, rule := range c.ApplicableTo {
		if rule.ApplicationTypeID != applicationTypeID {
			continue
		}
		if len(rule.ServiceTypeIDs) == 0 || slices.Contains(rule.ServiceTypeIDs, serviceID) {
			return rule, true
		}
	}
	return entities.CouponRule{}, false
}

// EvaluateCoupon computes the coupon discount on base (the post-service-discount amount).
// The result is clamped to MaxDiscountAmount when set.
func EvaluateCoupon(c entities.Coupon, serviceID, applicationTypeID string, base decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if !c.IsValidAt(now) {
		return decimal.Zero, fmt.Errorf("%w: coupon %s is inactive or outside its validity window", ErrCouponInapplicable, c.Code)
	}
	if _, ok := MatchRule(c, serviceID, applicationTypeID); !ok {
		return decimal.Zero, fmt.Errorf("%w: coupon %s does not cover service %s", ErrCouponInapplicable, c.Code, serviceID)
	}

	discount := percentOf(base, decimal.NewFromFloat(c.DiscountPercentage))
	if c.MaxDiscountAmount != nil {
		limit := decimal.NewFromFloat(*c.MaxDiscountAmount)
		if discount.GreaterThan(limit) {
			discount = limit
		}
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	return discount, nil
}
