package entities

import "time"

// CouponRule scopes a coupon to an application type.
// An empty ServiceTypeIDs means every service under the application type is eligible.
type CouponRule struct {
	ApplicationTypeID string   `json:"application_type_id"`
	ServiceTypeIDs    []string `json:"service_type_ids"`
}

// Coupon is a promotional percentage discount.
//
// Storage model (DynamoDB):
//   - PK: code (uppercase)
type Coupon struct {
	Code               string
	DiscountPercentage float64
	MaxDiscountAmount  *float64
	ValidFrom          time.Time
	ValidUntil         time.Time
	IsActive           bool
	ApplicableTo       []CouponRule
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsValidAt reports whether the coupon is active and now falls inside [ValidFrom, ValidUntil].
func (c Coupon) IsValidAt(now time.Time) bool {
	return c.IsActive && !now.Before(c.ValidFrom) && !now.After(c.ValidUntil)
}
