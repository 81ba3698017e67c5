package response

import (
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"
)

type CouponResponse struct {
	Code               string                `json:"code"`
	DiscountPercentage float64               `json:"discount_percentage"`
	MaxDiscountAmount  *float64              `json:"max_discount_amount"`
	ValidFrom          time.Time             `json:"valid_from"`
	ValidUntil         time.Time             `json:"valid_until"`
	IsActive           bool                  `json:"is_active"`
	ApplicableTo       []entities.CouponRule `json:"applicable_to"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

func FromCoupon(c entities.Coupon) CouponResponse {
	rules := c.ApplicableTo
	if rules == nil {
		rules = []entities.CouponRule{}
	}
	return CouponResponse{
		Code:               c.Code,
		DiscountPercentage: c.DiscountPercentage,
		MaxDiscountAmount:  c.MaxDiscountAmount,
		ValidFrom:          c.ValidFrom,
		ValidUntil:         c.ValidUntil,
		IsActive:           c.IsActive,
		ApplicableTo:       rules,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func FromCoupons(cs []entities.Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCoupon(c))
	}
	return out
}

type CouponValidationResponse struct {
	CouponCode           string   `json:"coupon_code"`
	DiscountPercentage   float64  `json:"discount_percentage"`
	MaxDiscountAmount    *float64 `json:"max_discount_amount"`
	ApplicableServiceIDs []string `json:"applicable_service_ids"`
}

func FromCouponValidation(v usecase.CouponValidation) CouponValidationResponse {
	return CouponValidationResponse{
		CouponCode:           v.CouponCode,
		DiscountPercentage:   v.DiscountPercentage,
		MaxDiscountAmount:    v.MaxDiscountAmount,
		ApplicableServiceIDs: v.ApplicableServiceIDs,
	}
}
