package request

import (
	"strings"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"
)

type CouponRuleRequest struct {
	ApplicationTypeID string   `json:"application_type_id" binding:"required"`
	ServiceTypeIDs    []string `json:"service_type_ids"`
}

// CouponRequest is shared by create and update. The code is ignored on update.
type CouponRequest struct {
	Code               string              `json:"code"`
	DiscountPercentage float64             `json:"discount_percentage" binding:"min=0,max=100"`
	MaxDiscountAmount  *float64            `json:"max_discount_amount"`
	ValidFrom          time.Time           `json:"valid_from" binding:"required"`
	ValidUntil         time.Time           `json:"valid_until" binding:"required"`
	IsActive           *bool               `json:"is_active"`
	ApplicableTo       []CouponRuleRequest `json:"applicable_to" binding:"omitempty,dive"`
}

func (r CouponRequest) ToInput() usecase.CouponInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	rules := make([]entities.CouponRule, 0, len(r.ApplicableTo))
	for _, rule := range r.ApplicableTo {
		ids := make([]string, 0, len(rule.ServiceTypeIDs))
		for _, id := range rule.ServiceTypeIDs {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		rules = append(rules, entities.CouponRule{
			ApplicationTypeID: strings.TrimSpace(rule.ApplicationTypeID),
			ServiceTypeIDs:    ids,
		})
	}
	return usecase.CouponInput{
		Code:               r.Code,
		DiscountPercentage: r.DiscountPercentage,
		MaxDiscountAmount:  r.MaxDiscountAmount,
		ValidFrom:          r.ValidFrom.UTC(),
		ValidUntil:         r.ValidUntil.UTC(),
		IsActive:           active,
		ApplicableTo:       rules,
	}
}

type ValidateCouponRequest struct {
	Code       string   `json:"code" binding:"required"`
	ServiceIDs []string `json:"service_ids" binding:"required,min=1"`
}

type InvalidateCatalogRequest struct {
	ServiceID string `json:"service_id"`
}
