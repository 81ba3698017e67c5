package request

import (
	"strings"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"
)

type LineItemRequest struct {
	RateItemID string `json:"rate_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"min=0"`
}

type CreateQuotationRequest struct {
	OwnerID           string            `json:"owner_id" binding:"required"`
	ApplicationTypeID string            `json:"application_type_id"`
	LinkedOrderCode   string            `json:"linked_order_code"`
	Items             []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateQuotationRequest) ToInput() usecase.CreateQuotationInput {
	return usecase.CreateQuotationInput{
		OwnerID:           strings.TrimSpace(r.OwnerID),
		ApplicationTypeID: strings.TrimSpace(r.ApplicationTypeID),
		LinkedOrderCode:   strings.TrimSpace(r.LinkedOrderCode),
		Items:             toLineItems(r.Items),
	}
}

// UpdateQuotationRequest: absent fields are left as they are.
type UpdateQuotationRequest struct {
	Items           []LineItemRequest `json:"items" binding:"omitempty,dive"`
	Status          *string           `json:"status"`
	LinkedOrderCode *string           `json:"linked_order_code"`
}

func (r UpdateQuotationRequest) ToInput() usecase.UpdateQuotationInput {
	in := usecase.UpdateQuotationInput{
		Items:           toLineItems(r.Items),
		LinkedOrderCode: r.LinkedOrderCode,
	}
	if r.Status != nil {
		status := entities.QuotationStatus(strings.TrimSpace(*r.Status))
		in.Status = &status
	}
	return in
}

func toLineItems(in []LineItemRequest) []usecase.LineItemRequest {
	if in == nil {
		return nil
	}
	out := make([]usecase.LineItemRequest, 0, len(in))
	for _, it := range in {
		out = append(out, usecase.LineItemRequest{
			RateItemID: strings.TrimSpace(it.RateItemID),
			Quantity:   it.Quantity,
		})
	}
	return out
}
