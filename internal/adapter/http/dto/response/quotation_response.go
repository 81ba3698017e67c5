package response

import (
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
)

type QuotationResponse struct {
	ID                string                       `json:"id"`
	PartnerID         string                       `json:"partner_id"`
	OwnerID           string                       `json:"owner_id"`
	ApplicationTypeID string                       `json:"application_type_id,omitempty"`
	LinkedOrderCode   string                       `json:"linked_order_code,omitempty"`
	LineItems         []entities.QuotationLineItem `json:"line_items"`
	TotalAmount       float64                      `json:"total_amount"`
	Status            string                       `json:"status"`
	CreatedAt         time.Time                    `json:"created_at"`
	UpdatedAt         time.Time                    `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	lines := q.LineItems
	if lines == nil {
		lines = []entities.QuotationLineItem{}
	}
	return QuotationResponse{
		ID:                q.ID,
		PartnerID:         q.PartnerID,
		OwnerID:           q.OwnerID,
		ApplicationTypeID: q.ApplicationTypeID,
		LinkedOrderCode:   q.LinkedOrderCode,
		LineItems:         lines,
		TotalAmount:       q.TotalAmount,
		Status:            string(q.Status),
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}

func FromQuotations(qs []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuotation(q))
	}
	return out
}
