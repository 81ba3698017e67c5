package entities

import "time"

// QuotationStatus represents the lifecycle of a partner quotation.
//
// accepted and rejected are terminal: the quotation is frozen afterwards.
type QuotationStatus string

const (
	QuotationStatusDraft     QuotationStatus = "draft"
	QuotationStatusGenerated QuotationStatus = "generated"
	QuotationStatusAccepted  QuotationStatus = "accepted"
	QuotationStatusRejected  QuotationStatus = "rejected"
)

func (s QuotationStatus) IsTerminal() bool {
	return s == QuotationStatusAccepted || s == QuotationStatusRejected
}

// QuotationLineItem is a point-in-time snapshot of a rate-card entry.
type QuotationLineItem struct {
	CatalogRateItemID string  `json:"catalog_rate_item_id"`
	NameSnapshot      string  `json:"name"`
	PriceSnapshot     float64 `json:"price"`
	Quantity          int     `json:"quantity"`
	LineTotal         float64 `json:"line_total"`
}

// Quotation is an itemized price proposal issued by a partner.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI partner_id-index: partner_id
//   - GSI owner_id-index: owner_id
//
// TotalAmount always equals the sum of LineItems[].LineTotal.
type Quotation struct {
	ID                string
	PartnerID         string
	OwnerID           string
	ApplicationTypeID string
	LinkedOrderCode   string
	LineItems         []QuotationLineItem
	TotalAmount       float64
	Status            QuotationStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
