package response

import (
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"
)

type PricingResponse struct {
	OriginalServiceCost            float64   `json:"original_service_cost"`
	ServiceLevelDiscountPercentage float64   `json:"service_level_discount_percentage"`
	ServiceLevelDiscountAmount     float64   `json:"service_level_discount_amount"`
	CouponCode                     *string   `json:"coupon_code"`
	CouponDiscountAmount           float64   `json:"coupon_discount_amount"`
	FinalAmount                    float64   `json:"final_amount"`
	PricedAt                       time.Time `json:"priced_at"`
}

// OrderResponse never carries the service-start code itself, only its expiry.
type OrderResponse struct {
	ID                string                   `json:"id"`
	OrderCode         string                   `json:"order_code"`
	OwnerID           string                   `json:"owner_id"`
	CatalogItemID     string                   `json:"catalog_item_id"`
	CatalogItemName   string                   `json:"catalog_item_name"`
	CatalogItemImage  string                   `json:"catalog_item_image,omitempty"`
	MainServiceID     string                   `json:"main_service_id,omitempty"`
	ApplicationTypeID string                   `json:"application_type_id,omitempty"`
	BaseCost          float64                  `json:"base_cost"`
	Quantity          int                      `json:"quantity"`
	Status            string                   `json:"status"`
	AssignedPartnerID string                   `json:"assigned_partner_id,omitempty"`
	ScheduledDate     *time.Time               `json:"scheduled_date,omitempty"`
	DeliveryAddress   *entities.Address        `json:"delivery_address,omitempty"`
	ContactNumber     *entities.ContactNumber  `json:"contact_number,omitempty"`
	Pricing           *PricingResponse         `json:"pricing,omitempty"`
	ServiceOtpExpiry  *time.Time               `json:"service_otp_expiry,omitempty"`
	OtpVerified       bool                     `json:"otp_verified"`
	Tracking          []entities.TrackingEntry `json:"tracking"`
	CompletedAt       *time.Time               `json:"completed_at,omitempty"`
	ServiceNotes      string                   `json:"service_notes,omitempty"`
	CustomerFeedback  string                   `json:"customer_feedback,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	tracking := o.Tracking
	if tracking == nil {
		tracking = []entities.TrackingEntry{}
	}
	return OrderResponse{
		ID:                o.ID,
		OrderCode:         o.OrderCode,
		OwnerID:           o.OwnerID,
		CatalogItemID:     o.CatalogItemID,
		CatalogItemName:   o.CatalogItemName,
		CatalogItemImage:  o.CatalogItemImage,
		MainServiceID:     o.MainServiceID,
		ApplicationTypeID: o.ApplicationTypeID,
		BaseCost:          o.BaseCost,
		Quantity:          o.Quantity,
		Status:            string(o.Status),
		AssignedPartnerID: o.AssignedPartnerID,
		ScheduledDate:     o.ScheduledDate,
		DeliveryAddress:   o.DeliveryAddress,
		ContactNumber:     o.ContactNumber,
		Pricing:           fromPricing(o.Pricing),
		ServiceOtpExpiry:  o.ServiceOtpExpiry,
		OtpVerified:       o.OtpVerified,
		Tracking:          tracking,
		CompletedAt:       o.CompletedAt,
		ServiceNotes:      o.ServiceNotes,
		CustomerFeedback:  o.CustomerFeedback,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func fromPricing(p *entities.PricingSnapshot) *PricingResponse {
	if p == nil {
		return nil
	}
	res := &PricingResponse{
		OriginalServiceCost:            p.OriginalServiceCost,
		ServiceLevelDiscountPercentage: p.ServiceLevelDiscountPercentage,
		ServiceLevelDiscountAmount:     p.ServiceLevelDiscountAmount,
		CouponDiscountAmount:           p.CouponDiscountAmount,
		FinalAmount:                    p.FinalAmount,
		PricedAt:                       p.PricedAt,
	}
	if p.CouponCode != "" {
		code := p.CouponCode
		res.CouponCode = &code
	}
	return res
}

type ClearCartResponse struct {
	Removed int `json:"removed"`
}

type CustomerPendingResponse struct {
	OwnerID       string    `json:"owner_id"`
	Pending       int       `json:"pending"`
	LatestOrderAt time.Time `json:"latest_order_at"`
}

func FromCustomerPending(rows []usecase.CustomerPending) []CustomerPendingResponse {
	out := make([]CustomerPendingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, CustomerPendingResponse{OwnerID: r.OwnerID, Pending: r.Pending, LatestOrderAt: r.LatestOrderAt})
	}
	return out
}
