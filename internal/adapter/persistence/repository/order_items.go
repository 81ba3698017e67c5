package repository

import (
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
)

type addressItem struct {
	ID         string `dynamodbav:"id,omitempty"`
	Label      string `dynamodbav:"label,omitempty"`
	Street     string `dynamodbav:"street"`
	City       string `dynamodbav:"city"`
	State      string `dynamodbav:"state,omitempty"`
	PostalCode string `dynamodbav:"postal_code,omitempty"`
	Country    string `dynamodbav:"country,omitempty"`
	IsPrimary  bool   `dynamodbav:"is_primary"`
}

type contactItem struct {
	ID        string `dynamodbav:"id,omitempty"`
	Label     string `dynamodbav:"label,omitempty"`
	Number    string `dynamodbav:"number"`
	IsPrimary bool   `dynamodbav:"is_primary"`
}

type trackingItem struct {
	Message   string `dynamodbav:"message"`
	Status    string `dynamodbav:"status"`
	Timestamp string `dynamodbav:"timestamp"`
}

type pricingItem struct {
	OriginalServiceCost            float64 `dynamodbav:"original_service_cost"`
	ServiceLevelDiscountPercentage float64 `dynamodbav:"service_level_discount_percentage"`
	ServiceLevelDiscountAmount     float64 `dynamodbav:"service_level_discount_amount"`
	CouponCode                     string  `dynamodbav:"coupon_code,omitempty"`
	CouponDiscountAmount           float64 `dynamodbav:"coupon_discount_amount"`
	FinalAmount                    float64 `dynamodbav:"final_amount"`
	PricedAt                       string  `dynamodbav:"priced_at"`
}

// orderItem is the stored shape of an order. assigned_partner_id is omitted while empty so the
// partner index stays sparse.
type orderItem struct {
	ID                string         `dynamodbav:"id"`
	OrderCode         string         `dynamodbav:"order_code"`
	OwnerID           string         `dynamodbav:"owner_id"`
	CatalogItemID     string         `dynamodbav:"catalog_item_id"`
	CatalogItemName   string         `dynamodbav:"catalog_item_name,omitempty"`
	CatalogItemImage  string         `dynamodbav:"catalog_item_image,omitempty"`
	MainServiceID     string         `dynamodbav:"main_service_id,omitempty"`
	ApplicationTypeID string         `dynamodbav:"application_type_id,omitempty"`
	BaseCost          float64        `dynamodbav:"base_cost"`
	Quantity          int            `dynamodbav:"quantity"`
	Status            string         `dynamodbav:"status"`
	AssignedPartnerID string         `dynamodbav:"assigned_partner_id,omitempty"`
	ScheduledDate     string         `dynamodbav:"scheduled_date,omitempty"`
	DeliveryAddress   *addressItem   `dynamodbav:"delivery_address,omitempty"`
	ContactNumber     *contactItem   `dynamodbav:"contact_number,omitempty"`
	Pricing           *pricingItem   `dynamodbav:"pricing,omitempty"`
	ServiceOtp        *int           `dynamodbav:"service_otp,omitempty"`
	ServiceOtpExpiry  string         `dynamodbav:"service_otp_expiry,omitempty"`
	OtpVerified       bool           `dynamodbav:"otp_verified"`
	OtpFailedAttempts int            `dynamodbav:"otp_failed_attempts"`
	Tracking          []trackingItem `dynamodbav:"tracking"`
	CompletedAt       string         `dynamodbav:"completed_at,omitempty"`
	ServiceNotes      string         `dynamodbav:"service_notes,omitempty"`
	CustomerFeedback  string         `dynamodbav:"customer_feedback,omitempty"`
	Version           int64          `dynamodbav:"version"`
	CreatedAt         string         `dynamodbav:"created_at"`
	UpdatedAt         string         `dynamodbav:"updated_at"`
}

type orderCodeItem struct {
	OrderCode string `dynamodbav:"order_code"`
	OrderID   string `dynamodbav:"order_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
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
		ScheduledDate:     formatTimePtr(o.ScheduledDate),
		ServiceOtp:        o.ServiceOtp,
		ServiceOtpExpiry:  formatTimePtr(o.ServiceOtpExpiry),
		OtpVerified:       o.OtpVerified,
		OtpFailedAttempts: o.OtpFailedAttempts,
		Tracking:          make([]trackingItem, 0, len(o.Tracking)),
		CompletedAt:       formatTimePtr(o.CompletedAt),
		ServiceNotes:      o.ServiceNotes,
		CustomerFeedback:  o.CustomerFeedback,
		Version:           o.Version,
		CreatedAt:         formatTime(o.CreatedAt),
		UpdatedAt:         formatTime(o.UpdatedAt),
	}
	if a := o.DeliveryAddress; a != nil {
		it.DeliveryAddress = &addressItem{
			ID:         a.ID,
			Label:      a.Label,
			Street:     a.Street,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			IsPrimary:  a.IsPrimary,
		}
	}
	if c := o.ContactNumber; c != nil {
		it.ContactNumber = &contactItem{ID: c.ID, Label: c.Label, Number: c.Number, IsPrimary: c.IsPrimary}
	}
	if p := o.Pricing; p != nil {
		it.Pricing = &pricingItem{
			OriginalServiceCost:            p.OriginalServiceCost,
			ServiceLevelDiscountPercentage: p.ServiceLevelDiscountPercentage,
			ServiceLevelDiscountAmount:     p.ServiceLevelDiscountAmount,
			CouponCode:                     p.CouponCode,
			CouponDiscountAmount:           p.CouponDiscountAmount,
			FinalAmount:                    p.FinalAmount,
			PricedAt:                       formatTime(p.PricedAt),
		}
	}
	for _, e := range o.Tracking {
		it.Tracking = append(it.Tracking, trackingItem{
			Message:   e.Message,
			Status:    string(e.Status),
			Timestamp: formatTime(e.Timestamp),
		})
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:                it.ID,
		OrderCode:         it.OrderCode,
		OwnerID:           it.OwnerID,
		CatalogItemID:     it.CatalogItemID,
		CatalogItemName:   it.CatalogItemName,
		CatalogItemImage:  it.CatalogItemImage,
		MainServiceID:     it.MainServiceID,
		ApplicationTypeID: it.ApplicationTypeID,
		BaseCost:          it.BaseCost,
		Quantity:          it.Quantity,
		Status:            entities.OrderStatus(it.Status),
		AssignedPartnerID: it.AssignedPartnerID,
		ScheduledDate:     parseTimePtr(it.ScheduledDate),
		ServiceOtp:        it.ServiceOtp,
		ServiceOtpExpiry:  parseTimePtr(it.ServiceOtpExpiry),
		OtpVerified:       it.OtpVerified,
		OtpFailedAttempts: it.OtpFailedAttempts,
		Tracking:          make([]entities.TrackingEntry, 0, len(it.Tracking)),
		CompletedAt:       parseTimePtr(it.CompletedAt),
		ServiceNotes:      it.ServiceNotes,
		CustomerFeedback:  it.CustomerFeedback,
		Version:           it.Version,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if a := it.DeliveryAddress; a != nil {
		o.DeliveryAddress = &entities.Address{
			ID:         a.ID,
			Label:      a.Label,
			Street:     a.Street,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			IsPrimary:  a.IsPrimary,
		}
	}
	if c := it.ContactNumber; c != nil {
		o.ContactNumber = &entities.ContactNumber{ID: c.ID, Label: c.Label, Number: c.Number, IsPrimary: c.IsPrimary}
	}
	if p := it.Pricing; p != nil {
		o.Pricing = &entities.PricingSnapshot{
			OriginalServiceCost:            p.OriginalServiceCost,
			ServiceLevelDiscountPercentage: p.ServiceLevelDiscountPercentage,
			ServiceLevelDiscountAmount:     p.ServiceLevelDiscountAmount,
			CouponCode:                     p.CouponCode,
			CouponDiscountAmount:           p.CouponDiscountAmount,
			FinalAmount:                    p.FinalAmount,
			PricedAt:                       parseTime(p.PricedAt),
		}
	}
	for _, e := range it.Tracking {
		o.Tracking = append(o.Tracking, entities.TrackingEntry{
			Message:   e.Message,
			Status:    entities.OrderStatus(e.Status),
			Timestamp: parseTime(e.Timestamp),
		})
	}
	return o
}
