package request

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"
)

var (
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

type AddressRequest struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	IsPrimary  bool   `json:"is_primary"`
}

func (r *AddressRequest) ToEntity() *entities.Address {
	if r == nil {
		return nil
	}
	return &entities.Address{
		ID:         strings.TrimSpace(r.ID),
		Label:      strings.TrimSpace(r.Label),
		Street:     strings.TrimSpace(r.Street),
		City:       strings.TrimSpace(r.City),
		State:      strings.TrimSpace(r.State),
		PostalCode: strings.TrimSpace(r.PostalCode),
		Country:    strings.TrimSpace(r.Country),
		IsPrimary:  r.IsPrimary,
	}
}

type ContactNumberRequest struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Number    string `json:"number" binding:"required"`
	IsPrimary bool   `json:"is_primary"`
}

func (r *ContactNumberRequest) ToEntity() *entities.ContactNumber {
	if r == nil {
		return nil
	}
	return &entities.ContactNumber{
		ID:        strings.TrimSpace(r.ID),
		Label:     strings.TrimSpace(r.Label),
		Number:    strings.TrimSpace(r.Number),
		IsPrimary: r.IsPrimary,
	}
}

// AddToCartRequest omits quantity for the default of one.
type AddToCartRequest struct {
	ServiceID       string                `json:"service_id" binding:"required"`
	Quantity        int                   `json:"quantity" binding:"omitempty,min=1"`
	DeliveryAddress *AddressRequest       `json:"delivery_address"`
	ContactNumber   *ContactNumberRequest `json:"contact_number"`
}

func (r AddToCartRequest) ToInput() usecase.AddToCartInput {
	return usecase.AddToCartInput{
		ServiceID:       strings.TrimSpace(r.ServiceID),
		Quantity:        r.Quantity,
		DeliveryAddress: r.DeliveryAddress.ToEntity(),
		ContactNumber:   r.ContactNumber.ToEntity(),
	}
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest may carry delivery details that were not given when the item was added.
type CheckoutRequest struct {
	CouponCode      string                `json:"coupon_code"`
	DeliveryAddress *AddressRequest       `json:"delivery_address"`
	ContactNumber   *ContactNumberRequest `json:"contact_number"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		CouponCode:      strings.TrimSpace(r.CouponCode),
		DeliveryAddress: r.DeliveryAddress.ToEntity(),
		ContactNumber:   r.ContactNumber.ToEntity(),
	}
}

type AssignPartnerRequest struct {
	PartnerID     string     `json:"partner_id" binding:"required"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Message       string     `json:"message"`
}

func (r AssignPartnerRequest) ToInput() usecase.AssignInput {
	return usecase.AssignInput{
		PartnerID:     strings.TrimSpace(r.PartnerID),
		ScheduledDate: r.ScheduledDate,
		Message:       strings.TrimSpace(r.Message),
	}
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type CompleteRequest struct {
	ServiceNotes string `json:"service_notes"`
}

// VerifyOtpRequest accepts the code as a JSON number or a numeric string.
type VerifyOtpRequest struct {
	Otp json.Number `json:"otp" binding:"required"`
}

func (r VerifyOtpRequest) Code() string {
	return strings.TrimSpace(r.Otp.String())
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

type TrackingEntryRequest struct {
	Message string `json:"message" binding:"required"`
	Status  string `json:"status"`
}

type AppendTrackingRequest struct {
	Entries []TrackingEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

func (r AppendTrackingRequest) ToEntries() ([]entities.TrackingEntry, error) {
	return toTrackingEntries(r.Entries)
}

// AdminUpdateStatusRequest mirrors the admin order endpoint: every field is optional.
type AdminUpdateStatusRequest struct {
	Status        string                 `json:"status"`
	PartnerID     string                 `json:"partner_id"`
	ScheduledDate *time.Time             `json:"scheduled_date"`
	Message       string                 `json:"message"`
	Tracking      []TrackingEntryRequest `json:"tracking" binding:"omitempty,dive"`
}

func (r AdminUpdateStatusRequest) ToInput() (usecase.AdminUpdateInput, error) {
	in := usecase.AdminUpdateInput{
		PartnerID:     strings.TrimSpace(r.PartnerID),
		ScheduledDate: r.ScheduledDate,
		Message:       strings.TrimSpace(r.Message),
	}
	if v := strings.TrimSpace(r.Status); v != "" {
		status, ok := entities.ParseOrderStatus(v)
		if !ok {
			return usecase.AdminUpdateInput{}, ErrInvalidOrderStatus
		}
		in.Status = &status
	}
	entries, err := toTrackingEntries(r.Tracking)
	if err != nil {
		return usecase.AdminUpdateInput{}, err
	}
	in.Tracking = entries
	return in, nil
}

func toTrackingEntries(in []TrackingEntryRequest) ([]entities.TrackingEntry, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]entities.TrackingEntry, 0, len(in))
	for _, e := range in {
		entry := entities.TrackingEntry{Message: strings.TrimSpace(e.Message)}
		if v := strings.TrimSpace(e.Status); v != "" {
			status, ok := entities.ParseOrderStatus(v)
			if !ok {
				return nil, ErrInvalidOrderStatus
			}
			entry.Status = status
		}
		out = append(out, entry)
	}
	return out, nil
}
