package entities

import "time"

// OrderStatus represents the lifecycle of an order (a cart item once created).
//
// Domain notes:
//   - inCart is the initial state; completed and cancelled are terminal.
//   - Legal transitions and the actor allowed to trigger them live in the orderstate package.
type OrderStatus string

const (
	OrderStatusInCart     OrderStatus = "inCart"
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusAssigned   OrderStatus = "assigned"
	OrderStatusInProgress OrderStatus = "inProgress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{
	OrderStatusInCart,
	OrderStatusPending,
	OrderStatusAssigned,
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// ParseOrderStatus validates a wire value.
func ParseOrderStatus(v string) (OrderStatus, bool) {
	for _, s := range orderStatuses {
		if string(s) == v {
			return s, true
		}
	}
	return "", false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

type Address struct {
	ID         string `json:"id,omitempty"`
	Label      string `json:"label,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
	IsPrimary  bool   `json:"is_primary"`
}

type ContactNumber struct {
	ID        string `json:"id,omitempty"`
	Label     string `json:"label,omitempty"`
	Number    string `json:"number"`
	IsPrimary bool   `json:"is_primary"`
}

// TrackingEntry is one audit record. Entries are only ever appended.
type TrackingEntry struct {
	Message   string      `json:"message"`
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// PricingSnapshot is frozen on checkout and never recomputed afterwards.
//
// Invariant: FinalAmount = max(0, OriginalServiceCost - ServiceLevelDiscountAmount - CouponDiscountAmount).
type PricingSnapshot struct {
	OriginalServiceCost            float64   `json:"original_service_cost"`
	ServiceLevelDiscountPercentage float64   `json:"service_level_discount_percentage"`
	ServiceLevelDiscountAmount     float64   `json:"service_level_discount_amount"`
	CouponCode                     string    `json:"coupon_code,omitempty"`
	CouponDiscountAmount           float64   `json:"coupon_discount_amount"`
	FinalAmount                    float64   `json:"final_amount"`
	PricedAt                       time.Time `json:"priced_at"`
}

// Order is a single customer request for one catalog service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI owner_id-index: owner_id
//   - GSI assigned_partner_id-index: assigned_partner_id
//   - order_codes table: order_code -> id (uniqueness reservation)
//
// Version is bumped on every write and guards conditional updates.
type Order struct {
	ID                string
	OrderCode         string
	OwnerID           string
	CatalogItemID     string
	CatalogItemName   string
	CatalogItemImage  string
	MainServiceID     string
	ApplicationTypeID string
	BaseCost          float64
	Quantity          int
	Status            OrderStatus
	AssignedPartnerID string
	ScheduledDate     *time.Time

	DeliveryAddress *Address
	ContactNumber   *ContactNumber
	Pricing         *PricingSnapshot

	ServiceOtp        *int
	ServiceOtpExpiry  *time.Time
	OtpVerified       bool
	OtpFailedAttempts int

	Tracking []TrackingEntry

	CompletedAt      *time.Time
	ServiceNotes     string
	CustomerFeedback string

	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OtpPending reports whether a service-start code is waiting for verification.
func (o Order) OtpPending() bool {
	return o.ServiceOtp != nil && o.ServiceOtpExpiry != nil
}
