// Package orderstate holds the order lifecycle: which status may follow which, and who may trigger it.
package orderstate

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
)

var (
	// ErrInvalidTransition is wrapped by *TransitionError.
	ErrInvalidTransition = errors.New("orderstate: invalid transition")
	// ErrMissingDeliveryDetails means checkout was attempted without address or contact number.
	ErrMissingDeliveryDetails = errors.New("orderstate: delivery address and contact number are required")
	// ErrPartnerRequired means an assignment was attempted without a partner.
	ErrPartnerRequired = errors.New("orderstate: assigned partner is required")
	// ErrOtpNotVerified blocks completion until the service-start OTP was verified.
	ErrOtpNotVerified = errors.New("orderstate: service otp not verified")
	// ErrEmptyTrackingMessage rejects blank audit entries.
	ErrEmptyTrackingMessage = errors.New("orderstate: tracking message is required")
)

// TransitionError names the attempted move so callers can surface it.
type TransitionError struct {
	From entities.OrderStatus
	To   entities.OrderStatus
	Role entities.Role
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s → %s not allowed for %s", ErrInvalidTransition, e.From, e.To, e.Role)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

type edge struct {
	from entities.OrderStatus
	to   entities.OrderStatus
}

var transitions = map[edge][]entities.Role{
	{entities.OrderStatusInCart, entities.OrderStatusPending}:       {entities.RoleCustomer},
	{entities.OrderStatusPending, entities.OrderStatusAssigned}:     {entities.RoleAdmin},
	{entities.OrderStatusPending, entities.OrderStatusInProgress}:   {entities.RolePartner, entities.RoleAdmin},
	{entities.OrderStatusAssigned, entities.OrderStatusInProgress}:  {entities.RolePartner, entities.RoleAdmin},
	{entities.OrderStatusInProgress, entities.OrderStatusCompleted}: {entities.RolePartner},
	{entities.OrderStatusPending, entities.OrderStatusCancelled}:    {entities.RolePartner, entities.RoleAdmin},
	{entities.OrderStatusAssigned, entities.OrderStatusCancelled}:   {entities.RolePartner, entities.RoleAdmin},
	{entities.OrderStatusInProgress, entities.OrderStatusCancelled}: {entities.RolePartner, entities.RoleAdmin},
}

var defaultMessages = map[entities.OrderStatus]string{
	entities.OrderStatusPending:    "Order placed",
	entities.OrderStatusAssigned:   "Partner assigned",
	entities.OrderStatusInProgress: "Service in progress",
	entities.OrderStatusCompleted:  "Service completed",
	entities.OrderStatusCancelled:  "Order cancelled",
}

// Check reports whether role may move an order from one status to another.
func Check(from, to entities.OrderStatus, role entities.Role) error {
	roles, ok := transitions[edge{from, to}]
	if !ok || !slices.Contains(roles, role) {
		return &TransitionError{From: from, To: to, Role: role}
	}
	return nil
}

// Targets lists the statuses role may move an order to from its current status.
func Targets(from entities.OrderStatus, role entities.Role) []entities.OrderStatus {
	var out []entities.OrderStatus
	for _, to := range []entities.OrderStatus{
		entities.OrderStatusPending,
		entities.OrderStatusAssigned,
		entities.OrderStatusInProgress,
		entities.OrderStatusCompleted,
		entities.OrderStatusCancelled,
	} {
		if Check(from, to, role) == nil {
			out = append(out, to)
		}
	}
	return out
}

// Transition describes one requested status change.
type Transition struct {
	To        entities.OrderStatus
	Role      entities.Role
	Message   string
	PartnerID string
	At        time.Time
}

// Apply validates t against the order and, only when every check passes, sets the new status and
// appends exactly one tracking entry. A failed Apply leaves the order untouched.
func Apply(o *entities.Order, t Transition) error {
	if err := Check(o.Status, t.To, t.Role); err != nil {
		return err
	}

	partnerID := strings.TrimSpace(t.PartnerID)
	switch t.To {
	case entities.OrderStatusPending:
		if o.DeliveryAddress == nil || o.ContactNumber == nil {
			return ErrMissingDeliveryDetails
		}
	case entities.OrderStatusAssigned:
		if partnerID == "" {
			return ErrPartnerRequired
		}
	case entities.OrderStatusCompleted:
		if !o.OtpVerified {
			return ErrOtpNotVerified
		}
	}

	at := t.At.UTC()
	msg := strings.TrimSpace(t.Message)
	if msg == "" {
		msg = defaultMessages[t.To]
	}

	o.Status = t.To
	if t.To == entities.OrderStatusAssigned {
		o.AssignedPartnerID = partnerID
	}
	if t.To == entities.OrderStatusCompleted {
		o.CompletedAt = &at
	}
	o.Tracking = append(slices.Clip(o.Tracking), entities.TrackingEntry{Message: msg, Status: t.To, Timestamp: at})
	o.UpdatedAt = at
	return nil
}

// AppendTracking appends entries in the order given. Entries without a status take the order's
// current status; entries without a timestamp take now. Nothing is appended if any entry is blank.
func AppendTracking(o *entities.Order, now time.Time, entries ...entities.TrackingEntry) error {
	batch := make([]entities.TrackingEntry, 0, len(entries))
	for _, e := range entries {
		e.Message = strings.TrimSpace(e.Message)
		if e.Message == "" {
			return ErrEmptyTrackingMessage
		}
		if e.Status == "" {
			e.Status = o.Status
		}
		if e.Timestamp.IsZero() {
			e.Timestamp = now
		}
		e.Timestamp = e.Timestamp.UTC()
		batch = append(batch, e)
	}
	if len(batch) == 0 {
		return nil
	}
	o.Tracking = append(slices.Clip(o.Tracking), batch...)
	o.UpdatedAt = now.UTC()
	return nil
}
