package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/orderstate"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/metrics"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrQuotationNotFound      = errors.New("quotation not found")
	ErrInvalidQuotationID     = errors.New("invalid quotation id")
	ErrInvalidOwnerID         = errors.New("invalid owner id")
	ErrInvalidLineItems       = errors.New("at least one line item is required")
	ErrLineItemNotFound       = errors.New("rate card item not found")
	ErrQuotationClosed        = errors.New("quotation already accepted or rejected")
	ErrInvalidQuotationStatus = errors.New("quotation status can only be set to draft or generated")
	ErrQuotationConflict      = errors.New("quotation was modified concurrently")
)

type LineItemRequest struct {
	RateItemID string
	Quantity   int
}

type CreateQuotationInput struct {
	OwnerID           string
	ApplicationTypeID string
	LinkedOrderCode   string
	Items             []LineItemRequest
}

// UpdateQuotationInput leaves nil fields untouched. Items, when set, replace every line.
type UpdateQuotationInput struct {
	Items           []LineItemRequest
	Status          *entities.QuotationStatus
	LinkedOrderCode *string
}

// IQuotationUseCase exposes the quotation lifecycle.
//
// generated (or draft) quotations may be edited by their partner; the customer then accepts or
// rejects, which freezes the quotation and is mirrored into the linked order's tracking.
type IQuotationUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateQuotationInput) (entities.Quotation, error)
	Update(ctx context.Context, actor entities.Actor, id string, in UpdateQuotationInput) (entities.Quotation, error)
	Accept(ctx context.Context, actor entities.Actor, id string) (entities.Quotation, error)
	Reject(ctx context.Context, actor entities.Actor, id string) (entities.Quotation, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Quotation, error)
	ListByPartner(ctx context.Context, actor entities.Actor, partnerID string) ([]entities.Quotation, error)
	ListByOwner(ctx context.Context, actor entities.Actor, ownerID string) ([]entities.Quotation, error)
}

type QuotationUseCaseDeps struct {
	Quotations    interfaces.IQuotationRepository
	Orders        interfaces.IOrderRepository
	RateCards     interfaces.IRateCardRepository
	Notifications interfaces.INotificationPublisher
	NotifyTimeout time.Duration
	Logger        *zap.Logger
	Metrics       *metrics.DomainMetrics
	Now           func() time.Time
}

type QuotationUseCase struct {
	repo      interfaces.IQuotationRepository
	orders    interfaces.IOrderRepository
	rateCards interfaces.IRateCardRepository
	notify    notifier
	logger    *zap.Logger
	now       func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(deps QuotationUseCaseDeps) *QuotationUseCase {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuotationUseCase{
		repo:      deps.Quotations,
		orders:    deps.Orders,
		rateCards: deps.RateCards,
		notify:    newNotifier(deps.Notifications, deps.NotifyTimeout, logger, deps.Metrics),
		logger:    logger,
		now:       now,
	}
}

func (u *QuotationUseCase) Create(ctx context.Context, actor entities.Actor, in CreateQuotationInput) (entities.Quotation, error) {
	if !actor.Is(entities.RolePartner) {
		return entities.Quotation{}, ErrForbidden
	}
	ownerID := strings.TrimSpace(in.OwnerID)
	if ownerID == "" {
		return entities.Quotation{}, ErrInvalidOwnerID
	}

	lines, total, err := u.resolveLines(ctx, in.Items)
	if err != nil {
		return entities.Quotation{}, err
	}

	now := u.now().UTC()
	q := entities.Quotation{
		ID:                uuid.NewString(),
		PartnerID:         actor.ID,
		OwnerID:           ownerID,
		ApplicationTypeID: strings.TrimSpace(in.ApplicationTypeID),
		LinkedOrderCode:   strings.TrimSpace(in.LinkedOrderCode),
		LineItems:         lines,
		TotalAmount:       total,
		Status:            entities.QuotationStatusGenerated,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}

	u.logger.Info("[quotation][usecase] created",
		zap.String("quotation_id", created.ID),
		zap.String("order_code", created.LinkedOrderCode),
		zap.Float64("total_amount", created.TotalAmount),
	)
	u.notify.publish(ctx, UserChannel(created.OwnerID), EventQuotationGenerated, QuotationGeneratedEvent{
		QuotationID: created.ID,
		PartnerID:   created.PartnerID,
		OrderID:     created.LinkedOrderCode,
		TotalAmount: created.TotalAmount,
	})
	return created, nil
}

func (u *QuotationUseCase) Update(ctx context.Context, actor entities.Actor, id string, in UpdateQuotationInput) (entities.Quotation, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !actor.Is(entities.RoleAdmin) && !(actor.Is(entities.RolePartner) && q.PartnerID == actor.ID) {
		return entities.Quotation{}, ErrForbidden
	}
	if q.Status.IsTerminal() {
		return entities.Quotation{}, ErrQuotationClosed
	}

	expected := q.Status
	if in.Items != nil {
		lines, total, err := u.resolveLines(ctx, in.Items)
		if err != nil {
			return entities.Quotation{}, err
		}
		q.LineItems = lines
		q.TotalAmount = total
	}
	if in.Status != nil {
		if *in.Status != entities.QuotationStatusDraft && *in.Status != entities.QuotationStatusGenerated {
			return entities.Quotation{}, ErrInvalidQuotationStatus
		}
		q.Status = *in.Status
	}
	if in.LinkedOrderCode != nil {
		q.LinkedOrderCode = strings.TrimSpace(*in.LinkedOrderCode)
	}
	q.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, q, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Quotation{}, ErrQuotationConflict
		}
		return entities.Quotation{}, err
	}
	return updated, nil
}

func (u *QuotationUseCase) Accept(ctx context.Context, actor entities.Actor, id string) (entities.Quotation, error) {
	return u.decide(ctx, actor, id, entities.QuotationStatusAccepted, "Quotation accepted by customer")
}

func (u *QuotationUseCase) Reject(ctx context.Context, actor entities.Actor, id string) (entities.Quotation, error) {
	return u.decide(ctx, actor, id, entities.QuotationStatusRejected, "Quotation rejected by customer")
}

func (u *QuotationUseCase) decide(ctx context.Context, actor entities.Actor, id string, status entities.QuotationStatus, message string) (entities.Quotation, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !actor.Is(entities.RoleCustomer) || q.OwnerID != actor.ID {
		return entities.Quotation{}, ErrForbidden
	}
	if q.Status.IsTerminal() {
		return entities.Quotation{}, ErrQuotationClosed
	}

	now := u.now().UTC()
	var linked *entities.Order
	if q.LinkedOrderCode != "" {
		o, err := u.orders.FindByIdOrCode(ctx, q.LinkedOrderCode)
		if err != nil {
			return entities.Quotation{}, err
		}
		if o.ID != "" {
			// Tracking records the order's current status; the order status itself is untouched.
			if err := orderstate.AppendTracking(&o, now, entities.TrackingEntry{Message: message, Status: o.Status}); err != nil {
				return entities.Quotation{}, err
			}
			linked = &o
		} else {
			u.logger.Warn("[quotation][usecase] linked order not found",
				zap.String("quotation_id", q.ID),
				zap.String("order_code", q.LinkedOrderCode),
			)
		}
	}

	expected := q.Status
	q.Status = status
	q.UpdatedAt = now
	if err := u.repo.Decide(ctx, q, expected, linked); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Quotation{}, ErrQuotationConflict
		}
		return entities.Quotation{}, err
	}

	u.logger.Info("[quotation][usecase] decided",
		zap.String("quotation_id", q.ID),
		zap.String("status", string(status)),
	)
	u.notify.publish(ctx, PartnerChannel(q.PartnerID), EventQuotationResponse, QuotationResponseEvent{
		PartnerID:   q.PartnerID,
		QuotationID: q.ID,
		OrderID:     q.LinkedOrderCode,
		Status:      string(status),
		Message:     message,
	})
	return q, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Quotation, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	switch {
	case actor.Is(entities.RoleAdmin),
		actor.Is(entities.RolePartner) && q.PartnerID == actor.ID,
		actor.Is(entities.RoleCustomer) && q.OwnerID == actor.ID:
		return q, nil
	}
	return entities.Quotation{}, ErrForbidden
}

func (u *QuotationUseCase) ListByPartner(ctx context.Context, actor entities.Actor, partnerID string) ([]entities.Quotation, error) {
	partnerID = strings.TrimSpace(partnerID)
	if partnerID == "" {
		partnerID = actor.ID
	}
	if !actor.Is(entities.RoleAdmin) && !(actor.Is(entities.RolePartner) && partnerID == actor.ID) {
		return nil, ErrForbidden
	}
	return u.repo.ListByPartner(ctx, partnerID)
}

func (u *QuotationUseCase) ListByOwner(ctx context.Context, actor entities.Actor, ownerID string) ([]entities.Quotation, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		ownerID = actor.ID
	}
	if !actor.Is(entities.RoleAdmin) && !(actor.Is(entities.RoleCustomer) && ownerID == actor.ID) {
		return nil, ErrForbidden
	}
	return u.repo.ListByOwner(ctx, ownerID)
}

// resolveLines snapshots the current rate-card name and price of every requested item.
func (u *QuotationUseCase) resolveLines(ctx context.Context, items []LineItemRequest) ([]entities.QuotationLineItem, float64, error) {
	if len(items) == 0 {
		return nil, 0, ErrInvalidLineItems
	}

	ids := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.RateItemID)
		if id == "" {
			return nil, 0, ErrLineItemNotFound
		}
		if it.Quantity < 0 {
			return nil, 0, ErrInvalidQuantity
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	entries, err := u.rateCards.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	byID := make(map[string]entities.RateCardEntry, len(entries))
	for _, e := range entries {
		if e.IsActive {
			byID[e.ID] = e
		}
	}

	lines := make([]entities.QuotationLineItem, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		id := strings.TrimSpace(it.RateItemID)
		entry, ok := byID[id]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrLineItemNotFound, id)
		}
		quantity := it.Quantity
		if quantity == 0 {
			quantity = 1
		}
		price := decimal.NewFromFloat(entry.Price).Round(2)
		lineTotal := price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
		total = total.Add(lineTotal)
		lines = append(lines, entities.QuotationLineItem{
			CatalogRateItemID: id,
			NameSnapshot:      entry.Name,
			PriceSnapshot:     price.InexactFloat64(),
			Quantity:          quantity,
			LineTotal:         lineTotal.InexactFloat64(),
		})
	}
	return lines, total.InexactFloat64(), nil
}

func (u *QuotationUseCase) load(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}
