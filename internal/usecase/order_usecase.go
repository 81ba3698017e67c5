package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/ordercode"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/orderstate"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/otp"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/pricing"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/metrics"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrServiceNotFound     = errors.New("service not found")
	ErrItemAlreadyInCart   = errors.New("item already exists in cart")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrOrderNotInCart      = errors.New("order is no longer in the cart")
	ErrOrderNotCompleted   = errors.New("order is not completed")
	ErrInvalidFeedback     = errors.New("feedback is required")
	ErrReassignNotAllowed  = errors.New("partner can only be changed on assigned or in-progress orders")
	ErrForbidden           = errors.New("forbidden")
	ErrOrderConflict       = errors.New("order was modified concurrently")
)

// StatusFilterAll lists every placed order regardless of status.
const StatusFilterAll = "all"

var statusFilters = []string{
	string(entities.OrderStatusPending),
	string(entities.OrderStatusAssigned),
	string(entities.OrderStatusInProgress),
	string(entities.OrderStatusCompleted),
	string(entities.OrderStatusCancelled),
	StatusFilterAll,
}

type AddToCartInput struct {
	ServiceID       string
	Quantity        int
	DeliveryAddress *entities.Address
	ContactNumber   *entities.ContactNumber
}

type CheckoutInput struct {
	CouponCode      string
	DeliveryAddress *entities.Address
	ContactNumber   *entities.ContactNumber
}

type AssignInput struct {
	PartnerID     string
	ScheduledDate *time.Time
	Message       string
}

// AdminUpdateInput changes several things in one write: status first, then partner and schedule,
// then the tracking batch in caller order.
type AdminUpdateInput struct {
	Status        *entities.OrderStatus
	PartnerID     string
	ScheduledDate *time.Time
	Message       string
	Tracking      []entities.TrackingEntry
}

// CustomerPending is one customer's share of the dispatch queue.
type CustomerPending struct {
	OwnerID       string
	Pending       int
	LatestOrderAt time.Time
}

// IOrderUseCase exposes the cart and order lifecycle.
//
//   - cart: AddToCart, ListCart, UpdateQuantity, RemoveFromCart, ClearCart
//   - placing: Checkout (pricing is frozen here)
//   - fulfilment: AssignPartner, StartWork, StartVerification, VerifyOtp, Complete, Cancel
//   - admin: AppendTracking, AdminUpdateStatus, ListCustomerOrders, PendingByCustomer
type IOrderUseCase interface {
	AddToCart(ctx context.Context, actor entities.Actor, in AddToCartInput) (entities.Order, error)
	ListCart(ctx context.Context, actor entities.Actor) ([]entities.Order, error)
	ListOrders(ctx context.Context, actor entities.Actor, status string) ([]entities.Order, error)
	ListPartnerTasks(ctx context.Context, actor entities.Actor, status string) ([]entities.Order, error)
	GetOrder(ctx context.Context, actor entities.Actor, idOrCode string) (entities.Order, error)
	UpdateQuantity(ctx context.Context, actor entities.Actor, idOrCode string, quantity int) (entities.Order, error)
	RemoveFromCart(ctx context.Context, actor entities.Actor, idOrCode string) error
	ClearCart(ctx context.Context, actor entities.Actor) (int, error)
	Checkout(ctx context.Context, actor entities.Actor, idOrCode string, in CheckoutInput) (entities.Order, error)
	AssignPartner(ctx context.Context, actor entities.Actor, idOrCode string, in AssignInput) (entities.Order, error)
	StartWork(ctx context.Context, actor entities.Actor, idOrCode string) (entities.Order, error)
	Cancel(ctx context.Context, actor entities.Actor, idOrCode string, reason string) (entities.Order, error)
	StartVerification(ctx context.Context, actor entities.Actor, idOrCode string) (entities.Order, int, error)
	VerifyOtp(ctx context.Context, actor entities.Actor, idOrCode string, code string) (entities.Order, error)
	Complete(ctx context.Context, actor entities.Actor, idOrCode string, notes string) (entities.Order, error)
	SubmitFeedback(ctx context.Context, actor entities.Actor, idOrCode string, feedback string) (entities.Order, error)
	AppendTracking(ctx context.Context, actor entities.Actor, idOrCode string, entries []entities.TrackingEntry) (entities.Order, error)
	AdminUpdateStatus(ctx context.Context, actor entities.Actor, idOrCode string, in AdminUpdateInput) (entities.Order, error)
	ListCustomerOrders(ctx context.Context, actor entities.Actor, ownerID string, status string) ([]entities.Order, error)
	PendingByCustomer(ctx context.Context, actor entities.Actor) ([]CustomerPending, error)
}

type OrderUseCaseDeps struct {
	Orders        interfaces.IOrderRepository
	Catalog       interfaces.ICatalogReader
	Coupons       pricing.CouponFinder
	Notifications interfaces.INotificationPublisher
	OtpSender     interfaces.IOtpSender
	NotifyTimeout time.Duration
	Logger        *zap.Logger
	Metrics       *metrics.DomainMetrics
	Codes         *ordercode.Generator
	Gate          *otp.Gate
	Now           func() time.Time
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	catalog interfaces.ICatalogReader
	pricing *pricing.Engine
	codes   *ordercode.Generator
	gate    *otp.Gate
	sms     interfaces.IOtpSender
	notify  notifier
	logger  *zap.Logger
	metrics *metrics.DomainMetrics
	now     func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(deps OrderUseCaseDeps) *OrderUseCase {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	codes := deps.Codes
	if codes == nil {
		codes = ordercode.NewGeneratorWith(now, nil)
	}
	gate := deps.Gate
	if gate == nil {
		gate = otp.NewGateWith(now, nil)
	}
	return &OrderUseCase{
		repo:    deps.Orders,
		catalog: deps.Catalog,
		pricing: pricing.NewEngine(deps.Coupons, now),
		codes:   codes,
		gate:    gate,
		sms:     deps.OtpSender,
		notify:  newNotifier(deps.Notifications, deps.NotifyTimeout, logger, deps.Metrics),
		logger:  logger,
		metrics: deps.Metrics,
		now:     now,
	}
}

func (u *OrderUseCase) AddToCart(ctx context.Context, actor entities.Actor, in AddToCartInput) (entities.Order, error) {
	if !actor.Is(entities.RoleCustomer) {
		return entities.Order{}, ErrForbidden
	}
	serviceID := strings.TrimSpace(in.ServiceID)
	if serviceID == "" {
		return entities.Order{}, ErrInvalidServiceID
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return entities.Order{}, ErrInvalidQuantity
	}

	service, err := u.catalog.GetServicePrice(ctx, serviceID)
	if err != nil {
		return entities.Order{}, err
	}
	if service.ServiceID == "" || !service.IsActive {
		return entities.Order{}, ErrServiceNotFound
	}

	owned, err := u.repo.ListByOwner(ctx, actor.ID)
	if err != nil {
		return entities.Order{}, err
	}
	for _, o := range owned {
		if o.Status == entities.OrderStatusInCart && o.CatalogItemID == serviceID {
			return entities.Order{}, ErrItemAlreadyInCart
		}
	}

	baseCost, _ := pricing.ParsePrice(service.Price)
	now := u.now().UTC()
	draft := entities.Order{
		ID:                uuid.NewString(),
		OwnerID:           actor.ID,
		CatalogItemID:     serviceID,
		CatalogItemName:   service.Name,
		CatalogItemImage:  service.Image,
		MainServiceID:     service.MainServiceID,
		ApplicationTypeID: service.ApplicationTypeID,
		BaseCost:          baseCost,
		Quantity:          quantity,
		Status:            entities.OrderStatusInCart,
		DeliveryAddress:   in.DeliveryAddress,
		ContactNumber:     in.ContactNumber,
		Tracking: []entities.TrackingEntry{
			{Message: "Item added to cart", Status: entities.OrderStatusInCart, Timestamp: now},
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var created entities.Order
	_, err = u.codes.Generate(ctx, func(ctx context.Context, code string) error {
		candidate := draft
		candidate.OrderCode = code
		saved, err := u.repo.Create(ctx, candidate)
		if errors.Is(err, interfaces.ErrOrderCodeTaken) {
			u.logger.Info("[order][usecase] order code collision", zap.String("order_code", code))
			return ordercode.ErrCodeTaken
		}
		if err != nil {
			return err
		}
		created = saved
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	u.logger.Info("[order][usecase] added to cart",
		zap.String("order_id", created.ID),
		zap.String("order_code", created.OrderCode),
		zap.String("service_id", serviceID),
	)
	return created, nil
}

func (u *OrderUseCase) ListCart(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if !actor.Is(entities.RoleCustomer) {
		return nil, ErrForbidden
	}
	owned, err := u.repo.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return filterByStatus(owned, string(entities.OrderStatusInCart)), nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context, actor entities.Actor, status string) ([]entities.Order, error) {
	status, err := statusFilter(status)
	if err != nil {
		return nil, err
	}

	var orders []entities.Order
	switch actor.Role {
	case entities.RoleCustomer:
		orders, err = u.repo.ListByOwner(ctx, actor.ID)
	case entities.RolePartner:
		orders, err = u.repo.ListByPartner(ctx, actor.ID)
	case entities.RoleAdmin:
		orders, err = u.repo.ListAll(ctx)
	default:
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	return filterByStatus(orders, status), nil
}

// ListCustomerOrders is the admin view of one customer's orders. The inCart filter exposes their cart.
func (u *OrderUseCase) ListCustomerOrders(ctx context.Context, actor entities.Actor, ownerID string, status string) ([]entities.Order, error) {
	if !actor.Is(entities.RoleAdmin) {
		return nil, ErrForbidden
	}
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidCustomerID
	}
	status = strings.TrimSpace(status)
	if status != string(entities.OrderStatusInCart) {
		var err error
		if status, err = statusFilter(status); err != nil {
			return nil, err
		}
	}

	orders, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return filterByStatus(orders, status), nil
}

// PendingByCustomer counts pending orders per customer, busiest customer first.
func (u *OrderUseCase) PendingByCustomer(ctx context.Context, actor entities.Actor) ([]CustomerPending, error) {
	if !actor.Is(entities.RoleAdmin) {
		return nil, ErrForbidden
	}
	orders, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var out []CustomerPending
	for _, o := range orders {
		if o.Status != entities.OrderStatusPending {
			continue
		}
		i, ok := index[o.OwnerID]
		if !ok {
			i = len(out)
			index[o.OwnerID] = i
			out = append(out, CustomerPending{OwnerID: o.OwnerID})
		}
		out[i].Pending++
		if o.CreatedAt.After(out[i].LatestOrderAt) {
			out[i].LatestOrderAt = o.CreatedAt
		}
	}
	slices.SortStableFunc(out, func(a, b CustomerPending) int {
		if a.Pending != b.Pending {
			return b.Pending - a.Pending
		}
		return strings.Compare(a.OwnerID, b.OwnerID)
	})
	return out, nil
}

func (u *OrderUseCase) ListPartnerTasks(ctx context.Context, actor entities.Actor, status string) ([]entities.Order, error) {
	if !actor.Is(entities.RolePartner) {
		return nil, ErrForbidden
	}
	return u.ListOrders(ctx, actor, status)
}

func (u *OrderUseCase) GetOrder(ctx context.Context, actor entities.Actor, idOrCode string) (entities.Order, error) {
	o, err := u.load(ctx, idOrCode)
	if err != nil {
		return entities.Order{}, err
	}
	if !canView(actor, o) {
		return entities.Order{}, ErrForbidden
	}
	return o, nil
}

func (u *OrderUseCase) UpdateQuantity(ctx context.Context, actor entities.Actor, idOrCode string, quantity int) (entities.Order, error) {
	if quantity < 1 {
		return entities.Order{}, ErrInvalidQuantity
	}
	o, err := u.loadOwned(ctx, actor, idOrCode)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Status != entities.OrderStatusInCart {
		return entities.Order{}, ErrOrderNotInCart
	}

	o.Quantity = quantity
	o.UpdatedAt = u.now().UTC()
	return u.save(ctx, o, entities.OrderStatusInCart)
}

func (u *OrderUseCase) RemoveFromCart(ctx context.Context, actor entities.Actor, idOrCode string) error {
	o, err := u.loadOwned(ctx, actor, idOrCode)
	if err != nil {
		return err
	}
	if o.Status != entities.OrderStatusInCart {
		return ErrOrderNotInCart
	}
	if err := u.repo.Delete(ctx, o.ID, entities.OrderStatusInCart); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return ErrOrderConflict
		}
		return err
	}
	u.logger.Info("[order][usecase] removed from cart", zap.String("order_id", o.ID))
	return nil
}

// ClearCart removes every in-cart item of the caller and returns how many were removed.
// Items that left the cart concurrently are skipped.
func (u *OrderUseCase) ClearCart(ctx context.Context, actor entities.Actor) (int, error) {
	cart, err := u.ListCart(ctx, actor)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, o := range cart {
		err := u.repo.Delete(ctx, o.ID, entities.OrderStatusInCart)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			continue
		}
		if err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (u *OrderUseCase) Checkout(ctx context.Context, actor entities.Actor, idOrCode string, in CheckoutInput) (entities.Order, error) {
	o, err := u.loadOwned(ctx, actor, idOrCode)
	if err != nil {
		return entities.Order{}, err
	}
	if err := orderstate.Check(o.Status, entities.OrderStatusPending, actor.Role); err != nil {
		return entities.Order{}, err
	}

	if in.DeliveryAddress != nil {
		o.DeliveryAddress = in.DeliveryAddress
	}
	if in.ContactNumber != nil {
		o.ContactNumber = in.ContactNumber
	}

	var live *entities.ServiceSnapshot
	snapshot, err := u.catalog.GetServicePrice(ctx, o.CatalogItemID)
	if err != nil {
		return entities.Order{}, err
	}
	if snapshot.ServiceID != "" {
		live = &snapshot
	}

	priced, err := u.pricing.PriceOrder(ctx, o, live, in.CouponCode)
	if err != nil {
		u.metrics.Checkout(checkoutResult(err))
		return entities.Order{}, err
	}

	previous := o
	o.Pricing = &priced
	o.BaseCost = priced.OriginalServiceCost
	if err := orderstate.Apply(&o, orderstate.Transition{
		To:   entities.OrderStatusPending,
		Role: actor.Role,
		At:   u.now(),
	}); err != nil {
		return entities.Order{}, err
	}

	saved, err := u.persistTransition(ctx, previous, o)
	if err != nil {
		return entities.Order{}, err
	}
	u.metrics.Checkout("ok")
	u.notify.publish(ctx, AdminChannel, EventNewOrder, orderEvent(saved, "New order placed"))
	return saved, nil
}

func (u *OrderUseCase) AssignPartner(ctx context.Context, actor entities.Actor, idOrCode string, in AssignInput) (entities.Order, error) {
	o, err := u.load(ctx, idOrCode)
	if err != nil {
		return entities.Order{}, err
	}

	previous := o
	if err := orderstate.Apply(&o, orderstate.Transition{
		To:        entities.OrderStatusAssigned,
		Role:      actor.Role,
		PartnerID: in.PartnerID,
		Message:   in.Message,
		At:        u.now(),
	}); err != nil {
		return entities.Order{}, err
	}
	if in.ScheduledDate != nil {
		o.ScheduledDate = in.ScheduledDate
	}

	saved, err := u.persistTransition(ctx, previous, o)
	if err != nil {
		return entities.Order{}, err
	}
	u.announceTransition(ctx, previous.Status, saved)
	return saved, nil
}

func (u *OrderUseCase) StartWork(ctx context.Context, actor entities.Actor, idOrCode string) (entities.Order, error) {
	return u.workerTransition(ctx, actor, idOrCode, entities.OrderStatusInProgress, "", nil)
}

func (u *OrderUseCase) Cancel(ctx context.Context, actor entities.Actor, idOrCode string, reason string) (entities.Order, error) {
	return u.workerTransition(ctx, actor, idOrCode, entities.OrderStatusCancelled, reason, clearServiceOtp)
}

func (u *OrderUseCase) Complete(ctx context.Context, actor entities.Actor, idOrCode string, notes string) (entities.Order, error) {
	o, err := u.load(ctx, idOrCode)
	if err != nil {
		return entities.Order{}, err
	}
	if !canWork(actor, o) {
		return entities.Order{}, ErrForbidden
	}
	if !o.OtpVerified {
		return entities.Order{}, orderstate.ErrOtpNotVerified
	}
	return u.applyWorker(ctx, actor, o, entities.OrderStatusCompleted, "", func(o *entities.Order) {
		o.ServiceNotes = strings.TrimSpace(notes)
	})
}

// StartVerification issues the service-start code. The code goes to the customer only; callers
// serving a partner must not echo it back.
func (u *OrderUseCase) StartVerification(ctx context.Context, actor entities.Actor, idOrCode string) (entities.Order, int, error) {
	o, err := u.load(ctx, idOrCode)
	if err != nil {
		return entities.Order{}, 0, err
	}
	if !isWorker(actor) || !canWork(actor, o) {
		return entities.Order{}, 0, ErrForbidden
	}

	code, err := u.gate.Start(&o)
	if err != nil {
		return entities.Order{}, 0, err
	}
	o.UpdatedAt = u.now().UTC()
	saved, err := u.save(ctx, o, entities.OrderStatusInProgress)
	if err != nil {
		return entities.Order{}, 0, err
	}

	u.logger.Info("[otp][usecase] verification started", zap.String("order_id", saved.ID))
	u.notify.publish(ctx, UserChannel(saved.OwnerID), EventServiceOtp, ServiceOtpEvent{
		OrderID:   saved.ID,
		OrderCode: saved.OrderCode,
		Otp:       code,
		ExpiresAt: *saved.ServiceOtpExpiry,
	})
	u.sendOtpSms(ctx, saved, code)
	return saved, code, nil
}

func (u *OrderUseCase) VerifyOtp(ctx context.Context, actor entities.Actor, idOrCode string, code string) (entities.Order, error) {
	o, err := u.load(ctx, idOrCode)
	if err != nil {
		return entities.Order{}, err
	}
	if !isWorker(actor) || !canWork(actor, o) {
		return entities.Order{}, ErrForbidden
	}

	verifyErr := u.gate.Verify(&o, code)
	switch {
	case verifyErr == nil:
		if err := orderstate.AppendTracking(&o, u.now().UTC(), entities.TrackingEntry{Message: "Service OTP verified"}); err != nil {
			return entities.Order{}, err
		}
	case errors.Is(verifyErr, otp.ErrMismatch), errors.Is(verifyErr, otp.ErrAttemptsExceeded):
		// The failed attempt must be persisted before reporting it.
		o.UpdatedAt = u.now().UTC()
	default:
		u.metrics.Otp(otpResult(verifyErr))
		return entities.Order{}, verifyErr
	}

	saved, err := u.save(ctx, o, entities.OrderStatusInProgress)
	if err != nil {
		return entities.Order{}, err
	}
	u.metrics.Otp(otpResult(verifyErr))
	if verifyErr != nil {
		u.logger.Warn("[otp][usecase] verification failed",
			zap.String("order_id", saved.ID),
			zap.Int("failed_attempts", saved.OtpFailedAttempts),
			zap.Error(verifyErr),
		)
		return entities.Order{}, verifyErr
	}
	return saved, nil
}

func (u *OrderUseCase) SubmitFeedback(ctx context.Context, actor entities.Actor, idOrCode string, feedback string) (entities.Order, error) {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return entities.Order{}, ErrInvalidFeedback
	}
	o, err := u.loadOwned(ctx, actor, idOrCode)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Status != entities.OrderStatusCompleted {
		return entities.Order{}, ErrOrderNotCompleted
	}
	o.CustomerFeedback = feedback
	o.UpdatedAt = u.now().UTC()
	return u.save(ctx, o, entities.OrderStatusCompleted)
}

func (u *OrderUseCase) AppendTracking(ctx context.Context, actor entities.Actor, idOrCode string, entries []entities.TrackingEntry) (entities.Order, error) {
	if !actor.Is(entities.RoleAdmin) {
		return entities.Order{}, ErrForbidden
	}
	o, err := u.load(ctx, idOrCode)
	if err != nil {
		return entities.Order{}, err
	}
	status := o.Status
	if err := orderstate.AppendTracking(&o, u.now().UTC(), entries...); err != nil {
		return entities.Order{}, err
	}
	return u.save(ctx, o, status)
}

func (u *OrderUseCase) AdminUpdateStatus(ctx context.Context, actor entities.Actor, idOrCode string, in AdminUpdateInput) (entities.Order, error) {
	if !actor.Is(entities.RoleAdmin) {
		return entities.Order{}, ErrForbidden
	}
	o, err := u.load(ctx, idOrCode)
	if err != nil {
		return entities.Order{}, err
	}

	previous := o
	now := u.now().UTC()
	partnerID := strings.TrimSpace(in.PartnerID)
	transitioned := in.Status != nil && *in.Status != o.Status

	if transitioned {
		t := orderstate.Transition{To: *in.Status, Role: actor.Role, Message: in.Message, PartnerID: partnerID, At: now}
		if err := orderstate.Apply(&o, t); err != nil {
			return entities.Order{}, err
		}
		if o.Status == entities.OrderStatusCancelled {
			clearServiceOtp(&o)
		}
	}
	// A partner on a transition to any status but assigned is applied on top of the new status.
	if partnerID != "" && partnerID != o.AssignedPartnerID {
		if o.Status != entities.OrderStatusAssigned && o.Status != entities.OrderStatusInProgress {
			return entities.Order{}, ErrReassignNotAllowed
		}
		message := "Partner reassigned"
		if o.AssignedPartnerID == "" {
			message = "Partner assigned"
		}
		o.AssignedPartnerID = partnerID
		if err := orderstate.AppendTracking(&o, now, entities.TrackingEntry{Message: message}); err != nil {
			return entities.Order{}, err
		}
	}
	if in.ScheduledDate != nil {
		o.ScheduledDate = in.ScheduledDate
		o.UpdatedAt = now
	}
	if err := orderstate.AppendTracking(&o, now, in.Tracking...); err != nil {
		return entities.Order{}, err
	}

	saved, err := u.persistTransition(ctx, previous, o)
	if err != nil {
		return entities.Order{}, err
	}
	if transitioned {
		u.announceTransition(ctx, previous.Status, saved)
	}
	if saved.AssignedPartnerID != previous.AssignedPartnerID && !(transitioned && saved.Status == entities.OrderStatusAssigned) {
		u.notify.publish(ctx, PartnerChannel(saved.AssignedPartnerID), EventTaskAssigned, orderEvent(saved, "New task assigned"))
	}
	return saved, nil
}

func (u *OrderUseCase) workerTransition(ctx context.Context, actor entities.Actor, idOrCode string, to entities.OrderStatus, message string, mutate func(*entities.Order)) (entities.Order, error) {
	o, err := u.load(ctx, idOrCode)
	if err != nil {
		return entities.Order{}, err
	}
	if !canWork(actor, o) {
		return entities.Order{}, ErrForbidden
	}
	return u.applyWorker(ctx, actor, o, to, message, mutate)
}

func (u *OrderUseCase) applyWorker(ctx context.Context, actor entities.Actor, o entities.Order, to entities.OrderStatus, message string, mutate func(*entities.Order)) (entities.Order, error) {
	previous := o
	if err := orderstate.Apply(&o, orderstate.Transition{To: to, Role: actor.Role, Message: message, At: u.now()}); err != nil {
		return entities.Order{}, err
	}
	if mutate != nil {
		mutate(&o)
	}
	saved, err := u.persistTransition(ctx, previous, o)
	if err != nil {
		return entities.Order{}, err
	}
	u.announceTransition(ctx, previous.Status, saved)
	return saved, nil
}

func (u *OrderUseCase) persistTransition(ctx context.Context, previous, next entities.Order) (entities.Order, error) {
	saved, err := u.save(ctx, next, previous.Status)
	if err != nil {
		return entities.Order{}, err
	}
	if saved.Status != previous.Status {
		u.metrics.Transition(string(previous.Status), string(saved.Status))
		u.logger.Info("[order][usecase] status changed",
			zap.String("order_id", saved.ID),
			zap.String("order_code", saved.OrderCode),
			zap.String("from", string(previous.Status)),
			zap.String("to", string(saved.Status)),
		)
	}
	return saved, nil
}

func (u *OrderUseCase) announceTransition(ctx context.Context, from entities.OrderStatus, o entities.Order) {
	if from == o.Status {
		return
	}
	last := ""
	if n := len(o.Tracking); n > 0 {
		last = o.Tracking[n-1].Message
	}
	if o.Status == entities.OrderStatusAssigned {
		u.notify.publish(ctx, PartnerChannel(o.AssignedPartnerID), EventTaskAssigned, orderEvent(o, "New task assigned"))
		u.notify.publish(ctx, UserChannel(o.OwnerID), EventOrderAssigned, orderEvent(o, "A partner has been assigned to your order"))
		return
	}
	u.notify.publish(ctx, UserChannel(o.OwnerID), EventOrderStatusUpdated, orderEvent(o, last))
}

func (u *OrderUseCase) save(ctx context.Context, o entities.Order, expected entities.OrderStatus) (entities.Order, error) {
	saved, err := u.repo.Update(ctx, o, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Order{}, fmt.Errorf("%w: %s", ErrOrderConflict, o.ID)
		}
		return entities.Order{}, err
	}
	return saved, nil
}

func (u *OrderUseCase) sendOtpSms(ctx context.Context, o entities.Order, code int) {
	if u.sms == nil || o.ContactNumber == nil || strings.TrimSpace(o.ContactNumber.Number) == "" {
		return
	}
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.notify.timeout)
	defer cancel()
	if err := u.sms.SendOtp(sendCtx, o.ContactNumber.Number, code); err != nil {
		u.metrics.NotificationFailed("service-otp-sms")
		u.logger.Warn("[otp][usecase] sms delivery failed", zap.String("order_id", o.ID), zap.Error(err))
	}
}

func (u *OrderUseCase) load(ctx context.Context, idOrCode string) (entities.Order, error) {
	idOrCode = strings.TrimSpace(idOrCode)
	if idOrCode == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.FindByIdOrCode(ctx, idOrCode)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) loadOwned(ctx context.Context, actor entities.Actor, idOrCode string) (entities.Order, error) {
	o, err := u.load(ctx, idOrCode)
	if err != nil {
		return entities.Order{}, err
	}
	if o.OwnerID != actor.ID {
		return entities.Order{}, ErrForbidden
	}
	return o, nil
}

func canView(actor entities.Actor, o entities.Order) bool {
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RolePartner:
		return o.AssignedPartnerID != "" && o.AssignedPartnerID == actor.ID
	default:
		return o.OwnerID == actor.ID
	}
}

// canWork rejects partners acting on someone else's task. Other roles are left to the state machine.
func canWork(actor entities.Actor, o entities.Order) bool {
	if actor.Is(entities.RolePartner) {
		return o.AssignedPartnerID != "" && o.AssignedPartnerID == actor.ID
	}
	return true
}

func isWorker(actor entities.Actor) bool {
	return actor.Is(entities.RolePartner) || actor.Is(entities.RoleAdmin)
}

func statusFilter(status string) (string, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return StatusFilterAll, nil
	}
	if !slices.Contains(statusFilters, status) {
		return "", ErrInvalidStatusFilter
	}
	return status, nil
}

func filterByStatus(orders []entities.Order, status string) []entities.Order {
	out := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		switch {
		case status == StatusFilterAll && o.Status != entities.OrderStatusInCart:
			out = append(out, o)
		case string(o.Status) == status:
			out = append(out, o)
		}
	}
	return out
}

// clearServiceOtp drops a pending service OTP so a cancelled order can never be verified.
func clearServiceOtp(o *entities.Order) {
	o.ServiceOtp = nil
	o.ServiceOtpExpiry = nil
}

func orderEvent(o entities.Order, message string) OrderEvent {
	return OrderEvent{
		OrderID:   o.ID,
		OrderCode: o.OrderCode,
		Status:    string(o.Status),
		PartnerID: o.AssignedPartnerID,
		Message:   message,
	}
}

func checkoutResult(err error) string {
	switch {
	case errors.Is(err, pricing.ErrCouponInapplicable):
		return "coupon_inapplicable"
	case errors.Is(err, pricing.ErrServiceUnavailable):
		return "service_unavailable"
	default:
		return "error"
	}
}

func otpResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, otp.ErrMismatch):
		return "mismatch"
	case errors.Is(err, otp.ErrAttemptsExceeded):
		return "locked"
	case errors.Is(err, otp.ErrExpired):
		return "expired"
	default:
		return "rejected"
	}
}
