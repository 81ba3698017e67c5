package handlers

import (
	"errors"
	"net/http"

	request "github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/dto/request"
	response "github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/dto/response"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/ordercode"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/orderstate"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/otp"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/pricing"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the customer side: cart maintenance, checkout and order history.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// AddToCart godoc
// @Summary  Add a catalog service to the cart
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    payload body request.AddToCartRequest true "service to add"
// @Success  201 {object} pkg.SuccessEnvelope
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /cart [post]
func (h *OrderHandler) AddToCart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.AddToCartRequest
	if !bindJSON(c, &payload) {
		return
	}

	order, err := h.usecase.AddToCart(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(response.FromOrder(order)))
}

func (h *OrderHandler) ListCart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orders, err := h.usecase.ListCart(c.Request.Context(), actor)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.SuccessList(response.FromOrders(orders), len(orders)))
}

func (h *OrderHandler) UpdateQuantity(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.UpdateQuantityRequest
	if !bindJSON(c, &payload) {
		return
	}

	order, err := h.usecase.UpdateQuantity(c.Request.Context(), actor, c.Param("id"), payload.Quantity)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromOrder(order)))
}

func (h *OrderHandler) RemoveFromCart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.usecase.RemoveFromCart(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) ClearCart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	removed, err := h.usecase.ClearCart(c.Request.Context(), actor)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.ClearCartResponse{Removed: removed}))
}

// Checkout godoc
// @Summary  Place a cart item; pricing is frozen on the order
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    id      path string                  true  "order id or order code"
// @Param    payload body request.CheckoutRequest false "coupon and delivery details"
// @Success  200 {object} pkg.SuccessEnvelope
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /cart/{id}/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CheckoutRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	order, err := h.usecase.Checkout(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromOrder(order)))
}

// ListOrders accepts ?status=pending|assigned|inProgress|completed|cancelled|all (default all).
func (h *OrderHandler) ListOrders(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orders, err := h.usecase.ListOrders(c.Request.Context(), actor, c.Query("status"))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.SuccessList(response.FromOrders(orders), len(orders)))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	order, err := h.usecase.GetOrder(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromOrder(order)))
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CancelRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	order, err := h.usecase.Cancel(c.Request.Context(), actor, c.Param("id"), payload.Reason)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromOrder(order)))
}

func (h *OrderHandler) SubmitFeedback(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.FeedbackRequest
	if !bindJSON(c, &payload) {
		return
	}

	order, err := h.usecase.SubmitFeedback(c.Request.Context(), actor, c.Param("id"), payload.Feedback)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromOrder(order)))
}

func mapOrderError(err error) *pkg.AppError {
	if appErr, ok := mapSharedError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidStatusFilter),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidFeedback), errors.Is(err, orderstate.ErrEmptyTrackingMessage),
		errors.Is(err, orderstate.ErrPartnerRequired), errors.Is(err, request.ErrInvalidOrderStatus):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemAlreadyInCart):
		return pkg.NewDomainErrorSimple("ITEM_ALREADY_IN_CART", "Item already exists in cart", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderConflict):
		return pkg.NewDomainErrorSimple("ORDER_CONFLICT", "Order was modified by another request, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotInCart):
		return pkg.NewDomainErrorSimple("ORDER_NOT_IN_CART", "Order is no longer in the cart", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotCompleted):
		return pkg.NewDomainErrorSimple("ORDER_NOT_COMPLETED", "Feedback is only accepted on completed orders", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReassignNotAllowed):
		return pkg.NewDomainErrorSimple("REASSIGN_NOT_ALLOWED", "Partner can only be changed on assigned or in-progress orders", http.StatusBadRequest)
	case errors.Is(err, orderstate.ErrMissingDeliveryDetails):
		return pkg.NewDomainErrorSimple("MISSING_DELIVERY_DETAILS", "Delivery address and contact number are required", http.StatusBadRequest)
	case errors.Is(err, orderstate.ErrOtpNotVerified):
		return pkg.NewDomainErrorSimple("OTP_NOT_VERIFIED", "Service OTP must be verified before completion", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrCouponInapplicable):
		return pkg.NewDomainError("COUPON_INAPPLICABLE", "Coupon cannot be applied to this order", err, http.StatusBadRequest)
	case errors.Is(err, pricing.ErrServiceUnavailable):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Service has no valid price", err, http.StatusBadRequest)
	case errors.Is(err, otp.ErrInvalidState), errors.Is(err, otp.ErrNoOtpPending):
		return pkg.NewDomainError("OTP_NOT_PENDING", "No service OTP is pending for this order", err, http.StatusBadRequest)
	case errors.Is(err, otp.ErrExpired):
		return pkg.NewDomainErrorSimple("OTP_EXPIRED", "Service OTP expired, request a new one", http.StatusBadRequest)
	case errors.Is(err, otp.ErrMismatch):
		return pkg.NewDomainErrorSimple("OTP_MISMATCH", "Invalid service OTP", http.StatusBadRequest)
	case errors.Is(err, otp.ErrAttemptsExceeded):
		return pkg.NewDomainErrorSimple("OTP_ATTEMPTS_EXCEEDED", "Too many failed attempts, request a new OTP", http.StatusBadRequest)
	case errors.Is(err, ordercode.ErrGenerationExhausted):
		return pkg.NewDomainError("ORDER_CODE_UNAVAILABLE", "Could not allocate an order code, retry the request", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
