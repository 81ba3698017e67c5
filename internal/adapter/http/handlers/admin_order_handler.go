package handlers

import (
	"net/http"

	request "github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/dto/request"
	response "github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/dto/response"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/pkg"

	"github.com/gin-gonic/gin"
)

// AdminOrderHandler serves order dispatch and the bulk admin update.
type AdminOrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewAdminOrderHandler(uc usecase.IOrderUseCase) *AdminOrderHandler {
	return &AdminOrderHandler{usecase: uc}
}

func (h *AdminOrderHandler) AssignPartner(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.AssignPartnerRequest
	if !bindJSON(c, &payload) {
		return
	}

	order, err := h.usecase.AssignPartner(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromOrder(order)))
}

// UpdateOrder applies status, partner, schedule and tracking changes in a single write.
func (h *AdminOrderHandler) UpdateOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.AdminUpdateStatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}

	order, err := h.usecase.AdminUpdateStatus(c.Request.Context(), actor, c.Param("id"), in)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromOrder(order)))
}

func (h *AdminOrderHandler) AppendTracking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.AppendTrackingRequest
	if !bindJSON(c, &payload) {
		return
	}
	entries, err := payload.ToEntries()
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}

	order, err := h.usecase.AppendTracking(c.Request.Context(), actor, c.Param("id"), entries)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromOrder(order)))
}

// ListCustomerOrders returns every order of one customer, filtered by the optional status query.
//
// @Summary  Orders of one customer
// @Tags     admin
// @Produce  json
// @Param    ownerId path  string true  "customer id"
// @Param    status  query string false "pending, assigned, inProgress, completed, cancelled, inCart or all"
// @Success  200 {object} pkg.SuccessEnvelope
// @Failure  400 {object} pkg.HTTPError
// @Failure  403 {object} pkg.HTTPError
// @Router   /admin/customers/{ownerId}/orders [get]
func (h *AdminOrderHandler) ListCustomerOrders(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orders, err := h.usecase.ListCustomerOrders(c.Request.Context(), actor, c.Param("ownerId"), c.Query("status"))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.SuccessList(response.FromOrders(orders), len(orders)))
}

// @Summary  Pending order counts per customer
// @Tags     admin
// @Produce  json
// @Success  200 {object} pkg.SuccessEnvelope
// @Failure  403 {object} pkg.HTTPError
// @Router   /admin/customers/pending [get]
func (h *AdminOrderHandler) PendingByCustomer(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	rows, err := h.usecase.PendingByCustomer(c.Request.Context(), actor)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.SuccessList(response.FromCustomerPending(rows), len(rows)))
}
