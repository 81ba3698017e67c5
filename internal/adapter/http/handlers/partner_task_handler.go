package handlers

import (
	"net/http"

	request "github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/dto/request"
	response "github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/dto/response"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/pkg"

	"github.com/gin-gonic/gin"
)

// PartnerTaskHandler serves the fulfilment endpoints of an assigned partner.
type PartnerTaskHandler struct {
	usecase usecase.IOrderUseCase
}

func NewPartnerTaskHandler(uc usecase.IOrderUseCase) *PartnerTaskHandler {
	return &PartnerTaskHandler{usecase: uc}
}

func (h *PartnerTaskHandler) ListTasks(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orders, err := h.usecase.ListPartnerTasks(c.Request.Context(), actor, c.Query("status"))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.SuccessList(response.FromOrders(orders), len(orders)))
}

func (h *PartnerTaskHandler) StartWork(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	order, err := h.usecase.StartWork(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromOrder(order)))
}

// StartService issues the service-start OTP. The code goes to the customer only and is
// never part of this response.
func (h *PartnerTaskHandler) StartService(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	order, _, err := h.usecase.StartVerification(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromOrder(order)))
}

func (h *PartnerTaskHandler) VerifyOtp(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.VerifyOtpRequest
	if !bindJSON(c, &payload) {
		return
	}

	order, err := h.usecase.VerifyOtp(c.Request.Context(), actor, c.Param("id"), payload.Code())
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromOrder(order)))
}

func (h *PartnerTaskHandler) Complete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CompleteRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	order, err := h.usecase.Complete(c.Request.Context(), actor, c.Param("id"), payload.ServiceNotes)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromOrder(order)))
}
