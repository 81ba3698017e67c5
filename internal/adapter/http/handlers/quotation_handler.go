package handlers

import (
	"context"
	"errors"
	"net/http"

	request "github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/dto/request"
	response "github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/dto/response"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/pkg"

	"github.com/gin-gonic/gin"
)

// QuotationHandler handles partner quotations and the customer's decision on them.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateQuotationRequest
	if !bindJSON(c, &payload) {
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		respondError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(response.FromQuotation(q)))
}

func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.UpdateQuotationRequest
	if !bindJSON(c, &payload) {
		return
	}

	q, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromQuotation(q)))
}

func (h *QuotationHandler) AcceptQuotation(c *gin.Context) {
	h.decide(c, h.usecase.Accept)
}

func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	h.decide(c, h.usecase.Reject)
}

func (h *QuotationHandler) decide(
	c *gin.Context,
	decider func(ctx context.Context, actor entities.Actor, id string) (entities.Quotation, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	q, err := decider(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromQuotation(q)))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	q, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromQuotation(q)))
}

func (h *QuotationHandler) ListByPartner(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	qs, err := h.usecase.ListByPartner(c.Request.Context(), actor, c.Param("partnerId"))
	if err != nil {
		respondError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.SuccessList(response.FromQuotations(qs), len(qs)))
}

func (h *QuotationHandler) ListByOwner(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	qs, err := h.usecase.ListByOwner(c.Request.Context(), actor, c.Param("userId"))
	if err != nil {
		respondError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.SuccessList(response.FromQuotations(qs), len(qs)))
}

func mapQuotationError(err error) *pkg.AppError {
	if appErr, ok := mapSharedError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidLineItems), errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuotationStatus):
		return pkg.NewDomainErrorSimple("INVALID_QUOTATION_STATUS", "Quotation status can only be set to draft or generated", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("RATE_ITEM_NOT_FOUND", "One or more rate card items were not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationClosed):
		return pkg.NewDomainErrorSimple("QUOTATION_CLOSED", "Quotation was already accepted or rejected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationConflict):
		return pkg.NewDomainErrorSimple("QUOTATION_CONFLICT", "Quotation was modified by another request, reload and retry", http.StatusConflict)
	default:
		return internalError(err)
	}
}
