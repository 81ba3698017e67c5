package handlers

import (
	"errors"
	"net/http"

	request "github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/dto/request"
	response "github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/dto/response"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/pricing"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/pkg"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	usecase usecase.ICouponUseCase
}

func NewCouponHandler(uc usecase.ICouponUseCase) *CouponHandler {
	return &CouponHandler{usecase: uc}
}

func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CouponRequest
	if !bindJSON(c, &payload) {
		return
	}

	coupon, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		respondError(c, mapCouponError(err))
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(response.FromCoupon(coupon)))
}

func (h *CouponHandler) ListCoupons(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	coupons, err := h.usecase.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, mapCouponError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.SuccessList(response.FromCoupons(coupons), len(coupons)))
}

func (h *CouponHandler) GetCoupon(c *gin.Context) {
	coupon, err := h.usecase.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, mapCouponError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromCoupon(coupon)))
}

func (h *CouponHandler) UpdateCoupon(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CouponRequest
	if !bindJSON(c, &payload) {
		return
	}

	coupon, err := h.usecase.Update(c.Request.Context(), actor, c.Param("code"), payload.ToInput())
	if err != nil {
		respondError(c, mapCouponError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromCoupon(coupon)))
}

func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("code")); err != nil {
		respondError(c, mapCouponError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ValidateCoupon godoc
// @Summary  Check which cart services a coupon applies to
// @Tags     coupons
// @Accept   json
// @Produce  json
// @Param    payload body request.ValidateCouponRequest true "coupon code and service ids"
// @Success  200 {object} pkg.SuccessEnvelope
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /coupons/validate [post]
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	var payload request.ValidateCouponRequest
	if !bindJSON(c, &payload) {
		return
	}

	v, err := h.usecase.Validate(c.Request.Context(), payload.Code, payload.ServiceIDs)
	if err != nil {
		respondError(c, mapCouponError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromCouponValidation(v)))
}

func mapCouponError(err error) *pkg.AppError {
	if appErr, ok := mapSharedError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCouponCode), errors.Is(err, usecase.ErrInvalidDiscount),
		errors.Is(err, usecase.ErrInvalidDiscountCap), errors.Is(err, usecase.ErrInvalidValidityWindow),
		errors.Is(err, usecase.ErrInvalidCouponRules), errors.Is(err, usecase.ErrNoServices):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponNotFound):
		return pkg.NewDomainErrorSimple("COUPON_NOT_FOUND", "Coupon not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCouponAlreadyExists):
		return pkg.NewDomainErrorSimple("COUPON_ALREADY_EXISTS", "Coupon code already exists", http.StatusConflict)
	case errors.Is(err, pricing.ErrCouponInapplicable):
		return pkg.NewDomainError("COUPON_INAPPLICABLE", "Coupon is not valid for the selected services", err, http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
