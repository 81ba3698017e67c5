package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/handlers/mocks"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/pricing"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const couponBody = `{"code":"save10","discount_percentage":10,"max_discount_amount":150,` +
	`"valid_from":"2024-01-01T00:00:00Z","valid_until":"2024-12-31T23:59:59Z",` +
	`"applicable_to":[{"application_type_id":"app-1","service_type_ids":["svc-1"]}]}`

func TestCouponHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create rejects discount above 100", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := newTestRouter(testAdmin)
		r.POST("/v1/coupons", h.CreateCoupon)

		body := strings.Replace(couponBody, `"discount_percentage":10`, `"discount_percentage":120`, 1)
		w := doJSON(r, http.MethodPost, "/v1/coupons", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := newTestRouter(testAdmin)
		r.POST("/v1/coupons", h.CreateCoupon)

		uc.EXPECT().Create(gomock.Any(), testAdmin, gomock.Any()).Return(entities.Coupon{}, usecase.ErrCouponAlreadyExists)

		w := doJSON(r, http.MethodPost, "/v1/coupons", couponBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := newTestRouter(testAdmin)
		r.POST("/v1/coupons", h.CreateCoupon)

		uc.EXPECT().Create(gomock.Any(), testAdmin, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Actor, in usecase.CouponInput) (entities.Coupon, error) {
				if in.MaxDiscountAmount == nil || *in.MaxDiscountAmount != 150 || !in.IsActive {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Coupon{Code: "SAVE10", DiscountPercentage: 10, MaxDiscountAmount: in.MaxDiscountAmount, IsActive: true}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/coupons", couponBody)
		if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"code":"SAVE10"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := newTestRouter(testAdmin)
		r.GET("/v1/coupons", h.ListCoupons)

		uc.EXPECT().List(gomock.Any(), testAdmin).Return([]entities.Coupon{{Code: "A"}, {Code: "B"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/coupons", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"count":2`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := newTestRouter(testAdmin)
		r.GET("/v1/coupons/:code", h.GetCoupon)

		uc.EXPECT().GetByCode(gomock.Any(), "nope").Return(entities.Coupon{}, usecase.ErrCouponNotFound)

		w := doJSON(r, http.MethodGet, "/v1/coupons/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := newTestRouter(testAdmin)
		r.PUT("/v1/coupons/:code", h.UpdateCoupon)

		uc.EXPECT().Update(gomock.Any(), testAdmin, "SAVE10", gomock.Any()).Return(entities.Coupon{Code: "SAVE10"}, nil)

		w := doJSON(r, http.MethodPut, "/v1/coupons/SAVE10", couponBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := newTestRouter(testAdmin)
		r.DELETE("/v1/coupons/:code", h.DeleteCoupon)

		uc.EXPECT().Delete(gomock.Any(), testAdmin, "SAVE10").Return(nil)
		uc.EXPECT().Delete(gomock.Any(), testAdmin, "GONE").Return(usecase.ErrCouponNotFound)

		if w := doJSON(r, http.MethodDelete, "/v1/coupons/SAVE10", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodDelete, "/v1/coupons/GONE", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("validate is anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := newTestRouter(entities.Actor{})
		r.POST("/v1/coupons/validate", h.ValidateCoupon)

		uc.EXPECT().Validate(gomock.Any(), "SAVE10", []string{"svc-1", "svc-2"}).
			Return(usecase.CouponValidation{CouponCode: "SAVE10", DiscountPercentage: 10, ApplicableServiceIDs: []string{"svc-1"}}, nil)

		w := doJSON(r, http.MethodPost, "/v1/coupons/validate", `{"code":"SAVE10","service_ids":["svc-1","svc-2"]}`)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"applicable_service_ids":["svc-1"]`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("validate inapplicable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := newTestRouter(entities.Actor{})
		r.POST("/v1/coupons/validate", h.ValidateCoupon)

		uc.EXPECT().Validate(gomock.Any(), "OLD", []string{"svc-1"}).Return(usecase.CouponValidation{}, pricing.ErrCouponInapplicable)

		w := doJSON(r, http.MethodPost, "/v1/coupons/validate", `{"code":"OLD","service_ids":["svc-1"]}`)
		if code := errorCode(t, w); code != "COUPON_INAPPLICABLE" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("validate without services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := newTestRouter(entities.Actor{})
		r.POST("/v1/coupons/validate", h.ValidateCoupon)

		w := doJSON(r, http.MethodPost, "/v1/coupons/validate", `{"code":"SAVE10","service_ids":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_InvalidateCache(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("single service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := newTestRouter(testAdmin)
		r.POST("/v1/admin/catalog/cache/invalidate", h.InvalidateCache)

		uc.EXPECT().InvalidateService(testAdmin, "svc-1").Return(nil)

		w := doJSON(r, http.MethodPost, "/v1/admin/catalog/cache/invalidate", `{"service_id":" svc-1 "}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := newTestRouter(testAdmin)
		r.POST("/v1/admin/catalog/cache/invalidate", h.InvalidateCache)

		uc.EXPECT().InvalidateAll(testAdmin).Return(nil)

		w := doJSON(r, http.MethodPost, "/v1/admin/catalog/cache/invalidate", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := newTestRouter(testCustomer)
		r.POST("/v1/admin/catalog/cache/invalidate", h.InvalidateCache)

		uc.EXPECT().InvalidateAll(testCustomer).Return(usecase.ErrForbidden)

		w := doJSON(r, http.MethodPost, "/v1/admin/catalog/cache/invalidate", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/v1/ping", Ping)

	w := doJSON(r, http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
