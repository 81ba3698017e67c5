package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/handlers"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/handlers/mocks"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/config"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

const routerSecret = "router-secret"

type routerMocks struct {
	orders     *mocks.MockIOrderUseCase
	quotations *mocks.MockIQuotationUseCase
	coupons    *mocks.MockICouponUseCase
	catalog    *mocks.MockICatalogUseCase
}

func newRouterUnderTest(t *testing.T) (*gin.Engine, routerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	m := routerMocks{
		orders:     mocks.NewMockIOrderUseCase(ctrl),
		quotations: mocks.NewMockIQuotationUseCase(ctrl),
		coupons:    mocks.NewMockICouponUseCase(ctrl),
		catalog:    mocks.NewMockICatalogUseCase(ctrl),
	}
	router, err := NewRouter(RouterDeps{
		Config: config.Config{
			JWTSecret:           routerSecret,
			RateLimitRPS:        100,
			RateLimitBurst:      100,
			OtpVerifyRatePerMin: 1,
			CORSOriginPattern:   `^https?://localhost(:\d+)?$`,
		},
		Handlers: Handlers{
			Orders:     handlers.NewOrderHandler(m.orders),
			Partner:    handlers.NewPartnerTaskHandler(m.orders),
			Admin:      handlers.NewAdminOrderHandler(m.orders),
			Quotations: handlers.NewQuotationHandler(m.quotations),
			Coupons:    handlers.NewCouponHandler(m.coupons),
			Catalog:    handlers.NewCatalogHandler(m.catalog),
		},
	})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return router, m
}

func bearer(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(routerSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + token
}

func serve(r *gin.Engine, method, path, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	t.Run("ping is public", func(t *testing.T) {
		r, _ := newRouterUnderTest(t)
		if w := serve(r, http.MethodGet, "/v1/ping", "", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("coupon validation is public", func(t *testing.T) {
		r, m := newRouterUnderTest(t)
		m.coupons.EXPECT().Validate(gomock.Any(), "SAVE10", []string{"svc-1"}).
			Return(usecase.CouponValidation{CouponCode: "SAVE10", ApplicableServiceIDs: []string{"svc-1"}}, nil)

		w := serve(r, http.MethodPost, "/v1/coupons/validate", "", `{"code":"SAVE10","service_ids":["svc-1"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cart needs a token", func(t *testing.T) {
		r, _ := newRouterUnderTest(t)
		if w := serve(r, http.MethodGet, "/v1/cart", "", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("cart as customer", func(t *testing.T) {
		r, m := newRouterUnderTest(t)
		m.orders.EXPECT().ListCart(gomock.Any(), entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}).Return(nil, nil)

		w := serve(r, http.MethodGet, "/v1/cart", bearer(t, jwt.MapClaims{"id": "cust-1", "role": "user"}), "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("partner tasks reject customers", func(t *testing.T) {
		r, _ := newRouterUnderTest(t)
		w := serve(r, http.MethodGet, "/v1/partner/tasks", bearer(t, jwt.MapClaims{"id": "cust-1", "role": "user"}), "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin routes reject partners", func(t *testing.T) {
		r, _ := newRouterUnderTest(t)
		w := serve(r, http.MethodGet, "/v1/admin/coupons", bearer(t, jwt.MapClaims{"sub": "partner-1", "role": "partner"}), "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin cache invalidation", func(t *testing.T) {
		r, m := newRouterUnderTest(t)
		m.catalog.EXPECT().InvalidateAll(entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}).Return(nil)

		w := serve(r, http.MethodPost, "/v1/admin/catalog/cache/invalidate", bearer(t, jwt.MapClaims{"id": "admin-1", "isAdmin": true}), "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("admin customer views", func(t *testing.T) {
		r, m := newRouterUnderTest(t)
		admin := entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}
		m.orders.EXPECT().PendingByCustomer(gomock.Any(), admin).Return([]usecase.CustomerPending{{OwnerID: "cust-1", Pending: 2}}, nil)
		m.orders.EXPECT().ListCustomerOrders(gomock.Any(), admin, "cust-1", "").Return(nil, nil)

		auth := bearer(t, jwt.MapClaims{"id": "admin-1", "isAdmin": true})
		if w := serve(r, http.MethodGet, "/v1/admin/customers/pending", auth, ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := serve(r, http.MethodGet, "/v1/admin/customers/cust-1/orders", auth, ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("otp verification is throttled per partner", func(t *testing.T) {
		r, m := newRouterUnderTest(t)
		partner := entities.Actor{ID: "partner-1", Role: entities.RolePartner}
		m.orders.EXPECT().VerifyOtp(gomock.Any(), partner, "o-1", "1234").Return(entities.Order{ID: "o-1"}, nil).Times(1)

		auth := bearer(t, jwt.MapClaims{"id": "partner-1", "role": "partner"})
		if w := serve(r, http.MethodPost, "/v1/partner/tasks/o-1/verify-otp", auth, `{"otp":1234}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := serve(r, http.MethodPost, "/v1/partner/tasks/o-1/verify-otp", auth, `{"otp":1234}`); w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("quotation routes", func(t *testing.T) {
		r, m := newRouterUnderTest(t)
		owner := entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}
		m.quotations.EXPECT().ListByOwner(gomock.Any(), owner, "cust-1").Return([]entities.Quotation{{ID: "q-1"}}, nil)

		w := serve(r, http.MethodGet, "/v1/quotations/user/cust-1", bearer(t, jwt.MapClaims{"id": "cust-1"}), "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestNewRouter_InvalidCORSPattern(t *testing.T) {
	_, err := NewRouter(RouterDeps{Config: config.Config{CORSOriginPattern: "("}})
	if err == nil {
		t.Fatal("expected an error for an invalid origin pattern")
	}
}
