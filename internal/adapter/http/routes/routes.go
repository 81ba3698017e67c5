package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/CoderHifzurRehman/fixxbuddy-backend/docs"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/cache"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/handlers"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/middleware"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/persistence/repository"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/config"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/database"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/messaging"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/metrics"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/sms"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const shutdownGrace = 10 * time.Second

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Orders     *handlers.OrderHandler
	Partner    *handlers.PartnerTaskHandler
	Admin      *handlers.AdminOrderHandler
	Quotations *handlers.QuotationHandler
	Coupons    *handlers.CouponHandler
	Catalog    *handlers.CatalogHandler
}

type RouterDeps struct {
	Config        config.Config
	Logger        *zap.Logger
	ServerMetrics *metrics.ServerMetrics
	Handlers      Handlers
}

// Run wires the stores, caches and publishers, then serves until SIGINT or SIGTERM.
func Run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx, logger)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}

	publisher := messaging.NewPublisher(cfg.KafkaBrokers, cfg.KafkaNotificationsTopic, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("[notify][messaging] close publisher failed", zap.Error(err))
		}
	}()

	domainMetrics := metrics.NewDomainMetrics(prometheus.DefaultRegisterer)
	serverMetrics := metrics.NewServerMetrics(prometheus.DefaultRegisterer)

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	quotationRepo := repository.NewQuotationDynamoRepository(ddb)
	couponRepo := repository.NewCouponDynamoRepository(ddb)
	rateCardRepo := repository.NewRateCardDynamoRepository(ddb)
	catalog := cache.NewCatalogCache(repository.NewServiceTypeDynamoReader(ddb), cfg.CatalogCacheTTL, cfg.StoreTimeout, logger)

	orderDeps := usecase.OrderUseCaseDeps{
		Orders:        orderRepo,
		Catalog:       catalog,
		Coupons:       couponRepo,
		Notifications: publisher,
		NotifyTimeout: cfg.NotifyTimeout,
		Logger:        logger,
		Metrics:       domainMetrics,
	}
	if sender := sms.NewTwilioOtpSender(cfg.Twilio, logger); sender != nil {
		orderDeps.OtpSender = sender
	} else {
		logger.Warn("[order][sms] twilio not configured, service otp is only delivered by notification")
	}
	orderUseCase := usecase.NewOrderUseCase(orderDeps)

	quotationUseCase := usecase.NewQuotationUseCase(usecase.QuotationUseCaseDeps{
		Quotations:    quotationRepo,
		Orders:        orderRepo,
		RateCards:     rateCardRepo,
		Notifications: publisher,
		NotifyTimeout: cfg.NotifyTimeout,
		Logger:        logger,
		Metrics:       domainMetrics,
	})
	couponUseCase := usecase.NewCouponUseCase(couponRepo, catalog, logger, nil)
	catalogUseCase := usecase.NewCatalogUseCase(catalog, logger)

	router, err := NewRouter(RouterDeps{
		Config:        cfg,
		Logger:        logger,
		ServerMetrics: serverMetrics,
		Handlers: Handlers{
			Orders:     handlers.NewOrderHandler(orderUseCase),
			Partner:    handlers.NewPartnerTaskHandler(orderUseCase),
			Admin:      handlers.NewAdminOrderHandler(orderUseCase),
			Quotations: handlers.NewQuotationHandler(quotationUseCase),
			Coupons:    handlers.NewCouponHandler(couponUseCase),
			Catalog:    handlers.NewCatalogHandler(catalogUseCase),
		},
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[http][server] listening", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the engine: global middlewares, probes, docs and the /v1 API.
func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	corsMiddleware, err := middleware.CORS(deps.Config.CORSOriginPattern)
	if err != nil {
		return nil, fmt.Errorf("cors: %w", err)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	if deps.ServerMetrics != nil {
		router.Use(middleware.Metrics(deps.ServerMetrics))
	}
	router.Use(corsMiddleware)
	router.Use(middleware.Timeout(deps.Config.StoreTimeout))

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicCouponRoutes(v1, deps.Handlers.Coupons)

	authenticated := v1.Group("")
	authenticated.Use(middleware.JWTAuth([]byte(deps.Config.JWTSecret), logger))
	authenticated.Use(middleware.RateLimit(middleware.NewKeyedLimiter(rate.Limit(deps.Config.RateLimitRPS), deps.Config.RateLimitBurst)))

	addCartRoutes(authenticated, deps.Handlers.Orders)
	addOrderRoutes(authenticated, deps.Handlers.Orders)
	addPartnerRoutes(authenticated, deps.Handlers.Partner, deps.Handlers.Orders, middleware.PerMinute(deps.Config.OtpVerifyRatePerMin))
	addAdminRoutes(authenticated, deps.Handlers)
	addQuotationRoutes(authenticated, deps.Handlers.Quotations)

	return router, nil
}
