package routes

import (
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/handlers"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/middleware"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathPing         = "/ping"
	PathCart         = "/cart"
	PathOrders       = "/orders"
	PathPartnerTasks = "/partner/tasks"
	PathAdmin        = "/admin"
	PathQuotations   = "/quotations"
	PathCoupons      = "/coupons"
	PathCustomers    = "/customers"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addPublicCouponRoutes(rg *gin.RouterGroup, h *handlers.CouponHandler) {
	rg.POST(PathCoupons+"/validate", h.ValidateCoupon)
}

func addCartRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	cart := rg.Group(PathCart)
	{
		cart.POST("", h.AddToCart)
		cart.GET("", h.ListCart)
		cart.DELETE("", h.ClearCart)
		cart.PUT("/:id", h.UpdateQuantity)
		cart.DELETE("/:id", h.RemoveFromCart)
		cart.POST("/:id/checkout", h.Checkout)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.PATCH("/:id/cancel", h.CancelOrder)
		orders.POST("/:id/feedback", h.SubmitFeedback)
	}
}

// addPartnerRoutes mounts the assigned partner's task flow. OTP verification gets its own tighter limiter.
func addPartnerRoutes(rg *gin.RouterGroup, h *handlers.PartnerTaskHandler, orders *handlers.OrderHandler, otpLimiter *middleware.KeyedLimiter) {
	tasks := rg.Group(PathPartnerTasks)
	tasks.Use(middleware.RequireRoles(entities.RolePartner))
	{
		tasks.GET("", h.ListTasks)
		tasks.PATCH("/:id/start", h.StartWork)
		tasks.PATCH("/:id/start-service", h.StartService)
		tasks.POST("/:id/verify-otp", middleware.RateLimit(otpLimiter), h.VerifyOtp)
		tasks.PATCH("/:id/complete", h.Complete)
		tasks.PATCH("/:id/cancel", orders.CancelOrder)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, hs Handlers) {
	admin := rg.Group(PathAdmin)
	admin.Use(middleware.RequireRoles(entities.RoleAdmin))

	orders := admin.Group(PathOrders)
	{
		orders.GET("", hs.Orders.ListOrders)
		orders.PATCH("/:id", hs.Admin.UpdateOrder)
		orders.PATCH("/:id/assign", hs.Admin.AssignPartner)
		orders.PATCH("/:id/cancel", hs.Orders.CancelOrder)
		orders.POST("/:id/tracking", hs.Admin.AppendTracking)
	}

	customers := admin.Group(PathCustomers)
	{
		customers.GET("/pending", hs.Admin.PendingByCustomer)
		customers.GET("/:ownerId/orders", hs.Admin.ListCustomerOrders)
	}

	admin.POST("/catalog/cache/invalidate", hs.Catalog.InvalidateCache)

	coupons := admin.Group(PathCoupons)
	{
		coupons.POST("", hs.Coupons.CreateCoupon)
		coupons.GET("", hs.Coupons.ListCoupons)
		coupons.GET("/:code", hs.Coupons.GetCoupon)
		coupons.PUT("/:code", hs.Coupons.UpdateCoupon)
		coupons.DELETE("/:code", hs.Coupons.DeleteCoupon)
	}
}

func addQuotationRoutes(rg *gin.RouterGroup, h *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", h.CreateQuotation)
		quotations.GET("/:id", h.GetQuotation)
		quotations.PUT("/:id", h.UpdateQuotation)
		quotations.PATCH("/:id/accept", h.AcceptQuotation)
		quotations.PATCH("/:id/reject", h.RejectQuotation)
		quotations.GET("/partner/:partnerId", h.ListByPartner)
		quotations.GET("/user/:userId", h.ListByOwner)
	}
}
