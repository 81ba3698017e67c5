package usecase

import (
	"context"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/metrics"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	AdminChannel = "admin"

	EventNewOrder           = "new-order"
	EventTaskAssigned       = "task-assigned"
	EventOrderAssigned      = "order-assigned"
	EventOrderStatusUpdated = "order-status-updated"
	EventServiceOtp         = "service-otp"
	EventQuotationResponse  = "quotation-response"
	EventQuotationGenerated = "quotation-generated"

	defaultNotifyTimeout = 2 * time.Second
)

func PartnerChannel(partnerID string) string { return "partner-" + partnerID }

func UserChannel(userID string) string { return "user-" + userID }

type OrderEvent struct {
	OrderID   string `json:"orderId"`
	OrderCode string `json:"orderCode"`
	Status    string `json:"status"`
	PartnerID string `json:"partnerId,omitempty"`
	Message   string `json:"message"`
}

type ServiceOtpEvent struct {
	OrderID   string    `json:"orderId"`
	OrderCode string    `json:"orderCode"`
	Otp       int       `json:"otp"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type QuotationResponseEvent struct {
	PartnerID   string `json:"partnerId"`
	QuotationID string `json:"quotationId"`
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	Message     string `json:"message"`
}

type QuotationGeneratedEvent struct {
	QuotationID string  `json:"quotationId"`
	PartnerID   string  `json:"partnerId"`
	OrderID     string  `json:"orderId,omitempty"`
	TotalAmount float64 `json:"totalAmount"`
}

// notifier publishes best effort: failures are logged and counted, never returned.
type notifier struct {
	pub     interfaces.INotificationPublisher
	timeout time.Duration
	logger  *zap.Logger
	metrics *metrics.DomainMetrics
}

func newNotifier(pub interfaces.INotificationPublisher, timeout time.Duration, logger *zap.Logger, m *metrics.DomainMetrics) notifier {
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return notifier{pub: pub, timeout: timeout, logger: logger, metrics: m}
}

func (n notifier) publish(ctx context.Context, channel, event string, payload any) {
	if n.pub == nil {
		return
	}
	// The triggering write already committed; a cancelled request must not drop the event.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	if err := n.pub.Publish(ctx, channel, event, payload); err != nil {
		n.metrics.NotificationFailed(event)
		n.logger.Warn("[notify][usecase] publish failed",
			zap.String("channel", channel),
			zap.String("event", event),
			zap.Error(err),
		)
	}
}
