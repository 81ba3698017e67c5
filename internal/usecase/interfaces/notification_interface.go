package interfaces

//go:generate mockgen -source=notification_interface.go -destination=mocks/notification_interface_mock.go -package=mock_interfaces

import "context"

// INotificationPublisher pushes a real-time event to a channel: "admin", "partner-{id}" or "user-{id}".
type INotificationPublisher interface {
	Publish(ctx context.Context, channel, event string, payload any) error
}

// IOtpSender delivers the service-start code out of band (SMS).
type IOtpSender interface {
	SendOtp(ctx context.Context, to string, code int) error
}
