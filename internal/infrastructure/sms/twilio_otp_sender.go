package sms

import (
	"context"
	"errors"
	"fmt"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/config"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase/interfaces"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

var ErrNotConfigured = errors.New("twilio is not configured")

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioOtpSender texts the service-start code to the order's contact number.
type TwilioOtpSender struct {
	api    messageCreator
	from   string
	logger *zap.Logger
}

var _ interfaces.IOtpSender = (*TwilioOtpSender)(nil)

// NewTwilioOtpSender returns nil when credentials are missing; the order use case skips SMS then.
func NewTwilioOtpSender(cfg config.Twilio, logger *zap.Logger) *TwilioOtpSender {
	if !cfg.Enabled() {
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return newTwilioOtpSender(client.Api, cfg.From, logger)
}

func newTwilioOtpSender(api messageCreator, from string, logger *zap.Logger) *TwilioOtpSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TwilioOtpSender{api: api, from: from, logger: logger}
}

// SendOtp returns when Twilio answers or ctx is done, whichever comes first.
func (s *TwilioOtpSender) SendOtp(ctx context.Context, to string, code int) error {
	if s == nil || s.api == nil {
		return ErrNotConfigured
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(OtpMessage(code))

	done := make(chan error, 1)
	go func() {
		resp, err := s.api.CreateMessage(params)
		if err == nil && resp != nil && resp.Sid != nil {
			s.logger.Info("[otp][sms] message sent", zap.String("sid", *resp.Sid))
		}
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func OtpMessage(code int) string {
	return fmt.Sprintf("Your FixxBuddy service code is %06d. Share it with your technician only when they arrive. It expires in 10 minutes.", code)
}
