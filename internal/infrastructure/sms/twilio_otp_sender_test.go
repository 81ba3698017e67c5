package sms

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/config"

	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeCreator struct {
	params *twilioApi.CreateMessageParams
	err    error
	block  chan struct{}
}

func (f *fakeCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	if f.block != nil {
		<-f.block
	}
	f.params = params
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, f.err
}

func TestNewTwilioOtpSender_Disabled(t *testing.T) {
	if s := NewTwilioOtpSender(config.Twilio{}, nil); s != nil {
		t.Fatalf("expected nil sender without credentials")
	}
	var s *TwilioOtpSender
	if err := s.SendOtp(context.Background(), "+910000000000", 123456); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestTwilioOtpSender_SendOtp(t *testing.T) {
	t.Run("builds the message", func(t *testing.T) {
		api := &fakeCreator{}
		s := newTwilioOtpSender(api, "+15550001111", nil)
		if err := s.SendOtp(context.Background(), "+911234567890", 100042); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *api.params.To != "+911234567890" || *api.params.From != "+15550001111" {
			t.Fatalf("unexpected params: to=%s from=%s", *api.params.To, *api.params.From)
		}
		if !strings.Contains(*api.params.Body, "100042") {
			t.Fatalf("expected code in body, got %q", *api.params.Body)
		}
	})

	t.Run("twilio error", func(t *testing.T) {
		s := newTwilioOtpSender(&fakeCreator{err: errors.New("invalid number")}, "+15550001111", nil)
		if err := s.SendOtp(context.Background(), "bad", 123456); err == nil || err.Error() != "invalid number" {
			t.Fatalf("expected twilio error, got %v", err)
		}
	})

	t.Run("deadline", func(t *testing.T) {
		block := make(chan struct{})
		defer close(block)
		s := newTwilioOtpSender(&fakeCreator{block: block}, "+15550001111", nil)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		if err := s.SendOtp(ctx, "+911234567890", 123456); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", err)
		}
	})
}

func TestOtpMessage(t *testing.T) {
	if got := OtpMessage(100000); !strings.Contains(got, "100000") {
		t.Fatalf("unexpected message %q", got)
	}
}
