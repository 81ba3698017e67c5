package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
)

func TestAddToCartRequest_ToInput(t *testing.T) {
	r := AddToCartRequest{
		ServiceID:       " svc-1 ",
		DeliveryAddress: &AddressRequest{Street: " 1 Main St ", City: "Pune"},
		ContactNumber:   &ContactNumberRequest{Number: " +911234567890 "},
	}
	in := r.ToInput()
	if in.ServiceID != "svc-1" || in.Quantity != 0 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.DeliveryAddress == nil || in.DeliveryAddress.Street != "1 Main St" {
		t.Fatalf("unexpected address: %+v", in.DeliveryAddress)
	}
	if in.ContactNumber == nil || in.ContactNumber.Number != "+911234567890" {
		t.Fatalf("unexpected contact: %+v", in.ContactNumber)
	}

	if got := (AddToCartRequest{ServiceID: "svc-1"}).ToInput(); got.DeliveryAddress != nil || got.ContactNumber != nil {
		t.Fatalf("expected nil delivery details, got %+v", got)
	}
}

func TestVerifyOtpRequest_Code(t *testing.T) {
	for _, body := range []string{`{"otp":123456}`, `{"otp":"123456"}`} {
		var r VerifyOtpRequest
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unexpected error for %s: %v", body, err)
		}
		if r.Code() != "123456" {
			t.Fatalf("expected 123456 for %s, got %q", body, r.Code())
		}
	}
}

func TestAdminUpdateStatusRequest_ToInput(t *testing.T) {
	t.Run("maps status and tracking", func(t *testing.T) {
		r := AdminUpdateStatusRequest{
			Status:    "assigned",
			PartnerID: " partner-1 ",
			Tracking: []TrackingEntryRequest{
				{Message: "Technician on the way", Status: "assigned"},
				{Message: "Called customer"},
			},
		}
		in, err := r.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Status == nil || *in.Status != entities.OrderStatusAssigned || in.PartnerID != "partner-1" {
			t.Fatalf("unexpected input: %+v", in)
		}
		if len(in.Tracking) != 2 || in.Tracking[1].Status != "" {
			t.Fatalf("unexpected tracking: %+v", in.Tracking)
		}
	})

	t.Run("empty status leaves it untouched", func(t *testing.T) {
		in, err := AdminUpdateStatusRequest{Message: "note"}.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Status != nil {
			t.Fatalf("expected nil status, got %v", *in.Status)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := AdminUpdateStatusRequest{Status: "shipped"}.ToInput()
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("unknown tracking status", func(t *testing.T) {
		_, err := AppendTrackingRequest{Entries: []TrackingEntryRequest{{Message: "x", Status: "lost"}}}.ToEntries()
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})
}

func TestUpdateQuotationRequest_ToInput(t *testing.T) {
	status := " draft "
	in := UpdateQuotationRequest{Status: &status}.ToInput()
	if in.Items != nil {
		t.Fatalf("absent items must stay nil, got %+v", in.Items)
	}
	if in.Status == nil || *in.Status != entities.QuotationStatusDraft {
		t.Fatalf("unexpected status: %v", in.Status)
	}

	in = UpdateQuotationRequest{Items: []LineItemRequest{{RateItemID: " rc-1 ", Quantity: 2}}}.ToInput()
	if len(in.Items) != 1 || in.Items[0].RateItemID != "rc-1" || in.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", in.Items)
	}
}

func TestCouponRequest_ToInput(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := CouponRequest{
		Code:               "save10",
		DiscountPercentage: 10,
		ValidFrom:          from,
		ValidUntil:         from.AddDate(0, 1, 0),
		ApplicableTo: []CouponRuleRequest{
			{ApplicationTypeID: " app-1 ", ServiceTypeIDs: []string{" svc-1 ", " "}},
		},
	}
	in := r.ToInput()
	if !in.IsActive {
		t.Fatalf("coupons default to active")
	}
	if len(in.ApplicableTo) != 1 || in.ApplicableTo[0].ApplicationTypeID != "app-1" {
		t.Fatalf("unexpected rules: %+v", in.ApplicableTo)
	}
	if ids := in.ApplicableTo[0].ServiceTypeIDs; len(ids) != 1 || ids[0] != "svc-1" {
		t.Fatalf("unexpected service ids: %+v", ids)
	}

	inactive := false
	r.IsActive = &inactive
	if r.ToInput().IsActive {
		t.Fatalf("expected inactive coupon")
	}
}
