package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestGetenvDefault(t *testing.T) {
	t.Setenv("ORDERS_TABLE", "")
	if got := ordersTableName(); got != defaultOrdersTableName {
		t.Fatalf("expected default, got %q", got)
	}
	t.Setenv("ORDERS_TABLE", "orders-dev")
	if got := ordersTableName(); got != "orders-dev" {
		t.Fatalf("expected override, got %q", got)
	}
}

func TestAsConditionFailed(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "conditional check", err: &types.ConditionalCheckFailedException{}, want: interfaces.ErrConditionFailed},
		{
			name: "transaction condition",
			err: &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			}},
			want: interfaces.ErrConditionFailed,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := asConditionFailed(tc.err); !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		throttled := &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ThrottlingError")},
		}}
		if got := asConditionFailed(throttled); errors.Is(got, interfaces.ErrConditionFailed) {
			t.Fatalf("throttling must not look like a lost condition")
		}
		db := errors.New("db")
		if got := asConditionFailed(db); got != db {
			t.Fatalf("expected passthrough, got %v", got)
		}
	})
}

func TestCreateOrderError(t *testing.T) {
	codeTaken := &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
		{Code: aws.String("ConditionalCheckFailed")},
		{Code: aws.String("None")},
	}}
	if err := createOrderError(codeTaken); !errors.Is(err, interfaces.ErrOrderCodeTaken) {
		t.Fatalf("expected ErrOrderCodeTaken, got %v", err)
	}

	idTaken := &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
		{Code: aws.String("None")},
		{Code: aws.String("ConditionalCheckFailed")},
	}}
	if err := createOrderError(idTaken); !errors.Is(err, interfaces.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	db := errors.New("db")
	if err := createOrderError(db); err != db {
		t.Fatalf("expected passthrough, got %v", err)
	}
}

func sampleOrder() entities.Order {
	at := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	return entities.Order{
		ID:                "2b1c7a5e-3f0d-4c7e-9d7a-1f2e3d4c5b6a",
		OrderCode:         "FBORD00000Z0000",
		OwnerID:           "cust-1",
		CatalogItemID:     "svc-1",
		ApplicationTypeID: "app-1",
		BaseCost:          1000,
		Quantity:          1,
		Status:            entities.OrderStatusPending,
		DeliveryAddress:   &entities.Address{Street: "1 Main St", City: "Pune"},
		ContactNumber:     &entities.ContactNumber{Number: "+911234567890"},
		Pricing: &entities.PricingSnapshot{
			OriginalServiceCost:        1000,
			ServiceLevelDiscountAmount: 100,
			CouponCode:                 "SAVE20",
			CouponDiscountAmount:       150,
			FinalAmount:                750,
			PricedAt:                   at,
		},
		Tracking: []entities.TrackingEntry{
			{Message: "Item added to cart", Status: entities.OrderStatusInCart, Timestamp: at.Add(-time.Hour)},
			{Message: "Order placed", Status: entities.OrderStatusPending, Timestamp: at},
		},
		Version:   3,
		CreatedAt: at.Add(-time.Hour),
		UpdatedAt: at,
	}
}

func TestOrderItem(t *testing.T) {
	t.Run("unassigned order stays out of the partner index", func(t *testing.T) {
		av, err := attributevalue.MarshalMap(toOrderItem(sampleOrder()))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		for _, attr := range []string{"assigned_partner_id", "service_otp", "scheduled_date", "completed_at"} {
			if _, ok := av[attr]; ok {
				t.Fatalf("expected %s to be omitted", attr)
			}
		}
		if _, ok := av["pricing"].(*types.AttributeValueMemberM); !ok {
			t.Fatalf("expected pricing map, got %T", av["pricing"])
		}
	})

	t.Run("stored order reads back the same", func(t *testing.T) {
		o := sampleOrder()
		code := 424242
		expiry := o.UpdatedAt.Add(10 * time.Minute)
		o.Status = entities.OrderStatusInProgress
		o.AssignedPartnerID = "partner-1"
		o.ServiceOtp = &code
		o.ServiceOtpExpiry = &expiry
		o.OtpFailedAttempts = 2

		av, err := attributevalue.MarshalMap(toOrderItem(o))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var it orderItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		got := fromOrderItem(it)

		if got.AssignedPartnerID != "partner-1" || got.ServiceOtp == nil || *got.ServiceOtp != code || !got.ServiceOtpExpiry.Equal(expiry) {
			t.Fatalf("unexpected otp fields: %+v", got)
		}
		if got.Pricing == nil || got.Pricing.FinalAmount != 750 || !got.Pricing.PricedAt.Equal(o.Pricing.PricedAt) {
			t.Fatalf("unexpected pricing: %+v", got.Pricing)
		}
		if len(got.Tracking) != 2 || got.Tracking[1].Status != entities.OrderStatusPending || !got.Tracking[0].Timestamp.Equal(o.Tracking[0].Timestamp) {
			t.Fatalf("unexpected tracking: %+v", got.Tracking)
		}
		if got.Version != 3 || got.DeliveryAddress.City != "Pune" || got.ContactNumber.Number != "+911234567890" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}

func TestConditionalOrderPut(t *testing.T) {
	put, next, err := conditionalOrderPut("orders", sampleOrder(), entities.OrderStatusInCart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Version != 4 {
		t.Fatalf("expected version 4, got %d", next.Version)
	}
	stored, ok := put.Item["version"].(*types.AttributeValueMemberN)
	if !ok || stored.Value != "4" {
		t.Fatalf("expected stored version 4, got %#v", put.Item["version"])
	}
	read, ok := put.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN)
	if !ok || read.Value != "3" {
		t.Fatalf("expected condition on read version 3, got %#v", put.ExpressionAttributeValues[":version"])
	}
	expected, ok := put.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS)
	if !ok || expected.Value != "inCart" {
		t.Fatalf("expected condition on inCart, got %#v", put.ExpressionAttributeValues[":expected"])
	}
}

func TestDecodeOrders_NewestFirst(t *testing.T) {
	older := sampleOrder()
	newer := sampleOrder()
	newer.ID = "newer"
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)

	var raw []map[string]types.AttributeValue
	for _, o := range []entities.Order{older, newer} {
		av, err := attributevalue.MarshalMap(toOrderItem(o))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		raw = append(raw, av)
	}

	orders, err := decodeOrders(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "newer" {
		t.Fatalf("expected newest first, got %+v", orders)
	}
}

func TestCatalogItems(t *testing.T) {
	t.Run("service defaults", func(t *testing.T) {
		s := fromServiceTypeItem(serviceTypeItem{
			ID:             "svc-1",
			ServiceHeading: "ac repair",
			ServiceImage:   []string{"a.png", "b.png"},
			ServiceCost:    " 1,200 ",
		})
		if !s.IsActive || s.Name != "ac repair" || s.Image != "a.png" || s.Price != " 1,200 " {
			t.Fatalf("unexpected snapshot: %+v", s)
		}
		if s.DiscountValidUntil != nil {
			t.Fatalf("expected no discount deadline")
		}
	})

	t.Run("inactive flags are honored", func(t *testing.T) {
		inactive := false
		if fromServiceTypeItem(serviceTypeItem{ID: "svc-1", IsActive: &inactive}).IsActive {
			t.Fatalf("expected inactive service")
		}
		if fromRateCardItem(rateCardItem{ID: "rc-1", IsActive: &inactive}).IsActive {
			t.Fatalf("expected inactive rate card")
		}
		if !fromRateCardItem(rateCardItem{ID: "rc-2", Type: "Labor"}).IsActive {
			t.Fatalf("expected missing flag to mean active")
		}
	})
}

func TestCouponItem(t *testing.T) {
	limit := 150.0
	c := entities.Coupon{
		Code:               "SAVE20",
		DiscountPercentage: 20,
		MaxDiscountAmount:  &limit,
		ValidFrom:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:         time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		IsActive:           true,
		ApplicableTo:       []entities.CouponRule{{ApplicationTypeID: "app-1", ServiceTypeIDs: []string{"svc-1"}}},
	}
	got := fromCouponItem(toCouponItem(c))
	if got.MaxDiscountAmount == nil || *got.MaxDiscountAmount != limit || !got.ValidUntil.Equal(c.ValidUntil) {
		t.Fatalf("unexpected coupon: %+v", got)
	}
	if len(got.ApplicableTo) != 1 || got.ApplicableTo[0].ServiceTypeIDs[0] != "svc-1" {
		t.Fatalf("unexpected rules: %+v", got.ApplicableTo)
	}

	c.MaxDiscountAmount = nil
	av, err := attributevalue.MarshalMap(toCouponItem(c))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["max_discount_amount"]; ok {
		t.Fatalf("expected uncapped coupon to omit max_discount_amount")
	}
}

func TestFindByIdOrCode(t *testing.T) {
	const id = "3f1c7a52-9d1e-4c3b-8f67-2a9b0e5d4c11"
	boom := errors.New("boom")

	type calls struct{ byID, byCode []string }
	lookups := func(c *calls, idResult, codeResult entities.Order, idErr error) (orderLookup, orderLookup) {
		byID := func(_ context.Context, key string) (entities.Order, error) {
			c.byID = append(c.byID, key)
			return idResult, idErr
		}
		byCode := func(_ context.Context, key string) (entities.Order, error) {
			c.byCode = append(c.byCode, key)
			return codeResult, nil
		}
		return byID, byCode
	}

	t.Run("order code skips the id lookup", func(t *testing.T) {
		var c calls
		byID, byCode := lookups(&c, entities.Order{}, entities.Order{ID: "o-1"}, nil)
		o, err := findByIdOrCode(context.Background(), "FBORD00000Z0000", byID, byCode)
		if err != nil || o.ID != "o-1" || len(c.byID) != 0 || len(c.byCode) != 1 {
			t.Fatalf("unexpected result %+v %v %+v", o, err, c)
		}
	})

	t.Run("uuid found by id", func(t *testing.T) {
		var c calls
		byID, byCode := lookups(&c, entities.Order{ID: id}, entities.Order{}, nil)
		o, err := findByIdOrCode(context.Background(), id, byID, byCode)
		if err != nil || o.ID != id || len(c.byCode) != 0 {
			t.Fatalf("unexpected result %+v %v %+v", o, err, c)
		}
	})

	t.Run("uuid missing by id falls back to code", func(t *testing.T) {
		var c calls
		byID, byCode := lookups(&c, entities.Order{}, entities.Order{ID: "o-9", OrderCode: id}, nil)
		o, err := findByIdOrCode(context.Background(), id, byID, byCode)
		if err != nil || o.ID != "o-9" || len(c.byID) != 1 || len(c.byCode) != 1 || c.byCode[0] != id {
			t.Fatalf("unexpected result %+v %v %+v", o, err, c)
		}
	})

	t.Run("id lookup error is returned", func(t *testing.T) {
		var c calls
		byID, byCode := lookups(&c, entities.Order{}, entities.Order{ID: "o-9"}, boom)
		if _, err := findByIdOrCode(context.Background(), id, byID, byCode); !errors.Is(err, boom) || len(c.byCode) != 0 {
			t.Fatalf("expected boom without fallback, got %v %+v", err, c)
		}
	})

	t.Run("missing everywhere", func(t *testing.T) {
		var c calls
		byID, byCode := lookups(&c, entities.Order{}, entities.Order{}, nil)
		o, err := findByIdOrCode(context.Background(), id, byID, byCode)
		if err != nil || o.ID != "" {
			t.Fatalf("expected empty order, got %+v %v", o, err)
		}
	})
}
