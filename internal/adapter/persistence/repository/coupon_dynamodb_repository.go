package repository

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCouponsTableName = "coupons"

type couponRuleItem struct {
	ApplicationTypeID string   `dynamodbav:"application_type_id"`
	ServiceTypeIDs    []string `dynamodbav:"service_type_ids"`
}

type couponItem struct {
	Code               string           `dynamodbav:"code"`
	DiscountPercentage float64          `dynamodbav:"discount_percentage"`
	MaxDiscountAmount  *float64         `dynamodbav:"max_discount_amount,omitempty"`
	ValidFrom          string           `dynamodbav:"valid_from"`
	ValidUntil         string           `dynamodbav:"valid_until"`
	IsActive           bool             `dynamodbav:"is_active"`
	ApplicableTo       []couponRuleItem `dynamodbav:"applicable_to"`
	CreatedAt          string           `dynamodbav:"created_at"`
	UpdatedAt          string           `dynamodbav:"updated_at"`
}

// CouponDynamoRepository persists Coupon entities in DynamoDB.
//
// Table requirements:
//   - PK: code (string, uppercase)
type CouponDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICouponRepository = (*CouponDynamoRepository)(nil)

func NewCouponDynamoRepository(ddb *dynamodb.Client) *CouponDynamoRepository {
	return &CouponDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUPONS_TABLE", defaultCouponsTableName),
	}
}

func (r *CouponDynamoRepository) Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	if err := r.put(ctx, c, "attribute_not_exists(#code)"); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Coupon{}, interfaces.ErrAlreadyExists
		}
		return entities.Coupon{}, err
	}
	return c, nil
}

// Update replaces a coupon that must already exist.
func (r *CouponDynamoRepository) Update(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	if err := r.put(ctx, c, "attribute_exists(#code)"); err != nil {
		return entities.Coupon{}, err
	}
	return c, nil
}

func (r *CouponDynamoRepository) put(ctx context.Context, c entities.Coupon, condition string) error {
	av, err := attributevalue.MarshalMap(toCouponItem(c))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
	})
	return asConditionFailed(err)
}

// Delete removes a coupon that must exist; a missing code yields ErrConditionFailed.
func (r *CouponDynamoRepository) Delete(ctx context.Context, code string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: strings.ToUpper(code)},
		},
		ConditionExpression: aws.String("attribute_exists(#code)"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
	})
	return asConditionFailed(err)
}

func (r *CouponDynamoRepository) FindByCode(ctx context.Context, code string) (entities.Coupon, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: strings.ToUpper(code)},
		},
	})
	if err != nil {
		return entities.Coupon{}, err
	}
	if len(out.Item) == 0 {
		return entities.Coupon{}, nil
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

func (r *CouponDynamoRepository) List(ctx context.Context) ([]entities.Coupon, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var coupons []entities.Coupon
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it couponItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			coupons = append(coupons, fromCouponItem(it))
		}
	}
	slices.SortFunc(coupons, func(a, b entities.Coupon) int {
		return strings.Compare(a.Code, b.Code)
	})
	return coupons, nil
}

func toCouponItem(c entities.Coupon) couponItem {
	rules := make([]couponRuleItem, 0, len(c.ApplicableTo))
	for _, r := range c.ApplicableTo {
		rules = append(rules, couponRuleItem{ApplicationTypeID: r.ApplicationTypeID, ServiceTypeIDs: r.ServiceTypeIDs})
	}
	return couponItem{
		Code:               c.Code,
		DiscountPercentage: c.DiscountPercentage,
		MaxDiscountAmount:  c.MaxDiscountAmount,
		ValidFrom:          formatTime(c.ValidFrom),
		ValidUntil:         formatTime(c.ValidUntil),
		IsActive:           c.IsActive,
		ApplicableTo:       rules,
		CreatedAt:          formatTime(c.CreatedAt),
		UpdatedAt:          formatTime(c.UpdatedAt),
	}
}

func fromCouponItem(it couponItem) entities.Coupon {
	rules := make([]entities.CouponRule, 0, len(it.ApplicableTo))
	for _, r := range it.ApplicableTo {
		rules = append(rules, entities.CouponRule{ApplicationTypeID: r.ApplicationTypeID, ServiceTypeIDs: r.ServiceTypeIDs})
	}
	return entities.Coupon{
		Code:               it.Code,
		DiscountPercentage: it.DiscountPercentage,
		MaxDiscountAmount:  it.MaxDiscountAmount,
		ValidFrom:          parseTime(it.ValidFrom),
		ValidUntil:         parseTime(it.ValidUntil),
		IsActive:           it.IsActive,
		ApplicableTo:       rules,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
