package repository

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultOrdersTableName     = "orders"
	defaultOrderCodesTableName = "order_codes"
	ordersOwnerIDIndex         = "owner_id-index"
	ordersPartnerIDIndex       = "assigned_partner_id-index"
)

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - orders PK: id (string)
//   - orders GSI owner_id-index (PK: owner_id)
//   - orders GSI assigned_partner_id-index (PK: assigned_partner_id), sparse
//   - order_codes PK: order_code (string), one row per code ever issued
//
// Codes are never released, so an order code identifies at most one order for good.
type OrderDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	codesTableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:            ddb,
		tableName:      ordersTableName(),
		codesTableName: getenvDefault("ORDER_CODES_TABLE", defaultOrderCodesTableName),
	}
}

func ordersTableName() string {
	return getenvDefault("ORDERS_TABLE", defaultOrdersTableName)
}

// Create writes the order and reserves its code in one transaction.
func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	orderAV, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	codeAV, err := attributevalue.MarshalMap(orderCodeItem{
		OrderCode: o.OrderCode,
		OrderID:   o.ID,
		CreatedAt: formatTime(o.CreatedAt),
	})
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.codesTableName),
				Item:                     codeAV,
				ConditionExpression:      aws.String("attribute_not_exists(#code)"),
				ExpressionAttributeNames: map[string]string{"#code": "order_code"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     orderAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		return entities.Order{}, createOrderError(err)
	}
	return o, nil
}

func createOrderError(err error) error {
	reasons, ok := canceledReasons(err)
	if !ok {
		return err
	}
	if len(reasons) > 0 && reasons[0] == "ConditionalCheckFailed" {
		return interfaces.ErrOrderCodeTaken
	}
	return interfaces.ErrAlreadyExists
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// GetByOrderCode resolves the code through its reservation row.
func (r *OrderDynamoRepository) GetByOrderCode(ctx context.Context, code string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.codesTableName),
		Key: map[string]types.AttributeValue{
			"order_code": &types.AttributeValueMemberS{Value: strings.ToUpper(code)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderCodeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	if it.OrderID == "" {
		return entities.Order{}, nil
	}
	return r.GetByID(ctx, it.OrderID)
}

// FindByIdOrCode tries a UUID-shaped value as an id first and falls back to the order code.
func (r *OrderDynamoRepository) FindByIdOrCode(ctx context.Context, value string) (entities.Order, error) {
	return findByIdOrCode(ctx, strings.TrimSpace(value), r.GetByID, r.GetByOrderCode)
}

type orderLookup func(ctx context.Context, key string) (entities.Order, error)

func findByIdOrCode(ctx context.Context, value string, byID, byCode orderLookup) (entities.Order, error) {
	if _, err := uuid.Parse(value); err != nil {
		return byCode(ctx, value)
	}
	o, err := byID(ctx, value)
	if err != nil || o.ID != "" {
		return o, err
	}
	return byCode(ctx, value)
}

func (r *OrderDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Order, error) {
	return r.queryIndex(ctx, ordersOwnerIDIndex, "owner_id", ownerID)
}

func (r *OrderDynamoRepository) ListByPartner(ctx context.Context, partnerID string) ([]entities.Order, error) {
	return r.queryIndex(ctx, ordersPartnerIDIndex, "assigned_partner_id", partnerID)
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	var raw []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		raw = append(raw, page.Items...)
	}
	return decodeOrders(raw)
}

func (r *OrderDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Order, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	var raw []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		raw = append(raw, page.Items...)
	}
	return decodeOrders(raw)
}

// decodeOrders returns orders newest first.
func decodeOrders(raw []map[string]types.AttributeValue) ([]entities.Order, error) {
	orders := make([]entities.Order, 0, len(raw))
	for _, av := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	slices.SortStableFunc(orders, func(a, b entities.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return orders, nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order, expected entities.OrderStatus) (entities.Order, error) {
	put, next, err := conditionalOrderPut(r.tableName, o, expected)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 put.TableName,
		Item:                      put.Item,
		ConditionExpression:       put.ConditionExpression,
		ExpressionAttributeNames:  put.ExpressionAttributeNames,
		ExpressionAttributeValues: put.ExpressionAttributeValues,
	})
	if err != nil {
		return entities.Order{}, asConditionFailed(err)
	}
	return next, nil
}

// conditionalOrderPut builds a full-item replace that only lands if the stored order still has
// the expected status and the version the caller read. The returned order carries the new version.
func conditionalOrderPut(table string, o entities.Order, expected entities.OrderStatus) (types.Put, entities.Order, error) {
	next := o
	next.Version = o.Version + 1
	av, err := attributevalue.MarshalMap(toOrderItem(next))
	if err != nil {
		return types.Put{}, entities.Order{}, err
	}
	return types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("#status = :expected AND #version = :version"),
		ExpressionAttributeNames: map[string]string{
			"#status":  "status",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
			":version":  &types.AttributeValueMemberN{Value: strconv.FormatInt(o.Version, 10)},
		},
	}, next, nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string, expected entities.OrderStatus) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrConditionFailed
		}
		return err
	}
	return nil
}
