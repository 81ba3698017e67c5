package repository

import (
	"context"
	"errors"
	"slices"
	"strconv"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName = "quotations"
	quotationsPartnerIDIndex   = "partner_id-index"
	quotationsOwnerIDIndex     = "owner_id-index"
)

type quotationLineItem struct {
	CatalogRateItemID string  `dynamodbav:"catalog_rate_item_id"`
	NameSnapshot      string  `dynamodbav:"name"`
	PriceSnapshot     float64 `dynamodbav:"price"`
	Quantity          int     `dynamodbav:"quantity"`
	LineTotal         float64 `dynamodbav:"line_total"`
}

type quotationItem struct {
	ID                string              `dynamodbav:"id"`
	PartnerID         string              `dynamodbav:"partner_id"`
	OwnerID           string              `dynamodbav:"owner_id"`
	ApplicationTypeID string              `dynamodbav:"application_type_id,omitempty"`
	LinkedOrderCode   string              `dynamodbav:"linked_order_code,omitempty"`
	LineItems         []quotationLineItem `dynamodbav:"line_items"`
	TotalAmount       string              `dynamodbav:"total_amount"`
	Status            string              `dynamodbav:"status"`
	CreatedAt         string              `dynamodbav:"created_at"`
	UpdatedAt         string              `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI partner_id-index (PK: partner_id)
//   - GSI owner_id-index (PK: owner_id)
type QuotationDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	ordersTableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
		ordersTableName: ordersTableName(),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if errors.Is(asConditionFailed(err), interfaces.ErrConditionFailed) {
			return entities.Quotation{}, interfaces.ErrAlreadyExists
		}
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) ListByPartner(ctx context.Context, partnerID string) ([]entities.Quotation, error) {
	return r.queryIndex(ctx, quotationsPartnerIDIndex, "partner_id", partnerID)
}

func (r *QuotationDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Quotation, error) {
	return r.queryIndex(ctx, quotationsOwnerIDIndex, "owner_id", ownerID)
}

func (r *QuotationDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Quotation, error) {
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

	var items []entities.Quotation
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quotationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuotationItem(it))
		}
	}
	slices.SortStableFunc(items, func(a, b entities.Quotation) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return items, nil
}

func (r *QuotationDynamoRepository) Update(ctx context.Context, q entities.Quotation, expected entities.QuotationStatus) (entities.Quotation, error) {
	put, err := r.conditionalPut(q, expected)
	if err != nil {
		return entities.Quotation{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 put.TableName,
		Item:                      put.Item,
		ConditionExpression:       put.ConditionExpression,
		ExpressionAttributeNames:  put.ExpressionAttributeNames,
		ExpressionAttributeValues: put.ExpressionAttributeValues,
	})
	if err != nil {
		return entities.Quotation{}, asConditionFailed(err)
	}
	return q, nil
}

// Decide stores the decided quotation and, when linked is set, the order carrying the mirrored
// tracking entry, as one transaction.
func (r *QuotationDynamoRepository) Decide(ctx context.Context, q entities.Quotation, expected entities.QuotationStatus, linked *entities.Order) error {
	put, err := r.conditionalPut(q, expected)
	if err != nil {
		return err
	}
	items := []types.TransactWriteItem{{Put: &put}}
	if linked != nil {
		orderPut, _, err := conditionalOrderPut(r.ordersTableName, *linked, linked.Status)
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{Put: &orderPut})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return asConditionFailed(err)
}

func (r *QuotationDynamoRepository) conditionalPut(q entities.Quotation, expected entities.QuotationStatus) (types.Put, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return types.Put{}, err
	}
	return types.Put{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
		},
	}, nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	lines := make([]quotationLineItem, 0, len(q.LineItems))
	for _, l := range q.LineItems {
		lines = append(lines, quotationLineItem{
			CatalogRateItemID: l.CatalogRateItemID,
			NameSnapshot:      l.NameSnapshot,
			PriceSnapshot:     l.PriceSnapshot,
			Quantity:          l.Quantity,
			LineTotal:         l.LineTotal,
		})
	}
	return quotationItem{
		ID:                q.ID,
		PartnerID:         q.PartnerID,
		OwnerID:           q.OwnerID,
		ApplicationTypeID: q.ApplicationTypeID,
		LinkedOrderCode:   q.LinkedOrderCode,
		LineItems:         lines,
		TotalAmount:       floatToString(q.TotalAmount),
		Status:            string(q.Status),
		CreatedAt:         formatTime(q.CreatedAt),
		UpdatedAt:         formatTime(q.UpdatedAt),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	lines := make([]entities.QuotationLineItem, 0, len(it.LineItems))
	for _, l := range it.LineItems {
		lines = append(lines, entities.QuotationLineItem{
			CatalogRateItemID: l.CatalogRateItemID,
			NameSnapshot:      l.NameSnapshot,
			PriceSnapshot:     l.PriceSnapshot,
			Quantity:          l.Quantity,
			LineTotal:         l.LineTotal,
		})
	}
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)
	return entities.Quotation{
		ID:                it.ID,
		PartnerID:         it.PartnerID,
		OwnerID:           it.OwnerID,
		ApplicationTypeID: it.ApplicationTypeID,
		LinkedOrderCode:   it.LinkedOrderCode,
		LineItems:         lines,
		TotalAmount:       total,
		Status:            entities.QuotationStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
