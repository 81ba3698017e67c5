package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceTypesTableName = "service_types"
	defaultRateCardsTableName    = "rate_cards"

	batchGetLimit    = 100
	batchGetAttempts = 5
)

// serviceTypeItem mirrors the catalog service the external catalog service writes.
// service_cost is free text there, so it is kept as a string.
type serviceTypeItem struct {
	ID                 string   `dynamodbav:"id"`
	ServiceName        string   `dynamodbav:"service_name"`
	ServiceHeading     string   `dynamodbav:"service_heading"`
	ServiceImage       []string `dynamodbav:"service_image"`
	MainServiceID      string   `dynamodbav:"main_service_id"`
	ApplicationTypeID  string   `dynamodbav:"application_type_id"`
	ServiceCost        string   `dynamodbav:"service_cost"`
	DiscountPercentage float64  `dynamodbav:"discount_percentage"`
	DiscountValidUntil string   `dynamodbav:"discount_valid_until"`
	IsActive           *bool    `dynamodbav:"is_active"`
}

type rateCardItem struct {
	ID                string  `dynamodbav:"id"`
	ApplicationTypeID string  `dynamodbav:"application_type_id"`
	Name              string  `dynamodbav:"name"`
	Type              string  `dynamodbav:"type"`
	Price             float64 `dynamodbav:"price"`
	IsActive          *bool   `dynamodbav:"is_active"`
}

// ServiceTypeDynamoReader reads live catalog services. It never writes.
//
// Table requirements:
//   - PK: id (string)
type ServiceTypeDynamoReader struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogReader = (*ServiceTypeDynamoReader)(nil)

func NewServiceTypeDynamoReader(ddb *dynamodb.Client) *ServiceTypeDynamoReader {
	return &ServiceTypeDynamoReader{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_TYPES_TABLE", defaultServiceTypesTableName),
	}
}

func (r *ServiceTypeDynamoReader) GetServicePrice(ctx context.Context, serviceID string) (entities.ServiceSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: serviceID},
		},
	})
	if err != nil {
		return entities.ServiceSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceSnapshot{}, nil
	}

	var it serviceTypeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceSnapshot{}, err
	}
	return fromServiceTypeItem(it), nil
}

func fromServiceTypeItem(it serviceTypeItem) entities.ServiceSnapshot {
	name := strings.TrimSpace(it.ServiceName)
	if name == "" {
		name = strings.TrimSpace(it.ServiceHeading)
	}
	image := ""
	if len(it.ServiceImage) > 0 {
		image = it.ServiceImage[0]
	}
	return entities.ServiceSnapshot{
		ServiceID:          it.ID,
		Name:               name,
		Image:              image,
		MainServiceID:      it.MainServiceID,
		ApplicationTypeID:  it.ApplicationTypeID,
		Price:              it.ServiceCost,
		DiscountPercentage: it.DiscountPercentage,
		DiscountValidUntil: parseTimePtr(it.DiscountValidUntil),
		IsActive:           it.IsActive == nil || *it.IsActive,
	}
}

// RateCardDynamoRepository resolves rate-card entries for quotations.
//
// Table requirements:
//   - PK: id (string)
type RateCardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateCardRepository = (*RateCardDynamoRepository)(nil)

func NewRateCardDynamoRepository(ddb *dynamodb.Client) *RateCardDynamoRepository {
	return &RateCardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATE_CARDS_TABLE", defaultRateCardsTableName),
	}
}

// FindByIDs batches the lookups in chunks of 100 keys and retries unprocessed keys a few times.
func (r *RateCardDynamoRepository) FindByIDs(ctx context.Context, ids []string) ([]entities.RateCardEntry, error) {
	entries := make([]entities.RateCardEntry, 0, len(ids))
	for start := 0; start < len(ids); start += batchGetLimit {
		end := min(start+batchGetLimit, len(ids))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		request := map[string]types.KeysAndAttributes{r.tableName: {Keys: keys}}
		for attempt := 0; len(request) > 0; attempt++ {
			if attempt == batchGetAttempts {
				return nil, fmt.Errorf("rate cards: %d keys left unprocessed", len(request[r.tableName].Keys))
			}
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tableName] {
				var it rateCardItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				entries = append(entries, fromRateCardItem(it))
			}
			request = out.UnprocessedKeys
		}
	}
	return entries, nil
}

func fromRateCardItem(it rateCardItem) entities.RateCardEntry {
	return entities.RateCardEntry{
		ID:                it.ID,
		ApplicationTypeID: it.ApplicationTypeID,
		Name:              it.Name,
		Type:              entities.RateCardType(it.Type),
		Price:             it.Price,
		IsActive:          it.IsActive == nil || *it.IsActive,
	}
}
