package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	"github.com/m-bikko/kulsary-vent/internal/usecase/interfaces"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID             string  `dynamodbav:"id"`
	Title          string  `dynamodbav:"title"`
	Description    string  `dynamodbav:"description,omitempty"`
	Status         string  `dynamodbav:"status"`
	CustomerID     string  `dynamodbav:"customer_id,omitempty"`
	ProjectID      string  `dynamodbav:"project_id,omitempty"`
	EstimatedValue float64 `dynamodbav:"estimated_value"`
	Source         string  `dynamodbav:"source"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

// List scans the table and filters the creation window in memory.
// Timestamps are stored as RFC3339Nano strings whose fractional seconds
// vary in length, so a lexicographic FilterExpression would misorder them.
func (r *LeadDynamoRepository) List(ctx context.Context, filter interfaces.LeadFilter) ([]entities.Lead, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	leads := make([]entities.Lead, 0, len(items))
	for _, raw := range items {
		var it leadItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		l := fromLeadItem(it)
		if !filter.From.IsZero() && l.CreatedAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && l.CreatedAt.After(filter.To) {
			continue
		}
		leads = append(leads, l)
	}
	return leads, nil
}

func (r *LeadDynamoRepository) Update(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:             l.ID,
		Title:          l.Title,
		Description:    l.Description,
		Status:         string(l.Status),
		CustomerID:     l.CustomerID,
		ProjectID:      l.ProjectID,
		EstimatedValue: l.EstimatedValue,
		Source:         l.Source,
		CreatedAt:      l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Lead{
		ID:             it.ID,
		Title:          it.Title,
		Description:    it.Description,
		Status:         entities.PipelineStatus(it.Status),
		CustomerID:     it.CustomerID,
		ProjectID:      it.ProjectID,
		EstimatedValue: it.EstimatedValue,
		Source:         it.Source,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
