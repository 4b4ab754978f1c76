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

const defaultMaterialsTableName = "materials"

type materialItem struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Price     float64 `dynamodbav:"price"`
	Unit      string  `dynamodbav:"unit"`
	CreatedAt string  `dynamodbav:"created_at"`
}

// MaterialDynamoRepository persists Material entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type MaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIALS_TABLE", defaultMaterialsTableName),
	}
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(m))
	if err != nil {
		return entities.Material{}, err
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
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Item) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entities.Material, error) {
	raws, err := batchGetByIDs(ctx, r.ddb, r.tableName, ids)
	if err != nil {
		return nil, err
	}

	materials := make(map[string]*entities.Material, len(raws))
	for _, raw := range raws {
		var it materialItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		m := fromMaterialItem(it)
		materials[m.ID] = &m
	}
	return materials, nil
}

// GetPricesByIDs is the snapshot resolver's batched price lookup.
func (r *MaterialDynamoRepository) GetPricesByIDs(ctx context.Context, ids []string) (map[string]float64, error) {
	materials, err := r.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(materials))
	for id, m := range materials {
		prices[id] = m.Price
	}
	return prices, nil
}

func (r *MaterialDynamoRepository) List(ctx context.Context) ([]entities.Material, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	materials := make([]entities.Material, 0, len(items))
	for _, raw := range items {
		var it materialItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		materials = append(materials, fromMaterialItem(it))
	}
	return materials, nil
}

func (r *MaterialDynamoRepository) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(m))
	if err != nil {
		return entities.Material{}, err
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
			return entities.Material{}, nil
		}
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toMaterialItem(m entities.Material) materialItem {
	return materialItem{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		Unit:      m.Unit,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMaterialItem(it materialItem) entities.Material {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Material{
		ID:        it.ID,
		Name:      it.Name,
		Price:     it.Price,
		Unit:      it.Unit,
		CreatedAt: createdAt,
	}
}
