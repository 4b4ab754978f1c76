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

const defaultTemplatesTableName = "product_templates"

type templateParameterItem struct {
	Name string `dynamodbav:"name"`
	Slug string `dynamodbav:"slug"`
	Type string `dynamodbav:"type"`
}

type templateItem struct {
	ID         string                  `dynamodbav:"id"`
	Name       string                  `dynamodbav:"name"`
	ImageURL   string                  `dynamodbav:"image_url,omitempty"`
	Parameters []templateParameterItem `dynamodbav:"parameters"`
	Materials  []string                `dynamodbav:"materials,omitempty"`
	Formula    string                  `dynamodbav:"formula"`
	CreatedAt  string                  `dynamodbav:"created_at"`
}

// TemplateDynamoRepository persists ProductTemplate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Parameters are embedded; a template is always read and written whole.

type TemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITemplateRepository = (*TemplateDynamoRepository)(nil)

func NewTemplateDynamoRepository(ddb *dynamodb.Client) *TemplateDynamoRepository {
	return &TemplateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TEMPLATES_TABLE", defaultTemplatesTableName),
	}
}

func (r *TemplateDynamoRepository) Create(ctx context.Context, t entities.ProductTemplate) (entities.ProductTemplate, error) {
	av, err := attributevalue.MarshalMap(toTemplateItem(t))
	if err != nil {
		return entities.ProductTemplate{}, err
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
		return entities.ProductTemplate{}, err
	}
	return t, nil
}

func (r *TemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProductTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProductTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProductTemplate{}, nil
	}

	var it templateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProductTemplate{}, err
	}
	return fromTemplateItem(it), nil
}

func (r *TemplateDynamoRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entities.ProductTemplate, error) {
	raws, err := batchGetByIDs(ctx, r.ddb, r.tableName, ids)
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*entities.ProductTemplate, len(raws))
	for _, raw := range raws {
		var it templateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		t := fromTemplateItem(it)
		templates[t.ID] = &t
	}
	return templates, nil
}

func (r *TemplateDynamoRepository) List(ctx context.Context) ([]entities.ProductTemplate, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	templates := make([]entities.ProductTemplate, 0, len(items))
	for _, raw := range items {
		var it templateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		templates = append(templates, fromTemplateItem(it))
	}
	return templates, nil
}

func (r *TemplateDynamoRepository) Update(ctx context.Context, t entities.ProductTemplate) (entities.ProductTemplate, error) {
	av, err := attributevalue.MarshalMap(toTemplateItem(t))
	if err != nil {
		return entities.ProductTemplate{}, err
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
			return entities.ProductTemplate{}, nil
		}
		return entities.ProductTemplate{}, err
	}
	return t, nil
}

func (r *TemplateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toTemplateItem(t entities.ProductTemplate) templateItem {
	params := make([]templateParameterItem, 0, len(t.Parameters))
	for _, p := range t.Parameters {
		params = append(params, templateParameterItem{
			Name: p.Name,
			Slug: p.Slug,
			Type: string(p.Type),
		})
	}
	return templateItem{
		ID:         t.ID,
		Name:       t.Name,
		ImageURL:   t.ImageURL,
		Parameters: params,
		Materials:  t.Materials,
		Formula:    t.Formula,
		CreatedAt:  t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTemplateItem(it templateItem) entities.ProductTemplate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	params := make([]entities.Parameter, 0, len(it.Parameters))
	for _, p := range it.Parameters {
		params = append(params, entities.Parameter{
			Name: p.Name,
			Slug: p.Slug,
			Type: entities.ParameterType(p.Type),
		})
	}
	return entities.ProductTemplate{
		ID:         it.ID,
		Name:       it.Name,
		ImageURL:   it.ImageURL,
		Parameters: params,
		Materials:  it.Materials,
		Formula:    it.Formula,
		CreatedAt:  createdAt,
	}
}
