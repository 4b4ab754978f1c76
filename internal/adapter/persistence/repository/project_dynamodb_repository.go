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

const defaultProjectsTableName = "projects"

type projectLineItem struct {
	TemplateID            string             `dynamodbav:"template_id"`
	Params                map[string]float64 `dynamodbav:"params,omitempty"`
	Quantity              int                `dynamodbav:"quantity"`
	MaterialID            string             `dynamodbav:"material_id,omitempty"`
	MaterialPriceSnapshot *float64           `dynamodbav:"material_price_snapshot,omitempty"`
	ManualPriceOverride   bool               `dynamodbav:"manual_price_override"`
}

type projectItem struct {
	ID         string            `dynamodbav:"id"`
	Name       string            `dynamodbav:"name"`
	CustomerID string            `dynamodbav:"customer_id"`
	Items      []projectLineItem `dynamodbav:"items"`
	TotalPrice float64           `dynamodbav:"total_price"`
	Status     string            `dynamodbav:"status"`
	CreatedAt  string            `dynamodbav:"created_at"`
	UpdatedAt  string            `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists the Project aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Items are embedded in the project row. Update writes the whole row with
// no version check: last write wins.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	projects := make([]entities.Project, 0, len(items))
	for _, raw := range items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		projects = append(projects, fromProjectItem(it))
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toProjectItem(p entities.Project) projectItem {
	lines := make([]projectLineItem, 0, len(p.Items))
	for _, item := range p.Items {
		lines = append(lines, projectLineItem{
			TemplateID:            item.TemplateID,
			Params:                item.Params,
			Quantity:              item.Quantity,
			MaterialID:            item.MaterialID,
			MaterialPriceSnapshot: item.MaterialPriceSnapshot,
			ManualPriceOverride:   item.ManualPriceOverride,
		})
	}
	return projectItem{
		ID:         p.ID,
		Name:       p.Name,
		CustomerID: p.CustomerID,
		Items:      lines,
		TotalPrice: p.TotalPrice,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	items := make([]entities.ProjectItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.ProjectItem{
			TemplateID:            line.TemplateID,
			Params:                line.Params,
			Quantity:              line.Quantity,
			MaterialID:            line.MaterialID,
			MaterialPriceSnapshot: line.MaterialPriceSnapshot,
			ManualPriceOverride:   line.ManualPriceOverride,
		})
	}
	return entities.Project{
		ID:         it.ID,
		Name:       it.Name,
		CustomerID: it.CustomerID,
		Items:      items,
		TotalPrice: it.TotalPrice,
		Status:     entities.PipelineStatus(it.Status),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
