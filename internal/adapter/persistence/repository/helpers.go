package repository

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDB caps BatchGetItem at 100 keys per request.
const batchGetLimit = 100

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// scanAll pages through a full table scan. The catalog tables hold at most
// a few thousand rows, so a scan stays cheap enough for list endpoints.
func scanAll(ctx context.Context, ddb *dynamodb.Client, tableName string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

// deleteByID removes one row and reports whether it existed.
func deleteByID(ctx context.Context, ddb *dynamodb.Client, tableName, id string) (bool, error) {
	out, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// batchGetByIDs fetches rows by PK in BatchGetItem chunks, retrying
// unprocessed keys. Duplicate and missing ids are tolerated; the result
// only contains rows that exist.
func batchGetByIDs(ctx context.Context, ddb *dynamodb.Client, tableName string, ids []string) ([]map[string]types.AttributeValue, error) {
	seen := make(map[string]struct{}, len(ids))
	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		})
	}

	var items []map[string]types.AttributeValue
	for len(keys) > 0 {
		chunk := keys
		if len(chunk) > batchGetLimit {
			chunk = chunk[:batchGetLimit]
		}
		keys = keys[len(chunk):]

		pending := chunk
		for len(pending) > 0 {
			out, err := ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: map[string]types.KeysAndAttributes{
					tableName: {Keys: pending},
				},
			})
			if err != nil {
				return nil, err
			}
			items = append(items, out.Responses[tableName]...)
			pending = out.UnprocessedKeys[tableName].Keys
		}
	}
	return items, nil
}
