package repository

import (
	"context"

	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AssessmentDynamoRepository persists complete assessment records.
//
// Table requirements:
//   - PK: id (string)
//
// Records are written whole with PutItem and never updated in place.
type AssessmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAssessmentRepository = (*AssessmentDynamoRepository)(nil)

func NewAssessmentDynamoRepository(ddb DynamoAPI, tableName string) *AssessmentDynamoRepository {
	return &AssessmentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AssessmentDynamoRepository) Put(ctx context.Context, a entities.Assessment) error {
	av, err := attributevalue.MarshalMap(a)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *AssessmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Assessment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Assessment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Assessment{}, nil
	}

	var a entities.Assessment
	if err := attributevalue.UnmarshalMap(out.Item, &a); err != nil {
		return entities.Assessment{}, err
	}
	return a, nil
}
