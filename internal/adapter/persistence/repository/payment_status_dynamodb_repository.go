package repository

import (
	"context"
	"strings"

	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PaymentStatusDynamoRepository keeps the payment flags of each assessment.
//
// Table requirements:
//   - PK: id (string, the assessment id)
//
// Merge is a single UpdateItem touching only the patched attributes, so
// concurrent payments for different products never overwrite each other.
type PaymentStatusDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentStatusRepository = (*PaymentStatusDynamoRepository)(nil)

func NewPaymentStatusDynamoRepository(ddb DynamoAPI, tableName string) *PaymentStatusDynamoRepository {
	return &PaymentStatusDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentStatusDynamoRepository) Get(ctx context.Context, assessmentID string) (entities.PaymentStatus, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: assessmentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentStatus{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentStatus{AssessmentID: assessmentID}, nil
	}

	var s entities.PaymentStatus
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return entities.PaymentStatus{}, err
	}
	s.AssessmentID = assessmentID
	return s, nil
}

func (r *PaymentStatusDynamoRepository) Merge(ctx context.Context, assessmentID string, patch entities.PaymentStatusPatch) (entities.PaymentStatus, error) {
	if patch.IsEmpty() {
		return r.Get(ctx, assessmentID)
	}

	sets := make([]string, 0, 2)
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	if patch.HasPaidForFullReport != nil {
		sets = append(sets, "#full = :full")
		names["#full"] = "has_paid_for_full_report"
		values[":full"] = &types.AttributeValueMemberBOOL{Value: *patch.HasPaidForFullReport}
	}
	if patch.HasPaidForEbayUpgrade != nil {
		sets = append(sets, "#ebay = :ebay")
		names["#ebay"] = "has_paid_for_ebay_upgrade"
		values[":ebay"] = &types.AttributeValueMemberBOOL{Value: *patch.HasPaidForEbayUpgrade}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: assessmentID},
		},
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.PaymentStatus{}, err
	}

	var s entities.PaymentStatus
	if err := attributevalue.UnmarshalMap(out.Attributes, &s); err != nil {
		return entities.PaymentStatus{}, err
	}
	s.AssessmentID = assessmentID
	return s, nil
}
