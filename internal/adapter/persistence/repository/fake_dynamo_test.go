package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items by their "id" attribute and records the last input
// of each call.
type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue
	err   error

	lastPut    *dynamodb.PutItemInput
	lastGet    *dynamodb.GetItemInput
	lastUpdate *dynamodb.UpdateItemInput

	updateOut *dynamodb.UpdateItemOutput
	queries   []*dynamodb.QueryInput
	pages     []*dynamodb.QueryOutput
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func idOf(item map[string]types.AttributeValue) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	if f.err != nil {
		return nil, f.err
	}
	id := idOf(in.Item)
	if in.ConditionExpression != nil {
		if _, exists := f.items[id]; exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.lastGet = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[idOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.lastUpdate = in
	if f.err != nil {
		return nil, f.err
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := idOf(in.Key)
	old, ok := f.items[id]
	if !ok {
		return &dynamodb.DeleteItemOutput{}, nil
	}
	delete(f.items, id)
	return &dynamodb.DeleteItemOutput{Attributes: old}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.pages) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	out := f.pages[0]
	f.pages = f.pages[1:]
	return out, nil
}
