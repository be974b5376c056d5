package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/talent-api/internal/domain"
)

// UserTypeRepo reads the user_types table. Records are written by operators,
// not by the API, so this repo is read-only plus a Put used by tooling.
type UserTypeRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewUserTypeRepo(client *dynamodb.Client, tableName string) *UserTypeRepo {
	return &UserTypeRepo{client: client, tableName: tableName}
}

func (r *UserTypeRepo) Get(ctx context.Context, userTypeID string) (*domain.UserType, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("user_type_id", userTypeID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("user type %s: %w", userTypeID, domain.ErrNotFound)
	}
	var ut domain.UserType
	if err := attributevalue.UnmarshalMap(out.Item, &ut); err != nil {
		return nil, err
	}
	return &ut, nil
}

func (r *UserTypeRepo) Put(ctx context.Context, ut *domain.UserType) error {
	item, err := attributevalue.MarshalMap(ut)
	if err != nil {
		return fmt.Errorf("marshal user type: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}
