package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/talent-api/internal/domain"
)

// TrainerRepo provides typed DynamoDB operations for the trainers table.
type TrainerRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewTrainerRepo(client *dynamodb.Client, tableName string) *TrainerRepo {
	return &TrainerRepo{client: client, tableName: tableName}
}

func (r *TrainerRepo) Put(ctx context.Context, t *domain.Trainer) error {
	item, err := attributevalue.MarshalMap(t)
	if err != nil {
		return fmt.Errorf("marshal trainer: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *TrainerRepo) Get(ctx context.Context, trainerID string) (*domain.Trainer, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("trainer_id", trainerID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("trainer %s: %w", trainerID, domain.ErrNotFound)
	}
	var t domain.Trainer
	if err := attributevalue.UnmarshalMap(out.Item, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TrainerRepo) Scan(ctx context.Context) ([]domain.Trainer, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	var trainers []domain.Trainer
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &trainers); err != nil {
		return nil, err
	}
	return trainers, nil
}
