package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/talent-api/internal/domain"
)

// CandidateRepo provides typed DynamoDB operations for the candidates table.
type CandidateRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCandidateRepo(client *dynamodb.Client, tableName string) *CandidateRepo {
	return &CandidateRepo{client: client, tableName: tableName}
}

func (r *CandidateRepo) Put(ctx context.Context, c *domain.Candidate) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal candidate: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *CandidateRepo) Get(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("candidate_id", candidateID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("candidate %s: %w", candidateID, domain.ErrNotFound)
	}
	var c domain.Candidate
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepo) Scan(ctx context.Context) ([]domain.Candidate, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	var candidates []domain.Candidate
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// SetResumeKey records the S3 object key of the candidate's uploaded resume.
func (r *CandidateRepo) SetResumeKey(ctx context.Context, candidateID, key string) error {
	ue, err := buildUpdateExpr(map[string]interface{}{fieldResumeKey: key})
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("candidate_id", candidateID),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("attribute_exists(candidate_id)"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	if isConditionalCheckFailed(err) {
		return fmt.Errorf("candidate %s: %w", candidateID, domain.ErrNotFound)
	}
	return err
}
