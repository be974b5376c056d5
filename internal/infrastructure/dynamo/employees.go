package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/talent-api/internal/domain"
)

// EmployeeRepo provides typed DynamoDB operations for the employees table.
type EmployeeRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewEmployeeRepo(client *dynamodb.Client, tableName string) *EmployeeRepo {
	return &EmployeeRepo{client: client, tableName: tableName}
}

func (r *EmployeeRepo) Put(ctx context.Context, e *domain.Employee) error {
	item, err := attributevalue.MarshalMap(e)
	if err != nil {
		return fmt.Errorf("marshal employee: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *EmployeeRepo) Get(ctx context.Context, employeeID string) (*domain.Employee, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("employee_id", employeeID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("employee %s: %w", employeeID, domain.ErrNotFound)
	}
	var e domain.Employee
	if err := attributevalue.UnmarshalMap(out.Item, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) Scan(ctx context.Context) ([]domain.Employee, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	var employees []domain.Employee
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}
