package dynamo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/talent-api/internal/config"
	"github.com/talent-api/internal/domain"
)

// Bootstrap creates all DynamoDB tables and GSIs if they don't already exist.
// Safe to call on every startup; tables that already exist are skipped.
func Bootstrap(ctx context.Context, client *dynamodb.Client, tables config.DynamoTables) {
	createTable(ctx, client, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.Users),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("email"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("user_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("email"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			gsi("user_id-index", "user_id", ""),
		},
	})

	createTable(ctx, client, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.OTPCodes),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("email"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("code"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("email"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("code"), KeyType: types.KeyTypeRange},
		},
	})
	enableTTL(ctx, client, tables.OTPCodes, "expires_at")

	createTable(ctx, client, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.UserTypes),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("user_type_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("user_type_id"), KeyType: types.KeyTypeHash},
		},
	})

	createTable(ctx, client, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.Employees),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("employee_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("employee_id"), KeyType: types.KeyTypeHash},
		},
	})

	createTable(ctx, client, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.Candidates),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("candidate_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("candidate_id"), KeyType: types.KeyTypeHash},
		},
	})

	createTable(ctx, client, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.Trainers),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("trainer_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("trainer_id"), KeyType: types.KeyTypeHash},
		},
	})
}

// SeedUserTypes inserts the default user types with their onboarding step
// lists. Existing records are left untouched so operator edits survive
// restarts.
func SeedUserTypes(ctx context.Context, repo *UserTypeRepo) {
	defaults := []domain.UserType{
		{UserTypeID: "candidate", Title: "Candidate", OnboardingSteps: []string{"profile", "resume", "assessment"}},
		{UserTypeID: "trainer", Title: "Trainer", OnboardingSteps: []string{"profile", "certification", "schedule"}},
		{UserTypeID: "employee", Title: "Employee", OnboardingSteps: []string{"profile"}},
	}
	for i := range defaults {
		if _, err := repo.Get(ctx, defaults[i].UserTypeID); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			slog.Error("failed to check user type", "user_type", defaults[i].UserTypeID, "err", err)
			continue
		}
		if err := repo.Put(ctx, &defaults[i]); err != nil {
			slog.Error("failed to seed user type", "user_type", defaults[i].UserTypeID, "err", err)
			continue
		}
		slog.Info("seeded user type", "user_type", defaults[i].UserTypeID)
	}
}

func createTable(ctx context.Context, client *dynamodb.Client, input *dynamodb.CreateTableInput) {
	_, err := client.CreateTable(ctx, input)
	if err != nil {
		var exists *types.ResourceInUseException
		if errors.As(err, &exists) {
			return
		}
		slog.Error("failed to create table", "table", *input.TableName, "err", err)
		return
	}
	slog.Info("created table", "table", *input.TableName)
}

// enableTTL turns on item expiry for the given attribute. Already-enabled is
// reported as a ValidationException and ignored.
func enableTTL(ctx context.Context, client *dynamodb.Client, table, attr string) {
	_, err := client.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(table),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			AttributeName: aws.String(attr),
			Enabled:       aws.Bool(true),
		},
	})
	if err != nil {
		slog.Debug("ttl not updated", "table", table, "err", err)
	}
}

func gsi(name, hashKey, rangeKey string) types.GlobalSecondaryIndex {
	keySchema := []types.KeySchemaElement{
		{AttributeName: aws.String(hashKey), KeyType: types.KeyTypeHash},
	}
	if rangeKey != "" {
		keySchema = append(keySchema, types.KeySchemaElement{
			AttributeName: aws.String(rangeKey), KeyType: types.KeyTypeRange,
		})
	}
	return types.GlobalSecondaryIndex{
		IndexName:  aws.String(name),
		KeySchema:  keySchema,
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}
