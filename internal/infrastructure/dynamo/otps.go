package dynamo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/talent-api/internal/domain"
)

// OTPRepo manages one-time email verification codes.
// PK: email, SK: code. The composite key allows multiple outstanding codes
// per email; reissue does not touch earlier rows. Expired rows are garbage
// until the expires_at TTL reaps them; reads never return them because
// Consume checks expiry in its condition.
type OTPRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewOTPRepo(client *dynamodb.Client, tableName string) *OTPRepo {
	return &OTPRepo{client: client, tableName: tableName}
}

func (r *OTPRepo) Put(ctx context.Context, c *domain.OTPCode) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal otp code: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// Consume atomically deletes the {email, code} row if it exists and has not
// expired (expires_at >= now), reporting whether a row was actually removed.
// Two concurrent calls for the same code race on the conditional delete, so
// at most one observes true. Wrong code, expired code, or no code at all are
// indistinguishable: all return false with no mutation.
func (r *OTPRepo) Consume(ctx context.Context, email, code string, now int64) (bool, error) {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 compositeKey("email", email, "code", code),
		ConditionExpression: aws.String("attribute_exists(email) AND expires_at >= :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now, 10)},
		},
	})
	if isConditionalCheckFailed(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
