package domain

// OTPCode is a short-lived numeric code proving control of an email address.
// PK: email, SK: code. Multiple outstanding codes per email are allowed.
// ExpiresAt is a Unix timestamp used as DynamoDB TTL.
type OTPCode struct {
	Email     string `json:"email" dynamodbav:"email"`
	Code      string `json:"code" dynamodbav:"code"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
}
