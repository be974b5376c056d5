package dynamo

// DynamoDB attribute names used in update expressions across all repos.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldIsEnabled = "is_enabled"
	fieldDeletedAt = "deleted_at"
	fieldUpdatedAt = "updated_at"
	fieldResumeKey = "resume_key"
)
