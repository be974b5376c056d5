package domain

import "time"

type Candidate struct {
	CandidateID string     `json:"id" dynamodbav:"candidate_id"`
	FullName    string     `json:"full_name" dynamodbav:"full_name"`
	Email       string     `json:"email" dynamodbav:"email"`
	Country     string     `json:"country" dynamodbav:"country"`
	ResumeKey   string     `json:"-" dynamodbav:"resume_key"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at"`
	CreatedAt   time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time  `json:"updated" dynamodbav:"updated_at"`
}

type CreateCandidateRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Country  string `json:"country"`
}
