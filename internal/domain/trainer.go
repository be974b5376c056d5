package domain

import "time"

type Trainer struct {
	TrainerID string     `json:"id" dynamodbav:"trainer_id"`
	FullName  string     `json:"full_name" dynamodbav:"full_name"`
	Email     string     `json:"email" dynamodbav:"email"`
	Specialty string     `json:"specialty" dynamodbav:"specialty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at"`
	CreatedAt time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time  `json:"updated" dynamodbav:"updated_at"`
}

type CreateTrainerRequest struct {
	FullName  string `json:"full_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty"`
}
