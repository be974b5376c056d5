package domain

import "time"

type Employee struct {
	EmployeeID string     `json:"id" dynamodbav:"employee_id"`
	FullName   string     `json:"full_name" dynamodbav:"full_name"`
	Email      string     `json:"email" dynamodbav:"email"`
	Position   string     `json:"position" dynamodbav:"position"`
	TrainerID  string     `json:"trainer_id,omitempty" dynamodbav:"trainer_id"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at"`
	CreatedAt  time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt  time.Time  `json:"updated" dynamodbav:"updated_at"`
}

type CreateEmployeeRequest struct {
	FullName  string `json:"full_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Position  string `json:"position"`
	TrainerID string `json:"trainer_id"`
}
