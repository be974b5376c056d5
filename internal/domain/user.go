package domain

import "time"

type User struct {
	UserID              string     `json:"id" dynamodbav:"user_id"`
	Email               string     `json:"email" dynamodbav:"email"`
	PasswordHash        string     `json:"-" dynamodbav:"password_hash"`
	FullName            string     `json:"full_name" dynamodbav:"full_name"`
	Country             string     `json:"country" dynamodbav:"country"`
	UserTypeID          string     `json:"user_type_id,omitempty" dynamodbav:"user_type_id"`
	IsEnabled           bool       `json:"is_enabled" dynamodbav:"is_enabled"`
	IsCertified         bool       `json:"is_certified" dynamodbav:"is_certified"`
	CurrentStep         string     `json:"current_step,omitempty" dynamodbav:"current_step"`
	NextStep            string     `json:"next_step,omitempty" dynamodbav:"next_step"`
	OnboardingCompleted bool       `json:"onboarding_completed" dynamodbav:"onboarding_completed"`
	DeletedAt           *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at"`
	CreatedAt           time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt           time.Time  `json:"updated" dynamodbav:"updated_at"`
}

type SignUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	FullName    string `json:"full_name" validate:"required"`
	Country     string `json:"country" validate:"required"`
	UserTypeID  string `json:"user_type_id"`
	IsCertified *bool  `json:"is_certified"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	FullName    *string `json:"full_name"`
	Country     *string `json:"country"`
	UserTypeID  *string `json:"user_type_id"`
	IsCertified *bool   `json:"is_certified"`
	IsEnabled   *bool   `json:"is_enabled"`
}
