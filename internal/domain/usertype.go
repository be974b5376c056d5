package domain

// UserType describes a platform role (employee, candidate, trainer) and the
// ordered onboarding steps a user of that type walks through after sign-up.
type UserType struct {
	UserTypeID      string   `json:"id" dynamodbav:"user_type_id"`
	Title           string   `json:"title" dynamodbav:"title"`
	OnboardingSteps []string `json:"onboarding_steps" dynamodbav:"onboarding_steps"`
}
