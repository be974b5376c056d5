package user

import (
	"context"

	"github.com/talent-api/internal/domain"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldFullName    = "full_name"
	fieldCountry     = "country"
	fieldUserTypeID  = "user_type_id"
	fieldIsCertified = "is_certified"
	fieldIsEnabled   = "is_enabled"
	fieldCurrentStep = "current_step"
	fieldNextStep    = "next_step"
	fieldCompleted   = "onboarding_completed"
)

type Service interface {
	List(ctx context.Context, limit int, cursor string) ([]domain.User, string, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.User, error)
	SoftDelete(ctx context.Context, userID string) error
	CompleteOnboardingStep(ctx context.Context, userID string) (*domain.User, error)
}

type userStore interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, email string, updates map[string]interface{}) error
	SoftDelete(ctx context.Context, email string) error
	ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.User, string, error)
}

type userTypeStore interface {
	Get(ctx context.Context, userTypeID string) (*domain.UserType, error)
}

type service struct {
	repo      userStore
	userTypes userTypeStore
}

func NewService(repo userStore, userTypes userTypeStore) Service {
	return &service{repo: repo, userTypes: userTypes}
}

func (s *service) List(ctx context.Context, limit int, cursor string) ([]domain.User, string, error) {
	if limit < 1 {
		limit = 50
	}
	return s.repo.ScanPage(ctx, int32(limit), cursor)
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// Update merges only the provided fields into the record.
func (s *service) Update(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates[fieldFullName] = *req.FullName
	}
	if req.Country != nil {
		updates[fieldCountry] = *req.Country
	}
	if req.UserTypeID != nil {
		updates[fieldUserTypeID] = *req.UserTypeID
	}
	if req.IsCertified != nil {
		updates[fieldIsCertified] = *req.IsCertified
	}
	if req.IsEnabled != nil {
		updates[fieldIsEnabled] = *req.IsEnabled
	}
	if len(updates) == 0 {
		return u, nil
	}
	if err := s.repo.Update(ctx, u.Email, updates); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, userID)
}

// SoftDelete marks the record deleted. It remains resolvable by id and
// email; sign-in rejects it.
func (s *service) SoftDelete(ctx context.Context, userID string) error {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, u.Email)
}

// CompleteOnboardingStep advances the user through the ordered step list of
// their user type. After the last step, onboarding is marked completed;
// further calls are no-ops.
func (s *service) CompleteOnboardingStep(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.OnboardingCompleted {
		return u, nil
	}
	if u.UserTypeID == "" {
		return nil, domain.ErrBadRequest
	}
	ut, err := s.userTypes.Get(ctx, u.UserTypeID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, step := range ut.OnboardingSteps {
		if step == u.CurrentStep {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrBadRequest
	}

	updates := map[string]interface{}{}
	if idx+1 < len(ut.OnboardingSteps) {
		updates[fieldCurrentStep] = ut.OnboardingSteps[idx+1]
		next := ""
		if idx+2 < len(ut.OnboardingSteps) {
			next = ut.OnboardingSteps[idx+2]
		}
		updates[fieldNextStep] = next
	} else {
		updates[fieldCompleted] = true
	}
	if err := s.repo.Update(ctx, u.Email, updates); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, userID)
}
