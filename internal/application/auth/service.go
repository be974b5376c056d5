package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/talent-api/internal/application/otp"
	"github.com/talent-api/internal/domain"
	jwtinfra "github.com/talent-api/internal/infrastructure/jwt"
	"github.com/talent-api/internal/pkg/id"
)

// SignInResult carries the issued token plus response enrichment. Claims come
// from an unverified decode of the freshly signed token and are informational
// only.
type SignInResult struct {
	AccessToken string           `json:"access_token"`
	Claims      *jwtinfra.Claims `json:"claims,omitempty"`
	User        *domain.User     `json:"user"`
}

// Service orchestrates sign-up, sign-in, and email verification. Accounts
// start Pending (disabled); a consumed verification code moves them to
// Active; soft delete is orthogonal to both.
type Service interface {
	SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.User, error)
	SignIn(ctx context.Context, req domain.SignInRequest) (*SignInResult, error)
	// VerifyEmail returns a business-level boolean: false means wrong,
	// expired, or never-issued code, with no state change.
	VerifyEmail(ctx context.Context, email, code string) (bool, error)
	IssueCode(ctx context.Context, email string) error
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	SetEnabled(ctx context.Context, email string, enabled bool) error
}

type userTypeStore interface {
	Get(ctx context.Context, userTypeID string) (*domain.UserType, error)
}

type passwordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

type tokenProvider interface {
	Sign(email, userID string) (string, error)
	Decode(token string) (*jwtinfra.Claims, error)
}

type service struct {
	users     userStore
	userTypes userTypeStore
	codes     otp.Service
	hasher    passwordHasher
	tokens    tokenProvider
}

type ServiceDeps struct {
	UserRepo     userStore
	UserTypeRepo userTypeStore
	OTPService   otp.Service
	Hasher       passwordHasher
	JWTProvider  tokenProvider
}

func NewService(deps ServiceDeps) Service {
	return &service{
		users:     deps.UserRepo,
		userTypes: deps.UserTypeRepo,
		codes:     deps.OTPService,
		hasher:    deps.Hasher,
		tokens:    deps.JWTProvider,
	}
}

// SignUp creates a Pending account and triggers code issuance. The store
// enforces email uniqueness, so concurrent sign-ups for one address cannot
// both succeed. A notification failure propagates but the created account
// and the stored code are kept.
func (s *service) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.User, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Country:      req.Country,
		UserTypeID:   req.UserTypeID,
		IsEnabled:    false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.IsCertified != nil {
		u.IsCertified = *req.IsCertified
	}

	if req.UserTypeID != "" {
		ut, err := s.userTypes.Get(ctx, req.UserTypeID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("unknown user type %s: %w", req.UserTypeID, domain.ErrBadRequest)
			}
			return nil, err
		}
		if len(ut.OnboardingSteps) > 0 {
			u.CurrentStep = ut.OnboardingSteps[0]
		}
		if len(ut.OnboardingSteps) > 1 {
			u.NextStep = ut.OnboardingSteps[1]
		}
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	if err := s.codes.Issue(ctx, req.Email); err != nil {
		return u, err
	}
	return u, nil
}

// SignIn authenticates an Active account and issues a signed token.
// Not-found, wrong password, and soft-deleted all surface the same
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *service) SignIn(ctx context.Context, req domain.SignInRequest) (*SignInResult, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if u.DeletedAt != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !s.hasher.Verify(req.Password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !u.IsEnabled {
		return nil, domain.ErrAccountNotVerified
	}

	token, err := s.tokens.Sign(u.Email, u.UserID)
	if err != nil {
		return nil, err
	}
	claims, err := s.tokens.Decode(token)
	if err != nil {
		// Enrichment only; the token itself is already signed and valid.
		slog.Warn("failed to decode issued token", "err", err)
		claims = nil
	}
	return &SignInResult{AccessToken: token, Claims: claims, User: u}, nil
}

// VerifyEmail consumes a code and, on success, flips the account to Active.
func (s *service) VerifyEmail(ctx context.Context, email, code string) (bool, error) {
	ok, err := s.codes.Verify(ctx, email, code)
	if err != nil || !ok {
		return false, err
	}
	if err := s.users.SetEnabled(ctx, email, true); err != nil {
		return false, err
	}
	return true, nil
}

// IssueCode sends a fresh verification code. Earlier outstanding codes for
// the same email stay valid until they expire.
func (s *service) IssueCode(ctx context.Context, email string) error {
	return s.codes.Issue(ctx, email)
}
