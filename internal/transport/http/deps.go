package http

import (
	"context"
	"io"
	"time"

	"github.com/talent-api/internal/domain"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, email string, updates map[string]interface{}) error
	SetEnabled(ctx context.Context, email string, enabled bool) error
	SoftDelete(ctx context.Context, email string) error
	ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.User, string, error)
}

// OTPRepository is the minimal interface the router requires from a code store.
type OTPRepository interface {
	Put(ctx context.Context, c *domain.OTPCode) error
	Consume(ctx context.Context, email, code string, now int64) (bool, error)
}

// UserTypeRepository is the minimal interface the router requires from a user-type store.
type UserTypeRepository interface {
	Get(ctx context.Context, userTypeID string) (*domain.UserType, error)
}

// EmployeeRepository is the minimal interface the router requires from an employee store.
type EmployeeRepository interface {
	Put(ctx context.Context, e *domain.Employee) error
	Get(ctx context.Context, employeeID string) (*domain.Employee, error)
	Scan(ctx context.Context) ([]domain.Employee, error)
}

// CandidateRepository is the minimal interface the router requires from a candidate store.
type CandidateRepository interface {
	Put(ctx context.Context, c *domain.Candidate) error
	Get(ctx context.Context, candidateID string) (*domain.Candidate, error)
	Scan(ctx context.Context) ([]domain.Candidate, error)
	SetResumeKey(ctx context.Context, candidateID, key string) error
}

// TrainerRepository is the minimal interface the router requires from a trainer store.
type TrainerRepository interface {
	Put(ctx context.Context, t *domain.Trainer) error
	Get(ctx context.Context, trainerID string) (*domain.Trainer, error)
	Scan(ctx context.Context) ([]domain.Trainer, error)
}

// ObjectStore is the minimal interface the router requires from an object storage backend.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
