package employee

import (
	"context"
	"time"

	"github.com/talent-api/internal/domain"
	"github.com/talent-api/internal/pkg/id"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateEmployeeRequest) (*domain.Employee, error)
	Get(ctx context.Context, employeeID string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
}

type employeeStore interface {
	Put(ctx context.Context, e *domain.Employee) error
	Get(ctx context.Context, employeeID string) (*domain.Employee, error)
	Scan(ctx context.Context) ([]domain.Employee, error)
}

type service struct {
	repo employeeStore
}

func NewService(repo employeeStore) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req domain.CreateEmployeeRequest) (*domain.Employee, error) {
	now := time.Now().UTC()
	e := &domain.Employee{
		EmployeeID: id.New(),
		FullName:   req.FullName,
		Email:      req.Email,
		Position:   req.Position,
		TrainerID:  req.TrainerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Get(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.repo.Get(ctx, employeeID)
}

func (s *service) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.Scan(ctx)
}
