package trainer

import (
	"context"
	"time"

	"github.com/talent-api/internal/domain"
	"github.com/talent-api/internal/pkg/id"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateTrainerRequest) (*domain.Trainer, error)
	Get(ctx context.Context, trainerID string) (*domain.Trainer, error)
	List(ctx context.Context) ([]domain.Trainer, error)
}

type trainerStore interface {
	Put(ctx context.Context, t *domain.Trainer) error
	Get(ctx context.Context, trainerID string) (*domain.Trainer, error)
	Scan(ctx context.Context) ([]domain.Trainer, error)
}

type service struct {
	repo trainerStore
}

func NewService(repo trainerStore) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req domain.CreateTrainerRequest) (*domain.Trainer, error) {
	now := time.Now().UTC()
	tr := &domain.Trainer{
		TrainerID: id.New(),
		FullName:  req.FullName,
		Email:     req.Email,
		Specialty: req.Specialty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Put(ctx, tr); err != nil {
		return nil, err
	}
	return tr, nil
}

func (s *service) Get(ctx context.Context, trainerID string) (*domain.Trainer, error) {
	return s.repo.Get(ctx, trainerID)
}

func (s *service) List(ctx context.Context) ([]domain.Trainer, error) {
	return s.repo.Scan(ctx)
}
