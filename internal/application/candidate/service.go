package candidate

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/talent-api/internal/domain"
	s3infra "github.com/talent-api/internal/infrastructure/s3"
	"github.com/talent-api/internal/pkg/id"
)

const presignTTL = 15 * time.Minute

type Service interface {
	Create(ctx context.Context, req domain.CreateCandidateRequest) (*domain.Candidate, error)
	Get(ctx context.Context, candidateID string) (*domain.Candidate, error)
	List(ctx context.Context) ([]domain.Candidate, error)
	// UploadResume stores the document and records its object key on the
	// candidate. Returns the object URL.
	UploadResume(ctx context.Context, candidateID, filename string, r io.Reader, contentType string) (string, error)
	// ResumeURL returns a time-limited download link for the stored resume.
	ResumeURL(ctx context.Context, candidateID string) (string, error)
	// DownloadResume streams the stored resume. The second return value is
	// the content type inferred from the object key.
	DownloadResume(ctx context.Context, candidateID string) (io.ReadCloser, string, error)
	// DeleteResume removes the stored document and clears the key.
	DeleteResume(ctx context.Context, candidateID string) error
}

type candidateStore interface {
	Put(ctx context.Context, c *domain.Candidate) error
	Get(ctx context.Context, candidateID string) (*domain.Candidate, error)
	Scan(ctx context.Context) ([]domain.Candidate, error)
	SetResumeKey(ctx context.Context, candidateID, key string) error
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	repo    candidateStore
	objects objectStore
}

func NewService(repo candidateStore, objects objectStore) Service {
	return &service{repo: repo, objects: objects}
}

func (s *service) Create(ctx context.Context, req domain.CreateCandidateRequest) (*domain.Candidate, error) {
	now := time.Now().UTC()
	c := &domain.Candidate{
		CandidateID: id.New(),
		FullName:    req.FullName,
		Email:       req.Email,
		Country:     req.Country,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	return s.repo.Get(ctx, candidateID)
}

func (s *service) List(ctx context.Context) ([]domain.Candidate, error) {
	return s.repo.Scan(ctx)
}

func (s *service) UploadResume(ctx context.Context, candidateID, filename string, r io.Reader, contentType string) (string, error) {
	if _, err := s.repo.Get(ctx, candidateID); err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = s3infra.DetectContentType(filename)
	}
	key := fmt.Sprintf("resumes/%s/%s", candidateID, filename)
	url, err := s.objects.Upload(ctx, key, r, contentType)
	if err != nil {
		return "", err
	}
	if err := s.repo.SetResumeKey(ctx, candidateID, key); err != nil {
		return "", err
	}
	return url, nil
}

func (s *service) ResumeURL(ctx context.Context, candidateID string) (string, error) {
	c, err := s.repo.Get(ctx, candidateID)
	if err != nil {
		return "", err
	}
	if c.ResumeKey == "" {
		return "", fmt.Errorf("candidate %s has no resume: %w", candidateID, domain.ErrNotFound)
	}
	return s.objects.PresignedURL(ctx, c.ResumeKey, presignTTL)
}

func (s *service) DownloadResume(ctx context.Context, candidateID string) (io.ReadCloser, string, error) {
	c, err := s.repo.Get(ctx, candidateID)
	if err != nil {
		return nil, "", err
	}
	if c.ResumeKey == "" {
		return nil, "", fmt.Errorf("candidate %s has no resume: %w", candidateID, domain.ErrNotFound)
	}
	body, err := s.objects.Download(ctx, c.ResumeKey)
	if err != nil {
		return nil, "", err
	}
	return body, s3infra.DetectContentType(c.ResumeKey), nil
}

func (s *service) DeleteResume(ctx context.Context, candidateID string) error {
	c, err := s.repo.Get(ctx, candidateID)
	if err != nil {
		return err
	}
	if c.ResumeKey == "" {
		return fmt.Errorf("candidate %s has no resume: %w", candidateID, domain.ErrNotFound)
	}
	if err := s.objects.Delete(ctx, c.ResumeKey); err != nil {
		return err
	}
	return s.repo.SetResumeKey(ctx, candidateID, "")
}
