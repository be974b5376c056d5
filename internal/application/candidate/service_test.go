package candidate

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/talent-api/internal/domain"
)

type mockCandidateStore struct{ mock.Mock }

func (m *mockCandidateStore) Put(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCandidateStore) Get(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	args := m.Called(ctx, candidateID)
	if c, _ := args.Get(0).(*domain.Candidate); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCandidateStore) Scan(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Candidate), args.Error(1)
}
func (m *mockCandidateStore) SetResumeKey(ctx context.Context, candidateID, key string) error {
	return m.Called(ctx, candidateID, key).Error(0)
}

type mockObjectStore struct{ mock.Mock }

func (m *mockObjectStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}
func (m *mockObjectStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if rc, _ := args.Get(0).(io.ReadCloser); rc != nil {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockObjectStore) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}
func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	repo := &mockCandidateStore{}
	repo.On("Put", mock.Anything, mock.MatchedBy(func(c *domain.Candidate) bool {
		return c.CandidateID != "" && !c.CreatedAt.IsZero()
	})).Return(nil)

	svc := NewService(repo, nil)
	c, err := svc.Create(context.Background(), domain.CreateCandidateRequest{
		FullName: "Bob Jones", Email: "bob@example.com",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, c.CandidateID)
	repo.AssertExpectations(t)
}

func TestUploadResume_KeysByCandidate(t *testing.T) {
	repo := &mockCandidateStore{}
	objects := &mockObjectStore{}
	repo.On("Get", mock.Anything, "c1").Return(&domain.Candidate{CandidateID: "c1"}, nil)
	objects.On("Upload", mock.Anything, "resumes/c1/cv.pdf", mock.Anything, "application/pdf").
		Return("s3://bucket/resumes/c1/cv.pdf", nil)
	repo.On("SetResumeKey", mock.Anything, "c1", "resumes/c1/cv.pdf").Return(nil)

	svc := NewService(repo, objects)
	url, err := svc.UploadResume(context.Background(), "c1", "cv.pdf", bytes.NewReader([]byte("%PDF")), "application/pdf")

	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/resumes/c1/cv.pdf", url)
	repo.AssertExpectations(t)
	objects.AssertExpectations(t)
}

func TestUploadResume_InfersContentType(t *testing.T) {
	repo := &mockCandidateStore{}
	objects := &mockObjectStore{}
	repo.On("Get", mock.Anything, "c1").Return(&domain.Candidate{CandidateID: "c1"}, nil)
	objects.On("Upload", mock.Anything, "resumes/c1/cv.docx", mock.Anything,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document").
		Return("s3://bucket/resumes/c1/cv.docx", nil)
	repo.On("SetResumeKey", mock.Anything, "c1", "resumes/c1/cv.docx").Return(nil)

	svc := NewService(repo, objects)
	_, err := svc.UploadResume(context.Background(), "c1", "cv.docx", bytes.NewReader([]byte("x")), "")

	require.NoError(t, err)
	objects.AssertExpectations(t)
}

func TestUploadResume_UnknownCandidate(t *testing.T) {
	repo := &mockCandidateStore{}
	repo.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := NewService(repo, &mockObjectStore{})
	_, err := svc.UploadResume(context.Background(), "missing", "cv.pdf", bytes.NewReader(nil), "application/pdf")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResumeURL_NoResume(t *testing.T) {
	repo := &mockCandidateStore{}
	repo.On("Get", mock.Anything, "c1").Return(&domain.Candidate{CandidateID: "c1"}, nil)

	svc := NewService(repo, &mockObjectStore{})
	_, err := svc.ResumeURL(context.Background(), "c1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadResume_ContentTypeFromKey(t *testing.T) {
	repo := &mockCandidateStore{}
	objects := &mockObjectStore{}
	repo.On("Get", mock.Anything, "c1").Return(&domain.Candidate{CandidateID: "c1", ResumeKey: "resumes/c1/cv.pdf"}, nil)
	objects.On("Download", mock.Anything, "resumes/c1/cv.pdf").
		Return(io.NopCloser(bytes.NewReader([]byte("%PDF"))), nil)

	svc := NewService(repo, objects)
	body, contentType, err := svc.DownloadResume(context.Background(), "c1")

	require.NoError(t, err)
	defer body.Close()
	assert.Equal(t, "application/pdf", contentType)
}

func TestDeleteResume_ClearsKey(t *testing.T) {
	repo := &mockCandidateStore{}
	objects := &mockObjectStore{}
	repo.On("Get", mock.Anything, "c1").Return(&domain.Candidate{CandidateID: "c1", ResumeKey: "resumes/c1/cv.pdf"}, nil)
	objects.On("Delete", mock.Anything, "resumes/c1/cv.pdf").Return(nil)
	repo.On("SetResumeKey", mock.Anything, "c1", "").Return(nil)

	svc := NewService(repo, objects)
	require.NoError(t, svc.DeleteResume(context.Background(), "c1"))
	repo.AssertExpectations(t)
	objects.AssertExpectations(t)
}
