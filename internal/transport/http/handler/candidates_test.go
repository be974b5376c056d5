package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/talent-api/internal/domain"
)

// --- mock ---

type mockCandidateSvc struct{ mock.Mock }

func (m *mockCandidateSvc) Create(ctx context.Context, req domain.CreateCandidateRequest) (*domain.Candidate, error) {
	args := m.Called(ctx, req)
	if c, _ := args.Get(0).(*domain.Candidate); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCandidateSvc) Get(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	args := m.Called(ctx, candidateID)
	if c, _ := args.Get(0).(*domain.Candidate); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCandidateSvc) List(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *mockCandidateSvc) UploadResume(ctx context.Context, candidateID, filename string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, candidateID, filename, r, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockCandidateSvc) ResumeURL(ctx context.Context, candidateID string) (string, error) {
	args := m.Called(ctx, candidateID)
	return args.String(0), args.Error(1)
}

func (m *mockCandidateSvc) DownloadResume(ctx context.Context, candidateID string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, candidateID)
	if rc, _ := args.Get(0).(io.ReadCloser); rc != nil {
		return rc, args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func (m *mockCandidateSvc) DeleteResume(ctx context.Context, candidateID string) error {
	return m.Called(ctx, candidateID).Error(0)
}

func multipartResume(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

// --- tests ---

func TestCandidateCreate_HappyPath(t *testing.T) {
	svc := &mockCandidateSvc{}
	c := &domain.Candidate{CandidateID: "c1", FullName: "Bob Jones", Email: "bob@example.com"}
	svc.On("Create", mock.Anything, mock.Anything).Return(c, nil)
	h := NewCandidateHandler(svc)

	body, _ := json.Marshal(domain.CreateCandidateRequest{FullName: "Bob Jones", Email: "bob@example.com"})
	r := httptest.NewRequest(http.MethodPost, "/v1/candidates", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, r)

	assert.Equal(t, http.StatusCreated, rr.Code)
	svc.AssertExpectations(t)
}

func TestCandidateCreate_ValidationFailure(t *testing.T) {
	h := NewCandidateHandler(&mockCandidateSvc{})
	body, _ := json.Marshal(domain.CreateCandidateRequest{FullName: "Bob Jones"}) // missing email
	r := httptest.NewRequest(http.MethodPost, "/v1/candidates", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadResume_MissingFile(t *testing.T) {
	h := NewCandidateHandler(&mockCandidateSvc{})
	buf, contentType := multipartResume(t, "wrong-field", "cv.pdf", []byte("%PDF-1.4"))

	r := withChiID(httptest.NewRequest(http.MethodPut, "/v1/candidates/c1/resume", buf), "c1")
	r.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	h.UploadResume(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadResume_HappyPath(t *testing.T) {
	svc := &mockCandidateSvc{}
	svc.On("UploadResume", mock.Anything, "c1", "cv.pdf", mock.Anything, mock.Anything).
		Return("https://bucket.s3.amazonaws.com/resumes/c1/cv.pdf", nil)
	h := NewCandidateHandler(svc)

	buf, contentType := multipartResume(t, "resume", "cv.pdf", []byte("%PDF-1.4"))
	r := withChiID(httptest.NewRequest(http.MethodPut, "/v1/candidates/c1/resume", buf), "c1")
	r.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	h.UploadResume(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Contains(t, resp["url"], "resumes/c1/cv.pdf")
	svc.AssertExpectations(t)
}

func TestResumeURL_NoResume(t *testing.T) {
	svc := &mockCandidateSvc{}
	svc.On("ResumeURL", mock.Anything, "c1").Return("", domain.ErrNotFound)
	h := NewCandidateHandler(svc)

	r := withChiID(httptest.NewRequest(http.MethodGet, "/v1/candidates/c1/resume", nil), "c1")
	rr := httptest.NewRecorder()
	h.ResumeURL(rr, r)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDownloadResume_StreamsBody(t *testing.T) {
	svc := &mockCandidateSvc{}
	body := io.NopCloser(bytes.NewReader([]byte("%PDF-1.4 resume bytes")))
	svc.On("DownloadResume", mock.Anything, "c1").Return(body, "application/pdf", nil)
	h := NewCandidateHandler(svc)

	r := withChiID(httptest.NewRequest(http.MethodGet, "/v1/candidates/c1/resume/file", nil), "c1")
	rr := httptest.NewRecorder()
	h.DownloadResume(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.4 resume bytes", rr.Body.String())
}

func TestDeleteResume_HappyPath(t *testing.T) {
	svc := &mockCandidateSvc{}
	svc.On("DeleteResume", mock.Anything, "c1").Return(nil)
	h := NewCandidateHandler(svc)

	r := withChiID(httptest.NewRequest(http.MethodDelete, "/v1/candidates/c1/resume", nil), "c1")
	rr := httptest.NewRecorder()
	h.DeleteResume(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestResumeURL_HappyPath(t *testing.T) {
	svc := &mockCandidateSvc{}
	svc.On("ResumeURL", mock.Anything, "c1").Return("https://presigned.example.com/resume", nil)
	h := NewCandidateHandler(svc)

	r := withChiID(httptest.NewRequest(http.MethodGet, "/v1/candidates/c1/resume", nil), "c1")
	rr := httptest.NewRecorder()
	h.ResumeURL(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "https://presigned.example.com/resume", resp["url"])
}
