package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/talent-api/internal/application/candidate"
	"github.com/talent-api/internal/domain"
	"github.com/talent-api/internal/pkg/validate"
)

// maxResumeSize caps uploaded resume documents at 10 MiB.
const maxResumeSize = 10 << 20

type CandidateHandler struct {
	svc candidate.Service
}

func NewCandidateHandler(svc candidate.Service) *CandidateHandler {
	return &CandidateHandler{svc: svc}
}

func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// UploadResume accepts a multipart form with a "resume" file field.
func (h *CandidateHandler) UploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing resume file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	url, err := h.svc.UploadResume(r.Context(), chi.URLParam(r, "id"), header.Filename, file, contentType)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// ResumeURL returns a time-limited download link for the stored resume.
func (h *CandidateHandler) ResumeURL(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.ResumeURL(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// DownloadResume streams the stored document back to the client.
func (h *CandidateHandler) DownloadResume(w http.ResponseWriter, r *http.Request) {
	body, contentType, err := h.svc.DownloadResume(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, body)
}

func (h *CandidateHandler) DeleteResume(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteResume(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "resume deleted"})
}
