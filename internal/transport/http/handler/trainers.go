package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/talent-api/internal/application/trainer"
	"github.com/talent-api/internal/domain"
	"github.com/talent-api/internal/pkg/validate"
)

type TrainerHandler struct {
	svc trainer.Service
}

func NewTrainerHandler(svc trainer.Service) *TrainerHandler {
	return &TrainerHandler{svc: svc}
}

func (h *TrainerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTrainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tr, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tr)
}

func (h *TrainerHandler) Get(w http.ResponseWriter, r *http.Request) {
	tr, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tr)
}

func (h *TrainerHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
