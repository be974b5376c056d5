package handler

import (
	"encoding/json"
	"net/http"

	"github.com/talent-api/internal/application/auth"
	"github.com/talent-api/internal/domain"
	"github.com/talent-api/internal/pkg/validate"
)

// AuthHandler exposes sign-up, sign-in, and email verification.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req domain.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.svc.SignUp(r.Context(), req)
	if err != nil && u == nil {
		writeDomainError(w, err)
		return
	}
	msg := "account created, verification code sent"
	if err != nil {
		// The account exists but the code mail did not go out. Surface
		// that without discarding the created account.
		msg = "account created, verification code could not be delivered"
	}
	writeJSON(w, http.StatusCreated, SignUpEnvelope{Message: msg, User: u})
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req domain.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.SignIn(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newAuthEnvelope(res))
}

type otpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"`
}

func (h *AuthHandler) GenerateOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.IssueCode(r.Context(), req.Email); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "verification code sent"})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Code == "" {
		writeError(w, http.StatusBadRequest, "email and code are required")
		return
	}

	ok, err := h.svc.VerifyEmail(r.Context(), req.Email, req.Code)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid or expired code")
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "email verified"})
}
