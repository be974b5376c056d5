package handler

import (
	"encoding/json"
	"net/http"

	"github.com/talent-api/internal/application/auth"
	"github.com/talent-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AuthEnvelope wraps sign-in responses.
type AuthEnvelope struct {
	AccessToken string       `json:"access_token,omitempty"`
	Claims      interface{}  `json:"decoded_data,omitempty"`
	User        *domain.User `json:"user,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// SignUpEnvelope wraps sign-up responses.
type SignUpEnvelope struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// PaginatedUsersEnvelope wraps paginated user list responses.
type PaginatedUsersEnvelope struct {
	Data       []domain.User `json:"data"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

func newAuthEnvelope(res *auth.SignInResult) AuthEnvelope {
	env := AuthEnvelope{AccessToken: res.AccessToken, User: res.User}
	if res.Claims != nil {
		env.Claims = res.Claims
	}
	return env
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}
