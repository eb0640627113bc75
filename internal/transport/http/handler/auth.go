package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/fixithub/universe/internal/application/auth"
	"github.com/fixithub/universe/internal/domain"
	jwtinfra "github.com/fixithub/universe/internal/infrastructure/jwt"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthHandler handles the signup / verify / login endpoints.
type AuthHandler struct {
	svc auth.Service
	jwt *jwtinfra.Provider
}

func NewAuthHandler(svc auth.Service, jwt *jwtinfra.Provider) *AuthHandler {
	return &AuthHandler{svc: svc, jwt: jwt}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email != "" && !emailRegex.MatchString(req.Email) {
		writeError(w, http.StatusBadRequest, "please enter a valid email address")
		return
	}
	if err := h.svc.Signup(r.Context(), req); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{
		Success: true,
		Message: "Account created successfully. Please check your email for verification code.",
	})
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Code == "" {
		writeError(w, http.StatusBadRequest, "email and verification code are required")
		return
	}
	u, err := h.svc.Verify(r.Context(), req.Email, req.Code)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, VerifyEnvelope{
		Success: true,
		Message: "Email verified successfully",
		User:    u,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := LoginEnvelope{
		Success: true,
		Message: "Login successful",
		Session: h.svc.CreateSession(u),
	}
	if h.jwt != nil {
		token, err := h.jwt.Sign(u.UserID, u.Email, u.Name, u.Role)
		if err != nil {
			slog.Error("could not sign token", "err", err)
		} else {
			resp.Token = token
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
