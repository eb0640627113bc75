package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	resendinfra "github.com/fixithub/universe/internal/infrastructure/resend"
)

var codeRegex = regexp.MustCompile(`^\d{6}$`)

// EmailHandler exposes the raw email gateway so clients can retry delivery
// after a signup whose verification email failed to send.
type EmailHandler struct {
	mailer  resendinfra.Mailer // nil when RESEND_API_KEY is missing
	timeout time.Duration
}

func NewEmailHandler(mailer resendinfra.Mailer, timeout time.Duration) *EmailHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EmailHandler{mailer: mailer, timeout: timeout}
}

func (h *EmailHandler) SendVerification(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Code     string `json:"code"`
		UserName string `json:"userName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeGatewayError(w, http.StatusBadRequest, "Invalid request body", "Body must be valid JSON")
		return
	}
	if body.Email == "" || body.Code == "" || body.UserName == "" {
		writeGatewayError(w, http.StatusBadRequest, "Missing required fields", "Email, code, and userName are required")
		return
	}
	if !emailRegex.MatchString(body.Email) {
		writeGatewayError(w, http.StatusBadRequest, "Invalid email format", "Please provide a valid email address")
		return
	}
	if !codeRegex.MatchString(body.Code) {
		writeGatewayError(w, http.StatusBadRequest, "Invalid code format", "Code must be 6 digits")
		return
	}
	if h.mailer == nil {
		writeGatewayError(w, http.StatusInternalServerError, "Email service not configured", "RESEND_API_KEY environment variable is missing")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()
	if err := h.mailer.SendVerificationCode(ctx, body.Email, body.Code, body.UserName); err != nil {
		slog.Error("verification email failed", "email", body.Email, "err", err)
		writeGatewayError(w, http.StatusInternalServerError, "Failed to send verification email", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, GatewayEnvelope{
		Success:   true,
		Message:   "Verification email sent successfully",
		Timestamp: nowTimestamp(),
	})
}

func (h *EmailHandler) SendWelcome(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		UserName string `json:"userName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeGatewayError(w, http.StatusBadRequest, "Invalid request body", "Body must be valid JSON")
		return
	}
	if body.Email == "" || body.UserName == "" {
		writeGatewayError(w, http.StatusBadRequest, "Missing required fields", "Email and userName are required")
		return
	}
	if !emailRegex.MatchString(body.Email) {
		writeGatewayError(w, http.StatusBadRequest, "Invalid email format", "Please provide a valid email address")
		return
	}
	if h.mailer == nil {
		writeGatewayError(w, http.StatusInternalServerError, "Email service not configured", "RESEND_API_KEY environment variable is missing")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()
	if err := h.mailer.SendWelcome(ctx, body.Email, body.UserName); err != nil {
		slog.Error("welcome email failed", "email", body.Email, "err", err)
		writeGatewayError(w, http.StatusInternalServerError, "Failed to send welcome email", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, GatewayEnvelope{
		Success:   true,
		Message:   "Welcome email sent successfully",
		Timestamp: nowTimestamp(),
	})
}

func writeGatewayError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, GatewayEnvelope{Error: msg, Details: details})
}
