package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendVerificationCode(ctx context.Context, to, code, userName string) error {
	return m.Called(ctx, to, code, userName).Error(0)
}

func (m *mockMailer) SendWelcome(ctx context.Context, to, userName string) error {
	return m.Called(ctx, to, userName).Error(0)
}

func TestSendVerification_Success(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendVerificationCode", mock.Anything, "jane@x.com", "042137", "Jane").Return(nil)
	h := NewEmailHandler(ml, time.Second)

	rr := postJSON(t, h.SendVerification, "/api/send-verification", map[string]string{
		"email": "jane@x.com", "code": "042137", "userName": "Jane",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["timestamp"])
	ml.AssertExpectations(t)
}

func TestSendVerification_MissingFields(t *testing.T) {
	h := NewEmailHandler(&mockMailer{}, time.Second)

	rr := postJSON(t, h.SendVerification, "/api/send-verification", map[string]string{
		"email": "jane@x.com",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Missing required fields", body["error"])
	assert.Equal(t, "Email, code, and userName are required", body["details"])
}

func TestSendVerification_BadCodeFormat(t *testing.T) {
	h := NewEmailHandler(&mockMailer{}, time.Second)

	for _, code := range []string{"12345", "1234567", "abc123", "12 456"} {
		rr := postJSON(t, h.SendVerification, "/api/send-verification", map[string]string{
			"email": "jane@x.com", "code": code, "userName": "Jane",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code, "code %q must be rejected", code)
	}
}

func TestSendVerification_NotConfigured(t *testing.T) {
	h := NewEmailHandler(nil, time.Second)

	rr := postJSON(t, h.SendVerification, "/api/send-verification", map[string]string{
		"email": "jane@x.com", "code": "042137", "userName": "Jane",
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Email service not configured", body["error"])
	assert.Equal(t, "RESEND_API_KEY environment variable is missing", body["details"])
}

func TestSendVerification_ProviderError(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendVerificationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("provider down"))
	h := NewEmailHandler(ml, time.Second)

	rr := postJSON(t, h.SendVerification, "/api/send-verification", map[string]string{
		"email": "jane@x.com", "code": "042137", "userName": "Jane",
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Failed to send verification email", decodeBody(t, rr)["error"])
}

func TestSendWelcome_Success(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendWelcome", mock.Anything, "jane@x.com", "Jane").Return(nil)
	h := NewEmailHandler(ml, time.Second)

	rr := postJSON(t, h.SendWelcome, "/api/send-welcome", map[string]string{
		"email": "jane@x.com", "userName": "Jane",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Welcome email sent successfully", decodeBody(t, rr)["message"])
}

func TestSendWelcome_InvalidEmail(t *testing.T) {
	h := NewEmailHandler(&mockMailer{}, time.Second)

	rr := postJSON(t, h.SendWelcome, "/api/send-welcome", map[string]string{
		"email": "nope", "userName": "Jane",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid email format", decodeBody(t, rr)["error"])
}
