package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/fixithub/universe/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// credentialStore is the slice of the credential store the auth service
// needs. The store serializes all operations on the same email; in
// particular ConsumePending validates, inserts and deletes in one critical
// section so concurrent verifies cannot both create a user.
type credentialStore interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	InsertUser(ctx context.Context, u *domain.User) error
	FindPending(ctx context.Context, email string) (*domain.PendingVerification, error)
	SetPending(ctx context.Context, p *domain.PendingVerification)
	ConsumePending(ctx context.Context, email, code string) (*domain.User, error)
}

type mailer interface {
	SendVerificationCode(ctx context.Context, to, code, userName string) error
	SendWelcome(ctx context.Context, to, userName string) error
}

type Service interface {
	Signup(ctx context.Context, req domain.SignupRequest) error
	Verify(ctx context.Context, email, code string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	CreateSession(u *domain.User) domain.Session
}

type service struct {
	store        credentialStore
	mailer       mailer
	emailTimeout time.Duration
}

type ServiceDeps struct {
	Store        credentialStore
	Mailer       mailer
	EmailTimeout time.Duration
}

func NewService(deps ServiceDeps) Service {
	timeout := deps.EmailTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &service{
		store:        deps.Store,
		mailer:       deps.Mailer,
		emailTimeout: timeout,
	}
}

// Signup stages a registration and emails the verification code. No user
// record exists until the code is confirmed. Re-signup for the same
// email replaces the staged entry (and its code) wholesale. The email send
// is awaited: a delivery failure is reported to the caller so the client can
// retry sending instead of re-registering, and the staged entry stays put.
func (s *service) Signup(ctx context.Context, req domain.SignupRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return fmt.Errorf("all fields are required: %w", domain.ErrValidation)
	}
	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("passwords do not match: %w", domain.ErrValidation)
	}
	if len(req.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long: %w", domain.ErrValidation)
	}

	if _, err := s.store.FindUserByEmail(ctx, req.Email); err == nil {
		return domain.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	code, err := newVerificationCode()
	if err != nil {
		return fmt.Errorf("generate verification code: %w", err)
	}

	s.store.SetPending(ctx, &domain.PendingVerification{
		Email:        req.Email,
		Code:         code,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	})

	if s.mailer == nil {
		return fmt.Errorf("email service not configured: %w", domain.ErrDeliveryFailure)
	}
	sendCtx, cancel := context.WithTimeout(ctx, s.emailTimeout)
	defer cancel()
	if err := s.mailer.SendVerificationCode(sendCtx, req.Email, code, req.Name); err != nil {
		slog.Error("verification email failed", "email", req.Email, "err", err)
		return fmt.Errorf("failed to send verification email: %w", domain.ErrDeliveryFailure)
	}
	return nil
}

// Verify consumes the pending registration. On success the new verified user
// is returned and a welcome email goes out best-effort: its failure is
// logged, never surfaced, because the account is already active.
func (s *service) Verify(ctx context.Context, email, code string) (*domain.User, error) {
	u, err := s.store.ConsumePending(ctx, email, code)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil {
		sendCtx, cancel := context.WithTimeout(ctx, s.emailTimeout)
		defer cancel()
		if err := s.mailer.SendWelcome(sendCtx, u.Email, u.Name); err != nil {
			slog.Warn("welcome email failed", "email", u.Email, "err", err)
		}
	}
	return u, nil
}

// Login authenticates a verified user. Unknown email and wrong password
// return the identical ErrInvalidCredentials so callers cannot probe which
// addresses are registered. An unverified signup names its status instead:
// the caller already disclosed the email by logging in with it.
func (s *service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if _, pErr := s.store.FindPending(ctx, email); pErr == nil {
			return nil, domain.ErrUnverifiedAccount
		}
		return nil, domain.ErrInvalidCredentials
	}
	if !u.Verified {
		return nil, domain.ErrUnverifiedAccount
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

// CreateSession projects a user into the session payload the client
// persists. Pure: no side effects, no error cases.
func (s *service) CreateSession(u *domain.User) domain.Session {
	return domain.Session{
		User: domain.SessionUser{
			ID:    u.UserID,
			Email: u.Email,
			Name:  u.Name,
			Role:  u.Role,
		},
		IsAuthenticated: true,
	}
}

// newVerificationCode draws a uniform 6-digit code, zero-padded, the full
// "000000".."999999" range.
func newVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
