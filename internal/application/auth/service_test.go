package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/fixithub/universe/internal/domain"
	"github.com/fixithub/universe/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendVerificationCode(ctx context.Context, to, code, userName string) error {
	return m.Called(ctx, to, code, userName).Error(0)
}

func (m *mockMailer) SendWelcome(ctx context.Context, to, userName string) error {
	return m.Called(ctx, to, userName).Error(0)
}

// --- builders ---

func okMailer() *mockMailer {
	ml := &mockMailer{}
	ml.On("SendVerificationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ml.On("SendWelcome", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return ml
}

func newFixture(ml *mockMailer) (Service, *memory.Store) {
	store := memory.NewStore()
	return NewService(ServiceDeps{Store: store, Mailer: ml}), store
}

func signupReq(name, email, password, confirm string) domain.SignupRequest {
	return domain.SignupRequest{Name: name, Email: email, Password: password, ConfirmPassword: confirm}
}

// --- Signup ---

func TestSignup_Validation(t *testing.T) {
	svc, _ := newFixture(okMailer())
	ctx := context.Background()

	tests := []struct {
		name string
		req  domain.SignupRequest
	}{
		{"empty name", signupReq("", "jane@x.com", "secret1", "secret1")},
		{"empty email", signupReq("Jane", "", "secret1", "secret1")},
		{"empty password", signupReq("Jane", "jane@x.com", "", "")},
		{"empty confirmation", signupReq("Jane", "jane@x.com", "secret1", "")},
		{"mismatched passwords", signupReq("Jane", "jane@x.com", "secret1", "secret2")},
		{"short password", signupReq("Jane", "jane@x.com", "abc", "abc")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Signup(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
		})
	}
}

func TestSignup_StagesPendingWithoutUser(t *testing.T) {
	ml := okMailer()
	svc, store := newFixture(ml)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("Jane", "jane@x.com", "secret1", "secret1")))

	p, err := store.FindPending(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.Len(t, p.Code, 6)
	assert.Equal(t, domain.RoleUser, p.Role)
	assert.NotEqual(t, "secret1", p.PasswordHash, "password must be stored hashed")
	assert.Equal(t, 0, store.CountUsers(ctx), "no user record until verification")

	ml.AssertCalled(t, "SendVerificationCode", mock.Anything, "jane@x.com", p.Code, "Jane")
}

func TestSignup_DuplicateVerifiedEmail_CaseInsensitive(t *testing.T) {
	ml := okMailer()
	svc, store := newFixture(ml)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("Jane", "JANE@X.com", "secret1", "secret1")))
	p, err := store.FindPending(ctx, "jane@x.com")
	require.NoError(t, err)
	_, err = svc.Verify(ctx, "jane@x.com", p.Code)
	require.NoError(t, err)

	err = svc.Signup(ctx, signupReq("Jane Again", "jane@x.com", "secret1", "secret1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateUser), "verified is terminal, re-signup must not re-enter pending")
}

func TestSignup_ReplacesPendingCode(t *testing.T) {
	svc, store := newFixture(okMailer())
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("Jane", "jane@x.com", "secret1", "secret1")))
	first, err := store.FindPending(ctx, "jane@x.com")
	require.NoError(t, err)

	require.NoError(t, svc.Signup(ctx, signupReq("Jane", "jane@x.com", "secret2", "secret2")))
	second, err := store.FindPending(ctx, "jane@x.com")
	require.NoError(t, err)

	if first.Code != second.Code {
		_, err = svc.Verify(ctx, "jane@x.com", first.Code)
		assert.True(t, errors.Is(err, domain.ErrInvalidCode), "old code must not verify after re-signup")
	}
	u, err := svc.Verify(ctx, "jane@x.com", second.Code)
	require.NoError(t, err)

	// The replacement carried the newer password.
	_, err = svc.Login(ctx, "jane@x.com", "secret2")
	require.NoError(t, err)
	assert.Equal(t, u.UserID, mustLogin(t, svc, "jane@x.com", "secret2").UserID)
}

func TestSignup_DeliveryFailure_KeepsPending(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendVerificationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("provider down"))
	svc, store := newFixture(ml)
	ctx := context.Background()

	err := svc.Signup(ctx, signupReq("Jane", "jane@x.com", "secret1", "secret1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDeliveryFailure))

	// The staged entry survives so the client can retry delivery
	// without re-registering.
	_, err = store.FindPending(ctx, "jane@x.com")
	assert.NoError(t, err)
}

func TestSignup_NoMailerConfigured(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(ServiceDeps{Store: store})

	err := svc.Signup(context.Background(), signupReq("Jane", "jane@x.com", "secret1", "secret1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDeliveryFailure))
}

// --- Verify ---

func TestVerify_NoSignup(t *testing.T) {
	svc, _ := newFixture(okMailer())
	_, err := svc.Verify(context.Background(), "jane@x.com", "000000")
	assert.True(t, errors.Is(err, domain.ErrNoPendingVerification))
}

func TestVerify_WrongCode(t *testing.T) {
	svc, store := newFixture(okMailer())
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("Jane", "jane@x.com", "secret1", "secret1")))
	p, err := store.FindPending(ctx, "jane@x.com")
	require.NoError(t, err)

	wrong := "000000"
	if p.Code == wrong {
		wrong = "000001"
	}
	_, err = svc.Verify(ctx, "jane@x.com", wrong)
	assert.True(t, errors.Is(err, domain.ErrInvalidCode))
}

func TestVerify_HappyPath_ExactlyOnce(t *testing.T) {
	ml := okMailer()
	svc, store := newFixture(ml)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("Jane", "jane@x.com", "secret1", "secret1")))
	p, err := store.FindPending(ctx, "jane@x.com")
	require.NoError(t, err)

	u, err := svc.Verify(ctx, "jane@x.com", p.Code)
	require.NoError(t, err)
	assert.True(t, u.Verified)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.Equal(t, "jane@x.com", u.Email)
	ml.AssertCalled(t, "SendWelcome", mock.Anything, "jane@x.com", "Jane")

	// The code was consumed with the pending entry.
	_, err = svc.Verify(ctx, "jane@x.com", p.Code)
	assert.True(t, errors.Is(err, domain.ErrNoPendingVerification))
}

func TestVerify_WelcomeEmailFailure_DoesNotFailVerify(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendVerificationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ml.On("SendWelcome", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("provider down"))
	svc, store := newFixture(ml)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("Jane", "jane@x.com", "secret1", "secret1")))
	p, err := store.FindPending(ctx, "jane@x.com")
	require.NoError(t, err)

	u, err := svc.Verify(ctx, "jane@x.com", p.Code)
	require.NoError(t, err)
	assert.True(t, u.Verified)
}

// --- Login ---

func TestLogin_FullScenario(t *testing.T) {
	svc, store := newFixture(okMailer())
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("Jane", "jane@x.com", "secret1", "secret1")))
	p, err := store.FindPending(ctx, "jane@x.com")
	require.NoError(t, err)
	u, err := svc.Verify(ctx, "jane@x.com", p.Code)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, u.Role)

	logged, err := svc.Login(ctx, "jane@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.UserID, logged.UserID)

	_, err = svc.Login(ctx, "jane@x.com", "wrong")
	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
}

func TestLogin_CaseInsensitiveEmail(t *testing.T) {
	svc, store := newFixture(okMailer())
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("Jane", "JANE@X.com", "secret1", "secret1")))
	p, err := store.FindPending(ctx, "jane@x.com")
	require.NoError(t, err)
	_, err = svc.Verify(ctx, "jane@x.com", p.Code)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "jane@x.com", "secret1")
	assert.NoError(t, err)
}

func TestLogin_BeforeVerification_AlwaysUnverified(t *testing.T) {
	svc, _ := newFixture(okMailer())
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("Jane", "jane@x.com", "secret1", "secret1")))

	// Password correctness is irrelevant before verification.
	_, err := svc.Login(ctx, "jane@x.com", "secret1")
	assert.True(t, errors.Is(err, domain.ErrUnverifiedAccount))

	_, err = svc.Login(ctx, "jane@x.com", "wrong")
	assert.True(t, errors.Is(err, domain.ErrUnverifiedAccount))
}

func TestLogin_UnverifiedStoredAccount(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(ServiceDeps{Store: store, Mailer: okMailer()})
	ctx := context.Background()

	require.NoError(t, store.InsertUser(ctx, &domain.User{
		UserID: "u1", Email: "jane@x.com", Verified: false,
	}))

	_, err := svc.Login(ctx, "jane@x.com", "whatever")
	assert.True(t, errors.Is(err, domain.ErrUnverifiedAccount))
}

func TestLogin_UnknownAndWrongPassword_Indistinguishable(t *testing.T) {
	svc, store := newFixture(okMailer())
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("Jane", "jane@x.com", "secret1", "secret1")))
	p, err := store.FindPending(ctx, "jane@x.com")
	require.NoError(t, err)
	_, err = svc.Verify(ctx, "jane@x.com", p.Code)
	require.NoError(t, err)

	_, errUnknown := svc.Login(ctx, "ghost@x.com", "secret1")
	_, errWrongPw := svc.Login(ctx, "jane@x.com", "not-the-password")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error(),
		"login failures must not reveal whether the email is registered")
}

// --- CreateSession ---

func TestCreateSession_PureProjection(t *testing.T) {
	svc, _ := newFixture(okMailer())

	for _, role := range []string{domain.RoleUser, domain.RoleAdmin} {
		u := &domain.User{UserID: "u1", Email: "jane@x.com", Name: "Jane", Role: role, Verified: true}
		sess := svc.CreateSession(u)
		assert.True(t, sess.IsAuthenticated)
		assert.Equal(t, "u1", sess.User.ID)
		assert.Equal(t, "jane@x.com", sess.User.Email)
		assert.Equal(t, "Jane", sess.User.Name)
		assert.Equal(t, role, sess.User.Role)
	}
}

// --- code generation ---

func TestNewVerificationCode_Format(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := newVerificationCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9', "code %q must be numeric", code)
		}
	}
}

func mustLogin(t *testing.T, svc Service, email, password string) *domain.User {
	t.Helper()
	u, err := svc.Login(context.Background(), email, password)
	require.NoError(t, err)
	return u
}
