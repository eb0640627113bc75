package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without
// leaking infrastructure details. The credential-failure sentinels carry the
// exact user-facing message: login with an unknown email and login with a
// wrong password must be indistinguishable to the caller, so both paths
// return ErrInvalidCredentials unwrapped.
var (
	ErrValidation            = errors.New("validation failed")
	ErrDuplicateUser         = errors.New("user with this email already exists")
	ErrNoPendingVerification = errors.New("no pending verification found for this email")
	ErrInvalidCode           = errors.New("invalid verification code")
	ErrUnverifiedAccount     = errors.New("please verify your email before logging in")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrDeliveryFailure       = errors.New("failed to send email")

	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
)
