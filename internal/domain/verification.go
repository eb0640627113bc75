package domain

import "time"

// PendingVerification is a staged, not-yet-committed registration keyed by
// normalized email. It holds the 6-digit code and the fully-formed user
// fields; the User itself is only created once the code is confirmed.
// A newer signup for the same email replaces the entry wholesale.
type PendingVerification struct {
	Email        string // as submitted, original casing
	Code         string // zero-padded, "000000".."999999"
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
