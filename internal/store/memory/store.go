package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fixithub/universe/internal/domain"
	"github.com/fixithub/universe/internal/pkg/id"
)

// Store is the process-memory credential store. It owns every User and
// PendingVerification for the lifetime of the process: one verified user per
// normalized email, at most one pending verification per normalized email.
//
// A single mutex guards both maps so that signup, verification and login
// racing on the same email always observe fully written records. It is built
// as an injected instance (never a package-level singleton) so tests stay
// isolated and a database-backed implementation can replace it behind the
// same interface later.
type Store struct {
	mu      sync.Mutex
	users   map[string]*domain.User
	pending map[string]*domain.PendingVerification
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]*domain.User),
		pending: make(map[string]*domain.PendingVerification),
	}
}

// NormalizeEmail lowercases and trims an address. All map keys use this form;
// email matching is case-insensitive everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[NormalizeEmail(email)]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (s *Store) InsertUser(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(u)
}

func (s *Store) insertLocked(u *domain.User) error {
	key := NormalizeEmail(u.Email)
	if _, ok := s.users[key]; ok {
		return domain.ErrDuplicateUser
	}
	cp := *u
	s.users[key] = &cp
	return nil
}

func (s *Store) FindPending(ctx context.Context, email string) (*domain.PendingVerification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrNoPendingVerification
	}
	cp := *p
	return &cp, nil
}

// SetPending stages a registration, replacing any existing entry for the
// same normalized email (last write wins, no merge).
func (s *Store) SetPending(ctx context.Context, p *domain.PendingVerification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.pending[NormalizeEmail(p.Email)] = &cp
}

func (s *Store) DeletePending(ctx context.Context, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, NormalizeEmail(email))
}

// ConsumePending validates the code against the staged registration and, on
// a match, materializes the verified user, inserts it and deletes the pending
// entry, all inside one critical section, so two concurrent calls with the
// same correct code cannot both create a user.
func (s *Store) ConsumePending(ctx context.Context, email, code string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := NormalizeEmail(email)
	p, ok := s.pending[key]
	if !ok {
		return nil, domain.ErrNoPendingVerification
	}
	if p.Code != code {
		return nil, domain.ErrInvalidCode
	}

	u := &domain.User{
		UserID:       id.New(),
		Name:         p.Name,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Verified:     true,
		Role:         p.Role,
		CreatedAt:    p.CreatedAt,
	}
	if err := s.insertLocked(u); err != nil {
		// A user slipped in between signup and verification (seeded admin or
		// a racing flow). The pending entry is stale; drop it.
		delete(s.pending, key)
		return nil, err
	}
	delete(s.pending, key)

	cp := *u
	return &cp, nil
}

// CountUsers returns the number of verified users held by the store.
func (s *Store) CountUsers(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// SeedAdmin inserts a verified admin account if the email is not taken.
// Used at startup when an admin credential is configured.
func (s *Store) SeedAdmin(ctx context.Context, name, email, passwordHash string) error {
	return s.InsertUser(ctx, &domain.User{
		UserID:       id.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Verified:     true,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
}
