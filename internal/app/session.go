package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"wanderlust/internal/domain"
)

// SessionStore holds the signed-in user of a single front-end session and
// mirrors it into a durable slot so the session survives restarts.
//
// At most one login is pending at a time: a second Login overwrites the pending
// marker, and the superseded call resolves with ErrLoginSuperseded without
// touching the session.
type SessionStore struct {
	users map[string]domain.User
	slot  domain.SessionSlot
	hash  []byte
	delay time.Duration

	// io serialises slot writes; mu guards the fields below and is never
	// held across slot I/O.
	io      sync.Mutex
	mu      sync.Mutex
	user    *domain.User
	pending uint64
	loading bool
}

// NewSessionStore accepts password for every account in users.
func NewSessionStore(users []domain.User, slot domain.SessionSlot, password string, delay time.Duration) (*SessionStore, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	byEmail := make(map[string]domain.User, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}
	return &SessionStore{users: byEmail, slot: slot, hash: hash, delay: delay}, nil
}

// Restore loads a previously persisted user; an empty slot means logged out.
func (s *SessionStore) Restore(ctx context.Context) error {
	var u domain.User
	ok, err := s.slot.Load(ctx, &u)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		return nil
	}
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	log.Info().Str("user", u.ID).Msg("session restored")
	return nil
}

func (s *SessionStore) Login(ctx context.Context, email, password string) (domain.User, error) {
	s.mu.Lock()
	s.pending++
	ticket := s.pending
	s.loading = true
	s.mu.Unlock()

	if err := waitCtx(ctx, s.delay); err != nil {
		s.settle(ticket)
		return domain.User{}, err
	}

	u, known := s.users[email]
	if !known || bcrypt.CompareHashAndPassword(s.hash, []byte(password)) != nil {
		s.settle(ticket)
		log.Warn().Str("email", email).Msg("login rejected")
		return domain.User{}, domain.ErrInvalidCredentials
	}

	s.io.Lock()
	defer s.io.Unlock()
	s.mu.Lock()
	if ticket != s.pending {
		s.mu.Unlock()
		return domain.User{}, domain.ErrLoginSuperseded
	}
	prev := s.user
	s.mu.Unlock()

	if err := s.slot.Save(ctx, u); err != nil {
		s.settle(ticket)
		return domain.User{}, fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	if ticket != s.pending {
		s.mu.Unlock()
		s.restoreSlot(ctx, prev)
		return domain.User{}, domain.ErrLoginSuperseded
	}
	s.loading = false
	s.user = &u
	s.mu.Unlock()
	log.Info().Str("user", u.ID).Str("role", string(u.Role)).Msg("login successful")
	return u, nil
}

func (s *SessionStore) Logout(ctx context.Context) error {
	s.io.Lock()
	defer s.io.Unlock()
	if err := s.slot.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	log.Info().Msg("logged out")
	return nil
}

// restoreSlot puts back the committed session after a superseded write.
func (s *SessionStore) restoreSlot(ctx context.Context, prev *domain.User) {
	var err error
	if prev == nil {
		err = s.slot.Clear(ctx)
	} else {
		err = s.slot.Save(ctx, *prev)
	}
	if err != nil {
		log.Warn().Err(err).Msg("restore session slot failed")
	}
}

// Current returns a copy of the signed-in user.
func (s *SessionStore) Current() (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

// IsAdmin is derived from the current user on every call.
func (s *SessionStore) IsAdmin() bool {
	u, ok := s.Current()
	return ok && u.IsAdmin()
}

func (s *SessionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *SessionStore) settle(ticket uint64) {
	s.mu.Lock()
	if ticket == s.pending {
		s.loading = false
	}
	s.mu.Unlock()
}

// MemorySlot keeps the session in process memory; used when no Redis is configured.
type MemorySlot struct {
	mu  sync.Mutex
	val *domain.User
}

func NewMemorySlot() *MemorySlot { return &MemorySlot{} }

func (m *MemorySlot) Load(_ context.Context, dst any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.val == nil {
		return false, nil
	}
	u, ok := dst.(*domain.User)
	if !ok {
		return false, fmt.Errorf("memory slot: unsupported destination %T", dst)
	}
	*u = *m.val
	return true, nil
}

func (m *MemorySlot) Save(_ context.Context, v any) error {
	u, ok := v.(domain.User)
	if !ok {
		return fmt.Errorf("memory slot: unsupported value %T", v)
	}
	m.mu.Lock()
	m.val = &u
	m.mu.Unlock()
	return nil
}

func (m *MemorySlot) Clear(context.Context) error {
	m.mu.Lock()
	m.val = nil
	m.mu.Unlock()
	return nil
}

// waitCtx waits for d or returns ctx's error if it ends first.
func waitCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
