package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/wizard"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const wizardKeyPrefix = "wizard:"

func wizardKey(id uuid.UUID) string {
	return wizardKeyPrefix + id.String()
}

// RedisWizardStore keeps booking form sessions as JSON with a sliding TTL.
type RedisWizardStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisWizardStore(client *redis.Client, ttl time.Duration) *RedisWizardStore {
	return &RedisWizardStore{client: client, ttl: ttl}
}

func (s *RedisWizardStore) Load(ctx context.Context, id uuid.UUID) (*wizard.State, error) {
	raw, err := s.client.Get(ctx, wizardKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, commands.ErrWizardSessionNotFound
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booking session")
	}

	var st wizard.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, errs.Wrap(err, "failed to decode booking session")
	}
	return &st, nil
}

func (s *RedisWizardStore) Save(ctx context.Context, st *wizard.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking session")
	}
	if err := s.client.Set(ctx, wizardKey(st.ID), raw, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to save booking session")
	}
	return nil
}

func (s *RedisWizardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, wizardKey(id)).Err(); err != nil {
		return errs.Wrap(err, "failed to delete booking session")
	}
	return nil
}

// MemoryWizardStore is the single-instance store used when redis is disabled and in tests.
type MemoryWizardStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]memoryEntry
	ttl      time.Duration
	clock    clock.Clock
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryWizardStore(ttl time.Duration, clk clock.Clock) *MemoryWizardStore {
	return &MemoryWizardStore{
		sessions: make(map[uuid.UUID]memoryEntry),
		ttl:      ttl,
		clock:    clk,
	}
}

func (s *MemoryWizardStore) Load(_ context.Context, id uuid.UUID) (*wizard.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, commands.ErrWizardSessionNotFound
	}
	if !s.clock.Now().Before(e.expiresAt) {
		delete(s.sessions, id)
		return nil, commands.ErrWizardSessionNotFound
	}

	// stored as JSON so callers never share state with the store
	var st wizard.State
	if err := json.Unmarshal(e.data, &st); err != nil {
		return nil, errs.Wrap(err, "failed to decode booking session")
	}
	return &st, nil
}

func (s *MemoryWizardStore) Save(_ context.Context, st *wizard.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[st.ID] = memoryEntry{data: raw, expiresAt: s.clock.Now().Add(s.ttl)}
	s.evictExpired()
	return nil
}

func (s *MemoryWizardStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemoryWizardStore) evictExpired() {
	now := s.clock.Now()
	for id, e := range s.sessions {
		if !now.Before(e.expiresAt) {
			delete(s.sessions, id)
		}
	}
}
