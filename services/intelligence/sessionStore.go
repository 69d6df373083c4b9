package intelligence

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"fotoagenda/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "agent:session:"

// SessionStore keeps conversation state between turns. Get never returns a
// nil session: unknown or expired keys yield a fresh one.
type SessionStore interface {
	Get(ctx context.Context, key string) (*models.ConversationSession, error)
	Put(ctx context.Context, key string, session *models.ConversationSession) error
	Delete(ctx context.Context, key string) error
	// EvictExpired drops idle sessions and reports how many were removed.
	EvictExpired(ctx context.Context) (int, error)
}

// RedisSessionStore persists sessions as JSON with a sliding TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, key string) (*models.ConversationSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+key).Result()
	if err == redis.Nil {
		return &models.ConversationSession{}, nil
	}
	if err != nil {
		return nil, err
	}
	var session models.ConversationSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, key string, session *models.ConversationSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, sessionKeyPrefix+key).Err()
}

// EvictExpired is a no-op: Redis expires keys on its own.
func (s *RedisSessionStore) EvictExpired(ctx context.Context) (int, error) {
	return 0, nil
}

type memoryEntry struct {
	session   *models.ConversationSession
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in process memory.
type MemorySessionStore struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		items: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *MemorySessionStore) Get(ctx context.Context, key string) (*models.ConversationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.items[key]
	if !ok || s.expired(entry) {
		delete(s.items, key)
		return &models.ConversationSession{}, nil
	}
	return entry.session.Clone(), nil
}

func (s *MemorySessionStore) Put(ctx context.Context, key string, session *models.ConversationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = memoryEntry{session: session.Clone(), expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

func (s *MemorySessionStore) EvictExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, entry := range s.items {
		if s.expired(entry) {
			delete(s.items, key)
			evicted++
		}
	}
	return evicted, nil
}

// Len reports the number of stored sessions, expired ones included.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *MemorySessionStore) expired(e memoryEntry) bool {
	return s.ttl > 0 && !s.now().Before(e.expiresAt)
}
