package services

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	apperrors "hotelcart/errors"
	"hotelcart/services/booking"
)

// SessionStore lưu phiên giỏ hàng có thời hạn.
// Load trả về ErrSessionNotFound nếu phiên không tồn tại hoặc đã hết hạn.
type SessionStore interface {
	Load(ctx context.Context, id string) (*booking.Session, error)
	Save(ctx context.Context, session *booking.Session) error
	Delete(ctx context.Context, id string) error
}

func sessionKey(id string) string {
	return "cart:session:" + id
}

// RedisSessionStore lưu phiên dưới dạng JSON, TTL được làm mới mỗi lần Save
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func (s *RedisSessionStore) Load(ctx context.Context, id string) (*booking.Session, error) {
	var session booking.Session
	found, err := GetFromRedis(ctx, s.rdb, sessionKey(id), &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrSessionNotFound
	}
	if session.Cart.Items == nil {
		session.Cart.Items = []booking.Item{}
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *booking.Session) error {
	return SetToRedis(ctx, s.rdb, sessionKey(session.ID), session, s.ttl)
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return DeleteFromRedis(ctx, s.rdb, sessionKey(id))
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemorySessionStore giữ phiên trong bộ nhớ tiến trình; Sweep dọn phiên hết hạn
type MemorySessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemorySessionStore) Load(_ context.Context, id string) (*booking.Session, error) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	if ok && !s.now().Before(entry.expiresAt) {
		delete(s.entries, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}

	var session booking.Session
	if err := json.Unmarshal(entry.data, &session); err != nil {
		return nil, err
	}
	if session.Cart.Items == nil {
		session.Cart.Items = []booking.Item{}
	}
	return &session, nil
}

func (s *MemorySessionStore) Save(_ context.Context, session *booking.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries[session.ID] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

// Sweep xóa các phiên đã hết hạn và trả về số phiên bị xóa
func (s *MemorySessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Len trả về số phiên đang giữ, kể cả phiên chưa được dọn
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
