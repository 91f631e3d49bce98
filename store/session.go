package store

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

const currentUserKey = "virtualgp:current_user"

// RedisSessions keeps the current-user pointer in Redis under a single scalar
// key, mirroring the persisted layout of one blob plus one scalar. With a nil
// client it degrades to a process-local value, so the service stays usable
// when Redis is down.
type RedisSessions struct {
	client *redis.Client

	mu       sync.RWMutex
	fallback string
}

func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{client: client}
}

func (s *RedisSessions) SetCurrent(email string) error {
	if s.client == nil {
		s.mu.Lock()
		s.fallback = email
		s.mu.Unlock()
		return nil
	}
	return s.client.Set(context.Background(), currentUserKey, email, 0).Err()
}

func (s *RedisSessions) Current() (string, error) {
	if s.client == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.fallback, nil
	}
	email, err := s.client.Get(context.Background(), currentUserKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return email, nil
}

func (s *RedisSessions) Clear() error {
	if s.client == nil {
		s.mu.Lock()
		s.fallback = ""
		s.mu.Unlock()
		return nil
	}
	return s.client.Del(context.Background(), currentUserKey).Err()
}
