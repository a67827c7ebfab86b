package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Role роль пользователя в системе
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleEnterprise Role = "ENTERPRISE"
	RoleManager    Role = "MANAGER"
)

// Session данные авторизованной сессии
// Для этого ядра хранилище - непрозрачный key-value: токен выдается
// внешней системой аутентификации, здесь только резолвится
type Session struct {
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

const sessionKeyPrefix = "gateSession:"

// Store хранилище сессий поверх Redis
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает хранилище сессий
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Get резолвит токен в сессию
func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: Get - redis error: %v", ErrInternal, err)
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal session: %v", ErrInternal, err)
	}

	return &session, nil
}

// Set сохраняет сессию с TTL хранилища
func (s *Store) Set(ctx context.Context, token string, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal session: %v", ErrInternal, err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+token, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis error: %v", ErrInternal, err)
	}

	return nil
}

// Remove удаляет сессию (logout)
func (s *Store) Remove(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%w: Remove - redis error: %v", ErrInternal, err)
	}
	return nil
}
