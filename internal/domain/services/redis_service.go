package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ritikkamerkar15/residential-security-system/internal/infrastructure/config"
)

// Session slots live for the same 24 hours as the token they mirror
const sessionTTL = 24 * time.Hour

// InterfaceRedisService defines the session store interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	SaveSession(role, principalID string, principal interface{}) error
	LoadSession(role, principalID string, dest interface{}) error
	ClearSession(role, principalID string) error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set stores a JSON-encoded value with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get loads a JSON-encoded value by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete removes a key
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// sessionKey builds the per-role current-user slot name
func sessionKey(role, principalID string) string {
	return "currentUser:" + role + ":" + principalID
}

// SaveSession serializes the authenticated principal into its role slot
func (s *RedisService) SaveSession(role, principalID string, principal interface{}) error {
	return s.Set(sessionKey(role, principalID), principal, sessionTTL)
}

// LoadSession restores a previously saved principal
func (s *RedisService) LoadSession(role, principalID string, dest interface{}) error {
	return s.Get(sessionKey(role, principalID), dest)
}

// ClearSession drops the slot on logout
func (s *RedisService) ClearSession(role, principalID string) error {
	return s.Delete(sessionKey(role, principalID))
}
