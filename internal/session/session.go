package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"chirp/internal/config"
)

// ErrNoSession - сессия не найдена или истекла
var ErrNoSession = errors.New("сессия не найдена или истекла")

// Store - серверное хранилище сессий, ключ - значение cookie
type Store interface {
	Create(ctx context.Context, userID string) (string, error)
	Get(ctx context.Context, sessionID string) (string, error)
	Destroy(ctx context.Context, sessionID string) error
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("не удалось подключиться к Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		ttl:    cfg.Session.TTL,
	}, nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (s *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	sessionID := uuid.New().String()

	err := s.client.Set(ctx, sessionKey(sessionID), userID, s.ttl).Err()
	if err != nil {
		return "", fmt.Errorf("ошибка при создании сессии: %w", err)
	}

	return sessionID, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("ошибка при чтении сессии: %w", err)
	}

	return userID, nil
}

func (s *RedisStore) Destroy(ctx context.Context, sessionID string) error {
	err := s.client.Del(ctx, sessionKey(sessionID)).Err()
	if err != nil {
		return fmt.Errorf("ошибка при удалении сессии: %w", err)
	}

	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
