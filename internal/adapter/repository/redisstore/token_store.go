package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps the bearer token under a current and a legacy key, always
// written together.
type TokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTokenStore(client *redis.Client, ttl time.Duration) *TokenStore {
	return &TokenStore{client: client, ttl: ttl}
}

func tokenKey(sessionID string) string {
	return fmt.Sprintf("session:%s:auth_token", sessionID)
}

func legacyTokenKey(sessionID string) string {
	return fmt.Sprintf("session:%s:token", sessionID)
}

func (s *TokenStore) Get(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Get(ctx, tokenKey(sessionID)).Result()
	if err == nil {
		if err := s.touch(ctx, sessionID, token); err != nil {
			return "", err
		}

		return token, nil
	}

	if !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("get token: %w", err)
	}

	token, err = s.client.Get(ctx, legacyTokenKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("get legacy token: %w", err)
	}

	if err := s.Set(ctx, sessionID, token); err != nil {
		return "", err
	}

	return token, nil
}

func (s *TokenStore) Set(ctx context.Context, sessionID string, token string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, tokenKey(sessionID), token, s.ttl)
		pipe.Set(ctx, legacyTokenKey(sessionID), token, s.ttl)
		return nil
	})

	if err != nil {
		return fmt.Errorf("set token: %w", err)
	}

	return nil
}

func (s *TokenStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, tokenKey(sessionID), legacyTokenKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}

	return nil
}

// touch slides the expiry of both keys on every read and rewrites them when
// the legacy key has gone missing.
func (s *TokenStore) touch(ctx context.Context, sessionID, token string) error {
	var legacy *redis.BoolCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Expire(ctx, tokenKey(sessionID), s.ttl)
		legacy = pipe.Expire(ctx, legacyTokenKey(sessionID), s.ttl)
		return nil
	})

	if err != nil {
		return fmt.Errorf("refresh token ttl: %w", err)
	}

	if !legacy.Val() {
		return s.Set(ctx, sessionID, token)
	}

	return nil
}
