package session

import (
	"context"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// RevocationList tracks tokens invalidated by logout. Entries expire
// together with the token itself, so the list never outgrows the set
// of still-valid sessions.
type RevocationList struct {
	client *redisv9.Client
}

func NewRevocationList(client *redisv9.Client) *RevocationList {
	return &RevocationList{client: client}
}

func (l *RevocationList) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to track.
		return nil
	}
	if err := l.client.Set(ctx, l.key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis set revoked token failed: %w", err)
	}
	return nil
}

func (l *RevocationList) IsRevoked(ctx context.Context, token string) (bool, error) {
	exists, err := l.client.Exists(ctx, l.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("redis check revoked token failed: %w", err)
	}
	return exists > 0, nil
}

func (l *RevocationList) key(token string) string {
	return fmt.Sprintf("session:revoked:%s", token)
}
