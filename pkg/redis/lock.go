package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "lock:"

// releaseScript deletes the lock only when it is still owned by the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// refreshScript extends the lock only when it is still owned by the caller's token.
var refreshScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// Locker is a single-owner lock backed by SET NX with expiry.
type Locker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLocker creates a locker on the given client. A nil client uses the package client.
func NewLocker(c *redis.Client, ttl time.Duration) *Locker {
	if c == nil {
		c = client
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Locker{client: c, ttl: ttl}
}

// Acquire tries to take the lock for key. ok is false when another owner holds it.
func (l *Locker) Acquire(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, lockKeyPrefix+key, token, l.ttl).Result()
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release drops the lock if token still owns it. Releasing an expired or foreign lock is a no-op.
func (l *Locker) Release(ctx context.Context, key, token string) error {
	return releaseScript.Run(ctx, l.client, []string{lockKeyPrefix + key}, token).Err()
}

// Refresh resets the expiry of a lock token still owns. ok is false once the lock expired or changed hands.
func (l *Locker) Refresh(ctx context.Context, key, token string) (bool, error) {
	n, err := refreshScript.Run(ctx, l.client, []string{lockKeyPrefix + key}, token, l.ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// TTL is the expiry each Acquire and Refresh sets
func (l *Locker) TTL() time.Duration {
	return l.ttl
}
