package support

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultLeadershipTTL = 45 * time.Second
	leadershipRetryDelay = time.Second
)

var renewScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
else
	return 0
end`)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end`)

// RunWithLeader acquires a Redis-based leadership lock and invokes run while
// the lock is held. run receives a context that is cancelled when leadership
// is lost or the parent context is done. The lock is renewed periodically and
// released when run returns.
func RunWithLeader(ctx context.Context, key string, ttl time.Duration, run func(context.Context)) error {
	if run == nil {
		return errors.New("support: leader run function cannot be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if ttl <= 0 {
		ttl = DefaultLeadershipTTL
	}

	client, err := GetRedisClient()
	if err != nil {
		return fmt.Errorf("support: leader lock redis client: %w", err)
	}

	token := newLeaderToken()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		acquired, err := client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			log.Warn("support: leader lock acquire failed", "key", key, "error", err)
		}
		if !acquired || err != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(leadershipRetryDelay):
			}
			continue
		}

		lost := leadWithLock(ctx, client, key, token, ttl, run)
		if !lost {
			return ctx.Err()
		}
		// Leadership was lost mid-run; try to re-acquire and resume.
	}
}

func leadWithLock(ctx context.Context, client *redis.Client, key, token string, ttl time.Duration, run func(context.Context)) bool {
	leaderCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var lost atomic.Bool

	renewInterval := ttl / 3
	if renewInterval < time.Second {
		renewInterval = time.Second
	}

	go func() {
		ticker := time.NewTicker(renewInterval)
		defer ticker.Stop()

		for {
			select {
			case <-leaderCtx.Done():
				return
			case <-ticker.C:
				ok, err := renewScript.Run(leaderCtx, client, []string{key}, token, ttl.Milliseconds()).Int()
				if err != nil || ok == 0 {
					log.Warn("support: leadership lost", "key", key, "error", err)
					lost.Store(true)
					cancel()
					return
				}
			}
		}
	}()

	run(leaderCtx)

	releaseCtx, releaseCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer releaseCancel()
	if err := releaseScript.Run(releaseCtx, client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		log.Warn("support: leader lock release failed", "key", key, "error", err)
	}

	return lost.Load()
}

func newLeaderToken() string {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Sprintf("leader-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(raw)
}
