package runtime

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

const (
	instanceKeyPrefix = "fwadmin:instance:"
	heartbeatInterval = 15 * time.Second
	heartbeatTTL      = 2 * heartbeatInterval
)

var instanceID = func() string {
	hostname, _ := os.Hostname()
	return fmt.Sprintf("%s-%d-%d", hostname, os.Getpid(), time.Now().UnixNano())
}()

// LaunchInstanceHeartbeat keeps a TTL'd liveness key in redis for this
// instance so deployments can see how many replicas are up. The key value is
// the instance start time; the key expiring means the instance is gone.
func LaunchInstanceHeartbeat(parent context.Context, client *redis.Client) context.CancelFunc {
	ctx, cancel := context.WithCancel(parent)
	go heartbeatLoop(ctx, client)
	return cancel
}

func heartbeatLoop(ctx context.Context, client *redis.Client) {
	key := instanceKeyPrefix + instanceID
	startedAt := time.Now().UTC().Format(time.RFC3339)

	beat := func() {
		if err := client.SetEx(ctx, key, startedAt, heartbeatTTL).Err(); err != nil && ctx.Err() == nil {
			log.Error("Failed to update instance heartbeat", "key", key, "error", err)
		}
	}

	beat()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			beat()
		}
	}
}

// CountActiveInstances reports how many instances currently hold a live
// heartbeat key.
func CountActiveInstances(ctx context.Context, client *redis.Client) (int, error) {
	keys, err := client.Keys(ctx, instanceKeyPrefix+"*").Result()
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}
