package maintenance

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"fwadmin/internal/config"
	"fwadmin/internal/database"
	"fwadmin/internal/support"
)

const (
	envCleanupInterval   = "FWADMIN_ORPHAN_CLEAN_INTERVAL"
	orphanCleanupLockKey = "fwadmin:leader:orphan_cleanup"
)

// StartOrphanCleanupRoutine periodically removes rows that lost their parent:
// rules without a host and group memberships without a user or group. With
// redis available only one instance runs the sweep; without it each instance
// sweeps on its own, which is safe but redundant.
func StartOrphanCleanupRoutine(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	err := support.RunWithLeader(ctx, orphanCleanupLockKey, support.DefaultLeadershipTTL, func(leaderCtx context.Context) {
		runOrphanCleanupLoop(leaderCtx)
	})
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}

	log.Warn("Orphan cleanup leader lock unavailable, sweeping without it", "error", err)
	runOrphanCleanupLoop(ctx)
}

func runOrphanCleanupLoop(ctx context.Context) {
	interval := resolveCleanupInterval()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runOrphanCleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOrphanCleanup(ctx)
		}
	}
}

func resolveCleanupInterval() time.Duration {
	if raw := support.GetEnv(envCleanupInterval, ""); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			return parsed
		}
		log.Warn("Invalid FWADMIN_ORPHAN_CLEAN_INTERVAL value, falling back to settings", "value", raw)
	}

	return config.CalculateBetweenTime(config.GetConfig().Maintenance.OrphanCleanupTimer)
}

func runOrphanCleanup(ctx context.Context) {
	start := time.Now()

	var rulesRemoved, membershipsRemoved int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		removed, err := database.DeleteOrphanRules(gctx)
		rulesRemoved = removed
		return err
	})
	g.Go(func() error {
		removed, err := database.DeleteOrphanMemberships(gctx)
		membershipsRemoved = removed
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error("Orphan cleanup failed", "error", err)
		return
	}

	if rulesRemoved == 0 && membershipsRemoved == 0 {
		return
	}

	log.Info(
		"Orphan cleanup completed",
		"rules_removed", rulesRemoved,
		"memberships_removed", membershipsRemoved,
		"duration", time.Since(start),
	)
}
