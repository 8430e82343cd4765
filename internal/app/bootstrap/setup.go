package bootstrap

import (
	"context"

	"github.com/charmbracelet/log"

	"fwadmin/internal/config"
	"fwadmin/internal/database"
	"fwadmin/internal/jobs/maintenance"
	"fwadmin/internal/registry"
)

// Setup reads the configuration, prepares the database and wires the
// registry service. Background routines are started here so app.Run stays a
// thin entry point.
func Setup() *registry.Service {
	config.ReadSettings()

	if _, err := database.SetupDB(); err != nil {
		log.Fatalf("failed to set up database: %v", err)
	}

	cfg := config.GetConfig()
	policy := registry.Policy{
		AllowedGroup:   cfg.Registry.AllowedUserGroup,
		ModeratorGroup: cfg.Registry.ModeratorsGroup,
	}
	svc := registry.NewService(database.NewStore(database.DB), policy, cfg.Registry.DefaultActiveDays)

	// Routines

	go maintenance.StartOrphanCleanupRoutine(context.Background())

	return svc
}
