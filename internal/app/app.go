package app

import (
	"context"
	"flag"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"fwadmin/internal/app/bootstrap"
	"fwadmin/internal/app/server"
	"fwadmin/internal/config"
	jobruntime "fwadmin/internal/jobs/runtime"
	"fwadmin/internal/support"
)

const defaultBackendPort = 8082

func Run() error {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found. Falling back to system environment variables.")
	}

	portFlag := flag.Int("port", defaultBackendPort, "Port for API server")
	productionFlag := flag.Bool("production", false, "Run in production mode")
	flag.Parse()

	config.SetProductionMode(*productionFlag)
	log.SetLevel(logLevel())

	port := resolvePort("FWADMIN_PORT", "port", *portFlag)

	svc := bootstrap.Setup()

	if redisClient, err := support.GetRedisClient(); err != nil {
		log.Warn("Redis unavailable, skipping instance heartbeat", "error", err)
	} else {
		heartbeatCancel := jobruntime.LaunchInstanceHeartbeat(context.Background(), redisClient)
		defer heartbeatCancel()
		defer func() {
			if err := support.CloseRedisClient(); err != nil {
				log.Warn("error closing redis client", "error", err)
			}
		}()
	}

	return server.OpenRoutes(port, svc)
}

// logLevel picks the log verbosity for the current mode: debug output is for
// development only, production instances log info and up.
func logLevel() log.Level {
	if config.InProductionMode {
		return log.InfoLevel
	}
	return log.DebugLevel
}

func resolvePort(primaryEnv, legacyEnv string, fallback int) int {
	if port := readPort(primaryEnv); port != 0 {
		return port
	}
	if port := readPort(legacyEnv); port != 0 {
		return port
	}
	return fallback
}

func readPort(envKey string) int {
	raw := os.Getenv(envKey)
	if raw == "" {
		return 0
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port == 0 {
		log.Warn("invalid port override", "env", envKey, "value", raw)
		return 0
	}
	return port
}
