package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

type Config struct {
	Registry struct {
		// DefaultActiveDays is the rolling lifetime of a host; creation and
		// renewal both set active_until to today + this many days.
		DefaultActiveDays int `json:"default_active_days"`

		AllowedUserGroup string `json:"allowed_user_group"`
		ModeratorsGroup  string `json:"moderators_group"`

		// AutoAllowNewUsers puts freshly registered accounts into the
		// allowed users group. The first account always gets both groups.
		AutoAllowNewUsers bool `json:"auto_allow_new_users"`
	} `json:"registry"`

	Maintenance struct {
		OrphanCleanupTimer Timer `json:"orphan_cleanup_timer"`
	} `json:"maintenance"`
}

const settingsFilePath = "data/settings.json"

var (
	//go:embed default_settings.json
	defaultConfig []byte

	configValue atomic.Value
	configMu    sync.Mutex

	InProductionMode bool
)

func init() {
	configValue.Store(normalize(Config{}))
}

func ReadSettings() {
	data, err := os.ReadFile(settingsFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info("No settings file found, writing defaults", "path", settingsFilePath)
			data = defaultConfig
			if writeErr := writeSettingsFile(data); writeErr != nil {
				log.Warn("Could not persist default settings", "error", writeErr)
			}
		} else {
			log.Error("Failed to read settings file, using defaults", "error", err)
			data = defaultConfig
		}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Error("Failed to parse settings file, using defaults", "error", err)
		if err := json.Unmarshal(defaultConfig, &cfg); err != nil {
			log.Fatal("embedded default settings are invalid", "error", err)
		}
	}

	configValue.Store(normalize(cfg))
}

func GetConfig() Config {
	return configValue.Load().(Config)
}

// SetConfig swaps the active configuration and persists it.
func SetConfig(cfg Config) error {
	configMu.Lock()
	defer configMu.Unlock()

	cfg = normalize(cfg)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := writeSettingsFile(data); err != nil {
		return err
	}

	configValue.Store(cfg)
	return nil
}

func SetProductionMode(production bool) {
	InProductionMode = production
}

func writeSettingsFile(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(settingsFilePath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(settingsFilePath, data, 0o644)
}

func normalize(cfg Config) Config {
	if cfg.Registry.DefaultActiveDays <= 0 {
		cfg.Registry.DefaultActiveDays = 30
	}
	if cfg.Registry.AllowedUserGroup == "" {
		cfg.Registry.AllowedUserGroup = "fwadmin_users"
	}
	if cfg.Registry.ModeratorsGroup == "" {
		cfg.Registry.ModeratorsGroup = "fwadmin_moderators"
	}
	return cfg
}
