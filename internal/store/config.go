package store

import (
	"os"
	"path/filepath"
	"strings"

	"zed-recent/internal/apperr"
)

const (
	// EnvConfigDir overrides the platform configuration directory (keeps tests
	// and alternate installs away from the real editor state).
	EnvConfigDir = "ZED_RECENT_CONFIG_DIR"

	// historyDBRel is where the editor keeps its workspace history, relative to
	// the platform configuration directory.
	historyDBRel = "Zed/db/0-stable/db.sqlite"
)

func ConfigDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvConfigDir)); v != "" {
		return v, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", apperr.E(apperr.ConfigUnavailable, "resolve config dir", err)
	}
	return dir, nil
}

// HistoryDBPath returns the fixed location of the editor's history database.
func HistoryDBPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.FromSlash(historyDBRel)), nil
}
