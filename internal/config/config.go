package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"zed-recent/internal/apperr"
	"zed-recent/internal/store"
)

const (
	EnvProjectsDirectories = "projects_directories"
	EnvHome                = "HOME"
	EnvHistoryDB           = "ZED_RECENT_HISTORY_DB"
	EnvDebug               = "ZED_RECENT_DEBUG"
	EnvPretty              = "ZED_RECENT_PRETTY"
)

// Config is read once at startup and passed down; the sources never consult
// the environment themselves.
type Config struct {
	// ProjectRoots are raw root lines; blank lines and ~ are handled by the
	// directory source.
	ProjectRoots []string
	Home         string
	// HistoryDB overrides the editor's history database location when set.
	HistoryDB string
	Verbose   bool
	// Pretty indents the JSON response.
	Pretty bool
}

// fileConfig is the optional on-disk config at <config dir>/zed-recent/config.yaml.
type fileConfig struct {
	ProjectsDirectories []string `yaml:"projects_directories"`
	HistoryDB           string   `yaml:"history_db"`
}

func FilePath() (string, error) {
	dir, err := store.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "zed-recent", "config.yaml"), nil
}

// Load builds the Config from the optional config file and the environment.
// Environment values win over the file.
func Load() (Config, error) {
	var cfg Config

	if path, err := FilePath(); err == nil {
		fc, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.ProjectRoots = fc.ProjectsDirectories
		cfg.HistoryDB = strings.TrimSpace(fc.HistoryDB)
	}

	if v, ok := os.LookupEnv(EnvProjectsDirectories); ok {
		cfg.ProjectRoots = SplitRoots(v)
	}
	cfg.Home = os.Getenv(EnvHome)
	if v := strings.TrimSpace(os.Getenv(EnvHistoryDB)); v != "" {
		cfg.HistoryDB = v
	}
	cfg.Verbose = enabledEnv(EnvDebug)
	cfg.Pretty = enabledEnv(EnvPretty)
	return cfg, nil
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fc, nil
		}
		return fc, apperr.E(apperr.ConfigUnavailable, "read config file", err)
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, apperr.E(apperr.ConfigUnavailable, "parse "+path, err)
	}
	return fc, nil
}

// SplitRoots splits a newline-delimited list of roots. Lines are kept as-is;
// trimming and blank-line handling belong to the directory source.
func SplitRoots(v string) []string {
	if v == "" {
		return nil
	}
	v = strings.ReplaceAll(v, "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(v, "\n"), "\n")
}

func enabledEnv(name string) bool {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return false
	}
	switch strings.ToLower(value) {
	case "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
