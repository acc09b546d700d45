package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	StorePath   string `toml:"store_path"`
	HistoryPath string `toml:"history_path"`
	DBPath      string `toml:"db_path"`

	Resolver   ResolverConfig   `toml:"resolver"`
	Classifier ClassifierConfig `toml:"classifier"`
	Teams      TeamsConfig      `toml:"teams"`
}

// ResolverConfig exposes the empirically tuned heuristics as configuration
// rather than hard-coded magic numbers.
type ResolverConfig struct {
	FuzzyCutoff     float64  `toml:"fuzzy_cutoff"`
	MaxCommentLen   int      `toml:"max_comment_len"`
	CommentKeywords []string `toml:"comment_keywords"`
}

type ClassifierConfig struct {
	AccountKeywords []string `toml:"account_keywords"`
}

// TeamsConfig extends the canonical registry at deploy time. Learning never
// adds teams; config is the only way in.
type TeamsConfig struct {
	Extra   []string          `toml:"extra"`
	Aliases map[string]string `toml:"aliases"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(home, ".config", "teampick")
	cfg := &Config{
		StorePath:   filepath.Join(dir, "team_learning.json"),
		HistoryPath: filepath.Join(dir, "team_learning_history.json"),
		DBPath:      filepath.Join(dir, "teampick.db"),
		Resolver: ResolverConfig{
			FuzzyCutoff:   0.85,
			MaxCommentLen: 20,
		},
	}

	cfgPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.StorePath = expandHome(cfg.StorePath, home)
	cfg.HistoryPath = expandHome(cfg.HistoryPath, home)
	cfg.DBPath = expandHome(cfg.DBPath, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
