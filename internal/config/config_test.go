package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantStore := filepath.Join(home, ".config", "teampick", "team_learning.json")
	if cfg.StorePath != wantStore {
		t.Errorf("StorePath = %q, want %q", cfg.StorePath, wantStore)
	}
	if cfg.Resolver.FuzzyCutoff != 0.85 {
		t.Errorf("FuzzyCutoff = %v, want 0.85", cfg.Resolver.FuzzyCutoff)
	}
	if cfg.Resolver.MaxCommentLen != 20 {
		t.Errorf("MaxCommentLen = %v, want 20", cfg.Resolver.MaxCommentLen)
	}
}

func TestLoadConfigFileOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "teampick")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `
store_path = "~/custom/learning.json"

[resolver]
fuzzy_cutoff = 0.82
comment_keywords = ["thanks"]

[teams]
extra = ["Girona"]

[teams.aliases]
"ဂျီရိုနာ" = "Girona"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StorePath != filepath.Join(home, "custom", "learning.json") {
		t.Errorf("StorePath = %q, ~ not expanded", cfg.StorePath)
	}
	if cfg.Resolver.FuzzyCutoff != 0.82 {
		t.Errorf("FuzzyCutoff = %v, want 0.82", cfg.Resolver.FuzzyCutoff)
	}
	if len(cfg.Resolver.CommentKeywords) != 1 || cfg.Resolver.CommentKeywords[0] != "thanks" {
		t.Errorf("CommentKeywords = %v", cfg.Resolver.CommentKeywords)
	}
	if len(cfg.Teams.Extra) != 1 || cfg.Teams.Extra[0] != "Girona" {
		t.Errorf("Teams.Extra = %v", cfg.Teams.Extra)
	}
	if cfg.Teams.Aliases["ဂျီရိုနာ"] != "Girona" {
		t.Errorf("Teams.Aliases = %v", cfg.Teams.Aliases)
	}
	// unset keys keep their defaults
	if cfg.Resolver.MaxCommentLen != 20 {
		t.Errorf("MaxCommentLen = %v, want default 20", cfg.Resolver.MaxCommentLen)
	}
}
