package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Game.StartLives != 3 {
		t.Errorf("Expected 3 lives, got %d", cfg.Game.StartLives)
	}
	if cfg.Game.TickRate != 50*time.Millisecond {
		t.Errorf("Expected 50ms tick, got %s", cfg.Game.TickRate)
	}
	if cfg.Database.Enabled {
		t.Error("Expected database to be disabled by default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[game]
player_name = "zed"
start_lives = 5
tick_rate = "100ms"
seed = 42

[audio]
enabled = false

[logging]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Game.PlayerName != "zed" || cfg.Game.StartLives != 5 || cfg.Game.Seed != 42 {
		t.Errorf("Expected game overrides, got %+v", cfg.Game)
	}
	if cfg.Game.TickRate != 100*time.Millisecond {
		t.Errorf("Expected 100ms tick, got %s", cfg.Game.TickRate)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio to be disabled")
	}
	if cfg.Game.Manifest != "levels/levels.yaml" {
		t.Errorf("Expected default manifest to survive, got %q", cfg.Game.Manifest)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected json logging, got %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"lives":  "[game]\nstart_lives = 0\n",
		"volume": "[audio]\nvolume = 2.0\n",
		"dsn":    "[database]\nenabled = true\ndsn = \"\"\n",
		"syntax": "[game\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
