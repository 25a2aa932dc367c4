package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bingo_config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if !os.IsNotExist(err) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestLoadConfig_AppliesOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"address": ":9090"},
		"caller": {
			"batch_size": 25,
			"ambient_chance": 0.5,
			"checkpoint_every": 5,
			"pacing": {"turbo": "750ms"}
		}
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("unexpected address: %q", cfg.ServerAddress)
	}
	if cfg.Batch.BatchSize != 25 || cfg.Batch.AmbientChance != 0.5 || cfg.Batch.CheckpointEvery != 5 {
		t.Fatalf("overrides not applied: %+v", cfg.Batch)
	}
	if cfg.Batch.Pacing[game.SpeedTurbo] != 750*time.Millisecond {
		t.Fatalf("turbo pacing override not applied: %v", cfg.Batch.Pacing[game.SpeedTurbo])
	}
	// Untouched entries keep their defaults.
	if cfg.Batch.Pacing[game.SpeedNormal] != 3*time.Second {
		t.Fatalf("normal pacing default lost: %v", cfg.Batch.Pacing[game.SpeedNormal])
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `{}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Batch.BatchSize != 40 || cfg.Batch.AmbientChance != 0.3 || cfg.Batch.CheckpointEvery != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg.Batch)
	}
	if cfg.Batch.Pacing[game.SpeedSlow] != 5*time.Second {
		t.Fatalf("unexpected slow pacing: %v", cfg.Batch.Pacing[game.SpeedSlow])
	}
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	cases := []string{
		`{"caller": {"ambient_chance": 1.5}}`,
		`{"caller": {"batch_size": -1}}`,
		`{"caller": {"checkpoint_every": -2}}`,
		`{"caller": {"pacing": {"fast": "soon"}}}`,
		`{"caller": {"pacing": {"slow": "-2s"}}}`,
	}
	for _, content := range cases {
		path := writeConfig(t, content)
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("expected validation error for %s", content)
		}
	}
}
