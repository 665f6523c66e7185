package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig disagree:\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.75\nobstacles:\n  gap: 200\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.75 {
		t.Errorf("gravity = %v, expected 0.75", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.Gap != 200 {
		t.Errorf("gap = %v, expected 200", cfg.Obstacles.Gap)
	}
	if cfg.Physics.Impulse != -9 {
		t.Errorf("untouched impulse should keep default, got %v", cfg.Physics.Impulse)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("empty input should yield defaults")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "physics:\n  gravitee: 1\n", "gravitee"},
		{"upward gravity", "physics:\n  gravity: -1\n", "physics.gravity"},
		{"downward impulse", "physics:\n  impulse: 4\n", "physics.impulse"},
		{"inverted scale", "design:\n  min_scale: 2\n  max_scale: 1\n", "max_scale"},
		{"hitbox consumed", "player:\n  hitbox_inset: 20\n", "hitbox_inset"},
		{"empty key", "storage:\n  best_score_key: \"\"\n", "best_score_key"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  spawn_interval_ms: 900\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Obstacles.SpawnIntervalMs != 900 {
		t.Errorf("spawn interval = %d, expected 900", cfg.Obstacles.SpawnIntervalMs)
	}
}

func TestLoadFlappyMissingCustomPath(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("missing custom config should be an error")
	}
}

func TestLoadFlappyFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("without config files the embedded default should be used")
	}
}

func TestLoadFlappyLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "flappy.yaml"), []byte("ground:\n  height: 60\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Ground.Height != 60 {
		t.Errorf("ground height = %v, expected 60 from ./configs", cfg.Ground.Height)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := Encode(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if !strings.Contains(string(data), "best_score_key: flappyHighScore") {
		t.Errorf("encoded YAML missing storage key:\n%s", data)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("encoded config should parse back to the same values")
	}
}
