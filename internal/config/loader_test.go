package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGameEmbeddedDefault(t *testing.T) {
	// With no custom path and no config files around, the embedded
	// default applies.
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	defer os.Chdir(oldWd) //nolint:errcheck

	t.Setenv("HOME", tmpDir)

	cfg, err := LoadGame("")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}

	if cfg.DefaultVariant != "classic" {
		t.Errorf("DefaultVariant = %q, want classic", cfg.DefaultVariant)
	}
	if cfg.UI.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", cfg.UI.TickRate)
	}
	if cfg.Board.Size != 0 {
		t.Errorf("Board.Size = %d, want 0 (keep variant)", cfg.Board.Size)
	}
}

func TestLoadGameCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	content := []byte(`
default_variant: big
board:
  size: 6
  win_target: 8192
  four_probability: 0.25
ui:
  tick_rate: 60
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame(%s) failed: %v", path, err)
	}

	if cfg.DefaultVariant != "big" {
		t.Errorf("DefaultVariant = %q, want big", cfg.DefaultVariant)
	}
	if cfg.Board.Size != 6 || cfg.Board.WinTarget != 8192 {
		t.Errorf("Board = %+v, want size 6 target 8192", cfg.Board)
	}
	if cfg.Board.FourProbability != 0.25 {
		t.Errorf("FourProbability = %g, want 0.25", cfg.Board.FourProbability)
	}
	if cfg.UI.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", cfg.UI.TickRate)
	}
}

func TestLoadGameMissingCustomPath(t *testing.T) {
	if _, err := LoadGame("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadGame with a missing explicit path should fail")
	}
}

func TestLoadGameBadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")
	if err := os.WriteFile(path, []byte("board: ["), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadGame(path); err == nil {
		t.Error("LoadGame with malformed YAML should fail")
	}
}
