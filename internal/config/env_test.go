package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "FLAPPY_TEST_LEVEL=debug\nFLAPPY_TEST_KEPT=from-file\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FLAPPY_TEST_KEPT", "from-env")
	t.Cleanup(func() { os.Unsetenv("FLAPPY_TEST_LEVEL") })

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	if got := os.Getenv("FLAPPY_TEST_LEVEL"); got != "debug" {
		t.Errorf("FLAPPY_TEST_LEVEL = %q, expected debug", got)
	}
	if got := os.Getenv("FLAPPY_TEST_KEPT"); got != "from-env" {
		t.Errorf("existing variable overwritten: %q", got)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}
