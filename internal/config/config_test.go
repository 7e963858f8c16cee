package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"taskhub/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFile_NotFound(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.View.Period != "twomonths" {
		t.Errorf("default period = %q, want twomonths", cfg.View.Period)
	}
	if cfg.View.Sort != "do" {
		t.Errorf("default sort = %q, want do", cfg.View.Sort)
	}
	if !cfg.Notifications.Enabled {
		t.Error("notifications must default to enabled")
	}
	if cfg.Notifications.AppName != "Task Hub" {
		t.Errorf("default app name = %q, want Task Hub", cfg.Notifications.AppName)
	}
}

func TestLoadFile_Full(t *testing.T) {
	path := writeConfig(t, `
data-path = "/tmp/hub-data"

[view]
period = "week"
sort = "due"

[notifications]
enabled = false
app-name = "Hub"
`)

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.DataPath != "/tmp/hub-data" {
		t.Errorf("data-path = %q", cfg.DataPath)
	}
	if cfg.View.Period != "week" {
		t.Errorf("period = %q, want week", cfg.View.Period)
	}
	if cfg.View.Sort != "due" {
		t.Errorf("sort = %q, want due", cfg.View.Sort)
	}
	if cfg.Notifications.Enabled {
		t.Error("expected notifications disabled")
	}
	if cfg.Notifications.AppName != "Hub" {
		t.Errorf("app-name = %q, want Hub", cfg.Notifications.AppName)
	}

	dir, err := cfg.DataDir()
	if err != nil {
		t.Fatalf("failed to resolve data dir: %v", err)
	}
	if dir != "/tmp/hub-data" {
		t.Errorf("data dir = %q, want the configured path", dir)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[view]
period = "day"
`)

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.View.Period != "day" {
		t.Errorf("period = %q, want day", cfg.View.Period)
	}
	if cfg.View.Sort != "do" {
		t.Errorf("sort = %q, want the default", cfg.View.Sort)
	}
	if !cfg.Notifications.Enabled {
		t.Error("notifications must stay enabled when unset")
	}
}

func TestLoadFile_RejectsUnknownTokens(t *testing.T) {
	for _, content := range []string{
		"[view]\nperiod = \"quarter\"\n",
		"[view]\nsort = \"priority\"\n",
		"this is not toml",
	} {
		if _, err := config.LoadFile(writeConfig(t, content)); err == nil {
			t.Errorf("expected an error for %q", content)
		}
	}
}
