package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndLoadUser(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dataDir := filepath.Join(t.TempDir(), "ge_seer_data")

	saved, err := SaveUser("seer#1234", "discord", dataDir)
	if err != nil {
		t.Fatalf("SaveUser() error = %v", err)
	}

	wantUA := "osrs-ge-seer (GE price history + modeling) - seer#1234 on Discord"
	if saved.UserAgent != wantUA {
		t.Errorf("UserAgent = %q, want %q", saved.UserAgent, wantUA)
	}
	if _, err := os.Stat(saved.DataDir); err != nil {
		t.Errorf("data dir not created: %v", err)
	}

	loaded, err := LoadUser()
	if err != nil {
		t.Fatalf("LoadUser() error = %v", err)
	}
	if loaded.UserAgent != saved.UserAgent {
		t.Errorf("loaded UserAgent = %q, want %q", loaded.UserAgent, saved.UserAgent)
	}
	if loaded.DataDir != saved.DataDir {
		t.Errorf("loaded DataDir = %q, want %q", loaded.DataDir, saved.DataDir)
	}
}

func TestSaveUser_EmailContact(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	saved, err := SaveUser("seer@example.com", "email", t.TempDir())
	if err != nil {
		t.Fatalf("SaveUser() error = %v", err)
	}
	if !strings.HasSuffix(saved.UserAgent, "seer@example.com via Email") {
		t.Errorf("UserAgent = %q, want email suffix", saved.UserAgent)
	}
}

func TestSaveUser_InvalidContactType(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := SaveUser("someone", "carrier-pigeon", t.TempDir()); err == nil {
		t.Error("SaveUser() error = nil, want error")
	}
}

func TestLoadUser_NotConfigured(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := LoadUser()
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("LoadUser() error = %v, want ErrNotConfigured", err)
	}
}

func TestLoadUser_IncompleteConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".ge_seer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"user_agent": "x"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadUser()
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("LoadUser() error = %v, want ErrNotConfigured", err)
	}
}
