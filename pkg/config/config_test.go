package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	ResetForTest(t.TempDir())

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if c.Agent != DefaultAgent {
		t.Errorf("expected default agent %q, got %q", DefaultAgent, c.Agent)
	}
	if c.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, c.Port)
	}
	if c.Author != "" {
		t.Errorf("expected empty default author, got %q", c.Author)
	}
}

func TestSetAndGet(t *testing.T) {
	ResetForTest(t.TempDir())

	if err := Set("author", "alice"); err != nil {
		t.Fatalf("Set author error: %v", err)
	}
	if err := Set("agent", "gemini-2.5-flash"); err != nil {
		t.Fatalf("Set agent error: %v", err)
	}

	author, err := Get("author")
	if err != nil {
		t.Fatalf("Get author error: %v", err)
	}
	if author != "alice" {
		t.Errorf("expected author 'alice', got %q", author)
	}

	agent, err := Get("agent")
	if err != nil {
		t.Fatalf("Get agent error: %v", err)
	}
	if agent != "gemini-2.5-flash" {
		t.Errorf("expected agent 'gemini-2.5-flash', got %q", agent)
	}
}

func TestSetPort(t *testing.T) {
	ResetForTest(t.TempDir())

	if err := Set("port", "9000"); err != nil {
		t.Fatalf("Set port error: %v", err)
	}
	c, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if c.Port != 9000 {
		t.Errorf("expected port 9000, got %d", c.Port)
	}

	for _, bad := range []string{"abc", "-1", "0", "99999"} {
		if err := Set("port", bad); err == nil {
			t.Errorf("expected error for port %q, got nil", bad)
		}
	}
}

func TestInvalidKey(t *testing.T) {
	ResetForTest(t.TempDir())

	if err := Set("invalid_key", "value"); err == nil {
		t.Error("expected error for invalid set key, got nil")
	}
	if _, err := Get("invalid_key"); err == nil {
		t.Error("expected error for invalid get key, got nil")
	}
}

func TestEnvOverride(t *testing.T) {
	ResetForTest(t.TempDir())
	t.Setenv("BUSLOG_AUTHOR", "env-author")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if c.Author != "env-author" {
		t.Errorf("expected env override 'env-author', got %q", c.Author)
	}
}

func TestConfigFileCreated(t *testing.T) {
	ResetForTest(t.TempDir())

	if err := Set("author", "bob"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		t.Error("config file was not created")
	}
}
