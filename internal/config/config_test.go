package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	path := writeTempConfig(t, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Chat.ResponseDelay != "1500ms" {
		t.Errorf("Chat.ResponseDelay = %q, want %q", cfg.Chat.ResponseDelay, "1500ms")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.User.Name != "" {
		t.Errorf("User.Name = %q, want empty", cfg.User.Name)
	}
	if cfg.Chat.Rules != nil {
		t.Errorf("Chat.Rules = %v, want nil (built-ins apply)", cfg.Chat.Rules)
	}
}

func TestLoad_FileValues(t *testing.T) {
	path := writeTempConfig(t, `
user:
  name: Avery
chat:
  response_delay: 10ms
  fallback: "custom fallback"
  rules:
    - terms: [hello, hi]
      response: "hey!"
    - terms: [bye]
      response: "see you"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.User.Name != "Avery" {
		t.Errorf("User.Name = %q, want %q", cfg.User.Name, "Avery")
	}
	if cfg.Chat.ResponseDelay != "10ms" {
		t.Errorf("Chat.ResponseDelay = %q, want %q", cfg.Chat.ResponseDelay, "10ms")
	}
	if len(cfg.Chat.Rules) != 2 {
		t.Fatalf("len(Chat.Rules) = %d, want 2", len(cfg.Chat.Rules))
	}
	if cfg.Chat.Rules[0].Response != "hey!" {
		t.Errorf("first rule response = %q", cfg.Chat.Rules[0].Response)
	}

	r := cfg.Router()
	if got := r.Classify("well HI there"); got != "hey!" {
		t.Errorf("Classify with file rules = %q, want %q", got, "hey!")
	}
	if got := r.Classify("unmatched"); got != "custom fallback" {
		t.Errorf("Classify fallback = %q, want %q", got, "custom fallback")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, `
user:
  name: FromFile
chat:
  response_delay: 99s
`)

	t.Setenv("INBOXIQ_USER_NAME", "FromEnv")
	t.Setenv("INBOXIQ_CHAT_RESPONSE_DELAY", "0s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.User.Name != "FromEnv" {
		t.Errorf("User.Name = %q, want env override", cfg.User.Name)
	}
	if cfg.Chat.ResponseDelay != "0s" {
		t.Errorf("Chat.ResponseDelay = %q, want env override", cfg.Chat.ResponseDelay)
	}
}

func TestLoad_ExplicitMissingPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with explicit missing path returned nil error")
	}
}

func TestLoad_BadYAMLErrors(t *testing.T) {
	path := writeTempConfig(t, "chat: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Error("Load with invalid yaml returned nil error")
	}
}

func TestShowAll_Order(t *testing.T) {
	cfg := defaults()
	cfg.User.Name = "x"

	kvs := ShowAll(cfg)
	if len(kvs) != 4 {
		t.Fatalf("len = %d, want 4", len(kvs))
	}
	if kvs[0].Key != "user.name" || kvs[0].Value != "x" {
		t.Errorf("first entry = %+v", kvs[0])
	}
	if kvs[1].Key != "chat.response_delay" || kvs[1].Value != "1500ms" {
		t.Errorf("second entry = %+v", kvs[1])
	}
}

func TestRouter_DefaultTableWhenUnconfigured(t *testing.T) {
	cfg := defaults()
	r := cfg.Router()
	got := r.Classify("summarize my inbox")
	if got == cfg.Chat.Fallback || got == "" {
		t.Errorf("built-in rules not applied: %q", got)
	}
}
