package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.MaxBodyBytes != 64<<10 {
		t.Fatalf("max body = %d, want %d", cfg.Server.MaxBodyBytes, 64<<10)
	}
	if cfg.CheckinConfigured() || cfg.EoiConfigured() {
		t.Fatal("expected webhooks to be unconfigured by default")
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `server:
  port: "9000"
webhooks:
  checkin_url: "https://script.example.com/checkin"
  timeout: "3s"
logging:
  level: debug
`)
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("GOOGLE_SHEETS_EOI_WEBHOOK_URL", "https://script.example.com/eoi")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != "9100" {
		t.Fatalf("port = %q, want env override 9100", cfg.Server.Port)
	}
	if cfg.Webhooks.CheckinURL != "https://script.example.com/checkin" {
		t.Fatalf("checkin url = %q", cfg.Webhooks.CheckinURL)
	}
	if cfg.Webhooks.EoiURL != "https://script.example.com/eoi" {
		t.Fatalf("eoi url = %q", cfg.Webhooks.EoiURL)
	}
	if cfg.Webhooks.Timeout != "3s" {
		t.Fatalf("timeout = %q, want 3s", cfg.Webhooks.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"bad webhook url": "webhooks:\n  checkin_url: \"not a url\"\n",
		"bad timeout":     "webhooks:\n  timeout: \"soon\"\n",
		"bad mode":        "server:\n  mode: \"staging\"\n",
		"bad yaml":        "server: [\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			writeFile(t, path, content)
			if _, err := LoadConfig(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "WELCOMEHUB_TEST_A=from-file\nWELCOMEHUB_TEST_B=from-file\n")
	t.Setenv("WELCOMEHUB_TEST_A", "from-env")
	t.Setenv("WELCOMEHUB_TEST_B", "")
	os.Unsetenv("WELCOMEHUB_TEST_B")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("WELCOMEHUB_TEST_A"); got != "from-env" {
		t.Fatalf("A = %q, want from-env", got)
	}
	if got := os.Getenv("WELCOMEHUB_TEST_B"); got != "from-file" {
		t.Fatalf("B = %q, want from-file", got)
	}
}
