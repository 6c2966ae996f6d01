package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kbukum/scribekit/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "name: scribe\n"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Storage.BasePath != "." {
		t.Errorf("base path = %q, want .", cfg.Storage.BasePath)
	}
	if cfg.AssemblyAI.PollInterval != 5*time.Second {
		t.Errorf("poll interval = %v, want 5s", cfg.AssemblyAI.PollInterval)
	}
	if cfg.Whisper.Model != "large" {
		t.Errorf("whisper model = %q, want large", cfg.Whisper.Model)
	}
	if cfg.ExportEnabled() {
		t.Error("export should be disabled without a provider")
	}
}

func TestLoadConfigFileValues(t *testing.T) {
	path := writeConfig(t, `
name: scribe
engine: assemblyai
language: it
assemblyai:
  poll_interval: 2s
  max_poll_attempts: 10
storage:
  base_path: /srv/scribe
export:
  provider: local
  base_path: /srv/exports
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Engine != "assemblyai" || cfg.Language != "it" {
		t.Errorf("engine/language = %q/%q", cfg.Engine, cfg.Language)
	}
	if cfg.AssemblyAI.PollInterval != 2*time.Second || cfg.AssemblyAI.MaxPollAttempts != 10 {
		t.Errorf("assemblyai = %+v", cfg.AssemblyAI)
	}
	if cfg.Storage.BasePath != "/srv/scribe" {
		t.Errorf("base path = %q", cfg.Storage.BasePath)
	}
	if !cfg.ExportEnabled() || cfg.Export.BasePath != "/srv/exports" {
		t.Errorf("export = %+v, want local at /srv/exports", cfg.Export)
	}
}

func TestLoadConfigEnvAlias(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "key-from-env")
	cfg, err := loadConfig(writeConfig(t, "name: scribe\n"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.AssemblyAI.APIKey != "key-from-env" {
		t.Errorf("api key = %q", cfg.AssemblyAI.APIKey)
	}
}

func TestLoadConfigPrefixedEnv(t *testing.T) {
	t.Setenv("SCRIBE_ENGINE", "whisper")
	cfg, err := loadConfig(writeConfig(t, "name: scribe\nengine: assemblyai\n"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Engine != "whisper" {
		t.Errorf("engine = %q, want env override", cfg.Engine)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown engine", "name: scribe\nengine: vosk\n"},
		{"unknown language", "name: scribe\nlanguage: jp\n"},
		{"s3 export without bucket", "name: scribe\nexport:\n  provider: s3\n"},
		{"memory export", "name: scribe\nexport:\n  provider: memory\n"},
		{"negative attempts", "name: scribe\nassemblyai:\n  max_poll_attempts: -1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tc.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if code := errors.ExitCode(err); code != errors.ExitInput {
				t.Errorf("exit code = %d, want %d (%v)", code, errors.ExitInput, err)
			}
		})
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Name != serviceName {
		t.Errorf("name = %q, want %q", cfg.Name, serviceName)
	}
}
