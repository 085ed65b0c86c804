package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
env: prod
endpoint: http://localhost:3000/students
storage_path: /tmp/students.db
theme_path: config/theme.yaml
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Env != "prod" {
		t.Errorf("Env = %q, want prod", cfg.Env)
	}
	if cfg.Endpoint != "http://localhost:3000/students" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.StoragePath != "/tmp/students.db" {
		t.Errorf("StoragePath = %q", cfg.StoragePath)
	}
	if cfg.ThemePath != "config/theme.yaml" {
		t.Errorf("ThemePath = %q", cfg.ThemePath)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "storage_path: students.db\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Env != "dev" {
		t.Errorf("Env = %q, want dev", cfg.Env)
	}
	if cfg.Endpoint != "http://localhost:3000/students" {
		t.Errorf("Endpoint = %q, want the local students endpoint", cfg.Endpoint)
	}
	if cfg.ThemePath != "" {
		t.Errorf("ThemePath = %q, want empty", cfg.ThemePath)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "storage_path: students.db\n")
	t.Setenv("STUDENTS_ENDPOINT", "http://students.internal:8082/api/students")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Endpoint != "http://students.internal:8082/api/students" {
		t.Errorf("Endpoint = %q, want env override", cfg.Endpoint)
	}
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	path := writeConfig(t, "storage_path: students.db\n")
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(""); err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing storage path",
			content: "env: dev\n",
			wantErr: "cannot read config",
		},
		{
			name:    "unknown env",
			content: "env: qa\nstorage_path: students.db\n",
			wantErr: "field Env must be one of [dev staging prod]",
		},
		{
			name:    "bad endpoint",
			content: "endpoint: not a url\nstorage_path: students.db\n",
			wantErr: "field Endpoint must be a valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Load() error = %v, want missing file error", err)
	}
}

func TestLoad_NoPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	if _, err := Load(""); err == nil {
		t.Error("Load(\"\") error = nil, want error")
	}
}
