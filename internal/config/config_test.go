package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/redlinehq/redline/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "15m"
shutdown_timeout = "30s"

[database]
host = "localhost"
port = 5432
name = "redline"
user = "redline"
password = "redline"
ssl_mode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = "15m"
conn_timeout = "5s"

[storage]
container_name = "documents"
connection_string = "DefaultEndpointsProtocol=http;AccountName=redlinestore;AccountKey=key;BlobEndpoint=http://127.0.0.1:10000/redlinestore;"

[api]
base_path = "/api"

[api.cors]
enabled = false

[api.pagination]
default_page_size = 25
max_page_size = 50

[agent]
name = "test-agent"
`

const overlayConfig = `
[server]
port = 9090

[database]
host = "prodhost"
`

// minimalConfig carries only the fields validation requires; everything else
// falls back to defaults.
const minimalConfig = `
shutdown_timeout = "30s"

[database]
name = "redline"
user = "redline"

[storage]
connection_string = "conn"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("db host: got %s, want localhost", cfg.Database.Host)
	}
	if cfg.Storage.ContainerName != "documents" {
		t.Errorf("storage container: got %s, want documents", cfg.Storage.ContainerName)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("api base_path: got %s, want /api", cfg.API.BasePath)
	}
	if cfg.API.Pagination.DefaultPageSize != 25 {
		t.Errorf("pagination default_page_size: got %d, want 25", cfg.API.Pagination.DefaultPageSize)
	}
	if cfg.Agent.Name != "test-agent" {
		t.Errorf("agent name: got %s, want test-agent", cfg.Agent.Name)
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	chdir(t, dir)

	t.Setenv("REDLINE_ENV", "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090 (from overlay)", cfg.Server.Port)
	}
	if cfg.Database.Host != "prodhost" {
		t.Errorf("db host: got %s, want prodhost (from overlay)", cfg.Database.Host)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("db port: got %d, want 5432 (from base)", cfg.Database.Port)
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("REDLINE_VERSION", "2.0.0")
	t.Setenv("REDLINE_SERVER_PORT", "3000")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "2.0.0" {
		t.Errorf("version: got %s, want 2.0.0", cfg.Version)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server port: got %d, want 3000", cfg.Server.Port)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("REDLINE_DB_NAME", "testdb")
	t.Setenv("REDLINE_DB_USER", "testuser")
	t.Setenv("REDLINE_STORAGE_CONNECTION_STRING", "conn")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load without config.toml failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port default: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "testdb" {
		t.Errorf("db name from env: got %s, want testdb", cfg.Database.Name)
	}
	if cfg.Storage.ConnectionString != "conn" {
		t.Errorf("storage conn from env: got %s, want conn", cfg.Storage.ConnectionString)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", "shutdown_timeout = [broken")
	chdir(t, dir)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestEnv(t *testing.T) {
	t.Run("defaults to local", func(t *testing.T) {
		cfg := &config.Config{}
		if cfg.Env() != "local" {
			t.Errorf("env: got %s, want local", cfg.Env())
		}
	})

	t.Run("reads REDLINE_ENV", func(t *testing.T) {
		t.Setenv("REDLINE_ENV", "production")
		cfg := &config.Config{}
		if cfg.Env() != "production" {
			t.Errorf("env: got %s, want production", cfg.Env())
		}
	})
}

func TestShutdownTimeoutDuration(t *testing.T) {
	cfg := &config.Config{ShutdownTimeout: "30s"}
	if d := cfg.ShutdownTimeoutDuration(); d != 30*time.Second {
		t.Errorf("shutdown timeout: got %v, want 30s", d)
	}
}

func TestServerAddr(t *testing.T) {
	cfg := config.ServerConfig{Host: "0.0.0.0", Port: 8080}
	if addr := cfg.Addr(); addr != "0.0.0.0:8080" {
		t.Errorf("addr: got %s, want 0.0.0.0:8080", addr)
	}
}

func TestPaginationDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", minimalConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.API.Pagination.DefaultPageSize != 20 {
		t.Errorf("pagination default_page_size: got %d, want 20", cfg.API.Pagination.DefaultPageSize)
	}
	if cfg.API.Pagination.MaxPageSize != 100 {
		t.Errorf("pagination max_page_size: got %d, want 100", cfg.API.Pagination.MaxPageSize)
	}
}

func TestMaxUploadSizeBytes(t *testing.T) {
	tests := []struct {
		name string
		size string
		want int64
	}{
		{"valid 50MB", "50MB", 50 * 1024 * 1024},
		{"valid 1GB", "1GB", 1024 * 1024 * 1024},
		{"invalid falls back to 50MB", "bad", 50 * 1024 * 1024},
		{"empty falls back to 50MB", "", 50 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.APIConfig{MaxUploadSize: tt.size}
			if got := cfg.MaxUploadSizeBytes(); got != tt.want {
				t.Errorf("MaxUploadSizeBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestServerValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name: "invalid port",
			config: minimalConfig + `
[server]
port = 99999
`,
			wantErr: "invalid port",
		},
		{
			name: "invalid read_timeout",
			config: minimalConfig + `
[server]
read_timeout = "bad"
`,
			wantErr: "invalid read_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, "config.toml", tt.config)
			chdir(t, dir)

			_, err := config.Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestAgentDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", minimalConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Agent.Provider == nil {
		t.Fatal("agent provider is nil")
	}
	if cfg.Agent.Model == nil {
		t.Fatal("agent model is nil")
	}
	if cfg.Agent.Provider.Name == "" {
		t.Error("provider name not defaulted")
	}
}

func TestAgentEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("REDLINE_AGENT_PROVIDER_NAME", "azure")
	t.Setenv("REDLINE_AGENT_BASE_URL", "https://myendpoint.openai.azure.com")
	t.Setenv("REDLINE_AGENT_MODEL_NAME", "gpt-5-mini")
	t.Setenv("REDLINE_AGENT_TOKEN", "test-token")
	t.Setenv("REDLINE_AGENT_DEPLOYMENT", "gpt-5-mini")
	t.Setenv("REDLINE_AGENT_API_VERSION", "2024-12-01-preview")
	t.Setenv("REDLINE_AGENT_AUTH_TYPE", "api_key")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Agent.Provider.Name != "azure" {
		t.Errorf("provider name: got %s, want azure", cfg.Agent.Provider.Name)
	}
	if cfg.Agent.Provider.BaseURL != "https://myendpoint.openai.azure.com" {
		t.Errorf("provider base_url: got %s", cfg.Agent.Provider.BaseURL)
	}
	if cfg.Agent.Model.Name != "gpt-5-mini" {
		t.Errorf("model name: got %s, want gpt-5-mini", cfg.Agent.Model.Name)
	}

	opts := cfg.Agent.Provider.Options
	for key, want := range map[string]string{
		"token":       "test-token",
		"deployment":  "gpt-5-mini",
		"api_version": "2024-12-01-preview",
		"auth_type":   "api_key",
	} {
		if opts[key] != want {
			t.Errorf("%s: got %v, want %s", key, opts[key], want)
		}
	}
}

func TestAgentTokenNotRequired(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if _, ok := cfg.Agent.Provider.Options["token"]; ok {
		t.Error("token should not be set when env var is absent")
	}
}
