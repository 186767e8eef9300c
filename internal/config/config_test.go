package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Service.Port != defaultServicePort {
		t.Errorf("port = %d, want %d", cfg.Service.Port, defaultServicePort)
	}
	if cfg.Endpoint.Timeout != defaultInvokeTimeout {
		t.Errorf("timeout = %v, want %v", cfg.Endpoint.Timeout, defaultInvokeTimeout)
	}
	if cfg.Cache.TTL != 0 {
		t.Errorf("cache TTL = %v, want 0 (no expiry)", cfg.Cache.TTL)
	}
	if cfg.Codes.TopKPerType != defaultTopKPerType {
		t.Errorf("topK = %d, want %d", cfg.Codes.TopKPerType, defaultTopKPerType)
	}
	if cfg.Endpoint.URL != "" || cfg.Endpoint.Name != "" {
		t.Errorf("endpoint should be unconfigured by default, got %+v", cfg.Endpoint)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := `
service:
  port: 9090
endpoint:
  name: medical-code-prediction-v3
  region: us-west-1
  timeout: 5s
cache:
  ttl: 1h
codes:
  top_k_per_type: 3
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Service.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Service.Port)
	}
	if cfg.Endpoint.Name != "medical-code-prediction-v3" {
		t.Errorf("endpoint name = %q", cfg.Endpoint.Name)
	}
	if cfg.Endpoint.Region != "us-west-1" {
		t.Errorf("region = %q", cfg.Endpoint.Region)
	}
	if cfg.Endpoint.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.Endpoint.Timeout)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("ttl = %v", cfg.Cache.TTL)
	}
	if cfg.Codes.TopKPerType != 3 {
		t.Errorf("topK = %d", cfg.Codes.TopKPerType)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("service:\n  port: 9090\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MEDCODER_PORT", "7070")
	t.Setenv("ENDPOINT_TIMEOUT", "750ms")
	t.Setenv("APP_DEBUG", "yes")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Service.Port != 7070 {
		t.Errorf("port = %d, want env override 7070", cfg.Service.Port)
	}
	if cfg.Endpoint.Timeout != 750*time.Millisecond {
		t.Errorf("timeout = %v, want 750ms", cfg.Endpoint.Timeout)
	}
	if !cfg.Service.Debug {
		t.Error("debug should be true via APP_DEBUG=yes")
	}
}
