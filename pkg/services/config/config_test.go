package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("expected Addr=:3000, got %s", cfg.Addr)
	}
	if cfg.GenAIModel != "gemini-2.0-flash" {
		t.Errorf("expected default model, got %s", cfg.GenAIModel)
	}
}

func TestLoad_ValidYAML_PopulatesAllFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "valid.yaml")
	content := `addr: ":8080"
genai_key: "tok"
genai_model: "gemini-2.5-pro"
geo_lookup_url: "http://geo.local/json"`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected Addr=:8080, got %s", cfg.Addr)
	}
	if cfg.GenAIKey != "tok" {
		t.Errorf("expected GenAIKey=tok, got %s", cfg.GenAIKey)
	}
	if cfg.GenAIModel != "gemini-2.5-pro" {
		t.Errorf("expected GenAIModel=gemini-2.5-pro, got %s", cfg.GenAIModel)
	}
	if cfg.GeoLookupURL != "http://geo.local/json" {
		t.Errorf("expected GeoLookupURL=http://geo.local/json, got %s", cfg.GeoLookupURL)
	}
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("addr: :8080: bad"), 0o644); err != nil {
		t.Fatalf("failed to write bad config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}
