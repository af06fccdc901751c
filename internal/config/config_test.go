package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var configVars = []string{
	"MONGO_URI", "DB_NAME", "BLOG_COLLECTION", "MONGO_CONNECT_TIMEOUT", "MANIFEST_PATH",
	"CONTENT_DIR", "CONTENT_READ_POLICY", "LOG_LEVEL", "LOG_FORMAT",
}

// clearConfigEnv unsets every config variable for the duration of the test
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func noDotenv(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "pictify")

	cfg, err := Load(noDotenv(t))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.DBName != "pictify" {
		t.Errorf("DBName = %q", cfg.DBName)
	}
	if cfg.Collection != "blogs" {
		t.Errorf("Collection = %q, want %q", cfg.Collection, "blogs")
	}
	if cfg.ConnectTimeout != 10*time.Second {
		t.Errorf("ConnectTimeout = %v, want %v", cfg.ConnectTimeout, 10*time.Second)
	}
	if cfg.ManifestPath != "./blog-status.json" {
		t.Errorf("ManifestPath = %q, want %q", cfg.ManifestPath, "./blog-status.json")
	}
	if cfg.ContentDir != "./blogs" {
		t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "./blogs")
	}
	if cfg.ContentReadPolicy != "skip" {
		t.Errorf("ContentReadPolicy = %q, want %q", cfg.ContentReadPolicy, "skip")
	}
	if cfg.LogLevel != "info" || cfg.JSONLogs() {
		t.Errorf("LogLevel = %q, JSONLogs = %v, want info and false", cfg.LogLevel, cfg.JSONLogs())
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("DB_NAME", "blog")
	t.Setenv("BLOG_COLLECTION", "posts")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "2s")
	t.Setenv("MANIFEST_PATH", "/data/status.json")
	t.Setenv("CONTENT_DIR", "/data/posts")
	t.Setenv("CONTENT_READ_POLICY", "abort")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load(noDotenv(t))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Collection != "posts" || cfg.ConnectTimeout != 2*time.Second {
		t.Errorf("Collection = %q, ConnectTimeout = %v", cfg.Collection, cfg.ConnectTimeout)
	}
	if cfg.ManifestPath != "/data/status.json" || cfg.ContentDir != "/data/posts" {
		t.Errorf("ManifestPath = %q, ContentDir = %q", cfg.ManifestPath, cfg.ContentDir)
	}
	if cfg.ContentReadPolicy != "abort" || cfg.LogLevel != "debug" || !cfg.JSONLogs() {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]string
	}{
		{name: "nothing set", set: map[string]string{}},
		{name: "missing DB_NAME", set: map[string]string{"MONGO_URI": "mongodb://localhost"}},
		{name: "missing MONGO_URI", set: map[string]string{"DB_NAME": "blog"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.set {
				t.Setenv(k, v)
			}

			if _, err := Load(noDotenv(t)); err == nil {
				t.Error("Load() expected an error")
			}
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log format", key: "LOG_FORMAT", value: "xml"},
		{name: "bad timeout", key: "MONGO_CONNECT_TIMEOUT", value: "soon"},
		{name: "negative timeout", key: "MONGO_CONNECT_TIMEOUT", value: "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv("MONGO_URI", "mongodb://localhost")
			t.Setenv("DB_NAME", "blog")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(noDotenv(t)); err == nil {
				t.Errorf("Load() expected an error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_Dotenv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DB_NAME", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	content := "MONGO_URI=mongodb://dotenv:27017\nDB_NAME=from-dotenv\nCONTENT_DIR=./posts\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	// godotenv sets these directly; make sure they do not leak into other tests
	t.Cleanup(func() {
		os.Unsetenv("MONGO_URI")
		os.Unsetenv("CONTENT_DIR")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.MongoURI != "mongodb://dotenv:27017" {
		t.Errorf("MongoURI = %q, want value from .env", cfg.MongoURI)
	}
	if cfg.DBName != "from-env" {
		t.Errorf("DBName = %q, want existing environment to win", cfg.DBName)
	}
	if cfg.ContentDir != "./posts" {
		t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "./posts")
	}
}
