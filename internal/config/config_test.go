package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test input defaults
	if cfg.Input.Encoding != "utf-8" {
		t.Errorf("expected encoding 'utf-8', got %s", cfg.Input.Encoding)
	}
	if !cfg.Input.Cache {
		t.Error("expected cache to be enabled by default")
	}

	// Test mesh defaults
	if !cfg.Mesh.GenerateNormals {
		t.Error("expected generate_normals to be true by default")
	}
	if cfg.Mesh.Scale != 1.0 {
		t.Errorf("expected scale 1.0, got %f", cfg.Mesh.Scale)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
input:
  encoding: "euc-kr"
  cache: false

mesh:
  generate_normals: false
  scale: 0.01

logging:
  level: "debug"
  log_file: "objtool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Input.Encoding != "euc-kr" {
		t.Errorf("expected encoding 'euc-kr', got %s", cfg.Input.Encoding)
	}
	if cfg.Input.Cache {
		t.Error("expected cache to be disabled")
	}
	if cfg.Mesh.GenerateNormals {
		t.Error("expected generate_normals to be false")
	}
	if cfg.Mesh.Scale != 0.01 {
		t.Errorf("expected scale 0.01, got %f", cfg.Mesh.Scale)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "objtool.log" {
		t.Errorf("expected log file 'objtool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
mesh:
  scale: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty encoding", func(c *Config) { c.Input.Encoding = "" }, false},
		{"latin1", func(c *Config) { c.Input.Encoding = "iso-8859-1" }, false},
		{"unknown encoding", func(c *Config) { c.Input.Encoding = "ebcdic" }, true},
		{"zero scale", func(c *Config) { c.Mesh.Scale = 0 }, true},
		{"negative scale", func(c *Config) { c.Mesh.Scale = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("mesh:\n  scale: 2\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Input.Encoding = "windows-1252"
	cfg.Mesh.Scale = 2.5
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Input.Encoding != "windows-1252" {
		t.Errorf("expected encoding 'windows-1252', got %s", loaded.Input.Encoding)
	}
	if loaded.Mesh.Scale != 2.5 {
		t.Errorf("expected scale 2.5, got %f", loaded.Mesh.Scale)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "encoding flag",
			setup: func() {
				*flagEncoding = "euc-kr"
			},
			verify: func(cfg *Config) {
				if cfg.Input.Encoding != "euc-kr" {
					t.Errorf("expected encoding 'euc-kr', got %s", cfg.Input.Encoding)
				}
			},
			teardown: func() {
				*flagEncoding = ""
			},
		},
		{
			name: "no-cache flag",
			setup: func() {
				*flagNoCache = true
			},
			verify: func(cfg *Config) {
				if cfg.Input.Cache {
					t.Error("expected cache to be disabled with no-cache flag")
				}
			},
			teardown: func() {
				*flagNoCache = false
			},
		},
		{
			name: "scale flag",
			setup: func() {
				*flagScale = 100
			},
			verify: func(cfg *Config) {
				if cfg.Mesh.Scale != 100 {
					t.Errorf("expected scale 100, got %f", cfg.Mesh.Scale)
				}
			},
			teardown: func() {
				*flagScale = 0
			},
		},
		{
			name: "no-normals flag",
			setup: func() {
				*flagNoNormals = true
			},
			verify: func(cfg *Config) {
				if cfg.Mesh.GenerateNormals {
					t.Error("expected generate_normals to be false with no-normals flag")
				}
			},
			teardown: func() {
				*flagNoNormals = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
input:
  encoding: "iso-8859-1"
mesh:
  scale: 4
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagScale = 8
	defer func() {
		*flagConfig = ""
		*flagScale = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Scale should be from flag, not file
	if cfg.Mesh.Scale != 8 {
		t.Errorf("expected scale 8 from flag, got %f", cfg.Mesh.Scale)
	}

	// Encoding should be from file since no flag override
	if cfg.Input.Encoding != "iso-8859-1" {
		t.Errorf("expected encoding 'iso-8859-1' from file, got %s", cfg.Input.Encoding)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("input:\n  encoding: morse\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
