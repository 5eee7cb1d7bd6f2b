package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Tool.Scale != 1.0 {
		t.Errorf("expected scale 1.0, got %f", cfg.Tool.Scale)
	}
	if cfg.Tool.DumpPrecision != 3 {
		t.Errorf("expected dump precision 3, got %d", cfg.Tool.DumpPrecision)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gltftool.yaml")

	yamlContent := `
tool:
  scale: 0.01
  dump_precision: 6

logging:
  level: "debug"
  log_file: "gltftool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Tool.Scale != 0.01 {
		t.Errorf("expected scale 0.01, got %f", cfg.Tool.Scale)
	}
	if cfg.Tool.DumpPrecision != 6 {
		t.Errorf("expected dump precision 6, got %d", cfg.Tool.DumpPrecision)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "gltftool.log" {
		t.Errorf("expected log file 'gltftool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
tool:
  scale: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/gltftool.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestApplyFlags(t *testing.T) {
	*flagDebug = true
	*flagScale = 0.5
	*flagLog = "out.log"
	defer func() {
		*flagDebug = false
		*flagScale = 0
		*flagLog = ""
	}()

	cfg := Default()
	applyFlags(cfg)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Tool.Scale != 0.5 {
		t.Errorf("expected scale 0.5, got %f", cfg.Tool.Scale)
	}
	if cfg.Logging.LogFile != "out.log" {
		t.Errorf("expected log file 'out.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gltftool.yaml")

	yamlContent := `
tool:
  scale: 0.25
logging:
  level: "warn"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagScale = 2.0
	defer func() {
		*flagConfig = ""
		*flagScale = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Scale comes from the flag, level from the file
	if cfg.Tool.Scale != 2.0 {
		t.Errorf("expected scale 2.0 from flag, got %f", cfg.Tool.Scale)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level 'warn' from file, got %s", cfg.Logging.Level)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "gltftool.yaml")

	cfg := Default()
	cfg.Tool.Scale = 0.125
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Tool.Scale != 0.125 {
		t.Errorf("expected scale 0.125 after round trip, got %f", loaded.Tool.Scale)
	}
}
