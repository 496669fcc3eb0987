package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Shaders.Directory != "" {
		t.Errorf("expected embedded shaders by default, got directory %q", cfg.Shaders.Directory)
	}
	if !cfg.Shaders.FailOnFindings {
		t.Error("expected fail_on_findings to be true by default")
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
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
shaders:
  directory: "../../assets/shaders"
  fail_on_findings: false

logging:
  level: "debug"
  log_file: "shaderstd.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Shaders.Directory != "../../assets/shaders" {
		t.Errorf("expected shader directory from file, got %q", cfg.Shaders.Directory)
	}
	if cfg.Shaders.FailOnFindings {
		t.Error("expected fail_on_findings to be false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "shaderstd.log" {
		t.Errorf("expected log file 'shaderstd.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("logging:\n  level: warn\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Logging.Level)
	}
	if !cfg.Shaders.FailOnFindings {
		t.Error("expected default fail_on_findings to survive a partial file")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty config should load, got %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax": `
shaders:
  directory: [unterminated
`,
		"unknown key": `
shaders:
  dir: typo
`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("logging:\n  level: debug\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
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
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "shaders flag",
			setup: func() { *flagShaders = "/srv/shaders" },
			verify: func(cfg *Config) {
				if cfg.Shaders.Directory != "/srv/shaders" {
					t.Errorf("expected shader directory /srv/shaders, got %s", cfg.Shaders.Directory)
				}
			},
			teardown: func() { *flagShaders = "" },
		},
		{
			name:  "log file flag",
			setup: func() { *flagLogFile = "out.log" },
			verify: func(cfg *Config) {
				if cfg.Logging.LogFile != "out.log" {
					t.Errorf("expected log file out.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() { *flagLogFile = "" },
		},
		{
			name:  "warn-only flag",
			setup: func() { *flagWarnOnly = true },
			verify: func(cfg *Config) {
				if cfg.Shaders.FailOnFindings {
					t.Error("expected fail_on_findings to be false with warn-only flag")
				}
			},
			teardown: func() { *flagWarnOnly = false },
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
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
shaders:
  directory: "from-file"
logging:
  level: "warn"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagShaders = "from-flag"
	defer func() {
		*flagConfig = ""
		*flagShaders = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Shaders.Directory != "from-flag" {
		t.Errorf("expected directory from flag, got %s", cfg.Shaders.Directory)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level from file, got %s", cfg.Logging.Level)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Shaders.Directory = "assets/shaders"
	cfg.Logging.Level = "error"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}
