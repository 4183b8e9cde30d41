package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/oc-tools/ocfg/internal/backup"
)

func TestInit(t *testing.T) {
	viper.Reset()

	Init()

	if viper.GetInt("version") != 1 {
		t.Errorf("expected version default 1, got %d", viper.GetInt("version"))
	}
	if viper.GetInt("retention_count") != backup.DefaultRetentionCount {
		t.Errorf("retention_count default = %d, want %d",
			viper.GetInt("retention_count"), backup.DefaultRetentionCount)
	}
	if viper.GetString("backup_dir") == "" {
		t.Error("backup_dir default should not be empty")
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()
	Init()

	cfg, err := Load("")
	if err != nil {
		t.Errorf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config to be returned")
	}
	if cfg.RetentionCount != backup.DefaultRetentionCount {
		t.Errorf("RetentionCount = %d, want default %d", cfg.RetentionCount, backup.DefaultRetentionCount)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("backup_dir: /tmp/ocfg-backups\nretention_count: 9\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.BackupDir != "/tmp/ocfg-backups" {
		t.Errorf("BackupDir = %q", cfg.BackupDir)
	}
	if cfg.RetentionCount != 9 {
		t.Errorf("RetentionCount = %d, want 9", cfg.RetentionCount)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	viper.Reset()
	Init()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with non-existent explicit path should error")
	}
}
