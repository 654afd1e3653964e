package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir() returned empty string")
	}

	// Should contain 'pkgscout' in the path
	if !strings.Contains(dir, "pkgscout") {
		t.Errorf("ConfigDir() should contain 'pkgscout': %s", dir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "darwin":
		if !strings.Contains(dir, "Library/Application Support") {
			t.Errorf("macOS ConfigDir() should be in Library/Application Support: %s", dir)
		}
	case "windows":
		if !strings.Contains(strings.ToLower(dir), "appdata") {
			t.Errorf("Windows ConfigDir() should be in APPDATA: %s", dir)
		}
	default: // Linux
		if !strings.Contains(dir, ".config") && os.Getenv("XDG_CONFIG_HOME") == "" {
			t.Errorf("Linux ConfigDir() should be in .config: %s", dir)
		}
	}
}

func TestDataDir(t *testing.T) {
	dir := DataDir()

	if dir == "" {
		t.Error("DataDir() returned empty string")
	}
	if !strings.Contains(dir, "pkgscout") {
		t.Errorf("DataDir() should contain 'pkgscout': %s", dir)
	}
}

func TestCacheDir(t *testing.T) {
	dir := CacheDir()

	if dir == "" {
		t.Error("CacheDir() returned empty string")
	}
	if !strings.Contains(dir, "pkgscout") {
		t.Errorf("CacheDir() should contain 'pkgscout': %s", dir)
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()

	if !strings.HasSuffix(path, "config.toml") {
		t.Errorf("ConfigPath() should end with 'config.toml': %s", path)
	}
}

func TestCachePath(t *testing.T) {
	path := CachePath()

	if !strings.HasSuffix(path, "results.db") {
		t.Errorf("CachePath() should end with 'results.db': %s", path)
	}
}

func TestInstalledPath(t *testing.T) {
	path := InstalledPath()

	if !strings.HasSuffix(path, "installed.db") {
		t.Errorf("InstalledPath() should end with 'installed.db': %s", path)
	}
}

func TestEnsureDirs(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG not used on this platform")
	}

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmpDir, "cache"))

	if err := EnsureConfigDir(); err != nil {
		t.Fatalf("EnsureConfigDir() error: %v", err)
	}
	if err := EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir() error: %v", err)
	}
	if err := EnsureCacheDir(); err != nil {
		t.Fatalf("EnsureCacheDir() error: %v", err)
	}

	for _, dir := range []string{ConfigDir(), DataDir(), CacheDir()} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("directory not created: %v", err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}
}

func TestXDGOverride(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG not used on this platform")
	}

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "custom_config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "custom_data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmpDir, "custom_cache"))

	if dir := ConfigDir(); !strings.HasPrefix(dir, filepath.Join(tmpDir, "custom_config")) {
		t.Errorf("ConfigDir should use XDG_CONFIG_HOME: %s", dir)
	}
	if dir := DataDir(); !strings.HasPrefix(dir, filepath.Join(tmpDir, "custom_data")) {
		t.Errorf("DataDir should use XDG_DATA_HOME: %s", dir)
	}
	if dir := CacheDir(); !strings.HasPrefix(dir, filepath.Join(tmpDir, "custom_cache")) {
		t.Errorf("CacheDir should use XDG_CACHE_HOME: %s", dir)
	}
}
