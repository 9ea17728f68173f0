package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.PageSize, defaultPageSize)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.ReloadInterval != 0 {
		t.Fatalf("ReloadInterval = %v, want 0", cfg.ReloadInterval)
	}

	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
api_url = "  http://10.0.0.5:9999/api/  "
page_size = 25
request_timeout = "2s"
reload_interval = "1m"
log_dir = "  ~/.roster/logs  "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://10.0.0.5:9999/api/" {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, "http://10.0.0.5:9999/api/")
	}
	if cfg.PageSize != 25 {
		t.Fatalf("PageSize = %d, want 25", cfg.PageSize)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Fatalf("RequestTimeout = %v, want 2s", cfg.RequestTimeout)
	}
	if cfg.ReloadInterval != time.Minute {
		t.Fatalf("ReloadInterval = %v, want 1m", cfg.ReloadInterval)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
api_url = "   "
log_dir = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ROSTER_API_URL", "http://env.example/v2/")
	t.Setenv("ROSTER_PAGE_SIZE", "5")
	t.Setenv("ROSTER_REQUEST_TIMEOUT", "750ms")
	t.Setenv("ROSTER_RELOAD_INTERVAL", "30s")
	t.Setenv("ROSTER_LOG_DIR", "~/envlogs")

	path := writeConfig(t, `
api_url = "http://file.example/"
page_size = 25
reload_interval = "1m"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://env.example/v2/" {
		t.Fatalf("APIURL = %q, want env value", cfg.APIURL)
	}
	if cfg.PageSize != 5 {
		t.Fatalf("PageSize = %d, want 5", cfg.PageSize)
	}
	if cfg.RequestTimeout != 750*time.Millisecond {
		t.Fatalf("RequestTimeout = %v, want 750ms", cfg.RequestTimeout)
	}
	if cfg.ReloadInterval != 30*time.Second {
		t.Fatalf("ReloadInterval = %v, want 30s", cfg.ReloadInterval)
	}
	if cfg.LogDir != filepath.Join(home, "envlogs") {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, filepath.Join(home, "envlogs"))
	}
}

func TestLoad_InvalidEnvironmentFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROSTER_PAGE_SIZE", "lots")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatalf("Load returned nil error, want environment error")
	}
	if !strings.Contains(err.Error(), "parse environment") {
		t.Fatalf("Load error = %q, want it to mention parse environment", err.Error())
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `api_url = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidDurationFails(t *testing.T) {
	path := writeConfig(t, `request_timeout = "soon"`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "request_timeout") {
		t.Fatalf("Load error = %v, want request_timeout parse error", err)
	}
}

func TestLoad_RejectsNegativePageSize(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, `page_size = -3`)
	if _, err := Load(path); err == nil {
		t.Fatalf("Load returned nil error, want validation error")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestInfoLogPath_DefaultsWhenLogDirEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var cfg Config
	got := cfg.InfoLogPath()
	if !strings.HasPrefix(got, home) {
		t.Fatalf("InfoLogPath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/roster.INFO")) {
		t.Fatalf("InfoLogPath = %q, want it to end with /roster.INFO", got)
	}
}
