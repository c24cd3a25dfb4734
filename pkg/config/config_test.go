package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gocap "github.com/syndtr/gocapability/capability"

	"nsboot/internal/container"
	"nsboot/internal/idmap"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Empty(t, cfg.Launcher.InitPath)
	assert.Equal(t, []string{"user", "mount", "pid", "uts", "ipc"}, cfg.Container.Namespaces.Names())
	assert.Empty(t, cfg.Container.Capabilities)
	assert.True(t, cfg.Container.Mapping.IsEmpty())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	isolateEnv(t)
	t.Setenv("NSBOOT_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, path, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "built-in defaults (no config file found)", path)
	assert.Equal(t, DefaultConfig.Logging, cfg.Logging)
}

func TestLoadConfig_CompleteConfigFile(t *testing.T) {
	isolateEnv(t)

	configFile := createTestConfigFile(t, `
logging:
  level: DEBUG
  format: json
  output: stdout
launcher:
  initPath: /usr/local/bin/nsboot
container:
  namespaces: [user, mnt, pid]
  capabilities: [CAP_SETUID, setgid]
  mapping:
    uid:
      - {namespaceId: 0, hostId: 1000, length: 1}
    gid:
      - {namespaceId: 0, hostId: 1000, length: 1}
`)
	t.Setenv("NSBOOT_CONFIG_PATH", configFile)

	cfg, path, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, configFile, path)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, "/usr/local/bin/nsboot", cfg.Launcher.InitPath)
	assert.Equal(t, []string{"user", "mount", "pid"}, cfg.Container.Namespaces.Names())
	assert.Equal(t, []string{"CAP_SETGID", "CAP_SETUID"}, cfg.Container.Capabilities.Names())
	assert.Equal(t, idmap.SingleID(1000, 1000), cfg.Container.Mapping)
}

func TestLoadConfig_WithEnvironmentVariables(t *testing.T) {
	isolateEnv(t)

	configFile := createTestConfigFile(t, `
logging:
  level: WARN
container:
  namespaces: [mount]
`)
	t.Setenv("NSBOOT_CONFIG_PATH", configFile)
	t.Setenv("NSBOOT_LOG_LEVEL", "ERROR")
	t.Setenv("NSBOOT_LOG_FORMAT", "json")
	t.Setenv("NSBOOT_INIT_PATH", "/opt/nsboot/nsboot")
	t.Setenv("NSBOOT_NAMESPACES", "user,net,uts")
	t.Setenv("NSBOOT_CAPABILITIES", "CAP_NET_BIND_SERVICE")

	cfg, _, err := LoadConfig()
	require.NoError(t, err)

	// Environment variables override file config
	assert.Equal(t, "ERROR", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/opt/nsboot/nsboot", cfg.Launcher.InitPath)
	assert.Equal(t, []string{"user", "uts", "network"}, cfg.Container.Namespaces.Names())
	assert.Equal(t, []gocap.Cap{gocap.CAP_NET_BIND_SERVICE}, []gocap.Cap(cfg.Container.Capabilities))
}

func TestLoadConfig_BadEnvironmentNames(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown namespace", "NSBOOT_NAMESPACES", "user,time"},
		{"unknown capability", "NSBOOT_CAPABILITIES", "CAP_BOGUS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			t.Setenv("NSBOOT_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
			t.Setenv(tt.key, tt.value)

			_, _, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	isolateEnv(t)
	t.Setenv("NSBOOT_CONFIG_PATH", createTestConfigFile(t, "logging: [not, a, map"))

	_, _, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "TRACE" },
			wantErr: "invalid log level",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "relative init path",
			mutate:  func(c *Config) { c.Launcher.InitPath = "bin/nsboot" },
			wantErr: "must be absolute",
		},
		{
			name: "mapping without user namespace",
			mutate: func(c *Config) {
				c.Container.Namespaces = container.NewNamespaces(container.NamespacePID)
				c.Container.Mapping = idmap.SingleID(1000, 1000)
			},
			wantErr: "user namespace is not a default",
		},
		{
			name: "overlapping mapping",
			mutate: func(c *Config) {
				c.Container.Mapping = idmap.Mapping{
					UID: idmap.Table{{NamespaceStart: 0, HostStart: 1000, Length: 1}, {NamespaceStart: 0, HostStart: 2000, Length: 1}},
					GID: idmap.Table{{NamespaceStart: 0, HostStart: 1000, Length: 1}},
				}
			},
			wantErr: "invalid default mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveToFileAndLoadFromFile(t *testing.T) {
	cfg := DefaultConfig
	cfg.Logging.Level = "DEBUG"
	cfg.Container.Mapping = idmap.SingleID(1000, 100)

	path := filepath.Join(t.TempDir(), "nsboot.yaml")
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", loaded.Logging.Level)
	assert.Equal(t, cfg.Container.Namespaces.Names(), loaded.Container.Namespaces.Names())
	assert.Equal(t, cfg.Container.Mapping, loaded.Container.Mapping)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

// Helper functions

func createTestConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nsboot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// isolateEnv clears every override so the host environment cannot leak into
// a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NSBOOT_LOG_LEVEL", "NSBOOT_LOG_FORMAT", "NSBOOT_LOG_OUTPUT",
		"NSBOOT_INIT_PATH", "NSBOOT_NAMESPACES",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("NSBOOT_CAPABILITIES", "")
	os.Unsetenv("NSBOOT_CAPABILITIES")
}
