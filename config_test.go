package filedrive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
default: local
disks:
  local:
    driver: local
    root: /var/lib/app/files
  scratch:
    driver: memory
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Default)
	assert.Len(t, cfg.Disks, 2)
	assert.Equal(t, DriverLocal, cfg.Disks["local"].Driver)
	assert.Equal(t, "/var/lib/app/files", cfg.Disks["local"].Root)
	assert.Equal(t, DriverMemory, cfg.Disks["scratch"].Driver)
}

func TestLoadConfig_ExpandsEnvVars(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/data")

	path := writeConfigFile(t, `
disks:
  local:
    driver: local
    root: $(DATA_DIR)/files
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/data/files", cfg.Disks["local"].Root)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "no disks",
			cfg:     Config{},
			wantErr: "no disks configured",
		},
		{
			name: "default names unknown disk",
			cfg: Config{
				Default: "cloud",
				Disks:   map[string]DiskConfig{"local": {Driver: DriverLocal, Root: "/data"}},
			},
			wantErr: `default disk "cloud" is not configured`,
		},
		{
			name: "local disk without root",
			cfg: Config{
				Disks: map[string]DiskConfig{"local": {Driver: DriverLocal}},
			},
			wantErr: "local driver requires a root",
		},
		{
			name: "unknown driver",
			cfg: Config{
				Disks: map[string]DiskConfig{"weird": {Driver: "s3"}},
			},
			wantErr: `unknown driver "s3"`,
		},
		{
			name: "valid",
			cfg: Config{
				Default: "mem",
				Disks:   map[string]DiskConfig{"mem": {Driver: DriverMemory}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
