package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeConfig(t, `{
		"version": "/v1",
		"shard": {"hostname": "127.0.0.1", "port": "3010"},
		"coordinator": {"hostname": "127.0.0.1", "port": "9000", "heartbeatSeconds": 5, "stalenessSeconds": 12}
	}`)

	require.NoError(t, Load(path))
	assert.Equal(t, "/v1", Config.Version)
	assert.Equal(t, "127.0.0.1:3010", Config.Shard.Address())
	assert.Equal(t, "127.0.0.1:9000", Config.Coordinator.Address())
	assert.Equal(t, 5, Config.Coordinator.HeartbeatSeconds)
	assert.Equal(t, 12, Config.Coordinator.StalenessSeconds)
}

func TestLoadRejectsZeroHeartbeat(t *testing.T) {
	path := writeConfig(t, `{
		"shard": {"hostname": "127.0.0.1", "port": "3010"},
		"coordinator": {"hostname": "127.0.0.1", "port": "9000", "stalenessSeconds": 12}
	}`)

	assert.Error(t, Load(path))
}

func TestLoadRejectsWindowNotExceedingHeartbeat(t *testing.T) {
	path := writeConfig(t, `{
		"shard": {"hostname": "127.0.0.1", "port": "3010"},
		"coordinator": {"hostname": "127.0.0.1", "port": "9000", "heartbeatSeconds": 10, "stalenessSeconds": 10}
	}`)

	assert.Error(t, Load(path))
}

func TestLoadMissingFile(t *testing.T) {
	assert.Error(t, Load(filepath.Join(t.TempDir(), "missing.json")))
}
