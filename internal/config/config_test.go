package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSpawnServer(t *testing.T) {
	cfg := DefaultSpawnServer()

	assert.Equal(t, 2000, cfg.Spawn.Radius)
	assert.Equal(t, 20, cfg.Spawn.CandidateCount)
	assert.Equal(t, 500, cfg.Spawn.FriendBiasRadius)
	assert.Equal(t, 5, cfg.Spawn.MaxFriendLookups)
	assert.Equal(t, 300*time.Second, cfg.Spawn.ReservationTTL)
	assert.InDelta(t, 1.0, cfg.Spawn.Weights.Sum(), 1e-12)
	assert.NoError(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db.local", Port: 5433,
		User: "u", Password: "pw", DBName: "spawns", SSLMode: "require",
	}

	assert.Equal(t, "postgres://u:pw@db.local:5433/spawns?sslmode=require", d.DSN())
}

func TestLoadSpawnServer(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadSpawnServer(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultSpawnServer(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "spawnserver.yaml")
		data := []byte("port: 9090\nspawn:\n  radius: 4000\n")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		cfg, err := LoadSpawnServer(path)
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, 4000, cfg.Spawn.Radius)
		assert.Equal(t, 20, cfg.Spawn.CandidateCount, "untouched keys keep defaults")
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: [not a port"), 0o644))

		_, err := LoadSpawnServer(path)
		assert.Error(t, err)
	})
}

func TestSpawnServer_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SpawnServer)
	}{
		{name: "zero radius", mutate: func(c *SpawnServer) { c.Spawn.Radius = 0 }},
		{name: "zero candidates", mutate: func(c *SpawnServer) { c.Spawn.CandidateCount = 0 }},
		{name: "zero bias radius", mutate: func(c *SpawnServer) { c.Spawn.FriendBiasRadius = 0 }},
		{name: "negative friend lookups", mutate: func(c *SpawnServer) { c.Spawn.MaxFriendLookups = -1 }},
		{name: "weights not convex", mutate: func(c *SpawnServer) { c.Spawn.Weights.Density = 0.5 }},
		{name: "zero ttl", mutate: func(c *SpawnServer) { c.Spawn.ReservationTTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSpawnServer()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
