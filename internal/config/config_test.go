package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RENTAL_LOG_FILE", "LOG_LEVEL", "MONGO_URI", "MONGO_DB", "MONGO_COLLECTION",
		"MQTT_BROKER", "MQTT_CLIENT_ID", "MQTT_TOPIC", "SIM_FLEET_SIZE", "SIM_STEPS", "SIM_SEED",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "log.txt", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Mongo.URI)
	assert.Equal(t, "fleet", cfg.Mongo.Database)
	assert.Equal(t, "rentals", cfg.Mongo.Collection)
	assert.Empty(t, cfg.MQTT.Broker)
	assert.Equal(t, "fleet-rental", cfg.MQTT.ClientID)
	assert.Equal(t, "fleet/rentals", cfg.MQTT.Topic)
	assert.Equal(t, 10, cfg.Sim.FleetSize)
	assert.Equal(t, 50, cfg.Sim.Steps)
	assert.Equal(t, int64(0), cfg.Sim.Seed)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("RENTAL_LOG_FILE", "/tmp/rental.log")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MQTT_BROKER", "tcp://localhost:1883")
	t.Setenv("SIM_FLEET_SIZE", "3")
	t.Setenv("SIM_STEPS", "not-a-number")
	t.Setenv("SIM_SEED", "42")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "/tmp/rental.log", cfg.LogFile)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "tcp://localhost:1883", cfg.MQTT.Broker)
	assert.Equal(t, 3, cfg.Sim.FleetSize)
	assert.Equal(t, 50, cfg.Sim.Steps)
	assert.Equal(t, int64(42), cfg.Sim.Seed)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), ".env")
	content := "MQTT_TOPIC=rentals/test\nLOG_LEVEL=debug\nSIM_STEPS=7\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := Load(path)
	assert.Equal(t, "rentals/test", cfg.MQTT.Topic)
	assert.Equal(t, 7, cfg.Sim.Steps)
	// Existing environment wins over the file.
	assert.Equal(t, "warn", cfg.LogLevel)
}
