package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the rental console and simulator.
type Config struct {
	LogFile  string
	LogLevel string
	Mongo    MongoConfig
	MQTT     MQTTConfig
	Sim      SimConfig
}

// MongoConfig configures the optional rental journal. An empty URI disables it.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MQTTConfig configures the optional event publisher. An empty broker disables it.
type MQTTConfig struct {
	Broker   string
	ClientID string
	Topic    string
}

// SimConfig holds simulator settings.
type SimConfig struct {
	FleetSize int
	Steps     int
	Seed      int64
}

// Load reads an optional .env file and then the environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) *Config {
	// Missing .env files are fine.
	_ = godotenv.Load(files...)

	return &Config{
		LogFile:  getEnv("RENTAL_LOG_FILE", "log.txt"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Mongo: MongoConfig{
			URI:        os.Getenv("MONGO_URI"),
			Database:   getEnv("MONGO_DB", "fleet"),
			Collection: getEnv("MONGO_COLLECTION", "rentals"),
		},
		MQTT: MQTTConfig{
			Broker:   os.Getenv("MQTT_BROKER"),
			ClientID: getEnv("MQTT_CLIENT_ID", "fleet-rental"),
			Topic:    getEnv("MQTT_TOPIC", "fleet/rentals"),
		},
		Sim: SimConfig{
			FleetSize: getIntEnv("SIM_FLEET_SIZE", 10),
			Steps:     getIntEnv("SIM_STEPS", 50),
			Seed:      int64(getIntEnv("SIM_SEED", 0)),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			return n
		}
	}
	return defaultValue
}
