package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-rental/internal/config"
	"github.com/ukydev/fleet-rental/internal/console"
	"github.com/ukydev/fleet-rental/internal/db"
	"github.com/ukydev/fleet-rental/internal/events"
	"github.com/ukydev/fleet-rental/internal/logger"
	"github.com/ukydev/fleet-rental/internal/rental"
)

func main() {
	cfg := config.Load()
	log.SetLevel(logger.ParseLevel(cfg.LogLevel))

	ctx := context.Background()

	fileLog, closer, err := logger.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("Failed to open rental log")
	}
	defer closer.Close()

	recorders, cleanup := journalSinks(ctx, cfg)
	defer cleanup()
	manager := rental.NewManager(fileLog)
	menu := console.New(manager, os.Stdin, os.Stdout, log.StandardLogger(), recorders...)

	if err := menu.Run(ctx); err != nil {
		log.WithError(err).Error("Menu stopped")
	}
}

// journalSinks connects the optional Mongo journal and MQTT publisher.
// A sink that cannot be reached is skipped with a warning.
func journalSinks(ctx context.Context, cfg *config.Config) ([]console.Recorder, func()) {
	var (
		recorders []console.Recorder
		closers   []func()
	)

	if cfg.Mongo.URI != "" {
		client, err := db.ConnectMongo(ctx, cfg.Mongo.URI)
		if err != nil {
			log.WithError(err).Warn("Rental journal disabled")
		} else {
			log.WithFields(log.Fields{
				"database":   cfg.Mongo.Database,
				"collection": cfg.Mongo.Collection,
			}).Info("Connected to MongoDB")
			recorders = append(recorders, db.NewMongoCollection(client, cfg.Mongo.Database, cfg.Mongo.Collection))
			closers = append(closers, func() { _ = client.Disconnect(context.Background()) })
		}
	}

	if cfg.MQTT.Broker != "" {
		pub, err := events.Connect(cfg.MQTT.Broker, cfg.MQTT.ClientID, cfg.MQTT.Topic)
		if err != nil {
			log.WithError(err).Warn("Rental event publishing disabled")
		} else {
			log.WithFields(log.Fields{
				"broker": cfg.MQTT.Broker,
				"topic":  cfg.MQTT.Topic,
			}).Info("Connected to MQTT broker")
			recorders = append(recorders, pub)
			closers = append(closers, func() { _ = pub.Close() })
		}
	}

	return recorders, func() {
		for _, c := range closers {
			c()
		}
	}
}
