package db

import (
	"context"
	"fmt"
	"time"

	"github.com/ukydev/fleet-rental/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo connects to MongoDB at uri and verifies the connection.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri is empty")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	// Ping to verify connection
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// MongoCollection wraps a MongoDB collection holding the rental journal.
type MongoCollection struct {
	Collection *mongo.Collection
}

// NewMongoCollection returns the journal collection of database db.
func NewMongoCollection(client *mongo.Client, db, collection string) *MongoCollection {
	return &MongoCollection{Collection: client.Database(db).Collection(collection)}
}

// InsertRentalEvent inserts a journal entry, assigning an ID and timestamp when missing.
func (c *MongoCollection) InsertRentalEvent(ctx context.Context, event models.RentalEvent) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	_, err := c.Collection.InsertOne(ctx, event)
	return err
}

// Record implements the console journal sink.
func (c *MongoCollection) Record(ctx context.Context, event models.RentalEvent) error {
	return c.InsertRentalEvent(ctx, event)
}

type mongoRentalCursor struct {
	cursor *mongo.Cursor
}

// All retrieves all results from the cursor.
func (m *mongoRentalCursor) All(ctx context.Context, out interface{}) error {
	return m.cursor.All(ctx, out)
}

func (m *mongoRentalCursor) Close(ctx context.Context) error {
	return m.cursor.Close(ctx)
}

// FindRentalEvents queries journal entries from the collection.
func (c *MongoCollection) FindRentalEvents(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (RentalCursor, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoRentalCursor{cursor: cursor}, nil
}

// EventsForVehicle returns the journal of one vehicle, oldest first.
func (c *MongoCollection) EventsForVehicle(ctx context.Context, vehicleID string) ([]models.RentalEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := c.FindRentalEvents(ctx, bson.M{"vehicle_id": vehicleID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.RentalEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteAll deletes every journal entry from the collection.
func (c *MongoCollection) DeleteAll(ctx context.Context) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := c.Collection.DeleteMany(ctx, bson.M{})
	return err
}
