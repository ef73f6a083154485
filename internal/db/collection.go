package db

import (
	"context"

	"github.com/ukydev/fleet-rental/internal/models"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RentalCollection defines the interface for rental journal operations.
type RentalCollection interface {
	InsertRentalEvent(ctx context.Context, event models.RentalEvent) error
	FindRentalEvents(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (RentalCursor, error)
}

// RentalCursor defines the interface for rental journal cursor operations.
type RentalCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}
