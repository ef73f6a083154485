package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RentalAction names the operation a RentalEvent records.
type RentalAction string

const (
	ActionRent   RentalAction = "rent"
	ActionReturn RentalAction = "return"
	ActionCharge RentalAction = "charge"
)

// RentalEvent is a journal entry for a successful rent, return or charge.
type RentalEvent struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID string             `json:"vehicle_id" bson:"vehicle_id"`
	Kind      string             `json:"kind" bson:"kind"` // "car", "truck", "electric_car"
	Action    RentalAction       `json:"action" bson:"action"`
	Days      int                `json:"days,omitempty" bson:"days,omitempty"`
	Load      float64            `json:"load,omitempty" bson:"load,omitempty"` // in kg
	Damaged   bool               `json:"damaged,omitempty" bson:"damaged,omitempty"`
	Amount    float64            `json:"amount" bson:"amount"` // cost, penalty, or new charge in kWh
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// IsValidAction checks if an action is known.
func IsValidAction(action RentalAction) bool {
	switch action {
	case ActionRent, ActionReturn, ActionCharge:
		return true
	default:
		return false
	}
}
