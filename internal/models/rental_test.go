package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsValidAction(t *testing.T) {
	tests := []struct {
		name     string
		action   RentalAction
		expected bool
	}{
		{"rent", ActionRent, true},
		{"return", ActionReturn, true},
		{"charge", ActionCharge, true},
		{"invalid action", "repair", false},
		{"empty action", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidAction(tt.action))
		})
	}
}

func TestRentalEvent_OmitsUnsetFields(t *testing.T) {
	event := RentalEvent{
		VehicleID: "E1",
		Kind:      "electric_car",
		Action:    ActionCharge,
		Amount:    25,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "days")
	assert.NotContains(t, fields, "load")
	assert.NotContains(t, fields, "damaged")
	assert.Equal(t, "charge", fields["action"])

	raw, err := bson.Marshal(event)
	require.NoError(t, err)
	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.NotContains(t, doc, "_id")
	assert.NotContains(t, doc, "days")
	assert.Equal(t, "E1", doc["vehicle_id"])
}

func TestRentalEvent_BSONID(t *testing.T) {
	event := RentalEvent{ID: primitive.NewObjectID(), VehicleID: "C1", Action: ActionRent}
	raw, err := bson.Marshal(event)
	require.NoError(t, err)

	var out RentalEvent
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, event.ID, out.ID)
	assert.Equal(t, ActionRent, out.Action)
}
