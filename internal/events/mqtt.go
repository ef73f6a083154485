package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/ukydev/fleet-rental/internal/models"
)

var ErrPublishTimeout = errors.New("mqtt publish timed out")

const publishTimeout = 5 * time.Second

// Client is the subset of the paho client used by MQTTPublisher.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// MQTTPublisher publishes rental events as JSON to <topic>/<vehicle_id>.
type MQTTPublisher struct {
	client Client
	topic  string
}

// NewMQTTPublisher wraps an already connected client.
func NewMQTTPublisher(client Client, topic string) *MQTTPublisher {
	return &MQTTPublisher{client: client, topic: topic}
}

// Connect dials broker and returns a publisher for topic.
func Connect(broker, clientID, topic string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect error: %w", err)
	}
	return NewMQTTPublisher(client, topic), nil
}

// Topic returns the topic an event for vehicleID is published on.
func (p *MQTTPublisher) Topic(vehicleID string) string {
	return p.topic + "/" + vehicleID
}

// Record publishes event with QoS 1 and waits for the broker acknowledgement.
func (p *MQTTPublisher) Record(ctx context.Context, event models.RentalEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal rental event: %w", err)
	}

	token := p.client.Publish(p.Topic(event.VehicleID), 1, false, payload)
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(publishTimeout):
		return ErrPublishTimeout
	}
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() error {
	p.client.Disconnect(250)
	return nil
}
