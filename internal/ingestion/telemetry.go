// Package ingestion consumes truck telemetry from the MQTT broker, persists
// the latest position and fans it out to the live-tracking hub.
package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainTruck "fleetops/internal/domain/truck"
	"fleetops/internal/logger"
	"fleetops/internal/tracking"
	"fleetops/pkg/mqtt"
)

// Telemetry is the payload trucks publish on the telemetry topic.
type Telemetry struct {
	TruckID    uuid.UUID `json:"truck_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	SpeedKph   float64   `json:"speed_kph"`
	OdometerKm int       `json:"odometer_km"`
	RecordedAt time.Time `json:"recorded_at"`
}

func (t *Telemetry) validate() error {
	if t.TruckID == uuid.Nil {
		return fmt.Errorf("missing truck_id")
	}
	if t.Latitude < -90 || t.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range", t.Latitude)
	}
	if t.Longitude < -180 || t.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range", t.Longitude)
	}
	if t.OdometerKm < 0 {
		return fmt.Errorf("negative odometer reading %d", t.OdometerKm)
	}
	return nil
}

// Consumer subscribes to the telemetry topic and processes readings.
type Consumer struct {
	client    *mqtt.Client
	truckRepo domainTruck.Repository
	hub       *tracking.Hub
	topic     string
	qos       byte
}

func NewConsumer(client *mqtt.Client, truckRepo domainTruck.Repository, hub *tracking.Hub, topic string, qos byte) *Consumer {
	return &Consumer{
		client:    client,
		truckRepo: truckRepo,
		hub:       hub,
		topic:     topic,
		qos:       qos,
	}
}

// Start connects to the broker and subscribes to the telemetry topic.
func (c *Consumer) Start() error {
	if err := c.client.Connect(); err != nil {
		return err
	}
	return c.client.Subscribe(c.topic, c.qos, c.handleMessage)
}

// Stop unsubscribes and disconnects from the broker.
func (c *Consumer) Stop() {
	if err := c.client.Unsubscribe(c.topic); err != nil {
		logger.Warn("Failed to unsubscribe from telemetry topic", zap.Error(err))
	}
	c.client.Disconnect()
}

func (c *Consumer) handleMessage(topic string, payload []byte) {
	var reading Telemetry
	if err := json.Unmarshal(payload, &reading); err != nil {
		logger.Warn("Malformed telemetry payload",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return
	}

	if err := reading.validate(); err != nil {
		logger.Warn("Invalid telemetry reading",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return
	}

	if reading.RecordedAt.IsZero() {
		reading.RecordedAt = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := c.truckRepo.UpdatePosition(ctx, reading.TruckID, reading.Latitude, reading.Longitude, reading.OdometerKm, reading.RecordedAt)
	if err != nil {
		logger.Error("Failed to persist truck position",
			zap.String("truck_id", reading.TruckID.String()),
			zap.Error(err),
		)
		return
	}

	c.hub.Publish(&tracking.PositionUpdate{
		TruckID:    reading.TruckID.String(),
		Latitude:   reading.Latitude,
		Longitude:  reading.Longitude,
		SpeedKph:   reading.SpeedKph,
		OdometerKm: reading.OdometerKm,
		RecordedAt: reading.RecordedAt,
	})
}
