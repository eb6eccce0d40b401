package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"fleetops/internal/mocks"
	"fleetops/internal/tracking"
)

func TestHandleMessagePersistsPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	truckRepo := mocks.NewMockTruckRepository(ctrl)
	consumer := NewConsumer(nil, truckRepo, tracking.NewHub(), "fleet/telemetry", 1)

	truckID := uuid.New()
	recordedAt := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	payload, _ := json.Marshal(Telemetry{
		TruckID:    truckID,
		Latitude:   21.0285,
		Longitude:  105.8542,
		SpeedKph:   62.5,
		OdometerKm: 120345,
		RecordedAt: recordedAt,
	})

	truckRepo.EXPECT().UpdatePosition(gomock.Any(), truckID, 21.0285, 105.8542, 120345, recordedAt).Return(nil)

	consumer.handleMessage("fleet/telemetry", payload)
}

// Malformed or invalid readings are dropped without touching the store.
func TestHandleMessageDropsInvalidReadings(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "{{"},
		{"missing truck id", `{"latitude": 21.0, "longitude": 105.8}`},
		{"latitude out of range", `{"truck_id": "` + uuid.NewString() + `", "latitude": 91.0, "longitude": 0}`},
		{"longitude out of range", `{"truck_id": "` + uuid.NewString() + `", "latitude": 0, "longitude": -181.0}`},
		{"negative odometer", `{"truck_id": "` + uuid.NewString() + `", "latitude": 0, "longitude": 0, "odometer_km": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			truckRepo := mocks.NewMockTruckRepository(ctrl)
			consumer := NewConsumer(nil, truckRepo, tracking.NewHub(), "fleet/telemetry", 1)

			consumer.handleMessage("fleet/telemetry", []byte(tt.payload))
		})
	}
}

func TestHandleMessageDefaultsRecordedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	truckRepo := mocks.NewMockTruckRepository(ctrl)
	consumer := NewConsumer(nil, truckRepo, tracking.NewHub(), "fleet/telemetry", 1)

	truckID := uuid.New()
	payload := `{"truck_id": "` + truckID.String() + `", "latitude": 10.8, "longitude": 106.6}`

	truckRepo.EXPECT().UpdatePosition(gomock.Any(), truckID, 10.8, 106.6, 0, gomock.Any()).DoAndReturn(
		func(_ any, _ uuid.UUID, _, _ float64, _ int, recordedAt time.Time) error {
			if recordedAt.IsZero() {
				t.Error("recorded_at not defaulted")
			}
			return nil
		})

	consumer.handleMessage("fleet/telemetry", []byte(payload))
}
