package service

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"predictive-maintenance-api/internal/domain"
	"predictive-maintenance-api/internal/ml"
	"predictive-maintenance-api/internal/repository"
)

// Alerter publishes anomaly notifications. Nil when cloud services are off.
type Alerter interface {
	SendAnomalyAlert(assetID int64, sensorType string, value float64) error
}

type Services struct {
	Repos    *repository.Repos
	Readings *ReadingService
}

func New(db *sqlx.DB, detector ml.AnomalyDetector, alerter Alerter) *Services {
	repos := repository.New(db)
	return &Services{
		Repos:    repos,
		Readings: &ReadingService{repos: repos, detector: detector, alerter: alerter},
	}
}

type ReadingService struct {
	repos    *repository.Repos
	detector ml.AnomalyDetector
	alerter  Alerter
}

// FromMQTT decodes one sensor-reading message, runs the anomaly detector and
// persists the reading with the verdict recorded at insert time.
func (s *ReadingService) FromMQTT(topic string, payload []byte) error {
	var r struct {
		AssetID    int64     `json:"asset_id"`
		SensorType string    `json:"sensor_type"`
		Value      float64   `json:"value"`
		Unit       string    `json:"unit"`
		Timestamp  time.Time `json:"timestamp"`
	}
	if err := json.Unmarshal(payload, &r); err != nil {
		return err
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now()
	}

	anomaly, err := s.detector.Detect(ml.SensorReading{
		SensorType: r.SensorType,
		Value:      r.Value,
		Unit:       r.Unit,
	})
	if err != nil {
		return err
	}

	sd := &domain.SensorData{
		AssetID:    r.AssetID,
		SensorType: r.SensorType,
		Value:      r.Value,
		Unit:       r.Unit,
		Timestamp:  r.Timestamp,
		IsAnomaly:  anomaly,
	}
	if err := s.repos.InsertSensorData(sd); err != nil {
		return err
	}

	if anomaly && s.alerter != nil {
		if err := s.alerter.SendAnomalyAlert(r.AssetID, r.SensorType, r.Value); err != nil {
			// Alert delivery is best effort; the reading is already stored.
			log.Error().Err(err).Int64("asset_id", r.AssetID).Msg("anomaly alert failed")
		}
	}
	return nil
}
