package ml

import "time"

// The API layer depends only on these four single-operation interfaces, so a
// real model can replace a stub without touching routing code.

type FailurePredictor interface {
	Predict(in PredictionInput) (FailurePrediction, error)
}

type MaintenancePredictor interface {
	Predict(in AssetSnapshot) (MaintenanceForecast, error)
}

type AnomalyDetector interface {
	Detect(in SensorReading) (bool, error)
}

type EnergyOptimizer interface {
	Optimize(in EnergyReading) (OptimizationResult, error)
}

// AssetSnapshot is the loosely typed input to maintenance prediction. The
// reading and history entries are open-ended on purpose: the model behind the
// facade has not committed to a feature schema yet.
type AssetSnapshot struct {
	AssetID            int64                `json:"asset_id"`
	SensorReadings     []map[string]float64 `json:"sensor_readings"`
	MaintenanceHistory []map[string]any     `json:"maintenance_history"`
	CurrentStatus      string               `json:"current_status"`
}

type MaintenanceForecast struct {
	PredictedFailureTime   int     `json:"predicted_failure_time"` // days until predicted failure
	Confidence             float64 `json:"confidence"`
	RecommendedMaintenance string  `json:"recommended_maintenance"`
}

type SensorReading struct {
	SensorType string  `json:"sensor_type"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
}

type EnergyReading struct {
	AssetID     int64     `json:"asset_id"`
	Consumption float64   `json:"consumption"`
	Unit        string    `json:"unit"`
	Cost        float64   `json:"cost"`
	Timestamp   time.Time `json:"timestamp"`
}

type OptimizationResult struct {
	OptimizedConsumption float64 `json:"optimized_consumption"`
	EstimatedSavings     float64 `json:"estimated_savings"`
	Recommendation       string  `json:"recommendation"`
}

// MaintenanceModel is not yet implemented: it returns a fixed placeholder
// forecast regardless of input.
type MaintenanceModel struct{}

func (MaintenanceModel) Predict(AssetSnapshot) (MaintenanceForecast, error) {
	return MaintenanceForecast{
		PredictedFailureTime:   5,
		Confidence:             0.85,
		RecommendedMaintenance: "Schedule maintenance within next 7 days",
	}, nil
}

// AnomalyModel is not yet implemented: every reading passes as normal.
type AnomalyModel struct{}

func (AnomalyModel) Detect(SensorReading) (bool, error) {
	return false, nil
}

// EnergyModel is not yet implemented: it echoes the reading back with a fixed
// savings estimate.
type EnergyModel struct{}

func (EnergyModel) Optimize(in EnergyReading) (OptimizationResult, error) {
	return OptimizationResult{
		OptimizedConsumption: in.Consumption,
		EstimatedSavings:     0.0,
		Recommendation:       "No optimization model available yet",
	}, nil
}
