package http

import (
	"time"

	"predictive-maintenance-api/internal/domain"
	"predictive-maintenance-api/internal/ml"
)

// Transfer schemas. Create shapes use pointer fields so missing keys can be
// told apart from zero values; validation is presence and primitive type
// only, no business rules.

type predictionRequest struct {
	AirTemperature     *float64 `json:"air_temperature"`
	ProcessTemperature *float64 `json:"process_temperature"`
	RotationalSpeed    *float64 `json:"rotational_speed"`
	Torque             *float64 `json:"torque"`
	ToolWear           *float64 `json:"tool_wear"`
}

func (r predictionRequest) validate() (ml.PredictionInput, string) {
	switch {
	case r.AirTemperature == nil:
		return ml.PredictionInput{}, "air_temperature is required"
	case r.ProcessTemperature == nil:
		return ml.PredictionInput{}, "process_temperature is required"
	case r.RotationalSpeed == nil:
		return ml.PredictionInput{}, "rotational_speed is required"
	case r.Torque == nil:
		return ml.PredictionInput{}, "torque is required"
	case r.ToolWear == nil:
		return ml.PredictionInput{}, "tool_wear is required"
	}
	return ml.PredictionInput{
		AirTemperature:     *r.AirTemperature,
		ProcessTemperature: *r.ProcessTemperature,
		RotationalSpeed:    *r.RotationalSpeed,
		Torque:             *r.Torque,
		ToolWear:           *r.ToolWear,
	}, ""
}

type assetCreateRequest struct {
	Name           *string         `json:"name"`
	Type           *string         `json:"type"`
	Location       *string         `json:"location"`
	Status         *string         `json:"status"`
	HealthScore    *float64        `json:"health_score"`
	Specifications *map[string]any `json:"specifications"`
}

func (r assetCreateRequest) validate() (*domain.Asset, string) {
	switch {
	case r.Name == nil:
		return nil, "name is required"
	case r.Type == nil:
		return nil, "type is required"
	case r.Location == nil:
		return nil, "location is required"
	case r.Status == nil:
		return nil, "status is required"
	case r.HealthScore == nil:
		return nil, "health_score is required"
	case r.Specifications == nil:
		return nil, "specifications is required"
	}
	return &domain.Asset{
		Name:           *r.Name,
		Type:           *r.Type,
		Location:       *r.Location,
		Status:         *r.Status,
		HealthScore:    *r.HealthScore,
		Specifications: domain.Specifications(*r.Specifications),
	}, ""
}

type assetSnapshotRequest struct {
	AssetID            *int64                `json:"asset_id"`
	SensorReadings     *[]map[string]float64 `json:"sensor_readings"`
	MaintenanceHistory *[]map[string]any     `json:"maintenance_history"`
	CurrentStatus      *string               `json:"current_status"`
}

func (r assetSnapshotRequest) validate() (ml.AssetSnapshot, string) {
	switch {
	case r.AssetID == nil:
		return ml.AssetSnapshot{}, "asset_id is required"
	case r.SensorReadings == nil:
		return ml.AssetSnapshot{}, "sensor_readings is required"
	case r.MaintenanceHistory == nil:
		return ml.AssetSnapshot{}, "maintenance_history is required"
	case r.CurrentStatus == nil:
		return ml.AssetSnapshot{}, "current_status is required"
	}
	return ml.AssetSnapshot{
		AssetID:            *r.AssetID,
		SensorReadings:     *r.SensorReadings,
		MaintenanceHistory: *r.MaintenanceHistory,
		CurrentStatus:      *r.CurrentStatus,
	}, ""
}

type sensorReadingRequest struct {
	SensorType *string  `json:"sensor_type"`
	Value      *float64 `json:"value"`
	Unit       *string  `json:"unit"`
}

func (r sensorReadingRequest) validate() (ml.SensorReading, string) {
	switch {
	case r.SensorType == nil:
		return ml.SensorReading{}, "sensor_type is required"
	case r.Value == nil:
		return ml.SensorReading{}, "value is required"
	case r.Unit == nil:
		return ml.SensorReading{}, "unit is required"
	}
	return ml.SensorReading{SensorType: *r.SensorType, Value: *r.Value, Unit: *r.Unit}, ""
}

type energyReadingRequest struct {
	AssetID     *int64     `json:"asset_id"`
	Consumption *float64   `json:"consumption"`
	Unit        *string    `json:"unit"`
	Cost        *float64   `json:"cost"`
	Timestamp   *time.Time `json:"timestamp"`
}

func (r energyReadingRequest) validate() (ml.EnergyReading, string) {
	switch {
	case r.AssetID == nil:
		return ml.EnergyReading{}, "asset_id is required"
	case r.Consumption == nil:
		return ml.EnergyReading{}, "consumption is required"
	case r.Unit == nil:
		return ml.EnergyReading{}, "unit is required"
	case r.Cost == nil:
		return ml.EnergyReading{}, "cost is required"
	case r.Timestamp == nil:
		return ml.EnergyReading{}, "timestamp is required"
	}
	return ml.EnergyReading{
		AssetID:     *r.AssetID,
		Consumption: *r.Consumption,
		Unit:        *r.Unit,
		Cost:        *r.Cost,
		Timestamp:   *r.Timestamp,
	}, ""
}
