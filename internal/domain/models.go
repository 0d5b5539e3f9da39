package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Specifications is a free-form key/value description of an asset, stored as
// a JSON column.
type Specifications map[string]any

func (s Specifications) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

func (s *Specifications) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Specifications", src)
	}
}

type Asset struct {
	ID              int64          `db:"id" json:"id"`
	Name            string         `db:"name" json:"name"`
	Type            string         `db:"type" json:"type"`
	Location        string         `db:"location" json:"location"`
	Status          string         `db:"status" json:"status"`
	HealthScore     float64        `db:"health_score" json:"health_score"`
	LastMaintenance time.Time      `db:"last_maintenance" json:"last_maintenance"`
	NextMaintenance *time.Time     `db:"next_maintenance" json:"next_maintenance"`
	Specifications  Specifications `db:"specifications" json:"specifications"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

type MaintenanceRecord struct {
	ID              int64        `db:"id" json:"id"`
	AssetID         int64        `db:"asset_id" json:"asset_id"`
	MaintenanceType string       `db:"maintenance_type" json:"maintenance_type"`
	Description     string       `db:"description" json:"description"`
	Technician      string       `db:"technician" json:"technician"`
	Cost            float64      `db:"cost" json:"cost"`
	Status          string       `db:"status" json:"status"`
	CreatedAt       time.Time    `db:"created_at" json:"created_at"`
	CompletedAt     *time.Time `db:"completed_at" json:"completed_at"`
}

type SensorData struct {
	ID         int64     `db:"id" json:"id"`
	AssetID    int64     `db:"asset_id" json:"asset_id"`
	SensorType string    `db:"sensor_type" json:"sensor_type"`
	Value      float64   `db:"value" json:"value"`
	Unit       string    `db:"unit" json:"unit"`
	Timestamp  time.Time `db:"timestamp" json:"timestamp"`
	IsAnomaly  bool      `db:"is_anomaly" json:"is_anomaly"`
}

type EnergyConsumption struct {
	ID          int64     `db:"id" json:"id"`
	AssetID     int64     `db:"asset_id" json:"asset_id"`
	Consumption float64   `db:"consumption" json:"consumption"`
	Unit        string    `db:"unit" json:"unit"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
	Cost        float64   `db:"cost" json:"cost"`
	IsOptimized bool      `db:"is_optimized" json:"is_optimized"`
}
