package repository

import (
	"github.com/jmoiron/sqlx"

	"predictive-maintenance-api/internal/domain"
)

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

// CreateAsset inserts the client-supplied fields and fills in the
// server-assigned id and timestamps on the passed asset.
func (r *Repos) CreateAsset(a *domain.Asset) error {
	return r.db.QueryRowx(
		`INSERT INTO assets (name, type, location, status, health_score, specifications)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, last_maintenance, created_at, updated_at`,
		a.Name, a.Type, a.Location, a.Status, a.HealthScore, a.Specifications,
	).Scan(&a.ID, &a.LastMaintenance, &a.CreatedAt, &a.UpdatedAt)
}

// GetAsset returns sql.ErrNoRows (wrapped by sqlx.Get) when no asset matches.
func (r *Repos) GetAsset(id int64) (*domain.Asset, error) {
	var a domain.Asset
	err := r.db.Get(&a,
		`SELECT id, name, type, location, status, health_score, last_maintenance,
		        next_maintenance, specifications, created_at, updated_at
		 FROM assets WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repos) ListAssets(skip, limit int) ([]domain.Asset, error) {
	out := []domain.Asset{}
	err := r.db.Select(&out,
		`SELECT id, name, type, location, status, health_score, last_maintenance,
		        next_maintenance, specifications, created_at, updated_at
		 FROM assets ORDER BY id OFFSET $1 LIMIT $2`, skip, limit)
	return out, err
}

func (r *Repos) InsertMaintenanceRecord(m *domain.MaintenanceRecord) error {
	return r.db.QueryRowx(
		`INSERT INTO maintenance_records (asset_id, maintenance_type, description, technician, cost, status, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		m.AssetID, m.MaintenanceType, m.Description, m.Technician, m.Cost, m.Status, m.CompletedAt,
	).Scan(&m.ID, &m.CreatedAt)
}

func (r *Repos) InsertSensorData(sd *domain.SensorData) error {
	return r.db.QueryRowx(
		`INSERT INTO sensor_data (asset_id, sensor_type, value, unit, timestamp, is_anomaly)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		sd.AssetID, sd.SensorType, sd.Value, sd.Unit, sd.Timestamp, sd.IsAnomaly,
	).Scan(&sd.ID)
}

func (r *Repos) InsertEnergyConsumption(ec *domain.EnergyConsumption) error {
	return r.db.QueryRowx(
		`INSERT INTO energy_consumption (asset_id, consumption, unit, timestamp, cost, is_optimized)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		ec.AssetID, ec.Consumption, ec.Unit, ec.Timestamp, ec.Cost, ec.IsOptimized,
	).Scan(&ec.ID)
}
