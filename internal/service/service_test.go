package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predictive-maintenance-api/internal/ml"
)

type stubDetector struct {
	verdict bool
}

func (d stubDetector) Detect(ml.SensorReading) (bool, error) {
	return d.verdict, nil
}

type recordingAlerter struct {
	calls []int64
}

func (a *recordingAlerter) SendAnomalyAlert(assetID int64, sensorType string, value float64) error {
	a.calls = append(a.calls, assetID)
	return nil
}

func setup(t *testing.T, detector ml.AnomalyDetector, alerter Alerter) (*Services, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(sqlx.NewDb(db, "sqlmock"), detector, alerter), mock
}

func TestFromMQTT_PersistsReading(t *testing.T) {
	svcs, mock := setup(t, stubDetector{verdict: false}, nil)

	ts := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO sensor_data`).
		WithArgs(int64(1), "vibration", 12.3, "mm/s", ts, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	payload := []byte(`{"asset_id":1,"sensor_type":"vibration","value":12.3,"unit":"mm/s","timestamp":"2026-08-28T09:30:00Z"}`)
	err := svcs.Readings.FromMQTT("sensors/readings", payload)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFromMQTT_AnomalyFlaggedAndAlerted(t *testing.T) {
	alerter := &recordingAlerter{}
	svcs, mock := setup(t, stubDetector{verdict: true}, alerter)

	mock.ExpectQuery(`INSERT INTO sensor_data`).
		WithArgs(int64(3), "temperature", 95.0, "C", sqlmock.AnyArg(), true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

	payload := []byte(`{"asset_id":3,"sensor_type":"temperature","value":95.0,"unit":"C"}`)
	err := svcs.Readings.FromMQTT("sensors/readings", payload)

	require.NoError(t, err)
	assert.Equal(t, []int64{3}, alerter.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFromMQTT_NoAlertWhenNormal(t *testing.T) {
	alerter := &recordingAlerter{}
	svcs, mock := setup(t, stubDetector{verdict: false}, alerter)

	mock.ExpectQuery(`INSERT INTO sensor_data`).
		WithArgs(int64(1), "vibration", 2.0, "mm/s", sqlmock.AnyArg(), false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	payload := []byte(`{"asset_id":1,"sensor_type":"vibration","value":2.0,"unit":"mm/s"}`)
	err := svcs.Readings.FromMQTT("sensors/readings", payload)

	require.NoError(t, err)
	assert.Empty(t, alerter.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFromMQTT_MalformedPayload(t *testing.T) {
	svcs, mock := setup(t, stubDetector{}, nil)

	err := svcs.Readings.FromMQTT("sensors/readings", []byte(`not json`))

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "nothing persisted on bad payload")
}
