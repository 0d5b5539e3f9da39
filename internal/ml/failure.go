package ml

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"

	"github.com/dmitryikh/leaves"
)

var (
	// ErrModelUnavailable means no model artifact was loaded at startup.
	ErrModelUnavailable = errors.New("failure model not loaded")
)

// PredictionInput is the feature vector the failure model was trained on.
// Field order matters: it must match the training columns.
type PredictionInput struct {
	AirTemperature     float64
	ProcessTemperature float64
	RotationalSpeed    float64
	Torque             float64
	ToolWear           float64
}

func (in PredictionInput) features() []float64 {
	return []float64{
		in.AirTemperature,
		in.ProcessTemperature,
		in.RotationalSpeed,
		in.Torque,
		in.ToolWear,
	}
}

type FailurePrediction struct {
	Class       int     `json:"class"`
	Probability float64 `json:"probability"`
}

// FailureModel wraps a pre-trained LightGBM binary classifier. Loaded once at
// process start and safe for concurrent use.
type FailureModel struct {
	ensemble *leaves.Ensemble
}

// LoadFailureModel reads a LightGBM text-format model artifact.
func LoadFailureModel(path string) (*FailureModel, error) {
	ensemble, err := leaves.LGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	return &FailureModel{ensemble: ensemble}, nil
}

// LoadFailureModelBytes parses an artifact already in memory, e.g. one
// downloaded from object storage.
func LoadFailureModelBytes(data []byte) (*FailureModel, error) {
	ensemble, err := leaves.LGEnsembleFromReader(bufio.NewReader(bytes.NewReader(data)), true)
	if err != nil {
		return nil, fmt.Errorf("load model from bytes: %w", err)
	}
	return &FailureModel{ensemble: ensemble}, nil
}

func (m *FailureModel) Predict(in PredictionInput) (FailurePrediction, error) {
	if m == nil || m.ensemble == nil {
		return FailurePrediction{}, ErrModelUnavailable
	}
	if m.ensemble.NFeatures() != len(in.features()) {
		return FailurePrediction{}, fmt.Errorf("model expects %d features, got %d",
			m.ensemble.NFeatures(), len(in.features()))
	}
	p := m.ensemble.PredictSingle(in.features(), 0)
	cls := 0
	if p >= 0.5 {
		cls = 1
	}
	return FailurePrediction{Class: cls, Probability: p}, nil
}
