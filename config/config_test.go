package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ML_API_URL", "ANALYSIS_WORKERS", "ML_CONNECT_TIMEOUT", "ML_READ_TIMEOUT", "ANALYSIS_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8000", cfg.MLBaseURL)
	assert.Equal(t, 5*time.Second, cfg.MLConnectTimeout)
	assert.Equal(t, 30*time.Second, cfg.MLReadTimeout)
	assert.Equal(t, 8, cfg.AnalysisWorkers)
	assert.Zero(t, cfg.AnalysisTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ML_API_URL", "http://ml.internal:9000/")
	t.Setenv("ANALYSIS_WORKERS", "3")
	t.Setenv("ML_READ_TIMEOUT", "45")
	t.Setenv("ANALYSIS_TIMEOUT", "2m")
	t.Setenv("PERSIST_TIMEOUT", "not-a-duration")

	cfg := Load()

	assert.Equal(t, "http://ml.internal:9000", cfg.MLBaseURL)
	assert.Equal(t, 3, cfg.AnalysisWorkers)
	assert.Equal(t, 45*time.Second, cfg.MLReadTimeout)
	assert.Equal(t, 2*time.Minute, cfg.AnalysisTimeout)
	assert.Equal(t, 10*time.Second, cfg.PersistTimeout)
}
