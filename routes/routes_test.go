package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-idro/logger"
	"go-idro/metrics"
	"go-idro/types"
)

type stubAnalyzer struct{}

func (stubAnalyzer) AnalyzeMission(_ context.Context, missionID string) (*types.ImpactAnalysisReport, error) {
	return &types.ImpactAnalysisReport{MissionID: missionID, CampAnalysisList: []types.CampAnalysisResult{}}, nil
}

type stubChecker struct{}

func (stubChecker) Healthy(context.Context) bool { return false }
func (stubChecker) URL() string                  { return "http://localhost:8000" }

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.SetMLAvailable(false)
	return SetupRouter(Deps{
		Analyzer:  stubAnalyzer{},
		ML:        stubChecker{},
		Gatherer:  reg,
		Log:       logger.NewNop(),
		ClientURL: "https://idro.example.org/",
	})
}

func TestRoutes(t *testing.T) {
	r := newTestEngine(t)

	cases := []struct {
		path     string
		status   int
		contains string
	}{
		{"/", http.StatusOK, "welcome"},
		{"/api/impact-analysis/m1", http.StatusOK, `"missionId":"m1"`},
		{"/api/impact-analysis/m1/brief", http.StatusServiceUnavailable, "not configured"},
		{"/api/ml/health", http.StatusOK, `"available":false`},
		{"/metrics", http.StatusOK, "idro_ml_available 0"},
		{"/api/unknown", http.StatusNotFound, ""},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.Equal(t, tc.status, rec.Code)
			if tc.contains != "" {
				assert.Contains(t, rec.Body.String(), tc.contains)
			}
		})
	}
}

func TestCORSAllowsClientOrigin(t *testing.T) {
	r := newTestEngine(t)

	for _, origin := range []string{"https://idro.example.org", "http://localhost:5173"} {
		t.Run(origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/impact-analysis/m1", nil)
			req.Header.Set("Origin", origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
