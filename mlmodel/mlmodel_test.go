package mlmodel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClient(url, time.Second, 200*time.Millisecond, nil)
}

func TestPredictSuccess(t *testing.T) {
	var got PredictionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"risk_score": 4.5,
			"prediction_source": "ML",
			"explanation": ["Due to High severity"],
			"requirements": {"food_packets": 250, "water_liters": 500, "ambulances_required": 1}
		}`))
	}))
	defer srv.Close()

	in := PredictionRequest{DisasterType: "FLOOD", Severity: "HIGH", Urgency: "Immediate", AffectedCount: 100, InjuredCount: 4, Latitude: 9.9, Longitude: 76.2}
	resp, err := newTestClient(srv.URL).Predict(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, in, got)
	require.NotNil(t, resp.RiskScore)
	assert.InDelta(t, 4.5, *resp.RiskScore, 0.0001)
	assert.Equal(t, "ML", resp.PredictionSource)
	assert.Equal(t, []string{"Due to High severity"}, resp.Explanation)
	require.NotNil(t, resp.Requirements)
	assert.Equal(t, 250, resp.Requirements.FoodPackets)
	assert.False(t, resp.Requirements.IsEmpty())
}

func TestPredictFailuresAreUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"requirements": "lots"`))
			},
		},
		{
			name: "read timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(2 * time.Second):
				case <-r.Context().Done():
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			resp, err := newTestClient(srv.URL).Predict(context.Background(), PredictionRequest{})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestPredictUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).Predict(context.Background(), PredictionRequest{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRequirementsIsEmpty(t *testing.T) {
	var nilReq *Requirements
	assert.True(t, nilReq.IsEmpty())
	assert.True(t, (&Requirements{}).IsEmpty())
	assert.False(t, (&Requirements{VolunteersRequired: 1}).IsEmpty())
}

func TestHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"message": "running"}`))
	}))
	defer srv.Close()

	assert.True(t, newTestClient(srv.URL).Healthy(context.Background()))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()
	assert.False(t, newTestClient(down.URL).Healthy(context.Background()))
}
