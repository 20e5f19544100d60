package mlmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go-idro/metrics"
)

// ErrUnavailable wraps every failure of a prediction call: network errors, timeouts,
// non-2xx responses and payloads that do not decode.
var ErrUnavailable = errors.New("prediction service unavailable")

const maxResponseBytes = 1 << 20

type PredictionRequest struct {
	DisasterType  string  `json:"disaster_type"`
	Severity      string  `json:"severity"`
	Urgency       string  `json:"urgency"`
	AffectedCount int     `json:"affected_count"`
	InjuredCount  int     `json:"injured_count"`
	MissingCount  int     `json:"missing_count"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

type Requirements struct {
	FoodPackets        int `json:"food_packets"`
	WaterLiters        int `json:"water_liters"`
	MedicalKits        int `json:"medical_kits"`
	BedsRequired       int `json:"beds_required"`
	BlanketsRequired   int `json:"blankets_required"`
	ToiletsRequired    int `json:"toilets_required"`
	PowerUnitsRequired int `json:"power_units_required"`
	AmbulancesRequired int `json:"ambulances_required"`
	VolunteersRequired int `json:"volunteers_required"`
}

// IsEmpty is true for a missing requirements object or one with every quantity at zero.
func (r *Requirements) IsEmpty() bool {
	return r == nil || *r == Requirements{}
}

type PredictionResponse struct {
	RiskScore        *float64      `json:"risk_score"`
	PredictionSource string        `json:"prediction_source"`
	Explanation      []string      `json:"explanation"`
	Requirements     *Requirements `json:"requirements"`
}

// Client calls the external ML prediction service. One attempt per call, no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// NewClient bounds connection setup by connectTimeout and the wait for a response by readTimeout.
func NewClient(baseURL string, connectTimeout, readTimeout time.Duration, m *metrics.Metrics) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = connectTimeout
	transport.ResponseHeaderTimeout = readTimeout

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   connectTimeout + readTimeout,
		},
		metrics: m,
	}
}

func (c *Client) URL() string {
	return c.baseURL + "/predict"
}

// Predict posts one request to /predict. Any failure is returned wrapped in ErrUnavailable.
func (c *Client) Predict(ctx context.Context, in PredictionRequest) (*PredictionResponse, error) {
	start := time.Now()
	resp, outcome, err := c.predict(ctx, in)
	c.metrics.ObserveMLRequest(outcome, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return resp, nil
}

func (c *Client) predict(ctx context.Context, in PredictionRequest) (*PredictionResponse, string, error) {
	payloadBytes, err := json.Marshal(in)
	if err != nil {
		return nil, "encode", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, "encode", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "transport", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, "status", errors.New("ML model returned status: " + resp.Status)
	}

	var out PredictionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, "malformed", fmt.Errorf("decode prediction: %w", err)
	}

	return &out, "ok", nil
}

// Healthy reports whether the service root answers with a 2xx.
func (c *Client) Healthy(ctx context.Context) bool {
	ok := c.healthy(ctx)
	c.metrics.SetMLAvailable(ok)
	return ok
}

func (c *Client) healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
