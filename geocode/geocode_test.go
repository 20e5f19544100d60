package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func newTestResolver(t *testing.T, body string) *Resolver {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.Equal(t, "Kochi, Kerala", r.URL.Query().Get("address"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	r, err := NewResolver("test-key", maps.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return r
}

func TestResolve(t *testing.T) {
	r := newTestResolver(t, `{"status":"OK","results":[{"formatted_address":"Kochi, Kerala, India","geometry":{"location":{"lat":9.93,"lng":76.26}}}]}`)

	lat, lng, err := r.Resolve(context.Background(), "Kochi, Kerala")
	require.NoError(t, err)
	assert.Equal(t, 9.93, lat)
	assert.Equal(t, 76.26, lng)
}

func TestResolveNoResults(t *testing.T) {
	r := newTestResolver(t, `{"status":"ZERO_RESULTS","results":[]}`)

	_, _, err := r.Resolve(context.Background(), "Kochi, Kerala")
	require.Error(t, err)
}

func TestNewResolverRequiresKey(t *testing.T) {
	_, err := NewResolver(" ")
	assert.Error(t, err)
}
