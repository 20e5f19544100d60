package processor

import (
	"context"
	"strconv"
	"strings"

	"go-idro/mlmodel"
	"go-idro/types"
)

type coordinates struct {
	lat float64
	lng float64
}

// buildPredictionRequest maps a camp and its mission onto the prediction service input.
// Camp coordinates win over mission coordinates, then over the run's geocoded fallback.
func buildPredictionRequest(mission types.Mission, camp types.Camp, urgency string, fallback *coordinates) mlmodel.PredictionRequest {
	req := mlmodel.PredictionRequest{
		DisasterType:  orDefault(mission.DisasterType, "Unknown"),
		Severity:      orDefault(resolveSeverity(camp, mission), "Moderate"),
		Urgency:       urgency,
		AffectedCount: camp.PopulationOrZero(),
		InjuredCount:  camp.InjuredOrZero(),
		MissingCount:  ParseCount(mission.Missing),
	}

	switch {
	case camp.HasCoordinates():
		req.Latitude, req.Longitude = *camp.Latitude, *camp.Longitude
	case mission.HasCoordinates():
		req.Latitude, req.Longitude = *mission.Latitude, *mission.Longitude
	case fallback != nil:
		req.Latitude, req.Longitude = fallback.lat, fallback.lng
	}
	return req
}

// ParseCount reads a free-text count such as "12" or " 3 ". Anything that is not a
// non-negative integer counts as zero.
func ParseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// fallbackCoordinates geocodes the mission location once per run, and only when a camp
// needs it. Geocoding problems are logged and otherwise ignored.
func (a *Analyzer) fallbackCoordinates(ctx context.Context, mission types.Mission, camps []types.Camp) *coordinates {
	if a.geocoder == nil || mission.HasCoordinates() || strings.TrimSpace(mission.Location) == "" {
		return nil
	}
	needed := false
	for _, c := range camps {
		if !c.HasCoordinates() {
			needed = true
			break
		}
	}
	if !needed {
		return nil
	}

	lat, lng, err := a.geocoder.Resolve(ctx, mission.Location)
	if err != nil {
		a.log.Warn("Could not geocode mission location", "mission_id", mission.ID, "location", mission.Location, "error", err)
		return nil
	}
	return &coordinates{lat: lat, lng: lng}
}
