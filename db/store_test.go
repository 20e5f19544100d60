package db

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-idro/types"
)

// These tests need a running Firestore emulator, e.g.
// gcloud emulators firestore start --host-port=localhost:8081
func newEmulatorStore(t *testing.T) *Store {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	client, err := firestore.NewClient(context.Background(), "idro-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client)
}

func TestGetMissionByIDNotFound(t *testing.T) {
	s := newEmulatorStore(t)
	_, err := s.GetMissionByID(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMissionAndCampsRoundTrip(t *testing.T) {
	s := newEmulatorStore(t)
	ctx := context.Background()
	missionID := uuid.NewString()

	_, err := s.client.Collection(missionsCollection).Doc(missionID).Set(ctx, types.Mission{
		DisasterType:  "FLOOD",
		SeverityLabel: "HIGH",
		Missing:       "4",
		MissionStatus: "ACTIVE",
	})
	require.NoError(t, err)

	pop := 120
	for _, name := range []string{"North", "South"} {
		_, _, err := s.client.Collection(campsCollection).Add(ctx, types.Camp{AlertID: missionID, Name: name, Population: &pop})
		require.NoError(t, err)
	}

	mission, err := s.GetMissionByID(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, missionID, mission.ID)
	assert.Equal(t, "HIGH", mission.SeverityLabel)
	assert.Equal(t, "4", mission.Missing)

	camps, err := s.GetCampsByMissionID(ctx, missionID)
	require.NoError(t, err)
	require.Len(t, camps, 2)
	for _, c := range camps {
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, 120, c.PopulationOrZero())
	}

	none, err := s.GetCampsByMissionID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPredictionHistory(t *testing.T) {
	s := newEmulatorStore(t)
	ctx := context.Background()
	missionID := uuid.NewString()
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	rows := []types.Prediction{
		{CampID: "c1", PredictionSource: types.SourceRuleEngine, CreatedAt: base},
		{CampID: "c1", PredictionSource: types.SourceHybridAI, CreatedAt: base.Add(time.Minute)},
		{CampID: "c2", PredictionSource: types.SourceRuleEngine, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, p := range rows {
		p.MissionID = missionID
		require.NoError(t, s.SavePrediction(ctx, p))
	}

	all, err := s.ListPredictionsByMission(ctx, missionID, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c2", all[0].CampID)

	hybrid, err := s.ListPredictionsByMission(ctx, missionID, types.SourceHybridAI)
	require.NoError(t, err)
	require.Len(t, hybrid, 1)
	assert.Equal(t, types.SourceHybridAI, hybrid[0].PredictionSource)
}

func TestListActiveMissionsIgnoresStatusCase(t *testing.T) {
	s := newEmulatorStore(t)
	ctx := context.Background()

	statuses := map[string]string{
		uuid.NewString(): "OPEN",
		uuid.NewString(): "assigned",
		uuid.NewString(): "RESOLVED",
	}
	for id, status := range statuses {
		_, err := s.client.Collection(missionsCollection).Doc(id).Set(ctx, types.Mission{DisasterType: "FLOOD", MissionStatus: status})
		require.NoError(t, err)
	}

	missions, err := s.ListActiveMissions(ctx)
	require.NoError(t, err)

	active := map[string]bool{}
	for _, m := range missions {
		active[m.ID] = true
	}
	for id, status := range statuses {
		assert.Equal(t, status != "RESOLVED", active[id], status)
	}
}
