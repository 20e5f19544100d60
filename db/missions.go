package db

import (
	"context"
	"fmt"

	"google.golang.org/api/iterator"

	"go-idro/types"
)

func (s *Store) GetMissionByID(ctx context.Context, id string) (types.Mission, error) {
	doc, err := s.client.Collection(missionsCollection).Doc(id).Get(ctx)
	if err != nil {
		if notFound(err) {
			return types.Mission{}, fmt.Errorf("mission %s: %w", id, ErrNotFound)
		}
		return types.Mission{}, fmt.Errorf("get mission %s: %w", id, err)
	}

	var mission types.Mission
	if err := doc.DataTo(&mission); err != nil {
		return types.Mission{}, fmt.Errorf("decode mission %s: %w", id, err)
	}
	mission.ID = doc.Ref.ID
	return mission, nil
}

// ListActiveMissions returns missions whose status marks them as still being worked.
// Status values are free text written by several clients, so the filter runs through
// Mission.IsActive rather than an exact-match Firestore query.
func (s *Store) ListActiveMissions(ctx context.Context) ([]types.Mission, error) {
	iter := s.client.Collection(missionsCollection).
		Select("type", "magnitude", "urgency", "missionStatus").
		Documents(ctx)
	defer iter.Stop()

	missions := []types.Mission{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list active missions: %w", err)
		}

		var m types.Mission
		if err := doc.DataTo(&m); err != nil {
			return nil, fmt.Errorf("decode mission %s: %w", doc.Ref.ID, err)
		}
		if !m.IsActive() {
			continue
		}
		m.ID = doc.Ref.ID
		missions = append(missions, m)
	}
	return missions, nil
}
