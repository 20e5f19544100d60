package db

import (
	"context"
	"fmt"

	"google.golang.org/api/iterator"

	"go-idro/types"
)

// GetCampsByMissionID returns every camp whose alertId references the mission.
// A mission without camps yields an empty slice.
func (s *Store) GetCampsByMissionID(ctx context.Context, missionID string) ([]types.Camp, error) {
	iter := s.client.Collection(campsCollection).
		Where("alertId", "==", missionID).
		Documents(ctx)
	defer iter.Stop()

	camps := []types.Camp{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list camps for mission %s: %w", missionID, err)
		}

		var camp types.Camp
		if err := doc.DataTo(&camp); err != nil {
			return nil, fmt.Errorf("decode camp %s: %w", doc.Ref.ID, err)
		}
		camp.ID = doc.Ref.ID
		camps = append(camps, camp)
	}
	return camps, nil
}
