package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"go-idro/types"
)

// SavePrediction appends one audit record. Records are never updated in place.
func (s *Store) SavePrediction(ctx context.Context, p types.Prediction) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := s.client.Collection(predictionsCollection).Doc(p.ID).Create(ctx, p)
	if err != nil {
		return fmt.Errorf("save prediction for camp %s: %w", p.CampID, err)
	}
	return nil
}

// ListPredictionsByMission returns the mission's history, newest first.
// An empty source matches every prediction source.
func (s *Store) ListPredictionsByMission(ctx context.Context, missionID string, source types.PredictionSource) ([]types.Prediction, error) {
	q := s.client.Collection(predictionsCollection).Where("missionId", "==", missionID)
	if source != "" {
		q = q.Where("predictionSource", "==", string(source))
	}
	return collectPredictions(q.OrderBy("createdAt", firestore.Desc).Documents(ctx))
}

func (s *Store) ListPredictionsByCamp(ctx context.Context, campID string) ([]types.Prediction, error) {
	q := s.client.Collection(predictionsCollection).
		Where("campId", "==", campID).
		OrderBy("createdAt", firestore.Desc)
	return collectPredictions(q.Documents(ctx))
}

func collectPredictions(iter *firestore.DocumentIterator) ([]types.Prediction, error) {
	defer iter.Stop()

	predictions := []types.Prediction{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list predictions: %w", err)
		}

		var p types.Prediction
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode prediction %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		predictions = append(predictions, p)
	}
	return predictions, nil
}
