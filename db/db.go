package db

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

const (
	missionsCollection    = "alerts"
	campsCollection       = "camps"
	predictionsCollection = "camp_ai_predictions"
)

// Store reads missions and camps and records predictions in Firestore.
type Store struct {
	client *firestore.Client
}

// NewFirestore builds a Firestore client from base64-encoded service account JSON.
// With empty credentials the default application credentials (or the emulator) are used.
func NewFirestore(ctx context.Context, encodedCreds string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if encodedCreds != "" {
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			return nil, fmt.Errorf("decode firestore credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("get firestore client: %w", err)
	}
	return client, nil
}

func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func notFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
