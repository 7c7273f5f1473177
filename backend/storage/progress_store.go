package storage

import (
	"context"
	"errors"

	"promtlearn/backend/models"
)

// ErrNotFound means no state has been persisted yet for the user. Callers
// treat it as "start fresh", never as a failure.
var ErrNotFound = errors.New("progress state not found")

// ProgressStore persists one ProgressState per user under a single key.
type ProgressStore interface {
	Load(ctx context.Context, userID uint) (*models.ProgressState, error)
	Save(ctx context.Context, userID uint, state *models.ProgressState) error
	Delete(ctx context.Context, userID uint) error
}
