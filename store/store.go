// Package store persists the content documents the humanizer rewrites.
package store

import (
	"context"
	"errors"

	"content-humanizer/models"
)

// ErrNotFound is returned when an update targets a missing document.
var ErrNotFound = errors.New("document not found")

// ContentStore reads and writes humanizable content.
type ContentStore interface {
	// List returns documents ordered by id. limit <= 0 returns all of them.
	List(ctx context.Context, c models.Collection, limit int) ([]models.Document, error)
	// Update writes only the given fields; engines is written when non-nil.
	Update(ctx context.Context, c models.Collection, id uint, fields map[string]string, engines models.EngineSummaryList) error
}
