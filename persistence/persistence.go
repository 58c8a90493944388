// Package persistence synchronizes the in-memory project list to a durable
// backend. Two strategies implement the same interface and exactly one is
// selected at startup: a quota-limited local JSON store, or a
// development-only writer that regenerates the seed artifact.
package persistence

import (
	"errors"

	"devfolio/models"
)

// ErrQuotaExceeded is returned when a save would grow the local store past
// its configured byte quota. Inline image blobs are the usual culprit, so
// callers must surface this to the user instead of failing silently.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Adapter loads and saves the full portfolio snapshot. Save always
// receives the complete current list, never a diff, so writes applied in
// issuance order can never regress the store to a stale state.
type Adapter interface {
	Load() ([]models.Project, error)
	Save(projects []models.Project, profile models.UserProfile) error
}
