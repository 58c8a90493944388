// Package store owns the ordered in-memory list of portfolio projects and
// its mutation API. It is the single source of truth at runtime; every
// mutation mirrors the full current snapshot to the persistence adapter.
package store

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"devfolio/models"
	"devfolio/persistence"
)

var (
	// ErrNotFound is returned when no project carries the given id.
	ErrNotFound = errors.New("project not found")
	// ErrValidation is returned when a mutation would leave a project
	// without a title or description.
	ErrValidation = errors.New("title and description are required")
)

// SyncError reports that a mutation was applied in memory but the snapshot
// could not be persisted. The store's state is still correct; only the
// write behind it failed.
type SyncError struct {
	Err error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("project list not persisted: %v", e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// Store is the mutex-guarded ordered project list. Iteration order is
// display order; newly created projects go to the front. The mutex is held
// across the adapter save so snapshots reach the backend in issuance order.
type Store struct {
	mu       sync.Mutex
	projects []models.Project
	profile  models.UserProfile
	adapter  persistence.Adapter

	now func() time.Time
}

// New loads the initial project list from the adapter.
func New(adapter persistence.Adapter, profile models.UserProfile) (*Store, error) {
	projects, err := adapter.Load()
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return &Store{
		projects: projects,
		profile:  profile,
		adapter:  adapter,
		now:      time.Now,
	}, nil
}

// List returns a snapshot copy of the projects in display order.
func (s *Store) List() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Profile returns the portfolio owner's profile.
func (s *Store) Profile() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Create mints an id, fills defaults and prepends the new project.
// A *SyncError return means the project was created but not persisted.
func (s *Store) Create(draft models.ProjectDraft) (models.Project, error) {
	if draft.Title == "" || draft.Description == "" {
		return models.Project{}, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project := models.Project{
		ID:           s.mintID(),
		Title:        draft.Title,
		Description:  draft.Description,
		ImageURL:     draft.ImageURL,
		Technologies: draft.Technologies,
		Category:     draft.Category,
		Link:         draft.Link,
		Status:       draft.Status,
	}
	if project.ImageURL == "" {
		project.ImageURL = models.PlaceholderImageURL
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	if project.Status == "" {
		project.Status = models.StatusAvailable
	}

	s.projects = append([]models.Project{project}, s.projects...)
	return project, s.sync()
}

// Update merges the patch into the project with the given id. Fields
// absent from the patch keep their prior values; the id never changes.
func (s *Store) Update(id string, patch models.ProjectPatch) (models.Project, error) {
	if (patch.Title != nil && *patch.Title == "") ||
		(patch.Description != nil && *patch.Description == "") {
		return models.Project{}, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Project{}, ErrNotFound
	}

	project := s.projects[idx]
	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		project.ImageURL = *patch.ImageURL
		if project.ImageURL == "" {
			project.ImageURL = models.PlaceholderImageURL
		}
	}
	if patch.Technologies != nil {
		project.Technologies = *patch.Technologies
	}
	if patch.Category != nil {
		project.Category = *patch.Category
	}
	if patch.Link != nil {
		project.Link = *patch.Link
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}

	// Replace in place so no reader ever observes a half-written record.
	s.projects[idx] = project
	return project, s.sync()
}

// Delete removes the project if present. Deleting an unknown id is a
// no-op, not an error.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)
	return s.sync()
}

// ReplaceAll swaps in a whole new project list and profile. Only the
// development save endpoint uses this; the posted payload is the complete
// state the frontend wants persisted.
func (s *Store) ReplaceAll(projects []models.Project, profile models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if projects == nil {
		projects = []models.Project{}
	}
	s.projects = projects
	s.profile = profile
	return s.sync()
}

// sync mirrors the current snapshot to the adapter. Callers hold s.mu.
func (s *Store) sync() error {
	snapshot := make([]models.Project, len(s.projects))
	copy(snapshot, s.projects)
	if err := s.adapter.Save(snapshot, s.profile); err != nil {
		return &SyncError{Err: err}
	}
	return nil
}

// mintID derives an id from the current time in milliseconds, probing
// forward on collision so two creates in the same millisecond still get
// distinct ids. Callers hold s.mu.
func (s *Store) mintID() string {
	ms := s.now().UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if s.indexOf(id) < 0 {
			return id
		}
		ms++
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}
