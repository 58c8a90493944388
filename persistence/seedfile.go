package persistence

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"devfolio/models"
	"devfolio/seed"
)

// SeedFile regenerates the static seed artifact on every save, so edits
// made through the admin panel end up compiled into the next build. This
// is a local-development convenience with no authentication of its own; it
// must never be reachable on a public network interface.
type SeedFile struct {
	fs   afero.Fs
	path string
}

// NewSeedFile writes the artifact at path (normally seed/seed.json).
func NewSeedFile(fs afero.Fs, path string) *SeedFile {
	return &SeedFile{fs: fs, path: path}
}

// Load reads the artifact from disk, falling back to the copy embedded at
// build time when the file is missing or unreadable.
func (s *SeedFile) Load() ([]models.Project, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return seed.Projects(), nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	doc, err := seed.Parse(data)
	if err != nil {
		log.Printf("SeedFile: %s is malformed, falling back to embedded seed: %v", s.path, err)
		return seed.Projects(), nil
	}
	if doc.Projects == nil {
		doc.Projects = []models.Project{}
	}
	return doc.Projects, nil
}

// Save rewrites the artifact with the full snapshot, profile included.
func (s *SeedFile) Save(projects []models.Project, profile models.UserProfile) error {
	data, err := seed.Encode(seed.Document{
		UserProfile: profile,
		Projects:    projects,
	})
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create seed dir: %w", err)
	}

	return writeFileAtomic(s.fs, s.path, data)
}
