package persistence

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"devfolio/models"
)

// LocalStore keeps the project list as JSON under a single namespaced key
// file. A byte quota caps how large the serialized list may grow, because
// projects can carry inline-encoded images.
type LocalStore struct {
	fs        afero.Fs
	dir       string
	namespace string
	quota     int64
	seed      []models.Project
}

// NewLocalStore creates a local store rooted at dir. quota <= 0 disables
// the size check. seed is returned by Load when the key file is absent or
// unreadable.
func NewLocalStore(fs afero.Fs, dir, namespace string, quota int64, seed []models.Project) *LocalStore {
	return &LocalStore{
		fs:        fs,
		dir:       dir,
		namespace: namespace,
		quota:     quota,
		seed:      seed,
	}
}

func (s *LocalStore) keyPath() string {
	return filepath.Join(s.dir, s.namespace+".json")
}

// Load reads the project list from the key file. An absent key or
// malformed JSON falls back to the seed list; the parse failure is logged
// but never surfaced, matching how a missing browser store behaves.
func (s *LocalStore) Load() ([]models.Project, error) {
	data, err := afero.ReadFile(s.fs, s.keyPath())
	if err != nil {
		if os.IsNotExist(err) {
			return s.seedCopy(), nil
		}
		return nil, fmt.Errorf("read %s: %w", s.keyPath(), err)
	}

	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		log.Printf("LocalStore: %s is malformed, falling back to seed data: %v", s.keyPath(), err)
		return s.seedCopy(), nil
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// Save serializes the full list back under the namespaced key. The profile
// rides along for interface parity but is not persisted here; this backend
// mirrors a browser store that only ever held the project list.
func (s *LocalStore) Save(projects []models.Project, _ models.UserProfile) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("serialize projects: %w", err)
	}

	if s.quota > 0 && int64(len(data)) > s.quota {
		return fmt.Errorf("%w: %d bytes over a %d byte quota", ErrQuotaExceeded, int64(len(data))-s.quota, s.quota)
	}

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	return writeFileAtomic(s.fs, s.keyPath(), data)
}

func (s *LocalStore) seedCopy() []models.Project {
	out := make([]models.Project, len(s.seed))
	copy(out, s.seed)
	return out
}

// writeFileAtomic writes via a temp file and rename so a crashed save can
// never leave a half-written key behind.
func writeFileAtomic(fs afero.Fs, path string, data []byte) error {
	tmp := path + ".tmp"
	if err := afero.WriteFile(fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
