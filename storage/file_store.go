package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/madinahgate/umrah_travel/models"
)

// FileStore persists the catalog as a single JSON document with one array
// per category bucket, in the UI-facing camelCase shape. Every operation
// reloads the whole file, mutates, and rewrites it; a mutex serializes the
// read-modify-write cycle within the process. Writers in other processes are
// not coordinated and race last-write-wins.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Init creates an empty catalog document when the file does not exist yet.
// Read and parse failures during requests are propagated, never recovered,
// so a fresh deployment seeds the file here at startup instead.
func (s *FileStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat catalog file: %w", err)
	}
	return s.save(models.NewGroupedPackages())
}

func (s *FileStore) load() (models.GroupedPackages, error) {
	state := models.NewGroupedPackages()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return state, fmt.Errorf("failed to read catalog file: %w", err)
	}

	if err := json.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	// A hand-edited file may carry null buckets.
	if state.ThreeStarPackages == nil {
		state.ThreeStarPackages = []models.Package{}
	}
	if state.FourStarPackages == nil {
		state.FourStarPackages = []models.Package{}
	}
	if state.FiveStarPackages == nil {
		state.FiveStarPackages = []models.Package{}
	}
	if state.RamadanPackages == nil {
		state.RamadanPackages = []models.Package{}
	}

	return state, nil
}

func (s *FileStore) save(state models.GroupedPackages) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize catalog: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

// findByID scans all four buckets for the package with the given id.
// Package ids are globally unique, so the first match is the only match.
func findByID(state *models.GroupedPackages, id string) (*[]models.Package, int) {
	for _, category := range models.Categories {
		bucket := state.Bucket(category)
		for i := range *bucket {
			if (*bucket)[i].PackageID == id {
				return bucket, i
			}
		}
	}
	return nil, -1
}

func (s *FileStore) ListAll(_ context.Context) ([]models.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return state.All(), nil
}

func (s *FileStore) Get(_ context.Context, id string) (models.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return models.Package{}, err
	}
	bucket, i := findByID(&state, id)
	if bucket == nil {
		return models.Package{}, ErrNotFound
	}
	return (*bucket)[i], nil
}

func (s *FileStore) Insert(_ context.Context, pkg models.Package) error {
	if !models.ValidCategory(pkg.Category) {
		return fmt.Errorf("%w: %q", models.ErrInvalidCategory, pkg.Category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return err
	}
	state.Add(pkg)
	return s.save(state)
}

func (s *FileStore) Update(_ context.Context, id string, pkg models.Package) error {
	// An unknown category would vanish into no bucket, destroying the
	// record on save. Reject it before touching the file.
	if !models.ValidCategory(pkg.Category) {
		return fmt.Errorf("%w: %q", models.ErrInvalidCategory, pkg.Category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return err
	}

	bucket, i := findByID(&state, id)
	if bucket == nil {
		return ErrNotFound
	}

	if (*bucket)[i].Category != pkg.Category {
		// Category changed: remove from the old bucket and append to the
		// new one so the record lives in exactly one place.
		*bucket = append((*bucket)[:i], (*bucket)[i+1:]...)
		state.Add(pkg)
	} else {
		(*bucket)[i] = pkg
	}

	return s.save(state)
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return err
	}

	bucket, i := findByID(&state, id)
	if bucket == nil {
		return ErrNotFound
	}
	*bucket = append((*bucket)[:i], (*bucket)[i+1:]...)

	return s.save(state)
}
