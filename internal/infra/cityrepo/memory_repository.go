package cityrepo

import (
	"context"
	"sync"

	"github.com/yanqian/city-weather/internal/domain/geocode"
)

// MemoryRepository is an append-only, in-process city log used for tests/dev.
type MemoryRepository struct {
	mu     sync.RWMutex
	rows   []geocode.CityRecord
	byName map[string]int
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byName: make(map[string]int),
	}
}

// FindByName implements geocode.CityRepository.
func (r *MemoryRepository) FindByName(_ context.Context, name string) (geocode.Coordinate, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byName[name]
	if !ok {
		return geocode.Coordinate{}, false, nil
	}
	return r.rows[idx].Coordinate, true, nil
}

// Insert appends a row. Duplicate names are kept; the index keeps pointing at the first one.
func (r *MemoryRepository) Insert(_ context.Context, record geocode.CityRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, record)
	if _, exists := r.byName[record.Name]; !exists {
		r.byName[record.Name] = len(r.rows) - 1
	}
	return nil
}

// Recent returns up to limit names, newest first.
func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.rows) {
		limit = len(r.rows)
	}
	names := make([]string, 0, limit)
	for i := len(r.rows) - 1; i >= 0 && len(names) < limit; i-- {
		names = append(names, r.rows[i].Name)
	}
	return names, nil
}

// Len reports the number of stored rows, duplicates included.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}

var _ geocode.CityRepository = (*MemoryRepository)(nil)
