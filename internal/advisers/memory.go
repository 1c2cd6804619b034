package advisers

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used when no database is
// configured. Records do not survive a restart.
type MemoryRepository struct {
	mu       sync.RWMutex
	advisers map[uuid.UUID]*Adviser
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{advisers: make(map[uuid.UUID]*Adviser)}
}

func (r *MemoryRepository) Create(ctx context.Context, adviser *Adviser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *adviser
	r.advisers[adviser.ID] = &copied
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Adviser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adviser, ok := r.advisers[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *adviser
	return &copied, nil
}

func (r *MemoryRepository) List(ctx context.Context, limit, offset int) ([]*Adviser, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Adviser, 0, len(r.advisers))
	for _, adviser := range r.advisers {
		copied := *adviser
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := int64(len(all))
	if offset >= len(all) {
		return []*Adviser{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}

	return all[offset:end], total, nil
}
