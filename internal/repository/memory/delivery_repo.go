// Package memory provides in-process repositories used when no database is configured.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"recruitmail/internal/domain"
)

type deliveryRepository struct {
	mu    sync.RWMutex
	items []*domain.EmailDelivery
	byID  map[string]*domain.EmailDelivery
}

// NewDeliveryRepository returns a domain.DeliveryRepository kept in memory.
// Contents are lost when the process exits.
func NewDeliveryRepository() domain.DeliveryRepository {
	return &deliveryRepository{byID: make(map[string]*domain.EmailDelivery)}
}

func (r *deliveryRepository) Create(ctx context.Context, d *domain.EmailDelivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[d.ID]; ok {
		return fmt.Errorf("delivery %s already recorded", d.ID)
	}
	cp := *d
	r.items = append(r.items, &cp)
	r.byID[cp.ID] = &cp
	return nil
}

func (r *deliveryRepository) GetByID(ctx context.Context, id string) (*domain.EmailDelivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

// List returns deliveries newest first, matching the Postgres ordering.
func (r *deliveryRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.EmailDelivery, error) {
	r.mu.RLock()
	sorted := make([]*domain.EmailDelivery, len(r.items))
	copy(sorted, r.items)
	r.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	start := params.Offset()
	if start < 0 || start >= len(sorted) || params.PageSize <= 0 {
		return []*domain.EmailDelivery{}, nil
	}
	end := start + params.PageSize
	if end > len(sorted) || end < start {
		end = len(sorted)
	}
	out := make([]*domain.EmailDelivery, 0, end-start)
	for _, d := range sorted[start:end] {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *deliveryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
