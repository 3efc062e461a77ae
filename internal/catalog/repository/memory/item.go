package memory

import (
	"context"
	"math"
	"slices"

	"catalog-manager/internal/catalog"
	repo "catalog-manager/internal/catalog/repository"
)

// CreateItem stores a new Item with a fresh id and a zero order count.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (catalog.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.allocateID()
	if !ok {
		r.l.Errorf(ctx, "%s: could not allocate a unique id after %d attempts", r.dsn("CreateItem"), maxIDAttempts)
		return catalog.Item{}, repo.ErrFailedToInsert
	}

	item := catalog.Item{
		ID:                   id,
		Name:                 opt.Name,
		Description:          opt.Description,
		ImageRef:             opt.ImageRef,
		OrderCount:           0,
		QualityVerified:      opt.QualityVerified,
		IntegrityCompromised: opt.IntegrityCompromised,
		CreatedAt:            r.now(),
	}
	r.items[id] = item
	r.used[id] = struct{}{}
	r.order = append(r.order, id)
	return item, nil
}

// allocateID draws ids until one has never been issued, so ids of removed
// items are not reused. Caller must hold r.mu.
func (r *implRepository) allocateID() (string, bool) {
	for range maxIDAttempts {
		id := r.newID()
		if id == "" {
			continue
		}
		if _, taken := r.used[id]; !taken {
			return id, true
		}
	}
	return "", false
}

// GetOneItem returns the Item with the given id. found is false when absent.
func (r *implRepository) GetOneItem(ctx context.Context, id string) (catalog.Item, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

// ListItems returns a copy of all Items in insertion order.
func (r *implRepository) ListItems(ctx context.Context) ([]catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]catalog.Item, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items, nil
}

// CountItems returns the number of stored Items.
func (r *implRepository) CountItems(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

// AdjustOrderCount sets the count to max(0, count+delta). found is false and
// nothing changes when the id is absent.
func (r *implRepository) AdjustOrderCount(ctx context.Context, opt repo.AdjustOrderCountOptions) (catalog.Item, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[opt.ID]
	if !ok {
		return catalog.Item{}, false, nil
	}
	item.OrderCount = clampedAdd(item.OrderCount, opt.Delta)
	r.items[opt.ID] = item
	return item, true, nil
}

// clampedAdd returns max(0, count+delta), saturating at math.MaxInt.
func clampedAdd(count, delta int) int {
	if delta > 0 && count > math.MaxInt-delta {
		return math.MaxInt
	}
	return max(0, count+delta)
}

// DeleteItem removes the Item with the given id. removed is false when the
// id was absent, so concurrent deletes of one item report a single removal.
func (r *implRepository) DeleteItem(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return true, nil
}
