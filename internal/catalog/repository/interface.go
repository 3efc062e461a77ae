package repository

import (
	"context"

	"catalog-manager/internal/catalog"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
//
// Lookups by an absent id are not errors: GetOneItem and AdjustOrderCount
// report found=false and DeleteItem is a no-op reporting removed=false.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (catalog.Item, error)
	GetOneItem(ctx context.Context, id string) (catalog.Item, bool, error)
	ListItems(ctx context.Context) ([]catalog.Item, error)
	CountItems(ctx context.Context) (int, error)
	AdjustOrderCount(ctx context.Context, opt AdjustOrderCountOptions) (catalog.Item, bool, error)
	DeleteItem(ctx context.Context, id string) (bool, error)
}
