package usecase

import (
	"context"

	"catalog-manager/internal/catalog"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (catalog.DetailItemOutput, error) {
	item, found, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return catalog.DetailItemOutput{}, err
	}
	if !found {
		return catalog.DetailItemOutput{}, catalog.ErrItemNotFound
	}
	return catalog.DetailItemOutput{Item: item}, nil
}

// Project runs the view projector over the current catalog snapshot.
func (uc *implUseCase) Project(ctx context.Context, params catalog.ViewParams) (catalog.Projection, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Project ListItems: %v", err)
		return catalog.Projection{}, err
	}

	out := uc.proj.Project(items, params)
	uc.metrics.Projected(out.Shown, out.Total)
	return out, nil
}

// PresetImages returns the configured image choices.
func (uc *implUseCase) PresetImages(ctx context.Context) []catalog.PresetImage {
	out := make([]catalog.PresetImage, len(uc.images))
	copy(out, uc.images)
	return out
}

// Size returns the number of items in the catalog.
func (uc *implUseCase) Size(ctx context.Context) (int, error) {
	n, err := uc.repo.CountItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Size CountItems: %v", err)
		return 0, err
	}
	return n, nil
}
