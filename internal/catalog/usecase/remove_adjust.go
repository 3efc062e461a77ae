package usecase

import (
	"context"

	"catalog-manager/internal/catalog"
	repo "catalog-manager/internal/catalog/repository"
)

// Remove deletes an Item by ID. Removing an absent ID is a no-op, so the
// call is idempotent.
func (uc *implUseCase) Remove(ctx context.Context, id string) error {
	removed, err := uc.repo.DeleteItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Remove DeleteItem: %v", err)
		return err
	}
	if !removed {
		uc.l.Debugf(ctx, "uc.Remove: item %s already gone", id)
		return nil
	}

	uc.metrics.ItemRemoved()
	uc.refreshSize(ctx)
	return nil
}

// AdjustOrderCount shifts an Item's order count by Delta, flooring at zero.
// An absent ID is reported with Found=false rather than an error.
func (uc *implUseCase) AdjustOrderCount(ctx context.Context, input catalog.AdjustOrderCountInput) (catalog.AdjustOrderCountOutput, error) {
	item, found, err := uc.repo.AdjustOrderCount(ctx, repo.AdjustOrderCountOptions{
		ID:    input.ID,
		Delta: input.Delta,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AdjustOrderCount AdjustOrderCount: %v", err)
		return catalog.AdjustOrderCountOutput{}, err
	}
	if !found {
		uc.l.Debugf(ctx, "uc.AdjustOrderCount: item %s not found, ignoring delta %d", input.ID, input.Delta)
		return catalog.AdjustOrderCountOutput{}, nil
	}

	uc.metrics.OrderCountAdjusted(input.Delta)
	return catalog.AdjustOrderCountOutput{Item: item, Found: true}, nil
}
