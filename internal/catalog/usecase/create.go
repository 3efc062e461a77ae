package usecase

import (
	"context"
	"errors"
	"strings"

	"catalog-manager/internal/catalog"
	repo "catalog-manager/internal/catalog/repository"
)

// Create validates input and adds a new Item with a zero order count.
// On a validation failure the catalog is left unchanged.
func (uc *implUseCase) Create(ctx context.Context, input catalog.CreateItemInput) (catalog.CreateItemOutput, error) {
	if err := catalog.ValidateCreateInput(input); err != nil {
		var vErr *catalog.ValidationError
		if errors.As(err, &vErr) {
			uc.metrics.ValidationFailed(vErr.Field)
		}
		uc.l.Warnf(ctx, "uc.Create ValidateCreateInput: %v", err)
		return catalog.CreateItemOutput{}, err
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:                 strings.TrimSpace(input.Name),
		Description:          strings.TrimSpace(input.Description),
		ImageRef:             strings.TrimSpace(input.ImageRef),
		QualityVerified:      input.QualityVerified,
		IntegrityCompromised: input.IntegrityCompromised,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return catalog.CreateItemOutput{}, err
	}

	uc.metrics.ItemCreated()
	uc.refreshSize(ctx)
	uc.l.Infof(ctx, "uc.Create: item %s (%q) added", item.ID, item.Name)

	return catalog.CreateItemOutput{Item: item}, nil
}
