package usecase

import "context"

// refreshSize publishes the current catalog size. Errors are logged and dropped.
func (uc *implUseCase) refreshSize(ctx context.Context) {
	n, err := uc.repo.CountItems(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.refreshSize CountItems: %v", err)
		return
	}
	uc.metrics.CatalogSize(n)
}
