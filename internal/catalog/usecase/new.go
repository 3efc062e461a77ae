package usecase

import (
	"catalog-manager/internal/catalog"
	"catalog-manager/internal/catalog/projector"
	"catalog-manager/internal/catalog/repository"
	"catalog-manager/pkg/log"
	"catalog-manager/pkg/metrics"
)

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo    repository.Repository
	proj    *projector.Projector
	metrics metrics.Recorder
	images  []catalog.PresetImage
	l       log.Logger
}

var _ catalog.UseCase = (*implUseCase)(nil)

// New creates a new catalog UseCase implementation. rec may be nil.
func New(l log.Logger, repo repository.Repository, proj *projector.Projector, rec metrics.Recorder, images []catalog.PresetImage) *implUseCase {
	if rec == nil {
		rec = metrics.NewNop()
	}
	return &implUseCase{
		repo:    repo,
		proj:    proj,
		metrics: rec,
		images:  images,
		l:       l,
	}
}
