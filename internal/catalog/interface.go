package catalog

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Mutations
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	Remove(ctx context.Context, id string) error
	AdjustOrderCount(ctx context.Context, input AdjustOrderCountInput) (AdjustOrderCountOutput, error)

	// Reads
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Project(ctx context.Context, params ViewParams) (Projection, error)
	PresetImages(ctx context.Context) []PresetImage
	Size(ctx context.Context) (int, error)
}
