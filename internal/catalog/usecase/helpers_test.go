package usecase_test

import (
	"context"
	"errors"

	"golang.org/x/text/language"

	"catalog-manager/internal/catalog"
	"catalog-manager/internal/catalog/projector"
	repo "catalog-manager/internal/catalog/repository"
	"catalog-manager/internal/catalog/repository/memory"
	"catalog-manager/internal/catalog/usecase"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// spyRecorder counts metric events.
type spyRecorder struct {
	created, removed int
	adjusted         []int
	failedFields     []string
	size             int
	projections      int
}

func (s *spyRecorder) ItemCreated()                  { s.created++ }
func (s *spyRecorder) ItemRemoved()                  { s.removed++ }
func (s *spyRecorder) OrderCountAdjusted(delta int)  { s.adjusted = append(s.adjusted, delta) }
func (s *spyRecorder) ValidationFailed(field string) { s.failedFields = append(s.failedFields, field) }
func (s *spyRecorder) CatalogSize(n int)             { s.size = n }
func (s *spyRecorder) Projected(shown, total int)    { s.projections++ }

// brokenRepo fails every call.
type brokenRepo struct{}

var errBroken = errors.New("store unavailable")

func (brokenRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (catalog.Item, error) {
	return catalog.Item{}, errBroken
}
func (brokenRepo) GetOneItem(ctx context.Context, id string) (catalog.Item, bool, error) {
	return catalog.Item{}, false, errBroken
}
func (brokenRepo) ListItems(ctx context.Context) ([]catalog.Item, error) { return nil, errBroken }
func (brokenRepo) CountItems(ctx context.Context) (int, error)           { return 0, errBroken }
func (brokenRepo) AdjustOrderCount(ctx context.Context, opt repo.AdjustOrderCountOptions) (catalog.Item, bool, error) {
	return catalog.Item{}, false, errBroken
}
func (brokenRepo) DeleteItem(ctx context.Context, id string) (bool, error) { return false, errBroken }

func newTestUseCase(rec *spyRecorder) catalog.UseCase {
	images := []catalog.PresetImage{{Name: "TH True Milk", Path: "/assets/images/th-true-milk.jpeg"}}
	return usecase.New(&mockLogger{}, memory.New(&mockLogger{}), projector.New(language.English), rec, images)
}

func validInput(name string) catalog.CreateItemInput {
	return catalog.CreateItemInput{Name: name, Description: name + " milk", ImageRef: "/img/" + name + ".jpg"}
}
