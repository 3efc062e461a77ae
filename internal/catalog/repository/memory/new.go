package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"catalog-manager/internal/catalog"
	"catalog-manager/internal/catalog/repository"
	"catalog-manager/pkg/log"
)

// maxIDAttempts bounds how often CreateItem redraws an id that is already taken.
const maxIDAttempts = 3

type implRepository struct {
	l log.Logger

	mu    sync.RWMutex
	items map[string]catalog.Item
	order []string            // insertion order of ids
	used  map[string]struct{} // every id ever handed out, removed items included

	newID func() string
	now   func() time.Time
}

// Option customises the memory repository.
type Option func(*implRepository)

// WithIDGenerator replaces the default UUID v4 id generator.
func WithIDGenerator(fn func() string) Option {
	return func(r *implRepository) { r.newID = fn }
}

// WithClock replaces time.Now for CreatedAt stamps.
func WithClock(fn func() time.Time) Option {
	return func(r *implRepository) { r.now = fn }
}

// New creates an in-memory Repository for the catalog domain. The contents
// live only as long as the process.
func New(l log.Logger, opts ...Option) repository.Repository {
	if l == nil {
		panic("catalog/repository/memory: logger is required")
	}
	r := &implRepository{
		l:     l,
		items: make(map[string]catalog.Item),
		used:  make(map[string]struct{}),
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/memory.%s", method)
}
