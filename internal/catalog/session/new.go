package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"catalog-manager/internal/catalog"
)

// Registry holds the view parameters each collaborator currently uses,
// keyed by an opaque session id. Entries expire after a period of disuse
// and the oldest are evicted once the table is full.
type Registry interface {
	Get(id string) catalog.ViewParams
	Put(id string, params catalog.ViewParams)
	Delete(id string)
	Len() int
}

type implRegistry struct {
	views *expirable.LRU[string, catalog.ViewParams]
}

// New creates a Registry bounded to size entries, each kept for ttl.
func New(size int, ttl time.Duration) Registry {
	if size <= 0 {
		size = 1
	}
	return &implRegistry{
		views: expirable.NewLRU[string, catalog.ViewParams](size, nil, ttl),
	}
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}
