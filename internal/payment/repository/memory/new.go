package memory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"insurance-renewal-assistant/internal/model"
	"insurance-renewal-assistant/internal/payment/repository"
	"insurance-renewal-assistant/pkg/log"
)

const (
	// Records age out of the cache a day after creation regardless of
	// status, matching the periodic cleanup cutoff.
	retentionTTL = 24 * time.Hour
	cacheSize    = 10000
)

type implRepository struct {
	store *expirable.LRU[string, model.Payment]
	l     log.Logger
}

// New creates an in-memory Repository backed by a TTL'd LRU cache.
// Data is lost on restart; use the sqlite backend for persistence.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		store: expirable.NewLRU[string, model.Payment](cacheSize, nil, retentionTTL),
		l:     l,
	}
}
