// Package records caches raw upstream JSON documents keyed by their URL.
// It is a response cache, not a store of user data.
package records

import (
	"context"
	"encoding/json"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=recordsmock github.com/KirkDiggler/pokemon-5e/internal/repositories/records Repository

// DefaultTTL applies when a Put does not specify one.
const DefaultTTL = 24 * time.Hour

// Repository stores fetched documents until they expire
type Repository interface {
	// Get returns the cached document for a URL, or NotFound on a miss
	// or an expired entry.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a document, replacing any previous entry for the URL.
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete drops the entry for a URL. Deleting a missing entry is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// Record is the cached envelope around an upstream document
type Record struct {
	URL       string          `json:"url"`
	Body      json.RawMessage `json:"body"`
	CachedAt  time.Time       `json:"cached_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// GetInput identifies the document to read
type GetInput struct {
	URL string
}

// GetOutput holds the cached record
type GetOutput struct {
	Record *Record
}

// PutInput holds a document to cache
type PutInput struct {
	URL  string
	Body []byte
	// TTL defaults to DefaultTTL when zero or negative
	TTL time.Duration
}

// PutOutput holds the stored record
type PutOutput struct {
	Record *Record
}

// DeleteInput identifies the document to drop
type DeleteInput struct {
	URL string
}

// DeleteOutput reports whether an entry existed
type DeleteOutput struct {
	Deleted bool
}
