package records

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/pokemon-5e/internal/errors"
)

const (
	errURLEmpty    = "url cannot be empty"
	errBodyInvalid = "body must be a JSON document"
)

func validateURL(url string) error {
	if url == "" {
		return errors.InvalidArgument(errURLEmpty)
	}
	return nil
}

func newRecord(input PutInput, now time.Time) (*Record, time.Duration, error) {
	if err := validateURL(input.URL); err != nil {
		return nil, 0, err
	}
	if !json.Valid(input.Body) {
		return nil, 0, errors.InvalidArgument(errBodyInvalid).WithMeta("url", input.URL)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	body := make(json.RawMessage, len(input.Body))
	copy(body, input.Body)

	return &Record{
		URL:       input.URL,
		Body:      body,
		CachedAt:  now,
		ExpiresAt: now.Add(ttl),
	}, ttl, nil
}
