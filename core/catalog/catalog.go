package catalog

import (
	"errors"
	"time"

	"levelcode/core/extract"
)

// ErrNotFound is returned when a key has no entry in a catalog.
var ErrNotFound = errors.New("no code found for this combination")

// Catalog is an immutable lookup table built from one catalog file.
type Catalog struct {
	id       string
	entries  extract.Result
	stats    extract.Stats
	loadedAt time.Time
}

// New wraps an extraction result. The result must not be modified afterwards.
func New(id string, entries extract.Result, stats extract.Stats) *Catalog {
	if entries == nil {
		entries = extract.Result{}
	}
	return &Catalog{
		id:       id,
		entries:  entries,
		stats:    stats,
		loadedAt: time.Now(),
	}
}

// Empty returns a catalog without entries.
func Empty(id string) *Catalog {
	return New(id, nil, extract.Stats{})
}

// ID returns the catalog identifier.
func (c *Catalog) ID() string {
	return c.id
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Stats returns the extraction statistics the catalog was built with.
func (c *Catalog) Stats() extract.Stats {
	return c.stats
}

// LoadedAt returns when the catalog was built.
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}

// Lookup returns the payload stored under key. The key is compared exactly;
// callers build it with Pool.Key.
func (c *Catalog) Lookup(key string) (extract.Payload, error) {
	payload, ok := c.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return clonePayload(payload), nil
}

// clonePayload deep copies a payload so callers cannot reach the catalog's
// nested maps and slices.
func clonePayload(p extract.Payload) extract.Payload {
	out := make(extract.Payload, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}
