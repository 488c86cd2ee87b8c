package domain

import (
	"context"
	"fmt"
)

// Document is the unit of persistence: a flat JSON-compatible object.
type Document map[string]any

type Record struct {
	Key     string
	Version int
	Data    Document
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	CollectionProfiles   = "fitnessData"
	CollectionAttendance = "attendance"
)

func ProgressCollection(userID string) string {
	return fmt.Sprintf("users/%s/progressHistory", userID)
}

func GoalCollection(userID string) string {
	return fmt.Sprintf("users/%s/goals", userID)
}

type RecordStore interface {
	// Get returns the document stored under key, or ErrNotFound.
	Get(ctx context.Context, collection, key string) (*Record, error)

	// Put replaces (or creates) the document under key.
	Put(ctx context.Context, collection, key string, doc Document) error

	// PutIfVersion replaces the document only if its stored version equals version.
	// Returns ErrConflict on mismatch and ErrNotFound when the key is absent.
	PutIfVersion(ctx context.Context, collection, key string, doc Document, version int) error

	// Merge writes the top-level keys of partial into the stored document,
	// leaving every other key untouched. Creates the document when absent.
	Merge(ctx context.Context, collection, key string, partial Document) error

	// Append stores doc under a freshly generated key and returns that key.
	Append(ctx context.Context, collection string, doc Document) (string, error)

	// Delete removes the document. A missing key is not an error.
	Delete(ctx context.Context, collection, key string) error

	// QueryOrdered lists the whole collection sorted by orderField.
	// Ties, and an empty orderField, fall back to insertion order.
	QueryOrdered(ctx context.Context, collection, orderField string, dir SortDirection) ([]*Record, error)
}
