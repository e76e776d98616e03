// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog answers lookup and aggregation questions over book and
// author collections supplied by the caller. Functions hold no state between
// calls and never modify the slices or records they are given, so they may
// be called concurrently on shared data.
package catalog

import "errors"

var (
	// ErrNotFound reports a lookup with no matching entity.
	ErrNotFound = errors.New("not found")

	// ErrInvalidReference reports an id that does not resolve in the
	// companion collection.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrEmptyCatalog reports a query that needs at least one author.
	ErrEmptyCatalog = errors.New("catalog has no authors")
)
