package queries

import (
	"context"
	"log/slog"
)

// Source tells the client whether a listing came from the database or from the bundled dataset.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

type Listing[T any] struct {
	Items  []T    `json:"items"`
	Source Source `json:"source"`
}

func (l Listing[T]) IsFallback() bool {
	return l.Source == SourceFallback
}

// FetchOrFallback runs load and substitutes fallback when it fails. The error is logged, never returned:
// screens that list the catalog must keep working while the database is unreachable.
func FetchOrFallback[T any](ctx context.Context, name string, load func(ctx context.Context) ([]T, error), fallback []T) Listing[T] {
	items, err := load(ctx)
	if err != nil {
		slog.WarnContext(ctx, "live read failed, serving fallback dataset",
			"listing", name,
			"error", err.Error())
		out := make([]T, len(fallback))
		copy(out, fallback)
		return Listing[T]{Items: out, Source: SourceFallback}
	}
	if items == nil {
		items = []T{}
	}
	return Listing[T]{Items: items, Source: SourceLive}
}
