package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("catalog: not found")

// CatalogStore owns the session's mutable Hotel aggregate and Preferences.
// Reads return copies (callers never alias owned state); updates are atomic
// read-modify-write against a specific entity, applied as pure transforms.
// Version increases on every mutation, so cache keys derived from it can
// never serve a stale match.
type CatalogStore interface {
	// Read paths
	Hotel(ctx context.Context) (Hotel, error)
	Floor(ctx context.Context, number int) (Floor, error)
	Room(ctx context.Context, id int64) (Room, error)
	Preferences(ctx context.Context) (Preferences, error)
	Version(ctx context.Context) (uint64, error)

	// Write paths
	SetPreferences(ctx context.Context, p Preferences) error
	UpdateRoom(ctx context.Context, id int64, fn func(Room) Room) (Room, error)
	UpdateLandmarks(ctx context.Context, floorNumber int, fn func([]Landmark) []Landmark) ([]Landmark, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
