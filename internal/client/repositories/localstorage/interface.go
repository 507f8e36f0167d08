package localstorage

import (
	"context"
	"errors"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown storage driver")

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Storage interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	// SetItems writes all items atomically.
	SetItems(ctx context.Context, items map[string]string) error
	// RemoveItems deletes all keys atomically; absent keys are ignored.
	RemoveItems(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
	// Persistent reports whether values outlive the process.
	Persistent() bool
	Close() error
}
