package localstorage

import (
	"context"
	"fmt"
)

// Open builds the storage for driver. dsn is a file path for sqlite and a
// redis:// URL for redis; it is ignored for memory.
func Open(ctx context.Context, driver, dsn, namespace string) (Storage, error) {
	switch driver {
	case DriverSQLite, "":
		s, err := OpenSQLite(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverRedis:
		s, err := OpenRedis(ctx, dsn, namespace)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
