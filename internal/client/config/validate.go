package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophsession/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/gophsession/internal/common"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.APIBaseURL, validation.Required, is.URL),
		validation.Field(&c.RequestTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.Storage),
	)
	if err != nil {
		return fmt.Errorf("%w: config: %v", common.ErrInvalidInput, err)
	}
	return nil
}

func (s StorageConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Driver, validation.Required,
			validation.In(localstorage.DriverSQLite, localstorage.DriverRedis, localstorage.DriverMemory)),
		validation.Field(&s.DSN, validation.By(s.requireDSN)),
	)
}

func (s StorageConfig) requireDSN(value interface{}) error {
	if s.Driver == localstorage.DriverMemory {
		return nil
	}
	if dsn, _ := value.(string); dsn == "" {
		return errors.New("cannot be blank")
	}
	return nil
}
