// ABOUTME: Business-rule validation of loaded configuration.
// ABOUTME: Checks driver, pool size, and log level values.

package config

import (
	"fmt"

	"github.com/harper/litenotes/internal/db"
	"go.uber.org/zap/zapcore"
)

// Validate is called by Load after defaults are applied.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case db.DriverPure, db.DriverCgo:
	default:
		return fmt.Errorf("database.driver must be %q or %q (got %q)", db.DriverPure, db.DriverCgo, c.Database.Driver)
	}
	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be >= 1 (got %d)", c.Database.MaxOpenConns)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
