package store

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"comercialsoares.com/app/internal/config"
)

type FactoryResult struct {
	Driver      string
	Persistence Persistence
}

// FromConfig picks the persistence backend: MySQL when configured, the
// flat-file JSON document otherwise.
func FromConfig(cfg config.StoreConfig) (FactoryResult, error) {
	switch cfg.Driver {
	case "jsonfile":
		s, err := NewJSONFile(cfg.JSONPath)
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "jsonfile", Persistence: s}, nil

	case "mysql":
		if cfg.DSN == "" {
			return FactoryResult{}, fmt.Errorf("mysql store requires DB_DSN")
		}
		db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{})
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "mysql", Persistence: NewGorm(db)}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown STORE_DRIVER: %s", cfg.Driver)
	}
}
