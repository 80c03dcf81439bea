package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var C *gorm.DB

func NewGorm() error {
	conn, err := Open(viper.GetString("database.driver"), viper.GetString("database.dsn"))
	if err != nil {
		return err
	}
	C = conn
	return nil
}

// Open connects to the database behind the given driver name.
// An empty driver name means postgres.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(&log.Logger, logger.Config{
			Colorful:                  true,
			IgnoreRecordNotFoundError: true,
			LogLevel:                  lo.Ternary(viper.GetBool("debug.database"), logger.Info, logger.Silent),
		}),
	})
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" {
		// Each sqlite connection to :memory: is its own database
		if raw, err := conn.DB(); err == nil {
			raw.SetMaxOpenConns(1)
		}
	}

	return conn, nil
}
