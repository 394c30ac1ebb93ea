package cmd

import (
	"fmt"

	"caisse/internal/adapters/out/postgres/clientrepo"
	"caisse/internal/adapters/out/postgres/orderrepo"
	"caisse/internal/adapters/out/postgres/sessionrepo"
	"caisse/internal/adapters/out/postgres/tablerepo"

	gorm_postgres "gorm.io/driver/postgres"
	gorm_sqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDatabase connects to the configured storage backend and migrates the
// ledger schema. A single-terminal install runs on sqlite; everything else
// goes through postgres.
func OpenDatabase(config Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch config.DBDriver {
	case "sqlite":
		db, err = gorm.Open(gorm_sqlite.Open(config.SQLitePath), &gorm.Config{})
	case "postgres", "":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost,
			config.DBPort,
			config.DBUser,
			config.DBPassword,
			config.DBName,
			config.DBSslMode,
		)
		db, err = gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported db driver %q", config.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err = db.AutoMigrate(
		&sessionrepo.SessionDTO{},
		&tablerepo.TableDTO{},
		&orderrepo.OrderDTO{},
		&clientrepo.ClientDTO{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
