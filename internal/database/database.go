package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rgvh/city-explorer-api/internal/config"
	"github.com/rgvh/city-explorer-api/internal/logger"
	"github.com/rgvh/city-explorer-api/internal/models"
)

type DB struct {
	*gorm.DB
}

func Connect(cfg *config.Config) (*DB, error) {
	log := logger.GetLogger("database")

	logLevel := gormlogger.Silent
	if cfg.ServerEnv == "development" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		// Needed so a unique-violation on locations.search_query surfaces
		// as gorm.ErrDuplicatedKey and the store can resolve the race.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.Use(&MetricsPlugin{}); err != nil {
		log.Warnw("failed to register metrics plugin", "error", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		log.Info("database connection pool configured")
	}

	return &DB{db}, nil
}

// Migrate runs AutoMigrate for the location table and the five
// per-category record tables.
func Migrate(db *DB) error {
	return db.AutoMigrate(
		&models.Location{},
		&models.Weather{},
		&models.Event{},
		&models.Movie{},
		&models.Review{},
		&models.Trail{},
	)
}

// Close releases the underlying connection pool.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
