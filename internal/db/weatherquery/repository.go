package weatherquery

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const DefaultRecentLimit = 10

type Repository interface {
	LogWeatherQuery(ctx context.Context, query *WeatherQuery) error
	RecentWeatherQueries(ctx context.Context, limit int) ([]WeatherQuery, error)
}

type WeatherSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &WeatherSQLRepository{db: db}
}

// OpenPostgres connects to postgres, migrates the history table and tunes the pool.
func OpenPostgres(dsn string, config *gorm.Config) (*gorm.DB, error) {
	if config == nil {
		config = &gorm.Config{}
	}

	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&WeatherQuery{}); err != nil {
		return nil, fmt.Errorf("failed to migrate weather lookups: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func (r *WeatherSQLRepository) LogWeatherQuery(ctx context.Context, query *WeatherQuery) error {
	if query.CreatedAt.IsZero() {
		query.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Create(query).Error
}

func (r *WeatherSQLRepository) RecentWeatherQueries(ctx context.Context, limit int) ([]WeatherQuery, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	queries := make([]WeatherQuery, 0, limit)
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}
