// Package app wires the weather client from configuration. Both binaries build
// on it.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"ulascansenturk/zila-weather/config"
	"ulascansenturk/zila-weather/internal/catalog"
	"ulascansenturk/zila-weather/internal/db/weatherquery"
	"ulascansenturk/zila-weather/internal/inmemorycache"
	"ulascansenturk/zila-weather/internal/navigation"
	"ulascansenturk/zila-weather/internal/probe"
	"ulascansenturk/zila-weather/internal/providers"
	"ulascansenturk/zila-weather/internal/search"
	"ulascansenturk/zila-weather/internal/service"
)

const cacheCleanupInterval = time.Minute

type App struct {
	Catalog      *catalog.Catalog
	Searcher     *search.Searcher
	Permission   *probe.Permission
	Orchestrator *service.Orchestrator
	Navigator    *navigation.Navigator
	History      weatherquery.Repository

	cache *inmemorycache.InMemoryCache
	db    *gorm.DB
}

// NewLogger builds the root logger the way both binaries use it.
func NewLogger(conf *config.Config, w io.Writer) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
}

func New(conf *config.Config) (*App, error) {
	places, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load place catalog: %w", err)
	}

	var (
		db      *gorm.DB
		history weatherquery.Repository
	)
	if conf.HistoryEnabled() {
		db, err = weatherquery.OpenPostgres(conf.DSN(), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		history = weatherquery.NewRepository(db)
	} else {
		log.Info().Msg("DATABASE_HOST not set, lookup history disabled")
	}

	cache := inmemorycache.NewInMemoryCacheProvider(cacheCleanupInterval)
	permission := probe.NewPermission(conf.LocationPermission)

	orchestrator := service.NewOrchestrator(
		newGateway(conf),
		probe.NewHostConnectivity(),
		probe.NewDeviceLocation(conf.LocationEnabled, permission, newPositionSource(conf)),
		history,
	)

	return &App{
		Catalog:      places,
		Searcher:     search.NewSearcher(places, cache, conf.SearchCacheTTL),
		Permission:   permission,
		Orchestrator: orchestrator,
		Navigator:    navigation.NewNavigator(orchestrator),
		History:      history,
		cache:        cache,
		db:           db,
	}, nil
}

func (a *App) Close() {
	a.Orchestrator.Close()
	a.cache.Close()

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close database")
			}
		}
	}
}

func newGateway(conf *config.Config) providers.WeatherGateway {
	gateway := providers.NewOpenWeatherGateway(conf.OpenWeatherAPIKey, conf.OpenWeatherBaseURL, conf.HTTPTimeoutDuration())
	limited := providers.NewRateLimitedGateway(gateway, conf.OpenWeatherRPS, conf.OpenWeatherBurst)

	return providers.NewBreakerGateway(limited, conf.BreakerMaxFailures, conf.BreakerOpenTimeout)
}

func newPositionSource(conf *config.Config) probe.PositionSource {
	if conf.LocationSource == config.LocationSourceStatic {
		if conf.LocationLatitude == nil || conf.LocationLongitude == nil {
			return probe.NewStaticPosition(nil)
		}
		return probe.NewStaticPosition(&probe.Position{
			Latitude:  *conf.LocationLatitude,
			Longitude: *conf.LocationLongitude,
		})
	}

	return probe.NewIPPosition(conf.IPLocationURL, conf.HTTPTimeoutDuration())
}
