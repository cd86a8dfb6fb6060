package weatherquery_test

import (
	"context"
	"testing"
	"time"
	"ulascansenturk/zila-weather/internal/db/weatherquery"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	dbName     = "test_lookup_database"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	container *pgTestContainers.PostgresContainer
	db        *gorm.DB
	repo      weatherquery.Repository
	ctx       context.Context
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(s.T())

	s.ctx = context.Background()

	var err error
	s.container, err = pgTestContainers.Run(s.ctx,
		"postgres:13.3",
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	s.Require().NoError(err)

	dsn, err := s.container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.db, err = weatherquery.OpenPostgres(dsn, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	s.repo = weatherquery.NewRepository(s.db)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		s.NoError(s.container.Terminate(context.Background()))
	}
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	s.Require().NoError(s.db.Migrator().DropTable(&weatherquery.WeatherQuery{}))
	s.Require().NoError(s.db.AutoMigrate(&weatherquery.WeatherQuery{}))
}

func (s *RepositoryIntegrationSuite) TestLogAndReadBack() {
	base := time.Now().UTC().Truncate(time.Second)

	lookups := []weatherquery.WeatherQuery{
		{PlaceName: "Dhaka", CountryCode: "BD", TemperatureCelsius: 31.5, HumidityPercent: 70, Source: weatherquery.SourceName, CreatedAt: base.Add(-2 * time.Minute)},
		{PlaceName: "Chittagong", CountryCode: "BD", TemperatureCelsius: 29.4, HumidityPercent: 84, Source: weatherquery.SourceCoordinates, CreatedAt: base.Add(-time.Minute)},
		{PlaceName: "Sylhet", CountryCode: "BD", TemperatureCelsius: 27.0, HumidityPercent: 90, Source: weatherquery.SourceName, CreatedAt: base},
	}
	for i := range lookups {
		s.Require().NoError(s.repo.LogWeatherQuery(s.ctx, &lookups[i]))
		s.NotZero(lookups[i].ID)
	}

	recent, err := s.repo.RecentWeatherQueries(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(recent, 2)
	s.Equal("Sylhet", recent[0].PlaceName)
	s.Equal("Chittagong", recent[1].PlaceName)
	s.Equal(weatherquery.SourceCoordinates, recent[1].Source)
	s.Equal(84, recent[1].HumidityPercent)
}

func (s *RepositoryIntegrationSuite) TestEmptyHistory() {
	recent, err := s.repo.RecentWeatherQueries(s.ctx, 0)
	s.Require().NoError(err)
	s.Empty(recent)
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationSuite))
}
