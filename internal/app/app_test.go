package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"ulascansenturk/zila-weather/config"
	"ulascansenturk/zila-weather/internal/navigation"
	"ulascansenturk/zila-weather/internal/probe"
	"ulascansenturk/zila-weather/internal/service"

	"github.com/stretchr/testify/suite"
)

type AppTestSuite struct {
	suite.Suite
	server *httptest.Server
	conf   *config.Config
}

func (s *AppTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "Dhaka" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"cod": "404", "message": "city not found"})
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"name":    "Dhaka",
			"main":    map[string]interface{}{"temp": 31.5, "humidity": 70},
			"weather": []map[string]string{{"description": "haze", "icon": "50d"}},
			"sys":     map[string]string{"country": "BD"},
		})
	}))

	s.conf = &config.Config{
		ServiceName:        "zila-weather-test",
		LogLevel:           "debug",
		HTTPTimeout:        5,
		OpenWeatherAPIKey:  "test_api_key",
		OpenWeatherBaseURL: s.server.URL,
		OpenWeatherRPS:     100,
		OpenWeatherBurst:   10,
		BreakerMaxFailures: 3,
		BreakerOpenTimeout: time.Second,
		SearchCacheTTL:     time.Minute,
		LocationEnabled:    true,
		LocationSource:     config.LocationSourceStatic,
	}
}

func (s *AppTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *AppTestSuite) TestSubmitSearchFetchesWeather() {
	application, err := New(s.conf)
	s.Require().NoError(err)
	defer application.Close()

	s.Nil(application.History)

	result := application.Searcher.Search("dhak")
	s.Require().Len(result.Matches, 1)
	s.Equal("Dhaka", result.Matches[0].Place.Name)

	route, err := application.Navigator.SubmitSearch(application.Catalog, "dhaka")
	s.Require().NoError(err)
	s.Equal(navigation.Home("Dhaka"), route)

	application.Orchestrator.Wait()

	view := application.Orchestrator.State().View()
	s.Equal(service.ScreenContent, view.Screen)
	s.Require().NotNil(view.Weather)
	s.Equal("Dhaka", view.Weather.PlaceName)
	s.Equal(31.5, view.Weather.TemperatureCelsius)
	s.Equal("haze", view.Weather.ConditionDescription)
}

func (s *AppTestSuite) TestProviderErrorReachesState() {
	application, err := New(s.conf)
	s.Require().NoError(err)
	defer application.Close()

	application.Navigator.Navigate(navigation.Home("Atlantis"))
	application.Orchestrator.Wait()

	s.Equal("city not found", application.Orchestrator.State().Message())
}

func (s *AppTestSuite) TestPositionSource() {
	s.Run("static without coordinates", func() {
		position, err := newPositionSource(s.conf).Position(context.Background())
		s.NoError(err)
		s.Nil(position)
	})

	s.Run("static with coordinates", func() {
		lat, lon := 23.8103, 90.4125
		conf := *s.conf
		conf.LocationLatitude = &lat
		conf.LocationLongitude = &lon

		position, err := newPositionSource(&conf).Position(context.Background())
		s.NoError(err)
		s.Equal(&probe.Position{Latitude: lat, Longitude: lon}, position)
	})

	s.Run("ip", func() {
		conf := *s.conf
		conf.LocationSource = config.LocationSourceIP
		conf.IPLocationURL = "http://127.0.0.1/json"

		s.IsType(&probe.IPPosition{}, newPositionSource(&conf))
	})
}

func (s *AppTestSuite) TestNewLogger() {
	var buf bytes.Buffer
	logger := NewLogger(s.conf, &buf)

	logger.Debug().Msg("hello")

	var entry map[string]interface{}
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &entry))
	s.Equal("zila-weather-test", entry["service_name"])
	s.Equal("debug", entry["level"])
	s.Contains(entry, "time")
}

func (s *AppTestSuite) TestNewLoggerFallsBackToInfo() {
	var buf bytes.Buffer
	conf := *s.conf
	conf.LogLevel = "loud"

	logger := NewLogger(&conf, &buf)
	logger.Debug().Msg("hidden")

	s.Empty(buf.String())
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}
