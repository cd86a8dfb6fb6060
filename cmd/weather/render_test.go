package main

import (
	"bytes"
	"testing"
	"ulascansenturk/zila-weather/internal/catalog"
	"ulascansenturk/zila-weather/internal/providers"
	"ulascansenturk/zila-weather/internal/search"
	"ulascansenturk/zila-weather/internal/service"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type RenderTestSuite struct {
	suite.Suite
}

func (s *RenderTestSuite) TestRenderHome() {
	message := service.MessageLocationNotFound
	weather := &providers.Snapshot{
		PlaceName:            "Dhaka",
		TemperatureCelsius:   31.46,
		HumidityPercent:      70,
		ConditionDescription: "light rain",
		ConditionIconID:      "10d",
		CountryCode:          "BD",
	}

	s.Equal("Loading...\n", renderHome(service.State{IsLoading: true}.View()))
	s.Equal(
		"Error: Location Not found.\nRetry with --place NAME or --current\n",
		renderHome(service.State{ErrorMessage: &message}.View()),
	)
	s.Equal(service.FetchingPlaceholder+"\n", renderHome(service.State{}.View()))
	s.Equal(
		"Dhaka, BD\n31.5°C\nLight rain\nHumidity: 70%\nIcon: https://openweathermap.org/img/wn/10d@4x.png\n",
		renderHome(service.State{Weather: weather}.View()),
	)
}

func (s *RenderTestSuite) TestRenderSearch() {
	c, err := catalog.Load()
	s.Require().NoError(err)

	searcher := search.NewSearcher(c, nil, 0)

	out := renderSearch(searcher.Search("Khulna"))
	s.Equal("* [Khulna] (Khulna Division)\n", out)

	s.Equal(noMatchesText+"\n", renderSearch(searcher.Search("Atlantis")))
}

func (s *RenderTestSuite) TestRenderSegments() {
	s.Equal("[Dha]ka", renderSegments(search.Highlight("Dhaka", "dha")))
	s.Equal("Gaiban[dha]", renderSegments(search.Highlight("Gaibandha", "DHA")))
	s.Equal("Dhaka", renderSegments(search.Highlight("Dhaka", "")))
}

func (s *RenderTestSuite) TestCapitalize() {
	s.Equal("Overcast clouds", capitalize("overcast clouds"))
	s.Equal("", capitalize(""))
}

func (s *RenderTestSuite) TestParseFlags() {
	var stderr bytes.Buffer

	opts, err := parseFlags([]string{"--place", "Dhaka", "--api-key", "secret"}, viper.New(), &stderr)
	s.Require().NoError(err)
	s.Equal("Dhaka", opts.place)
	s.False(opts.searchMode)

	v := viper.New()
	_, err = parseFlags([]string{"--api-key", "secret"}, v, &stderr)
	s.Require().NoError(err)
	s.Equal("secret", v.GetString("OPENWEATHER_API_KEY"))

	opts, err = parseFlags([]string{"--search", ""}, viper.New(), &stderr)
	s.Require().NoError(err)
	s.True(opts.searchMode)

	_, err = parseFlags([]string{"--place", "Dhaka", "--current"}, viper.New(), &stderr)
	s.Error(err)
}

func (s *RenderTestSuite) TestRunRejectsUnknownPlace() {
	var stdout, stderr bytes.Buffer

	s.T().Setenv("LOCATION_SOURCE", "static")

	code := run([]string{"--place", "Atlantis"}, &stdout, &stderr)

	s.Equal(1, code)
	s.Contains(stderr.String(), search.InvalidSelectionNotice)
	s.Empty(stdout.String())
}

func (s *RenderTestSuite) TestRunSearch() {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--search", "dha"}, &stdout, &stderr)

	s.Equal(0, code)
	s.Contains(stdout.String(), "[Dha]ka")
	s.Contains(stdout.String(), "Gaiban[dha]")
}

func TestRenderTestSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}
