package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

type WeatherGateway interface {
	FetchByName(ctx context.Context, name string) (Snapshot, error)
	FetchByCoordinates(ctx context.Context, lat, lon float64) (Snapshot, error)
}

type Snapshot struct {
	PlaceName            string  `json:"place_name"`
	TemperatureCelsius   float64 `json:"temperature_celsius"`
	HumidityPercent      int     `json:"humidity_percent"`
	ConditionDescription string  `json:"condition_description"`
	ConditionIconID      string  `json:"condition_icon_id"`
	CountryCode          string  `json:"country_code"`
}

func (s Snapshot) IconURL() string {
	if s.ConditionIconID == "" {
		return ""
	}
	return fmt.Sprintf("https://openweathermap.org/img/wn/%s@4x.png", s.ConditionIconID)
}

// FetchError is returned when the provider answers with a non-success status or an empty body.
type FetchError struct {
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("weather provider returned status code %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("weather provider returned status code: %d", e.StatusCode)
}

type OpenWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type openWeatherErrorResponse struct {
	Message string `json:"message"`
}

type openWeatherGateway struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenWeatherGateway(apiKey, baseURL string, timeout time.Duration) WeatherGateway {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &openWeatherGateway{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (g *openWeatherGateway) FetchByName(ctx context.Context, name string) (Snapshot, error) {
	params := url.Values{}
	params.Set("q", name)

	return g.fetch(ctx, params)
}

func (g *openWeatherGateway) FetchByCoordinates(ctx context.Context, lat, lon float64) (Snapshot, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	return g.fetch(ctx, params)
}

func (g *openWeatherGateway) fetch(ctx context.Context, params url.Values) (Snapshot, error) {
	params.Set("appid", g.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		// the request URL carries the api key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return Snapshot{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read weather response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Snapshot{}, &FetchError{
			StatusCode: resp.StatusCode,
			Message:    providerMessage(body),
		}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return Snapshot{}, &FetchError{StatusCode: resp.StatusCode}
	}

	var apiResp OpenWeatherResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return Snapshot{}, fmt.Errorf("weather provider returned malformed JSON: %w", err)
	}

	snapshot := Snapshot{
		PlaceName:          apiResp.Name,
		TemperatureCelsius: apiResp.Main.Temp,
		HumidityPercent:    apiResp.Main.Humidity,
		CountryCode:        apiResp.Sys.Country,
	}
	if len(apiResp.Weather) > 0 {
		snapshot.ConditionDescription = apiResp.Weather[0].Description
		snapshot.ConditionIconID = apiResp.Weather[0].Icon
	}

	return snapshot, nil
}

func providerMessage(body []byte) string {
	var errResp openWeatherErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return errResp.Message
}
