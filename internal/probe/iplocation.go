package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

type ipLocationResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// IPPosition resolves the device position from an ip-api.com compatible endpoint.
type IPPosition struct {
	endpoint string
	client   *http.Client
}

func NewIPPosition(endpoint string, timeout time.Duration) *IPPosition {
	return &IPPosition{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *IPPosition) Position(ctx context.Context) (*Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create location request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("location request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("location service returned status code: %d", resp.StatusCode)
	}

	var body ipLocationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("location service returned malformed JSON: %w", err)
	}

	if body.Status != "success" {
		log.Debug().Str("status", body.Status).Str("message", body.Message).Msg("location service could not resolve position")
		return nil, nil
	}

	return &Position{Latitude: body.Lat, Longitude: body.Lon}, nil
}
