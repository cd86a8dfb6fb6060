package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"ulascansenturk/zila-weather/internal/db/weatherquery"
	"ulascansenturk/zila-weather/internal/probe"
	"ulascansenturk/zila-weather/internal/providers"
)

const (
	MessageNoConnectivity     = "No internet connection. Please check your network."
	MessageLocationDisabled   = "GPS not enabled. Please Enable your Location and retry."
	MessagePermissionRequired = "Location permission required. Please Grant location permission first and retry."
	MessageLocationNotFound   = "Location Not found."
	MessageFetchFailed        = "Failed to get weather report"
	MessageUnexpected         = "An unexpected error occurred."
)

type WeatherOrchestrator interface {
	FetchByPlaceName(name string)
	FetchByCurrentLocation()
	SetErrorMessage(message string)
	Retry(place string)
	State() State
	Subscribe() (<-chan State, func())
}

// Orchestrator sequences the probes and the gateway and publishes the outcome as
// State. Every fetch runs in its own task; overlapping fetches are not
// coordinated, so the last one to complete wins.
type Orchestrator struct {
	gateway      providers.WeatherGateway
	connectivity probe.ConnectivityProbe
	location     probe.LocationProbe
	history      weatherquery.Repository

	ctx       context.Context
	cancel    context.CancelFunc
	tasks     conc.WaitGroup
	publisher *publisher

	mu     sync.Mutex
	state  State
	closed bool
}

// NewOrchestrator builds an orchestrator. history may be nil, which disables
// lookup recording.
func NewOrchestrator(
	gateway providers.WeatherGateway,
	connectivity probe.ConnectivityProbe,
	location probe.LocationProbe,
	history weatherquery.Repository,
) *Orchestrator {
	ctx, cancel := context.WithCancel(context.Background())

	return &Orchestrator{
		gateway:      gateway,
		connectivity: connectivity,
		location:     location,
		history:      history,
		ctx:          ctx,
		cancel:       cancel,
		publisher:    newPublisher(),
	}
}

func (o *Orchestrator) FetchByPlaceName(name string) {
	o.launch("fetch_by_name", func(ctx context.Context, logger zerolog.Logger) {
		logger.Info().Str("place", name).Msg("fetching weather by place name")

		snapshot, err := o.gateway.FetchByName(ctx, name)
		o.complete(ctx, logger, snapshot, err, weatherquery.SourceName)
	})
}

func (o *Orchestrator) FetchByCurrentLocation() {
	if !o.connectivity.IsAvailable(o.ctx) {
		o.SetErrorMessage(MessageNoConnectivity)
		return
	}
	if !o.location.IsEnabled() {
		o.SetErrorMessage(MessageLocationDisabled)
		return
	}
	if !o.location.HasPermission() {
		o.SetErrorMessage(MessagePermissionRequired)
		return
	}

	o.launch("fetch_by_location", func(ctx context.Context, logger zerolog.Logger) {
		position, err := o.location.LastKnownPosition(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to resolve device position")
			o.finish(withError(errorText(err)))
			return
		}
		if position == nil {
			logger.Info().Msg("no last known device position")
			o.finish(withError(MessageLocationNotFound))
			return
		}

		logger.Info().
			Float64("lat", position.Latitude).
			Float64("lon", position.Longitude).
			Msg("fetching weather by coordinates")

		snapshot, err := o.gateway.FetchByCoordinates(ctx, position.Latitude, position.Longitude)
		o.complete(ctx, logger, snapshot, err, weatherquery.SourceCoordinates)
	})
}

// SetErrorMessage overrides the error message and leaves the other fields alone.
func (o *Orchestrator) SetErrorMessage(message string) {
	o.update(withError(message))
}

// Retry repeats the lookup the error panel belongs to: by name when a place is
// known, otherwise by current location.
func (o *Orchestrator) Retry(place string) {
	if strings.TrimSpace(place) != "" {
		o.FetchByPlaceName(place)
		return
	}
	o.FetchByCurrentLocation()
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.state
}

// Subscribe returns a channel that first yields the current state and then every
// published change. The returned func unsubscribes and closes the channel.
func (o *Orchestrator) Subscribe() (<-chan State, func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.publisher.subscribe(o.state)
}

// Wait blocks until every started task has finished.
func (o *Orchestrator) Wait() {
	o.tasks.Wait()
}

// Close cancels in-flight tasks and closes all subscriptions. Results that
// arrive afterwards are dropped.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.mu.Unlock()

	o.cancel()
	o.publisher.close()
	o.tasks.Wait()
}

// launch marks the state as loading and registers the task in one locked step,
// so a concurrent Close either sees the task in its Wait or stops it from starting.
func (o *Orchestrator) launch(operation string, task func(ctx context.Context, logger zerolog.Logger)) {
	logger := log.With().
		Str("task_id", uuid.NewString()).
		Str("operation", operation).
		Logger()

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		logger.Debug().Msg("orchestrator closed, task not started")
		return
	}

	o.state.IsLoading = true
	o.state.ErrorMessage = nil
	o.publisher.publish(o.state)

	o.tasks.Go(func() {
		var catcher panics.Catcher
		catcher.Try(func() {
			task(o.ctx, logger)
		})

		if recovered := catcher.Recovered(); recovered != nil {
			logger.Error().
				Interface("panic", recovered.Value).
				Str("stack", string(recovered.Stack)).
				Msg("weather task panicked")
			o.finish(withError(MessageUnexpected))
		}
	})
}

func (o *Orchestrator) complete(
	ctx context.Context,
	logger zerolog.Logger,
	snapshot providers.Snapshot,
	err error,
	source string,
) {
	if err != nil {
		logger.Warn().Err(err).Msg("failed to fetch weather")
		o.finish(withError(failureMessage(err)))
		return
	}

	logger.Info().
		Str("place", snapshot.PlaceName).
		Float64("temperature", snapshot.TemperatureCelsius).
		Msg("weather fetched")

	if !o.finish(func(s *State) { s.Weather = &snapshot }) {
		return
	}

	o.record(ctx, logger, snapshot, source)
}

func (o *Orchestrator) record(ctx context.Context, logger zerolog.Logger, snapshot providers.Snapshot, source string) {
	if o.history == nil {
		return
	}

	err := o.history.LogWeatherQuery(ctx, &weatherquery.WeatherQuery{
		PlaceName:          snapshot.PlaceName,
		CountryCode:        snapshot.CountryCode,
		TemperatureCelsius: snapshot.TemperatureCelsius,
		HumidityPercent:    snapshot.HumidityPercent,
		Source:             source,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to record weather lookup")
	}
}

func (o *Orchestrator) finish(mutate func(*State)) bool {
	return o.update(func(s *State) {
		mutate(s)
		s.IsLoading = false
	})
}

// update applies mutate and publishes while holding the lock so subscribers see
// changes in the order they were made. It reports false after Close.
func (o *Orchestrator) update(mutate func(*State)) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return false
	}

	mutate(&o.state)
	o.publisher.publish(o.state)

	return true
}

func withError(message string) func(*State) {
	return func(s *State) {
		s.ErrorMessage = &message
	}
}

func failureMessage(err error) string {
	var fetchErr *providers.FetchError
	if errors.As(err, &fetchErr) {
		if fetchErr.Message != "" {
			return fetchErr.Message
		}
		return MessageFetchFailed
	}
	return errorText(err)
}

func errorText(err error) string {
	if message := err.Error(); message != "" {
		return message
	}
	return MessageUnexpected
}
