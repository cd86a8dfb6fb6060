package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/zila-weather/internal/db/weatherquery"
	"ulascansenturk/zila-weather/internal/navigation"
	"ulascansenturk/zila-weather/internal/probe"
	"ulascansenturk/zila-weather/internal/search"
	"ulascansenturk/zila-weather/internal/service"
)

const (
	homePath       = "/api/v1/home"
	currentPath    = "/api/v1/home/current"
	retryPath      = "/api/v1/home/retry"
	searchPath     = "/api/v1/search"
	submitPath     = "/api/v1/search/submit"
	permissionPath = "/api/v1/permission"
	historyPath    = "/api/v1/history"
)

// ViewHandler renders the home and search screens as JSON. It holds no decision
// logic: every action is forwarded to the orchestrator or the navigator.
type ViewHandler struct {
	orchestrator service.WeatherOrchestrator
	navigator    *navigation.Navigator
	searcher     *search.Searcher
	permission   *probe.Permission
	history      weatherquery.Repository
	timeout      time.Duration
}

// NewViewHandler builds the handler. history may be nil when no database is configured.
func NewViewHandler(
	orchestrator service.WeatherOrchestrator,
	navigator *navigation.Navigator,
	searcher *search.Searcher,
	permission *probe.Permission,
	history weatherquery.Repository,
	timeout time.Duration,
) *ViewHandler {
	return &ViewHandler{
		orchestrator: orchestrator,
		navigator:    navigator,
		searcher:     searcher,
		permission:   permission,
		history:      history,
		timeout:      timeout,
	}
}

func (h *ViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == homePath:
		h.GetHome(w, r)
	case r.Method == http.MethodPost && r.URL.Path == homePath:
		h.NavigateHome(w, r)
	case r.Method == http.MethodPost && r.URL.Path == currentPath:
		h.FetchCurrentLocation(w, r)
	case r.Method == http.MethodPost && r.URL.Path == retryPath:
		h.Retry(w, r)
	case r.Method == http.MethodGet && r.URL.Path == searchPath:
		h.Search(w, r)
	case r.Method == http.MethodPost && r.URL.Path == submitPath:
		h.SubmitSearch(w, r)
	case r.Method == http.MethodPost && r.URL.Path == permissionPath:
		h.SetPermission(w, r)
	case r.Method == http.MethodGet && r.URL.Path == historyPath:
		h.GetHistory(w, r)
	case isKnownPath(r.URL.Path):
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *ViewHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.home())
}

func (h *ViewHandler) NavigateHome(w http.ResponseWriter, r *http.Request) {
	place := r.URL.Query().Get("place")

	h.navigator.Navigate(navigation.Home(place))

	respondWithJSON(w, http.StatusAccepted, h.home())
}

func (h *ViewHandler) FetchCurrentLocation(w http.ResponseWriter, r *http.Request) {
	h.orchestrator.FetchByCurrentLocation()

	respondWithJSON(w, http.StatusAccepted, h.home())
}

// Retry repeats the failed lookup. Without an explicit place it uses the place
// of the current home route, falling back to the device location.
func (h *ViewHandler) Retry(w http.ResponseWriter, r *http.Request) {
	place := r.URL.Query().Get("place")
	if place == "" {
		place = h.navigator.Current().Place
	}

	h.orchestrator.Retry(place)

	respondWithJSON(w, http.StatusAccepted, h.home())
}

func (h *ViewHandler) Search(w http.ResponseWriter, r *http.Request) {
	result := h.searcher.Search(r.URL.Query().Get("q"))

	response := SearchResponse{
		Query:   result.Query,
		Results: make([]SearchResult, 0, len(result.Matches)),
	}
	for _, match := range result.Matches {
		response.Results = append(response.Results, SearchResult{
			ID:       match.Place.ID,
			Name:     match.Place.Name,
			Region:   match.Place.Region,
			Country:  match.Place.Country,
			Segments: match.Segments,
			Selected: match.Selected,
		})
	}

	respondWithJSON(w, http.StatusOK, response)
}

func (h *ViewHandler) SubmitSearch(w http.ResponseWriter, r *http.Request) {
	candidate := r.URL.Query().Get("q")

	route, err := h.navigator.SubmitSearch(h.searcher.Catalog(), candidate)
	switch {
	case errors.Is(err, search.ErrEmptySelection):
		w.WriteHeader(http.StatusNoContent)
		return
	case errors.Is(err, search.ErrInvalidSelection):
		respondWithError(w, http.StatusBadRequest, search.InvalidSelectionNotice)
		return
	case err != nil:
		log.Error().Err(err).Str("candidate", candidate).Msg("failed to submit search")
		respondWithError(w, http.StatusInternalServerError, "failed to submit search: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, SubmitResponse{
		Route: route.String(),
		Place: route.Place,
	})
}

// SetPermission is the answer to the location permission prompt.
func (h *ViewHandler) SetPermission(w http.ResponseWriter, r *http.Request) {
	granted, err := strconv.ParseBool(r.URL.Query().Get("granted"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "parameter 'granted' must be true or false")
		return
	}

	if granted {
		log.Info().Msg("location permission granted, fetching current location")
		h.permission.Grant()
		h.orchestrator.FetchByCurrentLocation()
	} else {
		h.permission.Deny()
		h.orchestrator.SetErrorMessage(service.MessagePermissionRequired)
	}

	respondWithJSON(w, http.StatusAccepted, h.home())
}

func (h *ViewHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		respondWithError(w, http.StatusNotFound, "lookup history is disabled")
		return
	}

	limit := weatherquery.DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondWithError(w, http.StatusBadRequest, "parameter 'limit' must be a positive integer")
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	lookups, err := h.history.RecentWeatherQueries(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to read lookup history")
		respondWithError(w, http.StatusInternalServerError, "failed to read lookup history: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, HistoryResponse{Lookups: lookups})
}

func (h *ViewHandler) home() HomeResponse {
	return HomeResponse{
		Route: h.navigator.Current().String(),
		View:  h.orchestrator.State().View(),
	}
}

func isKnownPath(path string) bool {
	switch path {
	case homePath, currentPath, retryPath, searchPath, submitPath, permissionPath, historyPath:
		return true
	}
	return false
}
