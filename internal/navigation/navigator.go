// Package navigation models the two screens and the back stack between them.
package navigation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"ulascansenturk/zila-weather/internal/catalog"
	"ulascansenturk/zila-weather/internal/search"
)

type Destination string

const (
	DestinationHome   Destination = "home"
	DestinationSearch Destination = "search"
)

const placeParam = "place"

var ErrUnknownRoute = errors.New("unknown route")

type Route struct {
	Destination Destination `json:"destination"`
	Place       string      `json:"place,omitempty"`
}

func Home(place string) Route {
	return Route{Destination: DestinationHome, Place: place}
}

func Search() Route {
	return Route{Destination: DestinationSearch}
}

func (r Route) String() string {
	if r.Destination == DestinationHome && r.Place != "" {
		return string(DestinationHome) + "?" + url.Values{placeParam: {r.Place}}.Encode()
	}
	return string(r.Destination)
}

func ParseRoute(raw string) (Route, error) {
	path, rawQuery, _ := strings.Cut(raw, "?")

	switch Destination(path) {
	case DestinationHome:
		query, err := url.ParseQuery(rawQuery)
		if err != nil {
			return Route{}, fmt.Errorf("invalid home route %q: %w", raw, err)
		}
		return Home(query.Get(placeParam)), nil
	case DestinationSearch:
		return Search(), nil
	default:
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, raw)
	}
}

// PlaceFetcher is the part of the orchestrator the home screen triggers on arrival.
type PlaceFetcher interface {
	FetchByPlaceName(name string)
}

// Navigator keeps the back stack. Arriving at home with a place fetches its weather.
type Navigator struct {
	mu      sync.Mutex
	stack   []Route
	fetcher PlaceFetcher
}

func NewNavigator(fetcher PlaceFetcher) *Navigator {
	return &Navigator{
		stack:   []Route{Home("")},
		fetcher: fetcher,
	}
}

func (n *Navigator) Navigate(route Route) {
	n.mu.Lock()
	n.stack = append(n.stack, route)
	n.mu.Unlock()

	n.arrive(route)
}

func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.stack[len(n.stack)-1]
}

func (n *Navigator) Stack() []Route {
	n.mu.Lock()
	defer n.mu.Unlock()

	stack := make([]Route, len(n.stack))
	copy(stack, n.stack)
	return stack
}

// Back pops the current route. The start destination is never popped.
func (n *Navigator) Back() (Route, bool) {
	n.mu.Lock()
	if len(n.stack) == 1 {
		current := n.stack[0]
		n.mu.Unlock()
		return current, false
	}
	n.stack = n.stack[:len(n.stack)-1]
	current := n.stack[len(n.stack)-1]
	n.mu.Unlock()

	n.arrive(current)
	return current, true
}

// SubmitSearch validates candidate against the catalog. A valid name replaces the
// whole stack with home for that place, so back does not return to search.
func (n *Navigator) SubmitSearch(c *catalog.Catalog, candidate string) (Route, error) {
	place, err := search.Select(c, candidate)
	if err != nil {
		return n.Current(), err
	}

	route := Home(place.Name)

	n.mu.Lock()
	n.stack = []Route{route}
	n.mu.Unlock()

	n.arrive(route)
	return route, nil
}

func (n *Navigator) arrive(route Route) {
	log.Debug().Str("route", route.String()).Msg("navigated")

	if route.Destination == DestinationHome && route.Place != "" && n.fetcher != nil {
		n.fetcher.FetchByPlaceName(route.Place)
	}
}
