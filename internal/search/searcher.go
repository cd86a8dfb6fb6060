package search

import (
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/zila-weather/internal/catalog"
	"ulascansenturk/zila-weather/internal/inmemorycache"
)

type Match struct {
	Place    catalog.Place `json:"place"`
	Segments []Segment     `json:"segments"`
	Selected bool          `json:"selected"`
}

type Result struct {
	Query   string  `json:"query"`
	Matches []Match `json:"matches"`
}

// Searcher runs Filter against a catalog and memoizes the matching ids per query.
type Searcher struct {
	catalog *catalog.Catalog
	cache   inmemorycache.Cache
	ttl     time.Duration
}

func NewSearcher(c *catalog.Catalog, cache inmemorycache.Cache, ttl time.Duration) *Searcher {
	return &Searcher{
		catalog: c,
		cache:   cache,
		ttl:     ttl,
	}
}

func (s *Searcher) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Searcher) Search(query string) Result {
	places := s.filter(query)

	matches := make([]Match, 0, len(places))
	for _, place := range places {
		matches = append(matches, Match{
			Place:    place,
			Segments: Highlight(place.Name, query),
			Selected: place.Name == query,
		})
	}

	return Result{
		Query:   query,
		Matches: matches,
	}
}

func (s *Searcher) Select(candidate string) (catalog.Place, error) {
	return Select(s.catalog, candidate)
}

func (s *Searcher) filter(query string) []catalog.Place {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(query)
		if err != nil {
			log.Warn().Err(err).Str("query", query).Msg("failed to read cached search result")
		}
		if ok {
			if places, complete := s.resolve(cached.PlaceIDs); complete {
				return places
			}
		}
	}

	places := Filter(s.catalog.Places(), query)

	if s.cache != nil {
		ids := make([]int, 0, len(places))
		for _, place := range places {
			ids = append(ids, place.ID)
		}
		if err := s.cache.Set(query, &inmemorycache.SearchCacheData{PlaceIDs: ids}, s.ttl); err != nil {
			log.Warn().Err(err).Str("query", query).Msg("failed to cache search result")
		}
	}

	return places
}

func (s *Searcher) resolve(ids []int) ([]catalog.Place, bool) {
	places := make([]catalog.Place, 0, len(ids))
	for _, id := range ids {
		place, ok := s.catalog.ByID(id)
		if !ok {
			return nil, false
		}
		places = append(places, place)
	}
	return places, true
}
