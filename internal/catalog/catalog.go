// Package catalog holds the bundled list of places (zilas) that can be searched
// and looked up by name. The list is loaded once and never mutated.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
)

//go:embed zilas.json
var bundledPlaces []byte

var ErrDuplicateID = errors.New("duplicate place id")

type Coordinates struct {
	Longitude float64 `json:"lon" validate:"gte=-180,lte=180"`
	Latitude  float64 `json:"lat" validate:"gte=-90,lte=90"`
}

type Place struct {
	ID          int         `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Region      *string     `json:"state"`
	Country     string      `json:"country" validate:"required"`
	Coordinates Coordinates `json:"coord"`
}

type Catalog struct {
	places []Place
	byID   map[int]int
	byName map[string][]int
}

// Load parses the place list embedded in the binary.
func Load() (*Catalog, error) {
	return Parse(bundledPlaces)
}

func Parse(data []byte) (*Catalog, error) {
	var places []Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("failed to decode place catalog: %w", err)
	}

	return New(places)
}

// New validates the records and builds the id and name indexes. Names are
// bucketed by their full case folding.
func New(places []Place) (*Catalog, error) {
	validate := validator.New()
	fold := cases.Fold()

	c := &Catalog{
		places: make([]Place, len(places)),
		byID:   make(map[int]int, len(places)),
		byName: make(map[string][]int, len(places)),
	}
	copy(c.places, places)

	for i, place := range c.places {
		if err := validate.Struct(place); err != nil {
			return nil, fmt.Errorf("invalid place at index %d: %w", i, err)
		}

		if _, exists := c.byID[place.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, place.ID)
		}
		c.byID[place.ID] = i

		key := fold.String(place.Name)
		c.byName[key] = append(c.byName[key], i)
	}

	return c, nil
}

// Places returns the catalog in its original order. The slice is a copy.
func (c *Catalog) Places() []Place {
	out := make([]Place, len(c.places))
	copy(out, c.places)
	return out
}

func (c *Catalog) Len() int {
	return len(c.places)
}

func (c *Catalog) ByID(id int) (Place, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Place{}, false
	}
	return c.places[i], true
}

// LookupName finds the first place whose name equals name ignoring case. Runes
// are compared one to one under simple folding, the same rule search filtering
// uses, so "STRASSE" does not match "Straße".
func (c *Catalog) LookupName(name string) (Place, bool) {
	for _, i := range c.byName[cases.Fold().String(name)] {
		if strings.EqualFold(c.places[i].Name, name) {
			return c.places[i], true
		}
	}
	return Place{}, false
}
