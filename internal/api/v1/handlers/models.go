package handlers

import (
	"ulascansenturk/zila-weather/internal/db/weatherquery"
	"ulascansenturk/zila-weather/internal/search"
	"ulascansenturk/zila-weather/internal/service"
)

type HomeResponse struct {
	Route string       `json:"route"`
	View  service.View `json:"view"`
}

type SearchResult struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Region   *string          `json:"region"`
	Country  string           `json:"country"`
	Segments []search.Segment `json:"segments"`
	Selected bool             `json:"selected"`
}

type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

type SubmitResponse struct {
	Route string `json:"route"`
	Place string `json:"place"`
}

type HistoryResponse struct {
	Lookups []weatherquery.WeatherQuery `json:"lookups"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
