package main

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"ulascansenturk/zila-weather/internal/search"
	"ulascansenturk/zila-weather/internal/service"
)

const noMatchesText = "No matching zilas found"

func renderHome(view service.View) string {
	var b strings.Builder

	switch view.Screen {
	case service.ScreenLoading:
		b.WriteString("Loading...\n")
	case service.ScreenError:
		fmt.Fprintf(&b, "Error: %s\n", view.ErrorMessage)
		b.WriteString("Retry with --place NAME or --current\n")
	default:
		if view.Weather == nil {
			fmt.Fprintf(&b, "%s\n", view.Placeholder)
			break
		}

		w := view.Weather
		fmt.Fprintf(&b, "%s, %s\n", w.PlaceName, w.CountryCode)
		fmt.Fprintf(&b, "%.1f°C\n", w.TemperatureCelsius)
		if w.ConditionDescription != "" {
			fmt.Fprintf(&b, "%s\n", capitalize(w.ConditionDescription))
		}
		fmt.Fprintf(&b, "Humidity: %d%%\n", w.HumidityPercent)
		if view.IconURL != "" {
			fmt.Fprintf(&b, "Icon: %s\n", view.IconURL)
		}
	}

	return b.String()
}

func renderSearch(result search.Result) string {
	if len(result.Matches) == 0 {
		return noMatchesText + "\n"
	}

	var b strings.Builder
	for _, match := range result.Matches {
		marker := " "
		if match.Selected {
			marker = "*"
		}

		fmt.Fprintf(&b, "%s %s", marker, renderSegments(match.Segments))
		if match.Place.Region != nil {
			fmt.Fprintf(&b, " (%s)", *match.Place.Region)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderSegments(segments []search.Segment) string {
	var b strings.Builder
	for _, segment := range segments {
		if segment.Highlighted {
			b.WriteString("[" + segment.Text + "]")
			continue
		}
		b.WriteString(segment.Text)
	}
	return b.String()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
