package service

import (
	"ulascansenturk/zila-weather/internal/providers"
)

const FetchingPlaceholder = "Fetching weather data..."

// State is what the orchestrator publishes. The three fields are independent:
// an error can be set while an older snapshot is still held. View applies the
// rendering precedence.
type State struct {
	Weather      *providers.Snapshot `json:"weather"`
	IsLoading    bool                `json:"is_loading"`
	ErrorMessage *string             `json:"error_message"`
}

type Screen string

const (
	ScreenLoading Screen = "loading"
	ScreenError   Screen = "error"
	ScreenContent Screen = "content"
)

type View struct {
	Screen       Screen              `json:"screen"`
	ErrorMessage string              `json:"error_message,omitempty"`
	Weather      *providers.Snapshot `json:"weather,omitempty"`
	IconURL      string              `json:"icon_url,omitempty"`
	Placeholder  string              `json:"placeholder,omitempty"`
}

// View resolves the state to exactly one screen: loading first, then error,
// then content.
func (s State) View() View {
	switch {
	case s.IsLoading:
		return View{Screen: ScreenLoading}
	case s.ErrorMessage != nil:
		return View{Screen: ScreenError, ErrorMessage: *s.ErrorMessage}
	case s.Weather == nil:
		return View{Screen: ScreenContent, Placeholder: FetchingPlaceholder}
	default:
		weather := *s.Weather
		return View{
			Screen:  ScreenContent,
			Weather: &weather,
			IconURL: weather.IconURL(),
		}
	}
}

func (s State) HasError() bool {
	return s.ErrorMessage != nil
}

// Message returns the error message or an empty string.
func (s State) Message() string {
	if s.ErrorMessage == nil {
		return ""
	}
	return *s.ErrorMessage
}
