package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"ulascansenturk/zila-weather/config"
	"ulascansenturk/zila-weather/internal/app"
	"ulascansenturk/zila-weather/internal/navigation"
	"ulascansenturk/zila-weather/internal/search"
	"ulascansenturk/zila-weather/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type options struct {
	place         string
	current       bool
	query         string
	searchMode    bool
	grantLocation bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()

	v := viper.New()
	opts, err := parseFlags(args, v, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	conf, err := config.Load(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		return 1
	}

	log.Logger = app.NewLogger(conf, zerolog.ConsoleWriter{Out: stderr})

	application, err := app.New(conf)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize application")
		return 1
	}
	defer application.Close()

	if opts.searchMode {
		fmt.Fprint(stdout, renderSearch(application.Searcher.Search(opts.query)))
		return 0
	}

	var trigger func()
	if opts.place != "" {
		place, err := search.Select(application.Catalog, opts.place)
		if err != nil {
			fmt.Fprintln(stderr, search.InvalidSelectionNotice)
			return 1
		}
		trigger = func() {
			application.Navigator.Navigate(navigation.Home(place.Name))
		}
	} else {
		trigger = func() {
			if opts.grantLocation {
				application.Permission.Grant()
			}
			if !application.Permission.Granted() {
				application.Orchestrator.SetErrorMessage(service.MessagePermissionRequired)
				return
			}
			application.Orchestrator.FetchByCurrentLocation()
		}
	}

	if watch(application.Orchestrator, trigger, stdout).HasError() {
		return 1
	}
	return 0
}

func parseFlags(args []string, v *viper.Viper, stderr io.Writer) (options, error) {
	var opts options

	flags := pflag.NewFlagSet("weather", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.place, "place", "p", "", "show the weather for a zila")
	flags.BoolVarP(&opts.current, "current", "c", false, "show the weather at the current location (default)")
	flags.StringVarP(&opts.query, "search", "s", "", "list zilas whose name contains the query")
	flags.BoolVar(&opts.grantLocation, "grant-location", false, "grant location permission")
	flags.String("api-key", "", "OpenWeatherMap API key (OPENWEATHER_API_KEY)")
	flags.String("log-level", "", "log level (LOG_LEVEL)")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	opts.searchMode = flags.Changed("search")

	if opts.place != "" && opts.current {
		err := errors.New("--place and --current are mutually exclusive")
		fmt.Fprintln(stderr, err)
		return opts, err
	}

	bindings := map[string]string{
		"OPENWEATHER_API_KEY": "api-key",
		"LOG_LEVEL":           "log-level",
	}
	for key, name := range bindings {
		if !flags.Changed(name) {
			continue
		}
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return opts, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	return opts, nil
}

// watch renders every distinct home screen until the triggered work settles and
// returns the final state.
func watch(orchestrator *service.Orchestrator, trigger func(), stdout io.Writer) service.State {
	updates, unsubscribe := orchestrator.Subscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)

		var last string
		for state := range updates {
			out := renderHome(state.View())
			if out != last {
				fmt.Fprint(stdout, out)
				last = out
			}
		}
	}()

	trigger()
	orchestrator.Wait()
	unsubscribe()
	<-done

	return orchestrator.State()
}
