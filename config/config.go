package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"ulascansenturk/zila-weather/internal/providers"
)

const (
	LocationSourceStatic = "static"
	LocationSourceIP     = "ip"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	OpenWeatherRPS     float64
	OpenWeatherBurst   int

	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration

	SearchCacheTTL time.Duration

	LocationEnabled    bool
	LocationPermission bool
	LocationSource     string
	LocationLatitude   *float64
	LocationLongitude  *float64
	IPLocationURL      string
}

// LoadConfig reads defaults, an optional .env file and the environment.
func LoadConfig() (*Config, error) {
	return Load(viper.New())
}

// Load reads configuration into v. Callers may bind flags to v beforehand.
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault("SERVICE_NAME", "zila-weather")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("OPENWEATHER_BASE_URL", providers.DefaultBaseURL)
	v.SetDefault("OPENWEATHER_RPS", 1.0)
	v.SetDefault("OPENWEATHER_BURST", 5)
	v.SetDefault("BREAKER_MAX_FAILURES", 5)
	v.SetDefault("BREAKER_OPEN_TIMEOUT", 30*time.Second)
	v.SetDefault("SEARCH_CACHE_TTL", 10*time.Minute)
	v.SetDefault("LOCATION_ENABLED", true)
	v.SetDefault("LOCATION_PERMISSION", false)
	v.SetDefault("LOCATION_SOURCE", LocationSourceIP)
	v.SetDefault("IP_LOCATION_URL", "http://ip-api.com/json")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		DBName:             v.GetString("DATABASE_NAME"),
		DBPassword:         v.GetString("DATABASE_PASSWORD"),
		DBUser:             v.GetString("DATABASE_USER"),
		DBPort:             v.GetString("DATABASE_PORT"),
		DBHost:             v.GetString("DATABASE_HOST"),
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		HTTPTimeout:        v.GetInt32("HTTP_TIMEOUT"),
		OpenWeatherAPIKey:  v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: v.GetString("OPENWEATHER_BASE_URL"),
		OpenWeatherRPS:     v.GetFloat64("OPENWEATHER_RPS"),
		OpenWeatherBurst:   v.GetInt("OPENWEATHER_BURST"),
		BreakerMaxFailures: v.GetUint32("BREAKER_MAX_FAILURES"),
		BreakerOpenTimeout: v.GetDuration("BREAKER_OPEN_TIMEOUT"),
		SearchCacheTTL:     v.GetDuration("SEARCH_CACHE_TTL"),
		LocationEnabled:    v.GetBool("LOCATION_ENABLED"),
		LocationPermission: v.GetBool("LOCATION_PERMISSION"),
		LocationSource:     v.GetString("LOCATION_SOURCE"),
		IPLocationURL:      v.GetString("IP_LOCATION_URL"),
	}

	if v.IsSet("LOCATION_LATITUDE") && v.IsSet("LOCATION_LONGITUDE") {
		lat := v.GetFloat64("LOCATION_LATITUDE")
		lon := v.GetFloat64("LOCATION_LONGITUDE")
		config.LocationLatitude = &lat
		config.LocationLongitude = &lon
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.LocationSource {
	case LocationSourceStatic, LocationSourceIP:
	default:
		return fmt.Errorf("unsupported LOCATION_SOURCE %q", c.LocationSource)
	}

	if c.OpenWeatherRPS <= 0 {
		return fmt.Errorf("OPENWEATHER_RPS must be positive, got %v", c.OpenWeatherRPS)
	}
	if c.OpenWeatherBurst < 1 {
		return fmt.Errorf("OPENWEATHER_BURST must be at least 1, got %d", c.OpenWeatherBurst)
	}

	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// HistoryEnabled reports whether lookups are recorded to postgres.
func (c *Config) HistoryEnabled() bool {
	return c.DBHost != ""
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
