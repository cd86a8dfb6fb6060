package weatherquery

import (
	"time"
)

const (
	SourceName        = "name"
	SourceCoordinates = "coordinates"
)

// WeatherQuery is one successful weather lookup. Rows are history only and are
// never read back to answer a lookup.
type WeatherQuery struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	PlaceName          string    `json:"place_name" gorm:"index:idx_place_name"`
	CountryCode        string    `json:"country_code" gorm:"column:country_code"`
	TemperatureCelsius float64   `json:"temperature_celsius" gorm:"column:temperature_celsius"`
	HumidityPercent    int       `json:"humidity_percent" gorm:"column:humidity_percent"`
	Source             string    `json:"source" gorm:"column:source"`
	CreatedAt          time.Time `json:"created_at" gorm:"index:idx_created_at"`
}

func (WeatherQuery) TableName() string {
	return "weather_lookups"
}
