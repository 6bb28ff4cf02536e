package weather

// HourlyRow is one time-aligned observation from the hourly forecast grid.
// Secondary fields are nil when the upstream array had no value at that index.
type HourlyRow struct {
	Time             string   `json:"time"`
	Temperature2m    *float64 `json:"temperature_2m"`
	WeatherCode      *int     `json:"weather_code"`
	Rain             *float64 `json:"rain"`
	WindDirection10m *float64 `json:"wind_direction_10m"`
}

// DayStats aggregates the rows of one calendar day.
// TempMin/TempMax/RainAvg are nil when no row in the group carried the value.
type DayStats struct {
	DateText string   `json:"dateText"`
	TempMin  *float64 `json:"tempMin"`
	TempMax  *float64 `json:"tempMax"`
	RainAvg  *float64 `json:"rainAvg"`
	Count    int      `json:"count"`
}

// GridResult is the grid response for a single location.
type GridResult struct {
	LocationHeader string      `json:"locationHeader"`
	Rows           []HourlyRow `json:"rows"`
	Days           []DayStats  `json:"days"`
	CountryName    *string     `json:"countryName"`
	CountryCapital *string     `json:"countryCapital"`
	City           *string     `json:"city"`
}

// LocationGrid is one named entry of a multi-location grid response.
type LocationGrid struct {
	Name   string      `json:"name"`
	Header string      `json:"header"`
	Rows   []HourlyRow `json:"rows"`
	Days   []DayStats  `json:"days"`
}

// MultiGridResult is the grid response for the fixed set of named locations.
type MultiGridResult struct {
	Locations []LocationGrid `json:"locations"`
}

// NamedLocation is a fixed grid location with a preset display header.
type NamedLocation struct {
	Name      string
	Header    string
	Latitude  float64
	Longitude float64
}

// gridLocations is the fixed multi-grid location table. Kept as data so it
// could be externalized to config without touching the orchestration.
var gridLocations = []NamedLocation{
	{Name: "Centurion", Header: "South Africa, Gauteng, Centurion", Latitude: -25.86, Longitude: 28.19},
	{Name: "Johannesburg", Header: "South Africa, Gauteng, Johannesburg", Latitude: -26.20, Longitude: 28.05},
	{Name: "Pretoria", Header: "South Africa, Gauteng, Pretoria", Latitude: -25.75, Longitude: 28.19},
}
