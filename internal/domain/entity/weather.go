package entity

// WeatherReading is the raw observation returned by the weather provider.
type WeatherReading struct {
	Temperature   float64 // Degrees Celsius.
	Description   string  // Localized condition text as returned by the provider.
	ConditionCode int     // Provider condition id.
}

// Weather is the widget-ready view of a reading.
type Weather struct {
	Temp       int
	Condition  string
	Icon       string
	NeedsSetup bool // True when no provider credential is configured.
}
