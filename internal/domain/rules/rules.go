// Package rules holds the pure functions that derive stored or displayed values from input.
package rules

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"citycard/internal/domain/entity"
)

const (
	// SberMarker identifies an affiliated issuer in a holder or bank name.
	SberMarker = "сбер"

	// SberWelcomePoints is the loyalty balance granted with an affiliated card.
	SberWelcomePoints = 1000
)

// Weather icon names understood by the client.
const (
	IconThunder = "CloudLightning"
	IconRain    = "CloudRain"
	IconSnow    = "CloudSnow"
	IconClear   = "Sun"
	IconCloud   = "Cloud"
)

// DefaultCity is used when the weather request names no city.
const DefaultCity = "Saint Petersburg"

var cityAliases = map[string]string{
	"spb":    "Saint Petersburg",
	"msk":    "Moscow",
	"sochi":  "Sochi",
	"Шушары": "Shushary",
}

// ClassifyBankCard reports whether a card is issuer-affiliated and the loyalty points it starts with.
// The marker is matched case-insensitively against both the holder and the bank name.
func ClassifyBankCard(holderName, bankName string) (affiliated bool, points int) {
	affiliated = strings.Contains(strings.ToLower(holderName), SberMarker) ||
		strings.Contains(strings.ToLower(bankName), SberMarker)
	if affiliated {
		return true, SberWelcomePoints
	}

	return false, 0
}

// WeatherIcon maps a provider condition code onto the five icon categories.
func WeatherIcon(code int) string {
	switch {
	case code < 300:
		return IconThunder
	case code < 600:
		return IconRain
	case code < 700:
		return IconSnow
	case code == 800:
		return IconClear
	default:
		return IconCloud
	}
}

// ResolveCity expands a short city code. Unknown names pass through; empty means DefaultCity.
func ResolveCity(city string) string {
	if city == "" {
		return DefaultCity
	}
	if canonical, ok := cityAliases[city]; ok {
		return canonical
	}

	return city
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// RoundTemperature rounds to whole degrees, halves to the even neighbour.
func RoundTemperature(celsius float64) int {
	return int(math.RoundToEven(celsius))
}

// PlaceholderWeather is served while no provider credential is configured.
func PlaceholderWeather() *entity.Weather {
	return &entity.Weather{
		Temp:       5,
		Condition:  "Облачно",
		Icon:       IconCloud,
		NeedsSetup: true,
	}
}

// WeatherFromReading renders a provider reading for the widget.
func WeatherFromReading(reading *entity.WeatherReading) *entity.Weather {
	return &entity.Weather{
		Temp:      RoundTemperature(reading.Temperature),
		Condition: Capitalize(reading.Description),
		Icon:      WeatherIcon(reading.ConditionCode),
	}
}
