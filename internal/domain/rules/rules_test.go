package rules

import (
	"testing"

	"citycard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBankCard(t *testing.T) {
	tests := []struct {
		name       string
		holder     string
		bank       string
		affiliated bool
		points     int
	}{
		{name: "bank name lower case", holder: "IVAN PETROV", bank: "сбербанк", affiliated: true, points: 1000},
		{name: "bank name mixed case", holder: "IVAN PETROV", bank: "СберБанк", affiliated: true, points: 1000},
		{name: "holder name carries marker", holder: "СБЕР ПРЕМЬЕР", bank: "", affiliated: true, points: 1000},
		{name: "other bank", holder: "IVAN PETROV", bank: "Тинькофф", affiliated: false, points: 0},
		{name: "latin transliteration is not a match", holder: "IVAN", bank: "Sberbank", affiliated: false, points: 0},
		{name: "empty", affiliated: false, points: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			affiliated, points := ClassifyBankCard(tt.holder, tt.bank)
			assert.Equal(t, tt.affiliated, affiliated)
			assert.Equal(t, tt.points, points)
		})
	}
}

func TestWeatherIcon(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{code: 200, want: IconThunder},
		{code: 250, want: IconThunder},
		{code: 299, want: IconThunder},
		{code: 300, want: IconRain},
		{code: 550, want: IconRain},
		{code: 599, want: IconRain},
		{code: 600, want: IconSnow},
		{code: 650, want: IconSnow},
		{code: 701, want: IconCloud},
		{code: 800, want: IconClear},
		{code: 801, want: IconCloud},
		{code: 810, want: IconCloud},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WeatherIcon(tt.code), "code %d", tt.code)
	}
}

func TestResolveCity(t *testing.T) {
	assert.Equal(t, "Saint Petersburg", ResolveCity(""))
	assert.Equal(t, "Saint Petersburg", ResolveCity("spb"))
	assert.Equal(t, "Moscow", ResolveCity("msk"))
	assert.Equal(t, "Sochi", ResolveCity("sochi"))
	assert.Equal(t, "Shushary", ResolveCity("Шушары"))
	assert.Equal(t, "Kazan", ResolveCity("Kazan"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Небольшой дождь", Capitalize("небольшой дождь"))
	assert.Equal(t, "Ясно", Capitalize("ЯСНО"))
	assert.Equal(t, "Overcast clouds", Capitalize("overcast Clouds"))
	assert.Equal(t, "", Capitalize(""))
}

func TestWeatherFromReading(t *testing.T) {
	got := WeatherFromReading(&entity.WeatherReading{
		Temperature:   -3.5,
		Description:   "снег",
		ConditionCode: 601,
	})

	assert.Equal(t, &entity.Weather{Temp: -4, Condition: "Снег", Icon: IconSnow}, got)
}

func TestRoundTemperature(t *testing.T) {
	tests := []struct {
		celsius float64
		want    int
	}{
		{celsius: 2.4, want: 2},
		{celsius: 2.5, want: 2},
		{celsius: 3.5, want: 4},
		{celsius: 2.6, want: 3},
		{celsius: -0.5, want: 0},
		{celsius: -1.5, want: -2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundTemperature(tt.celsius), "celsius %v", tt.celsius)
	}
}

func TestPlaceholderWeather(t *testing.T) {
	got := PlaceholderWeather()

	assert.Equal(t, 5, got.Temp)
	assert.Equal(t, IconCloud, got.Icon)
	assert.True(t, got.NeedsSetup)
}
