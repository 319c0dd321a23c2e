package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"citycard/internal/domain/entity"
	mockUC "citycard/internal/mocks/usecase"
	"citycard/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWeatherHandler_GetWeatherDefaultsCity(t *testing.T) {
	weatherUC := mockUC.NewMockWeatherUsecase(t)
	h := NewWeatherHandler(WeatherHandlerParams{WeatherUC: weatherUC, Logger: newDiscardLogger()})

	weatherUC.EXPECT().GetWeather(mock.Anything, "").Return(&entity.Weather{
		Temp:       5,
		Condition:  "Облачно",
		Icon:       "Cloud",
		NeedsSetup: true,
	}, nil).Once()

	c, rec := newContext(http.MethodGet, "/?action=weather", "")
	require.NoError(t, h.GetWeather(c))

	assert.JSONEq(t, `{"temp":5,"condition":"Облачно","icon":"Cloud","needsSetup":true}`, rec.Body.String())
}

func TestWeatherHandler_SetWeatherCity(t *testing.T) {
	weatherUC := mockUC.NewMockWeatherUsecase(t)
	h := NewWeatherHandler(WeatherHandlerParams{WeatherUC: weatherUC, Logger: newDiscardLogger()})

	weatherUC.EXPECT().SetWeatherCity(mock.Anything, int64(1), "Шушары").Return(nil).Once()

	c, rec := newContext(http.MethodPost, "/?action=set-weather-city", `{"userId":1,"city":"Шушары"}`)
	require.NoError(t, h.SetWeatherCity(c))

	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestGovServicesHandler_GetGovServices(t *testing.T) {
	govUC := mockUC.NewMockGovServicesUsecase(t)
	h := NewGovServicesHandler(govUC)

	govUC.EXPECT().GetGovServices(mock.Anything, int64(1)).Return(&usecase.GovServicesOutput{
		Taxes: []*entity.Tax{{
			ID:      1,
			TaxType: "Транспортный налог",
			Amount:  decimal.RequireFromString("4321.09"),
			Year:    2025,
			DueDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		}},
		Benefits: []*entity.Benefit{},
	}, nil).Once()

	c, rec := newContext(http.MethodGet, "/?action=gosuslugi&userId=1", "")
	require.NoError(t, h.GetGovServices(c))

	assert.JSONEq(t, `{
		"taxes": [{"id":1,"taxType":"Транспортный налог","amount":4321.09,"year":2025,"isPaid":false,"dueDate":"2025-12-01"}],
		"benefits": []
	}`, rec.Body.String())
}

func TestDashboardHandler_SaveWidgetsKeepsOrder(t *testing.T) {
	dashboardUC := mockUC.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(dashboardUC)

	dashboardUC.EXPECT().SaveWidgets(mock.Anything, int64(1), []*entity.WidgetSetting{
		{UserID: 1, WidgetType: "transport", IsVisible: true, Position: 1},
		{UserID: 1, WidgetType: "weather", IsVisible: false, Position: 0},
	}).Return(nil).Once()

	c, rec := newContext(http.MethodPost, "/?action=widgets", `{"userId":1,"widgets":[
		{"widgetType":"transport","isVisible":true,"position":1},
		{"widgetType":"weather","isVisible":false,"position":0}
	]}`)
	require.NoError(t, h.SaveWidgets(c))

	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestDocumentHandler_AddPassport(t *testing.T) {
	documentUC := mockUC.NewMockDocumentUsecase(t)
	h := NewDocumentHandler(DocumentHandlerParams{DocumentUC: documentUC, Logger: newDiscardLogger()})

	documentUC.EXPECT().AddPassport(mock.Anything, &entity.Passport{UserID: 1, Series: "4010", Number: "123456"}).
		Run(func(_ context.Context, p *entity.Passport) { p.ID = 8 }).
		Return(nil).Once()

	c, rec := newContext(http.MethodPost, "/?action=add-passport", `{"userId":1,"series":"4010","number":"123456"}`)
	require.NoError(t, h.AddPassport(c))

	assert.JSONEq(t, `{"id":8,"success":true}`, rec.Body.String())
}

func TestDocumentHandler_PassportQR(t *testing.T) {
	documentUC := mockUC.NewMockDocumentUsecase(t)
	h := NewDocumentHandler(DocumentHandlerParams{DocumentUC: documentUC, Logger: newDiscardLogger()})

	documentUC.EXPECT().PassportQR(mock.Anything, int64(1), int64(8)).Return([]byte("png"), nil).Once()

	c, rec := newContext(http.MethodGet, "/?action=passport-qr&userId=1&passportId=8", "")
	require.NoError(t, h.PassportQR(c))

	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "png", rec.Body.String())
}
