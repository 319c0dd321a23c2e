package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"citycard/config"
	"citycard/internal/delivery/api/router"
	"citycard/internal/delivery/api/router/handler"
	"citycard/internal/domain/entity"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/errors"
	"citycard/internal/infra/metrics"
	mockUC "citycard/internal/mocks/usecase"
	"citycard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type usecaseMocks struct {
	account     *mockUC.MockAccountUsecase
	document    *mockUC.MockDocumentUsecase
	wallet      *mockUC.MockWalletUsecase
	vehicle     *mockUC.MockVehicleUsecase
	weather     *mockUC.MockWeatherUsecase
	govServices *mockUC.MockGovServicesUsecase
	dashboard   *mockUC.MockDashboardUsecase
}

func newTestServer(t *testing.T) (*echo.Echo, *usecaseMocks) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	mocks := &usecaseMocks{
		account:     mockUC.NewMockAccountUsecase(t),
		document:    mockUC.NewMockDocumentUsecase(t),
		wallet:      mockUC.NewMockWalletUsecase(t),
		vehicle:     mockUC.NewMockVehicleUsecase(t),
		weather:     mockUC.NewMockWeatherUsecase(t),
		govServices: mockUC.NewMockGovServicesUsecase(t),
		dashboard:   mockUC.NewMockDashboardUsecase(t),
	}

	e := NewEcho(cfg, logger, router.RouterParams{
		AccountHandler:     handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: mocks.account, Logger: logger}),
		DocumentHandler:    handler.NewDocumentHandler(handler.DocumentHandlerParams{DocumentUC: mocks.document, Logger: logger}),
		WalletHandler:      handler.NewWalletHandler(handler.WalletHandlerParams{WalletUC: mocks.wallet, Logger: logger}),
		VehicleHandler:     handler.NewVehicleHandler(handler.VehicleHandlerParams{VehicleUC: mocks.vehicle, Logger: logger}),
		WeatherHandler:     handler.NewWeatherHandler(handler.WeatherHandlerParams{WeatherUC: mocks.weather, Logger: logger}),
		GovServicesHandler: handler.NewGovServicesHandler(mocks.govServices),
		DashboardHandler:   handler.NewDashboardHandler(mocks.dashboard),
		Metrics:            metrics.New(),
		Config:             cfg,
		Logger:             logger,
	})

	return e, mocks
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestDispatch_InvalidAction(t *testing.T) {
	e, _ := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
	}{
		{"unknown action", http.MethodGet, "/?action=teleport"},
		{"missing action", http.MethodGet, "/"},
		{"wrong method", http.MethodGet, "/?action=register"},
		{"api mount", http.MethodDelete, "/api?action=widgets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.method, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, map[string]any{"error": "Invalid action", "code": "INVALID_ACTION"}, decode(t, rec))
		})
	}
}

func TestDispatch_Preflight(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/?action=register", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPut)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), echo.HeaderContentType)
}

func TestDispatch_Login(t *testing.T) {
	e, mocks := newTestServer(t)

	mocks.account.EXPECT().Login(mock.Anything, "+79110000000").Return(&entity.User{
		ID:          7,
		Phone:       "+79110000000",
		FirstName:   "Ivan",
		LastName:    "Petrov",
		BirthDate:   time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Balance:     decimal.RequireFromString("150.5"),
		BonusPoints: 20,
	}, nil).Once()

	rec := do(e, http.MethodPost, "/?action=login", `{"phone":"+79110000000"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"userId": 7,
		"firstName": "Ivan",
		"lastName": "Petrov",
		"middleName": "",
		"birthDate": "1990-04-12",
		"balance": 150.5,
		"bonusPoints": 20,
		"photoUrl": null,
		"phone": "+79110000000"
	}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestDispatch_LoginUnknownPhone(t *testing.T) {
	e, mocks := newTestServer(t)

	mocks.account.EXPECT().Login(mock.Anything, "+70000000000").Return(nil, domainerrors.ErrUserNotFound).Once()

	rec := do(e, http.MethodPost, "/api?action=login", `{"phone":"+70000000000"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decode(t, rec)["code"])
}

func TestDispatch_UserDataEmptyCollections(t *testing.T) {
	e, mocks := newTestServer(t)

	mocks.account.EXPECT().GetUserData(mock.Anything, int64(3)).Return(&usecase.UserDataOutput{
		User: &entity.User{ID: 3, Phone: "+79110000003", BirthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, nil).Once()

	rec := do(e, http.MethodGet, "/?action=user-data&userId=3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	for _, key := range []string{"passports", "podorozhnik", "bankCards", "vehicles", "intercoms", "widgets"} {
		assert.Equal(t, []any{}, body[key], key)
	}
	assert.Nil(t, body["weatherCity"])
	assert.Contains(t, body, "weatherCity")
}

func TestDispatch_PayInsufficientFunds(t *testing.T) {
	e, mocks := newTestServer(t)

	mocks.wallet.EXPECT().Pay(mock.Anything, mock.MatchedBy(func(in usecase.TransitOperationInput) bool {
		return in.CardID == 5 && in.UserID == nil && in.Amount.Equal(decimal.NewFromInt(60))
	})).Return(decimal.Zero, domainerrors.ErrInsufficientFunds).Once()

	rec := do(e, http.MethodPost, "/?action=podorozhnik-pay", `{"cardId":5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "Insufficient funds", "code": "INSUFFICIENT_FUNDS"}, decode(t, rec))
}

func TestDispatch_UnexpectedErrorIsVerbatim(t *testing.T) {
	e, mocks := newTestServer(t)

	mocks.weather.EXPECT().GetWeather(mock.Anything, "msk").
		Return(nil, errors.New("weather lookup for Moscow: dial tcp: i/o timeout")).Once()

	rec := do(e, http.MethodGet, "/?action=weather&city=msk", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{
		"error": "weather lookup for Moscow: dial tcp: i/o timeout",
		"code":  "INTERNAL_ERROR",
	}, decode(t, rec))
}

func TestDispatch_ValidationFailure(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodPost, "/?action=register", `{"phone":"+79110000000","lastName":"Petrov","birthDate":"1990-04-12"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{
		"error":   "Validation failed",
		"code":    "VALIDATION_FAILED",
		"details": "firstName is required",
	}, decode(t, rec))
}

func TestDispatch_MalformedDateNamesField(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodPost, "/?action=register",
		`{"phone":"+79110000000","firstName":"Ivan","lastName":"Petrov","birthDate":"12.04.1990"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
	assert.Contains(t, body["details"], "birthDate")
}

func TestDispatch_IdentityQR(t *testing.T) {
	e, mocks := newTestServer(t)

	png := []byte{0x89, 0x50, 0x4E, 0x47}
	mocks.document.EXPECT().IdentityQR(mock.Anything, int64(4)).Return(png, nil).Once()

	rec := do(e, http.MethodGet, "/?action=identity-qr&userId=4", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestOperationalEndpoints(t *testing.T) {
	e, mocks := newTestServer(t)

	rec := do(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	mocks.dashboard.EXPECT().SaveWidgets(mock.Anything, int64(1), mock.Anything).Return(nil).Once()
	do(e, http.MethodPost, "/?action=widgets", `{"userId":1,"widgets":[]}`)
	do(e, http.MethodGet, "/?action=nope", "")

	rec = do(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `citycard_dispatch_requests_total{action="widgets",method="POST",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), `citycard_dispatch_requests_total{action="unknown",method="GET",status="400"} 1`)
}
