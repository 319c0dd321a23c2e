package impl

import (
	"context"
	"testing"

	"citycard/internal/domain/entity"
	"citycard/internal/domain/rules"
	"citycard/internal/errors"
	mockRepo "citycard/internal/mocks/repository"
	mockSvc "citycard/internal/mocks/service"
	"citycard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weatherServiceFixtures struct {
	service   usecase.WeatherUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	provider  *mockSvc.MockWeatherProvider
}

func createTestWeatherService(t *testing.T) weatherServiceFixtures {
	txManager, factory := newTxMocks(t)
	provider := mockSvc.NewMockWeatherProvider(t)

	return weatherServiceFixtures{
		service: NewWeatherService(WeatherServiceParams{
			TxManager: txManager,
			Provider:  provider,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		factory:   factory,
		provider:  provider,
	}
}

func TestWeatherService_GetWeather_Placeholder(t *testing.T) {
	fx := createTestWeatherService(t)

	fx.provider.EXPECT().Configured().Return(false)

	weather, err := fx.service.GetWeather(context.Background(), "msk")
	require.NoError(t, err)
	assert.Equal(t, &entity.Weather{Temp: 5, Condition: "Облачно", Icon: rules.IconCloud, NeedsSetup: true}, weather)
}

func TestWeatherService_GetWeather_ResolvesAlias(t *testing.T) {
	fx := createTestWeatherService(t)
	ctx := context.Background()

	fx.provider.EXPECT().Configured().Return(true)
	fx.provider.EXPECT().Current(ctx, "Saint Petersburg").Return(&entity.WeatherReading{
		Temperature:   3.6,
		Description:   "пасмурно",
		ConditionCode: 804,
	}, nil)

	weather, err := fx.service.GetWeather(ctx, "spb")
	require.NoError(t, err)
	assert.Equal(t, 4, weather.Temp)
	assert.Equal(t, "Пасмурно", weather.Condition)
	assert.Equal(t, rules.IconCloud, weather.Icon)
	assert.False(t, weather.NeedsSetup)
}

func TestWeatherService_GetWeather_DefaultCity(t *testing.T) {
	fx := createTestWeatherService(t)
	ctx := context.Background()

	fx.provider.EXPECT().Configured().Return(true)
	fx.provider.EXPECT().Current(ctx, rules.DefaultCity).Return(&entity.WeatherReading{ConditionCode: 800}, nil)

	weather, err := fx.service.GetWeather(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, rules.IconClear, weather.Icon)
}

func TestWeatherService_GetWeather_ProviderFailure(t *testing.T) {
	fx := createTestWeatherService(t)
	ctx := context.Background()

	fx.provider.EXPECT().Configured().Return(true)
	fx.provider.EXPECT().Current(ctx, "Sochi").Return(nil, errors.New("weather provider returned status 401"))

	_, err := fx.service.GetWeather(ctx, "sochi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestWeatherService_SetWeatherCity(t *testing.T) {
	fx := createTestWeatherService(t)
	ctx := context.Background()
	prefRepo := mockRepo.NewMockPreferenceRepository(t)

	expectUnitOfWork(fx.txManager, fx.factory)
	fx.factory.EXPECT().PreferenceRepo().Return(prefRepo)
	prefRepo.EXPECT().ReplaceWeatherCity(ctx, &entity.WeatherSetting{UserID: 1, City: "Шушары"}).Return(nil)

	require.NoError(t, fx.service.SetWeatherCity(ctx, 1, "Шушары"))
}
