package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"citycard/internal/domain/entity"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/errors"
	mockUC "citycard/internal/mocks/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVehicleHandler(t *testing.T) (*VehicleHandler, *mockUC.MockVehicleUsecase) {
	vehicleUC := mockUC.NewMockVehicleUsecase(t)

	return NewVehicleHandler(VehicleHandlerParams{VehicleUC: vehicleUC, Logger: newDiscardLogger()}), vehicleUC
}

func TestVehicleHandler_AddVehicle(t *testing.T) {
	h, vehicleUC := newVehicleHandler(t)

	vehicleUC.EXPECT().AddVehicle(mock.Anything, mock.AnythingOfType("*entity.Vehicle")).
		RunAndReturn(func(_ context.Context, v *entity.Vehicle) ([]*entity.Fine, error) {
			assert.Equal(t, "А123ВС78", v.PlateNumber)
			assert.Nil(t, v.Year)
			v.ID = 17

			return nil, nil
		}).Once()

	c, rec := newContext(http.MethodPost, "/?action=add-vehicle", `{"userId":1,"plateNumber":"А123ВС78","brand":"Lada"}`)
	require.NoError(t, h.AddVehicle(c))

	assert.JSONEq(t, `{"id":17,"success":true}`, rec.Body.String())
}

func TestVehicleHandler_GetFines(t *testing.T) {
	h, vehicleUC := newVehicleHandler(t)

	vehicleUC.EXPECT().GetFines(mock.Anything, int64(17), int64Ptr(1)).Return([]*entity.Fine{{
		ID:          1,
		FineNumber:  "18810123456",
		Amount:      decimal.NewFromInt(1500),
		Description: "Нарушение правил парковки",
		Date:        time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		Location:    "ул. Рубинштейна, д.15",
	}}, nil).Once()

	c, rec := newContext(http.MethodGet, "/?action=get-fines&vehicleId=17&userId=1", "")
	require.NoError(t, h.GetFines(c))

	assert.JSONEq(t, `{"fines":[{
		"id": 1,
		"fineNumber": "18810123456",
		"amount": 1500,
		"description": "Нарушение правил парковки",
		"date": "2025-05-20",
		"location": "ул. Рубинштейна, д.15",
		"isPaid": false
	}]}`, rec.Body.String())
}

func TestVehicleHandler_GetFinesWithoutOwner(t *testing.T) {
	h, vehicleUC := newVehicleHandler(t)

	vehicleUC.EXPECT().GetFines(mock.Anything, int64(17), (*int64)(nil)).Return([]*entity.Fine{}, nil).Once()

	c, rec := newContext(http.MethodGet, "/?action=get-fines&vehicleId=17", "")
	require.NoError(t, h.GetFines(c))

	assert.JSONEq(t, `{"fines":[]}`, rec.Body.String())
}

func TestVehicleHandler_GetFinesBadOwner(t *testing.T) {
	h, _ := newVehicleHandler(t)

	c, _ := newContext(http.MethodGet, "/?action=get-fines&vehicleId=17&userId=abc", "")

	assert.True(t, errors.Is(h.GetFines(c), domainerrors.ErrValidationFailed))
}
