package postgres

import (
	"context"
	"testing"
	"time"

	"citycard/internal/domain/entity"
	"citycard/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db, testSchema)

	mock.ExpectQuery(sqlPrefix(`SELECT * FROM "public"."vehicles" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), 12)
	assert.ErrorIs(t, err, repository.ErrVehicleNotFound)
}

func TestVehicleRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db, testSchema)

	mock.ExpectQuery(sqlPrefix(`INSERT INTO "public"."vehicles"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	vehicle := &entity.Vehicle{UserID: 1, PlateNumber: "А123ВС78"}
	require.NoError(t, repo.Create(context.Background(), vehicle))
	assert.Equal(t, int64(4), vehicle.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFineRepository_CreateBatch(t *testing.T) {
	t.Run("empty batch issues no statement", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFineRepository(db, testSchema)

		require.NoError(t, repo.CreateBatch(context.Background(), nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sets generated ids", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFineRepository(db, testSchema)

		mock.ExpectQuery(sqlPrefix(`INSERT INTO "public"."fines"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100).AddRow(101))

		fines := []*entity.Fine{
			{VehicleID: 4, FineNumber: "18810123456", Amount: decimal.NewFromInt(500), Date: time.Now()},
			{VehicleID: 4, FineNumber: "18810654321", Amount: decimal.NewFromInt(1000), Date: time.Now()},
		}
		require.NoError(t, repo.CreateBatch(context.Background(), fines))
		assert.Equal(t, int64(100), fines[0].ID)
		assert.Equal(t, int64(101), fines[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFineRepository_FindByVehicle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFineRepository(db, testSchema)

	newer := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(sqlPrefix(`SELECT * FROM "public"."fines" WHERE vehicle_id = $1 ORDER BY date DESC, id DESC`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "fine_number", "amount", "description", "date", "location", "is_paid"}).
			AddRow(2, 4, "18810000002", "500", "Превышение скорости", newer, "Невский пр.", false).
			AddRow(1, 4, "18810000001", "1000", "Парковка", older, "Литейный пр.", true))

	fines, err := repo.FindByVehicle(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, fines, 2)
	assert.Equal(t, newer, fines[0].Date)
	assert.True(t, fines[1].IsPaid)
	require.NoError(t, mock.ExpectationsWereMet())
}
