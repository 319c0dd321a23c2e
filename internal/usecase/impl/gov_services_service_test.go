package impl

import (
	"context"
	"testing"

	"citycard/internal/domain/entity"
	mockRepo "citycard/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGovServicesService_SeedsEmptySnapshot(t *testing.T) {
	txManager, factory := newTxMocks(t)
	govRepo := mockRepo.NewMockGovServicesRepository(t)
	ctx := context.Background()

	// taxes: generate, count=1, pick property, amount draw 0.5; benefits: count=0
	srv := NewGovServicesService(GovServicesServiceParams{
		TxManager: txManager,
		Generator: newScriptedGenerator([]float64{0.9, 0.5}, []int{0, 0, 0}),
		Logger:    newDiscardLogger(),
	})

	stored := []*entity.Tax{{ID: 1, UserID: 3, TaxType: "Налог на имущество", Amount: decimal.NewFromInt(3000), Year: 2025}}

	expectUnitOfWork(txManager, factory)
	factory.EXPECT().GovServicesRepo().Return(govRepo)
	govRepo.EXPECT().FindTaxesByUser(ctx, int64(3)).Return(nil, nil).Once()
	govRepo.EXPECT().
		CreateTaxes(ctx, mock.MatchedBy(func(taxes []*entity.Tax) bool {
			return len(taxes) == 1 && taxes[0].Amount.Equal(decimal.NewFromInt(3000)) && !taxes[0].IsPaid
		})).
		Return(nil)
	govRepo.EXPECT().FindTaxesByUser(ctx, int64(3)).Return(stored, nil).Once()
	govRepo.EXPECT().FindBenefitsByUser(ctx, int64(3)).Return(nil, nil).Once()

	output, err := srv.GetGovServices(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, stored, output.Taxes)
	assert.NotNil(t, output.Benefits)
	assert.Empty(t, output.Benefits)
}

func TestGovServicesService_ExistingRecordsAreNotRegenerated(t *testing.T) {
	txManager, factory := newTxMocks(t)
	govRepo := mockRepo.NewMockGovServicesRepository(t)
	ctx := context.Background()

	srv := NewGovServicesService(GovServicesServiceParams{
		TxManager: txManager,
		Generator: newScriptedGenerator(nil, nil),
		Logger:    newDiscardLogger(),
	})

	taxes := []*entity.Tax{{ID: 1, UserID: 3}}
	benefits := []*entity.Benefit{{ID: 4, UserID: 3}}

	expectUnitOfWork(txManager, factory)
	factory.EXPECT().GovServicesRepo().Return(govRepo)
	govRepo.EXPECT().FindTaxesByUser(ctx, int64(3)).Return(taxes, nil)
	govRepo.EXPECT().FindBenefitsByUser(ctx, int64(3)).Return(benefits, nil)

	output, err := srv.GetGovServices(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, taxes, output.Taxes)
	assert.Equal(t, benefits, output.Benefits)
}
