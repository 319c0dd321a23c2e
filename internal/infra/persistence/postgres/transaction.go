// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"citycard/internal/domain/repository"
	"citycard/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db     *gorm.DB
	schema Schema
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx     *gorm.DB
	schema Schema
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx, f.schema)
}

func (f *gormRepositoryFactory) PassportRepo() repository.PassportRepository {
	return NewPassportRepository(f.tx, f.schema)
}

func (f *gormRepositoryFactory) TransitCardRepo() repository.TransitCardRepository {
	return NewTransitCardRepository(f.tx, f.schema)
}

func (f *gormRepositoryFactory) BankCardRepo() repository.BankCardRepository {
	return NewBankCardRepository(f.tx, f.schema)
}

func (f *gormRepositoryFactory) VehicleRepo() repository.VehicleRepository {
	return NewVehicleRepository(f.tx, f.schema)
}

func (f *gormRepositoryFactory) FineRepo() repository.FineRepository {
	return NewFineRepository(f.tx, f.schema)
}

func (f *gormRepositoryFactory) IntercomRepo() repository.IntercomRepository {
	return NewIntercomRepository(f.tx, f.schema)
}

func (f *gormRepositoryFactory) PreferenceRepo() repository.PreferenceRepository {
	return NewPreferenceRepository(f.tx, f.schema)
}

func (f *gormRepositoryFactory) GovServicesRepo() repository.GovServicesRepository {
	return NewGovServicesRepository(f.tx, f.schema)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, schema Schema) repository.TransactionManager {
	return &gormTransactionManager{db: db, schema: schema}
}

// Execute runs fn on one transaction. Begin takes a pooled connection; commit or rollback returns it.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx, schema: tm.schema}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
