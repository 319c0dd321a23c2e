package repository

import "context"

// TransactionManager runs a unit of work on a single store connection.
type TransactionManager interface {
	// Execute runs fn inside one database transaction.
	// If fn returns an error or panics, the transaction is rolled back. Otherwise it is committed.
	// The connection is released on every path.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	PassportRepo() PassportRepository
	TransitCardRepo() TransitCardRepository
	BankCardRepo() BankCardRepository
	VehicleRepo() VehicleRepository
	FineRepo() FineRepository
	IntercomRepo() IntercomRepository
	PreferenceRepo() PreferenceRepository
	GovServicesRepo() GovServicesRepository
}
