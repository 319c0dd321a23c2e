// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/domain/repository"
	"citycard/internal/errors"
)

// translateRepositoryError maps repository sentinels to the domain errors the API renders.
// Anything else is returned unchanged.
func translateRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicatePhone):
		return domainerrors.ErrUserAlreadyExists
	case errors.Is(err, repository.ErrPassportNotFound):
		return domainerrors.ErrPassportNotFound
	case errors.Is(err, repository.ErrVehicleNotFound):
		return domainerrors.ErrVehicleNotFound
	case errors.Is(err, repository.ErrTransitCardNotFound):
		return domainerrors.ErrTransitCardNotFound
	default:
		return err
	}
}

// checkOwnership compares the owner of a resource with the caller-supplied user.
// Callers that omit the user are let through with a warning.
func checkOwnership(ctx context.Context, logger *slog.Logger, resource string, resourceID, ownerID int64, claimed *int64) error {
	if claimed == nil {
		warnOwnershipNotVerified(ctx, logger, resource, resourceID)

		return nil
	}

	if *claimed != ownerID {
		return domainerrors.ErrOwnershipMismatch.WithDetails(resource)
	}

	return nil
}

func warnOwnershipNotVerified(ctx context.Context, logger *slog.Logger, resource string, resourceID int64) {
	logger.WarnContext(ctx, "ownership not verified",
		slog.String("resource", resource),
		slog.Int64("resourceID", resourceID),
	)
}
