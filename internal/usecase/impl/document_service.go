package impl

import (
	"context"
	"log/slog"

	deliverycontext "citycard/internal/delivery/context"
	"citycard/internal/domain/entity"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/domain/repository"
	"citycard/internal/domain/service"
	"citycard/internal/errors"
	"citycard/internal/usecase"

	"go.uber.org/fx"
)

const birthDateLayout = "2006-01-02"

// documentService implements the DocumentUsecase interface.
type documentService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	logger    *slog.Logger
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	return &documentService{
		txManager: params.TxManager,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *documentService) AddPassport(ctx context.Context, passport *entity.Passport) error {
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PassportRepo().Create(ctx, passport)
	}); err != nil {
		return translateRepositoryError(err)
	}

	srv.log(ctx).Info("Passport added", slog.Int64("userID", passport.UserID), slog.Int64("passportID", passport.ID))

	return nil
}

func (srv *documentService) AddIntercom(ctx context.Context, intercom *entity.Intercom) error {
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.IntercomRepo().Create(ctx, intercom)
	}); err != nil {
		return translateRepositoryError(err)
	}

	srv.log(ctx).Info("Intercom added", slog.Int64("userID", intercom.UserID), slog.Int64("intercomID", intercom.ID))

	return nil
}

func (srv *documentService) IdentityQR(ctx context.Context, userID int64) ([]byte, error) {
	var user *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return err
		}
		user = found

		return nil
	}); err != nil {
		return nil, translateRepositoryError(err)
	}

	png, err := srv.qrService.GenerateIdentityQR(identityPayload(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate identity QR code")
	}

	return png, nil
}

// PassportQR renders the passport only when it belongs to userID.
func (srv *documentService) PassportQR(ctx context.Context, userID, passportID int64) ([]byte, error) {
	var (
		user     *entity.User
		passport *entity.Passport
	)

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if user, err = repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			return err
		}
		if passport, err = repoFactory.PassportRepo().FindByID(ctx, passportID); err != nil {
			return err
		}
		if passport.UserID != userID {
			return domainerrors.ErrPassportNotFound
		}

		return nil
	}); err != nil {
		return nil, translateRepositoryError(err)
	}

	png, err := srv.qrService.GeneratePassportQR(&service.PassportQRData{
		IdentityQRData: *identityPayload(user),
		Series:         passport.Series,
		Number:         passport.Number,
		INN:            passport.INN,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate passport QR code")
	}

	return png, nil
}

func identityPayload(user *entity.User) *service.IdentityQRData {
	return &service.IdentityQRData{
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		MiddleName: user.MiddleName,
		BirthDate:  user.BirthDate.Format(birthDateLayout),
	}
}
