package impl

import (
	"context"
	"log/slog"

	deliverycontext "citycard/internal/delivery/context"
	"citycard/internal/domain/entity"
	"citycard/internal/domain/repository"
	"citycard/internal/errors"
	"citycard/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user. A phone that is already taken is a conflict.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	user := &entity.User{
		Phone:      input.Phone,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		MiddleName: input.MiddleName,
		BirthDate:  input.BirthDate,
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	}); err != nil {
		return nil, translateRepositoryError(err)
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID))

	return user, nil
}

// Login looks the user up by phone. There is no credential check.
func (srv *accountService) Login(ctx context.Context, phone string) (*entity.User, error) {
	var user *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByPhone(ctx, phone)
		if err != nil {
			return err
		}
		user = found

		return nil
	}); err != nil {
		return nil, translateRepositoryError(err)
	}

	return user, nil
}

// GetUserData loads the user and every owned record in one unit of work.
func (srv *accountService) GetUserData(ctx context.Context, userID int64) (*usecase.UserDataOutput, error) {
	output := &usecase.UserDataOutput{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return err
		}
		output.User = user

		if output.Passports, err = repoFactory.PassportRepo().FindByUser(ctx, userID); err != nil {
			return err
		}
		if output.TransitCards, err = repoFactory.TransitCardRepo().FindByUser(ctx, userID); err != nil {
			return err
		}
		if output.BankCards, err = repoFactory.BankCardRepo().FindByUser(ctx, userID); err != nil {
			return err
		}
		if output.Vehicles, err = repoFactory.VehicleRepo().FindByUser(ctx, userID); err != nil {
			return err
		}
		if output.Intercoms, err = repoFactory.IntercomRepo().FindByUser(ctx, userID); err != nil {
			return err
		}

		preferences := repoFactory.PreferenceRepo()
		if output.Widgets, err = preferences.FindWidgetsByUser(ctx, userID); err != nil {
			return err
		}

		setting, err := preferences.FindWeatherCity(ctx, userID)
		switch {
		case err == nil:
			output.WeatherCity = &setting.City
		case errors.Is(err, repository.ErrWeatherSettingNotFound):
			output.WeatherCity = nil
		default:
			return err
		}

		return nil
	})
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	fillEmptyCollections(output)

	return output, nil
}

// UpdateUser writes the supplied profile fields. An empty update touches nothing.
func (srv *accountService) UpdateUser(ctx context.Context, userID int64, update entity.UserProfileUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().UpdateProfile(ctx, userID, update)
	}); err != nil {
		return translateRepositoryError(err)
	}

	return nil
}

func fillEmptyCollections(output *usecase.UserDataOutput) {
	if output.Passports == nil {
		output.Passports = []*entity.Passport{}
	}
	if output.TransitCards == nil {
		output.TransitCards = []*entity.TransitCard{}
	}
	if output.BankCards == nil {
		output.BankCards = []*entity.BankCard{}
	}
	if output.Vehicles == nil {
		output.Vehicles = []*entity.Vehicle{}
	}
	if output.Intercoms == nil {
		output.Intercoms = []*entity.Intercom{}
	}
	if output.Widgets == nil {
		output.Widgets = []*entity.WidgetSetting{}
	}
}
