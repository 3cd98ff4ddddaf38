// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "currex/internal/delivery/context"
	"currex/internal/domain/entity"
	domainerrors "currex/internal/domain/errors"
	"currex/internal/domain/repository"
	"currex/internal/domain/service"
	"currex/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new credential record. The two password fields are
// compared as exact strings before anything is hashed; on mismatch the store
// is never touched.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	if input.Password != input.RepeatPassword {
		srv.log(ctx).Warn("Password mismatch during registration", slog.String("username", input.Username))

		return errors.Wrap(domainerrors.ErrPasswordMismatch, "repeat password does not match")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to persist user during registration", slog.String("username", input.Username), slog.Any("error", err))

		return errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("username", input.Username), slog.Int64("userID", newUser.ID))

	return nil
}

// Login authenticates by username lookup and issues a bearer token with the
// username as its subject claim.
//
// TODO: compare the supplied password against the stored hash once the legacy
// existence-only contract is retired; today a known username with any
// password is accepted.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Starting login", slog.String("username", input.Username))

	_, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login for unknown username", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "no user with that username")
		}

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	token, err := srv.tokenService.GenerateToken(input.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Debug("Login completed", slog.String("username", input.Username))

	return &usecase.LoginOutput{AccessToken: token}, nil
}
