package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "snackbasket/internal/delivery/context"
	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	"snackbasket/internal/domain/repository"
	"snackbasket/internal/domain/service"
	"snackbasket/internal/errors"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	identity     service.IdentityProvider
	now          func() time.Time
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	TokenService     service.TokenService
	IdentityProvider service.IdentityProvider
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		identity:     params.IdentityProvider,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncUser finds the user by email or creates an active employee.
func (srv *userService) SyncUser(ctx context.Context, email, name string) (*entity.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, invalid("email is required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	user = srv.buildUser(email, name, entity.RoleEmployee, true)
	err = srv.userRepo.Create(ctx, user)
	if errors.Is(err, repository.ErrUserEmailTaken) {
		// Created concurrently by another login.
		existing, findErr := srv.userRepo.FindByEmail(ctx, email)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to reload synced user")
		}

		return existing, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User synced on first login", slog.String("userID", user.ID.String()), slog.String("email", email))

	return user, nil
}

func (srv *userService) buildUser(email, name string, role entity.Role, active bool) *entity.User {
	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	now := srv.now()

	return &entity.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Role:      role,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LoginWithIdentity verifies the identity token, syncs the user and issues session tokens.
func (srv *userService) LoginWithIdentity(ctx context.Context, idToken string) (*usecase.LoginOutput, error) {
	identity, err := srv.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Identity token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrIdentityInvalid.WrapMessage(err.Error())
	}
	if identity.Email == "" {
		return nil, domainerrors.ErrIdentityInvalid.WithDetails("token carries no email")
	}

	user, err := srv.SyncUser(ctx, identity.Email, identity.Name)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		srv.log(ctx).Warn("Inactive user attempted login", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrUserInactive
	}

	output, err := srv.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()), slog.String("role", user.Role.String()))

	return output, nil
}

// RefreshToken exchanges a refresh token for a new token pair. The user is
// reloaded so role and active changes take effect at the next refresh.
func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WithDetails("invalid refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthorized.WithDetails("user no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.IsActive {
		srv.log(ctx).Warn("Inactive user attempted refresh", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrUserInactive
	}

	return srv.issueSession(ctx, user)
}

func (srv *userService) issueSession(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssuanceFail.WrapMessage(err.Error())
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (srv *userService) CurrentUser(ctx context.Context, userID uuid.UUID) (*usecase.CurrentUserOutput, error) {
	user, err := srv.findByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.CurrentUserOutput{User: user, IsAdmin: user.IsAdmin()}, nil
}

func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, invalid("email is required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WithDetails(email)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, invalid("email is required")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if !role.IsValid() {
		return nil, invalid("role must be admin or employee")
	}

	active := input.IsActive == nil || *input.IsActive
	user := srv.buildUser(email, input.Name, role, active)

	err := srv.userRepo.Create(ctx, user)
	if errors.Is(err, repository.ErrUserEmailTaken) {
		return nil, domainerrors.ErrUserAlreadyExists.WithDetails(email)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.String("userID", user.ID.String()), slog.String("role", role.String()))

	return user, nil
}

func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, invalid("name must not be empty")
		}
		user.Name = name
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, invalid("role must be admin or employee")
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	user.UpdatedAt = srv.now()

	err = srv.userRepo.Update(ctx, user)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := srv.userRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WithDetails(id.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", id.String()))

	return nil
}

func (srv *userService) findByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
