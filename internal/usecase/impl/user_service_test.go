package impl

import (
	"context"
	"testing"

	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	"snackbasket/internal/domain/repository"
	"snackbasket/internal/domain/service"
	mockRepo "snackbasket/internal/mocks/repository"
	mockSvc "snackbasket/internal/mocks/service"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo *mockRepo.MockUserRepository
	tokens   *mockSvc.MockTokenService
	identity *mockSvc.MockIdentityProvider
}

func newTestUserService(t *testing.T) (*userService, *userServiceMocks) {
	t.Helper()

	m := &userServiceMocks{
		userRepo: mockRepo.NewMockUserRepository(t),
		tokens:   mockSvc.NewMockTokenService(t),
		identity: mockSvc.NewMockIdentityProvider(t),
	}
	srv := NewUserService(UserServiceParams{
		UserRepo:         m.userRepo,
		TokenService:     m.tokens,
		IdentityProvider: m.identity,
		Logger:           newDiscardLogger(),
	}).(*userService)
	srv.now = fixedClock

	return srv, m
}

func newTestUser(role entity.Role, active bool) *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Email:    "staff@example.com",
		Name:     "Staff",
		Role:     role,
		IsActive: active,
	}
}

func TestUserService_SyncUser_Existing(t *testing.T) {
	srv, m := newTestUserService(t)
	user := newTestUser(entity.RoleAdmin, true)

	m.userRepo.EXPECT().FindByEmail(mock.Anything, "staff@example.com").Return(user, nil)

	got, err := srv.SyncUser(context.Background(), "  Staff@Example.com ", "ignored")
	require.NoError(t, err)
	assert.Same(t, user, got)
}

func TestUserService_SyncUser_CreatesEmployee(t *testing.T) {
	srv, m := newTestUserService(t)

	m.userRepo.EXPECT().FindByEmail(mock.Anything, "new.hire@example.com").Return(nil, repository.ErrUserNotFound)
	m.userRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	got, err := srv.SyncUser(context.Background(), "new.hire@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, got.Role)
	assert.True(t, got.IsActive)
	assert.Equal(t, "new.hire", got.Name)
	assert.Equal(t, testNow, got.CreatedAt)
}

func TestUserService_SyncUser_ConcurrentCreate(t *testing.T) {
	srv, m := newTestUserService(t)
	winner := newTestUser(entity.RoleEmployee, true)

	m.userRepo.EXPECT().FindByEmail(mock.Anything, winner.Email).Return(nil, repository.ErrUserNotFound).Once()
	m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrUserEmailTaken)
	m.userRepo.EXPECT().FindByEmail(mock.Anything, winner.Email).Return(winner, nil).Once()

	got, err := srv.SyncUser(context.Background(), winner.Email, "Staff")
	require.NoError(t, err)
	assert.Same(t, winner, got)
}

func TestUserService_LoginWithIdentity(t *testing.T) {
	srv, m := newTestUserService(t)
	user := newTestUser(entity.RoleAdmin, true)

	m.identity.EXPECT().VerifyIDToken(mock.Anything, "id-token").
		Return(&service.Identity{Subject: "sub", Email: user.Email, Name: user.Name, EmailVerified: true}, nil)
	m.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)
	m.tokens.EXPECT().GenerateTokens(user.ID, []string{"admin"}).Return("access", "refresh", nil)

	out, err := srv.LoginWithIdentity(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Same(t, user, out.User)
}

func TestUserService_LoginWithIdentity_Failures(t *testing.T) {
	t.Run("rejected token", func(t *testing.T) {
		srv, m := newTestUserService(t)
		m.identity.EXPECT().VerifyIDToken(mock.Anything, "bad").Return(nil, assert.AnError)

		_, err := srv.LoginWithIdentity(context.Background(), "bad")
		assert.ErrorIs(t, err, domainerrors.ErrIdentityInvalid)
	})

	t.Run("no email", func(t *testing.T) {
		srv, m := newTestUserService(t)
		m.identity.EXPECT().VerifyIDToken(mock.Anything, "anon").Return(&service.Identity{Subject: "sub"}, nil)

		_, err := srv.LoginWithIdentity(context.Background(), "anon")
		assert.ErrorIs(t, err, domainerrors.ErrIdentityInvalid)
	})

	t.Run("inactive user", func(t *testing.T) {
		srv, m := newTestUserService(t)
		user := newTestUser(entity.RoleEmployee, false)
		m.identity.EXPECT().VerifyIDToken(mock.Anything, "tok").Return(&service.Identity{Email: user.Email}, nil)
		m.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)

		_, err := srv.LoginWithIdentity(context.Background(), "tok")
		assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
	})

	t.Run("token issuance", func(t *testing.T) {
		srv, m := newTestUserService(t)
		user := newTestUser(entity.RoleEmployee, true)
		m.identity.EXPECT().VerifyIDToken(mock.Anything, "tok").Return(&service.Identity{Email: user.Email}, nil)
		m.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)
		m.tokens.EXPECT().GenerateTokens(user.ID, mock.Anything).Return("", "", assert.AnError)

		_, err := srv.LoginWithIdentity(context.Background(), "tok")
		assert.ErrorIs(t, err, domainerrors.ErrTokenIssuanceFail)
	})
}

func TestUserService_RefreshToken_UsesCurrentRole(t *testing.T) {
	srv, m := newTestUserService(t)
	// Promoted to admin after the refresh token was issued.
	user := newTestUser(entity.RoleAdmin, true)

	m.tokens.EXPECT().ValidateRefreshToken("refresh").
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
	m.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	m.tokens.EXPECT().GenerateTokens(user.ID, []string{"admin"}).Return("access-2", "refresh-2", nil)

	out, err := srv.RefreshToken(context.Background(), "refresh")
	require.NoError(t, err)
	assert.Equal(t, "access-2", out.AccessToken)
	assert.Equal(t, "refresh-2", out.RefreshToken)
	assert.Same(t, user, out.User)
}

func TestUserService_RefreshToken_Failures(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		srv, m := newTestUserService(t)
		m.tokens.EXPECT().ValidateRefreshToken("bad").Return(nil, assert.AnError)

		_, err := srv.RefreshToken(context.Background(), "bad")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("deleted user", func(t *testing.T) {
		srv, m := newTestUserService(t)
		userID := uuid.New()
		m.tokens.EXPECT().ValidateRefreshToken("tok").Return(&service.Claims{UserID: userID}, nil)
		m.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

		_, err := srv.RefreshToken(context.Background(), "tok")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("deactivated user", func(t *testing.T) {
		srv, m := newTestUserService(t)
		user := newTestUser(entity.RoleEmployee, false)
		m.tokens.EXPECT().ValidateRefreshToken("tok").Return(&service.Claims{UserID: user.ID}, nil)
		m.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		_, err := srv.RefreshToken(context.Background(), "tok")
		assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
	})

	t.Run("repository failure", func(t *testing.T) {
		srv, m := newTestUserService(t)
		userID := uuid.New()
		m.tokens.EXPECT().ValidateRefreshToken("tok").Return(&service.Claims{UserID: userID}, nil)
		m.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, assert.AnError)

		_, err := srv.RefreshToken(context.Background(), "tok")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestUserService_CurrentUser(t *testing.T) {
	srv, m := newTestUserService(t)
	user := newTestUser(entity.RoleEmployee, true)

	m.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	out, err := srv.CurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, out.IsAdmin)
	assert.Same(t, user, out.User)
}

func TestUserService_CreateUser(t *testing.T) {
	srv, m := newTestUserService(t)

	m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	user, err := srv.CreateUser(context.Background(), &usecase.CreateUserInput{
		Email:    "Boss@Example.com",
		Name:     "Boss",
		Role:     entity.RoleAdmin,
		IsActive: ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "boss@example.com", user.Email)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.False(t, user.IsActive)

	_, err = srv.CreateUser(context.Background(), &usecase.CreateUserInput{Email: "x@example.com", Role: "owner"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrUserEmailTaken).Once()
	_, err = srv.CreateUser(context.Background(), &usecase.CreateUserInput{Email: "boss@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_UpdateUser(t *testing.T) {
	srv, m := newTestUserService(t)
	user := newTestUser(entity.RoleEmployee, true)
	admin := entity.RoleAdmin

	m.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	m.userRepo.EXPECT().Update(mock.Anything, user).Return(nil)

	got, err := srv.UpdateUser(context.Background(), user.ID, &usecase.UpdateUserInput{
		Role:     &admin,
		IsActive: ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, got.Role)
	assert.False(t, got.IsActive)
	assert.Equal(t, "Staff", got.Name)
	assert.Equal(t, testNow, got.UpdatedAt)
}

func TestUserService_UpdateUser_EmptyName(t *testing.T) {
	srv, m := newTestUserService(t)
	user := newTestUser(entity.RoleEmployee, true)

	m.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	_, err := srv.UpdateUser(context.Background(), user.ID, &usecase.UpdateUserInput{Name: ptr("  ")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	srv, m := newTestUserService(t)
	id := uuid.New()

	m.userRepo.EXPECT().Delete(mock.Anything, id).Return(repository.ErrUserNotFound)

	err := srv.DeleteUser(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetUserByEmail_NotFound(t *testing.T) {
	srv, m := newTestUserService(t)

	m.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := srv.GetUserByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
