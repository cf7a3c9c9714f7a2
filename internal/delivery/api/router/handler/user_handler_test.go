package handler

import (
	"net/http"
	"testing"

	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	mockusecase "snackbasket/internal/mocks/usecase"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_Login(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: uc})
	e := newTestEcho()
	e.POST("/auth/login", h.Login)

	user := &entity.User{ID: uuid.New(), Email: "ann@example.com", Role: entity.RoleEmployee, IsActive: true}
	uc.EXPECT().LoginWithIdentity(mock.Anything, "id-token").
		Return(&usecase.LoginOutput{AccessToken: "a", RefreshToken: "r", User: user}, nil)

	rec, env := doRequest(t, e, http.MethodPost, "/auth/login", map[string]string{"idToken": "id-token"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	out := decodeData[LoginResponse](t, env)
	assert.Equal(t, "a", out.AccessToken)
	assert.Equal(t, "r", out.RefreshToken)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestUserHandler_LoginErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		setup    func(uc *mockusecase.MockUserUsecase)
		wantCode int
		wantErr  string
	}{
		{
			name:     "missing token",
			body:     map[string]string{},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "malformed body",
			body:     "{not json",
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name: "rejected token",
			body: map[string]string{"idToken": "bad"},
			setup: func(uc *mockusecase.MockUserUsecase) {
				uc.EXPECT().LoginWithIdentity(mock.Anything, "bad").Return(nil, domainerrors.ErrIdentityInvalid)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "IDENTITY_TOKEN_INVALID",
		},
		{
			name: "inactive user",
			body: map[string]string{"idToken": "t"},
			setup: func(uc *mockusecase.MockUserUsecase) {
				uc.EXPECT().LoginWithIdentity(mock.Anything, "t").Return(nil, domainerrors.ErrUserInactive)
			},
			wantCode: http.StatusForbidden,
			wantErr:  "USER_INACTIVE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockUserUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			e := newTestEcho()
			e.POST("/auth/login", NewUserHandler(UserHandlerParams{UserUC: uc}).Login)

			rec, env := doRequest(t, e, http.MethodPost, "/auth/login", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.False(t, env.Success)
			if assert.NotNil(t, env.Error) {
				assert.Equal(t, tt.wantErr, env.Error.Code)
			}
		})
	}
}

func TestUserHandler_Refresh(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ann@example.com", Role: entity.RoleAdmin, IsActive: true}

	tests := []struct {
		name     string
		body     any
		setup    func(uc *mockusecase.MockUserUsecase)
		wantCode int
		wantErr  string
	}{
		{
			name: "new pair",
			body: map[string]string{"refresh_token": "r1"},
			setup: func(uc *mockusecase.MockUserUsecase) {
				uc.EXPECT().RefreshToken(mock.Anything, "r1").
					Return(&usecase.LoginOutput{AccessToken: "a2", RefreshToken: "r2", User: user}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing token",
			body:     map[string]string{},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name: "expired token",
			body: map[string]string{"refresh_token": "old"},
			setup: func(uc *mockusecase.MockUserUsecase) {
				uc.EXPECT().RefreshToken(mock.Anything, "old").Return(nil, domainerrors.ErrUnauthorized)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "UNAUTHORIZED",
		},
		{
			name: "deactivated user",
			body: map[string]string{"refresh_token": "r1"},
			setup: func(uc *mockusecase.MockUserUsecase) {
				uc.EXPECT().RefreshToken(mock.Anything, "r1").Return(nil, domainerrors.ErrUserInactive)
			},
			wantCode: http.StatusForbidden,
			wantErr:  "USER_INACTIVE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockUserUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			e := newTestEcho()
			e.POST("/auth/refresh", NewUserHandler(UserHandlerParams{UserUC: uc}).Refresh)

			rec, env := doRequest(t, e, http.MethodPost, "/auth/refresh", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr == "" {
				out := decodeData[LoginResponse](t, env)
				assert.Equal(t, "a2", out.AccessToken)
				assert.Equal(t, "r2", out.RefreshToken)
				assert.Equal(t, user.ID, out.User.ID)

				return
			}
			if assert.NotNil(t, env.Error) {
				assert.Equal(t, tt.wantErr, env.Error.Code)
			}
		})
	}
}

func TestUserHandler_Me(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: uc})
	userID := uuid.New()

	e := newTestEcho()
	e.GET("/api/me", h.Me, asUser(userID, entity.RoleAdmin.String()))
	e.GET("/anon/me", h.Me)

	uc.EXPECT().CurrentUser(mock.Anything, userID).Return(&usecase.CurrentUserOutput{
		User:    &entity.User{ID: userID, Role: entity.RoleAdmin},
		IsAdmin: true,
	}, nil)

	rec, env := doRequest(t, e, http.MethodGet, "/api/me", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeData[usecase.CurrentUserOutput](t, env)
	assert.True(t, out.IsAdmin)

	rec, env = doRequest(t, e, http.MethodGet, "/anon/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestUserHandler_CreateUser(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	e := newTestEcho()
	e.POST("/api/users", NewUserHandler(UserHandlerParams{UserUC: uc}).CreateUser)

	uc.EXPECT().CreateUser(mock.Anything, &usecase.CreateUserInput{
		Email: "bob@example.com",
		Name:  "Bob",
		Role:  entity.RoleAdmin,
	}).Return(&entity.User{ID: uuid.New(), Email: "bob@example.com", Role: entity.RoleAdmin}, nil)

	rec, env := doRequest(t, e, http.MethodPost, "/api/users", map[string]any{
		"email": "bob@example.com",
		"name":  "Bob",
		"role":  "admin",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	rec, env = doRequest(t, e, http.MethodPost, "/api/users", map[string]any{
		"email": "not-an-email",
		"name":  "Bob",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error.Details, "Email")

	rec, _ = doRequest(t, e, http.MethodPost, "/api/users", map[string]any{
		"email": "c@example.com",
		"name":  "C",
		"role":  "owner",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_UpdateUser(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	e := newTestEcho()
	e.PUT("/api/users/:id", NewUserHandler(UserHandlerParams{UserUC: uc}).UpdateUser)

	id := uuid.New()
	role := entity.RoleAdmin
	inactive := false
	uc.EXPECT().UpdateUser(mock.Anything, id, &usecase.UpdateUserInput{Role: &role, IsActive: &inactive}).
		Return(&entity.User{ID: id, Role: role}, nil)

	rec, _ := doRequest(t, e, http.MethodPut, "/api/users/"+id.String(), map[string]any{"role": "admin", "is_active": false})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := doRequest(t, e, http.MethodPut, "/api/users/not-a-uuid", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestUserHandler_DeleteAndLookup(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: uc})
	e := newTestEcho()
	e.DELETE("/api/users/:id", h.DeleteUser)
	e.GET("/api/users/by-email", h.GetUserByEmail)

	id := uuid.New()
	uc.EXPECT().DeleteUser(mock.Anything, id).Return(domainerrors.ErrUserNotFound)
	rec, env := doRequest(t, e, http.MethodDelete, "/api/users/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", env.Error.Code)

	uc.EXPECT().GetUserByEmail(mock.Anything, "ann@example.com").Return(&entity.User{ID: id, Email: "ann@example.com"}, nil)
	rec, env = doRequest(t, e, http.MethodGet, "/api/users/by-email?email=ann@example.com", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, decodeData[entity.User](t, env).ID)

	rec, _ = doRequest(t, e, http.MethodGet, "/api/users/by-email", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
