package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository/repomock"
	"github.com/jhoicas/ventas-api/pkg/jwt"
)

var testJWT = auth.JWTConfig{Secret: "secreto-de-pruebas", ExpMinutes: 60, Issuer: "ventas-api"}

func userWithPassword(t *testing.T, id, role, password string, active bool) *entity.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{ID: id, Name: "Ana", Email: "ana@tienda.com", PasswordHash: hash, Role: role, IsActive: active}
}

func TestLogin_OK(t *testing.T) {
	repo := new(repomock.UserRepository)
	uc := auth.NewAuthUseCase(repo, testJWT)
	ctx := context.Background()
	u := userWithPassword(t, "u1", entity.RoleAdmin, "secreta1", true)

	repo.On("GetByEmail", ctx, "ana@tienda.com").Return(u, nil)
	repo.On("TouchLastLogin", ctx, "u1", mock.AnythingOfType("time.Time")).Return(nil)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: " ANA@tienda.com", Password: "secreta1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.NotNil(t, out.User.LastLogin)

	claims, err := jwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := new(repomock.UserRepository)
	uc := auth.NewAuthUseCase(repo, testJWT)
	repo.On("GetByEmail", mock.Anything, "ana@tienda.com").Return(userWithPassword(t, "u1", entity.RoleUser, "secreta1", true), nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@tienda.com", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	repo.AssertNotCalled(t, "TouchLastLogin", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	repo := new(repomock.UserRepository)
	uc := auth.NewAuthUseCase(repo, testJWT)
	repo.On("GetByEmail", mock.Anything, "nadie@tienda.com").Return(nil, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@tienda.com", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := new(repomock.UserRepository)
	uc := auth.NewAuthUseCase(repo, testJWT)
	repo.On("GetByEmail", mock.Anything, "ana@tienda.com").Return(userWithPassword(t, "u1", entity.RoleUser, "secreta1", false), nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@tienda.com", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuthenticate(t *testing.T) {
	repo := new(repomock.UserRepository)
	uc := auth.NewAuthUseCase(repo, testJWT)
	ctx := context.Background()

	token, err := jwt.Generate(testJWT.Secret, "u1", entity.RoleUser, testJWT.Issuer, 5)
	require.NoError(t, err)
	ghost, err := jwt.Generate(testJWT.Secret, "u-borrado", entity.RoleUser, testJWT.Issuer, 5)
	require.NoError(t, err)

	repo.On("GetByID", ctx, "u1").Return(&entity.User{ID: "u1", Role: entity.RoleUser, IsActive: true}, nil)
	repo.On("GetByID", ctx, "u-borrado").Return(nil, nil)

	u, err := uc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = uc.Authenticate(ctx, "no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = uc.Authenticate(ctx, ghost)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestUpdateProfile_EmailOcupado(t *testing.T) {
	repo := new(repomock.UserRepository)
	uc := auth.NewAuthUseCase(repo, testJWT)
	ctx := context.Background()
	repo.On("GetByID", ctx, "u1").Return(&entity.User{ID: "u1", Email: "ana@tienda.com", IsActive: true}, nil)
	repo.On("GetByEmail", ctx, "luis@tienda.com").Return(&entity.User{ID: "u2"}, nil)
	email := "luis@tienda.com"

	_, err := uc.UpdateProfile(ctx, "u1", dto.UpdateProfileRequest{Email: &email})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateProfile_NuevoToken(t *testing.T) {
	repo := new(repomock.UserRepository)
	uc := auth.NewAuthUseCase(repo, testJWT)
	ctx := context.Background()
	repo.On("GetByID", ctx, "u1").Return(&entity.User{ID: "u1", Name: "Ana", Role: entity.RoleUser, IsActive: true}, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Name == "Ana María" })).Return(nil)
	name := "Ana María"

	out, err := uc.UpdateProfile(ctx, "u1", dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Ana María", out.User.Name)
}
