package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, resolución del principal y perfil propio.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, now: time.Now}
}

// Login verifica email/password, registra last_login y retorna token + usuario.
// Email desconocido y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, entity.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: credenciales inválidas", domain.ErrUnauthenticated)
	}
	if err := ComparePassword(user.PasswordHash, in.Password); err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: la cuenta está desactivada", domain.ErrForbidden)
	}

	now := uc.now()
	if err := uc.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	token, err := uc.issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// Authenticate valida el bearer token y carga el usuario vigente desde la DB.
// Token inválido o usuario inexistente: ErrUnauthenticated. Cuenta desactivada: ErrForbidden.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: el usuario del token no existe", domain.ErrUnauthenticated)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: la cuenta está desactivada", domain.ErrForbidden)
	}
	return user, nil
}

// Profile devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario no encontrado", domain.ErrNotFound)
	}
	return ToUserResponse(user), nil
}

// UpdateProfile cambia nombre, email o password del propio usuario y emite un token nuevo.
// El rol y el estado no se pueden cambiar por esta vía.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario no encontrado", domain.ErrNotFound)
	}
	if err := ApplyIdentityChanges(ctx, uc.userRepo, user, in.Name, in.Email, in.Password); err != nil {
		return nil, err
	}
	user.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	token, err := uc.issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// ApplyIdentityChanges aplica los cambios opcionales de nombre, email (único) y password.
func ApplyIdentityChanges(ctx context.Context, repo repository.UserRepository, user *entity.User, name, email, password *string) error {
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return fmt.Errorf("%w: name no puede estar vacío", domain.ErrValidation)
		}
		user.Name = n
	}
	if email != nil {
		e := entity.NormalizeEmail(*email)
		if e == "" {
			return fmt.Errorf("%w: email no puede estar vacío", domain.ErrValidation)
		}
		if e != user.Email {
			existing, err := repo.GetByEmail(ctx, e)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != user.ID {
				return fmt.Errorf("%w: el email %q ya está registrado", domain.ErrConflict, e)
			}
		}
		user.Email = e
	}
	if password != nil {
		hash, err := HashPassword(*password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	return nil
}

func (uc *AuthUseCase) issue(user *entity.User) (string, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", errors.Join(domain.ErrInternal, err)
	}
	return token, nil
}

// ToUserResponse convierte la entidad en DTO sin el hash del password.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
