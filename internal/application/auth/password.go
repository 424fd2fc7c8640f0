package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// HashPassword valida la longitud mínima y devuelve el hash bcrypt.
func HashPassword(plain string) (string, error) {
	if len(plain) < entity.MinPasswordLength {
		return "", fmt.Errorf("%w: password debe tener al menos %d caracteres", domain.ErrValidation, entity.MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashear password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword devuelve ErrUnauthenticated si plain no corresponde al hash.
func ComparePassword(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return fmt.Errorf("%w: credenciales inválidas", domain.ErrUnauthenticated)
	}
	return nil
}
