package auth

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/crunchyspot/crunchyspot-api/internal/application/dto"
	"github.com/crunchyspot/crunchyspot-api/internal/domain"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/repository"
	"github.com/crunchyspot/crunchyspot-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase emisión de tokens de identidad y consulta de rol admin.
// No persiste nada: el token vive solo del lado del cliente hasta expirar.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	validate *validator.Validate
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, validate: validator.New()}
}

// IssueToken firma un token de identidad con los claims recibidos.
// El caller ya viene autenticado por la capa externa (login del frontend);
// aquí solo se emite la credencial firmada y con vigencia fija.
func (uc *AuthUseCase) IssueToken(in dto.TokenRequest) (*dto.TokenResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

// IsAdmin indica si el email corresponde a un usuario con rol admin.
// Un email sin registro no es error: simplemente no es admin.
func (uc *AuthUseCase) IsAdmin(email string) (bool, error) {
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}
