package usecase

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/crunchyspot/crunchyspot-api/internal/application/dto"
	"github.com/crunchyspot/crunchyspot-api/internal/domain"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/entity"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/repository"
)

// UserUseCase altas y administración de usuarios.
type UserUseCase struct {
	userRepo repository.UserRepository
	validate *validator.Validate
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, validate: validator.New()}
}

// Create registra al usuario en su primer sign-in. Semántica upsert-by-email:
// si el email ya existe no se inserta un segundo registro y se informa.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.CreateUserResponse{InsertedID: nil, Message: "el usuario ya existe"}, nil
	}
	user := &entity.User{
		Name:      in.Name,
		Email:     in.Email,
		Role:      entity.RoleUser,
		CreatedAt: time.Now(),
	}
	id, err := uc.userRepo.Create(user)
	if err != nil {
		return nil, err
	}
	return &dto.CreateUserResponse{InsertedID: &id}, nil
}

// List devuelve todos los usuarios (solo admin).
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:        u.ID.Hex(),
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}

// PromoteToAdmin asigna rol admin al usuario con el id dado.
func (uc *UserUseCase) PromoteToAdmin(id string) (*dto.UpdateResult, error) {
	matched, err := uc.userRepo.PromoteToAdmin(id)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrUserNotFound
	}
	return &dto.UpdateResult{MatchedCount: matched}, nil
}

// Delete elimina un usuario por id.
func (uc *UserUseCase) Delete(id string) (*dto.DeleteResult, error) {
	deleted, err := uc.userRepo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, domain.ErrUserNotFound
	}
	return &dto.DeleteResult{DeletedCount: deleted}, nil
}
