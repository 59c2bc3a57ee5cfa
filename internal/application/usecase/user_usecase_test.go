package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crunchyspot/crunchyspot-api/internal/application/dto"
	"github.com/crunchyspot/crunchyspot-api/internal/application/usecase"
	"github.com/crunchyspot/crunchyspot-api/internal/domain"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/entity"
)

// fakeUserRepo puerto de usuarios en memoria.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
	inserts int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) (string, error) {
	f.inserts++
	f.byEmail[u.Email] = u
	return "000000000000000000000001", nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.byEmail))
	for _, u := range f.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) PromoteToAdmin(string) (int64, error) { return 1, nil }
func (f *fakeUserRepo) Delete(string) (int64, error)         { return 1, nil }
func (f *fakeUserRepo) Count() (int64, error)                { return int64(len(f.byEmail)), nil }

func TestUserCreate_PrimerSignIn_Inserta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "a@x.com"})
	require.NoError(t, err)

	require.NotNil(t, out.InsertedID)
	assert.Empty(t, out.Message)
	assert.Equal(t, 1, repo.inserts)
	assert.Equal(t, entity.RoleUser, repo.byEmail["a@x.com"].Role, "el alta siempre entra con rol user")
}

// Upsert por email: el segundo alta con el mismo email no inserta un
// segundo registro y lo informa en el mensaje.
func TestUserCreate_EmailRepetido_NoDuplica(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "a@x.com"})
	require.NoError(t, err)

	out, err := uc.Create(dto.CreateUserRequest{Name: "Otra Ana", Email: "a@x.com"})
	require.NoError(t, err)

	assert.Nil(t, out.InsertedID, "no debe haber segundo insertedId")
	assert.NotEmpty(t, out.Message, "debe informarse que el usuario ya existe")
	assert.Equal(t, 1, repo.inserts, "el store debe tener un solo insert")
}

func TestUserCreate_EmailInvalido_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "no-es-un-email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
