package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockkasir/stockkasir-api/internal/application/auth"
	"github.com/stockkasir/stockkasir-api/internal/application/dto"
	"github.com/stockkasir/stockkasir-api/internal/domain"
	"github.com/stockkasir/stockkasir-api/internal/domain/entity"
	pkgjwt "github.com/stockkasir/stockkasir-api/pkg/jwt"
)

// memUserRepo fake en memoria de repository.UserRepository.
type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

var testJWTCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "stockkasir-test"}

func TestRegisterUser_YLogin(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTCfg)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "  Dueno@Tienda.com ",
		Password: "secreta123",
		Name:     "Dueño",
	})
	require.NoError(t, err)
	assert.Equal(t, "dueno@tienda.com", user.Email, "el email se normaliza a minúsculas")

	resp, err := uc.Login(dto.LoginRequest{Email: "dueno@tienda.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	// El token debe llevar el ID del usuario como namespace.
	userID, err := pkgjwt.Parse(testJWTCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Password: "x12345678"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "A@B.com", Password: "otro12345"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Password: "correcta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@b.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
