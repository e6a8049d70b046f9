package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/activos-pro/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]entity.User
	findErr error
	created int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.created++
	r.byEmail[u.Email] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			copia := u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if u, ok := r.byEmail[email]; ok {
		copia := u
		return &copia, nil
	}
	return nil, nil
}

func testJWTCfg() JWTConfig {
	return JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "activos-pro-test"}
}

func TestRegisterUser_CreaConHashYRolPorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTCfg())

	out, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@hotel.com", Password: "clave-segura-123"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.RoleVendedor, out.Role, "sin rol explícito se asigna vendedor")
	assert.Equal(t, "ana@hotel.com", out.Name, "sin nombre se usa el email")

	stored := repo.byEmail["ana@hotel.com"]
	assert.NotEqual(t, "clave-segura-123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-segura-123")))
}

func TestRegisterUser_EmailExistenteRetornaConflicto(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["ana@hotel.com"] = entity.User{ID: "u-1", Email: "ana@hotel.com"}
	uc := NewAuthUseCase(repo, testJWTCfg())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@hotel.com", Password: "clave-segura-123"})
	assert.True(t, errors.Is(err, domain.ErrEmailAlreadyExists))
	assert.Zero(t, repo.created)
}

// Si la consulta por email falla, el registro no continúa: el error de
// almacenamiento se propaga en lugar de apoyarse en el índice único.
func TestRegisterUser_ErrorDeConsultaAbortaElRegistro(t *testing.T) {
	repo := newFakeUserRepo()
	repo.findErr = errors.New("conexión perdida")
	uc := NewAuthUseCase(repo, testJWTCfg())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@hotel.com", Password: "clave-segura-123"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "conexión perdida")
	assert.Zero(t, repo.created, "no debe intentarse el insert tras un fallo de lectura")
}

func TestLogin_CredencialesValidasEmitenToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTCfg())
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@hotel.com", Password: "clave-segura-123", Role: entity.RoleBodeguero,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@hotel.com", Password: "clave-segura-123"})
	require.NoError(t, err)

	userID, role, err := pkgjwt.Parse(testJWTCfg().Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleBodeguero, role)
}

func TestLogin_PasswordIncorrectoRetornaUnauthorized(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTCfg())
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@hotel.com", Password: "clave-segura-123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@hotel.com", Password: "otra-clave"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_UsuarioInexistenteRetornaNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTCfg())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@hotel.com", Password: "lo-que-sea"})
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}

func TestLogin_UsuarioInactivoRetornaForbidden(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-segura-123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.byEmail["ana@hotel.com"] = entity.User{
		ID: "u-1", Email: "ana@hotel.com", PasswordHash: string(hash), Status: "suspended",
	}
	uc := NewAuthUseCase(repo, testJWTCfg())

	_, err = uc.Login(dto.LoginRequest{Email: "ana@hotel.com", Password: "clave-segura-123"})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}
