package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Maestros-api/internal/application/auth"
	"github.com/jhoicas/Maestros-api/internal/application/dto"
	"github.com/jhoicas/Maestros-api/internal/domain"
	"github.com/jhoicas/Maestros-api/internal/domain/entity"
	"github.com/jhoicas/Maestros-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/Maestros-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: solo lo que Login necesita
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if u, ok := r.users[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

// fakeRoleReader implementa RoleRepository pero Login solo usa GetByID.
type fakeRoleReader struct {
	roles map[int64]*entity.Role
}

func (r *fakeRoleReader) GetByID(id int64) (*entity.Role, error) {
	if role, ok := r.roles[id]; ok {
		cp := *role
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeRoleReader) Create(*entity.Role) error                         { return nil }
func (r *fakeRoleReader) Update(*entity.Role) error                         { return nil }
func (r *fakeRoleReader) GetByName(string, int64) (*entity.Role, error)     { return nil, nil }
func (r *fakeRoleReader) List(repository.ListQuery) ([]*entity.Role, error) { return nil, nil }
func (r *fakeRoleReader) Count(repository.ListQuery) (int64, error)         { return 0, nil }
func (r *fakeRoleReader) All() ([]*entity.Role, error)                      { return nil, nil }
func (r *fakeRoleReader) ReplacePermissions(int64, []int64) error           { return nil }
func (r *fakeRoleReader) Delete(int64) error                                { return nil }

const (
	testSecret   = "auth-test-secret"
	testPassword = "Clave-123"
)

func newAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[string]*entity.User{
		"ana@acme.co": {
			ID:           7,
			Email:        "ana@acme.co",
			PasswordHash: string(hash),
			RoleID:       1,
			Status:       "active",
		},
		"baja@acme.co": {
			ID:           8,
			Email:        "baja@acme.co",
			PasswordHash: string(hash),
			RoleID:       1,
			Status:       "disabled",
		},
		"sinrol@acme.co": {
			ID:           9,
			Email:        "sinrol@acme.co",
			PasswordHash: string(hash),
			RoleID:       99, // rol eliminado
			Status:       "active",
		},
	}}
	roles := &fakeRoleReader{roles: map[int64]*entity.Role{
		1: {
			ID:   1,
			Name: "Administrador",
			Permissions: []entity.Permission{
				{ID: 1, Name: "Role-View"},
				{ID: 2, Name: "Supplier-View"},
			},
		},
	}}
	return auth.NewAuthUseCase(users, roles, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 15,
		Issuer:     "maestros-api-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_TokenConPermisosDelRol(t *testing.T) {
	uc := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@acme.co", Password: testPassword})
	require.NoError(t, err)

	assert.Equal(t, int64(7), out.User.ID)
	assert.Equal(t, "Administrador", out.User.Role)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "Administrador", claims.Role)
	assert.Equal(t, []string{"Role-View", "Supplier-View"}, claims.Permissions,
		"los permisos del rol deben viajar en el token")
}

func TestLogin_EmailInexistente_RetornaErrUserNotFound(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@acme.co", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecta_RetornaErrUnauthorized(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@acme.co", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioDeshabilitado_RetornaErrForbidden(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "baja@acme.co", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_RolEliminado_RetornaErrForbidden(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "sinrol@acme.co", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
