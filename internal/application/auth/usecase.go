package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Maestros-api/internal/application/dto"
	"github.com/jhoicas/Maestros-api/internal/domain"
	"github.com/jhoicas/Maestros-api/internal/domain/repository"
	"github.com/jhoicas/Maestros-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login contra el maestro de usuarios.
// Los permisos del rol viajan en el token para que el middleware de autorización
// no toque la DB por petición.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, carga el rol con sus permisos y genera el JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	role, err := uc.roleRepo.GetByID(user.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		// Usuario con rol eliminado: sin permisos no hay sesión útil.
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, role.Name, role.PermissionNames(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Email: user.Email, Role: role.Name},
	}, nil
}
