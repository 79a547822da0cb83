package auth

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
	"github.com/jhoicas/Salon-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// dummyHash se compara cuando el usuario no existe, así ambos rechazos cuestan un bcrypt.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("salon-api-dummy-password"), bcrypt.DefaultCost)
	return h
})

// AuthUseCase login y alta de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
	compare  func(hash, password []byte) error
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		jwtCfg:   jwtCfg,
		compare:  bcrypt.CompareHashAndPassword,
	}
}

// Login verifica usuario/password y emite el token.
// Usuario inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = uc.compare(dummyHash(), []byte(in.Password))
		return nil, domain.ErrUnauthorized
	}
	if err := uc.compare([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:   user.ID,
		Username: user.Username,
		RoleID:   user.RoleID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        dto.UserResponse{ID: user.ID, Username: user.Username, RoleID: user.RoleID},
	}, nil
}

// UpsertUser crea el usuario o, si ya existe, le cambia password y rol.
// Lo usa cmd/seed: no hay endpoint de registro.
func (uc *AuthUseCase) UpsertUser(ctx context.Context, username, password string, roleID int) (*entity.User, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, false, domain.ErrInvalidInput
	}
	role, err := uc.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return nil, false, err
	}
	if role == nil {
		return nil, false, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if err := uc.userRepo.UpdatePassword(ctx, existing.ID, string(hash), roleID); err != nil {
			return nil, false, err
		}
		existing.PasswordHash = string(hash)
		existing.RoleID = roleID
		return existing, false, nil
	}

	user := &entity.User{Username: username, PasswordHash: string(hash), RoleID: roleID}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
