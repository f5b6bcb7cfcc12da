package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/domain/repository"
	"github.com/copipaste/agencia-SGE/pkg/logger"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
)

// Claims is the JWT payload issued on login.
type Claims struct {
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	IsAgente  bool   `json:"isAgente"`
	IsCliente bool   `json:"isCliente"`
	jwt.RegisteredClaims
}

// RegisterInput holds the fields of a signup request.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Telefono  string `json:"telefono,omitempty"`
	Sexo      string `json:"sexo,omitempty"`
	IsAdmin   bool   `json:"isAdmin"`
	IsAgente  bool   `json:"isAgente"`
	IsCliente bool   `json:"isCliente"`
}

// AuthService handles account registration and token-based authentication.
type AuthService struct {
	usuarioRepo repository.UsuarioRepository
	secret      []byte
	expiry      time.Duration
	logger      logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(usuarioRepo repository.UsuarioRepository, secret string, expiry time.Duration, logger logger.Logger) *AuthService {
	return &AuthService{
		usuarioRepo: usuarioRepo,
		secret:      []byte(secret),
		expiry:      expiry,
		logger:      logger,
	}
}

// Register creates a user account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entity.Usuario, error) {
	existing, err := s.usuarioRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usuario := &entity.Usuario{
		Email:     input.Email,
		Password:  string(hash),
		Nombre:    input.Nombre,
		Apellido:  input.Apellido,
		Telefono:  input.Telefono,
		Sexo:      input.Sexo,
		IsAdmin:   input.IsAdmin,
		IsAgente:  input.IsAgente,
		IsCliente: input.IsCliente,
		IsActive:  true,
	}

	if err := s.usuarioRepo.Save(ctx, usuario); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("User registered", "usuarioId", usuario.ID, "email", usuario.Email)
	return usuario, nil
}

// Login verifies credentials and issues a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if usuario == nil {
		return "", nil, ErrInvalidCredentials
	}
	if !usuario.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := &Claims{
		Email:     usuario.Email,
		IsAdmin:   usuario.IsAdmin,
		IsAgente:  usuario.IsAgente,
		IsCliente: usuario.IsCliente,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usuario.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("User logged in", "usuarioId", usuario.ID, "email", usuario.Email)
	return token, usuario, nil
}

// ValidateToken parses and verifies a token issued by Login.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// RegisterFcmToken stores the device token a client app reports after login.
func (s *AuthService) RegisterFcmToken(ctx context.Context, usuarioID, token string) error {
	return s.usuarioRepo.UpdateFcmToken(ctx, usuarioID, token)
}
