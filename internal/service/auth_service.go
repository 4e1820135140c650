package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"motorcycle_maintenance/internal/models"
	"motorcycle_maintenance/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, credential checks and JWT lifecycle.
// Signing key and token TTL are injected at startup.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(users repository.Users, signingKey string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
	}
}

// Claims defines JWT claims carried by issued tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// Register stores a new user with a bcrypt hash of the password.
// The plaintext password never leaves this method.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (int, error) {
	email := strings.TrimSpace(p.Email)
	if email == "" {
		return 0, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Password) == "" {
		return 0, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrEmailTaken
	}

	username := strings.TrimSpace(p.Username)
	if username == "" {
		username = email
	}

	hash, err := hashPassword(p.Password)
	if err != nil {
		return 0, err
	}
	return s.users.Create(ctx, username, email, hash)
}

// GenerateToken validates credentials and returns a signed JWT.
// User lookup failure and password mismatch are indistinguishable to callers.
func (s *AuthService) GenerateToken(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(u.ID)
}

// ParseToken verifies the signature and expiry and returns the embedded user id.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

// GetUser loads the account behind a verified token. The user may have been
// deleted after issuance.
func (s *AuthService) GetUser(ctx context.Context, id int) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}
