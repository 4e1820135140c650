package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"motorcycle_maintenance/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testSigningKey = "test-signing-key"
	testTokenTTL   = time.Hour
)

func newTestAuthService(repo *mockUserRepo) *AuthService {
	return NewAuthService(repo, testSigningKey, testTokenTTL)
}

// --- Register tests ---

func TestAuthService_Register_HashesPasswordAndCallsRepo(t *testing.T) {
	mock := &mockUserRepo{
		CreateFn: func(username, email, hash string) (int, error) {
			return 42, nil
		},
	}
	svc := newTestAuthService(mock)

	id, err := svc.Register(context.Background(), RegisterParams{
		Email:    "alice@example.com",
		Password: "s3cr3t",
		Username: "alice",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	call := mock.createCalls[0]
	if call.username != "alice" || call.email != "alice@example.com" {
		t.Errorf("unexpected create args: %+v", call)
	}
	if call.hash == "s3cr3t" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(call.hash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
}

func TestAuthService_Register_UsernameDefaultsToEmail(t *testing.T) {
	mock := &mockUserRepo{
		CreateFn: func(username, email, hash string) (int, error) {
			return 1, nil
		},
	}
	svc := newTestAuthService(mock)

	if _, err := svc.Register(context.Background(), RegisterParams{
		Email:    "bob@example.com",
		Password: "pw",
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if mock.createCalls[0].username != "bob@example.com" {
		t.Fatalf("expected username to default to email, got %q", mock.createCalls[0].username)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	mock := &mockUserRepo{
		CreateFn: func(username, email, hash string) (int, error) {
			t.Fatal("Create should not be called for invalid input")
			return 0, nil
		},
	}
	svc := newTestAuthService(mock)

	cases := []RegisterParams{
		{Password: "pw"},
		{Email: "a@b.c"},
		{Email: "   ", Password: "pw"},
		{Email: "a@b.c", Password: "   "},
	}
	for _, p := range cases {
		_, err := svc.Register(context.Background(), p)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("params %+v: expected ErrInvalidInput, got %v", p, err)
		}
	}
	if len(mock.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(mock.createCalls))
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mock := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email}, nil
		},
		CreateFn: func(username, email, hash string) (int, error) {
			t.Fatal("Create should not be called for a duplicate email")
			return 0, nil
		},
	}
	svc := newTestAuthService(mock)

	_, err := svc.Register(context.Background(), RegisterParams{Email: "taken@example.com", Password: "pw"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

// --- GenerateToken tests ---

func TestAuthService_GenerateToken_RoundTrip(t *testing.T) {
	hash, err := hashPassword("letmein")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	user := &models.User{ID: 7, Username: "diana", Email: "diana@example.com", PasswordHash: hash}

	mock := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			if email != "diana@example.com" {
				t.Fatalf("expected email lookup for diana, got %q", email)
			}
			return user, nil
		},
	}
	svc := newTestAuthService(mock)

	token, err := svc.GenerateToken(context.Background(), "diana@example.com", "letmein")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	// The token must recover exactly the id encoded at issuance.
	uid, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if uid != 7 {
		t.Fatalf("expected user id 7 from token, got %d", uid)
	}
}

func TestAuthService_GenerateToken_UnknownEmail(t *testing.T) {
	mock := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return nil, nil
		},
	}
	svc := newTestAuthService(mock)

	_, err := svc.GenerateToken(context.Background(), "ghost@example.com", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_GenerateToken_WrongPassword(t *testing.T) {
	correctHash, err := hashPassword("correct")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	mock := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, PasswordHash: correctHash}, nil
		},
	}
	svc := newTestAuthService(mock)

	_, err = svc.GenerateToken(context.Background(), "eve@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_GenerateToken_RepoError(t *testing.T) {
	mock := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return nil, errors.New("query failed")
		},
	}
	svc := newTestAuthService(mock)

	_, err := svc.GenerateToken(context.Background(), "john@example.com", "pw")
	if err == nil {
		t.Fatalf("expected repo error, got nil")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("repo failure must not be reported as bad credentials: %v", err)
	}
}

// --- ParseToken tests ---

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})
	if _, err := svc.ParseToken("not-a-jwt"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestAuthService_ParseToken_InvalidSignature(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})

	// Token signed with a different key: must never authenticate.
	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 5,
	})
	badToken, err := tk.SignedString([]byte("different-key"))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(badToken); err == nil {
		t.Fatalf("expected signature verification error")
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})

	past := time.Now().Add(-2 * time.Hour)
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
		},
		UserID: 11,
	})
	expiredToken, err := tk.SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(expiredToken); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestAuthService_ParseToken_UnexpectedAlg(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey failed: %v", err)
	}

	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 12,
	})
	tokenStr, err := tk.SignedString(privateKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(tokenStr); err == nil {
		t.Fatalf("expected error due to unexpected signing method")
	}
}

// --- GetUser tests ---

func TestAuthService_GetUser(t *testing.T) {
	mock := &mockUserRepo{
		GetByIDFn: func(id int) (*models.User, error) {
			if id == 7 {
				return &models.User{ID: 7, Username: "diana", Email: "d@example.com"}, nil
			}
			return nil, nil
		},
	}
	svc := newTestAuthService(mock)

	u, err := svc.GetUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetUser returned error: %v", err)
	}
	if u.Username != "diana" {
		t.Fatalf("unexpected user: %+v", u)
	}

	_, err = svc.GetUser(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for deleted user, got %v", err)
	}
}
