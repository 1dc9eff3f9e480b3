package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/orderdesk/approval-system/internal/core/domain"
	"github.com/orderdesk/approval-system/internal/core/ports"
	"github.com/orderdesk/approval-system/internal/core/session"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account // keyed by email
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return nil, domain.ErrEmailExists
		}
		if existing.Phone == account.Phone {
			return nil, domain.ErrPhoneExists
		}
		if existing.Name == account.Name {
			return nil, domain.ErrNameExists
		}
	}
	copy := cloneAccount(account)
	if copy.ID == "" {
		copy.ID = account.Email
	}
	r.accounts[copy.Email] = cloneAccount(copy)
	return cloneAccount(copy), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	if a, ok := r.accounts[email]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func newAuthService(repo ports.AccountRepository) *AuthService {
	codec := session.NewCodec("test-secret", time.Hour)
	return NewAuthService(repo, codec, zerolog.Nop())
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "5512345678",
		Password: "s3cret",
		Role:     domain.RoleUser,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	account, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if account == nil {
		t.Fatalf("expected account, got nil")
	}
	if account.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if account.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", account.Role)
	}
}

func TestAuthService_Register_Normalizes(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	in := registerInput()
	in.Name = "  Alice  "
	in.Email = "  ALICE@Example.COM "
	in.Role = " User "

	account, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if account.Name != "Alice" {
		t.Fatalf("expected trimmed name, got %q", account.Name)
	}
	if account.Email != "alice@example.com" {
		t.Fatalf("expected lower-cased email, got %q", account.Email)
	}
	if account.Role != domain.RoleUser {
		t.Fatalf("expected normalized role, got %q", account.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	cases := []struct {
		name   string
		mutate func(*ports.RegisterInput)
	}{
		{"missing name", func(in *ports.RegisterInput) { in.Name = "" }},
		{"missing password", func(in *ports.RegisterInput) { in.Password = "" }},
		{"bad email", func(in *ports.RegisterInput) { in.Email = "not-an-email" }},
		{"short phone", func(in *ports.RegisterInput) { in.Phone = "123" }},
		{"long phone", func(in *ports.RegisterInput) { in.Phone = "1234567890123456" }},
		{"alpha phone", func(in *ports.RegisterInput) { in.Phone = "55phone5555" }},
		{"unknown role", func(in *ports.RegisterInput) { in.Role = "admin" }},
	}

	for _, tc := range cases {
		in := registerInput()
		tc.mutate(&in)
		if _, err := svc.Register(context.Background(), in); err != domain.ErrInvalidInput {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	dupEmail := registerInput()
	dupEmail.Name = "Alice2"
	dupEmail.Phone = "5599999999"
	if _, err := svc.Register(context.Background(), dupEmail); err != domain.ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	dupPhone := registerInput()
	dupPhone.Name = "Alice2"
	dupPhone.Email = "alice2@example.com"
	if _, err := svc.Register(context.Background(), dupPhone); err != domain.ErrPhoneExists {
		t.Fatalf("expected ErrPhoneExists, got %v", err)
	}

	dupName := registerInput()
	dupName.Email = "alice2@example.com"
	dupName.Phone = "5599999999"
	if _, err := svc.Register(context.Background(), dupName); err != domain.ErrNameExists {
		t.Fatalf("expected ErrNameExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, account, err := svc.Login(context.Background(), "alice@example.com", "s3cret", domain.RoleUser)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if account == nil || account.Name != "Alice" {
		t.Fatalf("unexpected account: %+v", account)
	}

	codec := session.NewCodec("test-secret", time.Hour)
	claims, err := codec.Resolve(token)
	if err != nil {
		t.Fatalf("issued token did not resolve: %v", err)
	}
	if claims.Role != domain.RoleUser || claims.Name != "Alice" || claims.Email != "alice@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_NormalizesInputs(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	_, _ = svc.Register(context.Background(), registerInput())

	if _, _, err := svc.Login(context.Background(), "  ALICE@example.com ", "s3cret", " USER "); err != nil {
		t.Fatalf("expected success with unnormalized inputs, got %v", err)
	}
}

// Every failure mode shares one generic error: unknown email, wrong password,
// and role mismatch are indistinguishable to the caller.
func TestAuthService_Login_GenericFailures(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	_, _ = svc.Register(context.Background(), registerInput())

	cases := []struct {
		name     string
		email    string
		password string
		role     string
	}{
		{"unknown email", "ghost@example.com", "s3cret", domain.RoleUser},
		{"wrong password", "alice@example.com", "wrong", domain.RoleUser},
		{"role mismatch", "alice@example.com", "s3cret", domain.RoleManager},
		{"unknown role", "alice@example.com", "s3cret", "admin"},
		{"missing fields", "", "", ""},
		{"malformed email", "not-an-email", "s3cret", domain.RoleUser},
	}

	for _, tc := range cases {
		if _, _, err := svc.Login(context.Background(), tc.email, tc.password, tc.role); err != domain.ErrInvalidCredentials {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}

// The hash comparison must run on the missing-account branch too, so the
// dummy hash has to be a structurally valid bcrypt hash.
func TestAuthService_DummyHashIsValidBcrypt(t *testing.T) {
	if len(dummyHash) == 0 {
		t.Fatalf("dummy hash not initialised")
	}
	if err := bcrypt.CompareHashAndPassword(dummyHash, []byte("not-a-real-password")); err != nil {
		t.Fatalf("dummy hash is not a valid bcrypt hash: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(dummyHash, []byte("anything-else")); err == nil {
		t.Fatalf("dummy hash unexpectedly matched an arbitrary password")
	}
}
