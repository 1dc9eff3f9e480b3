package service

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/orderdesk/approval-system/internal/core/domain"
	"github.com/orderdesk/approval-system/internal/core/ports"
	"github.com/orderdesk/approval-system/internal/core/session"
)

var phonePattern = regexp.MustCompile(`^\d{10,15}$`)

// dummyHash is compared against the supplied password when no account matches
// the email, so the bcrypt cost is paid on both branches and response timing
// does not reveal whether the account exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// AuthService implements registration and role-asserted login.
type AuthService struct {
	repo  ports.AccountRepository
	codec *session.Codec
	log   zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, codec *session.Codec, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, log: log}
}

// Register creates an account with a hashed credential. Email, phone, and
// name uniqueness are enforced by the repository.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)
	role := strings.ToLower(strings.TrimSpace(in.Role))

	if name == "" || email == "" || phone == "" || in.Password == "" || role == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !phonePattern.MatchString(phone) {
		return nil, domain.ErrInvalidInput
	}
	if !domain.KnownRole(role) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("role", created.Role).Msg("account registered")
	return created, nil
}

// Login verifies the credential triple and issues a session token. The bcrypt
// comparison runs whether or not the account exists, and every failure mode
// collapses into domain.ErrInvalidCredentials: the caller learns nothing about
// which of email, password, or asserted role was wrong.
func (s *AuthService) Login(ctx context.Context, email, password, role string) (string, *domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	role = strings.ToLower(strings.TrimSpace(role))

	if email == "" || password == "" || role == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil && err != domain.ErrAccountNotFound {
		return "", nil, err
	}

	hash := dummyHash
	if account != nil {
		hash = []byte(account.PasswordHash)
	}
	passwordOK := bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil

	if account == nil || !passwordOK || !strings.EqualFold(account.Role, role) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(account, time.Now().UTC())
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", account.Email).Str("role", account.Role).Msg("login succeeded")
	return token, account, nil
}
