package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard-io/taskboard-backend/internal/auth/domain"
	"github.com/taskboard-io/taskboard-backend/internal/auth/repository"
	"github.com/taskboard-io/taskboard-backend/internal/validation"
)

type AuthService struct {
	users      *repository.UserRepository
	tokens     *repository.TokenStore
	bcryptCost int
}

func NewAuthService(users *repository.UserRepository, tokens *repository.TokenStore, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register validates the input, creates the user, and issues a first token.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, string, error) {
	verrs := validation.Errors{}
	validation.Required(verrs, "name", req.Name)
	validation.MaxLen(verrs, "name", req.Name, 255)
	validation.Required(verrs, "email", req.Email)
	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			verrs.Add("email", "The email must be a valid email address.")
		}
	}
	validation.Required(verrs, "password", req.Password)
	validation.MinLen(verrs, "password", req.Password, 8)
	if req.Password != req.PasswordConfirmation {
		verrs.Add("password", "The password confirmation does not match.")
	}
	if err := verrs.Err(); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(ctx, strings.TrimSpace(req.Name), normalizeEmail(req.Email), string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			verrs.Add("email", "The email has already been taken.")
			return nil, "", verrs
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks the credentials and issues a fresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, string, error) {
	verrs := validation.Errors{}
	validation.Required(verrs, "email", req.Email)
	validation.Required(verrs, "password", req.Password)
	if err := verrs.Err(); err != nil {
		return nil, "", err
	}

	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout invalidates the presented token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Account deleted after the token was issued.
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
