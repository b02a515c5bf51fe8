package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/repository"
)

var (
	ErrUserEmailExists    = repository.ErrUserEmailExists
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminAuthorization = errors.New("invalid admin password")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	AdminPassword string
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Login returns the user owning the credentials. Unknown emails, wrong
// passwords and deactivated accounts are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if !user.Active {
		return domain.User{}, ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Register creates an AGENT account. The request must carry the password of
// an active administrator.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	if err := s.checkAdminPassword(ctx, in.AdminPassword); err != nil {
		return domain.User{}, err
	}

	email := normalizeEmail(in.Email)
	if err := s.checkEmailExists(ctx, email); err != nil {
		return domain.User{}, err
	}

	hashedPassword, err := hashPassword(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	created, err := s.repo.Create(ctx, domain.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: hashedPassword,
		Role:     domain.RoleAgent,
		Active:   true,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Profile(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *AuthService) checkAdminPassword(ctx context.Context, password string) error {
	admins, err := s.repo.FindByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("s.repo.FindByRole -> %w", err)
	}

	for _, admin := range admins {
		if !admin.Active {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) == nil {
			return nil
		}
	}

	return ErrAdminAuthorization
}

func (s *AuthService) checkEmailExists(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return ErrUserEmailExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
