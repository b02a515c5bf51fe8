package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/muhu-travel/backoffice-api/internal/domain"
)

func TestUserService_CreateUser(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "maria@muhu.pe" &&
			u.Name == "Maria" &&
			u.Role == domain.RoleAgent &&
			u.Active &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
	})).Return(domain.User{ID: uuid.New(), Email: "maria@muhu.pe", Role: domain.RoleAgent, Active: true}, nil)

	svc := NewUserService(repo)
	created, err := svc.CreateUser(context.Background(), domain.User{
		Name:     "  Maria ",
		Email:    " Maria@Muhu.pe",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAgent, created.Role)
	repo.AssertExpectations(t)
}

func TestUserService_CreateUserConflict(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.User{}, ErrUserEmailExists)

	_, err := NewUserService(repo).CreateUser(context.Background(), domain.User{
		Email:    "maria@muhu.pe",
		Password: "secret123",
		Role:     domain.RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrUserEmailExists)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserService_UpdateUserHashesPassword(t *testing.T) {
	id := uuid.New()
	email := "New@Muhu.pe"
	password := "another123"

	repo := &mockUserRepo{}
	repo.On("Update", mock.Anything, id, mock.MatchedBy(func(p domain.UserPatch) bool {
		return p.Email != nil && *p.Email == "new@muhu.pe" &&
			p.Password != nil && bcrypt.CompareHashAndPassword([]byte(*p.Password), []byte(password)) == nil &&
			p.Name == nil
	})).Return(domain.User{ID: id, Email: "new@muhu.pe"}, nil)

	updated, err := NewUserService(repo).UpdateUser(context.Background(), id, domain.UserPatch{Email: &email, Password: &password})
	require.NoError(t, err)
	assert.Equal(t, "new@muhu.pe", updated.Email)
	repo.AssertExpectations(t)
}

func TestUserService_NotFound(t *testing.T) {
	id := uuid.New()

	repo := &mockUserRepo{}
	repo.On("FindByID", mock.Anything, id).Return(domain.User{}, ErrUserNotFound)
	repo.On("Delete", mock.Anything, id).Return(ErrUserNotFound)

	svc := NewUserService(repo)

	_, err := svc.GetUser(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteUser(context.Background(), id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_ListUsersStorageFailure(t *testing.T) {
	errDB := errors.New("connection reset")

	repo := &mockUserRepo{}
	repo.On("List", mock.Anything).Return([]domain.User(nil), errDB)

	_, err := NewUserService(repo).ListUsers(context.Background())
	assert.ErrorIs(t, err, errDB)
	assert.ErrorContains(t, err, "s.repo.List")
}
