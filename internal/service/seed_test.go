package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/muhu-travel/backoffice-api/internal/domain"
)

func TestSeeder_RunSkipsExistingRecords(t *testing.T) {
	users := &mockUserRepo{}
	packages := &mockPackageRepo{}
	employees := &mockEmployeeRepo{}
	providers := &mockProviderRepo{}

	users.On("FindByEmail", mock.Anything, "admin@muhu.com").Return(domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", ErrUserNotFound))
	users.On("FindByEmail", mock.Anything, "agente@muhu.com").Return(domain.User{Email: "agente@muhu.com"}, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "admin@muhu.com" && u.Role == domain.RoleAdmin && u.Active && u.Password != "admin123"
	})).Return(domain.User{}, nil)

	packages.On("FindByName", mock.Anything, "Machu Picchu Full Day").Return(domain.TourPackage{Name: "Machu Picchu Full Day"}, nil)
	packages.On("FindByName", mock.Anything, mock.Anything).Return(domain.TourPackage{}, ErrPackageNotFound)
	packages.On("Create", mock.Anything, mock.Anything).Return(domain.TourPackage{}, nil)

	employees.On("Create", mock.Anything, mock.Anything).Return(domain.Employee{}, fmt.Errorf("r.dao.Insert -> %w", ErrEmployeeEmailExists))

	providers.On("List", mock.Anything).Return([]domain.Provider{{CompanyName: "Hotel Los Andes"}}, nil)
	providers.On("Create", mock.Anything, mock.MatchedBy(func(p domain.Provider) bool {
		return p.Status == domain.StatusActive
	})).Return(domain.Provider{}, nil)

	err := NewSeeder(users, packages, employees, providers).Run(context.Background())
	require.NoError(t, err)

	users.AssertNumberOfCalls(t, "Create", 1)
	packages.AssertNumberOfCalls(t, "Create", 3)
	employees.AssertNumberOfCalls(t, "Create", 2)
	providers.AssertNumberOfCalls(t, "Create", 2)
	assert.True(t, users.AssertExpectations(t))
}
