package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/repository"
)

var (
	ErrEmployeeNotFound    = repository.ErrEmployeeNotFound
	ErrEmployeeEmailExists = repository.ErrEmployeeEmailExists
	ErrProviderNotFound    = repository.ErrProviderNotFound
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee domain.Employee) (domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Employee, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.EmployeePatch) (domain.Employee, error)
	Deactivate(ctx context.Context, id uuid.UUID) (domain.Employee, error)
}

type EmployeeService struct {
	repo EmployeeRepository
}

func NewEmployeeService(repo EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		repo: repo,
	}
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	employee.Email = normalizeEmail(employee.Email)
	employee.Status = domain.StatusActive

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return employees, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return employee, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, patch domain.EmployeePatch) (domain.Employee, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteEmployee marks the employee INACTIVE; the record is kept.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	deactivated, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("s.repo.Deactivate -> %w", err)
	}

	return deactivated, nil
}

type ProviderRepository interface {
	Create(ctx context.Context, provider domain.Provider) (domain.Provider, error)
	List(ctx context.Context) ([]domain.Provider, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Provider, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ProviderPatch) (domain.Provider, error)
	Deactivate(ctx context.Context, id uuid.UUID) (domain.Provider, error)
}

type ProviderService struct {
	repo ProviderRepository
}

func NewProviderService(repo ProviderRepository) *ProviderService {
	return &ProviderService{
		repo: repo,
	}
}

func (s *ProviderService) CreateProvider(ctx context.Context, provider domain.Provider) (domain.Provider, error) {
	provider.Status = domain.StatusActive

	created, err := s.repo.Create(ctx, provider)
	if err != nil {
		return domain.Provider{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ProviderService) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	providers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return providers, nil
}

func (s *ProviderService) GetProvider(ctx context.Context, id uuid.UUID) (domain.Provider, error) {
	provider, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Provider{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return provider, nil
}

func (s *ProviderService) UpdateProvider(ctx context.Context, id uuid.UUID, patch domain.ProviderPatch) (domain.Provider, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Provider{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteProvider marks the provider INACTIVE; the record is kept.
func (s *ProviderService) DeleteProvider(ctx context.Context, id uuid.UUID) (domain.Provider, error) {
	deactivated, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return domain.Provider{}, fmt.Errorf("s.repo.Deactivate -> %w", err)
	}

	return deactivated, nil
}
