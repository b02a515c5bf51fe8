package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/repository/dao"
)

var (
	ErrEmployeeNotFound    = dao.ErrEmployeeNotFound
	ErrEmployeeEmailExists = dao.ErrEmployeeEmailExists
	ErrProviderNotFound    = dao.ErrProviderNotFound
)

type EmployeeDAO interface {
	Insert(ctx context.Context, employee dao.Employee) (dao.Employee, error)
	FindAll(ctx context.Context) ([]dao.Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Employee, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (dao.Employee, error)
	Deactivate(ctx context.Context, id uuid.UUID) (dao.Employee, error)
}

type EmployeeRepository struct {
	dao EmployeeDAO
}

func NewEmployeeRepository(dao EmployeeDAO) *EmployeeRepository {
	return &EmployeeRepository{
		dao: dao,
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	created, err := r.dao.Insert(ctx, dao.Employee{
		FullName: employee.FullName,
		Position: employee.Position,
		Email:    employee.Email,
		Phone:    employee.Phone,
		HireDate: employee.HireDate,
		Status:   string(employee.Status),
	})
	if err != nil {
		return domain.Employee{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return employeeDaoToDomain(created), nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	employees := make([]domain.Employee, 0, len(found))
	for _, e := range found {
		employees = append(employees, employeeDaoToDomain(e))
	}

	return employees, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return employeeDaoToDomain(found), nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id uuid.UUID, patch domain.EmployeePatch) (domain.Employee, error) {
	updates := make(map[string]any)
	if patch.FullName != nil {
		updates["full_name"] = *patch.FullName
	}
	if patch.Position != nil {
		updates["position"] = *patch.Position
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}

	updated, err := r.dao.Update(ctx, id, updates)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return employeeDaoToDomain(updated), nil
}

func (r *EmployeeRepository) Deactivate(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	deactivated, err := r.dao.Deactivate(ctx, id)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("r.dao.Deactivate -> %w", err)
	}

	return employeeDaoToDomain(deactivated), nil
}

func employeeDaoToDomain(e dao.Employee) domain.Employee {
	return domain.Employee{
		ID:        e.ID,
		FullName:  e.FullName,
		Position:  e.Position,
		Email:     e.Email,
		Phone:     e.Phone,
		HireDate:  e.HireDate,
		Status:    domain.RecordStatus(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type ProviderDAO interface {
	Insert(ctx context.Context, provider dao.Provider) (dao.Provider, error)
	FindAll(ctx context.Context) ([]dao.Provider, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Provider, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (dao.Provider, error)
	Deactivate(ctx context.Context, id uuid.UUID) (dao.Provider, error)
}

type ProviderRepository struct {
	dao ProviderDAO
}

func NewProviderRepository(dao ProviderDAO) *ProviderRepository {
	return &ProviderRepository{
		dao: dao,
	}
}

func (r *ProviderRepository) Create(ctx context.Context, provider domain.Provider) (domain.Provider, error) {
	created, err := r.dao.Insert(ctx, dao.Provider{
		CompanyName: provider.CompanyName,
		ServiceType: provider.ServiceType,
		ContactName: provider.ContactName,
		Email:       provider.Email,
		Phone:       provider.Phone,
		Status:      string(provider.Status),
	})
	if err != nil {
		return domain.Provider{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return providerDaoToDomain(created), nil
}

func (r *ProviderRepository) List(ctx context.Context) ([]domain.Provider, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	providers := make([]domain.Provider, 0, len(found))
	for _, p := range found {
		providers = append(providers, providerDaoToDomain(p))
	}

	return providers, nil
}

func (r *ProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Provider, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Provider{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return providerDaoToDomain(found), nil
}

func (r *ProviderRepository) Update(ctx context.Context, id uuid.UUID, patch domain.ProviderPatch) (domain.Provider, error) {
	updates := make(map[string]any)
	if patch.CompanyName != nil {
		updates["company_name"] = *patch.CompanyName
	}
	if patch.ServiceType != nil {
		updates["service_type"] = *patch.ServiceType
	}
	if patch.ContactName != nil {
		updates["contact_name"] = *patch.ContactName
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}

	updated, err := r.dao.Update(ctx, id, updates)
	if err != nil {
		return domain.Provider{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return providerDaoToDomain(updated), nil
}

func (r *ProviderRepository) Deactivate(ctx context.Context, id uuid.UUID) (domain.Provider, error) {
	deactivated, err := r.dao.Deactivate(ctx, id)
	if err != nil {
		return domain.Provider{}, fmt.Errorf("r.dao.Deactivate -> %w", err)
	}

	return providerDaoToDomain(deactivated), nil
}

func providerDaoToDomain(p dao.Provider) domain.Provider {
	return domain.Provider{
		ID:          p.ID,
		CompanyName: p.CompanyName,
		ServiceType: p.ServiceType,
		ContactName: p.ContactName,
		Email:       p.Email,
		Phone:       p.Phone,
		Status:      domain.RecordStatus(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
