package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	statusActive   = "ACTIVE"
	statusInactive = "INACTIVE"
)

type Employee struct {
	Model

	FullName string    `gorm:"not null"`
	Position string    `gorm:"not null"`
	Email    string    `gorm:"uniqueIndex:idx_employees_email;not null"`
	Phone    string    `gorm:"not null"`
	HireDate time.Time `gorm:"type:date;not null"`
	Status   string    `gorm:"not null"`
}

type Provider struct {
	Model

	CompanyName string `gorm:"not null"`
	ServiceType string `gorm:"not null"` // Transport, Hotel, Guide...
	ContactName string `gorm:"not null"`
	Email       string
	Phone       string
	Status      string `gorm:"not null"`
}

type EmployeeDAO struct {
	db *gorm.DB
}

func NewEmployeeDAO(db *gorm.DB) *EmployeeDAO {
	return &EmployeeDAO{
		db: db,
	}
}

func (d *EmployeeDAO) Insert(ctx context.Context, employee Employee) (Employee, error) {
	if employee.Status == "" {
		employee.Status = statusActive
	}

	result := d.db.WithContext(ctx).Create(&employee)
	if result.Error != nil {
		if isUniqueViolation(result.Error, constraintEmployeesEmail) {
			return Employee{}, ErrEmployeeEmailExists
		}

		return Employee{}, result.Error
	}

	return employee, nil
}

// FindAll lists active and inactive employees alike.
func (d *EmployeeDAO) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&employees)
	if result.Error != nil {
		return nil, result.Error
	}

	return employees, nil
}

func (d *EmployeeDAO) FindByID(ctx context.Context, id uuid.UUID) (Employee, error) {
	var employee Employee

	result := d.db.WithContext(ctx).First(&employee, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Employee{}, ErrEmployeeNotFound
		}

		return Employee{}, result.Error
	}

	return employee, nil
}

func (d *EmployeeDAO) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (Employee, error) {
	if len(updates) > 0 {
		result := d.db.WithContext(ctx).Model(&Employee{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return Employee{}, result.Error
		}
		if result.RowsAffected == 0 {
			return Employee{}, ErrEmployeeNotFound
		}
	}

	return d.FindByID(ctx, id)
}

// Deactivate is the soft delete of an employee: the row stays, flagged INACTIVE.
func (d *EmployeeDAO) Deactivate(ctx context.Context, id uuid.UUID) (Employee, error) {
	return d.Update(ctx, id, map[string]any{"status": statusInactive})
}

type ProviderDAO struct {
	db *gorm.DB
}

func NewProviderDAO(db *gorm.DB) *ProviderDAO {
	return &ProviderDAO{
		db: db,
	}
}

func (d *ProviderDAO) Insert(ctx context.Context, provider Provider) (Provider, error) {
	if provider.Status == "" {
		provider.Status = statusActive
	}

	result := d.db.WithContext(ctx).Create(&provider)
	if result.Error != nil {
		return Provider{}, result.Error
	}

	return provider, nil
}

func (d *ProviderDAO) FindAll(ctx context.Context) ([]Provider, error) {
	var providers []Provider

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&providers)
	if result.Error != nil {
		return nil, result.Error
	}

	return providers, nil
}

func (d *ProviderDAO) FindByID(ctx context.Context, id uuid.UUID) (Provider, error) {
	var provider Provider

	result := d.db.WithContext(ctx).First(&provider, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Provider{}, ErrProviderNotFound
		}

		return Provider{}, result.Error
	}

	return provider, nil
}

func (d *ProviderDAO) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (Provider, error) {
	if len(updates) > 0 {
		result := d.db.WithContext(ctx).Model(&Provider{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return Provider{}, result.Error
		}
		if result.RowsAffected == 0 {
			return Provider{}, ErrProviderNotFound
		}
	}

	return d.FindByID(ctx, id)
}

func (d *ProviderDAO) Deactivate(ctx context.Context, id uuid.UUID) (Provider, error) {
	return d.Update(ctx, id, map[string]any{"status": statusInactive})
}
