package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/repository"
)

type SeedUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type SeedPackageRepository interface {
	Create(ctx context.Context, pkg domain.TourPackage) (domain.TourPackage, error)
	FindByName(ctx context.Context, name string) (domain.TourPackage, error)
}

type SeedEmployeeRepository interface {
	Create(ctx context.Context, employee domain.Employee) (domain.Employee, error)
}

type SeedProviderRepository interface {
	Create(ctx context.Context, provider domain.Provider) (domain.Provider, error)
	List(ctx context.Context) ([]domain.Provider, error)
}

// Seeder loads the demo accounts and catalog. Running it twice is harmless:
// every record is matched on its natural key first.
type Seeder struct {
	users     SeedUserRepository
	packages  SeedPackageRepository
	employees SeedEmployeeRepository
	providers SeedProviderRepository
}

func NewSeeder(users SeedUserRepository, packages SeedPackageRepository, employees SeedEmployeeRepository, providers SeedProviderRepository) *Seeder {
	return &Seeder{
		users:     users,
		packages:  packages,
		employees: employees,
		providers: providers,
	}
}

type seedUser struct {
	name     string
	email    string
	password string
	role     domain.Role
}

var (
	seedUsers = []seedUser{
		{name: "Admin User", email: "admin@muhu.com", password: "admin123", role: domain.RoleAdmin},
		{name: "Agente Ventas", email: "agente@muhu.com", password: "agent123", role: domain.RoleAgent},
	}

	seedPackages = []domain.TourPackage{
		{
			Name:         "Machu Picchu Full Day",
			Description:  "Visita a la maravilla del mundo en un día inolvidable.",
			Price:        450,
			DurationDays: 1,
			MaxPax:       15,
			Destinations: []string{"Cusco", "Machu Picchu"},
		},
		{
			Name:         "Valle Sagrado VIP",
			Description:  "Recorrido exclusivo por Pisac, Ollantaytambo y Chinchero.",
			Price:        280,
			DurationDays: 1,
			MaxPax:       12,
			Destinations: []string{"Pisac", "Ollantaytambo", "Chinchero"},
		},
		{
			Name:         "Cusco Mágico 4D/3N",
			Description:  "Paquete completo incluyendo City Tour, Valle Sagrado y Machu Picchu.",
			Price:        1200,
			DurationDays: 4,
			MaxPax:       10,
			Destinations: []string{"Cusco", "Sacsayhuaman", "Pisac", "Machu Picchu"},
		},
		{
			Name:         "Montaña 7 Colores",
			Description:  "Trekking a la famosa montaña Vinicunca.",
			Price:        150,
			DurationDays: 1,
			MaxPax:       20,
			Destinations: []string{"Cusco", "Vinicunca"},
		},
	}

	seedEmployees = []domain.Employee{
		{
			FullName: "Juan Pérez",
			Position: "Guía Oficial",
			Email:    "juan.perez@muhu.com",
			Phone:    "987654321",
			HireDate: time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			FullName: "Maria Rodriguez",
			Position: "Coordinadora de Operaciones",
			Email:    "maria.rodriguez@muhu.com",
			Phone:    "912345678",
			HireDate: time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	seedProviders = []domain.Provider{
		{CompanyName: "Transportes Cusco", ServiceType: "Transport", ContactName: "Carlos Gomez", Email: "contacto@transportescusco.com", Phone: "998877665"},
		{CompanyName: "Hotel Los Andes", ServiceType: "Hotel", ContactName: "Ana Torres", Email: "reservas@hotellosandes.com", Phone: "977665544"},
		{CompanyName: "Restaurante El Maíz", ServiceType: "Restaurant", ContactName: "Luis Romero", Email: "info@elmaiz.com", Phone: "955443322"},
	}
)

func (s *Seeder) Run(ctx context.Context) error {
	zap.L().Info("seeding database")

	if err := s.seedUsers(ctx); err != nil {
		return fmt.Errorf("s.seedUsers -> %w", err)
	}
	if err := s.seedPackages(ctx); err != nil {
		return fmt.Errorf("s.seedPackages -> %w", err)
	}
	if err := s.seedEmployees(ctx); err != nil {
		return fmt.Errorf("s.seedEmployees -> %w", err)
	}
	if err := s.seedProviders(ctx); err != nil {
		return fmt.Errorf("s.seedProviders -> %w", err)
	}

	zap.L().Info("database seeded")

	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	for _, u := range seedUsers {
		_, err := s.users.FindByEmail(ctx, u.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return fmt.Errorf("s.users.FindByEmail -> %w", err)
		}

		hashedPassword, err := hashPassword(u.password)
		if err != nil {
			return err
		}

		_, err = s.users.Create(ctx, domain.User{
			Name:     u.name,
			Email:    u.email,
			Password: hashedPassword,
			Role:     u.role,
			Active:   true,
		})
		if err != nil {
			return fmt.Errorf("s.users.Create -> %w", err)
		}
		zap.L().Info("seeded user", zap.String("email", u.email), zap.String("role", string(u.role)))
	}

	return nil
}

func (s *Seeder) seedPackages(ctx context.Context) error {
	for _, pkg := range seedPackages {
		_, err := s.packages.FindByName(ctx, pkg.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrPackageNotFound) {
			return fmt.Errorf("s.packages.FindByName -> %w", err)
		}

		if _, err = s.packages.Create(ctx, pkg); err != nil {
			return fmt.Errorf("s.packages.Create -> %w", err)
		}
		zap.L().Info("seeded package", zap.String("name", pkg.Name))
	}

	return nil
}

func (s *Seeder) seedEmployees(ctx context.Context) error {
	for _, employee := range seedEmployees {
		employee.Status = domain.StatusActive

		_, err := s.employees.Create(ctx, employee)
		if err != nil && !errors.Is(err, repository.ErrEmployeeEmailExists) {
			return fmt.Errorf("s.employees.Create -> %w", err)
		}
	}

	return nil
}

// Providers have no unique column, so they are matched by company name.
func (s *Seeder) seedProviders(ctx context.Context) error {
	existing, err := s.providers.List(ctx)
	if err != nil {
		return fmt.Errorf("s.providers.List -> %w", err)
	}

	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[p.CompanyName] = true
	}

	for _, provider := range seedProviders {
		if known[provider.CompanyName] {
			continue
		}

		provider.Status = domain.StatusActive
		if _, err = s.providers.Create(ctx, provider); err != nil {
			return fmt.Errorf("s.providers.Create -> %w", err)
		}
	}

	return nil
}
