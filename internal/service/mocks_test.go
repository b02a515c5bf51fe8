package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/muhu-travel/backoffice-api/internal/domain"
)

type mockReservationRepo struct {
	mock.Mock
	existing int64
}

// Create mints the code from the configured counter, the way the store does inside its transaction.
func (m *mockReservationRepo) Create(ctx context.Context, reservation domain.Reservation, billing *domain.Client, mint func(existing int64) string) (domain.Reservation, error) {
	args := m.Called(ctx, reservation, billing)
	if err := args.Error(0); err != nil {
		return domain.Reservation{}, err
	}

	created := reservation
	created.ID = uuid.New()
	created.ReservationCode = mint(m.existing)
	if billing != nil {
		created.ClientID = uuid.New()
		created.Client = billing
	}

	return created, nil
}

func (m *mockReservationRepo) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (domain.Reservation, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPackageFinder struct {
	mock.Mock
}

func (m *mockPackageFinder) FindByID(ctx context.Context, id uuid.UUID) (domain.TourPackage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TourPackage), args.Error(1)
}

type mockClientFinder struct {
	mock.Mock
}

func (m *mockClientFinder) FindByID(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Client), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}

type mockDashboardRepo struct {
	mock.Mock
}

func (m *mockDashboardRepo) Totals(ctx context.Context) (domain.DashboardStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DashboardStats), args.Error(1)
}

func (m *mockDashboardRepo) RevenueSince(ctx context.Context, since time.Time) ([]domain.MonthlyRevenue, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]domain.MonthlyRevenue), args.Error(1)
}

func (m *mockDashboardRepo) TopPackages(ctx context.Context, limit int) ([]domain.PackagePopularity, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.PackagePopularity), args.Error(1)
}

type mockPackageRepo struct {
	mock.Mock
}

func (m *mockPackageRepo) Create(ctx context.Context, pkg domain.TourPackage) (domain.TourPackage, error) {
	args := m.Called(ctx, pkg)
	return args.Get(0).(domain.TourPackage), args.Error(1)
}

func (m *mockPackageRepo) FindByName(ctx context.Context, name string) (domain.TourPackage, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.TourPackage), args.Error(1)
}

type mockEmployeeRepo struct {
	mock.Mock
}

func (m *mockEmployeeRepo) Create(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	args := m.Called(ctx, employee)
	return args.Get(0).(domain.Employee), args.Error(1)
}

type mockProviderRepo struct {
	mock.Mock
}

func (m *mockProviderRepo) Create(ctx context.Context, provider domain.Provider) (domain.Provider, error) {
	args := m.Called(ctx, provider)
	return args.Get(0).(domain.Provider), args.Error(1)
}

func (m *mockProviderRepo) List(ctx context.Context) ([]domain.Provider, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Provider), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (domain.User, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockClientRepo struct {
	mock.Mock
}

func (m *mockClientRepo) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	args := m.Called(ctx, client)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *mockClientRepo) Upsert(ctx context.Context, client domain.Client) (domain.Client, error) {
	args := m.Called(ctx, client)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *mockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *mockClientRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *mockClientRepo) Update(ctx context.Context, id uuid.UUID, patch domain.ClientPatch) (domain.Client, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *mockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) Update(ctx context.Context, id uuid.UUID, patch domain.EmployeePatch) (domain.Employee, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) Deactivate(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Employee), args.Error(1)
}

func (m *mockProviderRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Provider, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Provider), args.Error(1)
}

func (m *mockProviderRepo) Update(ctx context.Context, id uuid.UUID, patch domain.ProviderPatch) (domain.Provider, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Provider), args.Error(1)
}

func (m *mockProviderRepo) Deactivate(ctx context.Context, id uuid.UUID) (domain.Provider, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Provider), args.Error(1)
}
