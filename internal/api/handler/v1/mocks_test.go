package v1

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/service"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuthService) Register(ctx context.Context, in service.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuthService) Profile(ctx context.Context, id uuid.UUID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type mockPackageService struct {
	mock.Mock
}

func (m *mockPackageService) CreatePackage(ctx context.Context, pkg domain.TourPackage) (domain.TourPackage, error) {
	args := m.Called(ctx, pkg)
	return args.Get(0).(domain.TourPackage), args.Error(1)
}

func (m *mockPackageService) ListPackages(ctx context.Context) ([]domain.TourPackage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TourPackage), args.Error(1)
}

func (m *mockPackageService) GetPackage(ctx context.Context, id uuid.UUID) (domain.TourPackage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TourPackage), args.Error(1)
}

func (m *mockPackageService) UpdatePackage(ctx context.Context, id uuid.UUID, patch domain.TourPackagePatch) (domain.TourPackage, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.TourPackage), args.Error(1)
}

func (m *mockPackageService) DeletePackage(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockReservationService struct {
	mock.Mock
}

func (m *mockReservationService) Create(ctx context.Context, in service.CreateReservationInput) (domain.Reservation, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Reservation), args.Error(1)
}

func (m *mockReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *mockReservationService) Get(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Reservation), args.Error(1)
}

func (m *mockReservationService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (domain.Reservation, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Reservation), args.Error(1)
}

func (m *mockReservationService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.ReservationEvent
}

func (p *recordingPublisher) Publish(event domain.ReservationEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
}

func (p *recordingPublisher) Events() []domain.ReservationEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]domain.ReservationEvent(nil), p.events...)
}
