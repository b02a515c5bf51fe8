package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/repository"
)

var (
	ErrValidation              = errors.New("invalid input")
	ErrReservationNotFound     = repository.ErrReservationNotFound
	ErrReservationCodeConflict = repository.ErrReservationCodeTaken
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation domain.Reservation, billing *domain.Client, mint func(existing int64) string) (domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (domain.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PackageFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.TourPackage, error)
}

type ClientFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Client, error)
}

// CreateReservationInput describes a new reservation. Exactly one of ClientID
// and Billing identifies the billing party; Billing is upserted by document.
type CreateReservationInput struct {
	PackageID     uuid.UUID
	ClientID      uuid.UUID
	Billing       *domain.Client
	TravelDate    time.Time
	AdultCount    int
	Passengers    []domain.Passenger
	PaymentMethod domain.PaymentMethod
	CouponCode    string
}

type ReservationService struct {
	repo     ReservationRepository
	packages PackageFinder
	clients  ClientFinder
	now      func() time.Time
}

func NewReservationService(repo ReservationRepository, packages PackageFinder, clients ClientFinder) *ReservationService {
	return &ReservationService{
		repo:     repo,
		packages: packages,
		clients:  clients,
		now:      time.Now,
	}
}

// Create validates the input, prices it from the package and stores the
// reservation, its passengers and the billing client in one transaction.
// The reservation code is assigned inside that transaction.
func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (domain.Reservation, error) {
	if err := validateReservationInput(in); err != nil {
		return domain.Reservation{}, err
	}

	pkg, err := s.packages.FindByID(ctx, in.PackageID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.packages.FindByID -> %w", err)
	}
	if in.AdultCount > pkg.MaxPax {
		return domain.Reservation{}, fmt.Errorf("%w: %d travellers exceed the limit of %d for package %q",
			ErrValidation, in.AdultCount, pkg.MaxPax, pkg.Name)
	}

	var billing *domain.Client
	if in.Billing != nil {
		b := *in.Billing
		b.FullName = strings.TrimSpace(b.FullName)
		b.DocNumber = strings.TrimSpace(b.DocNumber)
		billing = &b
	} else if _, err = s.clients.FindByID(ctx, in.ClientID); err != nil {
		return domain.Reservation{}, fmt.Errorf("s.clients.FindByID -> %w", err)
	}

	passengers := make([]domain.Passenger, 0, len(in.Passengers))
	for _, p := range in.Passengers {
		p.FirstName = strings.ToUpper(strings.TrimSpace(p.FirstName))
		p.LastName = strings.ToUpper(strings.TrimSpace(p.LastName))
		p.DocNumber = strings.TrimSpace(p.DocNumber)
		passengers = append(passengers, p)
	}

	reservation := domain.Reservation{
		PackageID:     pkg.ID,
		ClientID:      in.ClientID,
		TravelDate:    in.TravelDate,
		AdultCount:    in.AdultCount,
		Passengers:    passengers,
		TotalAmount:   roundCents(pkg.Price * float64(in.AdultCount)),
		Status:        domain.ReservationConfirmed,
		PaymentMethod: in.PaymentMethod,
		CouponCode:    strings.TrimSpace(in.CouponCode),
	}

	year := s.now().Year()
	created, err := s.repo.Create(ctx, reservation, billing, func(existing int64) string {
		return NextCode(existing, year)
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return reservations, nil
}

func (s *ReservationService) Get(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return reservation, nil
}

// UpdateStatus moves the reservation to any of the known statuses.
func (s *ReservationService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (domain.Reservation, error) {
	if !status.IsValid() {
		return domain.Reservation{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return updated, nil
}

// Delete removes the reservation and its passengers. Its code is not reused.
func (s *ReservationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func validateReservationInput(in CreateReservationInput) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
	}

	if in.PackageID == uuid.Nil {
		return invalid("package is required")
	}

	switch {
	case in.Billing == nil && in.ClientID == uuid.Nil:
		return invalid("a client or billing details are required")
	case in.Billing != nil && in.ClientID != uuid.Nil:
		return invalid("provide either a client or billing details, not both")
	case in.Billing != nil:
		if strings.TrimSpace(in.Billing.FullName) == "" || strings.TrimSpace(in.Billing.DocNumber) == "" {
			return invalid("billing name and document number are required")
		}
		switch in.Billing.DocType {
		case domain.DocTypeDNI, domain.DocTypePasaporte, domain.DocTypeCE:
		default:
			return invalid("unknown billing document type %q", in.Billing.DocType)
		}
	}

	if in.TravelDate.IsZero() {
		return invalid("travel date is required")
	}
	if in.AdultCount < 1 {
		return invalid("at least one adult is required")
	}
	if len(in.Passengers) != in.AdultCount {
		return invalid("expected %d passengers, got %d", in.AdultCount, len(in.Passengers))
	}

	for i, p := range in.Passengers {
		if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
			return invalid("passenger %d: first and last name are required", i+1)
		}
		if strings.TrimSpace(p.DocNumber) == "" {
			return invalid("passenger %d: document number is required", i+1)
		}
		if p.DocType != domain.DocTypeDNI && p.DocType != domain.DocTypePasaporte {
			return invalid("passenger %d: unknown document type %q", i+1, p.DocType)
		}
		switch p.Gender {
		case domain.GenderMale, domain.GenderFemale, domain.GenderOther:
		default:
			return invalid("passenger %d: unknown gender %q", i+1, p.Gender)
		}
	}

	if !in.PaymentMethod.IsValid() {
		return invalid("unknown payment method %q", in.PaymentMethod)
	}

	return nil
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
