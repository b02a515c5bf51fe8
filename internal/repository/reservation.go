package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/repository/dao"
)

var (
	ErrReservationNotFound  = dao.ErrReservationNotFound
	ErrReservationCodeTaken = dao.ErrReservationCodeTaken
)

type ReservationDAO interface {
	Insert(ctx context.Context, reservation dao.Reservation, billing *dao.Client, mint dao.MintFunc) (dao.Reservation, error)
	FindAll(ctx context.Context) ([]dao.Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (dao.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository struct {
	dao ReservationDAO
}

func NewReservationRepository(dao ReservationDAO) *ReservationRepository {
	return &ReservationRepository{
		dao: dao,
	}
}

// Create persists the reservation with its passengers atomically. When billing
// is not nil the client is upserted by document in the same transaction and
// reservation.ClientID is ignored. mint receives the number of reservations
// created so far and returns the code for this one.
func (r *ReservationRepository) Create(ctx context.Context, reservation domain.Reservation, billing *domain.Client, mint func(existing int64) string) (domain.Reservation, error) {
	var billingDao *dao.Client
	if billing != nil {
		c := clientDomainToDao(*billing)
		billingDao = &c
	}

	passengers := make([]dao.Passenger, 0, len(reservation.Passengers))
	for _, p := range reservation.Passengers {
		passengers = append(passengers, dao.Passenger{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Nationality: p.Nationality,
			DocType:     string(p.DocType),
			DocNumber:   p.DocNumber,
			BirthDate:   p.BirthDate,
			Gender:      string(p.Gender),
		})
	}

	created, err := r.dao.Insert(ctx, dao.Reservation{
		PackageID:     reservation.PackageID,
		ClientID:      reservation.ClientID,
		TravelDate:    reservation.TravelDate,
		AdultCount:    reservation.AdultCount,
		TotalAmount:   reservation.TotalAmount,
		Status:        string(reservation.Status),
		PaymentMethod: string(reservation.PaymentMethod),
		CouponCode:    reservation.CouponCode,
		Passengers:    passengers,
	}, billingDao, mint)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return reservationDaoToDomain(created), nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	reservations := make([]domain.Reservation, 0, len(found))
	for _, res := range found {
		reservations = append(reservations, reservationDaoToDomain(res))
	}

	return reservations, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return reservationDaoToDomain(found), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (domain.Reservation, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(status))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return reservationDaoToDomain(updated), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func reservationDaoToDomain(r dao.Reservation) domain.Reservation {
	reservation := domain.Reservation{
		ID:              r.ID,
		ReservationCode: r.ReservationCode,
		PackageID:       r.PackageID,
		ClientID:        r.ClientID,
		DateCreated:     r.CreatedAt,
		TravelDate:      r.TravelDate,
		AdultCount:      r.AdultCount,
		Passengers:      make([]domain.Passenger, 0, len(r.Passengers)),
		TotalAmount:     r.TotalAmount,
		Status:          domain.ReservationStatus(r.Status),
		PaymentMethod:   domain.PaymentMethod(r.PaymentMethod),
		CouponCode:      r.CouponCode,
		UpdatedAt:       r.UpdatedAt,
	}

	if r.Package.ID != uuid.Nil {
		pkg := packageDaoToDomain(r.Package)
		reservation.Package = &pkg
	}
	if r.Client.ID != uuid.Nil {
		client := clientDaoToDomain(r.Client)
		reservation.Client = &client
	}

	for _, p := range r.Passengers {
		reservation.Passengers = append(reservation.Passengers, domain.Passenger{
			ID:          p.ID,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Nationality: p.Nationality,
			DocType:     domain.DocType(p.DocType),
			DocNumber:   p.DocNumber,
			BirthDate:   p.BirthDate,
			Gender:      domain.Gender(p.Gender),
		})
	}

	return reservation
}
