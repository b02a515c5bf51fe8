package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const reservationCounterName = "reservations"

type Reservation struct {
	Model

	ReservationCode string      `gorm:"uniqueIndex:idx_reservations_code;not null"`
	PackageID       uuid.UUID   `gorm:"type:uuid;not null;index"`
	Package         TourPackage `gorm:"foreignKey:PackageID;constraint:OnDelete:RESTRICT"`
	ClientID        uuid.UUID   `gorm:"type:uuid;not null;index"`
	Client          Client      `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
	TravelDate      time.Time   `gorm:"type:date;not null"`
	AdultCount      int         `gorm:"not null"`
	TotalAmount     float64     `gorm:"type:decimal(12,2);not null"`
	Status          string      `gorm:"not null"` // "PENDING", "CONFIRMED" or "CANCELLED"
	PaymentMethod   string      `gorm:"not null"`
	CouponCode      string
	Passengers      []Passenger `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE"`
}

type Passenger struct {
	Model

	ReservationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position      int       `gorm:"not null"`
	FirstName     string    `gorm:"not null"`
	LastName      string    `gorm:"not null"`
	Nationality   string
	DocType       string    `gorm:"not null"`
	DocNumber     string    `gorm:"not null"`
	BirthDate     time.Time `gorm:"type:date"`
	Gender        string
}

// ReservationCounter holds how many reservations were ever created. It is not
// decremented by deletes, so codes are never handed out twice.
type ReservationCounter struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null"`
}

// MintFunc turns the number of reservations created so far into the code of the next one.
type MintFunc func(existing int64) string

type ReservationDAO struct {
	db *gorm.DB
}

func NewReservationDAO(db *gorm.DB) *ReservationDAO {
	return &ReservationDAO{
		db: db,
	}
}

// Insert stores the reservation and its passengers in one transaction. When
// billing is not nil the client is upserted by document inside the same
// transaction and becomes the reservation's client. The code is minted while
// the counter row is locked, which serializes concurrent inserts.
func (d *ReservationDAO) Insert(ctx context.Context, reservation Reservation, billing *Client, mint MintFunc) (Reservation, error) {
	passengers := reservation.Passengers
	reservation.Passengers = nil

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if billing != nil {
			client, err := upsertClient(tx, *billing)
			if err != nil {
				return err
			}
			reservation.ClientID = client.ID
		}

		counter, err := lockCounter(tx)
		if err != nil {
			return err
		}
		reservation.ReservationCode = mint(counter.Value)

		if err = tx.Omit(clause.Associations).Create(&reservation).Error; err != nil {
			return reservationInsertErr(err)
		}

		for i := range passengers {
			passengers[i].ReservationID = reservation.ID
			passengers[i].Position = i
		}
		if len(passengers) > 0 {
			if err = tx.Create(&passengers).Error; err != nil {
				return err
			}
		}

		return tx.Model(&ReservationCounter{}).
			Where("name = ?", counter.Name).
			Update("value", counter.Value+1).Error
	})
	if err != nil {
		return Reservation{}, err
	}

	return d.FindByID(ctx, reservation.ID)
}

func lockCounter(tx *gorm.DB) (ReservationCounter, error) {
	var counter ReservationCounter

	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", reservationCounterName).
		First(&counter).Error
	if err == nil {
		return counter, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ReservationCounter{}, err
	}

	if err = ensureCounter(tx); err != nil {
		return ReservationCounter{}, err
	}

	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", reservationCounterName).
		First(&counter).Error

	return counter, err
}

// ensureCounter creates the counter row, seeded with the current number of
// reservations, unless it already exists.
func ensureCounter(db *gorm.DB) error {
	var existing int64
	if err := db.Model(&Reservation{}).Count(&existing).Error; err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ReservationCounter{Name: reservationCounterName, Value: existing}).Error
}

func (d *ReservationDAO) hydrated(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Preload("Package").
		Preload("Client").
		Preload("Passengers", func(db *gorm.DB) *gorm.DB {
			return db.Order("passengers.position ASC")
		})
}

func (d *ReservationDAO) FindAll(ctx context.Context) ([]Reservation, error) {
	var reservations []Reservation

	result := d.hydrated(ctx).Order("reservations.created_at DESC").Find(&reservations)
	if result.Error != nil {
		return nil, result.Error
	}

	return reservations, nil
}

func (d *ReservationDAO) FindByID(ctx context.Context, id uuid.UUID) (Reservation, error) {
	var reservation Reservation

	result := d.hydrated(ctx).First(&reservation, "reservations.id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Reservation{}, ErrReservationNotFound
		}

		return Reservation{}, result.Error
	}

	return reservation, nil
}

func (d *ReservationDAO) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Reservation, error) {
	result := d.db.WithContext(ctx).Model(&Reservation{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return Reservation{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Reservation{}, ErrReservationNotFound
	}

	return d.FindByID(ctx, id)
}

// Delete removes the reservation together with the passengers it owns.
func (d *ReservationDAO) Delete(ctx context.Context, id uuid.UUID) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reservation_id = ?", id).Delete(&Passenger{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Reservation{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrReservationNotFound
		}

		return nil
	})
}
