package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentYape       PaymentMethod = "YAPE"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentYape:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// Passenger is owned by exactly one reservation and has no identity outside of it.
type Passenger struct {
	ID          uuid.UUID `json:"id,omitempty"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Nationality string    `json:"nationality"`
	DocType     DocType   `json:"docType"`
	DocNumber   string    `json:"docNumber"`
	BirthDate   time.Time `json:"birthDate"`
	Gender      Gender    `json:"gender"`
}

type Reservation struct {
	ID              uuid.UUID         `json:"id"`
	ReservationCode string            `json:"reservationCode"`
	PackageID       uuid.UUID         `json:"packageId"`
	Package         *TourPackage      `json:"package,omitempty"`
	ClientID        uuid.UUID         `json:"clientId"`
	Client          *Client           `json:"client,omitempty"`
	DateCreated     time.Time         `json:"dateCreated"`
	TravelDate      time.Time         `json:"travelDate"`
	AdultCount      int               `json:"adultCount"`
	Passengers      []Passenger       `json:"passengers"`
	TotalAmount     float64           `json:"totalAmount"`
	Status          ReservationStatus `json:"status"`
	PaymentMethod   PaymentMethod     `json:"paymentMethod"`
	CouponCode      string            `json:"couponCode,omitempty"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

type ReservationEventType string

const (
	ReservationCreated ReservationEventType = "reservation.created"
	ReservationUpdated ReservationEventType = "reservation.updated"
	ReservationDeleted ReservationEventType = "reservation.deleted"
)

// ReservationEvent is pushed to staff connected to the reservation feed.
type ReservationEvent struct {
	Type            ReservationEventType `json:"type"`
	ReservationID   uuid.UUID            `json:"reservationId"`
	ReservationCode string               `json:"reservationCode,omitempty"`
	Status          ReservationStatus    `json:"status,omitempty"`
	OccurredAt      time.Time            `json:"occurredAt"`
}
