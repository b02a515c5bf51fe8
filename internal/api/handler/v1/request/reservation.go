package request

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	passengerDocTypes = []interface{}{"DNI", "PASAPORTE"}
	genders           = []interface{}{"M", "F", "O"}
	paymentMethods    = []interface{}{"CREDIT_CARD", "DEBIT_CARD", "YAPE"}
	reservationStates = []interface{}{"PENDING", "CONFIRMED", "CANCELLED"}

	errClientRequired  = errors.New("clientId or billing is required")
	errClientAmbiguous = errors.New("send either clientId or billing, not both")
)

type PassengerRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Nationality string `json:"nationality"`
	DocType     string `json:"docType"`
	DocNumber   string `json:"docNumber"`
	BirthDate   string `json:"birthDate" format:"YYYY-MM-DD"`
	Gender      string `json:"gender"`
}

func (req *PassengerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Nationality, validation.Length(0, 60)),
		validation.Field(&req.DocType, validation.Required, validation.In(passengerDocTypes...)),
		validation.Field(&req.DocNumber, validation.Required, validation.Length(4, 20), is.Alphanumeric),
		validation.Field(&req.BirthDate, validation.Date(DateLayout)),
		validation.Field(&req.Gender, validation.Required, validation.In(genders...)),
	)
}

// CreateReservationRequest carries either clientId or billing. totalAmount is
// accepted for compatibility but the server always prices the reservation itself.
type CreateReservationRequest struct {
	PackageID     string             `json:"packageId"`
	ClientID      string             `json:"clientId"`
	Billing       *ClientRequest     `json:"billing"`
	TravelDate    string             `json:"travelDate" format:"YYYY-MM-DD"`
	AdultCount    int                `json:"adultCount"`
	Passengers    []PassengerRequest `json:"passengers"`
	TotalAmount   *float64           `json:"totalAmount,omitempty"`
	PaymentMethod string             `json:"paymentMethod"`
	CouponCode    string             `json:"couponCode"`
}

func (req *CreateReservationRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.PackageID, validation.Required, is.UUID),
		validation.Field(&req.ClientID, is.UUID),
		validation.Field(&req.TravelDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&req.AdultCount, validation.Required, validation.Min(1)),
		validation.Field(&req.Passengers, validation.Required),
		validation.Field(&req.PaymentMethod, validation.Required, validation.In(paymentMethods...)),
		validation.Field(&req.CouponCode, validation.Length(0, 40)),
	)
	if err != nil {
		return err
	}

	if req.ClientID == "" && req.Billing == nil {
		return validation.Errors{"clientId": errClientRequired}
	}
	if req.ClientID != "" && req.Billing != nil {
		return validation.Errors{"billing": errClientAmbiguous}
	}
	if req.Billing != nil {
		if err = req.Billing.Validate(); err != nil {
			return validation.Errors{"billing": err}
		}
	}

	if len(req.Passengers) != req.AdultCount {
		return validation.Errors{"passengers": fmt.Errorf("expected %d passengers, got %d", req.AdultCount, len(req.Passengers))}
	}
	for i := range req.Passengers {
		if err = req.Passengers[i].Validate(); err != nil {
			return validation.Errors{fmt.Sprintf("passengers[%d]", i): err}
		}
	}

	return nil
}

type UpdateReservationRequest struct {
	Status string `json:"status"`
}

func (req *UpdateReservationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(reservationStates...)),
	)
}
