package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var clientDocTypes = []interface{}{"DNI", "PASAPORTE", "CE"}

// ClientRequest is used to create or upsert a client, and as the billing block of a reservation.
type ClientRequest struct {
	FullName  string `json:"fullName"`
	DocType   string `json:"docType"`
	DocNumber string `json:"docNumber"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (req *ClientRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FullName, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.DocType, validation.Required, validation.In(clientDocTypes...)),
		validation.Field(&req.DocNumber, validation.Required, validation.Length(4, 20), is.Alphanumeric),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Phone, validation.Length(6, 20)),
	)
}

type UpdateClientRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

func (req *UpdateClientRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FullName, validation.NilOrNotEmpty, validation.Length(2, 150)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Phone, validation.Length(6, 20)),
	)
}
