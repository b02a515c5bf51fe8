package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const DateLayout = "2006-01-02"

var recordStatuses = []interface{}{"ACTIVE", "INACTIVE"}

type CreateEmployeeRequest struct {
	FullName string `json:"fullName"`
	Position string `json:"position"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	HireDate string `json:"hireDate" format:"YYYY-MM-DD"`
}

func (req *CreateEmployeeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FullName, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.Position, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Required, validation.Length(6, 20)),
		validation.Field(&req.HireDate, validation.Required, validation.Date(DateLayout)),
	)
}

type UpdateEmployeeRequest struct {
	FullName *string `json:"fullName"`
	Position *string `json:"position"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status"`
}

func (req *UpdateEmployeeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FullName, validation.NilOrNotEmpty, validation.Length(2, 150)),
		validation.Field(&req.Position, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.Phone, validation.NilOrNotEmpty, validation.Length(6, 20)),
		validation.Field(&req.Status, validation.NilOrNotEmpty, validation.In(recordStatuses...)),
	)
}

type CreateProviderRequest struct {
	CompanyName string `json:"companyName"`
	ServiceType string `json:"serviceType"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

func (req *CreateProviderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CompanyName, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.ServiceType, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.ContactName, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Phone, validation.Length(6, 20)),
	)
}

type UpdateProviderRequest struct {
	CompanyName *string `json:"companyName"`
	ServiceType *string `json:"serviceType"`
	ContactName *string `json:"contactName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Status      *string `json:"status"`
}

func (req *UpdateProviderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CompanyName, validation.NilOrNotEmpty, validation.Length(2, 150)),
		validation.Field(&req.ServiceType, validation.NilOrNotEmpty, validation.Length(2, 50)),
		validation.Field(&req.ContactName, validation.NilOrNotEmpty, validation.Length(2, 150)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Phone, validation.Length(6, 20)),
		validation.Field(&req.Status, validation.NilOrNotEmpty, validation.In(recordStatuses...)),
	)
}
