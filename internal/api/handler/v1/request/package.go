package request

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errBlankDestination = errors.New("destinations cannot contain blank entries")

var destinationsRule = validation.By(func(value interface{}) error {
	destinations, _ := value.([]string)
	for _, d := range destinations {
		if strings.TrimSpace(d) == "" {
			return errBlankDestination
		}
	}

	return nil
})

type CreatePackageRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	DurationDays int      `json:"durationDays"`
	MaxPax       int      `json:"maxPax"`
	Destinations []string `json:"destinations"`
}

func (req *CreatePackageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Price, validation.Required, validation.Min(0.0)),
		validation.Field(&req.DurationDays, validation.Required, validation.Min(1)),
		validation.Field(&req.MaxPax, validation.Required, validation.Min(1)),
		validation.Field(&req.Destinations, destinationsRule),
	)
}

// UpdatePackageRequest is a partial update: omitted fields keep their stored value.
type UpdatePackageRequest struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price"`
	DurationDays *int      `json:"durationDays"`
	MaxPax       *int      `json:"maxPax"`
	Destinations *[]string `json:"destinations"`
}

func (req *UpdatePackageRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 150)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Price, validation.NilOrNotEmpty, validation.Min(0.0)),
		validation.Field(&req.DurationDays, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&req.MaxPax, validation.NilOrNotEmpty, validation.Min(1)),
	)
	if err != nil {
		return err
	}

	if req.Destinations != nil {
		return validation.Errors{"destinations": destinationsRule.Validate(*req.Destinations)}.Filter()
	}

	return nil
}
