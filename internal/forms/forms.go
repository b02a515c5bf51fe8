// Package forms describes the entity forms of the back office: which fields
// each resource exposes and how raw form values are decoded and validated
// into the same request types the API binds.
package forms

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/muhu-travel/backoffice-api/internal/access"
	"github.com/muhu-travel/backoffice-api/internal/domain"
)

var (
	ErrUnknownResource = errors.New("no form is defined for this resource")
	ErrNoForm          = errors.New("this resource has no form for the requested action")
	ErrInvalid         = errors.New("invalid form values")
)

type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindSelect   Kind = "select"
	KindList     Kind = "list"
	KindToggle   Kind = "toggle"
)

type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Kind     Kind     `json:"kind"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// Validatable is implemented by every request type a form decodes into.
type Validatable interface {
	Validate() error
}

// Schema is the form definition of one resource. Create and Update are nil
// when the resource cannot be created or edited through a generic form.
type Schema struct {
	Resource access.Resource `json:"resource"`
	Title    string          `json:"title"`
	Create   []Field         `json:"create,omitempty"`
	Update   []Field         `json:"update,omitempty"`

	newCreate func() Validatable
	newUpdate func() Validatable
}

// For returns the schema of resource.
func For(resource access.Resource) (Schema, error) {
	s, ok := schemas[resource]
	if !ok {
		return Schema{}, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}

	return s, nil
}

// Available returns the schemas role can at least read, with the create and
// update forms it may not use left out.
func Available(role domain.Role) []Schema {
	var out []Schema
	for _, resource := range access.Resources() {
		s, ok := schemas[resource]
		if !ok || !access.Decide(role, access.ActionRead, resource).Allowed() {
			continue
		}
		if !access.Decide(role, access.ActionCreate, resource).Allowed() {
			s.Create, s.newCreate = nil, nil
		}
		if !access.Decide(role, access.ActionUpdate, resource).Allowed() {
			s.Update, s.newUpdate = nil, nil
		}
		out = append(out, s)
	}

	return out
}

// DecodeCreate turns raw form values into the validated create request of the resource.
func (s Schema) DecodeCreate(values map[string]any) (Validatable, error) {
	if s.newCreate == nil {
		return nil, fmt.Errorf("%w: create %s", ErrNoForm, s.Resource)
	}

	return decode(values, s.newCreate())
}

// DecodeUpdate turns raw form values into the validated partial update request of the resource.
func (s Schema) DecodeUpdate(values map[string]any) (Validatable, error) {
	if s.newUpdate == nil {
		return nil, fmt.Errorf("%w: update %s", ErrNoForm, s.Resource)
	}

	return decode(values, s.newUpdate())
}

func decode(values map[string]any, req Validatable) (Validatable, error) {
	payload, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal -> %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err = dec.Decode(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err = req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return req, nil
}
