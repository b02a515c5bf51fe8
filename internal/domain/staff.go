package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecordStatus is the soft-delete state shared by employees and providers.
type RecordStatus string

const (
	StatusActive   RecordStatus = "ACTIVE"
	StatusInactive RecordStatus = "INACTIVE"
)

type Employee struct {
	ID        uuid.UUID    `json:"id"`
	FullName  string       `json:"fullName"`
	Position  string       `json:"position"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	HireDate  time.Time    `json:"hireDate"`
	Status    RecordStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type EmployeePatch struct {
	FullName *string
	Position *string
	Phone    *string
	Status   *RecordStatus
}

type Provider struct {
	ID          uuid.UUID    `json:"id"`
	CompanyName string       `json:"companyName"`
	ServiceType string       `json:"serviceType"`
	ContactName string       `json:"contactName"`
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Status      RecordStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type ProviderPatch struct {
	CompanyName *string
	ServiceType *string
	ContactName *string
	Email       *string
	Phone       *string
	Status      *RecordStatus
}
