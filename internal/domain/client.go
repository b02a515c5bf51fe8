package domain

import (
	"time"

	"github.com/google/uuid"
)

type DocType string

const (
	DocTypeDNI       DocType = "DNI"
	DocTypePasaporte DocType = "PASAPORTE"
	DocTypeCE        DocType = "CE"
)

// Client is the billing party of a reservation. The pair (DocType, DocNumber) is its natural key.
type Client struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	DocType   DocType   `json:"docType"`
	DocNumber string    `json:"docNumber"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ClientPatch struct {
	FullName *string
	Email    *string
	Phone    *string
}
