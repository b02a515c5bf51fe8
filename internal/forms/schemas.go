package forms

import (
	"github.com/muhu-travel/backoffice-api/internal/access"
	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/request"
)

var (
	roleOptions         = []string{"ADMIN", "AGENT"}
	clientDocOptions    = []string{"DNI", "PASAPORTE", "CE"}
	recordStatusOptions = []string{"ACTIVE", "INACTIVE"}
	reservationOptions  = []string{"PENDING", "CONFIRMED", "CANCELLED"}
)

var schemas = map[access.Resource]Schema{
	access.ResourceUsers: {
		Resource: access.ResourceUsers,
		Title:    "Users",
		Create: []Field{
			{Name: "name", Label: "Name", Kind: KindText, Required: true},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
			{Name: "password", Label: "Password", Kind: KindPassword, Required: true},
			{Name: "role", Label: "Role", Kind: KindSelect, Options: roleOptions},
		},
		Update: []Field{
			{Name: "name", Label: "Name", Kind: KindText},
			{Name: "email", Label: "Email", Kind: KindEmail},
			{Name: "password", Label: "Password", Kind: KindPassword},
			{Name: "role", Label: "Role", Kind: KindSelect, Options: roleOptions},
			{Name: "active", Label: "Active", Kind: KindToggle},
		},
		newCreate: func() Validatable { return &request.CreateUserRequest{} },
		newUpdate: func() Validatable { return &request.UpdateUserRequest{} },
	},
	access.ResourceClients: {
		Resource: access.ResourceClients,
		Title:    "Clients",
		Create: []Field{
			{Name: "fullName", Label: "Full name", Kind: KindText, Required: true},
			{Name: "docType", Label: "Document type", Kind: KindSelect, Required: true, Options: clientDocOptions},
			{Name: "docNumber", Label: "Document number", Kind: KindText, Required: true},
			{Name: "email", Label: "Email", Kind: KindEmail},
			{Name: "phone", Label: "Phone", Kind: KindText},
		},
		// The natural key is immutable once the client exists.
		Update: []Field{
			{Name: "fullName", Label: "Full name", Kind: KindText},
			{Name: "email", Label: "Email", Kind: KindEmail},
			{Name: "phone", Label: "Phone", Kind: KindText},
		},
		newCreate: func() Validatable { return &request.ClientRequest{} },
		newUpdate: func() Validatable { return &request.UpdateClientRequest{} },
	},
	access.ResourceEmployees: {
		Resource: access.ResourceEmployees,
		Title:    "Employees",
		Create: []Field{
			{Name: "fullName", Label: "Full name", Kind: KindText, Required: true},
			{Name: "position", Label: "Position", Kind: KindText, Required: true},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
			{Name: "phone", Label: "Phone", Kind: KindText, Required: true},
			{Name: "hireDate", Label: "Hire date", Kind: KindDate, Required: true},
		},
		Update: []Field{
			{Name: "fullName", Label: "Full name", Kind: KindText},
			{Name: "position", Label: "Position", Kind: KindText},
			{Name: "phone", Label: "Phone", Kind: KindText},
			{Name: "status", Label: "Status", Kind: KindSelect, Options: recordStatusOptions},
		},
		newCreate: func() Validatable { return &request.CreateEmployeeRequest{} },
		newUpdate: func() Validatable { return &request.UpdateEmployeeRequest{} },
	},
	access.ResourceProviders: {
		Resource: access.ResourceProviders,
		Title:    "Providers",
		Create: []Field{
			{Name: "companyName", Label: "Company", Kind: KindText, Required: true},
			{Name: "serviceType", Label: "Service type", Kind: KindText, Required: true},
			{Name: "contactName", Label: "Contact", Kind: KindText, Required: true},
			{Name: "email", Label: "Email", Kind: KindEmail},
			{Name: "phone", Label: "Phone", Kind: KindText},
		},
		Update: []Field{
			{Name: "companyName", Label: "Company", Kind: KindText},
			{Name: "serviceType", Label: "Service type", Kind: KindText},
			{Name: "contactName", Label: "Contact", Kind: KindText},
			{Name: "email", Label: "Email", Kind: KindEmail},
			{Name: "phone", Label: "Phone", Kind: KindText},
			{Name: "status", Label: "Status", Kind: KindSelect, Options: recordStatusOptions},
		},
		newCreate: func() Validatable { return &request.CreateProviderRequest{} },
		newUpdate: func() Validatable { return &request.UpdateProviderRequest{} },
	},
	access.ResourcePackages: {
		Resource: access.ResourcePackages,
		Title:    "Tour packages",
		Create: []Field{
			{Name: "name", Label: "Name", Kind: KindText, Required: true},
			{Name: "description", Label: "Description", Kind: KindText},
			{Name: "price", Label: "Price per adult", Kind: KindNumber, Required: true},
			{Name: "durationDays", Label: "Duration (days)", Kind: KindNumber, Required: true},
			{Name: "maxPax", Label: "Max passengers", Kind: KindNumber, Required: true},
			{Name: "destinations", Label: "Destinations", Kind: KindList},
		},
		Update: []Field{
			{Name: "name", Label: "Name", Kind: KindText},
			{Name: "description", Label: "Description", Kind: KindText},
			{Name: "price", Label: "Price per adult", Kind: KindNumber},
			{Name: "durationDays", Label: "Duration (days)", Kind: KindNumber},
			{Name: "maxPax", Label: "Max passengers", Kind: KindNumber},
			{Name: "destinations", Label: "Destinations", Kind: KindList},
		},
		newCreate: func() Validatable { return &request.CreatePackageRequest{} },
		newUpdate: func() Validatable { return &request.UpdatePackageRequest{} },
	},
	// Reservations are created through the wizard; the generic form only moves the status.
	access.ResourceReservations: {
		Resource: access.ResourceReservations,
		Title:    "Reservations",
		Update: []Field{
			{Name: "status", Label: "Status", Kind: KindSelect, Required: true, Options: reservationOptions},
		},
		newUpdate: func() Validatable { return &request.UpdateReservationRequest{} },
	},
}
