package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_PasswordPolicy(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{password: "agent123", valid: true},
		{password: "LongerPassw0rd", valid: true},
		{password: "short1", valid: false},
		{password: "onlyletters", valid: false},
		{password: "12345678", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			req := RegisterRequest{Name: "Agent", Email: "agent@muhu.com", Password: tt.password, AdminPassword: "admin123"}
			err := req.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUpdateUserRequest_OptionalFields(t *testing.T) {
	assert.NoError(t, (&UpdateUserRequest{}).Validate())

	weak := "weak"
	assert.Error(t, (&UpdateUserRequest{Password: &weak}).Validate())

	role := "ROOT"
	assert.Error(t, (&UpdateUserRequest{Role: &role}).Validate())

	agent := "AGENT"
	active := false
	assert.NoError(t, (&UpdateUserRequest{Role: &agent, Active: &active}).Validate())
}

func TestClientRequest_Validate(t *testing.T) {
	valid := ClientRequest{FullName: "Juan Perez", DocType: "DNI", DocNumber: "12345678", Email: "juan@example.com"}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.DocType = "RUC"
	assert.Error(t, badType.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())

	noDoc := valid
	noDoc.DocNumber = ""
	assert.Error(t, noDoc.Validate())
}

func TestCreatePackageRequest_Validate(t *testing.T) {
	valid := CreatePackageRequest{Name: "Test", Price: 100, DurationDays: 2, MaxPax: 5, Destinations: []string{"Cusco"}}
	assert.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(r *CreatePackageRequest){
		"zero price":        func(r *CreatePackageRequest) { r.Price = 0 },
		"negative price":    func(r *CreatePackageRequest) { r.Price = -5 },
		"zero duration":     func(r *CreatePackageRequest) { r.DurationDays = 0 },
		"zero max pax":      func(r *CreatePackageRequest) { r.MaxPax = 0 },
		"blank destination": func(r *CreatePackageRequest) { r.Destinations = []string{"Cusco", " "} },
	} {
		t.Run(name, func(t *testing.T) {
			req := valid
			mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestUpdatePackageRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdatePackageRequest{}).Validate())

	price := 0.0
	assert.Error(t, (&UpdatePackageRequest{Price: &price}).Validate())

	destinations := []string{""}
	assert.Error(t, (&UpdatePackageRequest{Destinations: &destinations}).Validate())

	maxPax := 8
	assert.NoError(t, (&UpdatePackageRequest{MaxPax: &maxPax}).Validate())
}

func validReservationRequest() CreateReservationRequest {
	return CreateReservationRequest{
		PackageID:  "6f1c7f0e-55d4-4c61-9f0a-0c3a7f1b2a11",
		Billing:    &ClientRequest{FullName: "ROSA MAMANI", DocType: "DNI", DocNumber: "12345678"},
		TravelDate: "2026-12-01",
		AdultCount: 1,
		Passengers: []PassengerRequest{
			{FirstName: "ROSA", LastName: "MAMANI", Nationality: "Peru", DocType: "DNI", DocNumber: "12345678", BirthDate: "1990-02-03", Gender: "F"},
		},
		PaymentMethod: "YAPE",
	}
}

func TestCreateReservationRequest_Validate(t *testing.T) {
	valid := validReservationRequest()
	assert.NoError(t, valid.Validate())

	tests := map[string]func(r *CreateReservationRequest){
		"bad package id":       func(r *CreateReservationRequest) { r.PackageID = "42" },
		"bad travel date":      func(r *CreateReservationRequest) { r.TravelDate = "01/12/2026" },
		"no client":            func(r *CreateReservationRequest) { r.Billing = nil },
		"client and billing":   func(r *CreateReservationRequest) { r.ClientID = "0b8f8a5e-8b7e-4a53-b3a5-9d7d4f0b1c22" },
		"invalid billing":      func(r *CreateReservationRequest) { r.Billing = &ClientRequest{FullName: "X"} },
		"count mismatch":       func(r *CreateReservationRequest) { r.AdultCount = 2 },
		"unknown payment":      func(r *CreateReservationRequest) { r.PaymentMethod = "CASH" },
		"passenger CE doc":     func(r *CreateReservationRequest) { r.Passengers = []PassengerRequest{{FirstName: "A", LastName: "B", DocType: "CE", DocNumber: "1234", Gender: "M"}} },
		"passenger no surname": func(r *CreateReservationRequest) { r.Passengers = []PassengerRequest{{FirstName: "A", DocType: "DNI", DocNumber: "1234", Gender: "M"}} },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			req := validReservationRequest()
			mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestUpdateReservationRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateReservationRequest{Status: "CANCELLED"}).Validate())
	assert.Error(t, (&UpdateReservationRequest{Status: "ARCHIVED"}).Validate())
	assert.Error(t, (&UpdateReservationRequest{}).Validate())
}
