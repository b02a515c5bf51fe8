package forms

import (
	"reflect"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhu-travel/backoffice-api/internal/access"
	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/request"
	"github.com/muhu-travel/backoffice-api/internal/domain"
)

func jsonFields(v any) map[string]bool {
	t := reflect.TypeOf(v).Elem()
	fields := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		fields[name] = true
	}

	return fields
}

func TestSchemas_FieldsMatchRequests(t *testing.T) {
	for _, resource := range access.Resources() {
		s, err := For(resource)
		require.NoError(t, err, resource)

		if s.newCreate != nil {
			known := jsonFields(s.newCreate())
			for _, f := range s.Create {
				assert.True(t, known[f.Name], "%s create field %s", resource, f.Name)
			}
		}
		if s.newUpdate != nil {
			known := jsonFields(s.newUpdate())
			for _, f := range s.Update {
				assert.True(t, known[f.Name], "%s update field %s", resource, f.Name)
			}
		}
	}
}

func TestFor_UnknownResource(t *testing.T) {
	_, err := For(access.Resource("invoices"))
	assert.ErrorIs(t, err, ErrUnknownResource)
}

func TestDecodeCreate_Client(t *testing.T) {
	s, err := For(access.ResourceClients)
	require.NoError(t, err)

	req, err := s.DecodeCreate(map[string]any{
		"fullName":  "ROSA QUISPE",
		"docType":   "DNI",
		"docNumber": "45879632",
		"email":     "rosa@example.com",
	})
	require.NoError(t, err)

	client, ok := req.(*request.ClientRequest)
	require.True(t, ok)
	assert.Equal(t, "ROSA QUISPE", client.FullName)
	assert.Equal(t, "45879632", client.DocNumber)
}

func TestDecodeCreate_Invalid(t *testing.T) {
	s, err := For(access.ResourceClients)
	require.NoError(t, err)

	tests := []struct {
		name   string
		values map[string]any
		field  string
	}{
		{
			name:   "missing document number",
			values: map[string]any{"fullName": "ROSA QUISPE", "docType": "DNI"},
			field:  "docNumber",
		},
		{
			name:   "unsupported document type",
			values: map[string]any{"fullName": "ROSA QUISPE", "docType": "RUC", "docNumber": "45879632"},
			field:  "docType",
		},
		{
			name:   "unknown field",
			values: map[string]any{"fullName": "ROSA QUISPE", "docType": "DNI", "docNumber": "45879632", "vip": true},
		},
		{
			name:   "wrong value type",
			values: map[string]any{"fullName": 12, "docType": "DNI", "docNumber": "45879632"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.DecodeCreate(tt.values)
			require.ErrorIs(t, err, ErrInvalid)

			if tt.field != "" {
				var verrs validation.Errors
				require.ErrorAs(t, err, &verrs)
				assert.Contains(t, verrs, tt.field)
			}
		})
	}
}

func TestDecodeCreate_PackageNumbers(t *testing.T) {
	s, err := For(access.ResourcePackages)
	require.NoError(t, err)

	req, err := s.DecodeCreate(map[string]any{
		"name":         "Cusco Magico",
		"price":        450.5,
		"durationDays": 4,
		"maxPax":       10,
		"destinations": []string{"Cusco", "Machu Picchu"},
	})
	require.NoError(t, err)

	pkg := req.(*request.CreatePackageRequest)
	assert.Equal(t, 450.5, pkg.Price)
	assert.Equal(t, 4, pkg.DurationDays)
	assert.Equal(t, []string{"Cusco", "Machu Picchu"}, pkg.Destinations)
}

func TestDecodeUpdate_Partial(t *testing.T) {
	s, err := For(access.ResourcePackages)
	require.NoError(t, err)

	req, err := s.DecodeUpdate(map[string]any{"price": 500})
	require.NoError(t, err)

	patch := req.(*request.UpdatePackageRequest)
	require.NotNil(t, patch.Price)
	assert.Equal(t, 500.0, *patch.Price)
	assert.Nil(t, patch.Name)
	assert.Nil(t, patch.Destinations)
}

func TestReservations_StatusOnly(t *testing.T) {
	s, err := For(access.ResourceReservations)
	require.NoError(t, err)

	_, err = s.DecodeCreate(map[string]any{"packageId": "x"})
	assert.ErrorIs(t, err, ErrNoForm)

	req, err := s.DecodeUpdate(map[string]any{"status": "CONFIRMED"})
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", req.(*request.UpdateReservationRequest).Status)

	_, err = s.DecodeUpdate(map[string]any{"status": "ARCHIVED"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestAvailable(t *testing.T) {
	byResource := func(schemas []Schema) map[access.Resource]Schema {
		m := make(map[access.Resource]Schema, len(schemas))
		for _, s := range schemas {
			m[s.Resource] = s
		}
		return m
	}

	admin := byResource(Available(domain.RoleAdmin))
	assert.Len(t, admin, len(access.Resources()))
	assert.NotEmpty(t, admin[access.ResourceUsers].Create)

	agent := byResource(Available(domain.RoleAgent))
	assert.NotContains(t, agent, access.ResourceUsers)

	packages := agent[access.ResourcePackages]
	assert.Nil(t, packages.Create)
	assert.Nil(t, packages.Update)
	_, err := packages.DecodeUpdate(map[string]any{"price": 1})
	assert.ErrorIs(t, err, ErrNoForm)

	clients := agent[access.ResourceClients]
	assert.NotEmpty(t, clients.Create)
	assert.NotEmpty(t, clients.Update)

	reservations := agent[access.ResourceReservations]
	assert.Nil(t, reservations.Update)

	// the shared table is left untouched
	full, err := For(access.ResourcePackages)
	require.NoError(t, err)
	assert.NotEmpty(t, full.Create)
}
