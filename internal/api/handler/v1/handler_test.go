package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/muhu-travel/backoffice-api/internal/access"
	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/response"
	"github.com/muhu-travel/backoffice-api/internal/api/middleware"
	"github.com/muhu-travel/backoffice-api/internal/config"
	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/pkg/jwthelper"
	"github.com/muhu-travel/backoffice-api/internal/service"
)

const testSigningKey = "handler-test-key"

var testAPIConfig = &config.APIConfig{
	JWTSigningKey: testSigningKey,
	JWTExpiry:     time.Hour,
}

type testDeps struct {
	auth         *mockAuthService
	packages     *mockPackageService
	reservations *mockReservationService
	publisher    *recordingPublisher
}

func newTestRouter() (*gin.Engine, *testDeps) {
	gin.SetMode(gin.TestMode)

	deps := &testDeps{
		auth:         &mockAuthService{},
		packages:     &mockPackageService{},
		reservations: &mockReservationService{},
		publisher:    &recordingPublisher{},
	}

	authHandler := NewAuthHandler(testAPIConfig, deps.auth)
	packageHandler := NewPackageHandler(deps.packages)
	reservationHandler := NewReservationHandler(deps.reservations, deps.publisher)

	r := gin.New()
	r.GET("/health", HandleHealthcheck)
	r.POST("/auth/login", authHandler.HandleLogin)
	r.POST("/auth/register", authHandler.HandleRegister)

	g := r.Group("", middleware.NewAuthenticator(testSigningKey).VerifyJWT())
	g.GET("/auth/profile", authHandler.HandleProfile)
	g.GET("/auth/permissions", authHandler.HandlePermissions)
	g.GET("/packages/:packageID", packageHandler.HandleGetPackage)
	g.PUT("/packages/:packageID", packageHandler.HandleUpdatePackage)
	g.DELETE("/packages/:packageID", packageHandler.HandleDeletePackage)
	g.POST("/reservations", reservationHandler.HandleCreateReservation)
	g.PUT("/reservations/:reservationID", reservationHandler.HandleUpdateReservation)
	g.DELETE("/reservations/:reservationID", reservationHandler.HandleDeleteReservation)

	return r, deps
}

func bearer(t *testing.T, identity domain.Identity) string {
	t.Helper()

	signed, err := jwthelper.GenerateToken([]byte(testSigningKey), identity, time.Hour)
	require.NoError(t, err)

	return signed
}

func adminIdentity() domain.Identity {
	return domain.Identity{UserID: uuid.New(), Email: "admin@muhu.com", Role: domain.RoleAdmin}
}

func serve(t *testing.T, router http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) response.Err {
	t.Helper()

	var body response.Err
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandleHealthcheck(t *testing.T) {
	router, _ := newTestRouter()

	rec := serve(t, router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
}

func TestAuthHandler_HandleLogin(t *testing.T) {
	user := domain.User{ID: uuid.New(), Name: "Admin", Email: "admin@muhu.com", Role: domain.RoleAdmin, Active: true}

	t.Run("issues a token for the user", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.auth.On("Login", mock.Anything, "admin@muhu.com", "admin123").Return(user, nil)

		rec := serve(t, router, http.MethodPost, "/auth/login", "", map[string]string{"email": "admin@muhu.com", "password": "admin123"})
		require.Equal(t, http.StatusOK, rec.Code)

		var body response.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, user.ID, body.User.ID)

		identity, err := jwthelper.ParseToken([]byte(testSigningKey), body.Token)
		require.NoError(t, err)
		assert.Equal(t, domain.Identity{UserID: user.ID, Email: user.Email, Role: domain.RoleAdmin}, identity)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.auth.On("Login", mock.Anything, "admin@muhu.com", "nope1234").Return(domain.User{}, service.ErrInvalidCredentials)

		rec := serve(t, router, http.MethodPost, "/auth/login", "", map[string]string{"email": "admin@muhu.com", "password": "nope1234"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid credentials", decodeErr(t, rec).ErrorText)
	})

	t.Run("invalid body", func(t *testing.T) {
		router, deps := newTestRouter()

		rec := serve(t, router, http.MethodPost, "/auth/login", "", map[string]string{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		deps.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure is hidden", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.auth.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(domain.User{}, errors.New("connection refused"))

		rec := serve(t, router, http.MethodPost, "/auth/login", "", map[string]string{"email": "admin@muhu.com", "password": "admin123"})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Something went wrong.", decodeErr(t, rec).ErrorText)
	})
}

func TestAuthHandler_HandleRegister(t *testing.T) {
	body := map[string]string{
		"name":          "Nueva Agente",
		"email":         "nueva@muhu.com",
		"password":      "agent123",
		"adminPassword": "admin123",
	}
	input := service.RegisterInput{Name: "Nueva Agente", Email: "nueva@muhu.com", Password: "agent123", AdminPassword: "admin123"}

	tests := []struct {
		name       string
		user       domain.User
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "created",
			user:       domain.User{ID: uuid.New(), Email: "nueva@muhu.com", Role: domain.RoleAgent, Active: true},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "wrong admin password",
			err:        service.ErrAdminAuthorization,
			wantStatus: http.StatusForbidden,
			wantError:  "invalid admin password",
		},
		{
			name:       "email taken",
			err:        fmt.Errorf("s.repo.Create -> %w", service.ErrUserEmailExists),
			wantStatus: http.StatusConflict,
			wantError:  "user email already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter()
			deps.auth.On("Register", mock.Anything, input).Return(tt.user, tt.err)

			rec := serve(t, router, http.MethodPost, "/auth/register", "", body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeErr(t, rec).ErrorText)
				return
			}

			var resp response.LoginResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, domain.RoleAgent, resp.User.Role)
		})
	}
}

func TestAuthHandler_Session(t *testing.T) {
	router, deps := newTestRouter()
	agent := domain.Identity{UserID: uuid.New(), Email: "agente@muhu.com", Role: domain.RoleAgent}
	token := bearer(t, agent)

	deps.auth.On("Profile", mock.Anything, agent.UserID).Return(domain.User{ID: agent.UserID, Email: agent.Email, Role: agent.Role}, nil)

	rec := serve(t, router, http.MethodGet, "/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, agent.UserID, user.ID)

	rec = serve(t, router, http.MethodGet, "/auth/permissions", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var permissions response.PermissionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &permissions))
	assert.Equal(t, domain.RoleAgent, permissions.Role)
	assert.Equal(t, []access.Action{access.ActionRead}, permissions.Permissions[access.ResourcePackages])
	assert.Equal(t, []access.Action{access.ActionCreate, access.ActionRead}, permissions.Permissions[access.ResourceReservations])
	assert.NotContains(t, permissions.Permissions, access.ResourceUsers)

	rec = serve(t, router, http.MethodGet, "/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPackageHandler(t *testing.T) {
	token := bearer(t, adminIdentity())
	id := uuid.New()

	t.Run("invalid id", func(t *testing.T) {
		router, _ := newTestRouter()

		rec := serve(t, router, http.MethodGet, "/packages/42", token, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.packages.On("GetPackage", mock.Anything, id).Return(domain.TourPackage{}, fmt.Errorf("s.repo.FindByID -> %w", service.ErrPackageNotFound))

		rec := serve(t, router, http.MethodGet, "/packages/"+id.String(), token, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "package not found", decodeErr(t, rec).ErrorText)
	})

	t.Run("partial update", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.packages.On("UpdatePackage", mock.Anything, id, mock.MatchedBy(func(p domain.TourPackagePatch) bool {
			return p.Name == nil && p.Price != nil && *p.Price == 450 && assert.ObjectsAreEqual([]string{"Cusco", "Puno"}, p.Destinations)
		})).Return(domain.TourPackage{ID: id, Price: 450}, nil)

		rec := serve(t, router, http.MethodPut, "/packages/"+id.String(), token, map[string]any{
			"price":        450,
			"destinations": []string{"Cusco", "Puno"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		deps.packages.AssertExpectations(t)
	})

	t.Run("delete refused while referenced", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.packages.On("DeletePackage", mock.Anything, id).Return(fmt.Errorf("s.repo.Delete -> %w", service.ErrPackageInUse))

		rec := serve(t, router, http.MethodDelete, "/packages/"+id.String(), token, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Referential integrity violation.", decodeErr(t, rec).StatusText)
	})

	t.Run("delete", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.packages.On("DeletePackage", mock.Anything, id).Return(nil)

		rec := serve(t, router, http.MethodDelete, "/packages/"+id.String(), token, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"package deleted"}`, rec.Body.String())
	})
}

func reservationBody(packageID uuid.UUID) map[string]any {
	return map[string]any{
		"packageId":  packageID.String(),
		"travelDate": "2026-12-01",
		"adultCount": 2,
		"billing": map[string]any{
			"fullName":  "ROSA MAMANI",
			"docType":   "DNI",
			"docNumber": "12345678",
		},
		"passengers": []map[string]any{
			{"firstName": "Rosa", "lastName": "Mamani", "nationality": "Peru", "docType": "DNI", "docNumber": "12345678", "birthDate": "1990-02-03", "gender": "F"},
			{"firstName": "Luis", "lastName": "Quispe", "nationality": "Peru", "docType": "PASAPORTE", "docNumber": "AB123456", "gender": "M"},
		},
		"paymentMethod": "YAPE",
		"totalAmount":   1,
	}
}

func TestReservationHandler_HandleCreateReservation(t *testing.T) {
	token := bearer(t, domain.Identity{UserID: uuid.New(), Email: "agente@muhu.com", Role: domain.RoleAgent})
	packageID := uuid.New()

	t.Run("created and published", func(t *testing.T) {
		router, deps := newTestRouter()
		created := domain.Reservation{ID: uuid.New(), ReservationCode: "RES-2026-0007", PackageID: packageID, Status: domain.ReservationConfirmed, TotalAmount: 900}
		deps.reservations.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateReservationInput) bool {
			return in.PackageID == packageID &&
				in.ClientID == uuid.Nil &&
				in.Billing != nil && in.Billing.DocType == domain.DocTypeDNI &&
				in.TravelDate.Equal(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)) &&
				len(in.Passengers) == 2 &&
				in.Passengers[0].BirthDate.Equal(time.Date(1990, 2, 3, 0, 0, 0, 0, time.UTC)) &&
				in.Passengers[1].BirthDate.IsZero() &&
				in.PaymentMethod == domain.PaymentYape
		})).Return(created, nil)

		rec := serve(t, router, http.MethodPost, "/reservations", token, reservationBody(packageID))
		require.Equal(t, http.StatusCreated, rec.Code)

		var got domain.Reservation
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "RES-2026-0007", got.ReservationCode)

		events := deps.publisher.Events()
		require.Len(t, events, 1)
		assert.Equal(t, domain.ReservationCreated, events[0].Type)
		assert.Equal(t, created.ID, events[0].ReservationID)
	})

	t.Run("client and billing together", func(t *testing.T) {
		router, deps := newTestRouter()
		body := reservationBody(packageID)
		body["clientId"] = uuid.NewString()

		rec := serve(t, router, http.MethodPost, "/reservations", token, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		deps.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "over capacity", err: fmt.Errorf("%w: 2 travellers exceed the limit", service.ErrValidation), wantStatus: http.StatusBadRequest},
		{name: "unknown package", err: fmt.Errorf("s.packages.FindByID -> %w", service.ErrPackageNotFound), wantStatus: http.StatusNotFound},
		{name: "code race", err: fmt.Errorf("s.repo.Create -> %w", service.ErrReservationCodeConflict), wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter()
			deps.reservations.On("Create", mock.Anything, mock.Anything).Return(domain.Reservation{}, tt.err)

			rec := serve(t, router, http.MethodPost, "/reservations", token, reservationBody(packageID))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, deps.publisher.Events())
		})
	}
}

func TestReservationHandler_UpdateAndDelete(t *testing.T) {
	token := bearer(t, adminIdentity())
	id := uuid.New()

	router, deps := newTestRouter()
	deps.reservations.On("UpdateStatus", mock.Anything, id, domain.ReservationCancelled).
		Return(domain.Reservation{ID: id, ReservationCode: "RES-2026-0001", Status: domain.ReservationCancelled}, nil)
	deps.reservations.On("Delete", mock.Anything, id).Return(nil)

	rec := serve(t, router, http.MethodPut, "/reservations/"+id.String(), token, map[string]string{"status": "CANCELLED"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, router, http.MethodPut, "/reservations/"+id.String(), token, map[string]string{"status": "LOST"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, router, http.MethodDelete, "/reservations/"+id.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	events := deps.publisher.Events()
	require.Len(t, events, 2)
	assert.Equal(t, domain.ReservationUpdated, events[0].Type)
	assert.Equal(t, domain.ReservationCancelled, events[0].Status)
	assert.Equal(t, domain.ReservationDeleted, events[1].Type)
	assert.Equal(t, id, events[1].ReservationID)
}
