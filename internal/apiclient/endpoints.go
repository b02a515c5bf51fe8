package apiclient

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/muhu-travel/backoffice-api/internal/access"
	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/request"
	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/response"
	"github.com/muhu-travel/backoffice-api/internal/domain"
)

// Login opens a new session. The previous session, if any, is invalidated.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp response.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", request.LoginRequest{Email: email, Password: password}, &resp, false)
	if err != nil {
		return nil, err
	}

	return c.startSession(resp), nil
}

// Register creates an AGENT account with the approval of an administrator and opens its session.
func (c *Client) Register(ctx context.Context, req request.RegisterRequest) (*Session, error) {
	var resp response.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp, false); err != nil {
		return nil, err
	}

	return c.startSession(resp), nil
}

func (c *Client) startSession(resp response.LoginResponse) *Session {
	c.Session().Invalidate()

	s := newSession(resp.Token, resp.User)
	c.setSession(s)

	return s
}

func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &user, true)

	return user, err
}

func (c *Client) Permissions(ctx context.Context) (response.PermissionsResponse, error) {
	var perms response.PermissionsResponse
	err := c.do(ctx, http.MethodGet, "/auth/permissions", nil, &perms, true)

	return perms, err
}

func (c *Client) ListPackages(ctx context.Context) ([]domain.TourPackage, error) {
	if err := c.require(access.ActionRead, access.ResourcePackages); err != nil {
		return nil, err
	}

	var packages []domain.TourPackage
	err := c.do(ctx, http.MethodGet, "/packages", nil, &packages, true)

	return packages, err
}

func (c *Client) GetPackage(ctx context.Context, id uuid.UUID) (domain.TourPackage, error) {
	if err := c.require(access.ActionRead, access.ResourcePackages); err != nil {
		return domain.TourPackage{}, err
	}

	var pkg domain.TourPackage
	err := c.do(ctx, http.MethodGet, "/packages/"+id.String(), nil, &pkg, true)

	return pkg, err
}

func (c *Client) DeletePackage(ctx context.Context, id uuid.UUID) error {
	if err := c.require(access.ActionDelete, access.ResourcePackages); err != nil {
		return err
	}

	return c.do(ctx, http.MethodDelete, "/packages/"+id.String(), nil, nil, true)
}

func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	if err := c.require(access.ActionRead, access.ResourceClients); err != nil {
		return nil, err
	}

	var clients []domain.Client
	err := c.do(ctx, http.MethodGet, "/clients", nil, &clients, true)

	return clients, err
}

func (c *Client) UpsertClient(ctx context.Context, req request.ClientRequest) (domain.Client, error) {
	if err := c.require(access.ActionUpdate, access.ResourceClients); err != nil {
		return domain.Client{}, err
	}

	var client domain.Client
	err := c.do(ctx, http.MethodPost, "/clients/upsert", req, &client, true)

	return client, err
}

func (c *Client) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	if err := c.require(access.ActionRead, access.ResourceReservations); err != nil {
		return nil, err
	}

	var reservations []domain.Reservation
	err := c.do(ctx, http.MethodGet, "/reservations", nil, &reservations, true)

	return reservations, err
}

func (c *Client) CreateReservation(ctx context.Context, req request.CreateReservationRequest) (domain.Reservation, error) {
	if err := c.require(access.ActionCreate, access.ResourceReservations); err != nil {
		return domain.Reservation{}, err
	}

	var reservation domain.Reservation
	err := c.do(ctx, http.MethodPost, "/reservations", req, &reservation, true)

	return reservation, err
}

func (c *Client) UpdateReservationStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (domain.Reservation, error) {
	if err := c.require(access.ActionUpdate, access.ResourceReservations); err != nil {
		return domain.Reservation{}, err
	}

	var reservation domain.Reservation
	err := c.do(ctx, http.MethodPut, "/reservations/"+id.String(), request.UpdateReservationRequest{Status: string(status)}, &reservation, true)

	return reservation, err
}

func (c *Client) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	if err := c.require(access.ActionDelete, access.ResourceReservations); err != nil {
		return err
	}

	return c.do(ctx, http.MethodDelete, "/reservations/"+id.String(), nil, nil, true)
}

func (c *Client) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	if err := c.require(access.ActionRead, access.ResourceReservations); err != nil {
		return domain.DashboardStats{}, err
	}

	var stats domain.DashboardStats
	err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &stats, true)

	return stats, err
}
