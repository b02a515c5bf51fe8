package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/repository/dao"
)

var (
	ErrClientNotFound       = dao.ErrClientNotFound
	ErrClientDocumentExists = dao.ErrClientDocumentExists
)

type ClientDAO interface {
	Insert(ctx context.Context, client dao.Client) (dao.Client, error)
	Upsert(ctx context.Context, client dao.Client) (dao.Client, error)
	FindAll(ctx context.Context) ([]dao.Client, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Client, error)
	FindByDocument(ctx context.Context, docType, docNumber string) (dao.Client, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (dao.Client, error)
}

type ClientRepository struct {
	dao ClientDAO
}

func NewClientRepository(dao ClientDAO) *ClientRepository {
	return &ClientRepository{
		dao: dao,
	}
}

func (r *ClientRepository) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	created, err := r.dao.Insert(ctx, clientDomainToDao(client))
	if err != nil {
		return domain.Client{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return clientDaoToDomain(created), nil
}

// Upsert creates the client or, when one with the same document already
// exists, overwrites its name and contact details.
func (r *ClientRepository) Upsert(ctx context.Context, client domain.Client) (domain.Client, error) {
	stored, err := r.dao.Upsert(ctx, clientDomainToDao(client))
	if err != nil {
		return domain.Client{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return clientDaoToDomain(stored), nil
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	clients := make([]domain.Client, 0, len(found))
	for _, c := range found {
		clients = append(clients, clientDaoToDomain(c))
	}

	return clients, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Client{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return clientDaoToDomain(found), nil
}

func (r *ClientRepository) FindByDocument(ctx context.Context, docType domain.DocType, docNumber string) (domain.Client, error) {
	found, err := r.dao.FindByDocument(ctx, string(docType), docNumber)
	if err != nil {
		return domain.Client{}, fmt.Errorf("r.dao.FindByDocument -> %w", err)
	}

	return clientDaoToDomain(found), nil
}

func (r *ClientRepository) Update(ctx context.Context, id uuid.UUID, patch domain.ClientPatch) (domain.Client, error) {
	updates := make(map[string]any)
	if patch.FullName != nil {
		updates["full_name"] = *patch.FullName
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}

	updated, err := r.dao.Update(ctx, id, updates)
	if err != nil {
		return domain.Client{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return clientDaoToDomain(updated), nil
}

func clientDomainToDao(c domain.Client) dao.Client {
	return dao.Client{
		FullName:  c.FullName,
		DocType:   string(c.DocType),
		DocNumber: c.DocNumber,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

func clientDaoToDomain(c dao.Client) domain.Client {
	return domain.Client{
		ID:        c.ID,
		FullName:  c.FullName,
		DocType:   domain.DocType(c.DocType),
		DocNumber: c.DocNumber,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
