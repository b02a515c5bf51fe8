package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/repository"
)

var (
	ErrClientNotFound       = repository.ErrClientNotFound
	ErrClientDocumentExists = repository.ErrClientDocumentExists
)

type ClientRepository interface {
	Create(ctx context.Context, client domain.Client) (domain.Client, error)
	Upsert(ctx context.Context, client domain.Client) (domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Client, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ClientPatch) (domain.Client, error)
}

type ClientService struct {
	repo ClientRepository
}

func NewClientService(repo ClientRepository) *ClientService {
	return &ClientService{
		repo: repo,
	}
}

func (s *ClientService) CreateClient(ctx context.Context, client domain.Client) (domain.Client, error) {
	created, err := s.repo.Create(ctx, trimClient(client))
	if err != nil {
		return domain.Client{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpsertClient creates the client or refreshes the one holding the same document.
func (s *ClientService) UpsertClient(ctx context.Context, client domain.Client) (domain.Client, error) {
	stored, err := s.repo.Upsert(ctx, trimClient(client))
	if err != nil {
		return domain.Client{}, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return stored, nil
}

func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return clients, nil
}

func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Client{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return client, nil
}

// UpdateClient changes name and contact details. The document is the natural key and stays fixed.
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, patch domain.ClientPatch) (domain.Client, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Client{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func trimClient(c domain.Client) domain.Client {
	c.FullName = strings.TrimSpace(c.FullName)
	c.DocNumber = strings.TrimSpace(c.DocNumber)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)

	return c
}
