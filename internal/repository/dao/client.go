package dao

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Client struct {
	Model

	FullName  string `gorm:"not null"`
	DocType   string `gorm:"uniqueIndex:idx_clients_document;not null"` // "DNI", "PASAPORTE" or "CE"
	DocNumber string `gorm:"uniqueIndex:idx_clients_document;not null"`
	Email     string
	Phone     string
}

type ClientDAO struct {
	db *gorm.DB
}

func NewClientDAO(db *gorm.DB) *ClientDAO {
	return &ClientDAO{
		db: db,
	}
}

func (d *ClientDAO) Insert(ctx context.Context, client Client) (Client, error) {
	result := d.db.WithContext(ctx).Create(&client)
	if result.Error != nil {
		if isUniqueViolation(result.Error, constraintClientsDocument) {
			return Client{}, ErrClientDocumentExists
		}

		return Client{}, result.Error
	}

	return client, nil
}

// Upsert creates the client or, when its document already exists, refreshes
// the mutable contact fields of the existing row.
func (d *ClientDAO) Upsert(ctx context.Context, client Client) (Client, error) {
	return upsertClient(d.db.WithContext(ctx), client)
}

func upsertClient(db *gorm.DB, client Client) (Client, error) {
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "doc_type"}, {Name: "doc_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "email", "phone", "updated_at"}),
	}).Create(&client)
	if result.Error != nil {
		return Client{}, result.Error
	}

	// On conflict the generated ID is discarded, so read the stored row back.
	var stored Client
	if err := db.First(&stored, "doc_type = ? AND doc_number = ?", client.DocType, client.DocNumber).Error; err != nil {
		return Client{}, err
	}

	return stored, nil
}

func (d *ClientDAO) FindAll(ctx context.Context) ([]Client, error) {
	var clients []Client

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&clients)
	if result.Error != nil {
		return nil, result.Error
	}

	return clients, nil
}

func (d *ClientDAO) FindByID(ctx context.Context, id uuid.UUID) (Client, error) {
	var client Client

	result := d.db.WithContext(ctx).First(&client, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Client{}, ErrClientNotFound
		}

		return Client{}, result.Error
	}

	return client, nil
}

func (d *ClientDAO) FindByDocument(ctx context.Context, docType, docNumber string) (Client, error) {
	var client Client

	result := d.db.WithContext(ctx).First(&client, "doc_type = ? AND doc_number = ?", docType, docNumber)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Client{}, ErrClientNotFound
		}

		return Client{}, result.Error
	}

	return client, nil
}

func (d *ClientDAO) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (Client, error) {
	if len(updates) > 0 {
		result := d.db.WithContext(ctx).Model(&Client{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return Client{}, result.Error
		}
		if result.RowsAffected == 0 {
			return Client{}, ErrClientNotFound
		}
	}

	return d.FindByID(ctx, id)
}

