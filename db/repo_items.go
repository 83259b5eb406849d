package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/inwakeofquake/shareit/models"
)

type ItemInput struct {
	Name        *string
	Description *string
	Available   *bool
	RequestID   *int64
}

func (r *Repo) CreateItem(ctx context.Context, ownerID int64, in ItemInput) (*models.Item, error) {
	owner, err := r.FindUserByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if in.RequestID != nil {
		var req models.ItemRequest
		if err := r.DB.WithContext(ctx).First(&req, "id = ?", *in.RequestID).Error; err != nil {
			return nil, notFound(err, "item request", *in.RequestID)
		}
	}
	it := &models.Item{OwnerID: ownerID, RequestID: in.RequestID}
	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Description != nil {
		it.Description = *in.Description
	}
	if in.Available != nil {
		it.Available = *in.Available
	}
	if err := r.DB.WithContext(ctx).Create(it).Error; err != nil {
		return nil, err
	}
	it.Owner = *owner
	return it, nil
}

// UpdateItem applies a partial update; only the owner may touch the item.
func (r *Repo) UpdateItem(ctx context.Context, id, userID int64, in ItemInput) (*models.Item, error) {
	var it models.Item
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Owner").First(&it, "id = ?", id).Error; err != nil {
			return notFound(err, "item", id)
		}
		if it.OwnerID != userID {
			return ErrNotAuthorized
		}
		if in.Name != nil {
			it.Name = *in.Name
		}
		if in.Description != nil {
			it.Description = *in.Description
		}
		if in.Available != nil {
			it.Available = *in.Available
		}
		return tx.Save(&it).Error
	})
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *Repo) FindItemByID(ctx context.Context, id int64) (*models.Item, error) {
	var it models.Item
	if err := r.DB.WithContext(ctx).Preload("Owner").First(&it, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "item", id)
	}
	return &it, nil
}

// ListItemsByOwner pages through a user's items in id order.
func (r *Repo) ListItemsByOwner(ctx context.Context, ownerID int64, from, size int) ([]models.Item, error) {
	if _, err := r.FindUserByID(ctx, ownerID); err != nil {
		return nil, err
	}
	var items []models.Item
	err := r.DB.WithContext(ctx).Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Offset(from).Limit(size).
		Find(&items).Error
	return items, err
}

// SearchItems matches name or description case-insensitively; only available
// items are returned. Empty text yields an empty list without touching the DB.
func (r *Repo) SearchItems(ctx context.Context, text string, from, size int) ([]models.Item, error) {
	if text == "" {
		return []models.Item{}, nil
	}
	like := "%" + text + "%"
	var items []models.Item
	err := r.DB.WithContext(ctx).Preload("Owner").
		Where("available = TRUE AND (name ILIKE ? OR description ILIKE ?)", like, like).
		Order("id ASC").
		Offset(from).Limit(size).
		Find(&items).Error
	return items, err
}

func (r *Repo) DeleteItem(ctx context.Context, id, userID int64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it models.Item
		if err := tx.First(&it, "id = ?", id).Error; err != nil {
			return notFound(err, "item", id)
		}
		if _, err := r.FindUserByID(ctx, userID); err != nil {
			return err
		}
		if it.OwnerID != userID {
			return ErrNotAuthorized
		}
		return tx.Delete(&it).Error
	})
}
