package db

import (
	"context"
	"time"

	"github.com/inwakeofquake/shareit/models"
)

func (r *Repo) CreateRequest(ctx context.Context, userID int64, description string, now time.Time) (*models.ItemRequest, error) {
	user, err := r.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	req := &models.ItemRequest{
		Description: description,
		RequestorID: userID,
		Created:     now,
	}
	if err := r.DB.WithContext(ctx).Create(req).Error; err != nil {
		return nil, err
	}
	req.Requestor = *user
	return req, nil
}

// ListOwnRequests returns the user's requests, newest first.
func (r *Repo) ListOwnRequests(ctx context.Context, userID int64) ([]models.ItemRequest, error) {
	if _, err := r.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}
	var reqs []models.ItemRequest
	err := r.DB.WithContext(ctx).
		Where("requestor_id = ?", userID).
		Order("created DESC").
		Find(&reqs).Error
	return reqs, err
}

// ListOtherRequests pages everyone else's requests, newest first.
func (r *Repo) ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error) {
	if _, err := r.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}
	var reqs []models.ItemRequest
	err := r.DB.WithContext(ctx).
		Where("requestor_id <> ?", userID).
		Order("created DESC").
		Offset(from).Limit(size).
		Find(&reqs).Error
	return reqs, err
}

func (r *Repo) FindRequestByID(ctx context.Context, id, userID int64) (*models.ItemRequest, error) {
	if _, err := r.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}
	var req models.ItemRequest
	if err := r.DB.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "item request", id)
	}
	return &req, nil
}

// ItemsByRequest lists items created in answer to a request.
func (r *Repo) ItemsByRequest(ctx context.Context, requestID int64) ([]models.Item, error) {
	var items []models.Item
	err := r.DB.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}
