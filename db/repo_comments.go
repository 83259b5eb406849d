package db

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/inwakeofquake/shareit/models"
)

// AddComment stores a comment once the author has actually rented the item:
// an APPROVED booking on it whose window has fully passed.
func (r *Repo) AddComment(ctx context.Context, itemID, authorID int64, text string, now time.Time) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrBlankComment
	}
	var comment *models.Comment
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it models.Item
		if err := tx.First(&it, "id = ?", itemID).Error; err != nil {
			return notFound(err, "item", itemID)
		}
		var author models.User
		if err := tx.First(&author, "id = ?", authorID).Error; err != nil {
			return notFound(err, "user", authorID)
		}
		var n int64
		if err := tx.Model(&models.Booking{}).
			Where("item_id = ? AND booker_id = ? AND status = ? AND end_date < ?",
				itemID, authorID, models.StatusApproved, now).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNoFinishedBooking
		}
		c := &models.Comment{
			Text:     text,
			ItemID:   itemID,
			AuthorID: authorID,
			Created:  now,
		}
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		c.Author = author
		comment = c
		return nil
	})
	return comment, err
}

func (r *Repo) ListComments(ctx context.Context, itemID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.DB.WithContext(ctx).Preload("Author").
		Where("item_id = ?", itemID).
		Order("created ASC").
		Find(&comments).Error
	return comments, err
}
