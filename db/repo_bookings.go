package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inwakeofquake/shareit/models"
)

// CreateBooking runs the admission rules and the insert in one transaction.
// The item row is locked so two concurrent requests for the same item cannot
// both pass the overlap scan.
func (r *Repo) CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error) {
	var booking *models.Booking
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booker models.User
		if err := tx.First(&booker, "id = ?", bookerID).Error; err != nil {
			return notFound(err, "user", bookerID)
		}
		var it models.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&it, "id = ?", itemID).Error; err != nil {
			return notFound(err, "item", itemID)
		}
		var existing []models.Booking
		if err := tx.Where("item_id = ?", itemID).Find(&existing).Error; err != nil {
			return err
		}
		if err := validateNewBooking(&it, bookerID, start, end, existing); err != nil {
			return err
		}
		b := &models.Booking{
			Start:    start,
			End:      end,
			ItemID:   it.ID,
			BookerID: bookerID,
			Status:   models.StatusWaiting,
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		b.Item = it
		b.Booker = booker
		booking = b
		return nil
	})
	return booking, err
}

// ApproveBooking moves a WAITING booking to APPROVED or REJECTED. Only the
// item owner may do it, and only once.
func (r *Repo) ApproveBooking(ctx context.Context, bookingID int64, approve bool, userID int64) (*models.Booking, error) {
	var booking models.Booking
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, "id = ?", bookingID).Error; err != nil {
			return notFound(err, "booking", bookingID)
		}
		var it models.Item
		if err := tx.First(&it, "id = ?", booking.ItemID).Error; err != nil {
			return notFound(err, "item", booking.ItemID)
		}
		if it.OwnerID != userID {
			return ErrNotAuthorized
		}
		if err := canTransition(&booking); err != nil {
			return err
		}
		booking.Status = models.StatusRejected
		if approve {
			booking.Status = models.StatusApproved
		}
		return tx.Model(&models.Booking{}).
			Where("id = ?", bookingID).
			Update("status", booking.Status).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindBookingByID(ctx, bookingID)
}

// FindBookingByID loads a booking with its item, owner and booker resolved.
func (r *Repo) FindBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	var b models.Booking
	if err := r.DB.WithContext(ctx).
		Preload("Item").Preload("Item.Owner").Preload("Booker").
		First(&b, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "booking", id)
	}
	return &b, nil
}

// GetBookingFor returns the booking only to its booker or the item's owner.
// Anyone else gets not-found, not forbidden, so ids cannot be probed.
func (r *Repo) GetBookingFor(ctx context.Context, id, userID int64) (*models.Booking, error) {
	b, err := r.FindBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.BookerID != userID && b.Item.OwnerID != userID {
		return nil, notFound(gorm.ErrRecordNotFound, "booking", id)
	}
	return b, nil
}

func (r *Repo) stateFiltered(tx *gorm.DB, state RequestState, now time.Time) *gorm.DB {
	switch state {
	case StatePast:
		return tx.Where("end_date < ?", now)
	case StateFuture:
		return tx.Where("start_date > ?", now)
	case StateCurrent:
		return tx.Where("start_date < ? AND end_date > ?", now, now)
	case StateWaiting:
		return tx.Where("status = ?", models.StatusWaiting)
	case StateRejected:
		return tx.Where("status = ?", models.StatusRejected)
	default: // StateAll
		return tx
	}
}

// ListBookerBookings lists the user's own bookings, newest start first.
func (r *Repo) ListBookerBookings(ctx context.Context, userID int64, state RequestState, now time.Time, from, size int) ([]models.Booking, error) {
	if _, err := r.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}
	tx := r.DB.WithContext(ctx).
		Preload("Item").Preload("Item.Owner").Preload("Booker").
		Where("booker_id = ?", userID)
	tx = r.stateFiltered(tx, state, now)

	var bookings []models.Booking
	err := tx.Order("start_date DESC").Offset(from).Limit(size).Find(&bookings).Error
	return bookings, err
}

// ListOwnerBookings lists bookings on any item the user owns.
func (r *Repo) ListOwnerBookings(ctx context.Context, userID int64, state RequestState, now time.Time, from, size int) ([]models.Booking, error) {
	if _, err := r.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}
	tx := r.DB.WithContext(ctx).
		Preload("Item").Preload("Item.Owner").Preload("Booker").
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", userID)
	tx = r.stateFiltered(tx, state, now)

	var bookings []models.Booking
	err := tx.Order("start_date DESC").Offset(from).Limit(size).Find(&bookings).Error
	return bookings, err
}

// LastBooking is the most recent APPROVED booking already started.
func (r *Repo) LastBooking(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	var b models.Booking
	err := r.DB.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_date < ?", itemID, models.StatusApproved, now).
		Order("start_date DESC").
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// NextBooking is the closest APPROVED booking yet to start.
func (r *Repo) NextBooking(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	var b models.Booking
	err := r.DB.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_date > ?", itemID, models.StatusApproved, now).
		Order("start_date ASC").
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}
