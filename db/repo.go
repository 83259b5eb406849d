package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inwakeofquake/shareit/models"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(conn *gorm.DB) *Repo { return &Repo{DB: conn} }

// notFound rewraps gorm's record-not-found into the shared sentinel.
func notFound(err error, what string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d", ErrNotFound, what, id)
	}
	return err
}

// ValidatePage rejects the page parameters every listing endpoint shares.
func ValidatePage(from, size int) error {
	if from < 0 || size <= 0 {
		return ErrBadPageParams
	}
	return nil
}

// Users

func (r *Repo) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
	}
	u := &models.User{Name: name, Email: email}
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repo) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &u, nil
}

func (r *Repo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *Repo) UpdateUser(ctx context.Context, id int64, name, email *string) (*models.User, error) {
	var u models.User
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, "id = ?", id).Error; err != nil {
			return notFound(err, "user", id)
		}
		if email != nil {
			var other models.User
			err := tx.Where("email = ? AND id <> ?", *email, id).First(&other).Error
			if err == nil {
				return fmt.Errorf("%w: %s", ErrEmailTaken, *email)
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			u.Email = *email
		}
		if name != nil {
			u.Name = *name
		}
		return tx.Save(&u).Error
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) DeleteUser(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}
