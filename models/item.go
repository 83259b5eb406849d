package models

import "time"

const ItemTable = "items"

type Item struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"size:1024;not null" json:"description"`
	Available   bool      `gorm:"not null;default:false" json:"available"`
	OwnerID     int64     `gorm:"index;not null" json:"-"`
	Owner       User      `json:"owner"`
	RequestID   *int64    `gorm:"index" json:"requestId,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (Item) TableName() string { return ItemTable }
