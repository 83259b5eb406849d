package models

import "time"

const RequestTable = "item_requests"

// ItemRequest is a wish for an item; items may later link back to it.
type ItemRequest struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"size:1024;not null" json:"description"`
	RequestorID int64     `gorm:"index;not null" json:"-"`
	Requestor   User      `json:"-"`
	Created     time.Time `gorm:"not null" json:"created"`
}

func (ItemRequest) TableName() string { return RequestTable }
