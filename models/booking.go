package models

import "time"

const BookingTable = "bookings"

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	// CANCELED is stored data from an older revision; no operation produces it.
	StatusCanceled BookingStatus = "CANCELED"
)

// Booking reserves an item for the half-open window [Start, End).
type Booking struct {
	ID       int64         `gorm:"primaryKey" json:"id"`
	Start    time.Time     `gorm:"column:start_date;index;not null" json:"start"`
	End      time.Time     `gorm:"column:end_date;not null" json:"end"`
	ItemID   int64         `gorm:"index;not null" json:"-"`
	Item     Item          `json:"item"`
	BookerID int64         `gorm:"index;not null" json:"-"`
	Booker   User          `json:"booker"`
	Status   BookingStatus `gorm:"size:16;not null" json:"status"`
}

func (Booking) TableName() string { return BookingTable }
