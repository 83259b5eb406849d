package models

import "time"

const CommentTable = "comments"

type Comment struct {
	ID       int64     `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"size:2048;not null" json:"text"`
	ItemID   int64     `gorm:"index;not null" json:"itemId"`
	AuthorID int64     `gorm:"not null" json:"-"`
	Author   User      `json:"-"`
	Created  time.Time `gorm:"not null" json:"created"`
}

func (Comment) TableName() string { return CommentTable }
