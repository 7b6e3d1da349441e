package model

import "time"

// MaxContentLength bounds post and comment bodies, counted in runes.
const MaxContentLength = 280

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"size:280;not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Username  string    `gorm:"size:64" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
