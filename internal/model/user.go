package model

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Profile      Profile   `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile holds the optional public-facing fields of an account.
type Profile struct {
	Handle  string `gorm:"size:64" json:"handle,omitempty"`
	Bio     string `gorm:"size:280" json:"bio,omitempty"`
	Age     int    `json:"age,omitempty"`
	Phone   string `gorm:"size:32" json:"phone,omitempty"`
	Country string `gorm:"size:64" json:"country,omitempty"`
}
