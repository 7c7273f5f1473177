package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
}

// DisplayName returns the name used for certificate personalization.
func (u *User) DisplayName() string {
	if u == nil || u.Name == "" {
		return "Guest"
	}
	return u.Name
}
