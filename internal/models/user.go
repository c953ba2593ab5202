package models

import "gorm.io/gorm"

// User is an account in the admin panel. PasswordHash holds a bcrypt
// hash and is never serialized.
type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	DisplayName  string `json:"display_name"`
	IsAdmin      bool   `json:"is_admin"`
}

// UserRequest is used when creating or updating a user. Password is
// optional on update; when empty the existing hash is kept.
type UserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}
