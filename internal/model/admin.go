package model

import "time"

// Admin represents a row in the `admins` table. These accounts are the only
// principals that can log in; the PasswordHash field holds a bcrypt digest
// and is never serialized in API responses.
//
// Fields:
//  ID           – primary key identifier, assigned by the database.
//  Email        – unique login identifier.
//  PasswordHash – bcrypt hash of the account secret.
//  Role         – access level, one of the closed Role set.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Admin struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
