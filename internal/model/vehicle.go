package model

import "time"

// Vehicle represents a row in the `vehicles` table.
//
// Fields:
//  ID        – primary key identifier, assigned by the database.
//  Name      – model name (e.g. "Civic").
//  Brand     – manufacturer (e.g. "Honda").
//  Year      – production year; the API refuses anything before 1950.
//  CreatedAt – timestamp of creation.
//  UpdatedAt – timestamp of last update.
type Vehicle struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
