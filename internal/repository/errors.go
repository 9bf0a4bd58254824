// Package repository contains the data access layer. Sentinel errors defined
// here let handlers translate storage outcomes into HTTP statuses without
// inspecting driver errors themselves.
package repository

import "errors"

// ErrAdminNotFound is returned when no admin row matches the lookup.
var ErrAdminNotFound = errors.New("admin not found")

// ErrVehicleNotFound is returned when no vehicle row matches the lookup.
var ErrVehicleNotFound = errors.New("vehicle not found")

// ErrEmailExists is returned when an insert hits the unique index on
// admins.email. Uniqueness is enforced only by the store; no handler performs
// its own pre-check.
var ErrEmailExists = errors.New("email already exists")
