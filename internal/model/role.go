package model

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the closed set of access levels an admin account can hold.
// Anything outside {admin, editor} is rejected at the input boundary by
// ParseRole instead of being coerced into a free-form string.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// ErrUnknownRole is returned by ParseRole for values outside the closed set.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole normalizes s and maps it onto one of the known roles.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleEditor):
		return RoleEditor, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func (r Role) String() string { return string(r) }
