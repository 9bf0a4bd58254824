package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Bootstrap admin guaranteed present after migration so the API is reachable
// on a fresh database. The password is stored bcrypt-hashed.
const (
	SeedAdminEmail    = "admin@teste.com"
	SeedAdminPassword = "123456"
	SeedAdminRole     = "admin"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		email         VARCHAR(255)    NOT NULL COLLATE utf8mb4_bin, -- binary collation: login email matching is case-sensitive
		password_hash VARCHAR(100)    NOT NULL,
		role          VARCHAR(10)     NOT NULL,
		created_at    TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_admins_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name       VARCHAR(155)    NOT NULL,
		brand      VARCHAR(100)    NOT NULL,
		year       INT             NOT NULL,
		created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates the schema idempotently. Email uniqueness for admins lives
// here, in the store, and nowhere else; vehicles carry no uniqueness rule.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SeedAdmin inserts the bootstrap admin if no row with its email exists yet.
// passwordHash must be the bcrypt hash of SeedAdminPassword.
func SeedAdmin(ctx context.Context, db *sql.DB, passwordHash string) error {
	const q = `INSERT IGNORE INTO admins (email, password_hash, role) VALUES (?,?,?)`
	if _, err := db.ExecContext(ctx, q, SeedAdminEmail, passwordHash, SeedAdminRole); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
