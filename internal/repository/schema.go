package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		fullname VARCHAR(100) NOT NULL,
		email VARCHAR(100) UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS status (
		id SERIAL PRIMARY KEY,
		name VARCHAR(50) UNIQUE NOT NULL
	)`,
	seedStatuses,
	`CREATE TABLE IF NOT EXISTS tasks (
		id SERIAL PRIMARY KEY,
		title VARCHAR(100) NOT NULL,
		description TEXT,
		status_id INTEGER NOT NULL REFERENCES status(id),
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE
	)`,
}

// SQLite has no SERIAL; INTEGER PRIMARY KEY is its auto-increment rowid alias.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fullname VARCHAR(100) NOT NULL,
		email VARCHAR(100) UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS status (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(50) UNIQUE NOT NULL
	)`,
	seedStatuses,
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title VARCHAR(100) NOT NULL,
		description TEXT,
		status_id INTEGER NOT NULL REFERENCES status(id),
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE
	)`,
}

const seedStatuses = `INSERT INTO status (name) VALUES ('new'), ('in progress'), ('completed')
	ON CONFLICT (name) DO NOTHING`

// CreateTables creates users, status and tasks if missing and upserts the
// canonical statuses. Safe to run repeatedly.
func CreateTables(ctx context.Context, db *gorm.DB) error {
	statements := postgresSchema
	if db.Dialector.Name() == "sqlite" {
		statements = sqliteSchema
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
