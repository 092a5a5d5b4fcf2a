package storage

import (
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		number TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		full_name TEXT NOT NULL DEFAULT '',
		email TEXT,
		tg_id BIGINT,
		language TEXT NOT NULL DEFAULT 'uz',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS foods (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		names JSONB,
		description TEXT NOT NULL DEFAULT '',
		descriptions JSONB,
		category TEXT NOT NULL DEFAULT '',
		price INTEGER NOT NULL DEFAULT 0,
		is_there BOOLEAN NOT NULL DEFAULT TRUE,
		image_url TEXT NOT NULL DEFAULT '',
		ingredients JSONB,
		allergens JSONB,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		preparation_time INTEGER NOT NULL DEFAULT 0,
		stock INTEGER NOT NULL DEFAULT 100,
		is_popular BOOLEAN NOT NULL DEFAULT FALSE,
		discount INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		user_number TEXT NOT NULL,
		user_name TEXT NOT NULL DEFAULT '',
		foods JSONB NOT NULL,
		total_price INTEGER NOT NULL DEFAULT 0,
		fulfillment JSONB NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		payment_info JSONB NOT NULL,
		special_instructions TEXT,
		estimated_time INTEGER NOT NULL DEFAULT 0,
		delivered_at TIMESTAMPTZ,
		status_history JSONB NOT NULL DEFAULT '[]',
		qr_code BYTEA,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user_number ON orders (user_number)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		food_id TEXT NOT NULL,
		rating INTEGER NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, food_id)
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		type TEXT NOT NULL DEFAULT 'system',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications (user_id)`,
	`CREATE TABLE IF NOT EXISTS promotions (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		discount_percent INTEGER NOT NULL DEFAULT 0,
		min_order_amount INTEGER NOT NULL DEFAULT 0,
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		promo_code TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		quantity INTEGER NOT NULL DEFAULT 0,
		unit TEXT NOT NULL DEFAULT '',
		min_threshold INTEGER NOT NULL DEFAULT 0,
		supplier TEXT,
		last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL DEFAULT '',
		position TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email TEXT,
		hire_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		salary INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS support_tickets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		subject TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'open',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		resolved_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS restaurant_settings (
		id INTEGER PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		name TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		working_hours JSONB NOT NULL DEFAULT '{}',
		delivery_fee INTEGER NOT NULL DEFAULT 0,
		min_order_amount INTEGER NOT NULL DEFAULT 0,
		max_delivery_distance INTEGER NOT NULL DEFAULT 0
	)`,
}

// Migrate creates the schema on startup. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
