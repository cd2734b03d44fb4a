package migrations

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmacy/m/internal/database"
)

// Run creates the database schema required by the pharmacy API.
// Every statement is idempotent, so Run is safe on each start.
func Run(db *sqlx.DB) error {
	schema := sqliteSchema
	if database.IsPostgres(db) {
		schema = append(append([]string{}, postgresSchema...), notificationProcedures...)
	}

	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
            ssn TEXT PRIMARY KEY,
            first_name TEXT NOT NULL DEFAULT '',
            last_name TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            gender TEXT,
            address TEXT NOT NULL DEFAULT '',
            date_of_birth DATE
        );`,
	`CREATE TABLE IF NOT EXISTS medicines (
            drug_name TEXT NOT NULL,
            batch_number TEXT NOT NULL,
            medicine_type TEXT NOT NULL DEFAULT '',
            manufacturer TEXT NOT NULL DEFAULT '',
            quantity INTEGER NOT NULL DEFAULT 0,
            expiry_date DATE,
            price REAL,
            PRIMARY KEY (drug_name, batch_number)
        );`,
	`CREATE TABLE IF NOT EXISTS prescriptions (
            prescription_id INTEGER PRIMARY KEY,
            ssn TEXT NOT NULL DEFAULT '',
            doctor_id INTEGER NOT NULL DEFAULT 0,
            prescription_date DATE
        );`,
	`CREATE TABLE IF NOT EXISTS order_details (
            order_id INTEGER PRIMARY KEY,
            prescription_id INTEGER NOT NULL DEFAULT 0,
            employee_id INTEGER NOT NULL DEFAULT 0,
            order_date TIMESTAMP NOT NULL
        );`,
	`CREATE TABLE IF NOT EXISTS ordered_drugs (
            order_id INTEGER NOT NULL,
            drug_name TEXT NOT NULL,
            batch_number TEXT NOT NULL,
            quantity INTEGER,
            price REAL,
            PRIMARY KEY (order_id, drug_name, batch_number)
        );`,
	`CREATE TABLE IF NOT EXISTS bills (
            order_id INTEGER PRIMARY KEY,
            customer_ssn TEXT NOT NULL DEFAULT '',
            total_amount REAL,
            customer_payment REAL
        );`,
	`CREATE TABLE IF NOT EXISTS notifications (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            message TEXT NOT NULL DEFAULT '',
            type TEXT NOT NULL DEFAULT ''
        );`,
	`CREATE TABLE IF NOT EXISTS employees (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            username TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
            ssn TEXT PRIMARY KEY,
            first_name TEXT NOT NULL DEFAULT '',
            last_name TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            gender CHAR(1),
            address TEXT NOT NULL DEFAULT '',
            date_of_birth DATE
        );`,
	`CREATE TABLE IF NOT EXISTS medicines (
            drug_name TEXT NOT NULL,
            batch_number TEXT NOT NULL,
            medicine_type TEXT NOT NULL DEFAULT '',
            manufacturer TEXT NOT NULL DEFAULT '',
            quantity INTEGER NOT NULL DEFAULT 0,
            expiry_date DATE,
            price DOUBLE PRECISION,
            PRIMARY KEY (drug_name, batch_number)
        );`,
	`CREATE TABLE IF NOT EXISTS prescriptions (
            prescription_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
            ssn TEXT NOT NULL DEFAULT '',
            doctor_id BIGINT NOT NULL DEFAULT 0,
            prescription_date DATE
        );`,
	`CREATE TABLE IF NOT EXISTS order_details (
            order_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
            prescription_id BIGINT NOT NULL DEFAULT 0,
            employee_id BIGINT NOT NULL DEFAULT 0,
            order_date TIMESTAMPTZ NOT NULL
        );`,
	`CREATE TABLE IF NOT EXISTS ordered_drugs (
            order_id BIGINT NOT NULL,
            drug_name TEXT NOT NULL,
            batch_number TEXT NOT NULL,
            quantity BIGINT,
            price DOUBLE PRECISION,
            PRIMARY KEY (order_id, drug_name, batch_number)
        );`,
	`CREATE TABLE IF NOT EXISTS bills (
            order_id BIGINT PRIMARY KEY,
            customer_ssn TEXT NOT NULL DEFAULT '',
            total_amount DOUBLE PRECISION,
            customer_payment DOUBLE PRECISION
        );`,
	`CREATE TABLE IF NOT EXISTS notifications (
            id BIGSERIAL PRIMARY KEY,
            message TEXT NOT NULL DEFAULT '',
            type TEXT NOT NULL DEFAULT ''
        );`,
	`CREATE TABLE IF NOT EXISTS employees (
            id BIGSERIAL PRIMARY KEY,
            username TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ DEFAULT NOW()
        );`,
}

// Notifications are only ever touched through these routines on PostgreSQL.
var notificationProcedures = []string{
	`CREATE OR REPLACE FUNCTION get_notifications() RETURNS SETOF notifications AS $$
            SELECT id, message, type FROM notifications;
        $$ LANGUAGE sql STABLE;`,
	`CREATE OR REPLACE FUNCTION get_notification(p_id BIGINT) RETURNS SETOF notifications AS $$
            SELECT id, message, type FROM notifications WHERE id = p_id;
        $$ LANGUAGE sql STABLE;`,
	`CREATE OR REPLACE FUNCTION create_notification(p_message TEXT, p_type TEXT) RETURNS BIGINT AS $$
            INSERT INTO notifications (message, type) VALUES (p_message, p_type) RETURNING id;
        $$ LANGUAGE sql;`,
	`CREATE OR REPLACE PROCEDURE update_notification(p_id BIGINT, p_message TEXT, p_type TEXT) AS $$
            UPDATE notifications SET message = p_message, type = p_type WHERE id = p_id;
        $$ LANGUAGE sql;`,
	`CREATE OR REPLACE PROCEDURE delete_notification(p_id BIGINT) AS $$
            DELETE FROM notifications WHERE id = p_id;
        $$ LANGUAGE sql;`,
}
