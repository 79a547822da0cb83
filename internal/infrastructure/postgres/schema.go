package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements crea las tablas si no existen. No hay migraciones: el esquema es fijo.
// La disponibilidad del maestro NO se garantiza con un índice único sobre
// (master_id, appointment_date); se comprueba al crear la cita.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		role_id     INTEGER PRIMARY KEY,
		role_name   VARCHAR(50) NOT NULL UNIQUE,
		permissions VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		user_id       BIGSERIAL PRIMARY KEY,
		username      VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role_id       INTEGER REFERENCES roles(role_id)
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		client_id   BIGSERIAL PRIMARY KEY,
		client_name VARCHAR(100) NOT NULL,
		phone       VARCHAR(15) NOT NULL UNIQUE,
		birth_date  DATE
	)`,
	`CREATE TABLE IF NOT EXISTS masters (
		master_id   BIGSERIAL PRIMARY KEY,
		master_name VARCHAR(100) NOT NULL,
		phone       VARCHAR(15) UNIQUE,
		email       VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		service_id   BIGSERIAL PRIMARY KEY,
		service_name VARCHAR(255) NOT NULL UNIQUE,
		description  TEXT,
		price        NUMERIC(10,2) NOT NULL,
		duration     INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		appointment_id   BIGSERIAL PRIMARY KEY,
		client_id        BIGINT NOT NULL REFERENCES clients(client_id),
		master_id        BIGINT NOT NULL REFERENCES masters(master_id),
		service_id       BIGINT NOT NULL REFERENCES services(service_id),
		appointment_date TIMESTAMP NOT NULL,
		status           VARCHAR(50) NOT NULL DEFAULT 'scheduled'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_master_date ON appointments (master_id, appointment_date)`,
	`CREATE TABLE IF NOT EXISTS payments (
		payment_id     BIGSERIAL PRIMARY KEY,
		client_id      BIGINT NOT NULL REFERENCES clients(client_id),
		appointment_id BIGINT NOT NULL REFERENCES appointments(appointment_id),
		payment_amount NUMERIC(10,2) NOT NULL,
		payment_date   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		payment_method VARCHAR(50),
		payment_status VARCHAR(50) NOT NULL DEFAULT 'completed'
	)`,
}

// EnsureSchema crea las tablas que falten. Idempotente; se llama al arrancar.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
