package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestViolaciones_PorCodigoSQLState(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "clients_phone_key"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "appointments_client_id_fkey"}
	other := &pgconn.PgError{Code: "42P01"}

	tests := []struct {
		name   string
		err    error
		unique bool
		fk     bool
	}{
		{"unique", unique, true, false},
		{"unique envuelto", fmt.Errorf("insert client: %w", unique), true, false},
		{"clave foránea", fk, false, true},
		{"clave foránea envuelta", fmt.Errorf("delete client: %w", fk), false, true},
		{"otro código", other, false, false},
		{"error sin PgError", errors.New("conexión cerrada"), false, false},
		{"nil", nil, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueViolation(tt.err))
			assert.Equal(t, tt.fk, isForeignKeyViolation(tt.err))
		})
	}
}
