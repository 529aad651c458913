package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Caja-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// constraintName nombre del constraint violado, "" si no aplica.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// storeErr envuelve fallas del driver; los errores de dominio pasan sin tocar.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{domain.ErrConflict, domain.ErrNotFound, domain.ErrValidation} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return domain.NewStoreError(op, err)
}

// nullString convierte "" a NULL para columnas opcionales.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
