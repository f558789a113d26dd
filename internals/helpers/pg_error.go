// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// MapPGError traduce errores del driver (pgx o lib/pq) a status + mensaje.
func MapPGError(err error, dupMsg string) (int, string) {
	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgCodeToStatus(pgxErr.Code, dupMsg, pgxErr.Message)
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pgCodeToStatus(string(pqErr.Code), dupMsg, pqErr.Error())
	}
	return http.StatusInternalServerError, err.Error()
}

func pgCodeToStatus(code, dupMsg, fallback string) (int, string) {
	switch code {
	case "23505":
		return http.StatusConflict, dupMsg
	case "23503":
		return http.StatusBadRequest, "Referencia no encontrada (violación de FK)."
	case "23514":
		return http.StatusBadRequest, "La fila viola una restricción CHECK."
	case "23P01":
		return http.StatusConflict, dupMsg
	default:
		return http.StatusInternalServerError, fallback
	}
}
