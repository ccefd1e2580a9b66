package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MapPGError maps a postgres error (pgx or lib/pq) to an HTTP status.
// ok is false when err is not a postgres constraint error.
func MapPGError(err error) (status int, message string, ok bool) {
	code := ""
	var pgxErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgxErr):
		code = pgxErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	default:
		return 0, "", false
	}

	switch code {
	case pgUniqueViolation:
		return fiber.StatusConflict, "data already exists", true
	case pgForeignKeyViolation:
		return fiber.StatusBadRequest, "referenced data not found", true
	default:
		return 0, "", false
	}
}

func IsUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == pgUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
