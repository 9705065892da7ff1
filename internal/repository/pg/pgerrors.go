package pg

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

type ErrorClassification int

const (
	NonRetriable ErrorClassification = iota
	Retriable

	ErrIsExistCode = "23505"
)

type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetriable
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifyPgError(pqErr)
	}

	return NonRetriable
}

func classifyPgError(pqErr *pq.Error) ErrorClassification {
	// SQLSTATE codes: https://www.postgresql.org/docs/current/errcodes-appendix.html

	switch pqErr.Code {
	// class 08 - connection exceptions
	case "08000", "08001", "08003", "08004", "08006", "08007":
		return Retriable

	// class 40 - transaction rollback (serialization failures, deadlocks)
	case "40000", "40001", "40P01":
		return Retriable

	// class 57 - operator intervention
	case "57P03":
		return Retriable
	}

	// class 22 - data exceptions
	switch pqErr.Code {
	case "22000", "22004":
		return NonRetriable
	}

	// class 23 - integrity constraint violations
	switch pqErr.Code {
	case "23000", "23001", "23502", "23503", ErrIsExistCode, "23514":
		return NonRetriable
	}

	// class 42 - syntax errors
	switch pqErr.Code {
	case "42601", "42P01", "42703", "42P02", "42P03":
		return NonRetriable
	}

	return NonRetriable
}

// IsUniqueViolation reports whether err is a unique-constraint violation,
// either as a driver error or already flattened into the message.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == ErrIsExistCode
	}

	// pgx surfaces the SQLSTATE inside the message
	return strings.Contains(err.Error(), ErrIsExistCode)
}
