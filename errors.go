package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var (
	// ErrConnUnavailable is returned when no usable session could be opened.
	ErrConnUnavailable = errors.New("connection unavailable")
	// ErrOperationFailed matches every error returned by a record operation.
	ErrOperationFailed = errors.New("operation failed")
)

// OpError reports a failed record operation. The store error is kept for
// logging and unwrapping; errors.Is(err, ErrOperationFailed) always holds.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func (e *OpError) Is(target error) bool {
	return target == ErrOperationFailed
}

// pgCode extracts the SQLSTATE from either driver's error type.
func pgCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
