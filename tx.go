package db

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// inTx runs one statement inside its own transaction: commit on success,
// rollback on any error so the session stays usable.
func (c *Conn) inTx(ctx context.Context, op string, fn func(*sql.Tx) error) error {
	if err := c.ready(op); err != nil {
		return err
	}
	tx, err := c.conn.BeginTx(ctx, nil)
	if err != nil {
		return c.fail(op, fmt.Errorf("begin: %w", err))
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			c.logger.Error("rollback failed", zap.String("op", op), zap.Error(rbErr))
		}
		return c.fail(op, err)
	}
	if err := tx.Commit(); err != nil {
		return c.fail(op, fmt.Errorf("commit: %w", err))
	}
	return nil
}

func (c *Conn) fail(op string, err error) error {
	fields := []zap.Field{zap.String("op", op), zap.Error(err)}
	if code := pgCode(err); code != "" {
		fields = append(fields, zap.String("pg_code", code))
	}
	c.logger.Error("error "+op, fields...)
	return &OpError{Op: op, Err: err}
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
