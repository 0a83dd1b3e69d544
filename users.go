package db

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"
)

// User is a row of the users table.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
}

// InsertUser stores a new user and returns the id the store generated.
func (c *Conn) InsertUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	var id int64
	err := c.inTx(ctx, "inserting user", func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, insertUserQuery, username, email, passwordHash).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	c.logger.Info("inserted user", zap.Int64("user_id", id))
	return id, nil
}

// UpdateUserEmail changes only the email of user id.
func (c *Conn) UpdateUserEmail(ctx context.Context, id int64, email string) error {
	err := c.inTx(ctx, "updating user email", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, updateUserEmailQuery, email, id)
		return err
	})
	if err != nil {
		return err
	}
	c.logger.Info("updated user email", zap.Int64("user_id", id), zap.String("email", email))
	return nil
}

// DeleteUser removes user id. It reports whether a row existed; a missing row is not an error.
func (c *Conn) DeleteUser(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := c.inTx(ctx, "deleting user", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, deleteUserQuery, id)
		if err != nil {
			return err
		}
		n, err = rowsAffected(res)
		return err
	})
	if err != nil {
		return false, err
	}
	c.logger.Info("deleted user", zap.Int64("user_id", id), zap.Int64("rows", n))
	return n > 0, nil
}

// GetUser fetches user id, or nil when there is no such row.
func (c *Conn) GetUser(ctx context.Context, id int64) (*User, error) {
	if err := c.ready("fetching user"); err != nil {
		return nil, err
	}
	u := &User{}
	err := c.conn.QueryRowContext(ctx, findUserByIDQuery, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, c.fail("fetching user", err)
	}
	return u, nil
}
