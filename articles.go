package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/TechXTT/articlestore/internal/core"
	"go.uber.org/zap"
)

// Article is a row of the articles table. UserID references users(id);
// the store enforces that reference.
type Article struct {
	ID        int64
	UserID    int64
	Name      string
	ImageURL  string
	IsDefault bool
	Category  string
}

// NewArticle holds the values for InsertArticle.
type NewArticle struct {
	UserID    int64
	Name      string
	ImageURL  string
	IsDefault bool
	Category  string
}

// ArticleUpdate lists the fields UpdateArticle may change. Nil fields are left as they are.
type ArticleUpdate struct {
	Name     *string
	Category *string
}

func (u ArticleUpdate) assignments() *core.Assignments {
	a := &core.Assignments{}
	core.SetIf(a, "name", u.Name)
	core.SetIf(a, "category", u.Category)
	return a
}

// InsertArticle stores a new article and returns the id the store generated.
func (c *Conn) InsertArticle(ctx context.Context, a NewArticle) (int64, error) {
	var id int64
	err := c.inTx(ctx, "inserting article", func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, insertArticleQuery,
			a.UserID, a.Name, a.ImageURL, a.IsDefault, a.Category,
		).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	c.logger.Info("inserted article", zap.Int64("article_id", id), zap.Int64("user_id", a.UserID))
	return id, nil
}

// UpdateArticle writes the non-nil fields of u to article id.
// An empty update does not touch the database and returns nil.
func (c *Conn) UpdateArticle(ctx context.Context, id int64, u ArticleUpdate) error {
	query, args := u.assignments().Update("articles", "id", id)
	if query == "" {
		c.logger.Info("no updates provided", zap.Int64("article_id", id))
		return nil
	}
	err := c.inTx(ctx, "updating article", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return err
	}
	c.logger.Info("updated article", zap.Int64("article_id", id))
	return nil
}

// DeleteArticle removes article id. It reports whether a row existed; a missing row is not an error.
func (c *Conn) DeleteArticle(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := c.inTx(ctx, "deleting article", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, deleteArticleQuery, id)
		if err != nil {
			return err
		}
		n, err = rowsAffected(res)
		return err
	})
	if err != nil {
		return false, err
	}
	c.logger.Info("deleted article", zap.Int64("article_id", id), zap.Int64("rows", n))
	return n > 0, nil
}

// GetArticle fetches article id, or nil when there is no such row.
func (c *Conn) GetArticle(ctx context.Context, id int64) (*Article, error) {
	if err := c.ready("fetching article"); err != nil {
		return nil, err
	}
	a := &Article{}
	err := c.conn.QueryRowContext(ctx, findArticleByIDQuery, id).
		Scan(&a.ID, &a.UserID, &a.Name, &a.ImageURL, &a.IsDefault, &a.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, c.fail("fetching article", err)
	}
	return a, nil
}
