package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TechXTT/articlestore/pkg/config"
	"github.com/TechXTT/articlestore/pkg/runtime"
	"go.uber.org/zap"
)

// Conn is one open database session. It is not safe for concurrent use;
// callers that need concurrency open one Conn each.
type Conn struct {
	db     *sql.DB
	conn   *sql.Conn
	logger *zap.Logger
}

type settings struct {
	cfg    config.Config
	logger *zap.Logger
}

// Option overrides a connection setting for a single Connect call.
type Option func(*settings)

// WithDatabase overrides the database name.
func WithDatabase(name string) Option {
	return func(s *settings) { s.cfg.Name = name }
}

// WithCredentials overrides the user and password.
func WithCredentials(user, password string) Option {
	return func(s *settings) {
		s.cfg.User = user
		s.cfg.Password = password
	}
}

func WithHost(host string) Option {
	return func(s *settings) { s.cfg.Host = host }
}

func WithPort(port int) Option {
	return func(s *settings) { s.cfg.Port = port }
}

// WithLogger sets where status notices go. The default discards them.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func apply(cfg config.Config, opts []Option) settings {
	s := settings{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Connect opens a session described by cfg and the per-call overrides.
// On failure it logs the cause and returns nil with an error matching ErrConnUnavailable.
func Connect(ctx context.Context, cfg config.Config, opts ...Option) (*Conn, error) {
	s := apply(cfg, opts)
	if err := s.cfg.Validate(); err != nil {
		return nil, connectFailed(s.logger, fmt.Errorf("invalid config: %w", err))
	}
	sqlDB, err := runtime.Connect(s.cfg.DriverName(), s.cfg.DSN())
	if err != nil {
		return nil, connectFailed(s.logger, fmt.Errorf("open db: %w", err))
	}
	c, err := open(ctx, sqlDB, s.logger)
	if err != nil {
		return nil, err
	}
	s.logger.Info("connection to the database established",
		zap.String("database", s.cfg.Name),
		zap.String("host", s.cfg.Host),
		zap.Int("port", s.cfg.Port),
		zap.String("driver", s.cfg.DriverName()),
	)
	return c, nil
}

// FromDB pins a session on an already opened handle. The returned Conn owns sqlDB
// and closes it on Close. Only WithLogger is meaningful here.
func FromDB(ctx context.Context, sqlDB *sql.DB, opts ...Option) (*Conn, error) {
	s := apply(config.Config{}, opts)
	return open(ctx, sqlDB, s.logger)
}

func open(ctx context.Context, sqlDB *sql.DB, logger *zap.Logger) (*Conn, error) {
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		sqlDB.Close()
		return nil, connectFailed(logger, fmt.Errorf("acquire session: %w", err))
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		sqlDB.Close()
		return nil, connectFailed(logger, fmt.Errorf("ping database: %w", err))
	}
	return &Conn{db: sqlDB, conn: conn, logger: logger}, nil
}

func connectFailed(logger *zap.Logger, err error) error {
	logger.Error("error connecting to the database", zap.Error(err))
	return fmt.Errorf("%w: %w", ErrConnUnavailable, err)
}

// Disconnect closes c. A nil Conn is a no-op.
func Disconnect(c *Conn) error {
	return c.Close()
}

// Close releases the session and its handle.
func (c *Conn) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	err := errors.Join(c.conn.Close(), c.db.Close())
	if err != nil {
		c.logger.Error("error closing database connection", zap.Error(err))
		return fmt.Errorf("close db: %w", err)
	}
	c.logger.Info("database connection closed")
	return nil
}

// Ping runs a trivial query on the session.
func (c *Conn) Ping(ctx context.Context) error {
	if err := c.ready("ping"); err != nil {
		return err
	}
	var one int
	if err := c.conn.QueryRowContext(ctx, pingQuery).Scan(&one); err != nil {
		return c.fail("ping", err)
	}
	if one != 1 {
		return c.fail("ping", fmt.Errorf("unexpected result %d", one))
	}
	return nil
}

// Version returns the server's version string.
func (c *Conn) Version(ctx context.Context) (string, error) {
	if err := c.ready("version"); err != nil {
		return "", err
	}
	var v string
	if err := c.conn.QueryRowContext(ctx, versionQuery).Scan(&v); err != nil {
		return "", c.fail("version", err)
	}
	return v, nil
}

// Exec runs a raw statement in autocommit mode. Record operations should be
// preferred; this exists for setup and maintenance statements.
func (c *Conn) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if err := c.ready("exec"); err != nil {
		return nil, err
	}
	res, err := c.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, c.fail("exec", err)
	}
	return res, nil
}

func (c *Conn) ready(op string) error {
	if c == nil || c.conn == nil {
		return &OpError{Op: op, Err: ErrConnUnavailable}
	}
	return nil
}
