package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	db "github.com/TechXTT/articlestore"
	"github.com/TechXTT/articlestore/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=app\nDB_USER=postgres\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("DB_NAME")
		os.Unsetenv("DB_USER")
	})
	return path
}

func execute(t *testing.T, connect connector, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(connect)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestRootCmd_PrintsServerVersion(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT version\(\);`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("PostgreSQL 16.2"))
	mock.ExpectClose()

	var gotCfg config.Config
	fake := func(ctx context.Context, cfg config.Config, opts ...db.Option) (*db.Conn, error) {
		gotCfg = cfg
		return db.FromDB(ctx, mockDB, opts...)
	}

	out, _, err := execute(t, fake, "--env-file", writeEnv(t), "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "PostgreSQL 16.2\n", out)
	assert.Equal(t, "app", gotCfg.Name)
	assert.Equal(t, "postgres", gotCfg.User)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRootCmd_ConnectFails(t *testing.T) {
	fake := func(ctx context.Context, cfg config.Config, opts ...db.Option) (*db.Conn, error) {
		return nil, db.ErrConnUnavailable
	}

	_, errOut, err := execute(t, fake, "--env-file", writeEnv(t), "--log-level", "error")
	require.True(t, errors.Is(err, ErrConnectFailed))
	assert.Contains(t, errOut, "failed to connect to the database")
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	_, _, err := execute(t, nil, "--log-level", "loud")
	require.Error(t, err)
}
