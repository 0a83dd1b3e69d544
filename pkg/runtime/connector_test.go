package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDSN(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"postgres://u@localhost:5432/app", "postgres://u@localhost:5432/app?sslmode=disable"},
		{"postgres://u@localhost/app?connect_timeout=5", "postgres://u@localhost/app?connect_timeout=5&sslmode=disable"},
		{"postgresql://u@localhost/app?sslmode=require", "postgresql://u@localhost/app?sslmode=require"},
		{"host=localhost dbname=app", "host=localhost dbname=app"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeDSN(c.in))
	}
}

func TestConnect_EmptyDSN(t *testing.T) {
	_, err := Connect("postgres", "")
	require.EqualError(t, err, "DSN is empty")
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect("mysql", "postgres://u@localhost/app")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestConnect_OpensLazily(t *testing.T) {
	for _, driver := range append([]string{""}, Drivers...) {
		db, err := Connect(driver, "postgres://u@127.0.0.1:1/app")
		require.NoError(t, err, driver)
		require.NoError(t, db.Close())
	}
}
