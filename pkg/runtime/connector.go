package runtime

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

// Drivers lists the database/sql driver names Connect accepts.
var Drivers = []string{"postgres", "pgx"}

// Connect opens a database handle for the given driver and DSN.
// An empty driver selects lib/pq.
func Connect(driver, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DSN is empty")
	}
	if driver == "" {
		driver = "postgres"
	}
	if !supported(driver) {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	return sql.Open(driver, NormalizeDSN(dsn))
}

// NormalizeDSN disables SSL on URL-style DSNs that do not choose a mode.
func NormalizeDSN(dsn string) string {
	if (strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")) &&
		!strings.Contains(dsn, "sslmode=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn = dsn + sep + "sslmode=disable"
	}
	return dsn
}

func supported(driver string) bool {
	for _, d := range Drivers {
		if d == driver {
			return true
		}
	}
	return false
}
