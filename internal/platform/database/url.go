package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	sqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

var ErrUnsupportedScheme = errors.New("unsupported database scheme")

// Target is a database URL resolved to a gorm driver and its native DSN.
type Target struct {
	Driver string
	DSN    string
}

// ParseURL accepts SQLAlchemy style URLs (postgresql+psycopg2://, mysql+pymysql://,
// sqlite:///relative.db, sqlite:////absolute.db) as well as plain ones.
func ParseURL(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)
	idx := strings.Index(raw, "://")
	if idx <= 0 {
		return Target{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, redact(raw))
	}
	scheme := strings.ToLower(raw[:idx])
	if plus := strings.IndexByte(scheme, '+'); plus >= 0 {
		scheme = scheme[:plus]
	}
	rest := raw[idx+3:]

	switch scheme {
	case "postgres", "postgresql":
		return Target{Driver: DriverPostgres, DSN: "postgres://" + rest}, nil
	case "mysql", "mariadb":
		dsn, err := mysqlDSN(rest)
		if err != nil {
			return Target{}, err
		}
		return Target{Driver: DriverMySQL, DSN: dsn}, nil
	case "sqlite", "sqlite3":
		return Target{Driver: DriverSQLite, DSN: sqlitePath(rest)}, nil
	default:
		return Target{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

func (t Target) Dialector() gorm.Dialector {
	switch t.Driver {
	case DriverPostgres:
		return postgres.Open(t.DSN)
	case DriverMySQL:
		return mysql.Open(t.DSN)
	default:
		return sqlite.Open(t.DSN)
	}
}

func mysqlDSN(rest string) (string, error) {
	u, err := url.Parse("mysql://" + rest)
	if err != nil {
		return "", fmt.Errorf("parse mysql url failed: %w", err)
	}

	cfg := sqldriver.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	if u.Port() == "" {
		cfg.Addr += ":3306"
	}
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}

	cfg.ParseTime = true
	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		if key == "parseTime" {
			cfg.ParseTime = values[0] == "true"
			continue
		}
		if cfg.Params == nil {
			cfg.Params = map[string]string{}
		}
		cfg.Params[key] = values[0]
	}
	return cfg.FormatDSN(), nil
}

func sqlitePath(rest string) string {
	path := rest
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimPrefix(path, "/")
	if path == "" || path == ":memory:" {
		return ":memory:"
	}
	return path
}

func redact(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.User != nil {
		return u.Redacted()
	}
	return raw
}
