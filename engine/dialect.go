package engine

import (
	"fmt"
	"strings"
)

// Dialect holds the driver-specific statements used by the shell.
type Dialect struct {
	Driver string
	Name   string // shown in the prompt and banner

	listTables string
	tableInfo  string
}

var (
	DuckDB = Dialect{
		Driver:     "duckdb",
		Name:       "duckdb",
		listTables: "PRAGMA show_tables;",
		tableInfo:  "PRAGMA table_info('%s')",
	}

	SQLite = Dialect{
		Driver:     "sqlite",
		Name:       "sqlite",
		listTables: "SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name;",
		tableInfo:  "PRAGMA table_info('%s')",
	}
)

var dialects = map[string]Dialect{
	DuckDB.Driver: DuckDB,
	SQLite.Driver: SQLite,
}

// LookupDialect finds a dialect by driver name, ignoring case.
func LookupDialect(driver string) (Dialect, bool) {
	d, ok := dialects[strings.ToLower(strings.TrimSpace(driver))]
	return d, ok
}

// ListTables returns the statement listing all tables; the table name is
// the first column of its result.
func (d Dialect) ListTables() string {
	return d.listTables
}

// TableInfo returns the statement describing the columns of table.
func (d Dialect) TableInfo(table string) string {
	return fmt.Sprintf(d.tableInfo, strings.ReplaceAll(table, "'", "''"))
}

// dsn maps a database path to the driver's data source name.
func (d Dialect) dsn(path string) string {
	if d.Driver == DuckDB.Driver && path == ":memory:" {
		return ""
	}
	return path
}
