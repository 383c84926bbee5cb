package engine

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "modernc.org/sqlite"

	"github.com/nickyhof/gadwall/core"
)

var (
	ErrClosed         = errors.New("engine is closed")
	ErrUnknownDriver  = errors.New("unknown driver")
	ErrNoStatementYet = errors.New("no statement executed")
)

// QueryError is returned when the database rejects a statement.
type QueryError struct {
	Statement string
	Err       error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

type Engine struct {
	db      *sql.DB
	path    string
	dialect Dialect
	last    *core.ResultSet
}

// Open connects to the database at path with the given dialect's driver.
func Open(dialect Dialect, path string) (*Engine, error) {
	if _, ok := dialects[dialect.Driver]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, dialect.Driver)
	}

	db, err := sql.Open(dialect.Driver, dialect.dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database %s: %w", dialect.Name, path, err)
	}
	// One connection keeps in-memory databases alive between statements.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s database %s: %w", dialect.Name, path, err)
	}

	return &Engine{
		db:      db,
		path:    path,
		dialect: dialect,
	}, nil
}

// Path returns the path the database was opened with.
func (engine *Engine) Path() string {
	return engine.path
}

func (engine *Engine) Dialect() Dialect {
	return engine.dialect
}

// Execute runs stmt and materializes its complete result. Errors raised by
// the database, including those surfacing while reading rows, are returned
// as *QueryError and leave no result behind.
func (engine *Engine) Execute(stmt string) error {
	if engine.db == nil {
		return ErrClosed
	}
	engine.last = nil

	rows, err := engine.db.Query(stmt)
	if err != nil {
		return &QueryError{Statement: stmt, Err: err}
	}
	defer rows.Close()

	rs, err := materialize(rows)
	if err != nil {
		return &QueryError{Statement: stmt, Err: err}
	}

	engine.last = &rs
	return nil
}

// Fetch returns the result of the last successful Execute.
func (engine *Engine) Fetch() (core.ResultSet, error) {
	if engine.db == nil {
		return core.ResultSet{}, ErrClosed
	}
	if engine.last == nil {
		return core.ResultSet{}, ErrNoStatementYet
	}
	return *engine.last, nil
}

// Close releases the connection. Closing twice is a no-op.
func (engine *Engine) Close() error {
	if engine.db == nil {
		return nil
	}
	err := engine.db.Close()
	engine.db = nil
	engine.last = nil
	return err
}

func materialize(rows *sql.Rows) (core.ResultSet, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return core.ResultSet{}, err
	}

	rs := core.ResultSet{
		Columns: make([]core.ColumnDescriptor, len(types)),
		Rows:    make([][]core.Value, 0),
	}

	dest := make([]any, len(types))
	ptrs := make([]any, len(types))
	layouts := make([]string, len(types))
	for i, ct := range types {
		ptrs[i] = &dest[i]
		layouts[i] = temporalLayout(ct.DatabaseTypeName())
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return core.ResultSet{}, err
		}
		row := make([]core.Value, len(dest))
		for i, v := range dest {
			if t, ok := v.(time.Time); ok {
				row[i] = core.TimeOf(t, layouts[i])
				continue
			}
			row[i] = core.ValueOf(v)
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return core.ResultSet{}, err
	}

	for i, ct := range types {
		numeric, known := isNumericType(ct.DatabaseTypeName())
		if !known {
			numeric = inferNumeric(rs.Column(i))
		}
		rs.Columns[i] = core.ColumnDescriptor{Name: ct.Name(), Numeric: numeric}
	}

	return rs, nil
}

var numericTypes = map[string]bool{
	"TINYINT": true, "SMALLINT": true, "INTEGER": true, "INT": true, "BIGINT": true, "HUGEINT": true,
	"UTINYINT": true, "USMALLINT": true, "UINTEGER": true, "UBIGINT": true, "UHUGEINT": true,
	"INT1": true, "INT2": true, "INT4": true, "INT8": true, "MEDIUMINT": true,
	"FLOAT": true, "FLOAT4": true, "FLOAT8": true, "REAL": true, "DOUBLE": true, "DOUBLE PRECISION": true,
	"DECIMAL": true, "NUMERIC": true,
}

// isNumericType classifies a reported column type. known is false when the
// driver reports no type, as SQLite does for expressions.
func isNumericType(name string) (numeric, known bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return false, false
	}
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	return numericTypes[name], true
}

// temporalLayout picks the text layout of a time.Time scanned from a column
// of the given type, so dates carry no clock and times no date.
func temporalLayout(name string) string {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DATE":
		return core.DateLayout
	case "TIME", "TIMETZ", "TIME WITH TIME ZONE":
		return core.TimeLayout
	default:
		return core.TimestampLayout
	}
}

// inferNumeric treats an untyped column as numeric when it holds at least
// one value and all its non-null values are numeric.
func inferNumeric(values []core.Value) bool {
	seen := false
	for _, v := range values {
		switch v.Kind() {
		case core.NullKind:
			continue
		case core.NumericKind:
			seen = true
		default:
			return false
		}
	}
	return seen
}
