package engine

import (
	"errors"
	"testing"

	"github.com/nickyhof/gadwall/core"
)

func setupTestEngine(t *testing.T, dialect Dialect) *Engine {
	t.Helper()

	engine, err := Open(dialect, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open %s engine: %v", dialect.Name, err)
	}
	t.Cleanup(func() { engine.Close() })

	mustExecute(t, engine, "CREATE TABLE users (id INTEGER, name VARCHAR, score DOUBLE)")
	mustExecute(t, engine, "INSERT INTO users VALUES (1, 'Alice', 3.5)")
	mustExecute(t, engine, "INSERT INTO users VALUES (22, 'Bob', NULL)")

	return engine
}

func mustExecute(t *testing.T, engine *Engine, stmt string) core.ResultSet {
	t.Helper()

	if err := engine.Execute(stmt); err != nil {
		t.Fatalf("Failed to execute %q: %v", stmt, err)
	}
	rs, err := engine.Fetch()
	if err != nil {
		t.Fatalf("Failed to fetch result of %q: %v", stmt, err)
	}
	return rs
}

func TestEngineSelect(t *testing.T) {
	for _, dialect := range []Dialect{SQLite, DuckDB} {
		t.Run(dialect.Name, func(t *testing.T) {
			engine := setupTestEngine(t, dialect)

			rs := mustExecute(t, engine, "SELECT id, name, score FROM users ORDER BY id")

			expected := []core.ColumnDescriptor{
				{Name: "id", Numeric: true},
				{Name: "name", Numeric: false},
				{Name: "score", Numeric: true},
			}
			if len(rs.Columns) != len(expected) {
				t.Fatalf("Expected %d columns, got %d", len(expected), len(rs.Columns))
			}
			for i, c := range expected {
				if rs.Columns[i] != c {
					t.Errorf("Column %d = %+v, expected %+v", i, rs.Columns[i], c)
				}
			}

			if len(rs.Rows) != 2 {
				t.Fatalf("Expected 2 rows, got %d", len(rs.Rows))
			}
			if rs.Rows[0][1].String() != "Alice" || rs.Rows[1][0].String() != "22" {
				t.Errorf("Unexpected rows %v", rs.Rows)
			}
			if !rs.Rows[1][2].IsNull() {
				t.Errorf("Expected NULL score, got %v", rs.Rows[1][2])
			}
		})
	}
}

func TestEngineQueryError(t *testing.T) {
	for _, dialect := range []Dialect{SQLite, DuckDB} {
		t.Run(dialect.Name, func(t *testing.T) {
			engine := setupTestEngine(t, dialect)

			err := engine.Execute("SELECT * FROM missing_table")
			var qerr *QueryError
			if !errors.As(err, &qerr) {
				t.Fatalf("Expected QueryError, got %v", err)
			}
			if qerr.Statement != "SELECT * FROM missing_table" {
				t.Errorf("Unexpected statement %q", qerr.Statement)
			}

			if _, err := engine.Fetch(); !errors.Is(err, ErrNoStatementYet) {
				t.Errorf("Expected no result after failure, got %v", err)
			}
		})
	}
}

func TestEngineSchemaStatements(t *testing.T) {
	for _, dialect := range []Dialect{SQLite, DuckDB} {
		t.Run(dialect.Name, func(t *testing.T) {
			engine := setupTestEngine(t, dialect)
			mustExecute(t, engine, "CREATE TABLE points (x INTEGER, y INTEGER)")

			tables := mustExecute(t, engine, dialect.ListTables())
			if len(tables.Rows) != 2 {
				t.Fatalf("Expected 2 tables, got %d", len(tables.Rows))
			}
			names := map[string]bool{}
			for _, row := range tables.Rows {
				names[row[0].String()] = true
			}
			if !names["points"] || !names["users"] {
				t.Errorf("Unexpected table list %v", tables.Rows)
			}

			info := mustExecute(t, engine, dialect.TableInfo("users"))
			if len(info.Rows) != 3 {
				t.Errorf("Expected 3 columns in table info, got %d", len(info.Rows))
			}
		})
	}
}

func TestEngineClose(t *testing.T) {
	engine, err := Open(SQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open engine: %v", err)
	}

	if err := engine.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := engine.Close(); err != nil {
		t.Errorf("Second close should be a no-op, got %v", err)
	}
	if err := engine.Execute("SELECT 1"); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(Dialect{Driver: "oracle"}, "x")
	if !errors.Is(err, ErrUnknownDriver) {
		t.Errorf("Expected ErrUnknownDriver, got %v", err)
	}
}

func TestDialect(t *testing.T) {
	d, ok := LookupDialect("DuckDB")
	if !ok || d.Driver != "duckdb" {
		t.Fatalf("Expected duckdb dialect, got %v, %v", d, ok)
	}
	if _, ok := LookupDialect("postgres"); ok {
		t.Error("Expected unknown dialect")
	}

	if got := DuckDB.TableInfo("o'brien"); got != "PRAGMA table_info('o''brien')" {
		t.Errorf("Unexpected table info statement %q", got)
	}
	if DuckDB.dsn(":memory:") != "" || SQLite.dsn(":memory:") != ":memory:" {
		t.Error("Unexpected in-memory DSN mapping")
	}
}

func TestIsNumericType(t *testing.T) {
	tests := []struct {
		name    string
		numeric bool
		known   bool
	}{
		{"INTEGER", true, true},
		{"bigint", true, true},
		{"DECIMAL(18,3)", true, true},
		{"DOUBLE", true, true},
		{"VARCHAR", false, true},
		{"TIMESTAMP", false, true},
		{"BOOLEAN", false, true},
		{"", false, false},
	}

	for _, test := range tests {
		numeric, known := isNumericType(test.name)
		if numeric != test.numeric || known != test.known {
			t.Errorf("isNumericType(%q) = %v, %v, expected %v, %v", test.name, numeric, known, test.numeric, test.known)
		}
	}
}

func TestInferNumeric(t *testing.T) {
	tests := []struct {
		name     string
		values   []core.Value
		expected bool
	}{
		{"numbers", []core.Value{core.ValueOf(1), core.Null, core.ValueOf(2.5)}, true},
		{"mixed", []core.Value{core.ValueOf(1), core.ValueOf("x")}, false},
		{"all null", []core.Value{core.Null}, false},
		{"empty", nil, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := inferNumeric(test.values); got != test.expected {
				t.Errorf("inferNumeric = %v, expected %v", got, test.expected)
			}
		})
	}
}

func TestEngineBlobIsEscaped(t *testing.T) {
	tests := []struct {
		dialect Dialect
		stmt    string
	}{
		{DuckDB, `SELECT '\xFF\x00\x1B[31m'::BLOB AS b`},
		{SQLite, `SELECT x'FF001B5B33316D' AS b`},
	}

	for _, test := range tests {
		t.Run(test.dialect.Name, func(t *testing.T) {
			engine := setupTestEngine(t, test.dialect)

			rs := mustExecute(t, engine, test.stmt)
			if len(rs.Rows) != 1 {
				t.Fatalf("Expected 1 row, got %d", len(rs.Rows))
			}
			v := rs.Rows[0][0]
			if v.Kind() != core.OtherKind {
				t.Errorf("Expected blob as other kind, got %s", v.Kind())
			}
			if v.String() != `"\xff\x00\x1b[31m"` {
				t.Errorf("Unexpected blob text %q", v.String())
			}
			if rs.Columns[0].Numeric {
				t.Error("Expected blob column to be left-aligned")
			}
		})
	}
}

func TestEngineTemporalLayouts(t *testing.T) {
	engine := setupTestEngine(t, DuckDB)

	rs := mustExecute(t, engine, "SELECT TIME '12:30:00' AS tm, DATE '2024-01-02' AS dt, "+
		"TIMESTAMP '2024-01-02 03:04:05' AS ts, TIMESTAMP '2024-01-02 03:04:05.25' AS frac")

	expected := []string{"12:30:00", "2024-01-02", "2024-01-02 03:04:05", "2024-01-02 03:04:05.250000"}
	for i, want := range expected {
		v := rs.Rows[0][i]
		if v.Kind() != core.TimestampKind {
			t.Errorf("%s: expected timestamp kind, got %s", rs.Columns[i].Name, v.Kind())
		}
		if v.String() != want {
			t.Errorf("%s: expected %q, got %q", rs.Columns[i].Name, want, v.String())
		}
	}
}

func TestTemporalLayout(t *testing.T) {
	tests := map[string]string{
		"DATE":      core.DateLayout,
		"time":      core.TimeLayout,
		"TIMETZ":    core.TimeLayout,
		"TIMESTAMP": core.TimestampLayout,
		"DATETIME":  core.TimestampLayout,
		"":          core.TimestampLayout,
	}
	for name, expected := range tests {
		if got := temporalLayout(name); got != expected {
			t.Errorf("temporalLayout(%q) = %q, expected %q", name, got, expected)
		}
	}
}
