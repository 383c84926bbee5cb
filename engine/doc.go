// Package engine connects the shell to an embedded SQL database.
//
// The Engine executes one statement at a time and keeps its fully
// materialized result until the next statement runs:
//
//	eng, err := engine.Open(engine.DuckDB, "analytics.duckdb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close()
//
//	if err := eng.Execute("SELECT 42 AS answer"); err != nil {
//	    var qerr *engine.QueryError
//	    errors.As(err, &qerr) // the database rejected the statement
//	}
//	rs, err := eng.Fetch()
//
// # Dialects
//
// Two drivers are supported: DuckDB (the default) and SQLite. The Dialect
// provides the statements behind the .schema command for each of them.
package engine
