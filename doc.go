// Package gadwall provides an interactive SQL shell over embedded
// databases.
//
// A shell reads lines, runs dot-prefixed meta-commands itself and hands
// everything else to the database. Results are drawn as framed tables on the
// terminal and can be mirrored into an HTML report.
//
// # Quick Start
//
// Open a DuckDB file and run the shell on standard input:
//
//	instance, _ := gadwall.Open(gadwall.Options{Path: "data.duckdb"})
//	session, _ := instance.Session(gadwall.SessionOptions{Out: os.Stdout})
//	session.Run(ctx, os.Stdin)
//
// # Meta-commands
//
//   - .schema [table|*]   list tables or describe them
//   - .html [file|off]    mirror output into an HTML report
//   - .frame [style]      select fancy, thin or raw table frames
//   - .db                 show the open database
//   - .quit               leave the shell
//   - help, ?             list commands or show help on one
//
// Reports may be written to local paths, file:// URLs or s3:// objects, and
// every closed report can be committed into a git archive.
package gadwall
