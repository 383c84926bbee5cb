// Package shell runs the interactive gadwall session.
//
// A Session reads one line at a time, lets the command router decide
// whether it is a meta-command or an SQL statement, and renders results as
// framed tables. When an HTML sink is open every statement and result is
// mirrored into it.
//
// # Meta-commands
//
//	.quit                 close the database and any html output, then exit
//	.db                   show the database path
//	.schema [name|*]      list tables, show one table, or show every table
//	.html [off|path]      show, stop or start html output
//	.frame [fancy|thin|raw] show or select the table frame style
//	help [topic], ?topic  list commands or show help for one
//
// Any other line is sent to the database unchanged.
package shell
