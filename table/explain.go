package table

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/nickyhof/gadwall/core"
)

// IsExplain reports whether stmt is an EXPLAIN statement.
func IsExplain(stmt string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(stmt)), "explain ")
}

// explainParts splits a plan row into its title (first column) and body
// (last column).
func explainParts(row []core.Value) (title, body string) {
	if len(row) == 0 {
		return "", ""
	}
	return row[0].Display(NullToken), row[len(row)-1].Display(NullToken)
}

// RenderExplain prints each plan row as "<title>:\n<body>".
func RenderExplain(w io.Writer, rs core.ResultSet) {
	for _, row := range rs.Rows {
		title, body := explainParts(row)
		fmt.Fprintf(w, "%s:\n%s\n", title, body)
	}
}

// ExplainHTML returns each plan row as a titled preformatted block.
func ExplainHTML(rs core.ResultSet) string {
	var sb strings.Builder
	for _, row := range rs.Rows {
		title, body := explainParts(row)
		sb.WriteString("<h3>" + html.EscapeString(title) + "</h3>\n")
		sb.WriteString("<pre>" + html.EscapeString(body) + "</pre>\n")
	}
	return sb.String()
}
