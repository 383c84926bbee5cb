package table

import (
	"html"
	"strings"

	"github.com/nickyhof/gadwall/core"
)

// HTMLNull is the HTML text of a NULL cell.
const HTMLNull = "<i>NULL</i>"

// RenderHTML returns rs as an HTML table fragment. Numeric cells are
// right-aligned; no frame glyphs are used.
func RenderHTML(rs core.ResultSet) string {
	if len(rs.Columns) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("<table><thead><tr>\n")
	for _, c := range rs.Columns {
		sb.WriteString("\t<td>" + html.EscapeString(c.Name) + "</td>\n")
	}
	sb.WriteString("</tr></thead>\n<tbody>\n")

	for _, row := range rs.Rows {
		sb.WriteString("<tr>\n")
		for i, c := range rs.Columns {
			cell := HTMLNull
			if i < len(row) && !row[i].IsNull() {
				cell = html.EscapeString(row[i].String())
			}
			if c.Numeric {
				sb.WriteString("\t<td align=\"right\">" + cell + "</td>\n")
			} else {
				sb.WriteString("\t<td>" + cell + "</td>\n")
			}
		}
		sb.WriteString("</tr>\n")
	}

	sb.WriteString("</tbody></table>\n")
	if len(rs.Rows) == 0 {
		sb.WriteString("<p><i>" + EmptyMarker + "</i></p>\n")
	}
	return sb.String()
}
