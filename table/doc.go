// Package table renders result sets as framed text tables and as HTML.
//
// Terminal output is drawn with a Charset, a named set of box-drawing glyphs.
// Three styles are built in: "fancy" (double outer lines, the default),
// "thin" (single lines) and "raw" (ASCII only).
//
// # Rendering
//
//	table.Render(os.Stdout, rs, table.Fancy)
//	html := table.RenderHTML(rs)
//
// Column widths are computed from every row before anything is written, so
// the rows must be fully materialized. A column is as wide as its widest
// rendered value or its name, measured in display cells. Numeric columns are
// right-aligned, everything else is left-aligned.
//
// EXPLAIN output is plan text rather than tabular data; RenderExplain and
// ExplainHTML print it as titled blocks instead of a framed table.
package table
