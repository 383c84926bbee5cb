package report

import (
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Header starts every HTML report.
const Header = `
<html>
<head>
    <style>
        *     {  font-family: sans-serif; }
        body  { background-color: silver; }
        thead { background-color: lightblue; }
        table { border-collapse: collapse; }
        td    { border: 1px solid black; }
        pre   { font-family: monospace; }
    </style>
    <title>gadwall/DuckDB output</title>
</head>
<body>
<h1>gadwall/DuckDB output</h1>
`

const footerTemplate = `
<hr>
<small>%s</small>
</body>
</html>
`

// FooterTimeLayout formats the close timestamp in the footer.
const FooterTimeLayout = "2006-01-02 15:04:05.000000"

const highlightStyle = "github"

var sqlFormatter = chromahtml.New(
	chromahtml.WithClasses(false),
	chromahtml.InlineCode(true),
)

// HighlightSQL returns stmt as inline-styled HTML. If highlighting fails the
// statement is returned escaped.
func HighlightSQL(stmt string) string {
	lexer := lexers.Get("sql")
	if lexer == nil {
		return html.EscapeString(stmt)
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(highlightStyle)
	iterator, err := lexer.Tokenise(nil, stmt)
	if err != nil {
		return html.EscapeString(stmt)
	}

	var sb strings.Builder
	if err := sqlFormatter.Format(&sb, style, iterator); err != nil {
		return html.EscapeString(stmt)
	}
	return sb.String()
}
