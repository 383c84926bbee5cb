package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nickyhof/gadwall/core"
)

func TestRenderHTML(t *testing.T) {
	got := RenderHTML(sampleResult())
	expected := "<table><thead><tr>\n" +
		"\t<td>id</td>\n" +
		"\t<td>name</td>\n" +
		"</tr></thead>\n<tbody>\n" +
		"<tr>\n\t<td align=\"right\">1</td>\n\t<td>a</td>\n</tr>\n" +
		"<tr>\n\t<td align=\"right\">22</td>\n\t<td>bb</td>\n</tr>\n" +
		"</tbody></table>\n"

	if got != expected {
		t.Errorf("Unexpected HTML:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestRenderHTMLZeroRows(t *testing.T) {
	rs := sampleResult()
	rs.Rows = nil

	got := RenderHTML(rs)
	if !strings.Contains(got, "<tbody>\n</tbody></table>\n") {
		t.Errorf("Expected empty tbody, got:\n%s", got)
	}
	if !strings.HasSuffix(got, "<p><i>(0 rows)</i></p>\n") {
		t.Errorf("Expected (0 rows) paragraph, got:\n%s", got)
	}
}

func TestRenderHTMLNullAndEscaping(t *testing.T) {
	rs := core.ResultSet{
		Columns: []core.ColumnDescriptor{{Name: "n", Numeric: true}, {Name: "a<b"}},
		Rows:    [][]core.Value{{core.Null, core.ValueOf("x & <y>")}},
	}

	got := RenderHTML(rs)
	if !strings.Contains(got, "\t<td align=\"right\"><i>NULL</i></td>\n") {
		t.Errorf("Expected italic NULL marker, got:\n%s", got)
	}
	if !strings.Contains(got, "<td>a&lt;b</td>") {
		t.Errorf("Expected escaped column name, got:\n%s", got)
	}
	if !strings.Contains(got, "<td>x &amp; &lt;y&gt;</td>") {
		t.Errorf("Expected escaped cell, got:\n%s", got)
	}
	if strings.Contains(got, NullToken) {
		t.Errorf("Terminal NULL token leaked into HTML:\n%s", got)
	}
}

func TestIsExplain(t *testing.T) {
	tests := []struct {
		stmt     string
		expected bool
	}{
		{"explain select 1", true},
		{"  EXPLAIN SELECT 1", true},
		{"Explain\tselect 1", false},
		{"explained", false},
		{"select 'explain '", false},
		{"", false},
	}

	for _, test := range tests {
		if got := IsExplain(test.stmt); got != test.expected {
			t.Errorf("IsExplain(%q) = %v, expected %v", test.stmt, got, test.expected)
		}
	}
}

func TestRenderExplain(t *testing.T) {
	rs := core.ResultSet{
		Columns: []core.ColumnDescriptor{{Name: "explain_key"}, {Name: "explain_value"}},
		Rows: [][]core.Value{
			{core.ValueOf("physical_plan"), core.ValueOf("┌───┐\n│ X │\n└───┘")},
			{core.ValueOf("logical_plan"), core.ValueOf("<scan>")},
		},
	}

	var buf bytes.Buffer
	RenderExplain(&buf, rs)
	expected := "physical_plan:\n┌───┐\n│ X │\n└───┘\nlogical_plan:\n<scan>\n"
	if buf.String() != expected {
		t.Errorf("Unexpected explain output:\n%q\nexpected:\n%q", buf.String(), expected)
	}

	html := ExplainHTML(rs)
	if strings.Count(html, "<pre>") != 2 {
		t.Errorf("Expected one block per row, got:\n%s", html)
	}
	if !strings.Contains(html, "<h3>logical_plan</h3>\n<pre>&lt;scan&gt;</pre>\n") {
		t.Errorf("Expected escaped titled block, got:\n%s", html)
	}
}
