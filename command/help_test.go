package command

import (
	"strings"
	"testing"
)

func TestHelpListing(t *testing.T) {
	router, out, _ := setupTestRouter(t)
	router.RegisterTopic("dot_frame", func() string { return "frame styles" })
	router.RegisterTopic("sql", func() string { return "any other line is SQL" })

	listing := router.Help("")

	documented := strings.Index(listing, router.DocHeader)
	misc := strings.Index(listing, router.MiscHeader)
	undocumented := strings.Index(listing, router.UndocHeader)
	if documented < 0 || misc < 0 || undocumented < 0 {
		t.Fatalf("Expected all three groups in listing:\n%s", listing)
	}
	if !(documented < misc && misc < undocumented) {
		t.Errorf("Expected groups in order documented, misc, undocumented:\n%s", listing)
	}

	docBlock := listing[documented:misc]
	if !strings.Contains(docBlock, ".quit") || !strings.Contains(docBlock, ".schema") || !strings.Contains(docBlock, "help") {
		t.Errorf("Expected dotted documented commands, got:\n%s", docBlock)
	}
	if strings.Contains(listing, "dot_") {
		t.Errorf("Expected internal prefix to be hidden:\n%s", listing)
	}

	miscBlock := listing[misc:undocumented]
	if !strings.Contains(miscBlock, ".frame") || !strings.Contains(miscBlock, "sql") {
		t.Errorf("Expected stand-alone topics in misc group, got:\n%s", miscBlock)
	}

	if !strings.Contains(listing[undocumented:], "EOF") {
		t.Errorf("Expected EOF among undocumented commands:\n%s", listing)
	}

	if !strings.Contains(listing, strings.Repeat("=", len(router.DocHeader))) {
		t.Errorf("Expected ruler under header:\n%s", listing)
	}

	router.Dispatch("?")
	if !strings.Contains(out.String(), router.DocHeader) {
		t.Errorf("Expected ? to print the listing, got %q", out.String())
	}
}

func TestHelpListingSorted(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	documented, topics, undocumented := router.Groups()
	expected := []string{".quit", ".schema", "help"}
	if strings.Join(documented, ",") != strings.Join(expected, ",") {
		t.Errorf("Documented = %v, expected %v", documented, expected)
	}
	if len(topics) != 0 {
		t.Errorf("Expected no topics, got %v", topics)
	}
	if strings.Join(undocumented, ",") != "EOF" {
		t.Errorf("Undocumented = %v, expected [EOF]", undocumented)
	}
}

func TestHelpLookup(t *testing.T) {
	router, _, _ := setupTestRouter(t)
	router.RegisterTopic("dot_quit", func() string { return "Long help for quit" })

	tests := []struct {
		arg      string
		expected string
	}{
		{"dot_schema", "Show database or table schema"},
		{".schema", "Show database or table schema"},
		{".quit", "Long help for quit"},
		{"dot_quit", "Long help for quit"},
		{"help", `List available commands with "help" or detailed help with "help cmd".`},
		{"EOF", "*** No help on EOF"},
		{".nothing", "*** No help on .nothing"},
		{"nothing", "*** No help on nothing"},
		{".", "*** No help on ."},
	}

	for _, test := range tests {
		if got := router.Help(test.arg); got != test.expected {
			t.Errorf("Help(%q) = %q, expected %q", test.arg, got, test.expected)
		}
	}
}

func TestHelpCommandOutput(t *testing.T) {
	router, out, _ := setupTestRouter(t)

	if router.Dispatch("help .schema") {
		t.Error("Expected help not to terminate")
	}
	if out.String() != "Show database or table schema\n" {
		t.Errorf("Unexpected help output %q", out.String())
	}

	out.Reset()
	router.Dispatch("?.missing")
	if out.String() != "*** No help on .missing\n" {
		t.Errorf("Unexpected help output %q", out.String())
	}
}

func TestColumnize(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		width    int
		expected string
	}{
		{"empty", nil, 79, "<empty>\n"},
		{"single", []string{"help"}, 79, "help\n"},
		{"one row", []string{".db", ".quit", "help"}, 79, ".db  .quit  help\n"},
		{"two rows", []string{"a", "b", "c", "d"}, 7, "a  c\nb  d\n"},
		{"ragged", []string{".frame", "b", "c"}, 10, ".frame  c\nb\n"},
		{"one per line", []string{"abcdef", "ghijkl"}, 5, "abcdef\nghijkl\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := columnize(test.names, test.width); got != test.expected {
				t.Errorf("columnize = %q, expected %q", got, test.expected)
			}
		})
	}
}
