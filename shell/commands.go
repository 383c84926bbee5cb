package shell

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nickyhof/gadwall/core"
	"github.com/nickyhof/gadwall/table"
)

// execute is the default handler: it sends stmt to the database and renders
// the result. Statements the database rejects are reported and not rendered.
func (s *Session) execute(stmt string) bool {
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return false
	}

	if s.sink != nil {
		if err := s.sink.WriteStatement(stmt); err != nil {
			s.printError(err)
		}
	}

	if err := s.db.Execute(stmt); err != nil {
		s.printError(err)
		return false
	}

	rs, err := s.db.Fetch()
	if err != nil {
		s.printError(err)
		return false
	}

	if table.IsExplain(stmt) {
		table.RenderExplain(s.out, rs)
		s.writeHTML(table.ExplainHTML(rs))
		return false
	}

	table.Render(s.out, rs, s.frame)
	s.writeHTML(table.RenderHTML(rs))
	return false
}

func (s *Session) schema(arg string) bool {
	dialect := s.db.Dialect()

	switch arg = strings.TrimSpace(arg); arg {
	case "":
		s.execute(dialect.ListTables())

	case "*":
		s.execute(dialect.ListTables())

		if err := s.db.Execute(dialect.ListTables()); err != nil {
			s.printError(err)
			return false
		}
		tables, err := s.db.Fetch()
		if err != nil {
			s.printError(err)
			return false
		}
		for _, row := range tables.Rows {
			if len(row) == 0 {
				continue
			}
			name := row[0].String()
			fmt.Fprintln(s.out, ".schema "+name)
			s.execute(dialect.TableInfo(name))
		}

	default:
		s.execute(dialect.TableInfo(arg))
	}

	return false
}

func (s *Session) selectFrame(arg string) bool {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		s.printStatus("frame style: %s", s.frame.Name)
		return false
	}

	cs, ok := table.LookupStyle(arg)
	if !ok {
		s.failure.Fprintf(s.out, "unrecognized frame style %q (choose from %s); keeping %s\n",
			arg, strings.Join(table.StyleNames(), ", "), s.frame.Name)
		return false
	}

	s.frame = cs
	s.printStatus("frame style: %s", s.frame.Name)
	return false
}

func (s *Session) html(arg string) bool {
	arg = strings.TrimSpace(arg)

	switch {
	case arg == "":
		if s.sink != nil {
			fmt.Fprintln(s.out, "current html output:", s.sink.Path())
		} else {
			fmt.Fprintln(s.out, "currently no html output")
		}

	case strings.EqualFold(arg, "off"):
		if err := s.closeHTML(); err != nil {
			s.printError(err)
		}

	default:
		if err := s.OpenHTML(arg); err != nil {
			s.printError(err)
		}
	}

	return false
}

// OpenHTML closes any open sink and starts mirroring output to dest.
func (s *Session) OpenHTML(dest string) error {
	if err := s.closeHTML(); err != nil {
		s.printError(err)
	}

	sink, err := s.opener.Open(dest)
	if err != nil {
		return err
	}
	s.sink = sink
	s.printStatus("writing following commands to: %q", dest)
	return nil
}

// closeHTML writes the footer and closes the sink; without a sink it does
// nothing.
func (s *Session) closeHTML() error {
	if s.sink == nil {
		return nil
	}
	sink := s.sink
	s.sink = nil

	err := sink.Close()
	s.printStatus("html file %q closed", sink.Path())
	return err
}

func (s *Session) writeHTML(text string) {
	if s.sink == nil || text == "" {
		return
	}
	if err := s.sink.Write(text); err != nil {
		s.printError(err)
	}
}

// frameHelp shows a sample table in every frame style.
func frameHelp() string {
	sample := core.ResultSet{
		Columns: []core.ColumnDescriptor{{Name: "id", Numeric: true}, {Name: "name"}},
		Rows: [][]core.Value{
			{core.ValueOf(1), core.ValueOf("a")},
			{core.ValueOf(22), core.ValueOf("bb")},
		},
	}

	var buf bytes.Buffer
	buf.WriteString("Select the table frame style with .frame <style>; the styles are:\n")
	for _, name := range table.StyleNames() {
		cs, _ := table.LookupStyle(name)
		fmt.Fprintf(&buf, "\n%s\n", name)
		table.Render(&buf, sample, cs)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func sqlHelp() string {
	return "Any line that is not a command is sent to the database as it is.\n" +
		"EXPLAIN statements print the plan as text instead of a table."
}
