package shell

import (
	"errors"
	"fmt"
	"html"
	"io"

	"github.com/fatih/color"

	"github.com/nickyhof/gadwall/command"
	"github.com/nickyhof/gadwall/core"
	"github.com/nickyhof/gadwall/engine"
	"github.com/nickyhof/gadwall/report"
	"github.com/nickyhof/gadwall/table"
)

// Database is the engine a session talks to.
type Database interface {
	Execute(stmt string) error
	Fetch() (core.ResultSet, error)
	Path() string
	Dialect() engine.Dialect
	Close() error
}

// Config holds the optional settings of a Session.
type Config struct {
	Out    io.Writer
	Err    io.Writer
	Frame  *table.Charset
	Opener *report.Opener

	// Interactive sessions print the intro and prompt and use colour.
	Interactive bool
	NoColor     bool
}

// Session is the state of one shell run: the active frame style and the
// optional HTML sink. It is driven by a single goroutine.
type Session struct {
	db     Database
	router *command.Router
	out    io.Writer
	errOut io.Writer
	opener *report.Opener

	frame *table.Charset
	sink  *report.Sink

	interactive bool
	closed      bool

	status  *color.Color
	failure *color.Color
	prompt  *color.Color
}

// New creates a session on db and registers its commands.
func New(db Database, cfg Config) *Session {
	s := &Session{
		db:          db,
		out:         cfg.Out,
		errOut:      cfg.Err,
		opener:      cfg.Opener,
		frame:       cfg.Frame,
		interactive: cfg.Interactive,
		status:      color.New(color.FgGreen),
		failure:     color.New(color.FgRed),
		prompt:      color.New(color.FgCyan, color.Bold),
	}
	if s.out == nil {
		s.out = io.Discard
	}
	if s.errOut == nil {
		s.errOut = s.out
	}
	if s.opener == nil {
		s.opener = report.NewOpener()
	}
	if s.frame == nil {
		s.frame = table.DefaultStyle
	}
	if cfg.NoColor || !cfg.Interactive {
		for _, c := range []*color.Color{s.status, s.failure, s.prompt} {
			c.DisableColor()
		}
	}

	s.router = command.NewRouter(s.out, s.execute)
	s.register()
	return s
}

func (s *Session) register() {
	s.router.Register(command.Registration{
		Trigger: "dot_quit",
		Doc:     "Exit the program",
		Handler: s.quit,
	})
	s.router.Register(command.Registration{
		Trigger: command.EOFTrigger,
		Handler: s.eof,
	})
	s.router.Register(command.Registration{
		Trigger: "dot_db",
		Doc:     "Show current database",
		Handler: s.showDatabase,
	})
	s.router.Register(command.Registration{
		Trigger: "dot_schema",
		Doc:     `Show database or table schema; special keyword "*" lists it recursively`,
		Handler: s.schema,
	})
	s.router.Register(command.Registration{
		Trigger: "dot_html",
		Doc:     `enable html output to given filename; "off" turns it off; no filename shows the current state`,
		Handler: s.html,
	})
	s.router.Register(command.Registration{
		Trigger: "dot_frame",
		Doc:     "Select the table frame style (fancy, thin or raw); no argument shows the current style",
		Help:    frameHelp,
		Handler: s.selectFrame,
	})
	s.router.RegisterTopic("sql", sqlHelp)
}

// Dispatch runs one input line and reports whether the session ended.
func (s *Session) Dispatch(line string) bool {
	return s.router.Dispatch(line)
}

// Router exposes the command table, for help output and tests.
func (s *Session) Router() *command.Router {
	return s.router
}

// Frame returns the active frame style.
func (s *Session) Frame() *table.Charset {
	return s.frame
}

// HTMLPath returns the destination of the open sink, or "" when there is none.
func (s *Session) HTMLPath() string {
	if s.sink == nil {
		return ""
	}
	return s.sink.Path()
}

// Close closes the HTML sink (writing its footer) and the database.
// Closing twice is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	sinkErr := s.closeHTML()
	dbErr := s.db.Close()
	return errors.Join(sinkErr, dbErr)
}

func (s *Session) quit(string) bool {
	if err := s.Close(); err != nil {
		s.failure.Fprintf(s.errOut, "ERROR: %v\n", err)
	}
	return true
}

func (s *Session) eof(arg string) bool {
	if s.interactive {
		fmt.Fprintln(s.out)
	}
	return s.quit(arg)
}

func (s *Session) showDatabase(string) bool {
	fmt.Fprintln(s.out, "database: "+s.db.Path())
	s.writeHTML("<h2>database: " + html.EscapeString(s.db.Path()) + "</h2>\n")
	return false
}

// printError reports err on the terminal only.
func (s *Session) printError(err error) {
	s.failure.Fprintf(s.out, "ERROR: %v\n", err)
}

func (s *Session) printStatus(format string, args ...any) {
	s.status.Fprintf(s.out, format+"\n", args...)
}
