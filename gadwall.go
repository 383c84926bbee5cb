package gadwall

import (
	"errors"
	"fmt"
	"io"

	"github.com/nickyhof/gadwall/core"
	"github.com/nickyhof/gadwall/engine"
	"github.com/nickyhof/gadwall/report"
	"github.com/nickyhof/gadwall/shell"
	"github.com/nickyhof/gadwall/table"
)

var ErrUnknownFrame = errors.New("unknown frame style")

// Options selects the database and where reports go.
type Options struct {
	Driver string // "duckdb" when empty
	Path   string

	// ArchiveDir, when set, commits every closed report into a git
	// repository there, authored by Identity.
	ArchiveDir string
	Identity   core.Identity

	S3 *report.S3Config
}

// SessionOptions configures the shell run on an Instance.
type SessionOptions struct {
	Out io.Writer
	Err io.Writer

	Frame string // initial frame style, DefaultStyle when empty
	HTML  string // report opened at start, none when empty

	Interactive bool
	NoColor     bool
}

type Instance struct {
	Engine *engine.Engine
	Opener *report.Opener
}

// Open opens the database and prepares the report destinations.
func Open(opts Options) (*Instance, error) {
	driver := opts.Driver
	if driver == "" {
		driver = engine.DuckDB.Driver
	}
	dialect, ok := engine.LookupDialect(driver)
	if !ok {
		return nil, fmt.Errorf("%w: %s", engine.ErrUnknownDriver, driver)
	}

	opener := report.NewOpener()
	opener.S3 = opts.S3
	if opts.ArchiveDir != "" {
		archive, err := report.NewFileArchive(opts.ArchiveDir, opts.Identity)
		if err != nil {
			return nil, fmt.Errorf("failed to open report archive %s: %w", opts.ArchiveDir, err)
		}
		opener.Archive = archive
	}

	eng, err := engine.Open(dialect, opts.Path)
	if err != nil {
		return nil, err
	}

	return &Instance{
		Engine: eng,
		Opener: opener,
	}, nil
}

// Session creates a shell on the instance. If the initial report cannot be
// opened the session is closed and the error returned.
func (instance *Instance) Session(opts SessionOptions) (*shell.Session, error) {
	frame := table.DefaultStyle
	if opts.Frame != "" {
		cs, ok := table.LookupStyle(opts.Frame)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownFrame, opts.Frame)
		}
		frame = cs
	}

	session := shell.New(instance.Engine, shell.Config{
		Out:         opts.Out,
		Err:         opts.Err,
		Frame:       frame,
		Opener:      instance.Opener,
		Interactive: opts.Interactive,
		NoColor:     opts.NoColor,
	})

	if opts.HTML != "" {
		if err := session.OpenHTML(opts.HTML); err != nil {
			session.Close()
			return nil, err
		}
	}
	return session, nil
}

// Close closes the database. Sessions close it themselves on quit; Close is
// for instances whose session never started.
func (instance *Instance) Close() error {
	return instance.Engine.Close()
}
