package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"
)

var ErrSinkClosed = errors.New("html sink is closed")

// Sink is one open HTML report. It is owned by a single session and is not
// safe for concurrent use.
type Sink struct {
	dest    string
	w       io.WriteCloser
	content bytes.Buffer
	archive *Archive
	now     func() time.Time
	closed  bool
}

// Open opens dest and writes the report header.
func (o *Opener) Open(dest string) (*Sink, error) {
	w, err := o.openWriter(dest)
	if err != nil {
		return nil, fmt.Errorf("failed to open html output %s: %w", dest, err)
	}

	sink := &Sink{
		dest:    dest,
		w:       w,
		archive: o.Archive,
		now:     time.Now,
	}
	if err := sink.Write(Header); err != nil {
		w.Close()
		return nil, err
	}
	return sink, nil
}

// Path returns the destination the sink was opened on.
func (s *Sink) Path() string {
	return s.dest
}

// Write appends raw HTML.
func (s *Sink) Write(text string) error {
	if s.closed {
		return ErrSinkClosed
	}
	if _, err := io.WriteString(s.w, text); err != nil {
		return fmt.Errorf("failed to write html output %s: %w", s.dest, err)
	}
	if s.archive != nil {
		s.content.WriteString(text)
	}
	return nil
}

// WriteStatement appends stmt as a highlighted heading.
func (s *Sink) WriteStatement(stmt string) error {
	return s.Write("<h2>" + HighlightSQL(stmt) + "</h2>\n")
}

// Close writes the footer, closes the destination and archives the report.
// Closing twice is a no-op.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}

	var errs []error
	if err := s.Write(fmt.Sprintf(footerTemplate, s.now().Format(FooterTimeLayout))); err != nil {
		errs = append(errs, err)
	}
	s.closed = true

	if err := s.w.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close html output %s: %w", s.dest, err))
	}

	if s.archive != nil {
		name := archiveName(s.dest)
		message := fmt.Sprintf("report %s closed at %s", name, s.now().Format(time.RFC3339))
		if _, err := s.archive.Commit(name, s.content.Bytes(), message); err != nil {
			errs = append(errs, fmt.Errorf("failed to archive %s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}
