// Package report writes the HTML mirror of a shell session.
//
// A Sink is opened on a destination, receives the fixed page header, then
// statement headings and result tables, and finally the footer with a
// timestamp when it is closed:
//
//	opener := report.NewOpener()
//	sink, err := opener.Open("session.html")
//	if err != nil {
//	    return err
//	}
//	sink.WriteStatement("SELECT * FROM users")
//	sink.Write(table.RenderHTML(rs))
//	sink.Close()
//
// # Destinations
//
// Destinations are local paths (optionally prefixed with file://) written
// through a billy filesystem, or s3://bucket/key URLs. S3 reports are
// buffered and uploaded when the sink is closed.
//
// # Archive
//
// When the Opener carries an Archive, every closed report is also committed
// to a git repository, so earlier versions of a report stay available.
package report
