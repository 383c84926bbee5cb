package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/nickyhof/gadwall"
	"github.com/nickyhof/gadwall/core"
	"github.com/nickyhof/gadwall/report"
)

// Version is set at build time via -ldflags
var Version = "dev"

const usage = "usage: gadwall [flags] <database-file>"

// CLI holds what the process entry needs from its environment.
type CLI struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	interactive bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := &CLI{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		interactive: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
	}
	os.Exit(cli.run(ctx, os.Args[1:]))
}

// run parses args, opens the database and runs the shell until it ends.
// The result is the process exit code.
func (cli *CLI) run(ctx context.Context, args []string) int {
	flags := flag.NewFlagSet("gadwall", flag.ContinueOnError)
	flags.SetOutput(cli.stderr)
	flags.Usage = func() {
		fmt.Fprintln(cli.stderr, usage)
		flags.PrintDefaults()
	}

	driver := flags.String("driver", "duckdb", "Database driver (duckdb or sqlite)")
	frame := flags.String("frame", "", "Initial table frame style (fancy, thin or raw)")
	htmlPath := flags.String("html", "", "Mirror output into this HTML report from the start")
	archiveDir := flags.String("archive", "", "Commit closed HTML reports into a git repository in this directory")
	userName := flags.String("name", "gadwall", "User name for archive commits")
	userEmail := flags.String("email", "shell@gadwall.local", "User email for archive commits")
	s3Region := flags.String("s3-region", "", "AWS region for s3:// reports")
	s3Endpoint := flags.String("s3-endpoint", "", "Custom S3-compatible endpoint for s3:// reports")
	s3AccessKey := flags.String("s3-access-key", "", "S3 access key (default AWS credential chain when empty)")
	s3SecretKey := flags.String("s3-secret-key", "", "S3 secret key")
	noColor := flags.Bool("no-color", false, "Disable coloured output")
	version := flags.Bool("version", false, "Print the version and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *version {
		fmt.Fprintf(cli.stdout, "gadwall version %s\n", Version)
		return 0
	}

	if flags.NArg() != 1 {
		fmt.Fprintln(cli.stderr, usage)
		return 1
	}
	path := flags.Arg(0)

	if err := probe(path); err != nil {
		fmt.Fprintf(cli.stderr, "cannot open database file: %v\n", err)
		return 1
	}

	if *noColor {
		color.NoColor = true
	}

	var s3 *report.S3Config
	if *s3Region != "" || *s3Endpoint != "" || *s3AccessKey != "" || *s3SecretKey != "" {
		s3 = &report.S3Config{
			AccessKey: *s3AccessKey,
			SecretKey: *s3SecretKey,
			Region:    *s3Region,
			Endpoint:  *s3Endpoint,
		}
	}

	instance, err := gadwall.Open(gadwall.Options{
		Driver:     *driver,
		Path:       path,
		ArchiveDir: *archiveDir,
		Identity:   core.Identity{Name: *userName, Email: *userEmail},
		S3:         s3,
	})
	if err != nil {
		fmt.Fprintf(cli.stderr, "Error: %v\n", err)
		return 1
	}

	session, err := instance.Session(gadwall.SessionOptions{
		Out:         cli.stdout,
		Err:         cli.stderr,
		Frame:       *frame,
		HTML:        *htmlPath,
		Interactive: cli.interactive,
		NoColor:     *noColor,
	})
	if err != nil {
		instance.Close()
		fmt.Fprintf(cli.stderr, "Error: %v\n", err)
		return 1
	}

	if err := session.Run(ctx, cli.stdin); err != nil {
		fmt.Fprintf(cli.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// probe checks that path exists and can be opened before any driver gets to
// create it.
func probe(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
