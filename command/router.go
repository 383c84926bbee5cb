package command

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	// MetaChar starts a meta-command on the input line.
	MetaChar = '.'
	// DotPrefix is the internal trigger prefix that stands for MetaChar.
	DotPrefix = "dot_"

	HelpTrigger  = "help"
	ShellTrigger = "shell"
	// EOFTrigger is dispatched when the input ends.
	EOFTrigger = "EOF"
)

var (
	ErrEmptyLine   = errors.New("empty line")
	ErrUnparseable = errors.New("unparseable line")
)

// Handler runs a command with its trimmed argument and reports whether the
// session should end.
type Handler func(arg string) bool

// Registration binds a trigger to its handler and help texts.
type Registration struct {
	Trigger string
	Handler Handler
	Doc     string        // one-line help
	Help    func() string // long-form help, optional
}

// Router holds the static command table of a session.
type Router struct {
	out      io.Writer
	registry map[string]Registration
	topics   map[string]func() string
	fallback Handler

	DocLeader   string
	DocHeader   string
	MiscHeader  string
	UndocHeader string
	NoHelp      string
	Ruler       string
}

// NewRouter creates a router whose unknown triggers go to fallback with the
// full input line. The help command is registered automatically.
func NewRouter(out io.Writer, fallback Handler) *Router {
	r := &Router{
		out:         out,
		registry:    make(map[string]Registration),
		topics:      make(map[string]func() string),
		fallback:    fallback,
		DocHeader:   "Documented commands (type help <topic>):",
		MiscHeader:  "Miscellaneous help topics:",
		UndocHeader: "Undocumented commands:",
		NoHelp:      "*** No help on %s",
		Ruler:       "=",
	}

	r.Register(Registration{
		Trigger: HelpTrigger,
		Doc:     `List available commands with "help" or detailed help with "help cmd".`,
		Handler: func(arg string) bool {
			fmt.Fprintln(r.out, r.Help(arg))
			return false
		},
	})

	return r
}

// Register adds a command. Registration happens once at start-up, so an
// empty or duplicate trigger is a programming error and panics.
func (r *Router) Register(reg Registration) {
	if reg.Trigger == "" {
		panic("command: empty trigger")
	}
	if reg.Handler == nil {
		panic(fmt.Sprintf("command: nil handler for %q", reg.Trigger))
	}
	if _, exists := r.registry[reg.Trigger]; exists {
		panic(fmt.Sprintf("command: duplicate trigger %q", reg.Trigger))
	}
	r.registry[reg.Trigger] = reg
}

// RegisterTopic adds a long-form help topic. A topic with the same name as a
// trigger is that trigger's long-form help.
func (r *Router) RegisterTopic(name string, help func() string) {
	r.topics[name] = help
}

// Lookup returns the registration of trigger.
func (r *Router) Lookup(trigger string) (Registration, bool) {
	reg, ok := r.registry[trigger]
	return reg, ok
}

// Triggers returns all registered triggers, sorted.
func (r *Router) Triggers() []string {
	triggers := make([]string, 0, len(r.registry))
	for trigger := range r.registry {
		triggers = append(triggers, trigger)
	}
	sort.Strings(triggers)
	return triggers
}

// Parse splits a line into trigger and argument.
//
// Blank lines return ErrEmptyLine. A "!" line without a registered shell
// trigger returns ErrUnparseable.
func (r *Router) Parse(line string) (trigger, arg string, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", ErrEmptyLine
	}

	switch line[0] {
	case '?':
		line = HelpTrigger + " " + line[1:]
	case '!':
		if _, ok := r.registry[ShellTrigger]; !ok {
			return "", "", ErrUnparseable
		}
		line = ShellTrigger + " " + line[1:]
	case MetaChar:
		line = DotPrefix + line[1:]
	}

	i := 0
	for i < len(line) && isIdentChar(line[i]) {
		i++
	}
	return line[:i], strings.TrimSpace(line[i:]), nil
}

// Dispatch parses line and runs the matching handler. Unregistered triggers
// hand the original line to the default handler. Blank and unparseable
// lines are ignored. The result is the handler's terminate flag.
func (r *Router) Dispatch(line string) bool {
	trigger, arg, err := r.Parse(line)
	if err != nil {
		return false
	}

	if reg, ok := r.registry[trigger]; ok {
		return reg.Handler(arg)
	}

	if r.fallback == nil {
		return false
	}
	return r.fallback(strings.TrimSpace(line))
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// Dotted converts an internal trigger to its user-facing form:
// "dot_schema" becomes ".schema".
func Dotted(trigger string) string {
	if strings.HasPrefix(trigger, DotPrefix) {
		return string(MetaChar) + trigger[len(DotPrefix):]
	}
	return trigger
}

// Undotted converts a user-facing name to its internal trigger:
// ".schema" becomes "dot_schema".
func Undotted(name string) string {
	if len(name) > 0 && name[0] == MetaChar {
		return DotPrefix + name[1:]
	}
	return name
}
