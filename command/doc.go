// Package command parses shell input lines and dispatches them to
// registered handlers.
//
// A line starting with "." is a meta-command. Internally the dot is replaced
// by the prefix "dot_", so ".schema users" dispatches to the trigger
// "dot_schema" with argument "users". Lines starting with "?" are help
// requests and lines starting with "!" go to the "shell" trigger when one is
// registered. Everything else is split into a leading identifier and the
// remainder; when the identifier is not a registered trigger (an SQL keyword,
// for instance) the whole line goes to the default handler untouched.
//
//	router := command.NewRouter(os.Stdout, func(line string) bool {
//	    return execute(line)
//	})
//	router.Register(command.Registration{
//	    Trigger: "dot_quit",
//	    Doc:     "Exit the program",
//	    Handler: func(string) bool { return true },
//	})
//	done := router.Dispatch(".quit")
//
// Handlers return true to end the session.
package command
