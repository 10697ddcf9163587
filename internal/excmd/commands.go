package excmd

import "strings"

// RegisterUserCommandBuiltins installs `:command` and `:delcommand`
// (spec.md §4.5's user-command story) onto reg as ordinary dispatched
// commands, so defining/undefining a command round-trips through the same
// Registry it mutates.
func RegisterUserCommandBuiltins(reg *Registry) {
	reg.DefineBuiltin(CommandDef{
		Name: "command", Abbr: "com",
		Flags: Flags{MinArgs: 2, MaxArgs: -1},
		Handler: func(info *CmdInfo) error {
			if len(info.Argv) < 2 {
				return ErrTooFewArgs
			}
			name := info.Argv[0]
			body := strings.Join(info.Argv[1:], " ")
			reg.DefineUser(name, body, Flags{AllowBang: true, ExpandMacros: true, MaxArgs: -1})
			return nil
		},
	})
	reg.DefineBuiltin(CommandDef{
		Name: "delcommand", Abbr: "delc",
		Flags: Flags{MinArgs: 1, MaxArgs: 1},
		Handler: func(info *CmdInfo) error {
			if !reg.Undefine(info.Argv[0]) {
				return ErrUnknownCommand
			}
			return nil
		},
	})
}
