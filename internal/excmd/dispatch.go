// Package excmd implements the Ex-command dispatcher (spec.md §4.5): range
// parsing, name resolution against builtin and user command tables, macro
// expansion, and user `:command` definitions. Grounded on
// router.Router.Route's alias-vs-builtin split
// (executeAlias/executeCommand) and config.Manager's
// ParseAlias/GetAliasCommands "definition re-enters dispatch" shape.
package excmd

import "strings"

// Dispatcher parses and runs one colon-command line against a Registry.
type Dispatcher struct {
	Registry *Registry
	Resolver LineResolver
	Ctx      MacroContext
}

// NewDispatcher wires a dispatcher over an already-populated registry.
func NewDispatcher(reg *Registry, resolver LineResolver, ctx MacroContext) *Dispatcher {
	return &Dispatcher{Registry: reg, Resolver: resolver, Ctx: ctx}
}

// Execute parses line as one Ex command (without its leading `:`) and
// runs it. It is also how a user-defined command's body re-enters
// dispatch after substitution.
func (d *Dispatcher) Execute(line string) error {
	begin, end, hasRange, rest, err := ParseRange(line, d.Resolver)
	if err != nil {
		return err
	}

	trimmed := strings.TrimLeft(rest, " ")
	var name string
	var bang, qmark bool
	var args string
	if strings.HasPrefix(trimmed, "!") {
		// `.!` form (spec.md §4.5): `[range]!external-command`, not a named
		// command followed by a bang suffix.
		name = "!"
		args = trimmed[1:]
	} else {
		name, bang, qmark, args = splitNameBangArgs(trimmed)
	}

	def, err := d.Registry.Resolve(name)
	if err != nil {
		return err
	}
	if hasRange && !def.Flags.AllowRange {
		return ErrRangeNotAllowed
	}
	if bang && !def.Flags.AllowBang {
		return ErrBangNotAllowed
	}

	var directives Directives
	if def.Flags.ExpandMacros {
		args, directives, err = Expand(args, d.Ctx)
		if err != nil {
			return err
		}
	}

	argv := tokenize(args, def.Flags.Quote)
	if len(argv) < def.Flags.MinArgs {
		return ErrTooFewArgs
	}
	if def.Flags.MaxArgs >= 0 && len(argv) > def.Flags.MaxArgs {
		return ErrTooManyArgs
	}

	info := &CmdInfo{
		Begin: begin, End: end, HasRange: hasRange,
		Bang: bang, QMark: qmark,
		Args: args, Argv: argv,
		Directives: directives,
	}
	return d.invoke(def, info)
}

func (d *Dispatcher) invoke(def *CommandDef, info *CmdInfo) error {
	if def.body != "" {
		if def.inUse {
			return ErrRecursiveCommand
		}
		def.inUse = true
		defer func() { def.inUse = false }()
		body := def.body
		if info.Args != "" {
			body = body + " " + info.Args
		}
		return d.Execute(body)
	}
	if def.Handler == nil {
		return nil
	}
	return def.Handler(info)
}

// splitNameBangArgs splits "name[!][?][ args]" (spec.md §4.5).
func splitNameBangArgs(s string) (name string, bang, qmark bool, args string) {
	i := 0
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	name = s[:i]
	for i < len(s) {
		switch {
		case s[i] == '!' && !bang:
			bang = true
			i++
		case s[i] == '?' && !qmark:
			qmark = true
			i++
		default:
			args = strings.TrimLeft(s[i:], " ")
			return
		}
	}
	return
}

func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}
