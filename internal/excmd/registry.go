package excmd

import (
	"sort"
	"strings"
)

// Flags controls how the dispatcher treats one command's range, bang, and
// argument text (spec.md §4.5).
type Flags struct {
	AllowRange        bool
	AllowBang         bool
	ExpandMacros      bool
	ImplicitSelection bool // no explicit range -> caller acts on the pane's selection
	Quote             bool // quote-aware arg tokenizing (tokenize's quote flag)
	MinArgs           int
	MaxArgs           int // -1 = unbounded
}

// CmdInfo is the parsed form of one Ex command invocation (spec.md §4.5),
// handed to its Handler.
type CmdInfo struct {
	Begin, End int
	HasRange   bool
	Bang       bool
	QMark      bool
	Args       string // raw argument text, after macro expansion
	Argv       []string
	Directives Directives
}

// Handler executes one resolved Ex command.
type Handler func(*CmdInfo) error

// CommandDef is one entry in the builtin or user command table.
type CommandDef struct {
	Name    string
	Abbr    string // shortest prefix that still resolves to this command
	Flags   Flags
	Handler Handler

	body  string // user-defined body; set only for :command-defined entries
	inUse bool   // recursion guard (spec.md §4.5)
}

// matches reports whether typed is a valid abbreviation of this command,
// honouring its declared Abbr floor (the shortest allowed prefix).
func (c *CommandDef) matches(typed string) bool {
	if typed == "" || len(typed) > len(c.Name) {
		return false
	}
	return strings.HasPrefix(c.Name, typed) && len(typed) >= len(c.Abbr)
}

// Registry holds the sorted builtin command table plus a single user
// command table shared by all modes (spec.md §4.5). Grounded on router.Route's
// ConfigManager.GetConfig().IsAlias/executeAlias split between builtin and
// user-defined dispatch.
type Registry struct {
	builtin []*CommandDef
	user    map[string]*CommandDef
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{user: make(map[string]*CommandDef)}
}

// DefineBuiltin installs a core command; call during startup wiring only.
func (r *Registry) DefineBuiltin(def CommandDef) {
	d := def
	r.builtin = append(r.builtin, &d)
	sort.Slice(r.builtin, func(i, j int) bool { return r.builtin[i].Name < r.builtin[j].Name })
}

// DefineUser implements `:command name body` (spec.md §4.5).
func (r *Registry) DefineUser(name, body string, flags Flags) {
	r.user[name] = &CommandDef{Name: name, Abbr: name, Flags: flags, body: body}
}

// Undefine implements `:delcommand name`, reporting whether name existed.
func (r *Registry) Undefine(name string) bool {
	if _, ok := r.user[name]; ok {
		delete(r.user, name)
		return true
	}
	return false
}

// HasUser reports whether name is currently a user-defined command.
func (r *Registry) HasUser(name string) bool {
	_, ok := r.user[name]
	return ok
}

// Resolve finds the command typed abbreviates: an exact user-command
// match first, then an exact builtin match, then the unique prefix match
// across both tables (an ambiguous prefix is an error, spec.md §4.5).
func (r *Registry) Resolve(typed string) (*CommandDef, error) {
	if d, ok := r.user[typed]; ok {
		return d, nil
	}
	for _, d := range r.builtin {
		if d.Name == typed {
			return d, nil
		}
	}
	var found *CommandDef
	check := func(d *CommandDef) error {
		if d.matches(typed) {
			if found != nil && found != d {
				return ErrAmbiguousName
			}
			found = d
		}
		return nil
	}
	for _, d := range r.user {
		if err := check(d); err != nil {
			return nil, err
		}
	}
	for _, d := range r.builtin {
		if err := check(d); err != nil {
			return nil, err
		}
	}
	if found == nil {
		return nil, ErrUnknownCommand
	}
	return found, nil
}
