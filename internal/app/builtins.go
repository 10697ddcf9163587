package app

import (
	"os"
	"strings"

	"github.com/vifm-go/vifm/internal/excmd"
	"github.com/vifm-go/vifm/internal/fsops"
	"github.com/vifm-go/vifm/internal/vifmerr"
)

// buildDispatcher assembles the Ex-command Registry/Dispatcher pair and
// installs the builtin commands spec.md §4.5 implies a working file manager
// needs beyond the dispatch mechanics themselves: quitting, changing
// directory, window management, and running a shell command. `:command`/
// `:delcommand` come from internal/excmd's own RegisterUserCommandBuiltins.
//
// Grounded on router/router.go's flat name→handler table (Route), adapted
// from git subcommand dispatch to Ex-command dispatch.
func (c *Context) buildDispatcher() {
	reg := excmd.NewRegistry()
	excmd.RegisterUserCommandBuiltins(reg)

	reg.DefineBuiltin(excmd.CommandDef{
		Name: "quit", Abbr: "q",
		Flags:   excmd.Flags{AllowBang: true},
		Handler: func(*excmd.CmdInfo) error { c.Loop.Stop(); return nil },
	})
	reg.DefineBuiltin(excmd.CommandDef{
		Name: "quitall", Abbr: "qa",
		Flags:   excmd.Flags{AllowBang: true},
		Handler: func(*excmd.CmdInfo) error { c.Loop.Stop(); return nil },
	})
	reg.DefineBuiltin(excmd.CommandDef{
		Name: "xall", Abbr: "xa",
		Handler: func(*excmd.CmdInfo) error {
			c.Loop.Stop()
			return c.Save()
		},
	})
	reg.DefineBuiltin(excmd.CommandDef{
		Name: "write", Abbr: "w",
		Handler: func(*excmd.CmdInfo) error { return c.Save() },
	})

	reg.DefineBuiltin(excmd.CommandDef{
		Name: "cd", Abbr: "cd",
		Flags:   excmd.Flags{MinArgs: 0, MaxArgs: 1, ExpandMacros: true},
		Handler: func(info *excmd.CmdInfo) error { return c.changeDir(info) },
	})
	reg.DefineBuiltin(excmd.CommandDef{
		Name: "only", Abbr: "on",
		Handler: func(*excmd.CmdInfo) error { c.Layout.ToggleMaximize(); return nil },
	})
	reg.DefineBuiltin(excmd.CommandDef{
		Name: "split", Abbr: "sp",
		Handler: func(*excmd.CmdInfo) error { c.Layout.SetSplit('s'); return nil },
	})
	reg.DefineBuiltin(excmd.CommandDef{
		Name: "vsplit", Abbr: "vs",
		Handler: func(*excmd.CmdInfo) error { c.Layout.SetSplit('v'); return nil },
	})

	reg.DefineBuiltin(excmd.CommandDef{
		Name: "!", Abbr: "!",
		Flags:   excmd.Flags{AllowRange: true, ExpandMacros: true, MaxArgs: -1},
		Handler: func(info *excmd.CmdInfo) error {
			args := strings.TrimSpace(info.Args)
			if background := strings.HasSuffix(args, "&"); background {
				return c.runShell(strings.TrimSpace(strings.TrimSuffix(args, "&")), true)
			}
			return c.runShell(args, false)
		},
	})
	reg.DefineBuiltin(excmd.CommandDef{
		Name: "set", Abbr: "se",
		Flags: excmd.Flags{MinArgs: 1, MaxArgs: 1},
		Handler: func(info *excmd.CmdInfo) error {
			option, value, _ := strings.Cut(info.Argv[0], "=")
			return c.RC.Set(option, value)
		},
	})

	c.Registry = reg
	c.Dispatcher = excmd.NewDispatcher(reg, lineResolver{ctx: c}, macroContext{ctx: c})
}

func (c *Context) changeDir(info *excmd.CmdInfo) error {
	dir := info.Args
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = home
	}
	return c.Active().Load(dir, false)
}

// runShell spawns cmdline through the ProcessRunner, in the background
// (spec.md §5/§6) when background is true, tracked by the job table so the
// main loop's pre-hook reaps it instead of blocking the UI thread.
func (c *Context) runShell(cmdline string, background bool) error {
	job, err := c.Runner.Spawn(cmdline, fsops.SpawnOpts{Background: background})
	if err != nil {
		return vifmerr.New("run_shell", vifmerr.OperationRefused, err)
	}
	if background {
		c.Jobs.Track(c.Runner, job)
		return nil
	}
	return c.Runner.Wait(job)
}
