// Package main is the entry point for vifm, wiring internal/app's root
// Context to a real terminal and the process's argv/signals.
//
// Grounded on the teacher's own main.go: RunApp/GetVersionInfo's
// separation of "parse argv, build collaborators, run" from "actually
// call os.Exit" for testability, and its ldflags-then-build-info version
// fallback, adapted from git.Client/router.Router to app.Context.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/vifm-go/vifm/internal/app"
	"github.com/vifm-go/vifm/internal/fsops"
	"github.com/vifm-go/vifm/internal/ipc"
	"github.com/vifm-go/vifm/internal/term"
	"github.com/vifm-go/vifm/internal/vlog"
)

var (
	version string
	commit  string
)

// GetVersionInfo reports the running build's version/commit, preferring
// ldflags-injected values and falling back to `go install`'s embedded
// module build info, exactly as the teacher's own main.go does.
func GetVersionInfo() (string, string) {
	if version != "" || commit != "" {
		return version, commit
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		v := bi.Main.Version
		if v == "(devel)" {
			v = ""
		}
		var rev string
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) >= 7 {
					rev = s.Value[:7]
				} else {
					rev = s.Value
				}
				break
			}
		}
		return v, rev
	}
	return "", ""
}

func main() {
	os.Exit(RunApp(os.Args[1:]))
}

// RunApp contains the main application logic, separated from main for
// testability (spec.md §6's exit codes: 0 success, 1 argument error,
// other non-zero for startup failures).
func RunApp(args []string) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if opts.help {
		printUsage(os.Stdout)
		return 0
	}
	if opts.version {
		v, c := GetVersionInfo()
		fmt.Printf("vifm %s (%s)\n", orUnknown(v), orUnknown(c))
		return 0
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vifm: cannot determine home directory:", err)
		return 2
	}
	sockPath := ipc.SocketPath(home)

	if opts.remote {
		if err := ipc.Send(sockPath, opts.remoteArgs); err != nil {
			fmt.Fprintln(os.Stderr, "vifm --remote:", err)
			return 2
		}
		return 0
	}

	log := vlog.Disabled()
	if opts.logging {
		l, err := vlog.New(filepath.Join(home, ".config", "vifm", "log"))
		if err != nil {
			fmt.Fprintln(os.Stderr, "vifm: failed to open log:", err)
			return 3
		}
		log = l
	}

	leftDir, rightDir := resolvePaneDirs(opts.paths)

	renderer := term.NewDefaultRenderer()
	if err := renderer.EnterRawMode(); err != nil {
		fmt.Fprintln(os.Stderr, "vifm: failed to initialize terminal:", err)
		return 4
	}
	defer renderer.Restore()

	ctx := app.New(leftDir, rightDir, fsops.NewOSFileSystem(), renderer, log, opts.noConfigs)

	if opts.selectPath != "" {
		if err := ctx.SelectFile(opts.selectPath); err != nil {
			log.Error("--select failed", err)
		}
	}
	for _, c := range opts.startupCmds {
		if err := ctx.Dispatcher.Execute(c); err != nil {
			log.Error("startup command failed", err)
		}
	}

	if !opts.noConfigs {
		inbox := ipc.NewInbox()
		if server, err := ipc.Listen(sockPath, inbox); err != nil {
			log.Error("failed to start remote listener", err)
		} else {
			ctx.Remote = inbox
			defer server.Close()
		}
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ctx.Run(runCtx); err != nil && runCtx.Err() == nil {
		fmt.Fprintln(os.Stderr, "vifm:", err)
		return 5
	}
	return 0
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, `usage: vifm [--select] [<path>]... [--remote] [-c <cmd>|+<cmd>] [--logging] [--no-configs] [-v|--version] [-h|--help]`)
}

// options holds vifm's parsed CLI surface (spec.md §6).
type options struct {
	paths       []string
	selectPath  string
	remote      bool
	remoteArgs  []string
	startupCmds []string
	logging     bool
	noConfigs   bool
	version     bool
	help        bool
}

// parseArgs hand-parses argv the way router.Router hand-dispatches
// subcommand names — no third-party flags library appears anywhere in
// the example pack to ground one on (see DESIGN.md). When --remote is
// present, every other token is shipped verbatim to the already-running
// instance rather than interpreted locally: interpretation happens there,
// in Context.HandleRemoteArgs.
func parseArgs(args []string) (*options, error) {
	for i, a := range args {
		if a == "--remote" {
			remainder := make([]string, 0, len(args)-1)
			remainder = append(remainder, args[:i]...)
			remainder = append(remainder, args[i+1:]...)
			return &options{remote: true, remoteArgs: remainder}, nil
		}
	}

	opts := &options{}
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--select":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("vifm: --select requires a path")
			}
			i++
			opts.selectPath = args[i]
			opts.paths = append(opts.paths, args[i])
		case a == "-c":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("vifm: -c requires a command")
			}
			i++
			opts.startupCmds = append(opts.startupCmds, args[i])
		case strings.HasPrefix(a, "+") && len(a) > 1:
			opts.startupCmds = append(opts.startupCmds, a[1:])
		case a == "--logging":
			opts.logging = true
		case a == "--no-configs":
			opts.noConfigs = true
		case a == "-v" || a == "--version":
			opts.version = true
		case a == "-h" || a == "--help":
			opts.help = true
		case strings.HasPrefix(a, "-"):
			return nil, fmt.Errorf("vifm: unknown option %q", a)
		default:
			opts.paths = append(opts.paths, a)
		}
	}
	return opts, nil
}

// resolvePaneDirs maps spec.md §6's "[<path>]..." onto the two panes: no
// paths opens both on the working directory, one path opens the left pane
// there and leaves the right on the working directory, two or more use
// the first two and ignore the rest.
func resolvePaneDirs(paths []string) (left, right string) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	left, right = cwd, cwd
	if len(paths) >= 1 {
		left = paths[0]
	}
	if len(paths) >= 2 {
		right = paths[1]
	}
	return left, right
}
