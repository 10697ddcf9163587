package app

import (
	"os"
	"path/filepath"

	"github.com/vifm-go/vifm/internal/cmdline"
	"github.com/vifm-go/vifm/internal/config"
	"github.com/vifm-go/vifm/internal/excmd"
	"github.com/vifm-go/vifm/internal/fsops"
	"github.com/vifm-go/vifm/internal/history"
	"github.com/vifm-go/vifm/internal/ipc"
	"github.com/vifm-go/vifm/internal/keys"
	"github.com/vifm-go/vifm/internal/modes"
	"github.com/vifm-go/vifm/internal/normal"
	"github.com/vifm-go/vifm/internal/pane"
	"github.com/vifm-go/vifm/internal/registers"
	"github.com/vifm-go/vifm/internal/term"
	"github.com/vifm-go/vifm/internal/vlog"
)

// Context is the single root object spec.md §9's Design Notes call for:
// every collaborator other packages need is a field here, reached
// explicitly rather than through package-level state (Design Notes §9,
// "deeply shared global state").
//
// Grounded on internal/interactive/ui.go's top-level session struct, which
// the teacher threads through every CLI handler; app.Context generalizes
// that shape from one git porcelain session to the two-pane modal state
// spec.md §3 describes.
type Context struct {
	Left, Right *pane.Pane
	Layout      *Layout

	FS     fsops.FileSystem
	Ops    *fsops.FileOps
	Runner *fsops.ProcessRunner
	Jobs   *fsops.JobTable

	Regs  *registers.Store
	Marks *history.Table

	Modes  *modes.Manager
	Engine *keys.Engine
	Normal *normal.Controller

	Registry   *excmd.Registry
	Dispatcher *excmd.Dispatcher

	RC   *config.RCManager
	Info *config.InfoManager
	Log  *vlog.Logger

	Renderer term.Renderer
	Loop     *term.Loop

	// Remote, if set by the caller after New returns, is drained once per
	// frame in preFrame — a --remote invocation's argv arrives on an ipc
	// goroutine and must never touch pane/mode state directly (spec.md §5's
	// single-threaded model), so it is queued exactly like fsops.JobTable.
	Remote *ipc.Inbox

	exHistory, searchHistory, promptHistory *cmdline.History
	cmdSessions                             map[modes.CmdLineKind]*cmdline.Session

	pendingUserArgs string
	status          string
	savedPos        map[modes.CmdLineKind]savedPosition
	noConfigs       bool

	// promptLabel/promptCallback back a modes.Prompt sub-mode opened via
	// OpenPrompt; promptCallback is invoked with the submitted (or, on
	// cancel, empty) text and then cleared.
	promptLabel    string
	promptCallback func(string)

	// lastSearchPattern/lastSearchForward remember the last `/`/`?` search
	// so n/N (spec.md §4.3) can repeat it.
	lastSearchPattern string
	lastSearchForward bool
}

type savedPosition struct {
	dir  string
	pos  int
}

// Active returns whichever pane (Left or Right) currently has focus.
// normal.Controller.Active is the source of truth (windowsAdapter keeps it
// in sync with Layout.ActiveLeft on every Ctrl-W focus change).
func (c *Context) Active() *pane.Pane { return c.Normal.Active }

// Other returns the pane that does not have focus.
func (c *Context) Other() *pane.Pane { return c.Normal.Other }

// New builds a fully-wired Context rooted at leftDir/rightDir, using fs for
// filesystem access, renderer as the screen, and log for structured
// diagnostics (vlog.Disabled() if --logging was not passed). noConfigs
// skips loading the rc/info files (vifm's own `--no-configs`), starting
// from defaults and never touching the user's saved state.
func New(leftDir, rightDir string, fs fsops.FileSystem, renderer term.Renderer, log *vlog.Logger, noConfigs bool) *Context {
	left := pane.New(fs)
	right := pane.New(fs)

	rc := config.NewRCManager()
	if !noConfigs {
		if err := rc.Load(); err != nil {
			log.Error("failed to load rc file", err)
		}
	}
	applyRCToPane(left, rc.RC())
	applyRCToPane(right, rc.RC())

	c := &Context{
		Left:   left,
		Right:  right,
		Layout: NewLayout(),

		FS:     fs,
		Runner: fsops.NewProcessRunner(),
		Jobs:   fsops.NewJobTable(),

		Regs:  registers.NewStore(),
		Marks: history.NewTable(),

		Modes:  modes.NewManager(),
		Engine: keys.NewEngine(),

		RC:   rc,
		Info: config.NewInfoManager(defaultInfoPath()),
		Log:  log,

		exHistory:     cmdline.NewHistory(rc.RC().HistoryLen),
		searchHistory: cmdline.NewHistory(rc.RC().HistoryLen),
		promptHistory: cmdline.NewHistory(rc.RC().HistoryLen),
		cmdSessions:   make(map[modes.CmdLineKind]*cmdline.Session),
		savedPos:      make(map[modes.CmdLineKind]savedPosition),
		noConfigs:     noConfigs,
	}
	c.Engine.TimeoutLen = engineTimeout(rc.RC().TimeoutLen)
	c.Ops = fsops.NewFileOps(fs, rc.RC().TrashDir)
	c.Normal = normal.New(left, right, c.Regs, c.Marks, c.Ops, nil)
	c.Normal.Windows = &windowsAdapter{ctx: c}

	if !noConfigs {
		if err := c.Info.Load(); err != nil {
			log.Error("failed to load info file", err)
		}
	}
	c.applyInfo()

	c.Renderer = renderer

	c.registerKeyTables()
	c.registerModeHooks()
	c.buildDispatcher()

	if err := left.Load(leftDir, false); err != nil {
		log.Error("failed to load left pane", err)
	}
	if err := right.Load(rightDir, false); err != nil {
		log.Error("failed to load right pane", err)
	}

	loop := term.NewLoop(renderer, c.Engine, c.currentKeyMode)
	loop.Pre = c.preFrame
	loop.Post = c.postFrame
	loop.Redraw = c.Redraw
	loop.Jobs = c.Jobs
	loop.OnJobsFinished = c.onJobsFinished
	c.Loop = loop

	return c
}

func defaultInfoPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "vifm", "vifminfo")
}

func applyRCToPane(p *pane.Pane, rc *config.RCFile) {
	p.ScrollOff = rc.ScrollOff
	p.IgnoreCase = rc.IgnoreCase
	p.SmartCase = rc.SmartCase
	p.SetHistoryCap(rc.HistoryLen)
	if keys, err := parseSortCSV(rc.DefaultSort); err == nil {
		p.SortKeys = keys
	}
}

func (c *Context) currentKeyMode() keys.Mode {
	return keyModeFor(c.Modes.Current(), c.Modes.CurrentCmdKind())
}

// Save persists the RC file and info file, called on clean shutdown.
// A --no-configs session never writes back, matching vifm's own behavior.
func (c *Context) Save() error {
	if c.noConfigs {
		return nil
	}
	if err := c.RC.Save(); err != nil {
		return err
	}
	c.captureInfo()
	return c.Info.Save()
}

// SelectFile implements vifm's `--select <path>`: chdir the active pane to
// path's parent directory and position the cursor on path's file.
func (c *Context) SelectFile(path string) error {
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	if err := c.Active().Load(dir, false); err != nil {
		return err
	}
	for i, e := range c.Active().Entries {
		if e.Name == name {
			c.Active().MoveToListPos(i)
			break
		}
	}
	return nil
}
