// Package normal supplies the builtin key registrations for Normal and
// Visual mode: motions, operators, put, marks, scroll, filter and window
// primitives (spec.md §4.3).
//
// Grounded on internal/interactive/keys_navigation.go / keys_control.go's
// "one function per physical key, dispatched through a small table" shape,
// generalized from CLI line-editing actions to pane motions/operators.
package normal

import (
	"time"

	"github.com/vifm-go/vifm/internal/history"
	"github.com/vifm-go/vifm/internal/keys"
	"github.com/vifm-go/vifm/internal/pane"
	"github.com/vifm-go/vifm/internal/registers"
)

// FS is the narrow filesystem surface put/delete/rename need, kept as an
// interface here so Controller doesn't import internal/fsops' concrete
// types directly (Design Notes §9: collaborators are named interfaces).
type FS interface {
	Copy(srcDir, name, dstDir string) error
	Move(srcDir, name, dstDir string) error
	Remove(dir, name string, toTrash bool) error
	Rename(dir, oldName, newName string) error
}

// Windows is the split/layout collaborator Ctrl-W commands drive; kept
// separate from Pane since it concerns screen geometry, not listings.
type Windows interface {
	Switch(direction rune)     // h/j/k/l/w
	SetSplit(orientation rune) // s/v
	ToggleMaximize()           // o
	Resize(direction rune, count int)
}

// Controller wires the Pane Model, registers and bookmarks into the motions
// and operators the Key Engine dispatches.
type Controller struct {
	Active  *pane.Pane
	Other   *pane.Pane
	Regs    *registers.Store
	Marks   *history.Table
	FS      FS
	Windows Windows

	Confirm bool // :set confirm — ask before permanent delete

	// AskConfirm, if set, opens a y/n prompt showing message and calls
	// onResolve once the user answers; nil (the default) makes D delete
	// immediately, matching Confirm being off. Set by internal/app, since
	// the prompt sub-mode it drives lives outside this package.
	AskConfirm func(message string, onResolve func(yes bool))

	// OnAsyncError reports an error raised after a handler already
	// returned, e.g. a deletion that only runs once AskConfirm resolves.
	OnAsyncError func(error)

	// VisualExit, if set, pops the Mode Manager back to Normal; called
	// whenever Visual-mode tracking ends (Esc, an operator consuming the
	// selection). Set by internal/app for the same reason as AskConfirm.
	VisualExit func()

	visualAnchor int
	visualActive bool

	lastFindChar  rune
	lastFindFwd   bool
	lastFindWasF  bool // true for f/F, false for t/T (t/T not modelled yet, reserved)

	pendingHalfWindow int // remembered Ctrl-D/Ctrl-U count

	now func() int64
}

// New builds a Controller. now defaults to time.Now().Unix if nil.
func New(active, other *pane.Pane, regs *registers.Store, marks *history.Table, fs FS, win Windows) *Controller {
	return &Controller{
		Active: active, Other: other, Regs: regs, Marks: marks, FS: fs, Windows: win,
		now: func() int64 { return time.Now().Unix() },
	}
}

func clampCount(info keys.KeyInfo) int {
	if info.Count == keys.NoCount || info.Count <= 0 {
		return 1
	}
	return info.Count
}
