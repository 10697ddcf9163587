// Package app is the root context (spec.md §3, §9 "single root context"):
// it owns both Panes, the Mode Manager, the Key Engine, registers,
// bookmarks, config, and the external collaborators, and wires them
// together instead of leaving any of it as package-level state.
//
// Grounded on internal/interactive/ui.go's top-level struct that threads a
// *Config/*Manager/workflow state through every handler, generalized here
// from a single CLI session object into the two-pane modal application
// state spec.md §3 describes.
package app

import (
	"github.com/vifm-go/vifm/internal/keys"
	"github.com/vifm-go/vifm/internal/modes"
)

// Key Engine mode identifiers. keys.Mode is an opaque int as far as
// internal/keys is concerned; app owns the mapping from modes.Manager's
// richer (Mode, CmdLineKind) pair onto this flat space, since each
// command-line sub-kind binds a distinct key table (Ex edits text
// differently from a search prompt does, per internal/cmdline.Register).
const (
	KeyModeNormal keys.Mode = iota
	KeyModeVisual
	KeyModeEx
	KeyModeMenuEx
	KeyModeSearchFwd
	KeyModeSearchBwd
	KeyModeMenuSearchFwd
	KeyModeMenuSearchBwd
	KeyModeVisualSearchFwd
	KeyModeVisualSearchBwd
	KeyModePrompt
	KeyModeMenu
)

// keyModeFor resolves the active (modes.Mode, modes.CmdLineKind) pair to
// the keys.Mode the Key Engine should dispatch against this frame.
func keyModeFor(m modes.Mode, kind modes.CmdLineKind) keys.Mode {
	switch m {
	case modes.Normal:
		return KeyModeNormal
	case modes.Visual:
		return KeyModeVisual
	case modes.Menu:
		return KeyModeMenu
	case modes.CommandLine:
		switch kind {
		case modes.Ex:
			return KeyModeEx
		case modes.MenuEx:
			return KeyModeMenuEx
		case modes.SearchFwd:
			return KeyModeSearchFwd
		case modes.SearchBwd:
			return KeyModeSearchBwd
		case modes.MenuSearchFwd:
			return KeyModeMenuSearchFwd
		case modes.MenuSearchBwd:
			return KeyModeMenuSearchBwd
		case modes.VisualSearchFwd:
			return KeyModeVisualSearchFwd
		case modes.VisualSearchBwd:
			return KeyModeVisualSearchBwd
		case modes.Prompt:
			return KeyModePrompt
		}
	}
	// Sort/ChangeDialog/AttrDialog/FileInfo/View content is a Non-goal
	// (spec.md §1/§11); their dialogs never register key bindings here, so
	// any unmatched mode simply reuses Normal's table rather than panic.
	return KeyModeNormal
}
