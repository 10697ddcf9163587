package excmd

import "errors"

// Sentinel causes. ParseRange wraps its failures with a call site and
// vifmerr.Kind (the module's vifmerr.New(op, kind, err) convention, see
// DESIGN.md); the registry, dispatcher and builtins return them bare.
var (
	ErrBadRange        = errors.New("malformed range")
	ErrUnknownMark      = errors.New("unknown mark")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrAmbiguousName    = errors.New("ambiguous command name")
	ErrRangeNotAllowed  = errors.New("command does not accept a range")
	ErrBangNotAllowed   = errors.New("command does not accept a bang")
	ErrTooFewArgs       = errors.New("too few arguments")
	ErrTooManyArgs       = errors.New("too many arguments")
	ErrRecursiveCommand = errors.New("recursive user command")
	ErrUnknownModifier  = errors.New("unknown filename modifier")
)
