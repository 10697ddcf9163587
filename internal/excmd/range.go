package excmd

import (
	"strconv"

	"github.com/vifm-go/vifm/internal/vifmerr"
)

// LineResolver answers the line numbers spec.md §4.5's range addresses
// need: the current cursor line, the last line, and bookmark lookup.
// internal/app wires this against the active Pane and the mark table.
type LineResolver interface {
	CurrentLine() int
	LastLine() int
	MarkLine(name rune) (int, bool)
}

// parseAddress reads one range address (`.`, `$`, an integer, or `'mark`)
// at s[*pos], plus any trailing +N/-N offsets, advancing *pos past what it
// consumed. ok is false if s[*pos] starts no address (range is omitted).
func parseAddress(s string, pos *int, r LineResolver) (line int, ok bool, err error) {
	if *pos >= len(s) {
		return 0, false, nil
	}
	switch c := s[*pos]; {
	case c == '.':
		*pos++
		line, ok = r.CurrentLine(), true
	case c == '$':
		*pos++
		line, ok = r.LastLine(), true
	case c == '\'':
		*pos++
		if *pos >= len(s) {
			return 0, false, vifmerr.New("excmd.ParseRange", vifmerr.InputRejected, ErrBadRange)
		}
		mark := rune(s[*pos])
		*pos++
		ln, found := r.MarkLine(mark)
		if !found {
			return 0, false, vifmerr.New("excmd.ParseRange", vifmerr.OperationRefused, ErrUnknownMark)
		}
		line, ok = ln, true
	case c >= '0' && c <= '9':
		start := *pos
		for *pos < len(s) && s[*pos] >= '0' && s[*pos] <= '9' {
			*pos++
		}
		n, convErr := strconv.Atoi(s[start:*pos])
		if convErr != nil {
			return 0, false, vifmerr.New("excmd.ParseRange", vifmerr.InputRejected, ErrBadRange)
		}
		line, ok = n, true
	default:
		return 0, false, nil
	}

	for *pos < len(s) && (s[*pos] == '+' || s[*pos] == '-') {
		sign := 1
		if s[*pos] == '-' {
			sign = -1
		}
		*pos++
		start := *pos
		for *pos < len(s) && s[*pos] >= '0' && s[*pos] <= '9' {
			*pos++
		}
		n := 1
		if *pos > start {
			var convErr error
			n, convErr = strconv.Atoi(s[start:*pos])
			if convErr != nil {
				return 0, false, vifmerr.New("excmd.ParseRange", vifmerr.InputRejected, ErrBadRange)
			}
		}
		line += sign * n
	}
	return line, ok, nil
}

// ParseRange reads a leading range off s: `addr1,addr2`, `addr1;addr2`, or
// a lone `%` meaning `1,$` (spec.md §4.5). It returns the remainder of the
// line unconsumed. hasRange is false when s carries no range at all, in
// which case begin==end==r.CurrentLine(), the "current line" default.
func ParseRange(s string, r LineResolver) (begin, end int, hasRange bool, rest string, err error) {
	pos := 0
	for pos < len(s) && s[pos] == ' ' {
		pos++
	}
	if pos < len(s) && s[pos] == '%' {
		return 1, r.LastLine(), true, s[pos+1:], nil
	}

	begin, ok, err := parseAddress(s, &pos, r)
	if err != nil {
		return 0, 0, false, s, err
	}
	if !ok {
		return r.CurrentLine(), r.CurrentLine(), false, s, nil
	}
	end = begin

	if pos < len(s) && (s[pos] == ',' || s[pos] == ';') {
		pos++
		end2, ok2, err2 := parseAddress(s, &pos, r)
		if err2 != nil {
			return 0, 0, false, s, err2
		}
		if ok2 {
			end = end2
		}
	}
	return begin, end, true, s[pos:], nil
}
