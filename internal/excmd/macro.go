package excmd

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// MacroContext supplies the filename/path text behind the `%`-macros
// (spec.md §4.5). internal/app implements it against the active/other
// Pane.
type MacroContext interface {
	CurrentFile() string   // %c: absolute path of the file under the cursor
	OtherFile() string     // %C: same, in the other pane
	CurrentDir() string    // %d
	OtherDir() string      // %D
	SelectedFiles() []string      // %f
	OtherSelectedFiles() []string // %F
	UserArgs() string             // %a: the command's own argument text, passed through
}

// Directives reports which of the window-placement macros (%m %M %s %u)
// appeared; these aren't textual substitutions, they tell the command
// runner (external collaborator) where to route output.
type Directives struct {
	RunInMenu        bool // %m
	MenuWithStats    bool // %M
	StatsWindow      bool // %s
	ThroughSplitter  bool // %u
}

type modifier struct {
	kind byte // 'p' '~' '.' 'h' 't' 'r' 'e' 's' 'g' (g = :gs)
	pat  string
	sub  string
}

// Expand rewrites args, substituting %-macros and applying any trailing
// filename modifiers (`:p :~ :. :h :t :r :e :s/pat/sub/ :gs/pat/sub/`,
// applied left to right as written) to each substituted path.
func Expand(args string, ctx MacroContext) (string, Directives, error) {
	var out strings.Builder
	var dir Directives
	i := 0
	for i < len(args) {
		c := args[i]
		if c != '%' || i+1 >= len(args) {
			out.WriteByte(c)
			i++
			continue
		}
		letter := args[i+1]
		i += 2

		switch letter {
		case '%':
			out.WriteByte('%')
			continue
		case 'm':
			dir.RunInMenu = true
			continue
		case 'M':
			dir.MenuWithStats = true
			continue
		case 's':
			dir.StatsWindow = true
			continue
		case 'u':
			dir.ThroughSplitter = true
			continue
		case 'a':
			out.WriteString(ctx.UserArgs())
			continue
		}

		mods, n, err := parseModifiers(args[i:])
		if err != nil {
			return "", dir, err
		}
		i += n

		switch letter {
		case 'f':
			if err := writePaths(&out, ctx.SelectedFiles(), mods); err != nil {
				return "", dir, err
			}
		case 'F':
			if err := writePaths(&out, ctx.OtherSelectedFiles(), mods); err != nil {
				return "", dir, err
			}
		case 'c':
			p, err := applyModifiers(ctx.CurrentFile(), mods)
			if err != nil {
				return "", dir, err
			}
			out.WriteString(p)
		case 'C':
			p, err := applyModifiers(ctx.OtherFile(), mods)
			if err != nil {
				return "", dir, err
			}
			out.WriteString(p)
		case 'd':
			p, err := applyModifiers(ctx.CurrentDir(), mods)
			if err != nil {
				return "", dir, err
			}
			out.WriteString(p)
		case 'D':
			p, err := applyModifiers(ctx.OtherDir(), mods)
			if err != nil {
				return "", dir, err
			}
			out.WriteString(p)
		default:
			out.WriteByte('%')
			out.WriteByte(letter)
		}
	}
	return out.String(), dir, nil
}

func writePaths(out *strings.Builder, paths []string, mods []modifier) error {
	for i, p := range paths {
		if i > 0 {
			out.WriteByte(' ')
		}
		p2, err := applyModifiers(p, mods)
		if err != nil {
			return err
		}
		out.WriteString(p2)
	}
	return nil
}

// parseModifiers reads consecutive `:x`/`:s/pat/sub/`/`:gs/pat/sub/`
// modifiers from the start of s, returning how many bytes were consumed.
func parseModifiers(s string) ([]modifier, int, error) {
	var mods []modifier
	pos := 0
	for pos < len(s) && s[pos] == ':' {
		pos++
		if pos >= len(s) {
			return nil, pos, ErrUnknownModifier
		}
		switch s[pos] {
		case 'p', '~', '.', 'h', 't', 'r', 'e':
			mods = append(mods, modifier{kind: s[pos]})
			pos++
		case 's':
			pos++
			pat, sub, n, err := parseSubst(s[pos:])
			if err != nil {
				return nil, pos, err
			}
			mods = append(mods, modifier{kind: 's', pat: pat, sub: sub})
			pos += n
		case 'g':
			if pos+1 >= len(s) || s[pos+1] != 's' {
				return nil, pos, ErrUnknownModifier
			}
			pos += 2
			pat, sub, n, err := parseSubst(s[pos:])
			if err != nil {
				return nil, pos, err
			}
			mods = append(mods, modifier{kind: 'g', pat: pat, sub: sub})
			pos += n
		default:
			return nil, pos, ErrUnknownModifier
		}
	}
	return mods, pos, nil
}

// parseSubst reads "/pat/sub/" (the delimiter after :s or :gs), returning
// the consumed byte count relative to s.
func parseSubst(s string) (pat, sub string, n int, err error) {
	if len(s) == 0 || s[0] != '/' {
		return "", "", 0, ErrUnknownModifier
	}
	parts := make([]string, 0, 2)
	start := 1
	pos := 1
	for len(parts) < 2 {
		if pos >= len(s) {
			return "", "", 0, ErrUnknownModifier
		}
		if s[pos] == '\\' && pos+1 < len(s) {
			pos += 2
			continue
		}
		if s[pos] == '/' {
			parts = append(parts, strings.ReplaceAll(s[start:pos], `\/`, "/"))
			start = pos + 1
			pos++
			continue
		}
		pos++
	}
	return parts[0], parts[1], pos, nil
}

func applyModifiers(path string, mods []modifier) (string, error) {
	for _, m := range mods {
		var err error
		path, err = applyModifier(path, m)
		if err != nil {
			return "", err
		}
	}
	return path, nil
}

func applyModifier(path string, m modifier) (string, error) {
	switch m.kind {
	case 'p':
		if filepath.IsAbs(path) {
			return path, nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return path, nil
		}
		return abs, nil
	case '~':
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return path, nil
		}
		if strings.HasPrefix(path, home) {
			return "~" + strings.TrimPrefix(path, home), nil
		}
		return path, nil
	case '.':
		cwd, err := os.Getwd()
		if err != nil {
			return path, nil
		}
		rel, err := filepath.Rel(cwd, path)
		if err != nil {
			return path, nil
		}
		return rel, nil
	case 'h':
		return filepath.Dir(path), nil
	case 't':
		return filepath.Base(path), nil
	case 'r':
		ext := filepath.Ext(path)
		return strings.TrimSuffix(path, ext), nil
	case 'e':
		ext := filepath.Ext(path)
		return strings.TrimPrefix(ext, "."), nil
	case 's', 'g':
		re, err := regexp.Compile(m.pat)
		if err != nil {
			return "", err
		}
		if m.kind == 'g' {
			return re.ReplaceAllString(path, m.sub), nil
		}
		replaced := false
		return re.ReplaceAllStringFunc(path, func(match string) string {
			if replaced {
				return match
			}
			replaced = true
			return re.ReplaceAllString(match, m.sub)
		}), nil
	}
	return path, nil
}
