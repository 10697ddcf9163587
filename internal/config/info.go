package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Bookmark is one `'` entry: a mark name plus the directory/file it names.
type Bookmark struct {
	Mark rune
	Dir  string
	File string
}

// FiletypeAssoc is one `.`/`,` entry: an extension bound to a program or
// viewer command.
type FiletypeAssoc struct {
	Ext string
	Cmd string
}

// UserCommand is one `!` entry: a persisted `:command` definition.
type UserCommand struct {
	Name string
	Cmd  string
}

// HistoryEntry is one `d`/`D` per-pane history visit.
type HistoryEntry struct {
	Dir    string
	File   string
	RelPos int
}

// DirSide is one side (left or right pane) of a directory-stack frame.
type DirSide struct {
	Dir  string
	File string
}

// DirStackFrame is one `S`-pair: the left and right pane state pushed
// together by a directory-stack push.
type DirStackFrame struct {
	Left  DirSide
	Right DirSide
}

// TrashEntry is one `t` entry: a trashed file's generated name and
// original path.
type TrashEntry struct {
	Name string
	Path string
}

// Register is one `"` entry: a register's content path.
type Register struct {
	Reg  rune
	Path string
}

// InfoFile is the persisted-state schema (spec.md §6): a line-oriented,
// UTF-8 file where every non-empty, non-`#` line begins with a
// discriminator character naming its schema. Grounded on Manager's
// Load/Save split (load.go/save.go) for the read-whole-file/
// atomic-write-back shape, but hand-parsed line by line rather than
// yaml-decoded, since the discriminator-per-line format isn't a single
// self-describing document — exactly the format spec.md §6 specifies and
// asks implementers to preserve for backward compatibility.
type InfoFile struct {
	Options map[string]string // `=`

	Programs  []FiletypeAssoc // `.`
	Viewers   []FiletypeAssoc // `,`
	Commands  []UserCommand   // `!`
	Bookmarks []Bookmark      // `'`

	ActivePane       byte // `a`: 'l' or 'r'
	QuickView        bool // `q`
	WindowCount      int  // `v`
	SplitOrientation byte // `o`: 'h' or 'v'
	SplitterPos      int  // `m`

	LeftSort  []int // `l`
	RightSort []int // `r`

	LeftHistory  []HistoryEntry // `d`
	RightHistory []HistoryEntry // `D`

	CmdHistory    []string // `:`
	SearchHistory []string // `/`
	PromptHistory []string // `p`

	DirStack []DirStackFrame // `S`, paired two lines at a time

	Trash     []TrashEntry // `t`
	Registers []Register   // `"`

	LeftFilter, RightFilter             string // `f`, `F`
	LeftFilterInvert, RightFilterInvert bool   // `i`, `I`

	ColorScheme string // `c`
}

// NewInfoFile returns an empty, ready-to-populate InfoFile.
func NewInfoFile() *InfoFile {
	return &InfoFile{Options: make(map[string]string)}
}

// ParseInfoFile parses the info-file text format (spec.md §6).
func ParseInfoFile(data string) (*InfoFile, error) {
	lines := strings.Split(data, "\n")
	info := NewInfoFile()
	var pendingSide *DirSide
	i := 0

	next := func() (string, bool) {
		if i >= len(lines) {
			return "", false
		}
		l := lines[i]
		i++
		return l, true
	}
	expectCont := func(ctx string) (string, error) {
		l, ok := next()
		if !ok || !strings.HasPrefix(l, "\t") {
			return "", fmt.Errorf("info file: expected a %s continuation line at line %d", ctx, i)
		}
		return l[1:], nil
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		disc := line[0]
		rest := strings.TrimPrefix(line[1:], " ")

		switch disc {
		case '=':
			parts := strings.SplitN(rest, " ", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("info file: malformed option line %q", line)
			}
			info.Options[parts[0]] = parts[1]
		case '.':
			cmd, err := expectCont("program association")
			if err != nil {
				return nil, err
			}
			info.Programs = append(info.Programs, FiletypeAssoc{Ext: rest, Cmd: cmd})
		case ',':
			cmd, err := expectCont("viewer association")
			if err != nil {
				return nil, err
			}
			info.Viewers = append(info.Viewers, FiletypeAssoc{Ext: rest, Cmd: cmd})
		case '!':
			cmd, err := expectCont("user command")
			if err != nil {
				return nil, err
			}
			info.Commands = append(info.Commands, UserCommand{Name: rest, Cmd: cmd})
		case '\'':
			if rest == "" {
				return nil, fmt.Errorf("info file: empty mark name")
			}
			dir, err := expectCont("bookmark directory")
			if err != nil {
				return nil, err
			}
			file, err := expectCont("bookmark file")
			if err != nil {
				return nil, err
			}
			info.Bookmarks = append(info.Bookmarks, Bookmark{Mark: rune(rest[0]), Dir: dir, File: file})
		case 'a':
			if rest != "" {
				info.ActivePane = rest[0]
			}
		case 'q':
			info.QuickView = rest == "1"
		case 'v':
			n, err := strconv.Atoi(rest)
			if err != nil {
				return nil, fmt.Errorf("info file: bad window count %q", rest)
			}
			info.WindowCount = n
		case 'o':
			if rest != "" {
				info.SplitOrientation = rest[0]
			}
		case 'm':
			n, err := strconv.Atoi(rest)
			if err != nil {
				return nil, fmt.Errorf("info file: bad splitter position %q", rest)
			}
			info.SplitterPos = n
		case 'l':
			codes, err := parseSortCSV(rest)
			if err != nil {
				return nil, err
			}
			info.LeftSort = codes
		case 'r':
			codes, err := parseSortCSV(rest)
			if err != nil {
				return nil, err
			}
			info.RightSort = codes
		case 'd', 'D':
			dir := rest
			file, err := expectCont("history file")
			if err != nil {
				return nil, err
			}
			relLine, ok := next()
			if !ok {
				return nil, fmt.Errorf("info file: missing rel-pos line for %c entry", disc)
			}
			rel, err := strconv.Atoi(relLine)
			if err != nil {
				return nil, fmt.Errorf("info file: bad rel-pos %q", relLine)
			}
			entry := HistoryEntry{Dir: dir, File: file, RelPos: rel}
			if disc == 'd' {
				info.LeftHistory = append(info.LeftHistory, entry)
			} else {
				info.RightHistory = append(info.RightHistory, entry)
			}
		case ':':
			info.CmdHistory = append(info.CmdHistory, rest)
		case '/':
			info.SearchHistory = append(info.SearchHistory, rest)
		case 'p':
			info.PromptHistory = append(info.PromptHistory, rest)
		case 'S':
			file, err := expectCont("directory-stack file")
			if err != nil {
				return nil, err
			}
			side := DirSide{Dir: rest, File: file}
			if pendingSide == nil {
				pendingSide = &side
			} else {
				info.DirStack = append(info.DirStack, DirStackFrame{Left: *pendingSide, Right: side})
				pendingSide = nil
			}
		case 't':
			path, err := expectCont("trash path")
			if err != nil {
				return nil, err
			}
			info.Trash = append(info.Trash, TrashEntry{Name: rest, Path: path})
		case '"':
			if rest == "" {
				return nil, fmt.Errorf("info file: empty register entry")
			}
			reg := rune(rest[0])
			path := rest[1:]
			info.Registers = append(info.Registers, Register{Reg: reg, Path: path})
		case 'f':
			info.LeftFilter = rest
		case 'F':
			info.RightFilter = rest
		case 'i':
			info.LeftFilterInvert = rest == "1"
		case 'I':
			info.RightFilterInvert = rest == "1"
		case 'c':
			info.ColorScheme = rest
		default:
			// Unknown discriminator: forward-compatibility, ignore silently.
		}
	}
	return info, nil
}

// Encode serializes info back to the info-file text format, in a fixed
// field order so Parse(Encode(x)) is idempotent.
func (info *InfoFile) Encode() string {
	var b strings.Builder

	keys := make([]string, 0, len(info.Options))
	for k := range info.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "= %s %s\n", k, info.Options[k])
	}

	for _, p := range info.Programs {
		fmt.Fprintf(&b, ". %s\n\t%s\n", p.Ext, p.Cmd)
	}
	for _, v := range info.Viewers {
		fmt.Fprintf(&b, ", %s\n\t%s\n", v.Ext, v.Cmd)
	}
	for _, c := range info.Commands {
		fmt.Fprintf(&b, "! %s\n\t%s\n", c.Name, c.Cmd)
	}
	for _, bm := range info.Bookmarks {
		fmt.Fprintf(&b, "' %c\n\t%s\n\t%s\n", bm.Mark, bm.Dir, bm.File)
	}

	if info.ActivePane != 0 {
		fmt.Fprintf(&b, "a %c\n", info.ActivePane)
	}
	fmt.Fprintf(&b, "q %d\n", boolDigit(info.QuickView))
	if info.WindowCount != 0 {
		fmt.Fprintf(&b, "v %d\n", info.WindowCount)
	}
	if info.SplitOrientation != 0 {
		fmt.Fprintf(&b, "o %c\n", info.SplitOrientation)
	}
	fmt.Fprintf(&b, "m %d\n", info.SplitterPos)

	if len(info.LeftSort) > 0 {
		fmt.Fprintf(&b, "l %s\n", formatSortCSV(info.LeftSort))
	}
	if len(info.RightSort) > 0 {
		fmt.Fprintf(&b, "r %s\n", formatSortCSV(info.RightSort))
	}

	for _, h := range info.LeftHistory {
		fmt.Fprintf(&b, "d %s\n\t%s\n%d\n", h.Dir, h.File, h.RelPos)
	}
	for _, h := range info.RightHistory {
		fmt.Fprintf(&b, "D %s\n\t%s\n%d\n", h.Dir, h.File, h.RelPos)
	}

	for _, c := range info.CmdHistory {
		fmt.Fprintf(&b, ": %s\n", c)
	}
	for _, s := range info.SearchHistory {
		fmt.Fprintf(&b, "/ %s\n", s)
	}
	for _, p := range info.PromptHistory {
		fmt.Fprintf(&b, "p %s\n", p)
	}

	for _, f := range info.DirStack {
		fmt.Fprintf(&b, "S %s\n\t%s\n", f.Left.Dir, f.Left.File)
		fmt.Fprintf(&b, "S %s\n\t%s\n", f.Right.Dir, f.Right.File)
	}

	for _, t := range info.Trash {
		fmt.Fprintf(&b, "t %s\n\t%s\n", t.Name, t.Path)
	}
	for _, r := range info.Registers {
		fmt.Fprintf(&b, "\" %c%s\n", r.Reg, r.Path)
	}

	if info.LeftFilter != "" {
		fmt.Fprintf(&b, "f %s\n", info.LeftFilter)
	}
	if info.RightFilter != "" {
		fmt.Fprintf(&b, "F %s\n", info.RightFilter)
	}
	fmt.Fprintf(&b, "i %d\n", boolDigit(info.LeftFilterInvert))
	fmt.Fprintf(&b, "I %d\n", boolDigit(info.RightFilterInvert))

	if info.ColorScheme != "" {
		fmt.Fprintf(&b, "c %s\n", info.ColorScheme)
	}

	return b.String()
}

func boolDigit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func parseSortCSV(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	codes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("info file: bad sort code %q", p)
		}
		codes = append(codes, n)
	}
	return codes, nil
}

func formatSortCSV(codes []int) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

// InfoManager loads and saves one InfoFile, mirroring RCManager's
// FileOps-injectable Load/Save pair.
type InfoManager struct {
	info *InfoFile
	path string
}

// NewInfoManager returns a manager over a fresh, empty InfoFile.
func NewInfoManager(path string) *InfoManager {
	return &InfoManager{info: NewInfoFile(), path: path}
}

// Info returns the live InfoFile.
func (m *InfoManager) Info() *InfoFile { return m.info }

// Load reads and parses the info file if present; absence is not an error.
func (m *InfoManager) Load() error { return m.LoadWithFileOps(OSFileOps{}) }

// LoadWithFileOps is Load with an injectable FileOps, for tests.
func (m *InfoManager) LoadWithFileOps(ops FileOps) error {
	if _, err := ops.Stat(m.path); err != nil {
		return nil
	}
	data, err := ops.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("failed to read info file: %w", err)
	}
	info, err := ParseInfoFile(string(data))
	if err != nil {
		return err
	}
	m.info = info
	return nil
}

// Save encodes and atomically writes the info file back to disk.
func (m *InfoManager) Save() error { return m.SaveWithFileOps(OSFileOps{}) }

// SaveWithFileOps is Save with an injectable FileOps, for tests.
func (m *InfoManager) SaveWithFileOps(ops FileOps) error {
	dir := dirOf(m.path)
	if err := ops.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create info directory: %w", err)
	}
	data := []byte(m.info.Encode())
	tmp, err := ops.CreateTemp(dir, ".vifminfo-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp info file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = ops.Remove(tmpName)
		return fmt.Errorf("failed to write temp info file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = ops.Remove(tmpName)
		return fmt.Errorf("failed to close temp info file: %w", err)
	}
	if err := ops.Rename(tmpName, m.path); err != nil {
		_ = ops.Remove(tmpName)
		return fmt.Errorf("failed to replace info file: %w", err)
	}
	return nil
}

func dirOf(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return "."
	}
	return path[:i]
}
