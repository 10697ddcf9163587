package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"go.yaml.in/yaml/v3"
)

// RCFile is the structured startup-option schema (spec.md §6's "options"),
// saved as a yaml document the user hand-maintains; these options are not
// written into the info file. Grounded on Config's flat, tagged-struct
// shape (config.go), trimmed to scroll-off, history length, default sort,
// wildmenu, confirm-before-destructive-ops, ignorecase/smartcase, the
// trash directory, timeoutlen and hlsearch.
type RCFile struct {
	ScrollOff   int    `yaml:"scrolloff"`
	HistoryLen  int    `yaml:"history-length"`
	DefaultSort string `yaml:"default-sort"` // csv of signed sort-criterion codes, pane.SortCriterion's wire form
	Wildmenu    bool   `yaml:"wildmenu"`
	Confirm     bool   `yaml:"confirm"`
	IgnoreCase  bool   `yaml:"ignorecase"`
	SmartCase   bool   `yaml:"smartcase"`
	TrashDir    string `yaml:"trash-dir"`
	TimeoutLen  int    `yaml:"timeoutlen"` // ms, Key Engine ambiguous-prefix wait (spec.md §4.1)
	HlSearch    bool   `yaml:"hlsearch"`   // spec.md §9's resolved Open Question: clear search highlight on cancel iff set
}

// DefaultRCFile returns vifm's out-of-the-box option values.
func DefaultRCFile() *RCFile {
	return &RCFile{
		ScrollOff:   0,
		HistoryLen:  15,
		DefaultSort: "1", // pane.SortByName, ascending
		Wildmenu:    true,
		Confirm:     true,
		IgnoreCase:  false,
		SmartCase:   true,
		TrashDir:    filepath.Join(os.TempDir(), "vifm-trash"),
		TimeoutLen:  1000,
		HlSearch:    false,
	}
}

// RCManager loads, edits and saves one RCFile, grounded on Manager's
// Load/LoadWithFileOps/Save/SaveWithFileOps split (load.go, save.go) so
// tests can swap in a fake FileOps instead of touching the real disk.
type RCManager struct {
	rc   *RCFile
	path string
}

// NewRCManager starts from vifm's defaults; Load overlays a file if found.
func NewRCManager() *RCManager {
	return &RCManager{rc: DefaultRCFile()}
}

// RC returns the live configuration.
func (m *RCManager) RC() *RCFile { return m.rc }

func rcPaths() []string {
	home, _ := os.UserHomeDir()
	return []string{
		filepath.Join(home, ".config", "vifm", "vifmrc.yaml"),
		filepath.Join(home, ".vifm", "vifmrc.yaml"),
	}
}

// Load reads the first existing rc path, overlaying it onto the defaults.
// Absence of any file is not an error: defaults stand and Load records the
// first candidate path as where Save will write.
func (m *RCManager) Load() error {
	return m.LoadWithFileOps(OSFileOps{})
}

// LoadWithFileOps is Load with an injectable FileOps, for tests.
func (m *RCManager) LoadWithFileOps(ops FileOps) error {
	paths := rcPaths()
	for _, path := range paths {
		if _, err := ops.Stat(path); err == nil {
			m.path = path
			return m.loadFromFileWithOps(path, ops)
		}
	}
	m.path = paths[0]
	return nil
}

func (m *RCManager) loadFromFileWithOps(path string, ops FileOps) error {
	data, err := ops.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read rc file: %w", err)
	}
	rc := DefaultRCFile()
	if err := yaml.Unmarshal(data, rc); err != nil {
		return fmt.Errorf("failed to parse rc file: %w", err)
	}
	m.rc = rc
	return nil
}

// Save writes the current RCFile back to disk atomically (temp file plus
// rename), matching Manager.Save/SaveWithFileOps's approach.
func (m *RCManager) Save() error {
	return m.SaveWithFileOps(OSFileOps{})
}

// SaveWithFileOps is Save with an injectable FileOps, for tests.
func (m *RCManager) SaveWithFileOps(ops FileOps) error {
	if m.path == "" {
		m.path = rcPaths()[0]
	}
	dir := filepath.Dir(m.path)
	if err := ops.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create rc directory: %w", err)
	}
	data, err := yaml.Marshal(m.rc)
	if err != nil {
		return fmt.Errorf("failed to marshal rc file: %w", err)
	}
	tmp, err := ops.CreateTemp(dir, ".vifmrc-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp rc file: %w", err)
	}
	tmpName := tmp.Name()
	if runtime.GOOS != "windows" {
		_ = ops.Chmod(tmpName, 0600)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = ops.Remove(tmpName)
		return fmt.Errorf("failed to write temp rc file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = ops.Remove(tmpName)
		return fmt.Errorf("failed to close temp rc file: %w", err)
	}
	if runtime.GOOS == "windows" {
		_ = ops.Remove(m.path)
	}
	if err := ops.Rename(tmpName, m.path); err != nil {
		_ = ops.Remove(tmpName)
		return fmt.Errorf("failed to replace rc file: %w", err)
	}
	if runtime.GOOS != "windows" {
		_ = ops.Chmod(m.path, 0600)
	}
	return nil
}

// Set implements `:set option=value` (and `:set option` for booleans,
// which toggles to true) by name against the rc file's yaml tags.
// Grounded on Manager.Set's reflect-over-yaml-tags lookup (path.go),
// simplified from dotted nested paths to RCFile's single flat level.
func (m *RCManager) Set(option, value string) error {
	v := reflect.ValueOf(m.rc).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		name := strings.Split(tag, ",")[0]
		if name != option {
			continue
		}
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(value)
		case reflect.Int:
			n, err := parseSignedInt(value)
			if err != nil {
				return fmt.Errorf("option %q: %w", option, err)
			}
			field.SetInt(int64(n))
		case reflect.Bool:
			if value == "" {
				field.SetBool(true)
			} else {
				field.SetBool(value == "1" || value == "true" || value == "on")
			}
		default:
			return fmt.Errorf("option %q has an unsupported type", option)
		}
		return nil
	}
	return fmt.Errorf("unknown option %q", option)
}

func parseSignedInt(s string) (int, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not an integer: %q", s)
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
