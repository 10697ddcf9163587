// Package registers holds named clipboards of absolute file paths, plus the
// unnamed register that mirrors the last yank/delete (spec.md §3).
package registers

// Unnamed is the register character for the implicit `"` register.
const Unnamed = '"'

// Entry records what a register holds and whether it came from a delete
// (move semantics on put) or a yank (copy semantics on put).
type Entry struct {
	Paths    []string
	FromCut  bool // true if populated by a delete, not a yank
}

// Store is the full set of named registers.
type Store struct {
	regs map[rune]Entry
}

// NewStore returns an empty register store.
func NewStore() *Store {
	return &Store{regs: make(map[rune]Entry)}
}

// Set stores paths under reg and mirrors them into the unnamed register,
// unless reg is itself the unnamed register.
func (s *Store) Set(reg rune, paths []string, fromCut bool) {
	e := Entry{Paths: append([]string(nil), paths...), FromCut: fromCut}
	s.regs[reg] = e
	if reg != Unnamed {
		s.regs[Unnamed] = e
	}
}

// Get returns the contents of reg (NoReg/0 and Unnamed both map to `"`).
func (s *Store) Get(reg rune) (Entry, bool) {
	if reg == 0 {
		reg = Unnamed
	}
	e, ok := s.regs[reg]
	return e, ok
}

// Clear empties reg.
func (s *Store) Clear(reg rune) {
	delete(s.regs, reg)
}
