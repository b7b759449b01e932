package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownKey is returned for key names with no Key mapping
var ErrUnknownKey = errors.New("unknown key")

// Key identifies a physical key
// Printable ASCII keys use their lowercase rune value; named keys sit above the ASCII range
type Key uint16

// Named keys
const (
	KeyNone Key = 0

	KeyEscape Key = 0x100 + iota
	KeyEnter
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC

	KeySpace Key = ' '
)

// keyToName maps named keys to canonical config string names
var keyToName = map[Key]string{
	KeyEscape: "escape",
	KeyEnter:  "enter",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyCtrlC:  "ctrl_c",
	KeySpace:  "space",
}

var nameToKey = func() map[string]Key {
	m := make(map[string]Key, len(keyToName))
	for k, n := range keyToName {
		m[n] = k
	}
	return m
}()

// RuneKey maps a printable ASCII rune to its Key, case-folded; KeyNone otherwise
func RuneKey(r rune) Key {
	if r < 0x20 || r > 0x7e {
		return KeyNone
	}
	return Key(unicode.ToLower(r))
}

// ParseKey resolves a config name ("left", "space", "q") to a Key
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := nameToKey[n]; ok {
		return k, nil
	}
	if r := []rune(n); len(r) == 1 {
		if k := RuneKey(r[0]); k != KeyNone {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// String returns the canonical config name
func (k Key) String() string {
	if n, ok := keyToName[k]; ok {
		return n
	}
	if k > 0x20 && k <= 0x7e {
		return string(rune(k))
	}
	return fmt.Sprintf("key(%d)", uint16(k))
}

// KeySet is the set of keys currently held
type KeySet map[Key]struct{}

// NewKeySet builds a set from keys
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is held
func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Any reports whether at least one of keys is held
func (s KeySet) Any(keys ...Key) bool {
	for _, k := range keys {
		if s.Has(k) {
			return true
		}
	}
	return false
}
