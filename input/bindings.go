package input

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownAction is returned for binding tables naming an action that does not exist
var ErrUnknownAction = errors.New("unknown action")

// Action is a logical control
type Action uint8

const (
	ActionLeft Action = iota
	ActionRight
	ActionJump
	ActionQuit
	actionCount
)

// actionNames maps canonical action names used in config tables
var actionNames = map[string]Action{
	"left":  ActionLeft,
	"right": ActionRight,
	"jump":  ActionJump,
	"quit":  ActionQuit,
}

// Bindings maps each action to the keys that trigger it
type Bindings [actionCount][]Key

// DefaultBindings returns arrows/wasd movement, space or up to jump, escape or q to quit
func DefaultBindings() Bindings {
	var b Bindings
	b[ActionLeft] = []Key{KeyLeft, 'a'}
	b[ActionRight] = []Key{KeyRight, 'd'}
	b[ActionJump] = []Key{KeyUp, KeySpace, 'w'}
	b[ActionQuit] = []Key{KeyEscape, 'q', KeyCtrlC}
	return b
}

// Keys returns the keys bound to a
func (b Bindings) Keys(a Action) []Key {
	if a >= actionCount {
		return nil
	}
	return b[a]
}

// Empty reports whether no action has any key bound
func (b Bindings) Empty() bool {
	for _, keys := range b {
		if len(keys) > 0 {
			return false
		}
	}
	return true
}

// Active reports whether any key bound to a is held
func (b Bindings) Active(a Action, held KeySet) bool {
	return held.Any(b.Keys(a)...)
}

// ParseBindings overlays a name table ({"jump": ["space", "k"]}) onto defaults
// Actions absent from the table keep their default keys
func ParseBindings(table map[string][]string) (Bindings, error) {
	b := DefaultBindings()

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a, ok := actionNames[name]
		if !ok {
			return b, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		keys := make([]Key, 0, len(table[name]))
		for _, kn := range table[name] {
			k, err := ParseKey(kn)
			if err != nil {
				return b, fmt.Errorf("action %q: %w", name, err)
			}
			keys = append(keys, k)
		}
		b[a] = keys
	}
	return b, nil
}

// Table renders bindings back into a name table
func (b Bindings) Table() map[string][]string {
	t := make(map[string][]string, len(actionNames))
	for name, a := range actionNames {
		keys := b.Keys(a)
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		t[name] = names
	}
	return t
}
