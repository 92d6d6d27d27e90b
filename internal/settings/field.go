package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when field text is not an integer.
var ErrInvalidNumber = errors.New("not an integer")

// IntField is an editable text field bound to a clamped integer. Invalid
// text is never stored; applying it reverts the text to the last valid value.
type IntField struct {
	Key string
	// Min and Max bound the stored value. A non-positive Max disables the
	// upper bound.
	Min int
	Max int

	value     int
	text      string
	lastValid string
}

// NewIntField returns a field holding v.
func NewIntField(key string, v, min, max int) *IntField {
	f := &IntField{Key: key, Min: min, Max: max}
	f.set(v)
	return f
}

// Value returns the last applied value.
func (f *IntField) Value() int { return f.value }

// Text returns the current, possibly unapplied, text.
func (f *IntField) Text() string { return f.text }

// SetText replaces the edit text without applying it.
func (f *IntField) SetText(s string) { f.text = s }

// Apply parses the edit text, clamps it into range and stores it. On a parse
// error the text is reverted and the stored value is left unchanged.
func (f *IntField) Apply() error {
	n, err := strconv.Atoi(strings.TrimSpace(f.text))
	if err != nil {
		bad := f.text
		f.text = f.lastValid
		return fmt.Errorf("%s: %q: %w", f.Key, bad, ErrInvalidNumber)
	}
	f.set(f.clamp(n))
	return nil
}

func (f *IntField) set(v int) {
	f.value = v
	f.lastValid = strconv.Itoa(v)
	f.text = f.lastValid
}

func (f *IntField) clamp(v int) int {
	if v < f.Min {
		return f.Min
	}
	if f.Max > 0 && v > f.Max {
		return f.Max
	}
	return v
}
