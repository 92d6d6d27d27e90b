package settings

import (
	"errors"

	"oshi-overlay/internal/core"
)

// Saver persists settings.
type Saver interface {
	Save(Settings) error
}

// Facade owns the live settings and the editable bound fields.
type Facade struct {
	s      Settings
	saver  Saver
	width  *IntField
	height *IntField
}

// NewFacade returns a facade over s. saver may be nil, in which case Save is
// a no-op.
func NewFacade(s Settings, saver Saver) *Facade {
	s.normalize()
	return &Facade{
		s:      s,
		saver:  saver,
		width:  NewIntField("max_width", s.MaxWidth, MinBound, 0),
		height: NewIntField("max_height", s.MaxHeight, MinBound, 0),
	}
}

// Settings returns a copy of the current settings.
func (f *Facade) Settings() Settings { return f.s }

// Bounds returns the applied maximum overlay width and height.
func (f *Facade) Bounds() (w, h int) { return f.s.MaxWidth, f.s.MaxHeight }

// Width returns the max width edit field.
func (f *Facade) Width() *IntField { return f.width }

// Height returns the max height edit field.
func (f *Facade) Height() *IntField { return f.height }

// SetScreen sets the upper clamp for the bound fields to the screen size.
// It does not re-clamp values already applied.
func (f *Facade) SetScreen(size core.Size) {
	f.width.Max = size.W
	f.height.Max = size.H
}

// ApplyBounds applies both bound fields. Each field is applied independently;
// applied reports whether at least one parsed. Invalid fields are reverted
// and reported in err, which wraps ErrInvalidNumber.
func (f *Facade) ApplyBounds() (applied bool, err error) {
	var errs []error
	if e := f.width.Apply(); e != nil {
		errs = append(errs, e)
	} else {
		f.s.MaxWidth = f.width.Value()
		applied = true
	}
	if e := f.height.Apply(); e != nil {
		errs = append(errs, e)
	} else {
		f.s.MaxHeight = f.height.Value()
		applied = true
	}
	return applied, errors.Join(errs...)
}

// LastImagePath returns the most recently applied image path.
func (f *Facade) LastImagePath() string { return f.s.LastImagePath }

// SetLastImagePath records path as the image to restore on start.
func (f *Facade) SetLastImagePath(path string) { f.s.LastImagePath = path }

// Language returns the persisted language code.
func (f *Facade) Language() string { return f.s.Language }

// SetLanguage records the panel language code.
func (f *Facade) SetLanguage(code string) { f.s.Language = code }

// Save persists the current settings.
func (f *Facade) Save() error {
	if f.saver == nil {
		return nil
	}
	return f.saver.Save(f.s)
}
