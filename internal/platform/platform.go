//go:build ebiten

// Package platform adapts the desktop clipboard and file dialog to the
// panel's interfaces.
package platform

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"

	"oshi-overlay/internal/panel"
)

// ImageExtensions are offered by the file dialog.
var ImageExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "webp"}

// Clipboard reads text from the system clipboard.
type Clipboard struct{}

// NewClipboard initialises the system clipboard.
func NewClipboard() (*Clipboard, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("clipboard: %w", err)
	}
	return &Clipboard{}, nil
}

func (*Clipboard) ReadText() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

// Picker opens a native file dialog.
type Picker struct {
	Title string
}

func (p *Picker) PickImage() (string, error) {
	b := dialog.File().Filter("Images", ImageExtensions...)
	if p.Title != "" {
		b = b.Title(p.Title)
	}
	path, err := b.Load()
	if errors.Is(err, dialog.Cancelled) {
		return "", panel.ErrCancelled
	}
	return path, err
}

var (
	_ panel.Clipboard  = (*Clipboard)(nil)
	_ panel.FilePicker = (*Picker)(nil)
)
