//go:build !ebiten

package platform

import (
	"errors"

	"oshi-overlay/internal/panel"
)

var errUnavailable = errors.New("platform: built without the ebiten tag")

type Clipboard struct{}

func NewClipboard() (*Clipboard, error) { return nil, errUnavailable }

func (*Clipboard) ReadText() (string, error) { return "", errUnavailable }

type Picker struct {
	Title string
}

func (*Picker) PickImage() (string, error) { return "", panel.ErrCancelled }
