// Package panel is the settings panel model: layout, focus, text editing
// and button actions. Drawing lives in the ui package.
package panel

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"oshi-overlay/internal/i18n"
	"oshi-overlay/internal/imagestore"
	"oshi-overlay/internal/input"
	"oshi-overlay/internal/overlay"
	"oshi-overlay/internal/settings"
)

// ErrCancelled is returned by a FilePicker when the user closes the dialog.
var ErrCancelled = errors.New("cancelled")

// Clipboard supplies text for the paste key.
type Clipboard interface {
	ReadText() (string, error)
}

// FilePicker asks the user for an image file.
type FilePicker interface {
	PickImage() (string, error)
}

// WidgetID identifies a panel element.
type WidgetID int

const (
	LangEnglish WidgetID = iota
	LangKorean
	PathLabel
	PathField
	ApplyImage
	Browse
	GIFWarn
	ResolutionHeader
	WidthLabel
	WidthField
	HeightLabel
	HeightField
	ApplyResolution
	Info
	Status
	Hint
)

// WidgetKind tells the renderer how to draw a widget.
type WidgetKind int

const (
	Label WidgetKind = iota
	Warning
	Field
	Button
)

// Widget is one laid-out element in screen coordinates.
type Widget struct {
	ID   WidgetID
	Kind WidgetKind
	Rect image.Rectangle
	Text string
	// Active marks the focused field or the selected language.
	Active bool
}

// Options configures a Panel.
type Options struct {
	Language  i18n.Language
	Clipboard Clipboard
	Picker    FilePicker
	Log       *slog.Logger
}

// Panel is the settings panel for an overlay plugin.
type Panel struct {
	plugin    *overlay.Plugin
	lang      i18n.Language
	clipboard Clipboard
	picker    FilePicker
	log       *slog.Logger

	visible bool
	origin  image.Point
	focus   WidgetID
	path    string

	status    i18n.Key
	hasStatus bool
	detail    string
	statusErr bool
}

const noFocus WidgetID = -1

// New returns a visible panel for p.
func New(p *overlay.Plugin, opts Options) *Panel {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Panel{
		plugin:    p,
		lang:      opts.Language,
		clipboard: opts.Clipboard,
		picker:    opts.Picker,
		log:       log.With(slog.String("component", "panel")),
		visible:   true,
		origin:    image.Pt(defaultMargin, defaultMargin),
		focus:     noFocus,
		path:      p.Settings().LastImagePath(),
	}
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool { return p.visible }

// SetVisible shows or hides the panel. Hiding drops keyboard focus.
func (p *Panel) SetVisible(v bool) {
	p.visible = v
	if !v {
		p.focus = noFocus
	}
}

// Language returns the display language.
func (p *Panel) Language() i18n.Language { return p.lang }

// SetOrigin places the panel's top-left corner.
func (p *Panel) SetOrigin(pt image.Point) { p.origin = pt }

// Dock places the panel in the top-right corner of a w-pixel-wide screen.
func (p *Panel) Dock(w int) {
	x := w - Width - defaultMargin
	if x < defaultMargin {
		x = defaultMargin
	}
	p.origin = image.Pt(x, defaultMargin)
}

// Focused reports whether a text field has keyboard focus.
func (p *Panel) Focused() bool { return p.focus != noFocus }

// PathText returns the path field text.
func (p *Panel) PathText() string { return p.path }

// SetPathText replaces the path field text without applying it.
func (p *Panel) SetPathText(s string) { p.path = s }

// Status returns the status line, if any.
func (p *Panel) Status() (text string, isErr bool) {
	if !p.hasStatus {
		return "", false
	}
	text = i18n.Text(p.lang, p.status)
	if p.detail != "" {
		text += ": " + p.detail
	}
	return text, p.statusErr
}

// Bounds returns the panel's screen rectangle.
func (p *Panel) Bounds() image.Rectangle {
	ws := p.Layout()
	r := image.Rectangle{Min: p.origin, Max: p.origin}
	for _, w := range ws {
		r = r.Union(w.Rect)
	}
	return r.Inset(-Padding)
}

// Layout returns the widgets to draw this tick. The order is top to bottom.
func (p *Panel) Layout() []Widget {
	x := p.origin.X
	y := p.origin.Y
	row := func(h int) image.Rectangle {
		r := image.Rect(x, y, x+Width, y+h)
		y += h + RowGap
		return r
	}
	button := func(r image.Rectangle, i, w int) image.Rectangle {
		at := image.Pt(r.Min.X+i*(w+RowGap), r.Min.Y)
		return image.Rectangle{Min: at, Max: image.Pt(at.X+w, r.Max.Y)}
	}

	var ws []Widget
	langRow := row(RowHeight)
	for i, l := range i18n.Languages {
		id := LangEnglish
		if l == i18n.Korean {
			id = LangKorean
		}
		ws = append(ws, Widget{ID: id, Kind: Button, Rect: button(langRow, i, 100), Text: l.Name(), Active: l == p.lang})
	}

	if p.plugin.Enabled() {
		ws = append(ws,
			Widget{ID: PathLabel, Kind: Label, Rect: row(RowHeight), Text: p.text(i18n.PhotoPath)},
			Widget{ID: PathField, Kind: Field, Rect: row(RowHeight), Text: p.path, Active: p.focus == PathField},
		)
		actions := row(RowHeight)
		ws = append(ws,
			Widget{ID: ApplyImage, Kind: Button, Rect: button(actions, 0, 100), Text: p.text(i18n.ApplyImage)},
			Widget{ID: Browse, Kind: Button, Rect: button(actions, 1, 100), Text: p.text(i18n.Browse)},
			Widget{ID: GIFWarn, Kind: Warning, Rect: row(4 * LineHeight), Text: p.text(i18n.GIFWarn)},
		)
		y += SectionGap
		ws = append(ws, Widget{ID: ResolutionHeader, Kind: Label, Rect: row(RowHeight), Text: p.text(i18n.ResolutionSettings)})

		f := p.plugin.Settings()
		for _, b := range []struct {
			label, field WidgetID
			key          i18n.Key
			f            *settings.IntField
		}{
			{WidthLabel, WidthField, i18n.MaxWidth, f.Width()},
			{HeightLabel, HeightField, i18n.MaxHeight, f.Height()},
		} {
			r := row(RowHeight)
			ws = append(ws,
				Widget{ID: b.label, Kind: Label, Rect: image.Rect(r.Min.X, r.Min.Y, r.Min.X+100, r.Max.Y), Text: p.text(b.key)},
				Widget{ID: b.field, Kind: Field, Rect: image.Rect(r.Min.X+100+RowGap, r.Min.Y, r.Min.X+200+RowGap, r.Max.Y), Text: b.f.Text(), Active: p.focus == b.field},
			)
		}
		ws = append(ws, Widget{ID: ApplyResolution, Kind: Button, Rect: button(row(RowHeight), 0, 200), Text: p.text(i18n.ApplyResolution)})
		if info := p.info(); info != "" {
			ws = append(ws, Widget{ID: Info, Kind: Label, Rect: row(RowHeight), Text: info})
		}
	} else {
		ws = append(ws, Widget{ID: Info, Kind: Label, Rect: row(RowHeight), Text: p.text(i18n.StatusDisabled)})
	}

	if text, isErr := p.Status(); text != "" {
		kind := Label
		if isErr {
			kind = Warning
		}
		ws = append(ws, Widget{ID: Status, Kind: kind, Rect: row(RowHeight), Text: text})
	}
	ws = append(ws, Widget{ID: Hint, Kind: Label, Rect: row(RowHeight), Text: p.text(i18n.Hint)})
	return ws
}

func (p *Panel) text(k i18n.Key) string { return i18n.Text(p.lang, k) }

// info describes the loaded image.
func (p *Panel) info() string {
	img := p.plugin.Image()
	if img == nil {
		return ""
	}
	s := fmt.Sprintf("%d×%d, %d frame", img.Width, img.Height, len(img.Frames))
	if len(img.Frames) != 1 {
		s += "s"
	}
	s += ", " + humanize.Bytes(uint64(img.Bytes()))
	if loop := p.plugin.Loop(); loop > 0 {
		s += ", " + durafmt.Parse(loop).LimitFirstN(2).String()
	}
	return s
}

// Handle consumes the events in q that belong to the panel. Pointer presses
// outside the panel drop focus and are left for other consumers. The text
// fields are hidden, and cannot hold focus, while the overlay is off.
func (p *Panel) Handle(q *input.Queue) {
	if !p.visible {
		return
	}
	if !p.plugin.Enabled() {
		p.focus = noFocus
	}
	q.Each(func(e *input.Event) {
		switch e.Kind {
		case input.PointerDown:
			p.handlePress(e)
		case input.Char:
			if p.focus == noFocus {
				return
			}
			if unicode.IsPrint(e.Rune) {
				p.setFocusedText(p.focusedText() + string(e.Rune))
			}
			e.Consume()
		case input.Key:
			if p.focus == noFocus {
				return
			}
			p.handleKey(e.Key)
			e.Consume()
		}
	})
}

func (p *Panel) handlePress(e *input.Event) {
	pt := image.Pt(int(e.X), int(e.Y))
	if !pt.In(p.Bounds()) {
		p.focus = noFocus
		return
	}
	e.Consume()
	if e.Button != input.ButtonLeft {
		return
	}
	for _, w := range p.Layout() {
		if !pt.In(w.Rect) {
			continue
		}
		switch w.Kind {
		case Field:
			p.focus = w.ID
			return
		case Button:
			p.focus = noFocus
			p.press(w.ID)
			return
		}
	}
	p.focus = noFocus
}

func (p *Panel) handleKey(k input.KeyCode) {
	switch k {
	case input.KeyBackspace:
		s := p.focusedText()
		if _, size := utf8.DecodeLastRuneInString(s); size > 0 {
			p.setFocusedText(s[:len(s)-size])
		}
	case input.KeyEnter:
		if p.focus == PathField {
			p.press(ApplyImage)
		} else {
			p.press(ApplyResolution)
		}
	case input.KeyEscape:
		p.focus = noFocus
	case input.KeyTab:
		switch p.focus {
		case PathField:
			p.focus = WidthField
		case WidthField:
			p.focus = HeightField
		default:
			p.focus = PathField
		}
	case input.KeyPaste:
		if p.clipboard == nil {
			return
		}
		s, err := p.clipboard.ReadText()
		if err != nil {
			p.log.LogAttrs(context.Background(), slog.LevelWarn, "read clipboard", slog.Any("error", err))
			return
		}
		s = strings.Map(func(r rune) rune {
			if r == '\n' || r == '\r' {
				return -1
			}
			return r
		}, s)
		p.setFocusedText(p.focusedText() + s)
	}
}

func (p *Panel) focusedText() string {
	switch p.focus {
	case PathField:
		return p.path
	case WidthField:
		return p.plugin.Settings().Width().Text()
	case HeightField:
		return p.plugin.Settings().Height().Text()
	}
	return ""
}

func (p *Panel) setFocusedText(s string) {
	switch p.focus {
	case PathField:
		p.path = s
	case WidthField:
		p.plugin.Settings().Width().SetText(s)
	case HeightField:
		p.plugin.Settings().Height().SetText(s)
	}
}

// press performs the action of the button id.
func (p *Panel) press(id WidgetID) {
	ctx := context.Background()
	switch id {
	case LangEnglish:
		p.setLanguage(i18n.English)
	case LangKorean:
		p.setLanguage(i18n.Korean)
	case ApplyImage:
		p.applyImage()
	case Browse:
		if p.picker == nil {
			return
		}
		path, err := p.picker.PickImage()
		if err != nil {
			if !errors.Is(err, ErrCancelled) {
				p.log.LogAttrs(ctx, slog.LevelWarn, "file dialog", slog.Any("error", err))
			}
			return
		}
		p.path = path
		p.applyImage()
	case ApplyResolution:
		err := p.plugin.ApplyBounds()
		if errors.Is(err, settings.ErrInvalidNumber) {
			p.log.LogAttrs(ctx, slog.LevelDebug, "invalid bound", slog.Any("error", err))
			p.setStatus(i18n.StatusInvalidNumber, "", false)
			return
		}
		w, h := p.plugin.Settings().Bounds()
		p.setStatus(i18n.StatusSaved, fmt.Sprintf("%d×%d", w, h), false)
	}
}

func (p *Panel) applyImage() {
	path, err := p.plugin.ApplyPath(p.path)
	p.path = path
	switch {
	case err == nil:
		p.setStatus(i18n.StatusLoaded, path, false)
	case errors.Is(err, overlay.ErrDisabled):
		p.setStatus(i18n.StatusDisabled, "", true)
	case errors.Is(err, imagestore.ErrNotFound):
		p.setStatus(i18n.StatusNotFound, path, true)
	default:
		p.setStatus(i18n.StatusDecode, path, true)
	}
}

func (p *Panel) setLanguage(l i18n.Language) {
	if l == p.lang {
		return
	}
	p.lang = l
	p.plugin.Settings().SetLanguage(l.Code())
	p.plugin.Save()
}

func (p *Panel) setStatus(k i18n.Key, detail string, isErr bool) {
	p.status = k
	p.detail = detail
	p.statusErr = isErr
	p.hasStatus = true
}

// Tail returns the last runes of s that fit in max runes, for drawing a
// text field narrower than its contents.
func Tail(s string, max int) string {
	if max <= 0 {
		return ""
	}
	n := utf8.RuneCountInString(s)
	if n <= max {
		return s
	}
	for i := range s {
		if n <= max {
			return s[i:]
		}
		n--
	}
	return ""
}

// Layout metrics in pixels.
const (
	Width         = 320
	RowHeight     = 20
	LineHeight    = 16
	RowGap        = 6
	SectionGap    = 10
	Padding       = 10
	defaultMargin = 16
)
