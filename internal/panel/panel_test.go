package panel

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"oshi-overlay/internal/i18n"
	"oshi-overlay/internal/input"
	"oshi-overlay/internal/overlay"
	"oshi-overlay/internal/settings"
)

type memSaver struct {
	saved []settings.Settings
}

func (m *memSaver) Save(s settings.Settings) error {
	m.saved = append(m.saved, s)
	return nil
}

type fakeClipboard string

func (c fakeClipboard) ReadText() (string, error) { return string(c), nil }

type fakePicker struct {
	path string
	err  error
}

func (p fakePicker) PickImage() (string, error) { return p.path, p.err }

func newPanel(t *testing.T, opts Options) (*Panel, *overlay.Plugin, *memSaver) {
	t.Helper()
	saver := &memSaver{}
	plugin := overlay.New(settings.NewFacade(settings.Defaults(), saver), overlay.Options{})
	plugin.Toggle(true)
	return New(plugin, opts), plugin, saver
}

func widget(t *testing.T, p *Panel, id WidgetID) Widget {
	t.Helper()
	for _, w := range p.Layout() {
		if w.ID == id {
			return w
		}
	}
	t.Fatalf("widget %d not laid out", id)
	return Widget{}
}

func click(t *testing.T, p *Panel, id WidgetID) *input.Queue {
	t.Helper()
	c := widget(t, p, id).Rect.Min.Add(image.Pt(2, 2))
	var q input.Queue
	q.Push(input.Event{Kind: input.PointerDown, X: float64(c.X), Y: float64(c.Y)})
	p.Handle(&q)
	return &q
}

func typeText(p *Panel, s string) *input.Queue {
	var q input.Queue
	for _, r := range s {
		q.Push(input.Event{Kind: input.Char, Rune: r})
	}
	p.Handle(&q)
	return &q
}

func key(p *Panel, k input.KeyCode) *input.Queue {
	var q input.Queue
	q.Push(input.Event{Kind: input.Key, Key: k})
	p.Handle(&q)
	return &q
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func TestEditAndApplyPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oshi.png")
	writePNG(t, path, 800, 400)

	p, plugin, saver := newPanel(t, Options{Language: i18n.English})
	q := click(t, p, PathField)
	if q.Pending() != 0 || !p.Focused() {
		t.Fatal("clicking the path field should focus it and consume the click")
	}
	typeText(p, `"`+path+`"xx`)
	key(p, input.KeyBackspace)
	key(p, input.KeyBackspace)
	if p.PathText() != `"`+path+`"` {
		t.Fatalf("path text = %q", p.PathText())
	}
	key(p, input.KeyEnter)

	if plugin.Image() == nil {
		t.Fatal("Enter in the path field should load the image")
	}
	if p.PathText() != path {
		t.Fatalf("path text = %q, want cleaned %q", p.PathText(), path)
	}
	if got := saver.saved[len(saver.saved)-1].LastImagePath; got != path {
		t.Fatalf("saved path = %q", got)
	}
	status, isErr := p.Status()
	if isErr || !strings.HasPrefix(status, "Loaded") {
		t.Fatalf("status = %q (err %v)", status, isErr)
	}
	info := widget(t, p, Info).Text
	if !strings.Contains(info, "800×400") || !strings.Contains(info, "1 frame,") {
		t.Fatalf("info = %q", info)
	}
}

func TestApplyMissingPathShowsError(t *testing.T) {
	p, _, _ := newPanel(t, Options{Language: i18n.English})
	p.SetPathText(filepath.Join(t.TempDir(), "missing.gif"))
	click(t, p, ApplyImage)
	status, isErr := p.Status()
	if !isErr || !strings.HasPrefix(status, "File not found") {
		t.Fatalf("status = %q (err %v)", status, isErr)
	}
}

func TestInvalidBoundReverts(t *testing.T) {
	p, plugin, _ := newPanel(t, Options{Language: i18n.English})
	click(t, p, WidthField)
	key(p, input.KeyBackspace)
	key(p, input.KeyBackspace)
	key(p, input.KeyBackspace)
	typeText(p, "abc")
	if got := widget(t, p, WidthField).Text; got != "abc" {
		t.Fatalf("width field = %q, want abc", got)
	}
	click(t, p, ApplyResolution)

	if got := widget(t, p, WidthField).Text; got != "500" {
		t.Fatalf("width field = %q, want reverted to 500", got)
	}
	if w, _ := plugin.Settings().Bounds(); w != 500 {
		t.Fatalf("max width = %d, want unchanged 500", w)
	}
	status, isErr := p.Status()
	if isErr || !strings.HasPrefix(status, "Numbers only") {
		t.Fatalf("status = %q (err %v)", status, isErr)
	}
}

func TestTabAndPaste(t *testing.T) {
	p, plugin, _ := newPanel(t, Options{Clipboard: fakeClipboard("7\n20")})
	click(t, p, PathField)
	key(p, input.KeyTab)
	key(p, input.KeyTab)
	for range 3 {
		key(p, input.KeyBackspace)
	}
	key(p, input.KeyPaste)
	key(p, input.KeyEnter)
	if _, h := plugin.Settings().Bounds(); h != 720 {
		t.Fatalf("max height = %d, want 720 from pasted text", h)
	}
}

func TestEscapeBlursAndPassesThrough(t *testing.T) {
	p, _, _ := newPanel(t, Options{})
	click(t, p, PathField)
	q := key(p, input.KeyEscape)
	if p.Focused() || q.Pending() != 0 {
		t.Fatal("Escape should blur the field and be consumed")
	}
	q = key(p, input.KeyEscape)
	if q.Pending() != 1 {
		t.Fatal("Escape without focus belongs to the host")
	}
}

func TestClickOutsideLeavesEvent(t *testing.T) {
	p, _, _ := newPanel(t, Options{})
	click(t, p, PathField)
	b := p.Bounds()
	var q input.Queue
	q.Push(input.Event{Kind: input.PointerDown, X: float64(b.Max.X + 50), Y: float64(b.Max.Y + 50)})
	q.Push(input.Event{Kind: input.Char, Rune: 'z'})
	p.Handle(&q)
	if p.Focused() {
		t.Fatal("click outside should drop focus")
	}
	if q.Pending() != 2 {
		t.Fatalf("pending = %d, outside click and unfocused char stay unhandled", q.Pending())
	}
}

func TestLanguageToggle(t *testing.T) {
	p, _, saver := newPanel(t, Options{Language: i18n.Korean})
	if got := widget(t, p, PathLabel).Text; got != i18n.Text(i18n.Korean, i18n.PhotoPath) {
		t.Fatalf("label = %q", got)
	}
	click(t, p, LangEnglish)
	if p.Language() != i18n.English {
		t.Fatal("language should switch to English")
	}
	if !widget(t, p, LangEnglish).Active || widget(t, p, LangKorean).Active {
		t.Fatal("selected language button should be active")
	}
	if got := widget(t, p, PathLabel).Text; got != "Enter photo path:" {
		t.Fatalf("label = %q", got)
	}
	if saver.saved[len(saver.saved)-1].Language != "en" {
		t.Fatal("language choice should be saved")
	}
}

func TestBrowse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picked.png")
	writePNG(t, path, 10, 10)

	p, plugin, _ := newPanel(t, Options{Picker: fakePicker{err: ErrCancelled}})
	click(t, p, Browse)
	if plugin.Image() != nil || p.PathText() != "" {
		t.Fatal("cancelled dialog should change nothing")
	}

	p.picker = fakePicker{path: path}
	click(t, p, Browse)
	if plugin.Image() == nil || p.PathText() != path {
		t.Fatal("picked file should be applied")
	}

	p.picker = fakePicker{err: errors.New("no display")}
	click(t, p, Browse)
	if p.PathText() != path {
		t.Fatal("failed dialog should keep the path")
	}
}

func TestDisabledOverlayHidesControls(t *testing.T) {
	p, plugin, _ := newPanel(t, Options{Language: i18n.English})
	plugin.Toggle(false)
	for _, w := range p.Layout() {
		if w.Kind == Field {
			t.Fatalf("field %d shown while overlay is off", w.ID)
		}
	}
	if got := widget(t, p, Info).Text; got != "Overlay is off (F2)" {
		t.Fatalf("info = %q", got)
	}
	widget(t, p, LangKorean)
}

func TestHiddenPanelIgnoresInput(t *testing.T) {
	p, _, _ := newPanel(t, Options{})
	c := widget(t, p, PathField).Rect.Min
	p.SetVisible(false)
	var q input.Queue
	q.Push(input.Event{Kind: input.PointerDown, X: float64(c.X + 1), Y: float64(c.Y + 1)})
	p.Handle(&q)
	if q.Pending() != 1 || p.Focused() {
		t.Fatal("hidden panel must not react")
	}
}

func TestTail(t *testing.T) {
	cases := []struct {
		s    string
		max  int
		want string
	}{
		{"abc", 5, "abc"},
		{"abcdef", 3, "def"},
		{"사진경로입력", 2, "입력"},
		{"abc", 0, ""},
	}
	for _, tc := range cases {
		if got := Tail(tc.s, tc.max); got != tc.want {
			t.Fatalf("Tail(%q, %d) = %q, want %q", tc.s, tc.max, got, tc.want)
		}
	}
}

func TestDisabledOverlayDropsFieldFocus(t *testing.T) {
	p, plugin, saver := newPanel(t, Options{Language: i18n.English})
	click(t, p, PathField)
	typeText(p, "/definitely/missing.png")
	plugin.Toggle(false)
	saves := len(saver.saved)

	q := typeText(p, "x")
	if p.Focused() {
		t.Fatal("hidden field should lose focus")
	}
	if q.Pending() != 1 {
		t.Fatal("typing with the overlay off should not be consumed")
	}
	key(p, input.KeyTab)
	key(p, input.KeyEnter)
	if p.Focused() {
		t.Fatal("Tab must not focus a hidden field")
	}
	if p.PathText() != "/definitely/missing.png" {
		t.Fatalf("path text = %q", p.PathText())
	}
	if len(saver.saved) != saves {
		t.Fatal("nothing should be saved while the overlay is off")
	}
}

func TestApplyWhileDisabledReportsIt(t *testing.T) {
	p, plugin, saver := newPanel(t, Options{Language: i18n.English})
	plugin.Toggle(false)
	p.SetPathText("/definitely/missing.png")
	p.press(ApplyImage)

	status, isErr := p.Status()
	if !isErr || status != "Overlay is off (F2)" {
		t.Fatalf("status = %q (err %v)", status, isErr)
	}
	if plugin.Image() != nil {
		t.Fatal("no image should be loaded")
	}
	for _, s := range saver.saved {
		if s.LastImagePath != "" {
			t.Fatalf("saved path %q while the overlay was off", s.LastImagePath)
		}
	}
}
