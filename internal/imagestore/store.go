// Package imagestore loads overlay images and animation frames from disk.
package imagestore

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when the path does not name an existing file.
	// The previously loaded image is kept.
	ErrNotFound = errors.New("image file not found")
	// ErrDecode is returned when the file cannot be read or decoded. The
	// current image is cleared.
	ErrDecode = errors.New("image decode failed")
)

// Frame is a single renderable frame and how long it is shown.
type Frame struct {
	Image image.Image
	Delay time.Duration
}

// Image is a decoded static image or animation.
type Image struct {
	Path   string
	Width  int
	Height int
	Frames []Frame
}

// Animated reports whether the image has more than one frame.
func (img *Image) Animated() bool { return img != nil && len(img.Frames) > 1 }

// Delays returns the per-frame delays in order.
func (img *Image) Delays() []time.Duration {
	if img == nil {
		return nil
	}
	d := make([]time.Duration, len(img.Frames))
	for i, f := range img.Frames {
		d[i] = f.Delay
	}
	return d
}

// Bytes estimates the decoded pixel memory held by the frames, assuming four
// bytes per pixel.
func (img *Image) Bytes() int64 {
	if img == nil {
		return 0
	}
	var n int64
	for _, f := range img.Frames {
		b := f.Image.Bounds()
		n += int64(b.Dx()) * int64(b.Dy()) * 4
	}
	return n
}

// DecodeFunc decodes all frames held by r.
type DecodeFunc func(r io.Reader) ([]Frame, error)

var decoders = map[string]DecodeFunc{}

// Register associates a decoder with a lower-case file extension including
// the leading dot. Extensions without a registered decoder use the static
// decoder.
func Register(ext string, fn DecodeFunc) {
	if ext == "" || fn == nil {
		return
	}
	decoders[strings.ToLower(ext)] = fn
}

// decoderFor returns the decoder for path's extension.
func decoderFor(path string) DecodeFunc {
	if fn, ok := decoders[strings.ToLower(filepath.Ext(path))]; ok {
		return fn
	}
	return decodeStatic
}

// CleanPath strips surrounding whitespace and double quotes, as left by
// "copy as path" in most file managers.
func CleanPath(path string) string {
	return strings.Trim(strings.TrimSpace(path), `"`)
}

// Store holds the currently loaded image.
type Store struct {
	log *slog.Logger
	cur *Image
}

// New returns an empty store logging to log.
func New(log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{log: log.With(slog.String("component", "imagestore"))}
}

// Current returns the loaded image or nil.
func (s *Store) Current() *Image { return s.cur }

// Clear drops the loaded image.
func (s *Store) Clear() { s.cur = nil }

// Load decodes the file at path and makes it the current image.
//
// If path does not name a regular file, Load returns an error wrapping
// ErrNotFound and the current image is unchanged. If the file cannot be
// decoded, the current image is cleared and the error wraps ErrDecode.
func (s *Store) Load(path string) (*Image, error) {
	ctx := context.Background()
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		s.log.LogAttrs(ctx, slog.LevelWarn, "file not found", slog.String("path", path))
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	img, err := decodeFile(path)
	if err != nil {
		s.cur = nil
		s.log.LogAttrs(ctx, slog.LevelWarn, "decode image", slog.String("path", path), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	s.cur = img
	s.log.LogAttrs(ctx, slog.LevelInfo, "loaded image",
		slog.String("path", path),
		slog.Int("width", img.Width),
		slog.Int("height", img.Height),
		slog.Int("frames", len(img.Frames)),
	)
	return img, nil
}

// MaxPixels bounds the area of a decoded image, or of a GIF's logical
// screen, so a small file cannot declare dimensions that exhaust memory.
const MaxPixels = 1 << 26

// maxFramePixels bounds the total area of all composed GIF frames.
const maxFramePixels = 1 << 28

func decodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Formats without a registered config decoder are left to their
	// decoder.
	if cfg, _, err := image.DecodeConfig(f); err == nil {
		if err := checkArea(cfg.Width, cfg.Height, 1); err != nil {
			return nil, err
		}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	frames, err := decoderFor(path)(f)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, errors.New("no frames")
	}
	b := frames[0].Image.Bounds()
	if b.Empty() {
		return nil, errors.New("empty image")
	}
	return &Image{Path: path, Width: b.Dx(), Height: b.Dy(), Frames: frames}, nil
}

// checkArea rejects n frames of w×h pixels that exceed the decode limits.
func checkArea(w, h, n int) error {
	area := int64(w) * int64(h)
	if area > MaxPixels {
		return fmt.Errorf("image %dx%d exceeds %d pixels", w, h, MaxPixels)
	}
	if area*int64(n) > maxFramePixels {
		return fmt.Errorf("%d frames of %dx%d exceed %d pixels", n, w, h, maxFramePixels)
	}
	return nil
}
