//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/hajimehoshi/ebiten/v2"

	"oshi-overlay/internal/app"
	"oshi-overlay/internal/i18n"
	"oshi-overlay/internal/overlay"
	"oshi-overlay/internal/panel"
	"oshi-overlay/internal/platform"
	"oshi-overlay/internal/settings"
	"oshi-overlay/internal/ui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "oshi-overlay:", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	ctx := context.Background()

	var level slog.LevelVar
	if err := level.UnmarshalText([]byte(cfg.Log)); err != nil {
		return fmt.Errorf("-log: %w", err)
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: &level, AddSource: cfg.Lines}))

	path := cfg.Settings
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings dir: %w", err)
	}

	instance := flock.New(filepath.Join(filepath.Dir(path), "instance.lock"))
	locked, err := instance.TryLock()
	if err != nil {
		return fmt.Errorf("instance lock: %w", err)
	}
	if !locked {
		return errors.New("already running")
	}
	defer instance.Unlock()

	file := settings.File{Path: path}
	s, err := file.Load()
	if err != nil {
		log.LogAttrs(ctx, slog.LevelWarn, "load settings, using defaults", slog.String("path", path), slog.Any("error", err))
	}

	lang := i18n.Parse(firstNonEmpty(cfg.Lang, s.Language, os.Getenv("LC_ALL"), os.Getenv("LANG")))
	face, err := ui.LoadFace(cfg.Font, cfg.FontSize)
	if err != nil {
		log.LogAttrs(ctx, slog.LevelWarn, "load font, using built-in face", slog.Any("error", err))
		face, _ = ui.LoadFace("", 0)
	}
	if cfg.Font == "" && lang == i18n.Korean {
		log.LogAttrs(ctx, slog.LevelWarn, "built-in font has no Hangul glyphs; pass -font")
	}

	plugin := overlay.New(settings.NewFacade(s, file), overlay.Options{Watch: cfg.Watch, Log: log})
	opts := panel.Options{
		Language: lang,
		Picker:   &platform.Picker{Title: i18n.Text(lang, i18n.Browse)},
		Log:      log,
	}
	if cb, err := platform.NewClipboard(); err != nil {
		log.LogAttrs(ctx, slog.LevelWarn, "clipboard unavailable", slog.Any("error", err))
	} else {
		opts.Clipboard = cb
	}
	pn := panel.New(plugin, opts)
	pn.SetVisible(cfg.Panel)
	plugin.Toggle(!cfg.Disabled)
	if cfg.Image != "" {
		shown, err := plugin.Show(cfg.Image)
		if err != nil {
			log.LogAttrs(ctx, slog.LevelWarn, "show -image", slog.String("path", shown), slog.Any("error", err))
		} else {
			pn.SetPathText(shown)
		}
	}

	session := app.NewSession(plugin, pn, log)
	defer session.Close()

	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = ebiten.ScreenSizeInFullscreen()
	}
	ebiten.SetWindowTitle("oshi-overlay")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)

	log.LogAttrs(ctx, slog.LevelInfo, "starting", slog.String("settings", path), slog.Int("width", w), slog.Int("height", h), slog.String("lang", lang.Code()))
	err = ebiten.RunGameWithOptions(app.New(session, face), &ebiten.RunGameOptions{ScreenTransparent: true})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
