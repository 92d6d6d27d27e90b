package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Settings string
	TPS      int
	Width    int
	Height   int
	Image    string
	Watch    bool
	Lang     string
	Font     string
	FontSize float64
	Log      string
	Lines    bool
	Panel    bool
	Disabled bool
}

// NewConfig returns a Config populated with sensible defaults. An empty
// Settings path means the per-user config directory.
func NewConfig() *Config {
	return &Config{TPS: 60, FontSize: 13, Log: "info", Panel: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Settings, "settings", c.Settings, "settings file (default: user config dir)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "window width, 0 for the monitor width")
	fs.IntVar(&c.Height, "height", c.Height, "window height, 0 for the monitor height")
	fs.StringVar(&c.Image, "image", c.Image, "image to show this session; the saved image is kept for the next start")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "reload the image when it changes on disk")
	fs.StringVar(&c.Lang, "lang", c.Lang, "panel language (en, ko); default from settings or $LANG")
	fs.StringVar(&c.Font, "font", c.Font, "TrueType/OpenType font for the panel")
	fs.Float64Var(&c.FontSize, "font-size", c.FontSize, "panel font size in points")
	fs.StringVar(&c.Log, "log", c.Log, "log level (debug, info, warn, error)")
	fs.BoolVar(&c.Lines, "lines", c.Lines, "include source locations in logs")
	fs.BoolVar(&c.Panel, "panel", c.Panel, "show the settings panel on start")
	fs.BoolVar(&c.Disabled, "disabled", c.Disabled, "start with the overlay turned off")
}
