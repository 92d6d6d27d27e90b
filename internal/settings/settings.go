// Package settings holds the persisted overlay configuration and the
// editable fields the settings panel binds to.
package settings

// Settings is the persisted user configuration.
type Settings struct {
	MaxWidth      int    `toml:"max_width"`
	MaxHeight     int    `toml:"max_height"`
	LastImagePath string `toml:"last_image_path"`
	Language      string `toml:"language,omitempty"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{MaxWidth: 500, MaxHeight: 500}
}

// MinBound is the smallest accepted overlay bound in pixels.
const MinBound = 100

// normalize replaces unusable bounds read from disk with defaults.
func (s *Settings) normalize() {
	def := Defaults()
	if s.MaxWidth <= 0 {
		s.MaxWidth = def.MaxWidth
	}
	if s.MaxHeight <= 0 {
		s.MaxHeight = def.MaxHeight
	}
}
