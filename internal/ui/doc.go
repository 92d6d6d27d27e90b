// Package ui draws the overlay and the settings panel with ebiten and turns
// ebiten input into input.Queue events. Everything but this file needs the
// ebiten build tag.
package ui
