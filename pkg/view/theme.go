// Package view holds the mutable per-page-view state: display mode, section
// visibility, contact form lifecycle and the active project selection. Each
// holder is owned by exactly one page view and is safe for concurrent use by
// the handlers serving that view. Nothing in this package persists across
// page loads.
package view

import "sync"

// Mode is the binary display mode.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// ThemeController flips between dark and light mode. The site starts dark.
type ThemeController struct {
	mu   sync.Mutex
	mode Mode
}

func NewThemeController() *ThemeController {
	return &ThemeController{mode: Dark}
}

// Toggle flips the display mode.
func (t *ThemeController) Toggle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mode == Dark {
		t.mode = Light
	} else {
		t.mode = Dark
	}
}

// Current returns the active display mode.
func (t *ThemeController) Current() Mode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

// Palette is the full set of style selections derived from the display mode:
// page background, card surface, border, primary text, secondary text and
// input field. Values are Tailwind class strings consumed by the render layer.
type Palette struct {
	Background    string
	Card          string
	Border        string
	TextPrimary   string
	TextSecondary string
	Input         string
}

var darkPalette = Palette{
	Background:    "bg-[#0D1117]",
	Card:          "bg-[#161B22]",
	Border:        "border-[#21262D]",
	TextPrimary:   "text-[#F0F6FC]",
	TextSecondary: "text-[#8B949E]",
	Input:         "bg-[#0D1117] border-[#21262D] text-[#F0F6FC]",
}

var lightPalette = Palette{
	Background:    "bg-[#FFFFFF]",
	Card:          "bg-[#F6F8FA]",
	Border:        "border-[#D0D7DE]",
	TextPrimary:   "text-[#1F2328]",
	TextSecondary: "text-[#59636E]",
	Input:         "bg-[#FFFFFF] border-[#D0D7DE] text-[#1F2328]",
}

// PaletteFor derives the style selections for a mode. Pure function of its
// input.
func PaletteFor(mode Mode) Palette {
	if mode == Light {
		return lightPalette
	}
	return darkPalette
}
