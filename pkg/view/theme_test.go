package view

import "testing"

func TestThemeStartsDark(t *testing.T) {
	tc := NewThemeController()
	if tc.Current() != Dark {
		t.Fatalf("expected dark mode initially, got %s", tc.Current())
	}
}

func TestThemeToggleIsIdempotentOverTwoCalls(t *testing.T) {
	tc := NewThemeController()
	before := tc.Current()

	tc.Toggle()
	if tc.Current() == before {
		t.Fatal("expected a single toggle to change the mode")
	}
	tc.Toggle()
	if tc.Current() != before {
		t.Fatalf("expected double toggle to restore %s, got %s", before, tc.Current())
	}
}

func TestPaletteDiffersByMode(t *testing.T) {
	dark := PaletteFor(Dark)
	light := PaletteFor(Light)
	if dark == light {
		t.Fatal("expected dark and light palettes to differ")
	}
	if dark != PaletteFor(Dark) {
		t.Fatal("expected PaletteFor to be pure")
	}
	for _, p := range []Palette{dark, light} {
		if p.Background == "" || p.Card == "" || p.Border == "" ||
			p.TextPrimary == "" || p.TextSecondary == "" || p.Input == "" {
			t.Fatalf("palette has empty style category: %+v", p)
		}
	}
}
