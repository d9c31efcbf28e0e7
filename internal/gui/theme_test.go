package gui

import (
	"testing"

	"fyne.io/fyne/v2/theme"

	"codeberg.org/snonux/hanzicards/internal/session"
)

func TestPaletteFor(t *testing.T) {
	if paletteFor(session.ThemeLight) != lightPalette {
		t.Error("light theme should use the light palette")
	}
	if paletteFor(session.ThemeDark) != darkPalette {
		t.Error("dark theme should use the dark palette")
	}
}

func TestAppThemeColors(t *testing.T) {
	tests := []struct {
		name    string
		theme   session.Theme
		palette palette
	}{
		{"light", session.ThemeLight, lightPalette},
		{"dark", session.ThemeDark, darkPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newAppTheme(tt.theme)
			checks := map[string]struct {
				got, want interface{}
			}{
				"background": {th.Color(theme.ColorNameBackground, theme.VariantLight), tt.palette.Background},
				"foreground": {th.Color(theme.ColorNameForeground, theme.VariantLight), tt.palette.Foreground},
				"button":     {th.Color(theme.ColorNameButton, theme.VariantLight), tt.palette.Button},
				"entry":      {th.Color(theme.ColorNameInputBackground, theme.VariantLight), tt.palette.Entry},
			}
			for name, c := range checks {
				if c.got != c.want {
					t.Errorf("%s = %v, want %v", name, c.got, c.want)
				}
			}
			if th.Size(theme.SizeNameText) != theme.DefaultTheme().Size(theme.SizeNameText) {
				t.Error("sizes should come from the default theme")
			}
		})
	}
}

func TestPaletteColours(t *testing.T) {
	if lightPalette.CardBackground != rgb(0xFF, 0xEC, 0xB3) || lightPalette.CardForeground != rgb(0x4E, 0x34, 0x2E) {
		t.Error("unexpected light card colours")
	}
	if darkPalette.CardBackground != rgb(0x42, 0x42, 0x42) || darkPalette.CardForeground != rgb(0xFF, 0xEC, 0xB3) {
		t.Error("unexpected dark card colours")
	}
}
