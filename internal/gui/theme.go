package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"codeberg.org/snonux/hanzicards/internal/session"
)

// palette is the set of colours one session theme paints with
type palette struct {
	Background     color.Color
	Foreground     color.Color
	CardBackground color.Color
	CardForeground color.Color
	Button         color.Color
	Entry          color.Color
	Placeholder    color.Color
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

var (
	lightPalette = palette{
		Background:     rgb(0xf4, 0xf4, 0xf4),
		Foreground:     rgb(0x00, 0x00, 0x00),
		CardBackground: rgb(0xff, 0xec, 0xb3),
		CardForeground: rgb(0x4e, 0x34, 0x2e),
		Button:         rgb(0xe0, 0xe0, 0xe0),
		Entry:          rgb(0xff, 0xff, 0xff),
		Placeholder:    rgb(0x80, 0x80, 0x80),
	}
	darkPalette = palette{
		Background:     rgb(0x2e, 0x2e, 0x2e),
		Foreground:     rgb(0xff, 0xff, 0xff),
		CardBackground: rgb(0x42, 0x42, 0x42),
		CardForeground: rgb(0xff, 0xec, 0xb3),
		Button:         rgb(0x55, 0x55, 0x55),
		Entry:          rgb(0x61, 0x61, 0x61),
		Placeholder:    rgb(0x80, 0x80, 0x80),
	}
)

func paletteFor(t session.Theme) palette {
	if t == session.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// appTheme maps a palette onto Fyne's colour names and leaves fonts,
// icons and sizes to the default theme
type appTheme struct {
	palette palette
	variant fyne.ThemeVariant
}

var _ fyne.Theme = (*appTheme)(nil)

func newAppTheme(t session.Theme) *appTheme {
	variant := theme.VariantLight
	if t == session.ThemeDark {
		variant = theme.VariantDark
	}
	return &appTheme{palette: paletteFor(t), variant: variant}
}

func (t *appTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return t.palette.Background
	case theme.ColorNameForeground:
		return t.palette.Foreground
	case theme.ColorNameButton:
		return t.palette.Button
	case theme.ColorNameInputBackground:
		return t.palette.Entry
	case theme.ColorNamePlaceHolder:
		return t.palette.Placeholder
	}
	return theme.DefaultTheme().Color(name, t.variant)
}

func (t *appTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *appTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *appTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
