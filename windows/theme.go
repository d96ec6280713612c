package windows

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme defines the visual theme for the appendix browser
type CustomTheme struct{}

var _ fyne.Theme = (*CustomTheme)(nil)

func (m CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if variant == theme.VariantLight {
		switch name {
		case theme.ColorNameBackground:
			return color.NRGBA{R: 0xfa, G: 0xfa, B: 0xf7, A: 0xff} // Paper white
		case theme.ColorNameButton:
			return color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff} // Indigo
		case theme.ColorNamePrimary:
			return color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff} // Indigo
		case theme.ColorNameHover:
			return color.NRGBA{R: 0x79, G: 0x86, B: 0xcb, A: 0xff} // Lighter indigo
		case theme.ColorNameFocus:
			return color.NRGBA{R: 0x30, G: 0x3f, B: 0x9f, A: 0xff} // Darker indigo
		case theme.ColorNameForeground:
			return color.NRGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xff} // Near-black text
		case theme.ColorNameInputBackground:
			return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff} // White input
		case theme.ColorNameSelection:
			return color.NRGBA{R: 0xc5, G: 0xca, B: 0xe9, A: 0xff} // Pale indigo selection
		case theme.ColorNameForegroundOnPrimary:
			return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff} // White on indigo
		}
	} else {
		switch name {
		case theme.ColorNameBackground:
			return color.NRGBA{R: 0x20, G: 0x21, B: 0x24, A: 0xff} // Dark background
		case theme.ColorNameButton:
			return color.NRGBA{R: 0x79, G: 0x86, B: 0xcb, A: 0xff} // Soft indigo for dark mode
		case theme.ColorNamePrimary:
			return color.NRGBA{R: 0x79, G: 0x86, B: 0xcb, A: 0xff}
		case theme.ColorNameHover:
			return color.NRGBA{R: 0x9f, G: 0xa8, B: 0xda, A: 0xff}
		case theme.ColorNameFocus:
			return color.NRGBA{R: 0xc5, G: 0xca, B: 0xe9, A: 0xff}
		case theme.ColorNameForeground:
			return color.NRGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff} // Light text
		case theme.ColorNameInputBackground:
			return color.NRGBA{R: 0x2b, G: 0x2c, B: 0x30, A: 0xff}
		case theme.ColorNameSelection:
			return color.NRGBA{R: 0x39, G: 0x49, B: 0xab, A: 0xff}
		case theme.ColorNameForegroundOnPrimary:
			return color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
		}
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (m CustomTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m CustomTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 20
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameSeparatorThickness:
		return 1
	}
	return theme.DefaultTheme().Size(name)
}
