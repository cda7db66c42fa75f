package highlight

import (
	"sort"
	"strings"

	"github.com/dshills/hecto/internal/renderer/annotated"
	"github.com/dshills/hecto/internal/renderer/core"
)

// Theme maps annotation kinds to terminal styles.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Background is the editor background color.
	Background core.Color

	// Foreground is the default text color.
	Foreground core.Color

	// StatusBar is the style of the status line.
	StatusBar core.Style

	// Styles maps annotation kinds to their styles.
	Styles map[annotated.Kind]core.Style
}

// StyleFor returns the style for an annotation kind.
func (t *Theme) StyleFor(kind annotated.Kind) core.Style {
	if style, ok := t.Styles[kind]; ok {
		return style
	}
	return t.TextStyle()
}

// TextStyle returns the style of unannotated text.
func (t *Theme) TextStyle() core.Style {
	return core.Style{
		Foreground: t.Foreground,
		Background: t.Background,
	}
}

var themes = map[string]func() *Theme{
	"default":        DefaultTheme,
	"monokai":        MonokaiTheme,
	"dracula":        DraculaTheme,
	"solarized-dark": SolarizedDarkTheme,
	"light":          LightTheme,
}

// ThemeByName returns the named theme. Names are case-insensitive.
func ThemeByName(name string) (*Theme, bool) {
	fn, ok := themes[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// ThemeNames returns the names accepted by ThemeByName, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultTheme uses the terminal's own colors and a small palette.
func DefaultTheme() *Theme {
	return &Theme{
		Name:       "Default",
		Background: core.ColorDefault,
		Foreground: core.ColorDefault,
		StatusBar:  core.DefaultStyle().Reverse(),
		Styles: kindStyles(palette{
			number:     core.ColorFromRGB(181, 206, 168),
			typ:        core.ColorFromRGB(78, 201, 176),
			keyword:    core.ColorFromRGB(86, 156, 214),
			knownValue: core.ColorFromRGB(79, 193, 255),
			char:       core.ColorFromRGB(215, 186, 125),
			lifetime:   core.ColorFromRGB(197, 134, 192),
			comment:    core.ColorFromRGB(106, 153, 85),
			str:        core.ColorFromRGB(206, 145, 120),
			match:      core.ColorFromRGB(81, 81, 40),
			selected:   core.ColorFromRGB(180, 140, 30),
		}),
	}
}

// MonokaiTheme returns a Monokai-inspired theme.
func MonokaiTheme() *Theme {
	return &Theme{
		Name:       "Monokai",
		Background: core.ColorFromRGB(39, 40, 34),
		Foreground: core.ColorFromRGB(248, 248, 242),
		StatusBar:  core.NewStyle(core.ColorFromRGB(39, 40, 34)).WithBackground(core.ColorFromRGB(166, 226, 46)),
		Styles: kindStyles(palette{
			number:     core.ColorFromRGB(174, 129, 255),
			typ:        core.ColorFromRGB(102, 217, 239),
			keyword:    core.ColorFromRGB(249, 38, 114),
			knownValue: core.ColorFromRGB(174, 129, 255),
			char:       core.ColorFromRGB(230, 219, 116),
			lifetime:   core.ColorFromRGB(253, 151, 31),
			comment:    core.ColorFromRGB(117, 113, 94),
			str:        core.ColorFromRGB(230, 219, 116),
			match:      core.ColorFromRGB(73, 72, 62),
			selected:   core.ColorFromRGB(253, 151, 31),
		}),
	}
}

// DraculaTheme returns a Dracula-inspired theme.
func DraculaTheme() *Theme {
	return &Theme{
		Name:       "Dracula",
		Background: core.ColorFromRGB(40, 42, 54),
		Foreground: core.ColorFromRGB(248, 248, 242),
		StatusBar:  core.NewStyle(core.ColorFromRGB(248, 248, 242)).WithBackground(core.ColorFromRGB(68, 71, 90)),
		Styles: kindStyles(palette{
			number:     core.ColorFromRGB(189, 147, 249),
			typ:        core.ColorFromRGB(139, 233, 253),
			keyword:    core.ColorFromRGB(255, 121, 198),
			knownValue: core.ColorFromRGB(189, 147, 249),
			char:       core.ColorFromRGB(241, 250, 140),
			lifetime:   core.ColorFromRGB(255, 184, 108),
			comment:    core.ColorFromRGB(98, 114, 164),
			str:        core.ColorFromRGB(241, 250, 140),
			match:      core.ColorFromRGB(68, 71, 90),
			selected:   core.ColorFromRGB(255, 184, 108),
		}),
	}
}

// SolarizedDarkTheme returns a Solarized Dark theme.
func SolarizedDarkTheme() *Theme {
	return &Theme{
		Name:       "Solarized Dark",
		Background: core.ColorFromRGB(0, 43, 54),
		Foreground: core.ColorFromRGB(131, 148, 150),
		StatusBar:  core.NewStyle(core.ColorFromRGB(0, 43, 54)).WithBackground(core.ColorFromRGB(147, 161, 161)),
		Styles: kindStyles(palette{
			number:     core.ColorFromRGB(42, 161, 152),
			typ:        core.ColorFromRGB(181, 137, 0),
			keyword:    core.ColorFromRGB(133, 153, 0),
			knownValue: core.ColorFromRGB(203, 75, 22),
			char:       core.ColorFromRGB(42, 161, 152),
			lifetime:   core.ColorFromRGB(108, 113, 196),
			comment:    core.ColorFromRGB(88, 110, 117),
			str:        core.ColorFromRGB(42, 161, 152),
			match:      core.ColorFromRGB(7, 54, 66),
			selected:   core.ColorFromRGB(181, 137, 0),
		}),
	}
}

// LightTheme returns a light theme.
func LightTheme() *Theme {
	return &Theme{
		Name:       "Light",
		Background: core.ColorFromRGB(255, 255, 255),
		Foreground: core.ColorFromRGB(0, 0, 0),
		StatusBar:  core.NewStyle(core.ColorFromRGB(255, 255, 255)).WithBackground(core.ColorFromRGB(0, 0, 0)),
		Styles: kindStyles(palette{
			number:     core.ColorFromRGB(9, 134, 88),
			typ:        core.ColorFromRGB(38, 127, 153),
			keyword:    core.ColorFromRGB(0, 0, 255),
			knownValue: core.ColorFromRGB(0, 112, 193),
			char:       core.ColorFromRGB(163, 21, 21),
			lifetime:   core.ColorFromRGB(175, 0, 219),
			comment:    core.ColorFromRGB(0, 128, 0),
			str:        core.ColorFromRGB(163, 21, 21),
			match:      core.ColorFromRGB(255, 240, 170),
			selected:   core.ColorFromRGB(255, 200, 60),
		}),
	}
}

type palette struct {
	number, typ, keyword, knownValue, char, lifetime, comment, str core.Color

	// match and selected are background colors
	match, selected core.Color
}

func kindStyles(p palette) map[annotated.Kind]core.Style {
	return map[annotated.Kind]core.Style{
		annotated.KindNumber:        core.NewStyle(p.number),
		annotated.KindType:          core.NewStyle(p.typ),
		annotated.KindKeyword:       core.NewStyle(p.keyword).Bold(),
		annotated.KindKnownValue:    core.NewStyle(p.knownValue),
		annotated.KindChar:          core.NewStyle(p.char),
		annotated.KindLifetime:      core.NewStyle(p.lifetime).Italic(),
		annotated.KindComment:       core.NewStyle(p.comment).Italic(),
		annotated.KindString:        core.NewStyle(p.str),
		annotated.KindMatch:         core.DefaultStyle().WithBackground(p.match),
		annotated.KindSelectedMatch: core.DefaultStyle().WithBackground(p.selected).Bold(),
	}
}
