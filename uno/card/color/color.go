package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color of a card. Wild is the color of cards whose effective color is chosen when played.
type Color int

const (
	Wild Color = iota
	Red
	Yellow
	Green
	Blue
)

// Playable lists the colors a wild card may be turned into.
var Playable = []Color{Red, Yellow, Green, Blue}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var colors = map[Color]colorStruct{
	Wild: {
		name:          "wild",
		colorFunction: color.New(color.FgHiMagenta).SprintfFunc(),
	},
	Red: {
		name:          "red",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Yellow: {
		name:          "yellow",
		colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
	},
	Green: {
		name:          "green",
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Blue: {
		name:          "blue",
		colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
	},
}

var Stdout io.Writer = color.Output

// Disable turns off ANSI escapes for every painted string, e.g. when output is not a terminal.
func Disable() {
	color.NoColor = true
}

func (c Color) Name() string {
	if s, ok := colors[c]; ok {
		return s.name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) Paint(text string) string {
	s, ok := colors[c]
	if !ok {
		return text
	}
	return s.colorFunction("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	return c.Paint(fmt.Sprintf(format, args...))
}

// IsPlayable reports whether c is one of the four colors a wild may become.
func (c Color) IsPlayable() bool {
	return c >= Red && c <= Blue
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByName resolves one of the playable colors by its name or first letter.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Playable {
		n := c.Name()
		if name == n || (len(name) == 1 && name[0] == n[0]) {
			return c, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", name)
}
