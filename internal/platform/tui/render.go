package tui

import (
	"strings"

	"github.com/vovakirdan/tui-life/internal/render"
)

// cellGlyphs are the runes the world view draws with.
var cellGlyphs = render.DefaultGlyphs

// RenderScreen converts a screen buffer to a styled string for display.
// Groups adjacent live or non-live cells to minimize ANSI escape sequences.
func RenderScreen(s *render.Screen, theme Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			alive := s.Get(x, y) == cellGlyphs.Alive

			var run strings.Builder
			for x < s.Width() && (s.Get(x, y) == cellGlyphs.Alive) == alive {
				run.WriteRune(s.Get(x, y))
				x++
			}

			style := theme.Dead
			if alive {
				style = theme.Alive
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
