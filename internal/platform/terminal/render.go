package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/colorguess/internal/core"
)

// frameBorder draws the swatch frame with plain ASCII so it survives any font.
var frameBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     " ",
	TopRight:    " ",
	BottomLeft:  " ",
	BottomRight: " ",
}

// Renderer turns colors into displayable strings.
type Renderer struct {
	width int
	frame lipgloss.Style
}

// NewRenderer creates a renderer drawing swatches width cells wide.
func NewRenderer(width int) *Renderer {
	return &Renderer{
		width: width,
		frame: lipgloss.NewStyle().
			Border(frameBorder).
			Padding(0, 1),
	}
}

// Block returns a run of spaces with c as a 24-bit background.
// The sequence is always true color; terminals without support fall back on their own.
func (r *Renderer) Block(c core.Color) string {
	bg := termenv.TrueColor.Color(c.Hex())
	return termenv.String(strings.Repeat(" ", r.width)).Background(bg).String()
}

// Framed draws a border around content.
func (r *Renderer) Framed(content string) string {
	return r.frame.Render(content)
}
