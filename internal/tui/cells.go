package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mandelview/internal/fractal"
)

const halfBlock = "▀"

// overBlack composites a pixel onto the black terminal background.
func overBlack(c color.RGBA) color.RGBA {
	if c.A == 255 {
		return c
	}
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: 255,
	}
}

func hex(c color.RGBA) lipgloss.Color {
	c = overBlack(c)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Cells renders a frame as half-block characters, two pixel rows per
// terminal row. An odd last row is paired with black.
func Cells(frame *fractal.Frame) string {
	var sb strings.Builder
	black := color.RGBA{A: 255}

	for y := 0; y < frame.Height; y += 2 {
		top := frame.Row(y)
		for x, c := range top {
			bottom := black
			if y+1 < frame.Height {
				bottom = frame.At(x, y+1)
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(hex(c)).
				Background(hex(bottom)).
				Render(halfBlock))
		}
		if y+2 < frame.Height {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
