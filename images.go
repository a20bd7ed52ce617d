package portfolio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Preview cards are drawn at 1/cardScale size with the 7x13 bitmap face and
// scaled up with nearest neighbour so the pixel font stays crisp.
const (
	cardWidth    = 1200
	cardHeight   = 630
	cardScale    = 5
	cardPadding  = 12
	cardLineGap  = 16
	cardMaxLines = 4
)

var (
	cardBackground = color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}
	cardAccent     = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	cardTitle      = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	cardFooter     = color.RGBA{R: 0xa1, G: 0xa1, B: 0xaa, A: 0xff}
)

// RenderCard writes a 1200x630 PNG with title wrapped over up to four lines
// and footer along the bottom edge.
func RenderCard(w io.Writer, title, footer string) error {
	small := image.NewRGBA(image.Rect(0, 0, cardWidth/cardScale, cardHeight/cardScale))
	draw.Draw(small, small.Bounds(), image.NewUniform(cardBackground), image.Point{}, draw.Src)
	draw.Draw(small, image.Rect(0, 0, 4, small.Bounds().Dy()), image.NewUniform(cardAccent), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	maxChars := (small.Bounds().Dx() - 2*cardPadding) / face.Advance
	d := &font.Drawer{Dst: small, Src: image.NewUniform(cardTitle), Face: face}
	for i, line := range wrapText(title, maxChars, cardMaxLines) {
		d.Dot = fixed.P(cardPadding, cardPadding+face.Ascent+i*cardLineGap)
		d.DrawString(line)
	}

	d.Src = image.NewUniform(cardFooter)
	d.Dot = fixed.P(cardPadding, small.Bounds().Dy()-cardPadding)
	d.DrawString(truncate(footer, maxChars))

	dst := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Src, nil)
	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("encode card: %w", err)
	}
	return nil
}

// wrapText breaks s on spaces into at most maxLines lines of width chars.
// Words longer than width are split; overflow is marked with "...".
func wrapText(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	var lines []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, string(cur))
			cur = nil
		}
	}
	for _, word := range strings.Fields(s) {
		rw := []rune(word)
		for len(rw) > width {
			flush()
			lines = append(lines, string(rw[:width]))
			rw = rw[width:]
		}
		switch {
		case len(cur) == 0:
			cur = rw
		case len(cur)+1+len(rw) <= width:
			cur = append(append(cur, ' '), rw...)
		default:
			flush()
			cur = rw
		}
	}
	flush()
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = truncate(lines[maxLines-1]+"...", width)
	}
	return lines
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
