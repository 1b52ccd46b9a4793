//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"hexlife/pkg/sims/hexlife"
)

// HexPainter uploads a world's states into a single image each frame.
type HexPainter struct {
	layout  *Layout
	palette []color.RGBA
	img     *ebiten.Image
	buf     []byte
}

// NewHexPainter allocates a painter for the given layout and state count.
func NewHexPainter(l *Layout, states int) *HexPainter {
	return &HexPainter{
		layout:  l,
		palette: Palette(states),
		img:     ebiten.NewImage(l.W, l.H),
		buf:     make([]byte, 4*l.W*l.H),
	}
}

// Draw renders states onto dst.
func (p *HexPainter) Draw(dst *ebiten.Image, states []hexlife.State) {
	Fill(p.buf, p.layout, states, p.palette)
	p.img.WritePixels(p.buf)
	dst.DrawImage(p.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (p *HexPainter) Size() (int, int) { return p.layout.W, p.layout.H }
