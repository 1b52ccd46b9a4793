package render

import "image/color"

// Background fills pixels between hexes.
var Background = color.RGBA{A: 255}

// OffColor is drawn for dormant cells.
var OffColor = color.RGBA{R: 51, G: 51, B: 51, A: 255}

// Palette returns one color per state for a rule with the given state count.
// Live cells run from dark red at low vitality toward orange at high vitality.
func Palette(states int) []color.RGBA {
	if states < 1 {
		return nil
	}
	palette := make([]color.RGBA, states)
	palette[0] = OffColor
	for age := 1; age < states; age++ {
		palette[age] = color.RGBA{
			R: uint8(min(age*20+170, 255)),
			G: uint8(min(age*age*age*3, 255)),
			A: 255,
		}
	}
	return palette
}

// Fill writes RGBA pixels for the given cell states into buf, which must hold
// 4*W*H bytes.
func Fill[S ~uint8](buf []byte, l *Layout, states []S, palette []color.RGBA) {
	last := len(palette) - 1
	for i, cell := range l.cells {
		col := Background
		if cell >= 0 && int(cell) < len(states) && last >= 0 {
			col = palette[min(int(states[cell]), last)]
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
