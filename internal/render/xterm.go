package render

import "image/color"

// xtermLevels are the channel intensities of the 6x6x6 xterm colour cube.
var xtermLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// Xterm256 returns the index of the closest colour in the xterm 256-colour
// cube (16-231) or grey ramp (232-255).
func Xterm256(c color.RGBA) int {
	r, g, b := cubeLevel(c.R), cubeLevel(c.G), cubeLevel(c.B)
	cube := 16 + 36*r + 6*g + b
	cubeDist := dist(c, xtermLevels[r], xtermLevels[g], xtermLevels[b])

	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	grey := (avg - 8 + 5) / 10
	if grey < 0 {
		grey = 0
	}
	if grey > 23 {
		grey = 23
	}
	gv := uint8(8 + 10*grey)
	if dist(c, gv, gv, gv) < cubeDist {
		return 232 + grey
	}
	return cube
}

func cubeLevel(v uint8) int {
	best, bestDist := 0, 256
	for i, l := range xtermLevels {
		d := int(v) - int(l)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func dist(c color.RGBA, r, g, b uint8) int {
	dr := int(c.R) - int(r)
	dg := int(c.G) - int(g)
	db := int(c.B) - int(b)
	return dr*dr + dg*dg + db*db
}
