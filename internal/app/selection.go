package app

import "sandbox/internal/sims/sand"

var keyKinds = map[rune]sand.Kind{
	'1': sand.Sand,
	'2': sand.Water,
	'3': sand.Fire,
	'4': sand.Gunpowder,
	'5': sand.Seed,
	'6': sand.Cactus,
	'0': sand.Empty,
}

// KindForKey maps a digit key to the particle kind it selects.
func KindForKey(r rune) (sand.Kind, bool) {
	k, ok := keyKinds[r]
	return k, ok
}

// Label is the status text shown for the current selection.
func Label(k sand.Kind) string {
	return "Current: " + k.String()
}

// ScreenToCell converts a pixel position into grid coordinates for a view
// drawn at the given scale. It reports false for positions left of or above
// the view; callers still check the grid bounds.
func ScreenToCell(px, py, scale int) (int, int, bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	if scale <= 0 {
		scale = 1
	}
	return px / scale, py / scale, true
}
