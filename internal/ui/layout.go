package ui

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"sandbox/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
	statusLine     = 16
)

// controlState caches the HUD view of one adjustable parameter.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// layoutControls positions the -/+ buttons of each row against the right
// edge of a panel of the given width.
func layoutControls(controls []controlState, width int) {
	if width <= 0 {
		return
	}
	for i := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		controls[i].top = top
		controls[i].minusRect = minus
		controls[i].plusRect = plus
	}
}

// refreshControls copies the snapshot values into the control rows.
func refreshControls(controls []controlState, snap core.ParameterSnapshot) {
	for i := range controls {
		state := &controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok || state.control.Type != core.ParamTypeInt {
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.intValue = parsed
		state.value = strconv.Itoa(parsed)
		state.hasValue = true
	}
}

// hitControl returns the index of the row whose button contains (x, y) and
// the direction of the button, or -1 when nothing was hit.
func hitControl(controls []controlState, x, y int) (int, int) {
	for i := range controls {
		if !controls[i].hasValue {
			continue
		}
		if pointInRect(x, y, controls[i].minusRect) {
			return i, -1
		}
		if pointInRect(x, y, controls[i].plusRect) {
			return i, 1
		}
	}
	return -1, 0
}

func adjustTarget(state controlState, direction int) int {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	return state.intValue + direction*step
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s Controls", strings.ToUpper(name[:1])+name[1:])
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
