package sand

import (
	"strconv"

	"sandbox/internal/core"
)

const (
	paramFireLife  = "fire_life"
	paramCactusMin = "cactus_min"
	paramCactusMax = "cactus_max"

	maxFireLife     = 1000
	maxCactusHeight = 64
)

// Parameters reports the current tunables for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(w.cfg.Seed, 10)},
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				intParam(paramFireLife, "Fire life", params.FireLife),
				intParam(paramCactusMin, "Cactus min", params.CactusMinHeight),
				intParam(paramCactusMax, "Cactus max", params.CactusMaxHeight),
			},
		},
	}}
}

// ParameterControls lists the parameters adjustable at runtime.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramFireLife, Label: "Fire life", Type: core.ParamTypeInt, Step: 5},
		{Key: paramCactusMin, Label: "Cactus min", Type: core.ParamTypeInt, Step: 1},
		{Key: paramCactusMax, Label: "Cactus max", Type: core.ParamTypeInt, Step: 1},
	}
}

// SetIntParameter updates a rule constant, clamping it to its valid range.
// It reports false for unknown keys.
func (w *World) SetIntParameter(key string, value int) bool {
	p := &w.cfg.Params
	switch key {
	case paramFireLife:
		p.FireLife = clamp(value, 1, maxFireLife)
	case paramCactusMin:
		p.CactusMinHeight = clamp(value, 1, p.CactusMaxHeight)
	case paramCactusMax:
		p.CactusMaxHeight = clamp(value, p.CactusMinHeight, maxCactusHeight)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
