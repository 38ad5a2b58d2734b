package sand

import "strconv"

// Params holds tunable rule constants.
type Params struct {
	FireLife        int
	CactusMinHeight int
	CactusMaxHeight int
}

// Config controls the world dimensions, seed and rule constants.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  300,
		Height: 200,
		Seed:   1337,
		Params: Params{
			FireLife:        FireLife,
			CactusMinHeight: 4,
			CactusMaxHeight: 14,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fire_life"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.FireLife = parsed
		}
	}
	if v, ok := cfg["cactus_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.CactusMinHeight = parsed
		}
	}
	if v, ok := cfg["cactus_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.CactusMaxHeight = parsed
		}
	}
	if c.Params.CactusMaxHeight < c.Params.CactusMinHeight {
		c.Params.CactusMaxHeight = c.Params.CactusMinHeight
	}
	return c
}
