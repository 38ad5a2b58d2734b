package ui

import (
	"testing"

	"sandbox/internal/core"
	"sandbox/internal/sims/sand"
)

func TestLayoutAndHitControls(t *testing.T) {
	world := sand.New(8, 8)
	var controls []controlState
	for _, ctrl := range world.ParameterControls() {
		controls = append(controls, controlState{control: ctrl})
	}
	layoutControls(controls, 180)
	refreshControls(controls, world.Parameters())

	first := controls[0]
	if !first.hasValue || first.intValue != sand.FireLife {
		t.Fatalf("expected fire life %d, got %+v", sand.FireLife, first)
	}
	if first.plusRect.Max.X != 180-panelPadding {
		t.Fatalf("plus button not anchored to the right edge: %v", first.plusRect)
	}
	if first.minusRect.Max.X+buttonGap != first.plusRect.Min.X {
		t.Fatalf("minus button misplaced: %v vs %v", first.minusRect, first.plusRect)
	}

	c := controls[1].plusRect.Min
	i, dir := hitControl(controls, c.X+1, c.Y+1)
	if i != 1 || dir != 1 {
		t.Fatalf("expected plus of row 1, got row %d dir %d", i, dir)
	}
	if i, _ := hitControl(controls, 0, 0); i != -1 {
		t.Fatalf("expected miss, got row %d", i)
	}
	if got := adjustTarget(controls[0], -1); got != sand.FireLife-5 {
		t.Fatalf("expected step of 5, got %d", got)
	}
}

func TestRefreshControlsMissingKey(t *testing.T) {
	controls := []controlState{{control: core.ParameterControl{Key: "nope", Type: core.ParamTypeInt}}}
	refreshControls(controls, core.ParameterSnapshot{})
	if controls[0].hasValue || controls[0].value != "--" {
		t.Fatalf("missing parameter should render as placeholder, got %+v", controls[0])
	}
	if _, dir := hitControl(controls, 0, 0); dir != 0 {
		t.Fatal("rows without a value must not be clickable")
	}
}

func TestBuildTitle(t *testing.T) {
	if got := buildTitle(sand.New(2, 2)); got != "Sand Controls" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := buildTitle(nil); got != "Controls" {
		t.Fatalf("unexpected nil title %q", got)
	}
}
