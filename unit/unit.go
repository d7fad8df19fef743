// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units and values.

A Value is a value with a Unit attached.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device. Pixels, or px, are the unit the viewport
is measured in, and the unit every layout result is expressed in.

Scene descriptions should use dps so that the same scene looks the same
across displays; a Metric converts them to pixels before layout.

*/
package unit

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a value with a unit.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

// Metric converts Values to device pixels.
type Metric struct {
	// PxPerDp is the device pixels per dp. A zero value
	// is treated as 1.
	PxPerDp float32
}

const (
	// UnitPx represent device pixels in the resolution of
	// the underlying display.
	UnitPx Unit = iota
	// UnitDp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	UnitDp
)

// Px returns the Value for v device pixels.
func Px(v float32) Value {
	return Value{V: v, U: UnitPx}
}

// Dp returns the Value for v device independent
// pixels.
func Dp(v float32) Value {
	return Value{V: v, U: UnitDp}
}

// Scale returns the value scaled by s.
func (v Value) Scale(s float32) Value {
	v.V *= s
	return v
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitDp:
		return "dp"
	default:
		panic("unknown unit")
	}
}

// Parse parses a number with an optional px or dp suffix. A bare
// number is in pixels.
func Parse(s string) (Value, error) {
	u := UnitPx
	num := s
	switch {
	case strings.HasSuffix(s, "dp"):
		u, num = UnitDp, s[:len(s)-2]
	case strings.HasSuffix(s, "px"):
		num = s[:len(s)-2]
	}
	f, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return Value{}, fmt.Errorf("unit: invalid value %q", s)
	}
	return Value{V: float32(f), U: u}, nil
}

// Px converts v to device pixels.
func (m Metric) Px(v Value) float32 {
	switch v.U {
	case UnitDp:
		return v.V * m.scale()
	default:
		return v.V
	}
}

// Dp converts v dps to device pixels.
func (m Metric) Dp(v float32) float32 {
	return m.Px(Dp(v))
}

// PxToDp converts v device pixels to dps.
func (m Metric) PxToDp(v float32) Value {
	return Dp(v / m.scale())
}

func (m Metric) scale() float32 {
	if m.PxPerDp == 0 {
		return 1
	}
	return m.PxPerDp
}

// Add a list of Values, in device pixels.
func Add(m Metric, values ...Value) Value {
	var sum Value
	for _, v := range values {
		sum, v = compatible(m, sum, v)
		sum.V += v.V
	}
	return sum
}

func compatible(m Metric, v1, v2 Value) (Value, Value) {
	if v1.U == v2.U {
		return v1, v2
	}
	if v1.V == 0 {
		v1.U = v2.U
		return v1, v2
	}
	if v2.V == 0 {
		v2.U = v1.U
		return v1, v2
	}
	return Px(m.Px(v1)), Px(m.Px(v2))
}
