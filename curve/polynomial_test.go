package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wan9hao/apollo/curve"
)

func TestQuinticBoundaryConditions(t *testing.T) {
	x0, dx0, ddx0 := 1.0, 2.0, 0.5
	x1, dx1, ddx1 := 10.0, -1.0, 0.2
	p := 6.0
	c := curve.NewQuinticPolynomialCurve(x0, dx0, ddx0, x1, dx1, ddx1, p)

	assert.Equal(t, p, c.ParamLength())
	assert.InDelta(t, x0, c.Evaluate(0, 0), 1e-9)
	assert.InDelta(t, dx0, c.Evaluate(1, 0), 1e-9)
	assert.InDelta(t, ddx0, c.Evaluate(2, 0), 1e-9)
	assert.InDelta(t, x1, c.Evaluate(0, p), 1e-9)
	assert.InDelta(t, dx1, c.Evaluate(1, p), 1e-9)
	assert.InDelta(t, ddx1, c.Evaluate(2, p), 1e-9)
}

func TestQuinticConstant(t *testing.T) {
	// 两端状态相同且导数为零时退化为常值曲线
	c := curve.NewQuinticPolynomialCurve(0.5, 0, 0, 0.5, 0, 0, 30)
	for _, s := range []float64{0, 7.5, 15, 29} {
		assert.InDelta(t, 0.5, c.Evaluate(0, s), 1e-9)
		assert.InDelta(t, 0.0, c.Evaluate(1, s), 1e-9)
		assert.InDelta(t, 0.0, c.Evaluate(2, s), 1e-9)
	}
}

func TestQuarticBoundaryConditions(t *testing.T) {
	x0, dx0, ddx0 := 0.0, 5.0, 0.5
	dx1, ddx1 := 10.0, 0.0
	p := 8.0
	c := curve.NewQuarticPolynomialCurve(x0, dx0, ddx0, dx1, ddx1, p)

	assert.Equal(t, p, c.ParamLength())
	assert.InDelta(t, x0, c.Evaluate(0, 0), 1e-9)
	assert.InDelta(t, dx0, c.Evaluate(1, 0), 1e-9)
	assert.InDelta(t, ddx0, c.Evaluate(2, 0), 1e-9)
	assert.InDelta(t, dx1, c.Evaluate(1, p), 1e-9)
	assert.InDelta(t, ddx1, c.Evaluate(2, p), 1e-9)
}

func TestQuarticConstantSpeed(t *testing.T) {
	// 首末速度相同且加速度为零时退化为匀速直线
	c := curve.NewQuarticPolynomialCurve(0, 10, 0, 10, 0, 8)
	for _, tt := range []float64{0, 2, 5.5, 8} {
		assert.InDelta(t, 10*tt, c.Evaluate(0, tt), 1e-9)
		assert.InDelta(t, 10.0, c.Evaluate(1, tt), 1e-9)
		assert.InDelta(t, 0.0, c.Evaluate(3, tt), 1e-9)
	}
}

func TestPolynomialPanicsOnInvalidParam(t *testing.T) {
	assert.Panics(t, func() { curve.NewQuinticPolynomialCurve(0, 0, 0, 1, 0, 0, 0) })
	assert.Panics(t, func() { curve.NewQuarticPolynomialCurve(0, 0, 0, 1, 0, -1) })
}
