package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wan9hao/apollo/constraint"
	"github.com/wan9hao/apollo/curve"
	"github.com/wan9hao/apollo/utils/config"
)

func TestLongitudinalChecker(t *testing.T) {
	cfg := config.Default()
	check := constraint.NewLongitudinalChecker(cfg)

	// 温和加速：10m/s到12m/s
	gentle := curve.NewQuarticPolynomialCurve(0, 10, 0, 12, 0, cfg.Horizon.TimeLength)
	assert.True(t, check(gentle))

	// 末端速度远超速度上界
	tooFast := curve.NewQuarticPolynomialCurve(0, 10, 0, 100, 0, cfg.Horizon.TimeLength)
	assert.False(t, check(tooFast))

	// 末端速度为负（倒车）
	reversing := curve.NewQuarticPolynomialCurve(0, 5, 0, -5, 0, cfg.Horizon.TimeLength)
	assert.False(t, check(reversing))
}

func TestLateralChecker(t *testing.T) {
	cfg := config.Default()
	check := constraint.NewLateralChecker(cfg)
	lon := curve.NewQuarticPolynomialCurve(0, 10, 0, 10, 0, cfg.Horizon.TimeLength)

	// 平直横向曲线无诱导加速度
	flat := curve.NewQuinticPolynomialCurve(0, 0, 0, 0, 0, 0, 30)
	assert.True(t, check(flat, lon))

	// 高速下3米内完成3米横移，诱导横向加速度越界
	sharp := curve.NewQuinticPolynomialCurve(0, 0, 0, 3, 0, 0, 3)
	assert.False(t, check(sharp, lon))
}
