package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wan9hao/apollo/planning"
	"github.com/wan9hao/apollo/utils/config"
)

func TestGuideVelocityCruise(t *testing.T) {
	cfg := config.Default()
	ref := planning.ComputeGuideVelocity(
		[3]float64{0, 10, 0}, planning.NewCruiseTarget(10), cfg)
	require.Len(t, ref, 80)
	for _, v := range ref {
		assert.InDelta(t, 10.0, v, 1e-9)
	}
}

func TestGuideVelocityComfortableStop(t *testing.T) {
	cfg := config.Default()
	// 停车点40米：所需减速度-1.25比舒适减速度-2.25更缓，
	// 先巡航约1.78秒再以舒适减速度刹停，约6.2秒静止
	ref := planning.ComputeGuideVelocity(
		[3]float64{0, 10, 0}, planning.NewStopTarget(10, 40), cfg)
	require.Len(t, ref, 80)

	assert.InDelta(t, 10.0, ref[0], 1e-9)
	// 全程单调不增
	for i := 1; i < len(ref); i++ {
		assert.LessOrEqual(t, ref[i], ref[i-1]+1e-9)
	}
	// 评估范围内刹停并保持静止
	assert.InDelta(t, 0.0, ref[len(ref)-1], 1e-9)
	assert.InDelta(t, 0.0, ref[70], 1e-6)
	// 中途存在介于零速与巡航速度之间的过渡
	assert.Greater(t, ref[40], 0.0)
	assert.Less(t, ref[40], 10.0)
}

func TestGuideVelocityHardStop(t *testing.T) {
	cfg := config.Default()
	// 停车点10米：所需减速度-5超出舒适范围，单段直接刹停
	ref := planning.ComputeGuideVelocity(
		[3]float64{0, 10, 0}, planning.NewStopTarget(10, 10), cfg)
	require.Len(t, ref, 80)

	assert.InDelta(t, 10.0, ref[0], 1e-9)
	// 刹停时刻约为2秒
	assert.InDelta(t, 0.0, ref[25], 1e-6)
	assert.InDelta(t, 0.0, ref[len(ref)-1], 1e-9)
}

func TestGuideVelocityStopBehind(t *testing.T) {
	cfg := config.Default()
	// 停车点在车后：退回配置的保守减速度刹停
	ref := planning.ComputeGuideVelocity(
		[3]float64{20, 10, 0}, planning.NewStopTarget(10, 15), cfg)
	require.Len(t, ref, 80)
	assert.InDelta(t, 0.0, ref[len(ref)-1], 1e-9)
}
