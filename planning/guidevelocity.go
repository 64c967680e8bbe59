package planning

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/wan9hao/apollo/curve"
	"github.com/wan9hao/apollo/utils/config"
)

// sampleGrid 生成[0, length)区间内步长为res的采样点序列
// 说明：采样点个数与逐步累加t+=res的循环一致，末点不含length本身
func sampleGrid(length, res float64) []float64 {
	n := int(math.Ceil(length/res - 1e-9))
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{0}
	}
	return floats.Span(make([]float64, n), 0, float64(n-1)*res)
}

// ComputeGuideVelocity 合成纵向引导速度序列
// 功能：构造编码任务意图的参考速度-时间曲线，并在离散时刻上采样其速度
// 参数：initS-初始纵向状态（位置、速度、加速度），target-任务意图，cfg-评估配置
// 返回：与评估时间网格对齐的参考速度序列
// 算法说明：
// 1. 以初始位置、巡航速度为起点构造分段匀加速曲线
// 2. 仅巡航：单段零加速度铺满整个评估时间范围
// 3. 需要停车：按 stop_a = -v²/(2·dist) 计算恰好在停车点降为零速的减速度
//    （距离小于防零小量时退回配置的保守减速度）；
//    若所需减速度比舒适减速度（加速度下界×舒适系数）更缓，
//    则先以巡航速度行驶再以舒适减速度刹停，两段衔接使零速恰落在停车点；
//    否则直接以所需减速度单段刹停
// 4. 曲线长度不足评估时间范围时，补零加速度（静止）段至满
func ComputeGuideVelocity(initS [3]float64, target PlanningTarget, cfg config.Config) []float64 {
	comfortA := cfg.Bound.LonAccLower * cfg.Bound.ComfortAccFactor
	cruiseV := target.CruiseSpeed()

	profile := curve.NewConstantAccelerationCurve(initS[0], cruiseV)
	if !target.HasStopPoint() {
		profile.AppendSegment(0, cfg.Horizon.TimeLength)
	} else {
		stopA := cfg.Bound.LonAccLower
		dist := target.StopS() - initS[0]
		if dist > cfg.Horizon.Epsilon {
			stopA = -cruiseV * cruiseV * 0.5 / dist
		}
		if stopA > comfortA {
			// 所需减速度比舒适减速度更缓：先巡航再以舒适减速度刹停
			stopT := cruiseV / (-comfortA)
			stopDist := cruiseV * stopT * 0.5
			cruiseT := (dist - stopDist) / cruiseV
			profile.AppendSegment(0, cruiseT)
			profile.AppendSegment(comfortA, stopT)
		} else {
			stopT := cruiseV / (-stopA)
			profile.AppendSegment(stopA, stopT)
		}
		if profile.ParamLength() < cfg.Horizon.TimeLength {
			profile.AppendSegment(0, cfg.Horizon.TimeLength-profile.ParamLength())
		}
	}

	grid := sampleGrid(cfg.Horizon.TimeLength, cfg.Horizon.TimeResolution)
	refSDot := make([]float64, len(grid))
	for i, t := range grid {
		refSDot[i] = profile.Evaluate(1, t)
	}
	return refSDot
}
