package planning

import (
	"math"

	"github.com/wan9hao/apollo/curve"
)

// 五项代价均为候选对（及只读封锁区间表、引导速度序列）的纯函数，
// 相同输入必然得到相同代价，评估结果完全可复现。

// evaluate 计算一个候选对的分项代价与加权总代价
// 功能：依次计算纵向目标达成、纵向舒适性、纵向碰撞风险、横向偏移、横向舒适性五项代价，
// 按配置权重加权求和
// 参数：lon-纵向候选，lat-横向候选
// 返回：components-四项分项代价（横向舒适性仅参与总代价、不作为可调分项上报），total-加权总代价
// 说明：总代价不做归一化，其绝对尺度仅在同一次排序内有意义
func (e *TrajectoryEvaluator) evaluate(lon, lat curve.Curve) (components []float64, total float64) {
	lonObjectiveCost := e.LonObjectiveCost(lon, e.refSDot)
	lonJerkCost := e.LonComfortCost(lon)
	lonCollisionCost := e.LonCollisionCost(lon)

	// 横向评估的纵向范围：决策范围与候选自身纵向到达距离的较小者
	evaluationS := math.Min(e.cfg.Horizon.DecisionS, lon.Evaluate(0, lon.ParamLength()))
	sValues := sampleGrid(evaluationS, e.cfg.Horizon.SpaceResolution)

	latOffsetCost := e.LatOffsetCost(lat, sValues)
	latComfortCost := e.LatComfortCost(lon, lat)

	components = []float64{lonObjectiveCost, lonJerkCost, lonCollisionCost, latOffsetCost}
	total = lonObjectiveCost*e.cfg.Weight.LonObjective +
		lonJerkCost*e.cfg.Weight.LonJerk +
		lonCollisionCost*e.cfg.Weight.LonCollision +
		latOffsetCost*e.cfg.Weight.LatOffset +
		latComfortCost*e.cfg.Weight.LatComfort
	return
}

// LonObjectiveCost 纵向目标达成代价
// 功能：衡量纵向候选对任务意图的偏离，由速度跟踪与行驶距离两个子项加权平均
// 参数：lon-纵向候选，refSDot-引导速度序列
// 算法说明：
// 1. 速度子项：逐时刻计算引导速度与候选速度之差，以t²加权累加
//    （时间越靠后偏差惩罚越重），取加权均值
// 2. 距离子项：1/(1+Δs)，Δs为候选在自身参数区间内的净纵向位移，
//    行驶越远代价越小且恒为正
func (e *TrajectoryEvaluator) LonObjectiveCost(lon curve.Curve, refSDot []float64) float64 {
	tMax := lon.ParamLength()
	distS := lon.Evaluate(0, tMax) - lon.Evaluate(0, 0)

	speedCostSqrSum := 0.0
	speedCostWeightSum := 0.0
	for i, refV := range refSDot {
		t := float64(i) * e.cfg.Horizon.TimeResolution
		diff := refV - lon.Evaluate(1, t)
		speedCostSqrSum += t * t * math.Abs(diff)
		speedCostWeightSum += t * t
	}
	speedCost := speedCostSqrSum / (speedCostWeightSum + e.cfg.Horizon.Epsilon)
	distTravelledCost := 1.0 / (1.0 + distS)
	return (speedCost*e.cfg.Weight.TargetSpeed + distTravelledCost*e.cfg.Weight.DistTravelled) /
		(e.cfg.Weight.TargetSpeed + e.cfg.Weight.DistTravelled)
}

// LonComfortCost 纵向舒适性代价
// 功能：衡量纵向候选的加加速度水平
// 算法说明：逐时刻将加加速度按配置上界归一化，
// 取平方和与绝对值和之比——多次小幅加加速度的代价低于等量的单次大幅加加速度
func (e *TrajectoryEvaluator) LonComfortCost(lon curve.Curve) float64 {
	costSqrSum := 0.0
	costAbsSum := 0.0
	for t := 0.0; t < e.cfg.Horizon.TimeLength; t += e.cfg.Horizon.TimeResolution {
		jerkCost := lon.Evaluate(3, t) / e.cfg.Bound.LonJerkUpper
		costSqrSum += jerkCost * jerkCost
		costAbsSum += math.Abs(jerkCost)
	}
	return costSqrSum / (costAbsSum + e.cfg.Horizon.Epsilon)
}

// LonCollisionCost 纵向碰撞风险代价
// 功能：衡量纵向候选与封锁区间表中各障碍区间的接近程度
// 算法说明：
// 1. 对每个存在封锁区间的时刻，求候选在该时刻的纵向位置
// 2. 对每个封锁区间计算净距：位于区间前方超出让行缓冲、或后方超出超越缓冲的部分，
//    否则净距为0（处于不安全区内）
// 3. 净距经高斯势场 exp(-d²/(2σ²)) 转为风险值：净距为0时风险为1，随距离平滑衰减
// 4. 对全部（时刻,区间）累加风险，取平方和与和之比
// 说明：整个时间范围内无封锁区间时代价为0
func (e *TrajectoryEvaluator) LonCollisionCost(lon curve.Curve) float64 {
	costSqrSum := 0.0
	costAbsSum := 0.0
	sigma := e.cfg.Collision.CostStd
	for i, intervals := range e.intervals {
		if len(intervals) == 0 {
			continue
		}
		t := float64(i) * e.cfg.Horizon.TimeResolution
		trajS := lon.Evaluate(0, t)
		for _, m := range intervals {
			dist := 0.0
			if trajS < m.Lower-e.cfg.Collision.YieldBuffer {
				dist = m.Lower - e.cfg.Collision.YieldBuffer - trajS
			} else if trajS > m.Upper+e.cfg.Collision.OvertakeBuffer {
				dist = trajS - m.Upper - e.cfg.Collision.OvertakeBuffer
			}
			cost := math.Exp(-dist * dist / (2.0 * sigma * sigma))
			costSqrSum += cost * cost
			costAbsSum += cost
		}
	}
	return costSqrSum / (costAbsSum + e.cfg.Horizon.Epsilon)
}

// LatOffsetCost 横向偏移代价
// 功能：衡量横向候选偏离参考线的程度
// 参数：lat-横向候选，sValues-纵向采样位置序列
// 算法说明：
// 1. 在各纵向采样位置取横向偏移并按配置边界归一化
// 2. 采样值与s=0处起始偏移异号（跨越参考线到对侧）时用对侧权重，
//    否则用同侧权重；对侧权重高于同侧，跨线惩罚更重
// 3. 取加权平方和与加权绝对值和之比
func (e *TrajectoryEvaluator) LatOffsetCost(lat curve.Curve, sValues []float64) float64 {
	latOffsetStart := lat.Evaluate(0, 0)
	costSqrSum := 0.0
	costAbsSum := 0.0
	for _, s := range sValues {
		latOffset := lat.Evaluate(0, s)
		cost := latOffset / e.cfg.Bound.LatOffset
		if latOffset*latOffsetStart < 0 {
			costSqrSum += cost * cost * e.cfg.Weight.OppositeSide
			costAbsSum += math.Abs(cost) * e.cfg.Weight.OppositeSide
		} else {
			costSqrSum += cost * cost * e.cfg.Weight.SameSide
			costAbsSum += math.Abs(cost) * e.cfg.Weight.SameSide
		}
	}
	return costSqrSum / (costAbsSum + e.cfg.Horizon.Epsilon)
}

// LatComfortCost 横向舒适性代价
// 功能：衡量纵向运动在横向曲线上诱导的横向动态
// 算法说明：横向曲线以纵向位移为参数，须沿纵向运动复合求值；
// 逐时刻计算 |l''·ṡ² + l'·s̈| 并取全程最大值——
// 单次剧烈的横向动态事件起决定作用，与其余取均值的代价项不同
func (e *TrajectoryEvaluator) LatComfortCost(lon, lat curve.Curve) float64 {
	maxCost := 0.0
	for t := 0.0; t < e.cfg.Horizon.TimeLength; t += e.cfg.Horizon.TimeResolution {
		s := lon.Evaluate(0, t)
		sDot := lon.Evaluate(1, t)
		sDDot := lon.Evaluate(2, t)
		cost := lat.Evaluate(2, s)*sDot*sDot + lat.Evaluate(1, s)*sDDot
		maxCost = math.Max(maxCost, math.Abs(cost))
	}
	return maxCost
}
