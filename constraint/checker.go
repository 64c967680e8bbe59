// 一维候选轨迹的运动学可行性筛查
package constraint

import (
	"math"

	"github.com/wan9hao/apollo/curve"
	"github.com/wan9hao/apollo/utils/config"
)

// Checker1d 纵向候选轨迹可行性谓词
// 功能：判定单条纵向候选轨迹是否满足运动学约束
// 返回：true表示可行；不可行的候选被静默排除，不构成错误
type Checker1d func(lon curve.Curve) bool

// PairChecker 横向候选轨迹可行性谓词
// 功能：结合纵向运动判定横向候选轨迹是否可行
// 说明：横向曲线以纵向位移为参数，须沿纵向候选的运动轨迹复合求值
type PairChecker func(lat, lon curve.Curve) bool

// NewLongitudinalChecker 创建标准纵向可行性谓词
// 功能：按配置的运动学边界逐时刻筛查候选轨迹
// 参数：cfg-含边界与离散精度的评估配置
// 算法说明：
// 1. 在候选自身的参数区间内按时间步长采样
// 2. 速度越界（低于下界或高于上界）即不可行
// 3. 加速度越界即不可行
// 4. 加加速度越界即不可行
func NewLongitudinalChecker(cfg config.Config) Checker1d {
	return func(lon curve.Curve) bool {
		for t := 0.0; t < lon.ParamLength(); t += cfg.Horizon.TimeResolution {
			v := lon.Evaluate(1, t)
			if v < cfg.Bound.SpeedLower || v > cfg.Bound.SpeedUpper {
				return false
			}
			a := lon.Evaluate(2, t)
			if a < cfg.Bound.LonAccLower || a > cfg.Bound.LonAccUpper {
				return false
			}
			j := lon.Evaluate(3, t)
			if j < cfg.Bound.LonJerkLower || j > cfg.Bound.LonJerkUpper {
				return false
			}
		}
		return true
	}
}

// NewLateralChecker 创建标准横向可行性谓词
// 功能：筛查纵向运动在横向曲线上诱导的横向加速度
// 算法说明：逐时刻计算诱导横向加速度 l''·ṡ² + l'·s̈，
// 幅值超过配置边界即不可行
func NewLateralChecker(cfg config.Config) PairChecker {
	return func(lat, lon curve.Curve) bool {
		for t := 0.0; t < cfg.Horizon.TimeLength; t += cfg.Horizon.TimeResolution {
			s := lon.Evaluate(0, t)
			sDot := lon.Evaluate(1, t)
			sDDot := lon.Evaluate(2, t)
			latAcc := lat.Evaluate(2, s)*sDot*sDot + lat.Evaluate(1, s)*sDDot
			if math.Abs(latAcc) > cfg.Bound.LatAcc {
				return false
			}
		}
		return true
	}
}
