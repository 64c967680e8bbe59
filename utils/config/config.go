// 轨迹评估器的参数配置，支持YAML加载与默认值填充
package config

// Default 默认配置
// 功能：返回一套完整的默认评估参数
// 说明：数值沿用上游规划器的标定值，可作为YAML配置的兜底
func Default() Config {
	return Config{
		Horizon: Horizon{
			TimeLength:      8.0,
			TimeResolution:  0.1,
			SpaceResolution: 1.0,
			DecisionS:       200.0,
			Epsilon:         1e-6,
		},
		Weight: Weight{
			LonObjective:  10.0,
			LonJerk:       1.0,
			LonCollision:  5.0,
			LatOffset:     2.0,
			LatComfort:    10.0,
			TargetSpeed:   1.0,
			DistTravelled: 0.5,
			SameSide:      1.0,
			OppositeSide:  10.0,
		},
		Bound: Bound{
			SpeedUpper:       40.0,
			SpeedLower:       0.0,
			LonAccUpper:      4.0,
			LonAccLower:      -4.5,
			LonJerkUpper:     4.0,
			LonJerkLower:     -4.0,
			LatOffset:        3.0,
			LatAcc:           4.0,
			ComfortAccFactor: 0.5,
		},
		Collision: Collision{
			YieldBuffer:    1.0,
			OvertakeBuffer: 0.5,
			CostStd:        0.5,
		},
	}
}

// FillDefaults 填充默认值
// 功能：将配置中未设置（零值）的数值字段替换为默认值
// 返回：填充后的新配置（不修改原值）
// 说明：开关字段不参与填充，零值即关闭
func (c Config) FillDefaults() Config {
	d := Default()
	fill := func(v *float64, def float64) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&c.Horizon.TimeLength, d.Horizon.TimeLength)
	fill(&c.Horizon.TimeResolution, d.Horizon.TimeResolution)
	fill(&c.Horizon.SpaceResolution, d.Horizon.SpaceResolution)
	fill(&c.Horizon.DecisionS, d.Horizon.DecisionS)
	fill(&c.Horizon.Epsilon, d.Horizon.Epsilon)
	fill(&c.Weight.LonObjective, d.Weight.LonObjective)
	fill(&c.Weight.LonJerk, d.Weight.LonJerk)
	fill(&c.Weight.LonCollision, d.Weight.LonCollision)
	fill(&c.Weight.LatOffset, d.Weight.LatOffset)
	fill(&c.Weight.LatComfort, d.Weight.LatComfort)
	fill(&c.Weight.TargetSpeed, d.Weight.TargetSpeed)
	fill(&c.Weight.DistTravelled, d.Weight.DistTravelled)
	fill(&c.Weight.SameSide, d.Weight.SameSide)
	fill(&c.Weight.OppositeSide, d.Weight.OppositeSide)
	fill(&c.Bound.SpeedUpper, d.Bound.SpeedUpper)
	fill(&c.Bound.SpeedLower, d.Bound.SpeedLower)
	fill(&c.Bound.LonAccUpper, d.Bound.LonAccUpper)
	fill(&c.Bound.LonAccLower, d.Bound.LonAccLower)
	fill(&c.Bound.LonJerkUpper, d.Bound.LonJerkUpper)
	fill(&c.Bound.LonJerkLower, d.Bound.LonJerkLower)
	fill(&c.Bound.LatOffset, d.Bound.LatOffset)
	fill(&c.Bound.LatAcc, d.Bound.LatAcc)
	fill(&c.Bound.ComfortAccFactor, d.Bound.ComfortAccFactor)
	fill(&c.Collision.YieldBuffer, d.Collision.YieldBuffer)
	fill(&c.Collision.OvertakeBuffer, d.Collision.OvertakeBuffer)
	fill(&c.Collision.CostStd, d.Collision.CostStd)
	return c
}
