// 轨迹评估与排序：对纵向×横向候选轨迹组合计算多项代价并按代价升序供取
package planning

// PlanningTarget 本周期的任务意图
// 功能：描述参考线上的巡航目标速度与可选的停车点
// 说明：停车点存在与否决定"仅巡航"或"巡航后停车"两种模式之一；
// 构造后不可变，生命周期为一次评估
type PlanningTarget struct {
	cruiseSpeed float64  // 巡航目标速度（米/秒）
	stopPoint   *float64 // 停车点纵向位置s（米），nil表示无须停车
}

// NewCruiseTarget 创建仅巡航的任务意图
// 参数：cruiseSpeed-巡航目标速度（米/秒）
func NewCruiseTarget(cruiseSpeed float64) PlanningTarget {
	return PlanningTarget{cruiseSpeed: cruiseSpeed}
}

// NewStopTarget 创建巡航后停车的任务意图
// 参数：cruiseSpeed-巡航目标速度（米/秒），stopS-停车点纵向位置（米）
func NewStopTarget(cruiseSpeed, stopS float64) PlanningTarget {
	return PlanningTarget{cruiseSpeed: cruiseSpeed, stopPoint: &stopS}
}

// CruiseSpeed 巡航目标速度
func (t PlanningTarget) CruiseSpeed() float64 {
	return t.cruiseSpeed
}

// HasStopPoint 是否存在停车点
func (t PlanningTarget) HasStopPoint() bool {
	return t.stopPoint != nil
}

// StopS 停车点纵向位置
// 说明：仅在HasStopPoint()为true时可调用，否则为调用方逻辑错误
func (t PlanningTarget) StopS() float64 {
	if t.stopPoint == nil {
		log.Panicf("planning: StopS called on a cruise-only target")
	}
	return *t.stopPoint
}
