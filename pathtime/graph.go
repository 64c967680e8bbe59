// 时空障碍图：描述参考线上各时刻被其他交通参与者占据的纵向区间
package pathtime

import (
	"github.com/samber/lo"
)

// Interval 纵向封锁区间
// 功能：表示某一时刻参考线上被占据的一段纵向位置范围[Lower, Upper]
type Interval struct {
	Lower float64 // 区间下界（米）
	Upper float64 // 区间上界（米）
}

// Graph 时空障碍图能力
// 功能：按时间离散化查询参考线上的封锁区间
// 说明：每个规划周期构造一次，查询结果只读；
// 返回切片的第i个元素对应时刻 startTime+i*resolution 处的封锁区间集合，
// 空集合表示该时刻无阻挡
type Graph interface {
	// GetBlockingIntervals 查询[startTime, endTime)内按resolution离散的封锁区间表
	GetBlockingIntervals(startTime, endTime, resolution float64) [][]Interval
}

// Block 时空障碍块
// 功能：以轴对齐矩形近似描述一个障碍物在时空图上的占据范围
type Block struct {
	S0 float64 `yaml:"s0"` // 纵向起点（米）
	S1 float64 `yaml:"s1"` // 纵向终点（米）
	T0 float64 `yaml:"t0"` // 出现时刻（秒）
	T1 float64 `yaml:"t1"` // 消失时刻（秒）
}

// StaticGraph 静态时空障碍图
// 功能：由一组固定障碍块构成的Graph实现
// 说明：适用于障碍物预测结果已离散为时空块的场景
type StaticGraph struct {
	blocks []Block
}

// NewStaticGraph 创建静态时空障碍图
// 参数：blocks-障碍块列表，每块要求S1>=S0且T1>=T0
func NewStaticGraph(blocks []Block) *StaticGraph {
	for _, b := range blocks {
		if b.S1 < b.S0 || b.T1 < b.T0 {
			log.Panicf("pathtime: invalid block %+v", b)
		}
	}
	return &StaticGraph{blocks: blocks}
}

// GetBlockingIntervals 查询封锁区间表
// 功能：对[startTime, endTime)内的每个离散时刻，收集覆盖该时刻的障碍块的纵向区间
// 参数：startTime-起始时刻，endTime-结束时刻（不含），resolution-时间步长
// 返回：逐时刻的封锁区间集合，无阻挡的时刻为空集合
func (g *StaticGraph) GetBlockingIntervals(startTime, endTime, resolution float64) [][]Interval {
	var intervals [][]Interval
	for t := startTime; t < endTime; t += resolution {
		intervals = append(intervals, lo.FilterMap(g.blocks, func(b Block, _ int) (Interval, bool) {
			if t < b.T0 || t > b.T1 {
				return Interval{}, false
			}
			return Interval{Lower: b.S0, Upper: b.S1}, true
		}))
	}
	return intervals
}
