// 随机数引擎，包装了golang.org/x/exp/rand，用于生成候选轨迹的随机末端条件
package randengine

import (
	"golang.org/x/exp/rand"
)

// Engine 随机数引擎
// 功能：提供可复现的随机数生成功能
// 说明：基于golang.org/x/exp/rand库；相同种子产生相同序列，
// 用于随机化测试与演示场景的候选末端条件采样
type Engine struct {
	*rand.Rand // 底层随机数生成器
}

// New 创建随机数引擎
// 参数：seed-随机数种子
// 返回：随机数引擎指针
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed))}
}

// Uniform 生成[lower, upper)范围内均匀分布的随机数
// 参数：lower-下界，upper-上界
func (e *Engine) Uniform(lower, upper float64) float64 {
	return lower + (upper-lower)*e.Float64()
}
