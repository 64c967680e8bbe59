package curve

import (
	"sort"

	"github.com/samber/lo"
)

// negativeVEpsilon 分段末速度的负值容差
// 功能：吸收浮点误差，允许分段末速度在该容差内略小于零
const negativeVEpsilon = 1e-6

// ConstantAccelerationCurve 分段匀加速曲线
// 功能：由若干段（加速度, 持续时间）依次拼接而成的纵向运动曲线，参数为时间
// 说明：从初始位置与初始速度出发逐段追加，每段内加速度恒定；
// 用于合成引导速度曲线等分段匀加/匀减速的参考运动
type ConstantAccelerationCurve struct {
	s []float64 // 各分段边界处的位置（长度为分段数+1）
	v []float64 // 各分段边界处的速度
	t []float64 // 各分段边界的时刻，t[0]=0
	a []float64 // 各分段的加速度，与右边界对齐，a[0]=0占位
}

// NewConstantAccelerationCurve 创建分段匀加速曲线
// 参数：startS-初始位置，startV-初始速度
// 返回：只含起点、尚无分段的曲线，需通过AppendSegment追加分段
func NewConstantAccelerationCurve(startS, startV float64) *ConstantAccelerationCurve {
	return &ConstantAccelerationCurve{
		s: []float64{startS},
		v: []float64{startV},
		t: []float64{0},
		a: []float64{0},
	}
}

// AppendSegment 追加一个匀加速分段
// 功能：在曲线末尾追加一段持续duration、加速度为a的运动
// 参数：a-分段加速度，duration-分段持续时间（必须为正）
// 算法说明：
// 1. 由运动学公式计算分段末速度：v1 = v0 + a*duration
// 2. 由梯形法计算分段位移：Δs = (v0+v1)*duration/2
// 3. 记录新的分段边界
// 说明：分段末速度不允许为负（倒车），违反时视为调用方逻辑错误直接panic
func (c *ConstantAccelerationCurve) AppendSegment(a, duration float64) {
	if duration <= 0 {
		log.Panicf("constacc: invalid segment duration %v", duration)
	}
	n := len(c.t) - 1
	v0, s0, t0 := c.v[n], c.s[n], c.t[n]
	v1 := v0 + a*duration
	if v1 < -negativeVEpsilon {
		log.Panicf("constacc: segment ends with negative speed %v", v1)
	}
	c.s = append(c.s, s0+(v0+v1)*duration*0.5)
	c.v = append(c.v, v1)
	c.t = append(c.t, t0+duration)
	c.a = append(c.a, a)
}

func (c *ConstantAccelerationCurve) ParamLength() float64 {
	return c.t[len(c.t)-1]
}

// Evaluate 求值
// 功能：计算曲线在时刻param处的位置/速度/加速度/加加速度
// 参数：order-求导阶数（0~3），param-时刻（越界时截断到参数区间内）
// 返回：对应阶数的运动量；分段内加速度恒定，故三阶导数恒为0
func (c *ConstantAccelerationCurve) Evaluate(order int, param float64) float64 {
	if len(c.t) < 2 {
		log.Panicf("constacc: evaluate before any segment is appended")
	}
	param = lo.Clamp(param, 0, c.ParamLength())
	// 定位param所在分段：c.t[i-1] < param <= c.t[i]
	i := sort.SearchFloat64s(c.t, param)
	if i == 0 {
		i = 1
	}
	s0, v0, t0 := c.s[i-1], c.v[i-1], c.t[i-1]
	v1, t1 := c.v[i], c.t[i]
	v := v0 + (v1-v0)*(param-t0)/(t1-t0)
	switch order {
	case 0:
		return s0 + (v0+v)*(param-t0)*0.5
	case 1:
		return v
	case 2:
		return c.a[i]
	case 3:
		return 0
	default:
		log.Panicf("constacc: unsupported derivative order %d", order)
		return 0
	}
}
