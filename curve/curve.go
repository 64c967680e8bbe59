// 一维参数曲线及其具体实现（分段匀加速曲线、多项式曲线）
package curve

// Curve 一维参数曲线
// 功能：描述定义在有界参数区间[0, ParamLength()]上的可求值曲线
// 说明：纵向曲线以时间为参数（值为沿参考线的位移s），
// 横向曲线以纵向位移s为参数（值为相对参考线的横向偏移l）。
// 曲线由外部生成，求值过程只读，可在多次代价计算间共享
type Curve interface {
	// Evaluate 求值
	// 参数：order-求导阶数（0为取值，1、2、3依次为一阶、二阶、三阶导数），param-参数值
	// 返回：曲线在param处的order阶导数值
	Evaluate(order int, param float64) float64

	// ParamLength 参数区间长度
	ParamLength() float64
}
