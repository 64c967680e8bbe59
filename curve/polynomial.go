package curve

// evalPoly 计算多项式的order阶导数在x处的值
// 功能：对系数为coef（coef[i]为x^i项系数）的多项式求order阶导数并求值
// 算法说明：按降幂Horner法累加，第i项附带导数系数 i*(i-1)*...*(i-order+1)
func evalPoly(coef []float64, order int, x float64) float64 {
	if order >= len(coef) {
		return 0
	}
	res := 0.0
	for i := len(coef) - 1; i >= order; i-- {
		f := 1.0
		for k := 0; k < order; k++ {
			f *= float64(i - k)
		}
		res = res*x + coef[i]*f
	}
	return res
}

// QuinticPolynomialCurve 五次多项式曲线
// 功能：由两端完整边界条件（值、一阶导、二阶导）唯一确定的五次多项式
// 说明：横向候选曲线的标准形式，参数为纵向位移s；
// 也可用于两端状态均固定的纵向候选
type QuinticPolynomialCurve struct {
	coef        [6]float64
	paramLength float64
}

// NewQuinticPolynomialCurve 由边界条件构造五次多项式曲线
// 参数：x0,dx0,ddx0-起点的值/一阶导/二阶导，x1,dx1,ddx1-终点的值/一阶导/二阶导，
// param-参数区间长度（必须为正）
// 算法说明：前三个系数由起点条件直接给出，后三个系数由终点条件解线性方程组得到
func NewQuinticPolynomialCurve(x0, dx0, ddx0, x1, dx1, ddx1, param float64) *QuinticPolynomialCurve {
	if param <= 0 {
		log.Panicf("polynomial: invalid param length %v", param)
	}
	c := &QuinticPolynomialCurve{paramLength: param}
	c.coef[0] = x0
	c.coef[1] = dx0
	c.coef[2] = ddx0 * 0.5

	p2 := param * param
	p3 := p2 * param
	b0 := (x1 - 0.5*p2*ddx0 - dx0*param - x0) / p3
	b1 := (dx1 - ddx0*param - dx0) / p2
	b2 := (ddx1 - ddx0) / param
	c.coef[3] = 0.5 * (20*b0 - 8*b1 + b2)
	c.coef[4] = (-15*b0 + 7*b1 - b2) / param
	c.coef[5] = (6*b0 - 3*b1 + 0.5*b2) / p2
	return c
}

func (c *QuinticPolynomialCurve) Evaluate(order int, param float64) float64 {
	return evalPoly(c.coef[:], order, param)
}

func (c *QuinticPolynomialCurve) ParamLength() float64 {
	return c.paramLength
}

// QuarticPolynomialCurve 四次多项式曲线
// 功能：起点状态完整、终点只约束速度与加速度的四次多项式
// 说明：巡航型纵向候选的标准形式，终点位移自由、终点速度为采样值
type QuarticPolynomialCurve struct {
	coef        [5]float64
	paramLength float64
}

// NewQuarticPolynomialCurve 由边界条件构造四次多项式曲线
// 参数：x0,dx0,ddx0-起点的值/一阶导/二阶导，dx1,ddx1-终点的一阶导/二阶导，
// param-参数区间长度（必须为正）
func NewQuarticPolynomialCurve(x0, dx0, ddx0, dx1, ddx1, param float64) *QuarticPolynomialCurve {
	if param <= 0 {
		log.Panicf("polynomial: invalid param length %v", param)
	}
	c := &QuarticPolynomialCurve{paramLength: param}
	c.coef[0] = x0
	c.coef[1] = dx0
	c.coef[2] = 0.5 * ddx0

	b0 := dx1 - ddx0*param - dx0
	b1 := ddx1 - ddx0
	p2 := param * param
	c.coef[3] = (3*b0 - b1*param) / (3 * p2)
	c.coef[4] = (-2*b0 + b1*param) / (4 * p2 * param)
	return c
}

func (c *QuarticPolynomialCurve) Evaluate(order int, param float64) float64 {
	return evalPoly(c.coef[:], order, param)
}

func (c *QuarticPolynomialCurve) ParamLength() float64 {
	return c.paramLength
}
