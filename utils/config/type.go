package config

// Horizon 评估范围与离散精度配置
// 功能：定义轨迹评估的时间范围、时间/空间离散步长
// 说明：候选数量与离散精度共同决定单周期计算量，是满足实时截止期的调节手段，
// 因此全部作为配置输入而非常量
type Horizon struct {
	TimeLength      float64 `yaml:"trajectory_time_length,omitempty"`      // 轨迹评估时间范围（秒）
	TimeResolution  float64 `yaml:"trajectory_time_resolution,omitempty"`  // 时间离散步长（秒）
	SpaceResolution float64 `yaml:"trajectory_space_resolution,omitempty"` // 空间离散步长（米）
	DecisionS       float64 `yaml:"decision_horizon,omitempty"`            // 横向评估的纵向决策范围（米）
	Epsilon         float64 `yaml:"lattice_epsilon,omitempty"`             // 数值计算防零小量
}

// Weight 代价权重配置
// 功能：定义五项代价的合成权重及各项内部的子权重
type Weight struct {
	LonObjective  float64 `yaml:"lon_objective,omitempty"`        // 纵向目标达成代价权重
	LonJerk       float64 `yaml:"lon_jerk,omitempty"`             // 纵向舒适性（加加速度）代价权重
	LonCollision  float64 `yaml:"lon_collision,omitempty"`        // 纵向碰撞风险代价权重
	LatOffset     float64 `yaml:"lat_offset,omitempty"`           // 横向偏移代价权重
	LatComfort    float64 `yaml:"lat_comfort,omitempty"`          // 横向舒适性代价权重
	TargetSpeed   float64 `yaml:"target_speed,omitempty"`         // 目标达成代价内：速度跟踪子权重
	DistTravelled float64 `yaml:"dist_travelled,omitempty"`       // 目标达成代价内：行驶距离子权重
	SameSide      float64 `yaml:"same_side_offset,omitempty"`     // 横向偏移：与初始同侧的偏移权重
	OppositeSide  float64 `yaml:"opposite_side_offset,omitempty"` // 横向偏移：跨越参考线到对侧的偏移权重（应大于同侧）
}

// Bound 运动学边界配置
// 功能：定义候选轨迹可行性筛查与代价归一化所用的运动学上下界
type Bound struct {
	SpeedUpper       float64 `yaml:"speed_upper_bound,omitempty"`            // 速度上界（米/秒）
	SpeedLower       float64 `yaml:"speed_lower_bound,omitempty"`            // 速度下界（米/秒）
	LonAccUpper      float64 `yaml:"lon_acceleration_upper_bound,omitempty"` // 纵向加速度上界（米/秒²）
	LonAccLower      float64 `yaml:"lon_acceleration_lower_bound,omitempty"` // 纵向加速度下界（米/秒²，负值）
	LonJerkUpper     float64 `yaml:"lon_jerk_upper_bound,omitempty"`         // 纵向加加速度上界（米/秒³）
	LonJerkLower     float64 `yaml:"lon_jerk_lower_bound,omitempty"`         // 纵向加加速度下界（米/秒³，负值）
	LatOffset        float64 `yaml:"lat_offset_bound,omitempty"`             // 横向偏移归一化边界（米）
	LatAcc           float64 `yaml:"lat_acceleration_bound,omitempty"`       // 横向诱导加速度边界（米/秒²）
	ComfortAccFactor float64 `yaml:"comfort_acceleration_factor,omitempty"`  // 舒适减速度系数（对加速度下界的折减）
}

// Collision 纵向碰撞代价配置
// 功能：定义封锁区间前后的安全缓冲与高斯风险势场的宽度
type Collision struct {
	YieldBuffer    float64 `yaml:"lon_collision_yield_buffer,omitempty"`    // 让行缓冲：封锁区间之前的不安全距离（米）
	OvertakeBuffer float64 `yaml:"lon_collision_overtake_buffer,omitempty"` // 超越缓冲：封锁区间之后的不安全距离（米）
	CostStd        float64 `yaml:"lon_collision_cost_std,omitempty"`        // 高斯风险势场标准差σ（米）
}

// Config 轨迹评估器配置
// 功能：汇总轨迹评估所需的全部数值参数与开关
// 说明：构造评估器时按值传入、全程不可变，不依赖任何全局状态
type Config struct {
	Horizon   Horizon   `yaml:"horizon,omitempty"`   // 评估范围与离散精度
	Weight    Weight    `yaml:"weight,omitempty"`    // 代价权重
	Bound     Bound     `yaml:"bound,omitempty"`     // 运动学边界
	Collision Collision `yaml:"collision,omitempty"` // 碰撞代价参数

	// EnableLateralFilter 是否对候选对执行横向可行性筛查
	// 说明：默认关闭；开启后需要在构造评估器时提供横向可行性谓词
	EnableLateralFilter bool `yaml:"enable_lateral_filter,omitempty"`
	// WithComponents 是否允许读取最优候选对的分项代价向量
	// 说明：用于离线权重调参；关闭时调用分项代价访问器视为调用方逻辑错误
	WithComponents bool `yaml:"with_components,omitempty"`
}
