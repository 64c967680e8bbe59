package main

import (
	"flag"
	"os"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/wan9hao/apollo/constraint"
	"github.com/wan9hao/apollo/curve"
	"github.com/wan9hao/apollo/pathtime"
	"github.com/wan9hao/apollo/planning"
	"github.com/wan9hao/apollo/utils/config"
	"github.com/wan9hao/apollo/utils/randengine"
)

var (
	// 场景文件路径
	configPath = flag.String("config", "", "scenario file path")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "lattice")
)

// InitState 初始纵向状态
type InitState struct {
	S float64 `yaml:"s"` // 初始纵向位置（米）
	V float64 `yaml:"v"` // 初始速度（米/秒）
	A float64 `yaml:"a"` // 初始加速度（米/秒²）
}

// Scenario 演示场景
// 功能：描述一次规划周期的输入：初始状态、任务意图、障碍与候选末端条件
type Scenario struct {
	Init        InitState        `yaml:"init"`                 // 初始纵向状态
	CruiseSpeed float64          `yaml:"cruise_speed"`         // 巡航目标速度（米/秒）
	StopPoint   *float64         `yaml:"stop_point,omitempty"` // 停车点纵向位置（米），缺省为仅巡航
	Obstacles   []pathtime.Block `yaml:"obstacles,omitempty"`  // 时空障碍块

	LonEndSpeeds   []float64 `yaml:"lon_end_speeds,omitempty"`   // 纵向候选的末端速度采样（米/秒）
	LatEndOffsets  []float64 `yaml:"lat_end_offsets,omitempty"`  // 横向候选的末端偏移采样（米）
	LatCurveLength float64   `yaml:"lat_curve_length,omitempty"` // 横向候选的纵向参数长度（米），默认30
	RandomLonNum   int       `yaml:"random_lon_num,omitempty"`   // 额外随机采样的纵向候选数量
	Seed           uint64    `yaml:"seed,omitempty"`             // 随机采样种子
}

// SimConfig 场景文件根结构
type SimConfig struct {
	Planner  config.Config `yaml:"planner,omitempty"` // 评估器参数（未设置项取默认值）
	Scenario Scenario      `yaml:"scenario"`          // 演示场景
}

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// log: 运行时才修改
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}
	// 获取场景
	if *configPath == "" {
		log.Panic("scenario file must be specified")
	}
	file, err := os.ReadFile(*configPath)
	if err != nil {
		log.Panicf("scenario file load err: %v", err)
	}
	var sim SimConfig
	if err := yaml.Unmarshal(file, &sim); err != nil {
		log.Panicf("scenario file parse err: %v", err)
	}
	cfg := sim.Planner.FillDefaults()
	sc := sim.Scenario

	// 任务意图
	var target planning.PlanningTarget
	if sc.StopPoint != nil {
		target = planning.NewStopTarget(sc.CruiseSpeed, *sc.StopPoint)
	} else {
		target = planning.NewCruiseTarget(sc.CruiseSpeed)
	}
	initS := [3]float64{sc.Init.S, sc.Init.V, sc.Init.A}

	// 纵向候选：按末端速度采样的四次多项式（终点位移自由）
	lons := lo.Map(sc.LonEndSpeeds, func(endV float64, _ int) curve.Curve {
		return curve.NewQuarticPolynomialCurve(
			sc.Init.S, sc.Init.V, sc.Init.A, endV, 0, cfg.Horizon.TimeLength)
	})
	if sc.RandomLonNum > 0 {
		engine := randengine.New(sc.Seed)
		for i := 0; i < sc.RandomLonNum; i++ {
			endV := engine.Uniform(0, cfg.Bound.SpeedUpper)
			lons = append(lons, curve.NewQuarticPolynomialCurve(
				sc.Init.S, sc.Init.V, sc.Init.A, endV, 0, cfg.Horizon.TimeLength))
		}
	}
	// 横向候选：按末端偏移采样的五次多项式（两端状态固定）
	latLength := sc.LatCurveLength
	if latLength <= 0 {
		latLength = 30
	}
	lats := lo.Map(sc.LatEndOffsets, func(endL float64, _ int) curve.Curve {
		return curve.NewQuinticPolynomialCurve(0, 0, 0, endL, 0, 0, latLength)
	})

	log.Infof("evaluating %d lon x %d lat candidate pairs", len(lons), len(lats))
	evaluator := planning.NewTrajectoryEvaluator(
		initS, target, lons, lats,
		pathtime.NewStaticGraph(sc.Obstacles),
		constraint.NewLongitudinalChecker(cfg),
		constraint.NewLateralChecker(cfg),
		cfg,
	)
	if !evaluator.HasMorePairs() {
		log.Warn("no feasible trajectory pair")
		return
	}
	log.Infof("%d feasible pairs", evaluator.NumPairs())
	if cfg.WithComponents {
		log.Infof("best pair components: %v", evaluator.TopPairComponents())
	}
	for rank := 1; evaluator.HasMorePairs(); rank++ {
		cost := evaluator.TopPairCost()
		lon, lat := evaluator.NextTopPair()
		log.Infof("rank %3d: cost=%8.4f end_s=%7.2f end_v=%6.2f end_l=%6.2f",
			rank, cost,
			lon.Evaluate(0, cfg.Horizon.TimeLength),
			lon.Evaluate(1, cfg.Horizon.TimeLength),
			lat.Evaluate(0, latLength))
	}
}
