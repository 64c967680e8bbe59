package planning

import (
	"git.fiblab.net/general/common/v2/mathutil"

	"github.com/wan9hao/apollo/constraint"
	"github.com/wan9hao/apollo/curve"
	"github.com/wan9hao/apollo/pathtime"
	"github.com/wan9hao/apollo/utils/config"
	"github.com/wan9hao/apollo/utils/container"
)

// pairCost 一个可行候选对及其代价
// 功能：记录（纵向候选, 横向候选）引用对、分项代价向量与加权总代价
// 说明：创建后不可变；候选曲线由外部生成并在多次评估间只读共享
type pairCost struct {
	lon        curve.Curve // 纵向候选
	lat        curve.Curve // 横向候选
	components []float64   // 分项代价（纵向目标达成、纵向舒适性、纵向碰撞风险、横向偏移）
	total      float64     // 加权总代价
}

// TrajectoryEvaluator 轨迹评估器
// 功能：对全部纵向×横向候选组合筛查可行性、计算代价并按代价升序供取
// 说明：构造时一次性完成封锁区间查询、引导速度合成与全部候选对的评估；
// 构造后仅剩按代价从低到高的破坏性取出操作。
// 单线程同步执行，总计算量为O(|纵向候选|×|横向候选|×(时间范围/步长))，
// 实时截止期由调用方通过候选规模与离散精度控制
type TrajectoryEvaluator struct {
	cfg       config.Config
	initS     [3]float64            // 初始纵向状态（位置、速度、加速度）
	target    PlanningTarget        // 任务意图
	intervals [][]pathtime.Interval // 封锁区间表，构造时查询一次，此后只读
	refSDot   []float64             // 引导速度序列，构造时合成一次，此后只读

	queue *container.PriorityQueue[pairCost] // 代价升序的候选对队列
}

// NewTrajectoryEvaluator 创建轨迹评估器
// 功能：筛查并评估全部候选组合，填充按代价排序的候选对队列
// 参数：initS-初始纵向状态，target-任务意图，lonCandidates/latCandidates-候选曲线列表，
// graph-时空障碍图，lonChecker-纵向可行性谓词（nil则跳过该筛查），
// latChecker-横向可行性谓词（仅在配置开启横向筛查且非nil时使用），cfg-评估配置
// 算法说明：
// 1. 查询[0, 评估时间范围)内的封锁区间表（仅此一次）
// 2. 确定停车截止位置：有停车点取其s，否则为正无穷
// 3. 纵向候选筛查：时间范围末端位置越过停车截止位置、或未通过可行性谓词的候选
//    被静默排除，不产生任何候选对
// 4. 合成引导速度序列（仅依赖初始状态与任务意图，全部候选对共用）
// 5. 幸存纵向候选与每条横向候选组合，计算总代价后入队
// 说明：零候选对幸存不构成错误，队列为空即可；调用方取出前须检查HasMorePairs
func NewTrajectoryEvaluator(
	initS [3]float64,
	target PlanningTarget,
	lonCandidates, latCandidates []curve.Curve,
	graph pathtime.Graph,
	lonChecker constraint.Checker1d,
	latChecker constraint.PairChecker,
	cfg config.Config,
) *TrajectoryEvaluator {
	e := &TrajectoryEvaluator{
		cfg:    cfg,
		initS:  initS,
		target: target,
		queue:  container.NewPriorityQueue[pairCost](),
	}
	e.intervals = graph.GetBlockingIntervals(0, cfg.Horizon.TimeLength, cfg.Horizon.TimeResolution)
	e.refSDot = ComputeGuideVelocity(initS, target, cfg)

	stopS := mathutil.INF
	if target.HasStopPoint() {
		stopS = target.StopS()
	}
	for _, lon := range lonCandidates {
		if lon.Evaluate(0, cfg.Horizon.TimeLength) > stopS {
			// 越过停车点的纵向候选直接排除
			continue
		}
		if lonChecker != nil && !lonChecker(lon) {
			continue
		}
		for _, lat := range latCandidates {
			if cfg.EnableLateralFilter && latChecker != nil && !latChecker(lat, lon) {
				continue
			}
			components, total := e.evaluate(lon, lat)
			e.queue.HeapPush(pairCost{
				lon:        lon,
				lat:        lat,
				components: components,
				total:      total,
			}, total)
		}
	}
	log.Debugf("number of valid 1d trajectory pairs: %d", e.queue.Len())
	return e
}

// HasMorePairs 是否还有未取出的候选对
func (e *TrajectoryEvaluator) HasMorePairs() bool {
	return e.queue.Len() > 0
}

// NumPairs 剩余候选对数量
func (e *TrajectoryEvaluator) NumPairs() int {
	return e.queue.Len()
}

// NextTopPair 取出并移除当前代价最低的候选对
// 返回：lon-纵向候选，lat-横向候选
// 说明：前置条件为至少剩余一个候选对（HasMorePairs为true），
// 违反视为调用方逻辑错误直接panic；连续取出的总代价单调不减
func (e *TrajectoryEvaluator) NextTopPair() (lon, lat curve.Curve) {
	if !e.HasMorePairs() {
		log.Panicf("planning: NextTopPair called with no trajectory pair left")
	}
	top, _ := e.queue.HeapPop()
	return top.lon, top.lat
}

// TopPairCost 查看当前代价最低候选对的总代价，不取出
// 说明：前置条件为至少剩余一个候选对，违反视为调用方逻辑错误直接panic
func (e *TrajectoryEvaluator) TopPairCost() float64 {
	if !e.HasMorePairs() {
		log.Panicf("planning: TopPairCost called with no trajectory pair left")
	}
	return e.queue.FirstPriority()
}

// TopPairComponents 查看当前代价最低候选对的分项代价向量，不取出
// 返回：依次为纵向目标达成、纵向舒适性、纵向碰撞风险、横向偏移四项代价
// 说明：仅在配置开启WithComponents时可调用；
// 前置条件为至少剩余一个候选对，违反视为调用方逻辑错误直接panic
func (e *TrajectoryEvaluator) TopPairComponents() []float64 {
	if !e.cfg.WithComponents {
		log.Panicf("planning: TopPairComponents called without component tracking enabled")
	}
	if !e.HasMorePairs() {
		log.Panicf("planning: TopPairComponents called with no trajectory pair left")
	}
	return e.queue.First().components
}
