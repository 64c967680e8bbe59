// 通用容器：按优先级数值升序出队的最小堆优先队列
package container

import "container/heap"

// item 优先队列中的单个元素
// 功能：保存元素值与其优先级数值
type item[T any] struct {
	Value    T       // 元素的值（任意类型）
	Priority float64 // 元素的优先级数值（越小越优先）
}

// priorityQueue 实现heap.Interface的内部队列
// 说明：Less使用小于号，Pop返回优先级数值最小的元素（最小堆）；
// 以代价为优先级时即为"代价最低者先出队"
type priorityQueue[T any] []*item[T]

func (pq priorityQueue[T]) Len() int { return len(pq) }

func (pq priorityQueue[T]) Less(i, j int) bool {
	return pq[i].Priority < pq[j].Priority
}

func (pq priorityQueue[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue[T]) Push(x any) {
	*pq = append(*pq, x.(*item[T]))
}

func (pq *priorityQueue[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // 避免内存泄漏
	*pq = old[0 : n-1]
	return item
}

// PriorityQueue 优先队列
// 功能：提供按优先级数值升序弹出元素的队列，封装内部堆实现
// 说明：只进不改——元素入队后优先级不再调整，出队为破坏性操作
type PriorityQueue[T any] struct {
	queue priorityQueue[T]
}

// NewPriorityQueue 创建优先队列
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{queue: make(priorityQueue[T], 0)}
}

// Len 获取当前队列长度
func (q *PriorityQueue[T]) Len() int {
	return len(q.queue)
}

// First 查看队首元素（优先级数值最小的元素），不出队
// 说明：空队列调用会越界panic，调用前需保证队列非空
func (q *PriorityQueue[T]) First() T {
	return q.queue[0].Value
}

// FirstPriority 查看队首元素的优先级数值，不出队
// 说明：空队列调用会越界panic，调用前需保证队列非空
func (q *PriorityQueue[T]) FirstPriority() float64 {
	return q.queue[0].Priority
}

// HeapPush 入队
// 功能：向队列中添加新元素并维护堆结构
// 参数：value-元素值，priority-优先级数值
func (q *PriorityQueue[T]) HeapPush(value T, priority float64) {
	heap.Push(&q.queue, &item[T]{
		Value:    value,
		Priority: priority,
	})
}

// HeapPop 出队
// 功能：移除并返回优先级数值最小的元素
// 返回：value-元素值，priority-优先级数值
func (q *PriorityQueue[T]) HeapPop() (value T, priority float64) {
	item := heap.Pop(&q.queue).(*item[T])
	return item.Value, item.Priority
}
