package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wan9hao/apollo/utils/container"
)

func TestPriorityQueueInit(t *testing.T) {
	q := container.NewPriorityQueue[string]()
	assert.Equal(t, 0, q.Len())
}

// 优先级数值最小者先出队：按3、1、2入队，期望按1、2、3出队
func TestPriorityQueueOrdering(t *testing.T) {
	q := container.NewPriorityQueue[string]()
	q.HeapPush("c", 3)
	q.HeapPush("a", 1)
	q.HeapPush("b", 2)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, "a", q.First())
	assert.Equal(t, 1.0, q.FirstPriority())

	v, p := q.HeapPop()
	assert.Equal(t, "a", v)
	assert.Equal(t, 1.0, p)
	v, p = q.HeapPop()
	assert.Equal(t, "b", v)
	assert.Equal(t, 2.0, p)
	v, p = q.HeapPop()
	assert.Equal(t, "c", v)
	assert.Equal(t, 3.0, p)
	assert.Equal(t, 0, q.Len())
}

func TestPriorityQueuePeekDoesNotRemove(t *testing.T) {
	q := container.NewPriorityQueue[int]()
	q.HeapPush(7, 0.5)
	assert.Equal(t, 7, q.First())
	assert.Equal(t, 7, q.First())
	assert.Equal(t, 1, q.Len())
}
