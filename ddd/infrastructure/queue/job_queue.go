package queue

import (
	"context"
	"fmt"
	"sync"

	"subflix/ddd/domain/entity"
)

// JobQueue 任务队列接口,FIFO语义
type JobQueue interface {
	// Enqueue 入队任务,队列满时立即报错
	Enqueue(ctx context.Context, job *entity.ProcessingJob) error

	// Dequeue 出队任务(阻塞直到有任务或ctx取消)
	Dequeue(ctx context.Context) (*entity.ProcessingJob, error)

	// Size 获取队列大小
	Size() int

	// Close 关闭队列
	Close() error
}

// MemoryJobQueue 基于有界channel的内存队列。任务记录本身持久化在
// 数据库里,队列只承载待执行顺序,进程重启后排队中的任务不自动恢复。
type MemoryJobQueue struct {
	queue  chan *entity.ProcessingJob
	closed bool
	mu     sync.RWMutex
}

// NewMemoryJobQueue 创建内存任务队列
func NewMemoryJobQueue(capacity int) *MemoryJobQueue {
	if capacity <= 0 {
		capacity = 100
	}
	return &MemoryJobQueue{
		queue: make(chan *entity.ProcessingJob, capacity),
	}
}

// Enqueue 入队任务
func (q *MemoryJobQueue) Enqueue(ctx context.Context, job *entity.ProcessingJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return fmt.Errorf("queue is closed")
	}
	if job == nil {
		return fmt.Errorf("job cannot be nil")
	}

	select {
	case q.queue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("queue is full")
	}
}

// Dequeue 出队任务(阻塞)
func (q *MemoryJobQueue) Dequeue(ctx context.Context) (*entity.ProcessingJob, error) {
	select {
	case job, ok := <-q.queue:
		if !ok {
			return nil, fmt.Errorf("queue is closed")
		}
		return job, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Size 获取队列大小
func (q *MemoryJobQueue) Size() int {
	return len(q.queue)
}

// Close 关闭队列,排队中未执行的任务被丢弃
func (q *MemoryJobQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	q.closed = true
	close(q.queue)
	return nil
}
