package workers

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
)

// ErrPoolClosed is returned by Submit after Close was called.
var ErrPoolClosed = errors.New("worker pool is closed")

const defaultLaneBuffer = 16

// lane runs its tasks one after another in the order they were queued.
type lane struct {
	ctx   context.Context
	tasks chan Task
	done  func()
}

func (l *lane) Run() {
	defer l.done()
	for task := range l.tasks {
		task(l.ctx)
	}
}

// LanePool routes every task to one of a fixed number of lanes by hashing
// its key. Tasks with equal keys land in the same lane and therefore never
// overlap and keep submission order.
type LanePool struct {
	lanes []*lane
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewLanePool starts size lanes. Tasks receive ctx; callers that want
// in-flight tasks to finish after a shutdown signal should pass a context
// that is not cancelled by it. size below 1 is treated as 1.
func NewLanePool(ctx context.Context, size int) *LanePool {
	if size < 1 {
		size = 1
	}

	p := &LanePool{lanes: make([]*lane, size)}
	p.wg.Add(size)
	for i := range p.lanes {
		l := &lane{ctx: ctx, tasks: make(chan Task, defaultLaneBuffer), done: p.wg.Done}
		p.lanes[i] = l
		go l.Run()
	}

	return p
}

// Size returns the number of lanes.
func (p *LanePool) Size() int {
	return len(p.lanes)
}

// Submit queues task on the lane owning key. It blocks while that lane's
// queue is full.
func (p *LanePool) Submit(key string, task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	p.lanes[p.laneIndex(key)].tasks <- task
	return nil
}

// Close stops accepting tasks and waits until every queued task has run.
// It is safe to call more than once.
func (p *LanePool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		for _, l := range p.lanes {
			close(l.tasks)
		}
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *LanePool) laneIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(p.lanes)))
}
