package engine

import "sync"

// pool is a fixed set of reusable worker goroutines. The engine owns one for
// its lifetime and runs iterative-deepening loops on it so the calling
// goroutine stays free to enforce wall-clock bounds.
type pool struct {
	tasks chan func()
	wg    sync.WaitGroup
}

func newPool(workers int) *pool {
	if workers < 1 {
		workers = 1
	}
	p := &pool{tasks: make(chan func())}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// submit schedules a task on the pool, blocking until a worker is free.
func (p *pool) submit(task func()) {
	p.tasks <- task
}

// close stops the workers after the queued tasks finish.
func (p *pool) close() {
	close(p.tasks)
	p.wg.Wait()
}
