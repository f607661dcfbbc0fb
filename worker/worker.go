package worker

import (
	"runtime"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/treefall/oerror"
)

// Pool runs submitted jobs on a fixed amount of goroutines. A job that panics is reported to sentry and
// does not take its goroutine down with it.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup
	once sync.Once
}

// New starts a pool with n goroutines. If n is not positive, one goroutine is started per CPU.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{jobs: make(chan func(), n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for f := range p.jobs {
		run(f)
	}
}

func run(f func()) {
	defer func() {
		if err := recover(); err != nil {
			hub := sentry.CurrentHub().Clone()
			hub.Recover(oerror.New("worker job panicked: %v", err))
			hub.Flush(time.Second * 5)
		}
	}()
	f()
}

// Submit queues a job, blocking while all goroutines are busy and the queue is full.
func (p *Pool) Submit(f func()) {
	p.jobs <- f
}

// Close stops accepting jobs and waits for all queued jobs to finish.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.jobs)
	})
	p.wg.Wait()
}
