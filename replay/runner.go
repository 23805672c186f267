package replay

import (
	"context"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"

	"github.com/iotaledger/containers.go/algorithm/quicksort"
	"github.com/iotaledger/containers.go/ds/positionallist"
	"github.com/iotaledger/containers.go/ds/queue"
	"github.com/iotaledger/containers.go/ds/ringbuffer"
	"github.com/iotaledger/containers.go/logger"
)

// DefaultHistorySize is the number of recent results that are logged together with a failed expectation.
const DefaultHistorySize = 5

// Runner applies scripts to new positional lists.
type Runner struct {
	*logger.WrappedLogger

	stats       *Stats
	historySize int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger of the Runner. Without a logger nothing is logged.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) {
		r.WrappedLogger = logger.NewWrappedLogger(log)
	}
}

// WithHistorySize sets the number of recent results that are logged together with a failed expectation.
func WithHistorySize(historySize int) Option {
	return func(r *Runner) {
		if historySize > 0 {
			r.historySize = historySize
		}
	}
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		WrappedLogger: logger.NewWrappedLogger(nil),
		stats:         new(Stats),
		historySize:   DefaultHistorySize,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Stats returns the counters of the Runner.
func (r *Runner) Stats() *Stats {
	return r.stats
}

// Run applies the steps of the script to a new list. The context is checked before every step.
func (r *Runner) Run(ctx context.Context, script *Script) *Report {
	report := &Report{Script: script.Name}
	defer r.finish(report)

	if err := script.Validate(); err != nil {
		report.Failures = append(report.Failures, err)
		r.LogWarnf("skipping script %s: %s", script.Name, err)

		return report
	}

	list := positionallist.New[int](script.ThreadSafe)
	history := ringbuffer.NewRingBuffer[*Result](r.historySize)
	log := r.LoggerNamed(script.Name)

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			report.Failures = append(report.Failures, ierrors.Wrapf(err, "script %s aborted before step %d", script.Name, i))
			log.LogWarnf("aborted before step %d: %s", i, err)

			break
		}

		result := apply(list, i, step)
		r.stats.StepsExecuted.Inc()
		report.Results = append(report.Results, result)
		history.ForcePush(result)

		log.LogDebugf("step %d: %s -> [%s]", i, step.Op, result.Render)

		if err := result.check(step.Expect); err != nil {
			r.stats.ExpectationsFailed.Inc()
			report.Failures = append(report.Failures, err)
			log.LogWarnf("%s, recent results (newest first):\n%s", err, renderHistory(history))
		}
	}

	return report
}

// RunAll runs the given scripts on a pool of workers and returns their reports sorted by script name.
func (r *Runner) RunAll(ctx context.Context, scripts []*Script, workers int) ([]*Report, error) {
	if workers < 1 {
		workers = 1
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to create worker pool")
	}
	defer pool.Release()

	type pendingScript struct {
		index  int
		script *Script
	}

	pending := queue.New[pendingScript]()
	for i, script := range scripts {
		pending.Offer(pendingScript{index: i, script: script})
	}

	reports := make([]*Report, len(scripts))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			for next, ok := pending.Poll(); ok; next, ok = pending.Poll() {
				reports[next.index] = r.Run(ctx, next.script)
			}
		}); err != nil {
			wg.Done()
			wg.Wait()

			return nil, ierrors.Wrap(err, "failed to submit worker")
		}
	}
	wg.Wait()

	quicksort.SortFunc(reports, func(a, b *Report) int {
		return lo.Comparator(a.Script, b.Script)
	})

	return reports, ctx.Err()
}

func (r *Runner) finish(report *Report) {
	r.stats.ScriptsRun.Inc()
	if report.Failed() {
		r.stats.ScriptsFailed.Inc()
	}

	r.LogInfof("finished script %s: %d steps, %d failures", report.Script, len(report.Results), len(report.Failures))
}

// apply executes a single (validated) step on the given list.
func apply(list positionallist.PositionalList[int], stepIndex int, step Step) *Result {
	result := &Result{
		Step:  stepIndex,
		Op:    step.Op,
		Index: step.Index,
	}

	switch step.Op {
	case OpPush:
		list.Push(step.Value)
	case OpAddAt:
		result.Err = list.AddAt(step.Index, step.Value)
	case OpRemoveAt:
		result.Value, result.Err = list.RemoveAt(step.Index)
	case OpPop:
		result.Value, result.Err = list.Pop()
	case OpGetAt:
		result.Value, result.Err = list.GetAt(step.Index)
	case OpLen:
		result.Value = list.Len()
	case OpClear:
		list.Clear()
	case OpRender:
		// the rendered list is captured for every step
	}

	result.Length = list.Len()
	result.Render = list.String()

	return result
}

func renderHistory(history *ringbuffer.RingBuffer[*Result]) string {
	return strings.Join(lo.Map(history.ToSlice(), (*Result).String), "\n")
}
