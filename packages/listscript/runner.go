package listscript

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"go.uber.org/atomic"

	"github.com/iotaledger/memlist/packages/datastructure"
)

// region Runner ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Runner applies Commands to a LinkedList.
type Runner struct {
	// Metrics counts the Commands that were processed by the Runner.
	Metrics *Metrics

	list *datastructure.LinkedList
	log  *logger.Logger

	optsStopOnError bool
}

// NewRunner creates a Runner that modifies the given list.
func NewRunner(list *datastructure.LinkedList, log *logger.Logger, opts ...Option) (runner *Runner) {
	runner = &Runner{
		Metrics: newMetrics(),
		list:    list,
		log:     log,
	}

	for _, opt := range opts {
		opt(runner)
	}

	return runner
}

// Run executes the Commands in order. The context is checked before every Command.
func (r *Runner) Run(ctx context.Context, commands []*Command) error {
	for _, command := range commands {
		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "aborted before line %d", command.Line)
		default:
		}

		if err := r.Execute(command); err != nil {
			r.Metrics.failed.Inc()

			if r.optsStopOnError {
				return errors.Wrapf(err, "line %d: %s failed", command.Line, command.Verb)
			}

			r.log.Warnf("line %d: %s failed: %s", command.Line, command.Verb, err)
			continue
		}

		r.Metrics.applied.Inc()
	}

	return nil
}

// Execute applies a single Command to the list.
func (r *Runner) Execute(command *Command) (err error) {
	switch command.Verb {
	case AddFirst:
		r.list.AddFirst(command.Block)
	case AddLast:
		r.list.AddLast(command.Block)
	case Add:
		err = r.list.Add(command.Index, command.Block)
	case Remove:
		err = r.list.RemoveIndex(command.Index)
	case RemoveBlock:
		err = r.list.RemoveBlock(command.Block)
	case Get:
		block, getErr := r.list.GetBlock(command.Index)
		if getErr != nil {
			return getErr
		}
		r.log.Infof("line %d: block at %d is %s", command.Line, command.Index, block)
	case IndexOf:
		r.log.Infof("line %d: index of %s is %d", command.Line, command.Block, r.list.IndexOf(command.Block))
	case Print:
		r.log.Infof("line %d: [%s] size=%d", command.Line, r.list, r.list.GetSize())
	default:
		return errors.Wrapf(ErrInvalidCommand, "unknown verb %q", command.Verb)
	}

	if err == nil {
		r.log.Debugf("applied %s", command)
	}

	return err
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Metrics //////////////////////////////////////////////////////////////////////////////////////////////////////

// Metrics contains the counters of a Runner.
type Metrics struct {
	applied *atomic.Uint64
	failed  *atomic.Uint64
}

func newMetrics() *Metrics {
	return &Metrics{
		applied: atomic.NewUint64(0),
		failed:  atomic.NewUint64(0),
	}
}

// Applied returns the number of Commands that were executed successfully.
func (m *Metrics) Applied() uint64 {
	return m.applied.Load()
}

// Failed returns the number of Commands that returned an error.
func (m *Metrics) Failed() uint64 {
	return m.failed.Load()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
