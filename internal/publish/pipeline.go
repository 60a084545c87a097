package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
)

// Step is one guarded unit of a publish run.
type Step struct {
	Name     string
	Title    string
	Category Category
	Run      func(ctx context.Context) error
}

// StepObserver is notified after every executed step.
type StepObserver interface {
	ObserveStep(step string, d time.Duration, err error)
}

// Pipeline runs steps in order and stops at the first failure.
type Pipeline struct {
	steps    []Step
	log      logr.Logger
	out      *reporter
	observer StepObserver
	now      func() time.Time
}

func (pl *Pipeline) Run(ctx context.Context) error {
	for i, s := range pl.steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		pl.out.section(fmt.Sprintf("[%d/%d] %s", i+1, len(pl.steps), s.Title))

		log := pl.log.WithValues("step", s.Name)
		log.V(1).Info("starting step")

		start := pl.now()
		err := s.Run(ctx)
		pl.observer.ObserveStep(s.Name, pl.now().Sub(start), err)

		if err != nil {
			log.V(1).Info("step failed", "error", err.Error())
			serr := &StepError{Step: s.Name, Category: s.Category, Err: err}
			pl.out.failure("%s", serr.Error())

			return serr
		}
	}

	return nil
}
