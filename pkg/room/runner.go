package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"idlepoker-server/pkg/game"
	"idlepoker-server/pkg/store"
)

// ErrStopped is returned when the runner is no longer running
var ErrStopped = errors.New("runner is stopped")

// Options configures a Runner
type Options struct {
	TickInterval     time.Duration
	AutosaveInterval time.Duration
	SaveTimeout      time.Duration
}

// Runner owns an engine and is the only goroutine that touches it
// Ticks and player actions are serialized through the run loop
type Runner struct {
	engine  *game.Engine
	store   store.Store
	options Options
	log     logrus.FieldLogger

	subscribers map[*Subscriber]bool
	lock        sync.RWMutex

	execInRunLoop chan func()
	pendingSave   chan []byte
	close         chan bool
	done          chan bool
	saverDone     chan bool
	startOnce     sync.Once
	stopOnce      sync.Once
}

// default intervals
const (
	DefaultTickInterval     = time.Second
	DefaultAutosaveInterval = time.Second * 30
	DefaultSaveTimeout      = time.Second * 5
)

// NewRunner creates a new runner
// The run loop is not started until Start() is called
func NewRunner(engine *game.Engine, s store.Store, options Options) *Runner {
	if options.TickInterval <= 0 {
		options.TickInterval = DefaultTickInterval
	}

	if options.AutosaveInterval <= 0 {
		options.AutosaveInterval = DefaultAutosaveInterval
	}

	if options.SaveTimeout <= 0 {
		options.SaveTimeout = DefaultSaveTimeout
	}

	return &Runner{
		engine:        engine,
		store:         s,
		options:       options,
		log:           logrus.WithField("component", "runner"),
		subscribers:   make(map[*Subscriber]bool),
		execInRunLoop: make(chan func(), 256),
		pendingSave:   make(chan []byte, 1),
		close:         make(chan bool),
		done:          make(chan bool),
		saverDone:     make(chan bool),
	}
}

// Start starts the run loop and the saver
func (r *Runner) Start() {
	r.startOnce.Do(func() {
		go r.saveLoop()
		go r.runLoop()
	})
}

// Stop ends the run loop, writes a final save and waits for it
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		r.Start()
		close(r.close)
		<-r.done
		<-r.saverDone
	})
}

func (r *Runner) runLoop() {
	defer close(r.done)

	tick := time.NewTicker(r.options.TickInterval)
	defer tick.Stop()
	autosave := time.NewTicker(r.options.AutosaveInterval)
	defer autosave.Stop()

	r.log.Debug("starting run loop")
	for {
		select {
		case <-tick.C:
			r.tick()
		case <-autosave.C:
			r.save()
		case fn := <-r.execInRunLoop:
			fn()
		case <-r.close:
			r.log.Debug("terminating run loop")
			r.save()
			close(r.pendingSave)
			return
		}
	}
}

// NOTE: must only be called from the run loop
func (r *Runner) tick() {
	res := r.engine.AdvanceTick()
	if res.Cleared {
		s := r.engine.State()
		r.log.WithFields(logrus.Fields{
			"ante":   s.Ante,
			"goal":   s.BlindGoal,
			"payout": res.Payout,
			"money":  s.Money,
		}).Info("blind cleared")

		for _, j := range res.Destroyed {
			r.log.WithFields(logrus.Fields{
				"joker": j.ID,
				"uid":   j.UID,
			}).Info("joker destroyed")
		}

		r.save()
	}

	r.broadcast(r.engine.View())
}

// save encodes the run in the loop and hands it to the saver
// NOTE: must only be called from the run loop
func (r *Runner) save() {
	data, err := r.engine.MarshalSave()
	if err != nil {
		r.log.WithError(err).Error("could not encode save")
		return
	}

	// only the latest save matters
	select {
	case r.pendingSave <- data:
	default:
		select {
		case <-r.pendingSave:
		default:
		}

		r.pendingSave <- data
	}
}

func (r *Runner) saveLoop() {
	defer close(r.saverDone)

	for data := range r.pendingSave {
		ctx, cancel := context.WithTimeout(context.Background(), r.options.SaveTimeout)
		if err := r.store.Save(ctx, data); err != nil {
			r.log.WithError(err).Error("could not save")
		}

		cancel()
	}
}

// Exec runs fn in the run loop and returns the resulting view
// The error is the one returned by fn
func (r *Runner) Exec(fn func(e *game.Engine) error) (*game.View, error) {
	type result struct {
		view *game.View
		err  error
	}

	ch := make(chan result, 1)
	exec := func() {
		err := fn(r.engine)
		view := r.engine.View()
		r.broadcast(view)
		ch <- result{view: view, err: err}
	}

	select {
	case r.execInRunLoop <- exec:
	case <-r.done:
		return nil, ErrStopped
	}

	select {
	case res := <-ch:
		return res.view, res.err
	case <-r.done:
		return nil, ErrStopped
	}
}

// View returns a snapshot of the run
func (r *Runner) View() (*game.View, error) {
	return r.Exec(func(*game.Engine) error {
		return nil
	})
}

// Reset deletes the save and starts a new run
func (r *Runner) Reset(ctx context.Context) (*game.View, error) {
	if err := r.store.Delete(ctx); err != nil {
		return nil, err
	}

	return r.Exec(func(e *game.Engine) error {
		e.Reset()
		r.log.Info("run reset")
		r.save()
		return nil
	})
}
