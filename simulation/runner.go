package simulation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/locomotion"
	"github.com/oomph-ac/kinematic/oerror"
	"github.com/oomph-ac/kinematic/worker"
	"github.com/sirupsen/logrus"
)

// Character is a single character stepped by a Runner.
type Character struct {
	ID   uuid.UUID
	Name string

	Controller *locomotion.Controller
	Recording  *Recording
}

// Stats holds the time it took the runner to step its frames.
type Stats struct {
	Frames int

	Mean   time.Duration
	Median time.Duration
	P99    time.Duration
	StdDev time.Duration
}

// Runner steps any amount of independent characters through the same world, frame by frame. The
// characters of a frame are stepped in parallel on the shared workers.
//
// A Runner is not safe for concurrent use, and the world the characters move through must not be
// changed while a frame is being stepped.
type Runner struct {
	dt      float32
	workers int
	log     *logrus.Logger

	characters []*Character
	byID       map[uuid.UUID]*Character

	frame     int
	durations []float64
}

// NewRunner returns a runner stepping its characters dt seconds every frame, with at most workers
// characters stepped at the same time. Zero workers uses every available worker.
func NewRunner(dt float32, workers int, log *logrus.Logger) (*Runner, error) {
	if dt <= 0 {
		return nil, oerror.New(game.ErrorInvalidTickRate, dt)
	}
	if workers < 0 {
		return nil, oerror.New("worker count must not be negative (got %d)", workers)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{
		dt:      dt,
		workers: workers,
		log:     log,
		byID:    make(map[uuid.UUID]*Character),
	}, nil
}

// Add adds a character moved by the controller passed and returns its ID.
func (r *Runner) Add(name string, c *locomotion.Controller) uuid.UUID {
	ch := &Character{
		ID:         uuid.New(),
		Name:       name,
		Controller: c,
		Recording:  &Recording{},
	}
	r.characters = append(r.characters, ch)
	r.byID[ch.ID] = ch
	return ch.ID
}

// Character returns the character with the ID passed.
func (r *Runner) Character(id uuid.UUID) (*Character, bool) {
	ch, ok := r.byID[id]
	return ch, ok
}

// Characters returns every character in the order they were added.
func (r *Runner) Characters() []*Character {
	return r.characters
}

// Frame returns the amount of frames stepped so far.
func (r *Runner) Frame() int {
	return r.frame
}

// Step steps every character a single frame.
func (r *Runner) Step() error {
	start := time.Now()
	frame := r.frame + 1

	g := worker.NewGroup(r.workers)
	for _, ch := range r.characters {
		g.Go(func() error {
			r.tick(ch, frame)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return oerror.New("frame %d failed: %v", frame, err)
	}

	r.frame = frame
	r.durations = append(r.durations, float64(time.Since(start)))
	return nil
}

func (r *Runner) tick(ch *Character, frame int) {
	prev, hasPrev := ch.Recording.Last()
	pos := ch.Controller.Tick(r.dt)
	state := ch.Controller.State()
	ch.Recording.add(Sample{Frame: frame, Position: pos, State: state})

	if hasPrev && prev.State != state {
		r.log.WithFields(logrus.Fields{
			"character": ch.Name,
			"id":        ch.ID.String()[:8],
			"frame":     frame,
			"from":      prev.State,
			"to":        state,
		}).Info("ground state changed")
	}
	if ch.Controller.Debugger().Enabled(locomotion.DebugModeArbitration) {
		r.log.WithField("character", ch.Name).Debugf("frame %d %s", frame, ch.Controller.Debugger().TraceString())
	}
}

// Run steps frames frames, stopping early with the error of ctx if it is done between two frames.
func (r *Runner) Run(ctx context.Context, frames int) error {
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Digest returns a hash of the trajectories of every character.
func (r *Runner) Digest() uint64 {
	var d uint64
	for _, ch := range r.characters {
		d = d*31 + ch.Recording.Digest()
	}
	return d
}

// Stats returns statistics on the time taken by the frames stepped so far.
func (r *Runner) Stats() Stats {
	return Stats{
		Frames: len(r.durations),
		Mean:   time.Duration(game.Mean(r.durations)),
		Median: time.Duration(game.Median(r.durations)),
		P99:    time.Duration(game.Percentile(r.durations, 99)),
		StdDev: time.Duration(game.StandardDeviation(r.durations)),
	}
}
