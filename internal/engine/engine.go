// Package engine owns the simulation lifecycle: it spawns and despawns the
// emitting particles, advances them by one Lorenz step per fixed physics tick,
// feeds the shared trail buffer, and observes configuration changes once per
// tick. Rendering layers read its state; they never mutate it.
package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/trail"
)

// ctxCheckInterval bounds how many ticks a headless run executes between
// context cancellation checks.
const ctxCheckInterval = 1024

type Engine struct {
	cfg       *config.Config
	particles []attractor.Particle
	buffer    *trail.Buffer

	now     float32 // simulation clock, advances by one tick interval per Tick
	ticks   uint64
	lastGen uint64
}

// New creates an engine with a seeded trail buffer and the initial particle
// fan spawned from the configuration.
func New(cfg *config.Config) *Engine {
	e := &Engine{
		cfg:     cfg,
		buffer:  trail.NewBuffer(),
		lastGen: cfg.Generation(),
	}
	e.spawn()
	return e
}

func (e *Engine) spawn() {
	e.particles = attractor.SpawnFan(e.cfg.NumOfTrails, e.cfg.InitialDistance)
}

// Clear despawns all particles and resets the trail buffer to its
// single-placeholder state. The simulation clock keeps running.
func (e *Engine) Clear() {
	e.particles = e.particles[:0]
	e.buffer.Clear()
	e.cfg.TrailSegmentCount = e.buffer.Len()
}

// Start clears everything and re-spawns the particle fan from the current
// configuration.
func (e *Engine) Start() {
	e.Clear()
	e.spawn()
}

// Tick advances the simulation by one fixed physics step: observe config
// changes, evict aged-out segments, integrate every particle and emit its
// trail segment, publish telemetry, advance the clock.
func (e *Engine) Tick() {
	e.observeConfig()

	e.buffer.EvictExpired(e.now)

	params := attractor.Params{Sigma: e.cfg.Sigma, Rho: e.cfg.Rho, Beta: e.cfg.Beta}
	dt := e.cfg.Dt()
	lifetime := e.cfg.LifetimeSeconds()

	for i := range e.particles {
		p := &e.particles[i]
		delta := params.Step(p.Position, dt)
		if seg, ok := trail.Encode(p.Position, delta, p.TrailColor, e.now, lifetime); ok {
			e.buffer.Push(seg)
		}
		p.Position = p.Position.Add(delta)
	}

	e.cfg.TrailSegmentCount = e.buffer.Len()
	e.now += e.cfg.TickSeconds()
	e.ticks++
}

// observeConfig consumes the configuration change flag once per tick. The only
// dependent system living here is the in-flight lifetime rewrite; tick-rate
// changes are picked up by the loop owner through cfg.TickSeconds.
func (e *Engine) observeConfig() {
	gen := e.cfg.Generation()
	if gen == e.lastGen {
		return
	}
	e.lastGen = gen
	e.buffer.RewriteLifetime(e.cfg.LifetimeSeconds())
}

// Run executes ticks headlessly until the given amount of simulated time has
// elapsed. It fails fast if the integration diverges.
func (e *Engine) Run(ctx context.Context, duration float32) error {
	if duration <= 0 {
		return ErrInvalidDuration
	}
	end := e.now + duration
	for e.now < end {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		for i := 0; i < ctxCheckInterval && e.now < end; i++ {
			e.Tick()
		}
		if err := e.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) validate() error {
	for _, p := range e.particles {
		for _, v := range p.Position {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				return fmt.Errorf("%w: particle %d at t=%.4f", ErrUnstable, p.Index, e.now)
			}
		}
	}
	return nil
}

// Now is the current simulation clock, the reference for segment ages.
func (e *Engine) Now() float32 { return e.now }

// Ticks is the number of physics steps executed so far.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Particles returns the live emitters. The slice aliases engine state.
func (e *Engine) Particles() []attractor.Particle { return e.particles }

// Buffer exposes the shared trail buffer for the upload pipeline.
func (e *Engine) Buffer() *trail.Buffer { return e.buffer }

// SegmentCount is the number of live trail segments.
func (e *Engine) SegmentCount() int { return e.buffer.Len() }

// Head returns the position of particle i, or the zero vector when the
// simulation is cleared.
func (e *Engine) Head(i int) mgl32.Vec3 {
	if i < 0 || i >= len(e.particles) {
		return mgl32.Vec3{}
	}
	return e.particles[i].Position
}
