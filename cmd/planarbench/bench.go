package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/planar/gm"
	"github.com/oliverbestmann/planar/internal/config"
	"github.com/oliverbestmann/planar/physics"
	"github.com/oliverbestmann/planar/robust"
	"github.com/oliverbestmann/planar/soa"
	"github.com/oliverbestmann/planar/tween"
	"github.com/tanema/gween/ease"
)

type result struct {
	Buffer  int
	Frames  int
	Elapsed time.Duration
	Hash    uint64
	Bounds  gm.Rect

	// Left counts the points left of the heading of the body after the last frame.
	Left int
}

func (r result) FrameTime() time.Duration {
	if r.Frames == 0 {
		return 0
	}

	return r.Elapsed / time.Duration(r.Frames)
}

// runBuffer moves a cloud of random points along with a kinematic body.
// The buffers are owned by this call, the configuration is only read.
func runBuffer(ctx context.Context, idx int, cfg config.Config) (result, error) {
	rng := rand.New(rand.NewPCG(cfg.Seed, uint64(idx)))

	local, err := soa.New(cfg.Capacity)
	if err != nil {
		return result{}, fmt.Errorf("buffer %d: %w", idx, err)
	}

	for pointIdx := range local.Len() {
		point := gm.RandomVec(rng).Mul(cfg.Extent)
		if err := local.Set(pointIdx, point); err != nil {
			return result{}, err
		}
	}

	world := local.Clone()

	body := physics.NewBody(cfg.Body.Transform, 1, 1)
	body.Velocity = physics.Velocity{
		Linear:  cfg.Velocity.Linear,
		Angular: cfg.Velocity.Angular,
	}

	cpBody := cp.NewKinematicBody()
	physics.SyncBody(cpBody, &body)

	// the cloud breathes while it moves
	pulse := tween.NewVec(gm.VecOne(), gm.VecSplat(1.5), 1, ease.InOutQuad)

	dt := cfg.TimeStep.Seconds()

	var elapsed time.Duration
	for range cfg.Frames {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}

		startTime := time.Now()

		body.Integrate(dt)
		physics.SyncBody(cpBody, &body)

		scale, finished := pulse.Update(float32(dt))
		if finished {
			pulse.Reset()
		}

		if err := world.CopyFrom(local); err != nil {
			return result{}, err
		}

		world.ScaleEach(scale)
		world.TransformPoints(physics.TransformOfBody(cpBody))

		elapsed += time.Since(startTime)
	}

	origin := body.LocalToWorld(gm.VecZero())
	heading := body.LocalToWorld(gm.VecUnitX())

	var left int
	xs, ys := world.X(), world.Y()
	for pointIdx := range xs {
		point := gm.Vec{X: xs[pointIdx], Y: ys[pointIdx]}
		if robust.Orientation(origin, heading, point) == robust.CounterClockwise {
			left++
		}
	}

	return result{
		Buffer:  idx,
		Frames:  cfg.Frames,
		Elapsed: elapsed,
		Hash:    world.Hash(),
		Bounds:  world.Bounds(),
		Left:    left,
	}, nil
}
