package analysis

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/san-kum/attractor/internal/attractor"
)

// LyapunovExponent estimates the largest Lyapunov exponent using the
// trajectory separation method. A positive value indicates chaos.
//
// Algorithm:
//  1. Integrate two nearby trajectories
//  2. Measure their divergence over time
//  3. λ ≈ (1/t) * ln(|δx(t)/δx(0)|)
func LyapunovExponent(p attractor.Params, x0 mgl32.Vec3, dt, duration, perturbation float32) float64 {
	if dt <= 0 || duration <= 0 || perturbation <= 0 {
		return 0
	}

	x := x0
	xp := x0.Add(mgl32.Vec3{perturbation, 0, 0})
	d0 := float64(perturbation)

	sumLog := 0.0
	count := 0

	for t := float32(0); t < duration; t += dt {
		x = x.Add(p.Step(x, dt))
		xp = xp.Add(p.Step(xp, dt))

		sep := float64(xp.Sub(x).Len())
		if sep > 0 {
			sumLog += math.Log(sep / d0)
			count++
		}

		// Renormalize so the separation stays in the linear regime.
		if sep > 1.0 {
			scale := float32(d0 / sep)
			xp = x.Add(xp.Sub(x).Mul(scale))
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * float64(dt))
}

// SampleTrajectory integrates from x0 and records one coordinate per step,
// selected by axis (0=x, 1=y, 2=z). The result feeds [PowerSpectrum].
func SampleTrajectory(p attractor.Params, x0 mgl32.Vec3, dt float32, steps, axis int) []float64 {
	samples := make([]float64, 0, steps)
	x := x0
	for i := 0; i < steps; i++ {
		x = x.Add(p.Step(x, dt))
		samples = append(samples, float64(x[axis]))
	}
	return samples
}
