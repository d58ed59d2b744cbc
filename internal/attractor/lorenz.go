package attractor

import "github.com/go-gl/mathgl/mgl32"

// Params are the Lorenz system coefficients.
type Params struct {
	Sigma, Rho, Beta float32
}

func DefaultParams() Params { return Params{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0} }

// Derive calculates the Lorenz attractor derivatives at p.
func (l Params) Derive(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		l.Sigma * (p.Y() - p.X()),
		p.X()*(l.Rho-p.Z()) - p.Y(),
		p.X()*p.Y() - l.Beta*p.Z(),
	}
}

// Step performs one explicit Euler step and returns the motion delta.
// The new position is p.Add(delta).
func (l Params) Step(p mgl32.Vec3, dt float32) mgl32.Vec3 {
	return l.Derive(p).Mul(dt)
}
