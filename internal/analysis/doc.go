// Package analysis provides chaos diagnostics for the Lorenz system.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via trajectory separation
//   - [PowerSpectrum]: magnitude spectrum of a sampled trajectory coordinate
//   - [DominantFrequency]: strongest non-DC spectral component
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(params, x0, dt, duration, 1e-8)
//	if lambda > 0 {
//	    // trajectories diverge exponentially
//	}
package analysis
