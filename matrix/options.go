// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and iterative kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helpers (internal) that resolve the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness (the power
//     iteration start vector comes from a seeded source).
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - A Dense remembers the epsilon it was built with; cached kernels (RREF, Det,
//     Inverse, LU) use it because a cache cannot depend on per-call options.
//   - Iterative solvers (Jacobi, PowerIteration) start from the matrix epsilon and
//     let per-call options override it.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by pivot, singularity,
	// symmetry and convergence checks.
	DefaultEpsilon = 1e-10

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	DefaultValidateNaNInf = true
)

// Iteration policy.
const (
	// DefaultMaxIterations is the power-iteration budget.
	DefaultMaxIterations = 1000

	// DefaultJacobiMaxIterations caps Jacobi rotations; Jacobi converges long
	// before this on any well-formed symmetric input.
	DefaultJacobiMaxIterations = 10000

	// DefaultSeed seeds the power-iteration start vector.
	DefaultSeed uint64 = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterInvalid = "matrix: WithMaxIterations: n must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them internally.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	maxIter        int     // 0 means "use the solver default"
	seed           uint64  // DefaultSeed
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - On constructors the value is stored in the Dense and reused by its cached
//     kernels; on solvers it overrides the matrix epsilon for that call only.
//
// AI-Hints:
//   - 1e-10 suits well-conditioned double data; relax to 1e-8 for noisy inputs.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation on construction.
// This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on construction (use with care).
// Results computed from such matrices may carry NaN/Inf through every kernel.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithMaxIterations sets the iteration budget of an iterative solver.
// Panics when n <= 0.
//
// AI-Hints:
//   - PowerIteration converges at rate |λ2/λ1|; raise the budget for close eigenvalues.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithSeed sets the seed of the random source used for the power-iteration start vector.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// --------------------------- Option Resolution ---------------------------

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		maxIter:        0,
		seed:           DefaultSeed,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins; stable for a given sequence of setters.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}

// gatherOptionsFor resolves options for a solver call on m: the matrix epsilon
// replaces the package default before user setters are applied.
func gatherOptionsFor(m *Dense, user ...Option) Options {
	o := defaultOptions()
	o.eps = m.eps
	for _, set := range user {
		set(&o)
	}

	return o
}

// iterations returns the configured budget, or fallback when none was set.
func (o Options) iterations(fallback int) int {
	if o.maxIter > 0 {
		return o.maxIter
	}

	return fallback
}
