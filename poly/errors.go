// SPDX-License-Identifier: MIT

package poly

import "github.com/cockroachdb/errors"

var (
	// ErrZeroPolynomial is returned when roots of the zero polynomial are requested.
	ErrZeroPolynomial = errors.New("poly: zero polynomial has no finite root set")

	// ErrInvalidTolerance is returned for a NaN, infinite or negative tolerance.
	ErrInvalidTolerance = errors.New("poly: tolerance must be finite and non-negative")

	// ErrNonFinite is returned when a coefficient is NaN or infinite.
	ErrNonFinite = errors.New("poly: coefficient is NaN or Inf")
)
