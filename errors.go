// -*- tab-width:2 -*-

package copula

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange is returned when a copula gets a value outside [0,1].
	ErrOutOfRange = errors.New("all inputs need to be between 0 and 1")
	// ErrUnsupported is returned for configurations the models do not cover.
	ErrUnsupported = errors.New("unsupported configuration")
	// ErrShape is returned for ragged or mismatched inputs.
	ErrShape = errors.New("input shapes do not match")
	// ErrParam is returned for invalid distribution parameters.
	ErrParam = errors.New("invalid parameter")
	// ErrIntegrationLimit is returned when quadrature runs out of subintervals.
	ErrIntegrationLimit = errors.New("integration did not converge within the subdivision limit")
	// ErrRoundoff is returned when a subinterval can no longer be bisected.
	ErrRoundoff = errors.New("integration interval too narrow to bisect")
	// ErrNonFinite is returned when an integrand produces NaN or an infinite sum.
	ErrNonFinite = errors.New("integrand is not finite")
)
