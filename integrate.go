// -*- tab-width:2 -*-

package copula

import (
	"math"
	"strings"

	integ "github.com/jtejido/ggsl/integration"
	"github.com/pkg/errors"
)

// kronrodPoints is the size of the Gauss-Kronrod rule used by QAG.
const kronrodPoints = 41

// Estimate is the result of one adaptive integration.
type Estimate struct {
	Value     float64
	AbsErr    float64
	Intervals int
	Evals     int
}

// integrand adapts a func to the ggsl Function interface, counting
// evaluations and catching non-finite values.
type integrand struct {
	f         func(float64) float64
	evals     int
	nonFinite bool
}

func (g *integrand) Evaluate(x float64) float64 {
	g.evals++

	v := g.f(x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		g.nonFinite = true

		return 0
	}

	return v
}

// Integrate approximates the integral of f over [a, b] with QAG, the
// globally adaptive 41-point Gauss-Kronrod scheme: the subinterval
// with the largest error is bisected until the total error meets
// max(cfg.EpsAbs, cfg.EpsRel*|value|). f is never evaluated at a or b,
// so integrable endpoint singularities are fine.
//
// On failure the best estimate so far is returned with the error.
func Integrate(f func(float64) float64, a, b float64, cfg *Config) (Estimate, error) {
	cfg = orDefault(cfg)
	incr("quad_integrate")

	if !(a < b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return Estimate{}, errors.Wrapf(ErrParam, "integration bounds [%g, %g]", a, b)
	}

	ws, err := integ.NewWorkspace(cfg.Limit)
	if err != nil {
		return Estimate{}, errors.Wrapf(ErrParam, "workspace of %d intervals: %v", cfg.Limit, err)
	}

	g := &integrand{f: f}

	var value, absErr float64

	qerr := integ.Qag(g, a, b, cfg.EpsAbs, cfg.EpsRel, cfg.Limit, ws, &value, &absErr, integ.Qk41)

	// one rule application to start, two per bisection
	est := Estimate{
		Value:     value,
		AbsErr:    absErr,
		Intervals: (g.evals/kronrodPoints + 1) / 2, //nolint:mnd
		Evals:     g.evals,
	}

	switch {
	case g.nonFinite:
		incr("quad_non_finite")

		return est, errors.Wrapf(ErrNonFinite, "over [%g, %g]", a, b)
	case qerr != nil && strings.Contains(qerr.Error(), "roundoff"):
		incr("quad_roundoff")

		return est, errors.Wrapf(ErrRoundoff, "over [%g, %g]: %v", a, b, qerr)
	case qerr != nil:
		incr("quad_limit_exceeded")
		logger().Ls("integration hit limit", cfg.Limit, "value", value, "abserr", absErr)

		return est, errors.Wrapf(ErrIntegrationLimit, "abserr %g after %d panels: %v", absErr, est.Intervals, qerr)
	}

	markDistribution("quad_intervals", float64(est.Intervals))
	logger().La("integrated [", a, b, "] =", est.Value, "abserr", est.AbsErr, "panels", est.Intervals)

	return est, nil
}
