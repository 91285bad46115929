// -*- tab-width:2 -*-

package copula

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// This file compares copula outage bounds for two Rayleigh fading
// channels against a correlation model from the literature, where
// each channel is h_i = sqrt(1-rho)*w_i + sqrt(rho)*h0 with a common
// component h0.

// OutageThreshold is s = (2^rate - 1)/snr, the channel power below
// which the target rate is not supported.
func OutageThreshold(rate, snr float64) float64 {
	return math.Expm1(rate*math.Ln2) / snr
}

// OutageLowerBound is the copula lower bound on P(X+Y <= s) for
// exponential X and Y with rates lamX and lamY.
func OutageLowerBound(s, lamX, lamY float64) float64 {
	alphaX := 1 / lamX
	alphaY := 1 / lamY
	alpha := alphaX + alphaY
	k := alpha*math.Log(alpha) - alphaX*math.Log(alphaX) - alphaY*math.Log(alphaY)

	return math.Max(-math.Expm1(-(s-k)/alpha), 0)
}

// OutageUpperBound is the copula upper bound on P(X+Y <= s), the CDF
// of the marginal with the larger mean.
func OutageUpperBound(s, lamX, lamY float64) float64 {
	lam := 1 / math.Max(1/lamX, 1/lamY)

	return ExponentialCDF(lam)(s)
}

func checkCorrelation(rho float64, channels int) error {
	if !(rho >= 0 && rho <= 1) {
		return errors.Wrapf(ErrParam, "correlation %g", rho)
	}

	if channels < 1 {
		return errors.Wrapf(ErrParam, "channels %d", channels)
	}

	return nil
}

// correlatedSum is the distribution of the summed channel power given
// the common term t = |h0|^2.
func correlatedSum(rho, t float64, channels int) NonCentralChi2 {
	n := float64(channels)
	v := (1 - rho) / 2 //nolint:mnd

	return NonCentralChi2{
		DF:    2 * n, //nolint:mnd
		NC:    n * rho * t / v,
		Scale: v,
	}
}

// CorrelatedSumCDF is P(sum_i |h_i|^2 <= s | |h0|^2 = t). For rho = 1
// the sum is exactly channels*t.
func CorrelatedSumCDF(s, rho, t float64, channels int) float64 {
	if rho == 1 {
		if s >= float64(channels)*t {
			return 1
		}

		return 0
	}

	return correlatedSum(rho, t, channels).CDF(s)
}

// CorrelatedSumPDF is the density matching CorrelatedSumCDF, rho < 1.
func CorrelatedSumPDF(s, rho, t float64, channels int) float64 {
	return correlatedSum(rho, t, channels).Prob(s)
}

// fullyCorrelated is the outage probability at rho = 1, an exponential
// with mean channels.
func fullyCorrelated(s float64, channels int) float64 {
	return ExponentialCDF(1 / float64(channels))(s)
}

// OutageIntegration averages CorrelatedSumCDF over t ~ Exp(1) by
// adaptive quadrature, mapping [0, inf) onto [0, 1).
func OutageIntegration(s, rho float64, channels int, cfg *Config) (Estimate, error) {
	if err := checkCorrelation(rho, channels); err != nil {
		return Estimate{}, err
	}

	if rho == 1 {
		return Estimate{Value: fullyCorrelated(s, channels)}, nil
	}

	integrand := func(v float64) float64 {
		t := v / (1 - v)
		jac := 1 / ((1 - v) * (1 - v))

		return CorrelatedSumCDF(s, rho, t, channels) * math.Exp(-t) * jac
	}

	est, err := Integrate(integrand, 0, 1, cfg)
	if err != nil {
		return est, errors.Wrapf(err, "outage integration rho=%g", rho)
	}

	return est, nil
}

// OutageMonteCarlo averages CorrelatedSumCDF over sampled common terms.
func OutageMonteCarlo(s, rho float64, channels int, t []float64) (float64, error) {
	if err := checkCorrelation(rho, channels); err != nil {
		return math.NaN(), err
	}

	if len(t) == 0 {
		return math.NaN(), errors.Wrap(ErrParam, "no common term samples")
	}

	if rho == 1 {
		return fullyCorrelated(s, channels), nil
	}

	cdf := make([]float64, len(t))
	for i, tv := range t {
		cdf[i] = CorrelatedSumCDF(s, rho, tv, channels)
	}

	return stat.Mean(cdf, nil), nil
}

// SampleCommonTerm draws size values of |h0|^2 = x0^2 + y0^2 with
// x0, y0 ~ N(0, 1/2).
func SampleCommonTerm(size int, src rand.Source) ([]float64, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	norm := distuv.Normal{Mu: 0, Sigma: math.Sqrt(0.5), Src: src} //nolint:mnd
	out := make([]float64, size)

	for i := range out {
		x0, y0 := norm.Rand(), norm.Rand()
		out[i] = x0*x0 + y0*y0
	}

	return out, nil
}

// OutageSweep evaluates the correlation model over rhos by integration
// and by Monte Carlo over t. Columns: integration, mc, rho.
func OutageSweep(s float64, rhos []float64, channels int, t []float64, cfg *Config) (*Results, error) {
	integ := make([]float64, len(rhos))
	mc := make([]float64, len(rhos))

	for i, rho := range rhos {
		est, err := OutageIntegration(s, rho, channels, cfg)
		if err != nil {
			return nil, err
		}

		integ[i] = est.Value

		if mc[i], err = OutageMonteCarlo(s, rho, channels, t); err != nil {
			return nil, err
		}

		incr("outage_sweep_point")
		logger().La("rho", rho, "integration", integ[i], "mc", mc[i])
	}

	res := NewResults()
	res.Add("integration", integ)
	res.Add("mc", mc)
	res.Add("rho", append([]float64(nil), rhos...))

	return res, nil
}
