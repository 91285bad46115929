// -*- tab-width:2 -*-

package copula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

func gamma2CDF(s float64) float64 {
	return 1 - math.Exp(-s)*(1+s)
}

func TestOutageThreshold(t *testing.T) {
	assert.InDelta(t, 0.1, OutageThreshold(1, 10), 1e-15)
	assert.InDelta(t, 3, OutageThreshold(2, 1), 1e-14)
}

func TestOutageBounds(t *testing.T) {
	assert.Zero(t, OutageLowerBound(0.1, 1, 1))
	assert.InDelta(t, 0.0952, OutageUpperBound(0.1, 1, 1), 1e-4)

	lo := OutageLowerBound(3, 1, 1)
	up := OutageUpperBound(3, 1, 1)
	assert.InDelta(t, 0.554, lo, 1e-3)
	assert.InDelta(t, 0.950, up, 1e-3)

	// the upper bound follows the marginal with the larger mean
	assert.Equal(t, OutageUpperBound(2, 0.5, 3), ExponentialCDF(0.5)(2))
}

func TestCorrelatedSumIndependent(t *testing.T) {
	for _, tv := range []float64{0, 0.5, 4} {
		for _, s := range []float64{0.2, 1, 3} {
			assert.InDelta(t, gamma2CDF(s), CorrelatedSumCDF(s, 0, tv, 2), 1e-10)
		}
	}

	est, err := OutageIntegration(3, 0, 2, nil)
	require.NoError(t, err)
	assert.InDelta(t, gamma2CDF(3), est.Value, 1e-7)
}

func TestCorrelatedSumFullyCorrelated(t *testing.T) {
	assert.Equal(t, 1.0, CorrelatedSumCDF(2, 1, 1, 2))
	assert.Zero(t, CorrelatedSumCDF(1.9, 1, 1, 2))

	est, err := OutageIntegration(3, 1, 2, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1-math.Exp(-1.5), est.Value, 1e-15)
}

func TestCorrelatedSumPDF(t *testing.T) {
	const rho, tv = 0.4, 0.8

	est, err := Integrate(func(x float64) float64 { return CorrelatedSumPDF(x, rho, tv, 2) }, 0, 2.5, nil)
	require.NoError(t, err)
	assert.InDelta(t, CorrelatedSumCDF(2.5, rho, tv, 2), est.Value, 1e-7)
}

// Every joint law with exponential marginals lies within the copula
// bounds, the correlation model included.
func TestOutageModelWithinBounds(t *testing.T) {
	for _, s := range []float64{0.1, 0.5, 1, 3, 6} {
		lo := OutageLowerBound(s, 1, 1)
		up := OutageUpperBound(s, 1, 1)

		for _, rho := range []float64{0, 0.3, 0.7, 0.95, 1} {
			est, err := OutageIntegration(s, rho, 2, nil)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, est.Value, lo-1e-7, "s=%g rho=%g", s, rho)
			assert.LessOrEqual(t, est.Value, up+1e-7, "s=%g rho=%g", s, rho)
		}
	}
}

func TestOutageSweep(t *testing.T) {
	samples, err := SampleCommonTerm(20000, rand.NewSource(5))
	require.NoError(t, err)
	assert.InDelta(t, 1, stat.Mean(samples, nil), 0.03)

	rhos := []float64{0, 0.5, 0.9, 1}

	res, err := OutageSweep(1.5, rhos, 2, samples, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"integration", "mc", "rho"}, res.Columns())
	assert.Equal(t, len(rhos), res.Rows())

	integ, _ := res.Get("integration")
	mc, _ := res.Get("mc")

	for i := range rhos {
		assert.InDelta(t, integ[i], mc[i], 0.02, "rho=%g", rhos[i])
	}

	_, err = OutageSweep(1.5, []float64{1.2}, 2, samples, nil)
	require.ErrorIs(t, err, ErrParam)

	_, err = OutageMonteCarlo(1.5, 0.5, 2, nil)
	require.ErrorIs(t, err, ErrParam)

	_, err = OutageIntegration(1.5, 0.5, 0, nil)
	require.ErrorIs(t, err, ErrParam)
}
