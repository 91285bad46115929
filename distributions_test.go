// -*- tab-width:2 -*-

package copula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestInvCDFRoundTrip(t *testing.T) {
	for _, lam := range []float64{0.1, 1, 2.5, 40} {
		for _, x := range []float64{0, 1e-6, 0.3, 1, 7.5} {
			// beyond this 1-u keeps too few digits of exp(-lam*x)
			if lam*x > 5 {
				continue
			}

			u := 1 - math.Exp(-lam*x)
			assert.InDelta(t, x, InvCDF(u, lam), 1e-9, "lam=%g x=%g", lam, x)
		}
	}
}

func TestInvCDFMatchesMarginal(t *testing.T) {
	src := rand.NewSource(7)
	uni := distuv.Uniform{Min: 0, Max: 1, Src: src}

	for _, lam := range []float64{0.5, 3} {
		cdf := ExponentialCDF(lam)
		for i := 0; i < 1000; i++ {
			u := uni.Rand()
			assert.InDelta(t, u, cdf(InvCDF(u, lam)), 1e-12)
		}
	}

	assert.InDeltaSlice(t, []float64{0, 1}, InvCDFEach([]float64{0, 1 - math.Exp(-2)}, 2), 1e-12)
}

func TestUniformCDF(t *testing.T) {
	f := UniformCDF(1, 5)

	assert.Zero(t, f(0))
	assert.Zero(t, f(1))
	assert.InDelta(t, 0.25, f(2), 1e-15)
	assert.Equal(t, 1.0, f(5))
	assert.Equal(t, 1.0, f(math.Inf(1)))

	sup := Support{Min: 2, Max: 5}
	assert.Equal(t, 3.0, sup.Width())
	assert.InDelta(t, 1.0/3, sup.CDF()(3), 1e-15)
	assert.Error(t, Support{Min: 3, Max: 3}.validate("x"))
	assert.NoError(t, sup.validate("x"))
}
