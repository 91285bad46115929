// -*- tab-width:2 -*-

package copula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

var unitPair = UniformPair{X: Support{0, 1}, Y: Support{0, 1}}

func TestCopulaLowerSumUniform(t *testing.T) {
	// sum threshold over [1, 2] at s = 1.5 is 0.5
	a := mat.NewDense(1, 4, []float64{0.8, 0.6, 0.3, 1})
	b := mat.NewDense(1, 4, []float64{0.9, 0.55, 0.9, 1})

	got, err := CopulaLowerSumUniform(a, b, unitPair, 1.5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.7, 0.5, 0.3, 1}, got.RawRowView(0), 1e-15)

	_, err = CopulaLowerSumUniform(a, mat.NewDense(2, 2, nil), unitPair, 1.5)
	require.ErrorIs(t, err, ErrShape)

	_, err = CopulaLowerSumUniform(a, b, UniformPair{X: Support{1, 1}, Y: Support{0, 1}}, 1.5)
	require.ErrorIs(t, err, ErrParam)
}

func TestSumThreshold(t *testing.T) {
	p := UniformPair{X: Support{0, 2}, Y: Support{1, 4}}
	// uniform over [min(0+4, 1+2), 2+4] = [3, 6]
	assert.Zero(t, p.sumThreshold(3))
	assert.InDelta(t, 1.0/3, p.sumThreshold(4), 1e-15)
	assert.Equal(t, 1.0, p.sumThreshold(7))
}

func TestJointPDFLowerSumUniform(t *testing.T) {
	p := UniformPair{X: Support{0, 2}, Y: Support{1, 4}}

	j, err := JointPDFLowerSumUniform(p, 4, DefaultGridSpec())
	require.NoError(t, err)

	r, c := j.PDF.Dims()
	assert.Equal(t, 50, r)
	assert.Equal(t, 50, c)
	assert.Equal(t, 4.0, j.X.At(0, 49))
	assert.Equal(t, 6.0, j.Y.At(49, 0))

	res := j.Results()
	assert.Equal(t, []string{"X", "Y", "pdf"}, res.Columns())
	assert.Equal(t, 2500, res.Rows())

	xs, ok := res.Get("X")
	require.True(t, ok)
	assert.Equal(t, 0.0, xs[0])
	assert.InDelta(t, 4.0/49, xs[1], 1e-15)

	// the density vanishes where the CDF is flat, beyond both supports
	assert.InDelta(t, 0, j.PDF.At(49, 49), 1e-12)

	for _, v := range j.PDF.RawMatrix().Data {
		assert.False(t, math.IsNaN(v))
	}

	_, err = JointPDFLowerSumUniform(p, 4, GridSpec{XMin: 0, XMax: 1, YMin: 0, YMax: 1, N: 1})
	require.ErrorIs(t, err, ErrParam)
}

func TestGradient(t *testing.T) {
	const h = 0.5

	m := mat.NewDense(4, 5, nil)
	q := mat.NewDense(4, 5, nil)

	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			m.Set(i, j, 2*float64(i)*h+3*float64(j)*h)
			q.Set(i, j, float64(i*i))
		}
	}

	for _, v := range Gradient(m, h, 0).RawMatrix().Data {
		assert.InDelta(t, 2, v, 1e-12)
	}

	for _, v := range Gradient(m, h, 1).RawMatrix().Data {
		assert.InDelta(t, 3, v, 1e-12)
	}

	// central inside, one-sided at the edges
	assert.Equal(t, []float64{1, 2, 4, 5}, mat.Col(nil, 0, Gradient(q, 1, 0)))
	assert.Equal(t, make([]float64, 4), mat.Col(nil, 2, Gradient(q, 1, 1)))
}

func TestMeshgrid(t *testing.T) {
	gx, gy := Meshgrid([]float64{1, 2, 3}, []float64{10, 20})

	r, c := gx.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{1, 2, 3}, gx.RawRowView(1))
	assert.Equal(t, []float64{20, 20, 20}, gy.RawRowView(1))
}

func TestUpperProductUniform(t *testing.T) {
	s := []float64{-1, 0, 0.05, 0.2, 0.5, 0.9, 2}

	got, err := UpperProductUniform(s, unitPair)
	require.NoError(t, err)
	assert.Zero(t, got[0])
	assert.Zero(t, got[1])

	for i, sv := range s[2:] {
		v := got[i+2]
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)

		if sv < 1 {
			// P(XY <= s) = s - s ln s for independent unit uniforms
			assert.GreaterOrEqual(t, v, sv-sv*math.Log(sv)-1e-12)
		}
	}

	assert.Equal(t, 1.0, got[len(got)-1])

	_, err = UpperProductUniform(s, UniformPair{X: Support{-1, 1}, Y: Support{0, 1}})
	require.ErrorIs(t, err, ErrParam)
}

// The bound holds for every coupling, so it has to dominate the
// empirical probability under samples of each copula.
func TestUpperProductUniformDominatesSamples(t *testing.T) {
	p := UniformPair{X: Support{1, 3}, Y: Support{0.5, 2}}
	s := []float64{0.8, 1.5, 2.5, 4}

	bound, err := UpperProductUniform(s, p)
	require.NoError(t, err)

	for _, k := range []Kind{Product, FrechetUpper, FrechetLower, Gaussian} {
		c, err := New(k, Params{Rho: -0.6})
		require.NoError(t, err)

		u, err := c.RVS(20000, rand.NewSource(11))
		require.NoError(t, err)

		r, _ := u.Dims()

		for i, sv := range s {
			hits := 0

			for n := 0; n < r; n++ {
				x := p.X.Min + p.X.Width()*u.At(n, 0)
				y := p.Y.Min + p.Y.Width()*u.At(n, 1)

				if x*y <= sv {
					hits++
				}
			}

			assert.LessOrEqual(t, float64(hits)/float64(r), bound[i]+0.02, "%s s=%g", k, sv)
		}
	}
}
