// -*- tab-width:2 -*-

package copula

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianCopula is the copula of a multivariate normal distribution.
type GaussianCopula struct {
	dim int
	cov *mat.SymDense
}

var _ Copula = (*GaussianCopula)(nil)

// NewGaussian returns a bivariate Gaussian copula with correlation rho.
// rho = ±1 is allowed and gives the singular limits.
func NewGaussian(rho float64) (*GaussianCopula, error) {
	if !(math.Abs(rho) <= 1) {
		return nil, errors.Wrapf(ErrParam, "correlation %g", rho)
	}

	cov := mat.NewSymDense(defaultDim, []float64{1, rho, rho, 1})

	return &GaussianCopula{dim: defaultDim, cov: cov}, nil
}

// NewGaussianCov returns a Gaussian copula with a full covariance
// matrix. The matrix is copied.
func NewGaussianCov(cov *mat.SymDense) (*GaussianCopula, error) {
	if cov == nil {
		return nil, errors.Wrap(ErrParam, "nil covariance")
	}

	dim := cov.SymmetricDim()
	if err := checkDim(Gaussian, dim); err != nil {
		return nil, err
	}

	for i := 0; i < dim; i++ {
		if !(cov.At(i, i) > 0) {
			return nil, errors.Wrapf(ErrParam, "variance %d is %g", i, cov.At(i, i))
		}
	}

	c := mat.NewSymDense(dim, nil)
	c.CopySym(cov)

	return &GaussianCopula{dim: dim, cov: c}, nil
}

// Kind is Gaussian.
func (c *GaussianCopula) Kind() Kind { return Gaussian }

// Dim returns the dimension.
func (c *GaussianCopula) Dim() int { return c.dim }

// Rho returns the correlation between the first two coordinates.
func (c *GaussianCopula) Rho() float64 {
	return c.cov.At(0, 1) / math.Sqrt(c.cov.At(0, 0)*c.cov.At(1, 1))
}

// CDF maps each marginal through the standard normal quantile and
// evaluates the bivariate normal CDF with the copula's covariance.
func (c *GaussianCopula) CDF(u [][]float64) ([]float64, error) {
	n, err := checkInput(u)
	if err != nil {
		return nil, err
	}

	if c.dim != defaultDim {
		return nil, errors.Wrapf(ErrUnsupported, "gaussian copula cdf for dim %d", c.dim)
	}

	if len(u) != defaultDim {
		return nil, errors.Wrapf(ErrShape, "gaussian copula cdf needs 2 coordinates, got %d", len(u))
	}

	sx := math.Sqrt(c.cov.At(0, 0))
	sy := math.Sqrt(c.cov.At(1, 1))
	rho := c.Rho()

	out := make([]float64, n)
	for j := range out {
		h := distuv.UnitNormal.Quantile(u[0][j]) / sx
		k := distuv.UnitNormal.Quantile(u[1][j]) / sy
		out[j] = bivariateNormalCDF(h, k, rho)
	}

	return out, nil
}

// RVS draws correlated normal vectors and maps every coordinate
// through the standard normal CDF.
func (c *GaussianCopula) RVS(size int, src rand.Source) (*mat.Dense, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	var ed mat.EigenSym
	if ok := ed.Factorize(c.cov, true); !ok {
		return nil, errors.Wrap(ErrParam, "covariance eigendecomposition failed")
	}

	markDraw(Gaussian, size)

	cov := distmv.NewPositivePartEigenSym(&ed)
	mean := make([]float64, c.dim)
	row := make([]float64, c.dim)
	out := mat.NewDense(size, c.dim, nil)

	for i := 0; i < size; i++ {
		distmv.NormalRandCov(row, mean, cov, src)

		for j, v := range row {
			out.Set(i, j, distuv.UnitNormal.CDF(v))
		}
	}

	return out, nil
}
