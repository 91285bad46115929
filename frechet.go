// -*- tab-width:2 -*-

package copula

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// FrechetUpperCopula is the comonotonic bound, C(u) = min_i u_i.
type FrechetUpperCopula struct {
	dim int
}

// FrechetLowerCopula is the countermonotonic bound,
// C(u) = max(u_1 + u_2 - 1, 0). It only exists for two dimensions.
type FrechetLowerCopula struct {
	dim int
}

var (
	_ Copula = (*FrechetUpperCopula)(nil)
	_ Copula = (*FrechetLowerCopula)(nil)
)

// NewFrechetUpper returns the upper Fréchet-Hoeffding bound.
func NewFrechetUpper(dim int) (*FrechetUpperCopula, error) {
	if err := checkDim(FrechetUpper, dim); err != nil {
		return nil, err
	}

	return &FrechetUpperCopula{dim: dim}, nil
}

// Kind is FrechetUpper.
func (c *FrechetUpperCopula) Kind() Kind { return FrechetUpper }

// Dim returns the dimension.
func (c *FrechetUpperCopula) Dim() int { return c.dim }

// CDF is the minimum over the coordinates.
func (c *FrechetUpperCopula) CDF(u [][]float64) ([]float64, error) {
	n, err := checkInput(u)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for j := range out {
		out[j] = 1
		for _, row := range u {
			out[j] = math.Min(out[j], row[j])
		}
	}

	return out, nil
}

// RVS draws one uniform per sample and repeats it in every column.
func (c *FrechetUpperCopula) RVS(size int, src rand.Source) (*mat.Dense, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	markDraw(FrechetUpper, size)

	uni := unitUniform(src)
	out := mat.NewDense(size, c.dim, nil)

	for i := 0; i < size; i++ {
		v := uni.Rand()
		for j := 0; j < c.dim; j++ {
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// NewFrechetLower returns the lower Fréchet-Hoeffding bound, which is
// only a copula for dim 2.
func NewFrechetLower(dim int) (*FrechetLowerCopula, error) {
	if dim != defaultDim {
		return nil, errors.Wrapf(ErrUnsupported, "%s copula is only supported for 2 dimensions, got %d", FrechetLower, dim)
	}

	return &FrechetLowerCopula{dim: dim}, nil
}

// Kind is FrechetLower.
func (c *FrechetLowerCopula) Kind() Kind { return FrechetLower }

// Dim returns the dimension.
func (c *FrechetLowerCopula) Dim() int { return c.dim }

// CDF is max(1 - d + sum_i u_i, 0).
func (c *FrechetLowerCopula) CDF(u [][]float64) ([]float64, error) {
	n, err := checkInput(u)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for j := range out {
		sum := 0.0
		for _, row := range u {
			sum += row[j]
		}

		out[j] = math.Max(1-float64(c.dim)+sum, 0)
	}

	return out, nil
}

// RVS draws u and pairs it with 1-u.
func (c *FrechetLowerCopula) RVS(size int, src rand.Source) (*mat.Dense, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	markDraw(FrechetLower, size)

	uni := unitUniform(src)
	out := mat.NewDense(size, c.dim, nil)

	for i := 0; i < size; i++ {
		v := uni.Rand()
		out.Set(i, 0, v)
		out.Set(i, 1, 1-v)
	}

	return out, nil
}
