// -*- tab-width:2 -*-

package copula

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// ProductCopula is the independence copula, C(u) = u_1 * ... * u_d.
type ProductCopula struct {
	dim int
}

var _ Copula = (*ProductCopula)(nil)

// NewProduct returns the independence copula of dimension dim.
func NewProduct(dim int) (*ProductCopula, error) {
	if err := checkDim(Product, dim); err != nil {
		return nil, err
	}

	return &ProductCopula{dim: dim}, nil
}

// Kind is Product.
func (c *ProductCopula) Kind() Kind { return Product }

// Dim returns the dimension.
func (c *ProductCopula) Dim() int { return c.dim }

// CDF is the product over the coordinates.
func (c *ProductCopula) CDF(u [][]float64) ([]float64, error) {
	n, err := checkInput(u)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for j := range out {
		out[j] = 1
		for _, row := range u {
			out[j] *= row[j]
		}
	}

	return out, nil
}

// RVS draws independent uniforms for every coordinate.
func (c *ProductCopula) RVS(size int, src rand.Source) (*mat.Dense, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	markDraw(Product, size)

	uni := unitUniform(src)
	out := mat.NewDense(size, c.dim, nil)

	for i := 0; i < size; i++ {
		for j := 0; j < c.dim; j++ {
			out.Set(i, j, uni.Rand())
		}
	}

	return out, nil
}
