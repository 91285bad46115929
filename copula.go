// -*- tab-width:2 -*-

package copula

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Kind tags the copula models.
type Kind int

const (
	// Product is the independence copula.
	Product Kind = iota
	// FrechetUpper is the comonotonic Fréchet-Hoeffding upper bound.
	FrechetUpper
	// FrechetLower is the countermonotonic Fréchet-Hoeffding lower bound.
	FrechetLower
	// Gaussian is the normal copula.
	Gaussian
)

func (k Kind) String() string {
	switch k {
	case Product:
		return "product"
	case FrechetUpper:
		return "frechet-upper"
	case FrechetLower:
		return "frechet-lower"
	case Gaussian:
		return "gaussian"
	default:
		return "unknown"
	}
}

// Copula is a joint CDF over [0,1]^d with uniform marginals.
type Copula interface {
	Kind() Kind
	Dim() int
	// CDF evaluates the copula elementwise; u[i] holds the values of
	// the i-th marginal and all u[i] have the same length.
	CDF(u [][]float64) ([]float64, error)
	// RVS draws size samples, one per row of the returned matrix.
	RVS(size int, src rand.Source) (*mat.Dense, error)
}

// Params configures New. Dim defaults to 2. Rho or Cov set the
// dependence of a Gaussian copula, Cov wins when both are given.
type Params struct {
	Dim int
	Rho float64
	Cov *mat.SymDense
}

const defaultDim = 2

// New builds a copula of the given kind.
func New(kind Kind, p Params) (Copula, error) {
	dim := p.Dim
	if dim == 0 {
		dim = defaultDim
	}

	switch kind {
	case Product:
		return NewProduct(dim)
	case FrechetUpper:
		return NewFrechetUpper(dim)
	case FrechetLower:
		return NewFrechetLower(dim)
	case Gaussian:
		if p.Cov != nil {
			return NewGaussianCov(p.Cov)
		}

		if dim != defaultDim {
			return nil, errors.Wrapf(ErrUnsupported, "gaussian copula from a scalar correlation needs dim 2, got %d", dim)
		}

		return NewGaussian(p.Rho)
	default:
		return nil, errors.Wrapf(ErrUnsupported, "copula kind %d", int(kind))
	}
}

func checkDim(kind Kind, dim int) error {
	if dim < defaultDim {
		return errors.Wrapf(ErrUnsupported, "%s copula with dim %d", kind, dim)
	}

	return nil
}

// checkInput validates copula arguments and returns the number of
// points. The number of coordinates is deliberately not compared to
// the dimension.
func checkInput(u [][]float64) (int, error) {
	if len(u) == 0 {
		return 0, errors.Wrap(ErrShape, "no coordinates")
	}

	n := len(u[0])

	for i, row := range u {
		if len(row) != n {
			return 0, errors.Wrapf(ErrShape, "coordinate %d has %d values, want %d", i, len(row), n)
		}

		for _, v := range row {
			if !(v >= 0 && v <= 1) {
				return 0, errors.Wrapf(ErrOutOfRange, "got %g", v)
			}
		}
	}

	return n, nil
}

func checkSize(size int) error {
	if size < 1 {
		return errors.Wrapf(ErrParam, "sample size %d", size)
	}

	return nil
}

// CDFPoint evaluates c at a single point.
func CDFPoint(c Copula, u ...float64) (float64, error) {
	rows := make([][]float64, len(u))
	for i, v := range u {
		rows[i] = []float64{v}
	}

	out, err := c.CDF(rows)
	if err != nil {
		return math.NaN(), err
	}

	return out[0], nil
}

// CDFGrid evaluates c on meshgrid input: grids[i] holds the i-th
// marginal on a common grid. The grids are flattened for evaluation
// and the result has their shape.
func CDFGrid(c Copula, grids ...*mat.Dense) (*mat.Dense, error) {
	if len(grids) == 0 {
		return nil, errors.Wrap(ErrShape, "no grids")
	}

	r, cols := grids[0].Dims()
	rows := make([][]float64, len(grids))

	for k, g := range grids {
		gr, gc := g.Dims()
		if gr != r || gc != cols {
			return nil, errors.Wrapf(ErrShape, "grid %d is %dx%d, want %dx%d", k, gr, gc, r, cols)
		}

		rows[k] = ravel(g)
	}

	out, err := c.CDF(rows)
	if err != nil {
		return nil, err
	}

	return mat.NewDense(r, cols, out), nil
}

// ravel flattens m in row-major order.
func ravel(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}

	return out
}

func unitUniform(src rand.Source) distuv.Uniform {
	return distuv.Uniform{Min: 0, Max: 1, Src: src}
}

func markDraw(kind Kind, size int) {
	incrSuffix("copula_rvs", kind.String())
	logger().La("drawing", size, "samples from", kind.String(), "copula")
}
