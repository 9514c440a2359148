// Package glm implements maximum likelihood estimation for binary-response
// generalized linear models.
//
// Logit fits P(y=1|x) = 1/(1+exp(-x'b)) by Newton-Raphson on the
// log-likelihood, reproducing the estimates and inference statistics of
// statsmodels' Logit: coefficient standard errors from the inverse observed
// information matrix, z statistics with two-sided normal p-values, and the
// usual likelihood-based selection measures (McFadden pseudo R-squared,
// AIC, BIC).
//
// Fitting is all-or-nothing. A fit that fails to converge, meets a singular
// information matrix, or produces non-finite coefficients returns an error
// and leaves no partial results behind.
package glm

import (
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/ogaki-lab/econgo/core/model"
	"github.com/ogaki-lab/econgo/pkg/errors"
)

// Default Newton-Raphson stopping rule, matching statsmodels' newton solver.
const (
	DefaultMaxIter = 35
	DefaultTol     = 1e-8
)

// Logit is a binary logistic regression model estimated by maximum
// likelihood. The design matrix is taken as given: callers wanting an
// intercept include a constant column (see AddConstant).
type Logit struct {
	model.BaseEstimator

	y     *mat.VecDense
	x     *mat.Dense
	names []string

	// display receives the optimization summary that statsmodels prints
	// with disp=1. Swap it via Suppress for quiet fits.
	display io.Writer

	results *Results
}

// Option configures a Logit model.
type Option func(*Logit)

// WithDisplay redirects the optimization summary. The default is os.Stdout.
func WithDisplay(w io.Writer) Option {
	return func(m *Logit) { m.display = w }
}

// NewLogit validates the response and design matrix and returns an unfitted
// model. The response must contain only 0 and 1. names labels the design
// columns; nil generates x0..x(k-1).
func NewLogit(y *mat.VecDense, X mat.Matrix, names []string, opts ...Option) (*Logit, error) {
	if y == nil || X == nil {
		return nil, errors.Wrap(errors.ErrEmptyData, "glm.NewLogit: nil input")
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "glm.NewLogit: empty design matrix")
	}
	if y.Len() != r {
		return nil, errors.NewDimensionError("glm.NewLogit", r, y.Len(), 0)
	}
	if r < c {
		return nil, errors.NewValueError("glm.NewLogit", "fewer observations than parameters")
	}
	for i := 0; i < y.Len(); i++ {
		if v := y.AtVec(i); v != 0 && v != 1 {
			return nil, errors.NewValueError("glm.NewLogit", "dependent variable must be binary (0 or 1)")
		}
	}
	if err := errors.CheckMatrix("glm.NewLogit", X, r, c, 0); err != nil {
		return nil, err
	}
	if names == nil {
		names = make([]string, c)
		for j := range names {
			names[j] = fmt.Sprintf("x%d", j)
		}
	}
	if len(names) != c {
		return nil, errors.NewDimensionError("glm.NewLogit", c, len(names), 1)
	}

	x := mat.NewDense(r, c, nil)
	x.Copy(X)
	yc := mat.NewVecDense(y.Len(), nil)
	yc.CopyVec(y)
	m := &Logit{
		y:       yc,
		x:       x,
		names:   append([]string(nil), names...),
		display: os.Stdout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Suppress silences the optimization summary until the returned restore
// function runs. It guards the display writer only; nothing else changes.
func (m *Logit) Suppress() (restore func()) {
	prev := m.display
	m.display = io.Discard
	return func() { m.display = prev }
}

// Names returns a copy of the design column labels.
func (m *Logit) Names() []string { return append([]string(nil), m.names...) }

// Results returns the estimation results, or an error when the model has
// not been fitted.
func (m *Logit) Results() (*Results, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("Logit", "Results")
	}
	return m.results, nil
}

// FitOption configures a single Fit call.
type FitOption func(*fitConfig)

type fitConfig struct {
	maxIter int
	tol     float64
}

// WithMaxIter caps the Newton-Raphson iteration count.
func WithMaxIter(n int) FitOption {
	return func(c *fitConfig) { c.maxIter = n }
}

// WithTol sets the convergence tolerance on the coefficient update.
func WithTol(tol float64) FitOption {
	return func(c *fitConfig) { c.tol = tol }
}

// Fit estimates the coefficients by Newton-Raphson starting from zero.
// Convergence is declared when every coefficient update is at most tol in
// absolute value. Exhausting maxIter without converging returns a
// *ConvergenceError and stores nothing.
func (m *Logit) Fit(opts ...FitOption) (res *Results, err error) {
	defer errors.Recover(&err, "glm.Logit.Fit")

	cfg := fitConfig{maxIter: DefaultMaxIter, tol: DefaultTol}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxIter <= 0 {
		return nil, errors.NewValueError("Logit.Fit", "maxiter must be positive")
	}
	if cfg.tol <= 0 {
		return nil, errors.NewValueError("Logit.Fit", "tol must be positive")
	}

	n, k := m.x.Dims()
	beta := make([]float64, k)
	p := make([]float64, n)
	delta := mat.NewVecDense(k, nil)
	score := mat.NewVecDense(k, nil)
	info := mat.NewSymDense(k, nil)
	var chol mat.Cholesky

	converged := false
	iterations := 0
	lastChange := math.Inf(1)

	for iter := 1; iter <= cfg.maxIter; iter++ {
		// p_i = sigmoid(x_i'b), score = X'(y-p), info = X'WX with
		// W = diag(p(1-p)).
		for i := 0; i < n; i++ {
			p[i] = sigmoid(rowDot(m.x, i, beta))
		}
		for a := 0; a < k; a++ {
			g := 0.0
			for i := 0; i < n; i++ {
				g += m.x.At(i, a) * (m.y.AtVec(i) - p[i])
			}
			score.SetVec(a, g)
			for b := a; b < k; b++ {
				h := 0.0
				for i := 0; i < n; i++ {
					h += p[i] * (1 - p[i]) * m.x.At(i, a) * m.x.At(i, b)
				}
				info.SetSym(a, b, h)
			}
		}

		if ok := chol.Factorize(info); !ok {
			return nil, errors.NewModelError("Logit.Fit", "singular information matrix", errors.ErrSingularMatrix)
		}
		if err := chol.SolveVecTo(delta, score); err != nil {
			return nil, errors.NewModelError("Logit.Fit", "information matrix solve failed", err)
		}

		floats.Add(beta, delta.RawVector().Data)
		if err := errors.CheckNumericalStability("Logit.Fit", beta, iter); err != nil {
			return nil, err
		}

		lastChange = floats.Norm(delta.RawVector().Data, math.Inf(1))
		iterations = iter
		if lastChange <= cfg.tol {
			converged = true
			break
		}
	}

	if !converged {
		fmt.Fprintf(m.display, "Warning: Maximum number of iterations has been exceeded.\n")
		return nil, errors.NewConvergenceError("Newton-Raphson", iterations, cfg.tol, lastChange)
	}

	// Covariance of the estimates is the inverse information at the optimum.
	for i := 0; i < n; i++ {
		p[i] = sigmoid(rowDot(m.x, i, beta))
	}
	for a := 0; a < k; a++ {
		for b := a; b < k; b++ {
			h := 0.0
			for i := 0; i < n; i++ {
				h += p[i] * (1 - p[i]) * m.x.At(i, a) * m.x.At(i, b)
			}
			info.SetSym(a, b, h)
		}
	}
	if ok := chol.Factorize(info); !ok {
		return nil, errors.NewModelError("Logit.Fit", "singular information matrix", errors.ErrSingularMatrix)
	}
	cov := mat.NewSymDense(k, nil)
	if err := chol.InverseTo(cov); err != nil {
		return nil, errors.NewModelError("Logit.Fit", "information matrix inversion", err)
	}

	res = newResults(m, beta, cov, p, iterations)
	fmt.Fprintf(m.display, "Optimization terminated successfully.\n         Current function value: %f\n         Iterations %d\n",
		-res.LLF/float64(n), iterations)

	m.results = res
	m.SetFitted()
	return res, nil
}

// AddConstant returns a copy of X with a leading column of ones, the
// intercept convention used throughout this module.
func AddConstant(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()
	out := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		out.Set(i, 0, 1)
		for j := 0; j < c; j++ {
			out.Set(i, j+1, X.At(i, j))
		}
	}
	return out
}

func rowDot(x *mat.Dense, i int, beta []float64) float64 {
	s := 0.0
	for j, b := range beta {
		s += x.At(i, j) * b
	}
	return s
}

// sigmoid is the numerically stable logistic function.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
