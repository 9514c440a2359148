package glm

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ogaki-lab/econgo/pkg/errors"
)

// Results holds the output of a Logit fit with the same conventions as
// statsmodels: TValues are z statistics (UseT is false for maximum
// likelihood), PValues are two-sided normal tail probabilities, and
// FittedValues is the linear predictor Xb, not the response probability.
type Results struct {
	// Names labels the coefficients in design-column order.
	Names []string

	Params  []float64 // coefficient estimates
	BSE     []float64 // standard errors, sqrt of the inverse information diagonal
	TValues []float64 // params / bse
	PValues []float64 // two-sided tail probabilities for TValues

	LLF      float64 // log-likelihood at the optimum
	LLNull   float64 // log-likelihood of the intercept-only model
	PseudoR2 float64 // McFadden's 1 - LLF/LLNull
	AIC      float64
	BIC      float64

	DFModel float64
	DFResid float64
	NObs    int

	// Iterations is the Newton-Raphson step count at convergence.
	Iterations int

	// FittedValues is the in-sample linear predictor Xb.
	FittedValues []float64

	// ResidPearson is (y - p) / sqrt(p(1-p)) for the training sample.
	ResidPearson []float64

	// UseT selects Student's t inference for confidence intervals and
	// test labels. Maximum likelihood results leave it false.
	UseT bool
}

func newResults(m *Logit, beta []float64, cov *mat.SymDense, p []float64, iterations int) *Results {
	n, k := m.x.Dims()

	bse := make([]float64, k)
	tvalues := make([]float64, k)
	pvalues := make([]float64, k)
	for j := 0; j < k; j++ {
		bse[j] = math.Sqrt(cov.At(j, j))
		tvalues[j] = beta[j] / bse[j]
		pvalues[j] = 2 * distuv.UnitNormal.Survival(math.Abs(tvalues[j]))
	}

	llf := 0.0
	ones := 0.0
	for i := 0; i < n; i++ {
		if m.y.AtVec(i) == 1 {
			llf += errors.StabilizeLog(p[i])
			ones++
		} else {
			llf += errors.StabilizeLog(1 - p[i])
		}
	}
	// Intercept-only likelihood has the closed form n1*ln(ybar)+n0*ln(1-ybar).
	ybar := ones / float64(n)
	llnull := ones*errors.StabilizeLog(ybar) + (float64(n)-ones)*errors.StabilizeLog(1-ybar)

	fitted := make([]float64, n)
	resid := make([]float64, n)
	for i := 0; i < n; i++ {
		fitted[i] = rowDot(m.x, i, beta)
		resid[i] = (m.y.AtVec(i) - p[i]) / math.Sqrt(p[i]*(1-p[i]))
	}

	return &Results{
		Names:        m.Names(),
		Params:       append([]float64(nil), beta...),
		BSE:          bse,
		TValues:      tvalues,
		PValues:      pvalues,
		LLF:          llf,
		LLNull:       llnull,
		PseudoR2:     1 - llf/llnull,
		AIC:          -2*llf + 2*float64(k),
		BIC:          -2*llf + float64(k)*math.Log(float64(n)),
		DFModel:      float64(k - 1),
		DFResid:      float64(n - k),
		NObs:         n,
		Iterations:   iterations,
		FittedValues: fitted,
		ResidPearson: resid,
	}
}

// Clone returns a deep copy, so callers can hand results out without
// exposing the fitted state to mutation.
func (r *Results) Clone() *Results {
	out := *r
	out.Names = append([]string(nil), r.Names...)
	out.Params = append([]float64(nil), r.Params...)
	out.BSE = append([]float64(nil), r.BSE...)
	out.TValues = append([]float64(nil), r.TValues...)
	out.PValues = append([]float64(nil), r.PValues...)
	out.FittedValues = append([]float64(nil), r.FittedValues...)
	out.ResidPearson = append([]float64(nil), r.ResidPearson...)
	return &out
}

// Predict returns response probabilities for new observations. The matrix
// must have one column per fitted coefficient; rows containing NaN yield
// NaN rather than an error.
func (r *Results) Predict(X mat.Matrix) ([]float64, error) {
	if X == nil {
		return nil, errors.Wrap(errors.ErrEmptyData, "Results.Predict: nil input")
	}
	rows, cols := X.Dims()
	if cols != len(r.Params) {
		return nil, errors.NewInputShapeError("prediction", []int{rows, len(r.Params)}, []int{rows, cols})
	}
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		s := 0.0
		for j := 0; j < cols; j++ {
			s += X.At(i, j) * r.Params[j]
		}
		out[i] = sigmoid(s)
	}
	return out, nil
}

// ConfInt returns the (1-alpha) confidence interval for each coefficient,
// normal-based unless UseT is set.
func (r *Results) ConfInt(alpha float64) ([][2]float64, error) {
	if math.IsNaN(alpha) {
		return nil, errors.NewValidationError("alpha", "must be a real number", alpha)
	}
	if alpha <= 0 || alpha >= 1 {
		return nil, errors.NewValueError("Results.ConfInt", "alpha must be in (0, 1)")
	}
	q := distuv.UnitNormal.Quantile(1 - alpha/2)
	if r.UseT {
		q = distuv.StudentsT{Mu: 0, Sigma: 1, Nu: r.DFResid}.Quantile(1 - alpha/2)
	}
	ci := make([][2]float64, len(r.Params))
	for j := range r.Params {
		ci[j] = [2]float64{r.Params[j] - q*r.BSE[j], r.Params[j] + q*r.BSE[j]}
	}
	return ci, nil
}
