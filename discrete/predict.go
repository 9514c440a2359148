package discrete

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ogaki-lab/econgo/glm"
	"github.com/ogaki-lab/econgo/pkg/errors"
)

// Predict returns P(y=1|x) for new observations, one column per regressor
// in specification order. The constant is added internally.
//
// With withinSample set, any row where a regressor falls outside the
// closed range seen in the estimation sample predicts NaN instead of
// extrapolating. Rows containing NaN predict NaN either way; prediction
// never fails on the values themselves, only on the shape.
func (m *Logit) Predict(X mat.Matrix, withinSample bool) ([]float64, error) {
	if X == nil {
		return nil, errors.Wrap(errors.ErrEmptyData, "Logit.Predict: nil input")
	}
	r, c := X.Dims()
	k := len(m.spec.Regressors)
	if c != k {
		return nil, errors.NewInputShapeError("prediction", []int{r, k}, []int{r, c})
	}
	if r == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Logit.Predict: no observations")
	}

	// One canonical dense copy, shared by the design build and the range
	// masking below.
	xd := mat.NewDense(r, c, nil)
	xd.Copy(X)

	probs, err := m.raw.Predict(glm.AddConstant(xd))
	if err != nil {
		return nil, err
	}

	if withinSample {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v := xd.At(i, j)
				if !(v >= m.xMin[j] && v <= m.xMax[j]) {
					probs[i] = math.NaN()
					break
				}
			}
		}
	}
	return probs, nil
}

// PredictOne is Predict for a single observation given as a regressor
// value slice.
func (m *Logit) PredictOne(x []float64, withinSample bool) (float64, error) {
	k := len(m.spec.Regressors)
	if len(x) != k {
		return math.NaN(), errors.NewInputShapeError("prediction", []int{1, k}, []int{1, len(x)})
	}
	probs, err := m.Predict(mat.NewDense(1, k, append([]float64(nil), x...)), withinSample)
	if err != nil {
		return math.NaN(), err
	}
	return probs[0], nil
}
