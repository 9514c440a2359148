package discrete

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/ogaki-lab/econgo/pkg/errors"
)

func TestPredict_ReferenceProbabilities(t *testing.T) {
	m := engineModel(t)

	X := mat.NewDense(2, 2, []float64{
		2.1, 180, // inside the estimation sample's ranges
		3.0, 250,
	})
	probs, err := m.Predict(X, true)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	const tol = 1e-6
	want := []float64{0.2361081258, 0.1070935235}
	for i, w := range want {
		if math.Abs(probs[i]-w) > tol {
			t.Errorf("probs[%d] = %.10f, want %.10f", i, probs[i], w)
		}
	}
}

func TestPredict_WithinSampleMasksExtrapolation(t *testing.T) {
	m := engineModel(t)

	// Row 0 is far outside the sample, row 1 is inside it.
	X := mat.NewDense(2, 2, []float64{
		-1e6, -1e6,
		2.1, 180,
	})

	masked, err := m.Predict(X, true)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if !math.IsNaN(masked[0]) {
		t.Errorf("out-of-sample row predicted %v, want NaN", masked[0])
	}
	if math.IsNaN(masked[1]) {
		t.Error("in-sample row was masked")
	}

	// Without the guard the same row extrapolates to a probability.
	free, err := m.Predict(X, false)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if math.IsNaN(free[0]) || free[0] > 1e-12 {
		t.Errorf("unguarded extrapolation = %v, want ~0", free[0])
	}
	if math.Abs(free[1]-masked[1]) > 1e-12 {
		t.Errorf("guard changed an in-sample prediction: %v vs %v", free[1], masked[1])
	}
}

func TestPredict_SampleBoundsAreInclusive(t *testing.T) {
	m := engineModel(t)

	// wt spans [1.513, 5.424] and disp spans [71.1, 472.0] in the sample.
	X := mat.NewDense(4, 2, []float64{
		1.513, 100, // wt exactly at the minimum
		5.424, 472.0, // both exactly at the maximum
		1.512, 100, // wt a hair below the minimum
		2.1, 472.5, // disp above the maximum
	})
	probs, err := m.Predict(X, true)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	if math.IsNaN(probs[0]) || math.IsNaN(probs[1]) {
		t.Errorf("boundary rows masked: %v", probs[:2])
	}
	if !math.IsNaN(probs[2]) {
		t.Errorf("row below the wt minimum predicted %v, want NaN", probs[2])
	}
	if !math.IsNaN(probs[3]) {
		t.Errorf("row above the disp maximum predicted %v, want NaN", probs[3])
	}
}

func TestPredict_NaNRegressorPropagates(t *testing.T) {
	m := engineModel(t)

	X := mat.NewDense(1, 2, []float64{math.NaN(), 180})
	for _, within := range []bool{false, true} {
		probs, err := m.Predict(X, within)
		if err != nil {
			t.Fatalf("Predict(withinSample=%v) failed: %v", within, err)
		}
		if !math.IsNaN(probs[0]) {
			t.Errorf("Predict(withinSample=%v) = %v for NaN input, want NaN", within, probs[0])
		}
	}
}

func TestPredict_ShapeValidation(t *testing.T) {
	m := engineModel(t)

	if _, err := m.Predict(nil, false); err == nil {
		t.Error("nil input accepted")
	} else if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("nil input: wrong error: %v", err)
	}

	if _, err := m.Predict(mat.NewDense(1, 3, nil), false); err == nil {
		t.Error("3-column input accepted by a 2-regressor model")
	} else {
		var shapeErr *errors.InputShapeError
		if !errors.As(err, &shapeErr) {
			t.Errorf("wrong error type: %v", err)
		}
	}

	if _, err := m.Predict(zeroRowMatrix{cols: 2}, false); err == nil {
		t.Error("empty input accepted")
	} else if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("empty input: wrong error: %v", err)
	}
}

func TestPredictOne(t *testing.T) {
	m := engineModel(t)

	p, err := m.PredictOne([]float64{2.1, 180}, true)
	if err != nil {
		t.Fatalf("PredictOne failed: %v", err)
	}
	if math.Abs(p-0.2361081258) > 1e-6 {
		t.Errorf("PredictOne = %.10f, want 0.2361081258", p)
	}

	if p, err := m.PredictOne([]float64{-1e6, -1e6}, true); err != nil {
		t.Fatalf("PredictOne failed: %v", err)
	} else if !math.IsNaN(p) {
		t.Errorf("out-of-sample observation predicted %v, want NaN", p)
	}

	if _, err := m.PredictOne([]float64{2.1}, false); err == nil {
		t.Error("short observation accepted")
	} else {
		var shapeErr *errors.InputShapeError
		if !errors.As(err, &shapeErr) {
			t.Errorf("wrong error type: %v", err)
		}
	}
}

// zeroRowMatrix stands in for an empty input; gonum cannot allocate a
// Dense with zero rows.
type zeroRowMatrix struct{ cols int }

func (z zeroRowMatrix) Dims() (int, int)    { return 0, z.cols }
func (z zeroRowMatrix) At(i, j int) float64 { panic("empty matrix") }
func (z zeroRowMatrix) T() mat.Matrix       { return mat.Transpose{Matrix: z} }
