package discrete

import (
	"math"
	"testing"

	"github.com/ogaki-lab/econgo/pkg/errors"
)

func TestSignificantRegressors_Filters(t *testing.T) {
	m := engineModel(t)

	// p-values: wt 0.275, disp 0.025.
	tests := []struct {
		name  string
		alpha float64
		want  []string
	}{
		{"five percent", 0.05, []string{"disp"}},
		{"ten percent", 0.1, []string{"disp"}},
		{"one percent", 0.01, nil},
		{"just below disp p-value", 0.025, nil},
		{"just above disp p-value", 0.026, []string{"disp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.SignificantRegressors(tt.alpha)
			if err != nil {
				t.Fatalf("SignificantRegressors(%v) failed: %v", tt.alpha, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("SignificantRegressors(%v) = %v, want %v", tt.alpha, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("SignificantRegressors(%v)[%d] = %q, want %q", tt.alpha, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSignificantRegressors_AlphaValidation(t *testing.T) {
	m := engineModel(t)

	if _, err := m.SignificantRegressors(math.NaN()); err == nil {
		t.Error("NaN alpha accepted")
	} else {
		var verr *errors.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("NaN alpha: wrong error type: %v", err)
		}
	}

	for _, alpha := range []float64{0, -1, 0.11, 0.5, math.Inf(1), math.Inf(-1)} {
		if _, err := m.SignificantRegressors(alpha); err == nil {
			t.Errorf("alpha %v accepted, want rejection", alpha)
		} else {
			var verr *errors.ValueError
			if !errors.As(err, &verr) {
				t.Errorf("alpha %v: wrong error type: %v", alpha, err)
			}
		}
	}

	// The cap itself is allowed.
	if _, err := m.SignificantRegressors(0.1); err != nil {
		t.Errorf("alpha 0.1 rejected: %v", err)
	}
}

func TestSignificantRegressors_LeavesModelUntouched(t *testing.T) {
	m := engineModel(t)

	before := m.Results()
	first, err := m.SignificantRegressors(0.05)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := m.SignificantRegressors(0.05)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("repeated calls disagree: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("repeated calls disagree at %d: %q vs %q", i, first[i], second[i])
		}
	}

	after := m.Results()
	for j := range before.Params {
		if before.Params[j] != after.Params[j] {
			t.Fatal("filtering mutated the fitted results")
		}
	}
	if got := m.SampleX().NumCols(); got != 2 {
		t.Errorf("filtering changed the sample frame: %d columns", got)
	}
}
