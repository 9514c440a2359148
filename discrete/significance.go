package discrete

import (
	"math"

	"github.com/ogaki-lab/econgo/pkg/errors"
)

// SignificantRegressors returns the regressors whose raw-model p-value is
// at most alpha, in specification order. The constant never appears.
//
// alpha is restricted to (0, 0.1]: reporting "significance" at weaker
// levels is rejected rather than silently clamped. A NaN alpha is a
// malformed value, not an out-of-range one, and fails validation
// separately.
func (m *Logit) SignificantRegressors(alpha float64) ([]string, error) {
	if math.IsNaN(alpha) {
		return nil, errors.NewValidationError("alpha", "must be a real number", alpha)
	}
	if alpha <= 0 || alpha > 0.1 {
		return nil, errors.NewValueError("Logit.SignificantRegressors", "alpha must be in (0, 0.1]")
	}

	var significant []string
	for i, name := range m.spec.Regressors {
		if m.raw.PValues[i+1] <= alpha {
			significant = append(significant, name)
		}
	}
	return significant, nil
}
