package discrete

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ogaki-lab/econgo/glm"
)

// EffectTable compares regressor effects on a common scale. Each row pairs
// the raw coefficient with two standardized versions following Long's
// latent-variable approach: CoefStdX rescales by the regressor's sample
// standard deviation, CoefStdXy additionally divides by the standard
// deviation of the latent outcome, whose variance is the variance of the
// fitted linear predictor plus the logistic error variance pi^2/3.
//
// The constant carries no effect and is excluded. TestLabel and PLabel
// name the test statistic columns, "z"/"P>|z|" for maximum likelihood
// results and "t"/"P>|t|" when the underlying inference uses Student's t.
type EffectTable struct {
	TestLabel string
	PLabel    string
	Rows      []EffectRow
}

// EffectRow is one regressor's entry in the effect table. StdevX is the
// sample standard deviation the standardization divided by.
type EffectRow struct {
	Regressor string
	Coef      float64
	CoefStdX  float64
	CoefStdXy float64
	TValue    float64
	PValue    float64
	StdevX    float64
}

func (t *EffectTable) clone() *EffectTable {
	out := *t
	out.Rows = append([]EffectRow(nil), t.Rows...)
	return &out
}

// OddsRatio is the multiplicative change in the odds of the outcome for a
// one-unit increase in the regressor.
type OddsRatio struct {
	Regressor string
	Value     float64
}

// ConfidenceInterval bounds one coefficient at the model's alpha.
type ConfidenceInterval struct {
	Name  string
	Lower float64
	Upper float64
}

// newEffectTable derives the standardized effect rows from the raw and
// z-scored fits. The z-scored slope already equals coef times the
// regressor standard deviation, so CoefStdX reads straight off the
// standardized fit; dividing by sd(y*) then gives the fully standardized
// effect. scales carries the standardization divisors, regressor order.
func newEffectTable(regressors []string, scales []float64, raw, std *glm.Results) *EffectTable {
	// Latent outcome scale: var(Xb) + pi^2/3 on the fitted sample.
	sdYStar := math.Sqrt(stat.Variance(raw.FittedValues, nil) + math.Pi*math.Pi/3)

	testLabel, pLabel := "z", "P>|z|"
	if raw.UseT {
		testLabel, pLabel = "t", "P>|t|"
	}

	rows := make([]EffectRow, len(regressors))
	for i, name := range regressors {
		j := i + 1 // skip the constant
		rows[i] = EffectRow{
			Regressor: name,
			Coef:      raw.Params[j],
			CoefStdX:  std.Params[j],
			CoefStdXy: std.Params[j] / sdYStar,
			TValue:    raw.TValues[j],
			PValue:    raw.PValues[j],
			StdevX:    scales[i],
		}
	}
	return &EffectTable{TestLabel: testLabel, PLabel: pLabel, Rows: rows}
}

// newOddsRatios exponentiates the raw regressor coefficients. The constant
// is excluded; its exponential is a baseline odds, not an effect.
func newOddsRatios(regressors []string, raw *glm.Results) []OddsRatio {
	out := make([]OddsRatio, len(regressors))
	for i, name := range regressors {
		out[i] = OddsRatio{Regressor: name, Value: math.Exp(raw.Params[i+1])}
	}
	return out
}
