// Package discrete builds reporting-ready binary regression models from
// labeled datasets.
//
// Logit wraps the maximum likelihood engine in glm with the surrounding
// workflow: selecting the model columns, aligning the estimation sample by
// row label, fitting both a raw and a standardized variant, and deriving
// the quantities an applied analyst reads off a report: standardized
// effects, odds ratios, confidence intervals, and model selection
// statistics. Construction is atomic; a model either fits completely or
// the constructor returns an error and no model.
package discrete

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ogaki-lab/econgo/dataset"
	"github.com/ogaki-lab/econgo/glm"
	"github.com/ogaki-lab/econgo/pkg/errors"
	"github.com/ogaki-lab/econgo/pkg/log"
	"github.com/ogaki-lab/econgo/preprocessing"
)

// DefaultAlpha is the significance level used when a ModelSpec leaves
// Alpha unset.
const DefaultAlpha = 0.05

// ModelSpec names the columns of a model: one binary dependent variable
// and at least one regressor. Alpha is the significance level for the
// stored confidence intervals; zero means DefaultAlpha.
type ModelSpec struct {
	Dependent  string
	Regressors []string
	Alpha      float64
}

func (s ModelSpec) clone() ModelSpec {
	s.Regressors = append([]string(nil), s.Regressors...)
	return s
}

// Logit is a fitted binary logistic regression with its estimation sample
// and report statistics. A Logit never changes after construction:
// accessors hand out copies of mutable state, and the sample containers
// are immutable and shared.
type Logit struct {
	spec  ModelSpec
	alpha float64

	sampleY *dataset.Series
	sampleX *dataset.Frame
	stdX    *dataset.Frame

	raw *glm.Results
	std *glm.Results

	effects   *EffectTable
	odds      []OddsRatio
	confInts  []ConfidenceInterval
	stats     map[string]float64
	residuals *dataset.Series
	fitted    *dataset.Series

	// Training-sample regressor ranges, for within-sample prediction
	// masking. Ordered like spec.Regressors.
	xMin []float64
	xMax []float64
}

// Option configures model construction.
type Option func(*config)

type config struct {
	logger log.Logger
}

// WithLogger routes construction progress logs. The default is the
// process-wide logger.
func WithLogger(l log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// NewLogit selects the model columns from ds, aligns the estimation sample
// on row labels, and fits the model twice: once on the raw regressors and
// once on their z-scores. The standardized effects, odds ratios,
// confidence intervals, and selection statistics are computed up front so
// the returned model is a complete, read-only report.
func NewLogit(ds *dataset.Frame, spec ModelSpec, opts ...Option) (*Logit, error) {
	cfg := config{logger: log.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if ds == nil {
		return nil, errors.Wrap(errors.ErrEmptyData, "discrete.NewLogit: nil dataset")
	}
	if spec.Dependent == "" {
		return nil, errors.NewValueError("discrete.NewLogit", "dependent variable name is empty")
	}
	if len(spec.Regressors) == 0 {
		return nil, errors.NewValueError("discrete.NewLogit", "at least one regressor is required")
	}
	alpha := spec.Alpha
	if alpha == 0 {
		alpha = DefaultAlpha
	}
	if math.IsNaN(alpha) {
		return nil, errors.NewValidationError("alpha", "must be a real number", alpha)
	}
	if alpha <= 0 || alpha >= 1 {
		return nil, errors.NewValueError("discrete.NewLogit", "alpha must be in (0, 1)")
	}

	logger := cfg.logger.With(
		log.ModelNameKey, "Logit",
		log.DepVarKey, spec.Dependent,
	)

	y, err := ds.Column(spec.Dependent)
	if err != nil {
		return nil, err
	}
	X, err := ds.Select(spec.Regressors)
	if err != nil {
		return nil, err
	}

	sampleY, sampleX, err := dataset.Align(y, X)
	if err != nil {
		return nil, err
	}
	if sampleY.Len() == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "discrete.NewLogit: no complete observations after alignment")
	}

	logger.Info("model fitting in progress",
		log.OperationKey, log.OperationFit,
		log.ObservationsKey, sampleY.Len(),
		log.RegressorsKey, len(spec.Regressors),
		log.DroppedRowsKey, ds.NumRows()-sampleY.Len(),
	)

	names := append([]string{"const"}, spec.Regressors...)
	design := glm.AddConstant(sampleX.Matrix())

	raw, err := fitSuppressed(sampleY.Vector(), design, names)
	if err != nil {
		return nil, err
	}

	// Standardized variant: same response, z-scored regressors.
	zMat, stdX, scales, err := standardize(sampleX)
	if err != nil {
		return nil, err
	}
	std, err := fitSuppressed(sampleY.Vector(), glm.AddConstant(zMat), names)
	if err != nil {
		return nil, err
	}

	effects := newEffectTable(spec.Regressors, scales, raw, std)
	odds := newOddsRatios(spec.Regressors, raw)

	ci, err := raw.ConfInt(alpha)
	if err != nil {
		return nil, err
	}
	confInts := make([]ConfidenceInterval, len(names))
	for j, name := range names {
		confInts[j] = ConfidenceInterval{Name: name, Lower: ci[j][0], Upper: ci[j][1]}
	}

	residuals, err := dataset.NewSeries("resid_pearson", raw.ResidPearson, sampleY.Index())
	if err != nil {
		return nil, err
	}
	probs, err := raw.Predict(design)
	if err != nil {
		return nil, err
	}
	fitted, err := dataset.NewSeries("fitted_prob", probs, sampleY.Index())
	if err != nil {
		return nil, err
	}

	m := &Logit{
		spec:      spec.clone(),
		alpha:     alpha,
		sampleY:   sampleY,
		sampleX:   sampleX,
		stdX:      stdX,
		raw:       raw,
		std:       std,
		effects:   effects,
		odds:      odds,
		confInts:  confInts,
		stats:     newSelectionStats(raw),
		residuals: residuals,
		fitted:    fitted,
		xMin:      sampleX.ColumnMins(),
		xMax:      sampleX.ColumnMaxs(),
	}

	logger.Info("model fitted",
		log.OperationKey, log.OperationFit,
		log.IterationsKey, raw.Iterations,
		log.LogLikelihoodKey, raw.LLF,
		log.PseudoR2Key, raw.PseudoR2,
		log.AICKey, raw.AIC,
		log.BICKey, raw.BIC,
	)
	return m, nil
}

// fitSuppressed runs one quiet maximum likelihood fit.
func fitSuppressed(y *mat.VecDense, design *mat.Dense, names []string) (*glm.Results, error) {
	model, err := glm.NewLogit(y, design, names)
	if err != nil {
		return nil, err
	}
	restore := model.Suppress()
	defer restore()
	return model.Fit()
}

// standardize z-scores the sample regressors and rebuilds them as a frame
// sharing the sample labels. The returned scales are the fitted
// standardization divisors, one per regressor.
func standardize(sampleX *dataset.Frame) (*mat.Dense, *dataset.Frame, []float64, error) {
	scaler := preprocessing.NewStandardScalerDefault()
	z, err := scaler.FitTransform(sampleX.Matrix())
	if err != nil {
		return nil, nil, nil, err
	}
	r, c := z.Dims()
	zd := mat.NewDense(r, c, nil)
	zd.Copy(z)

	cols := make([][]float64, c)
	for j := 0; j < c; j++ {
		col := make([]float64, r)
		for i := 0; i < r; i++ {
			col[i] = zd.At(i, j)
		}
		cols[j] = col
	}
	frame, err := dataset.NewFrame(sampleX.Columns(), cols, sampleX.Index())
	if err != nil {
		return nil, nil, nil, err
	}
	return zd, frame, append([]float64(nil), scaler.Scale...), nil
}

// newSelectionStats collects the likelihood-based model selection measures
// under their report names.
func newSelectionStats(raw *glm.Results) map[string]float64 {
	return map[string]float64{
		"Log-likelihood":   raw.LLF,
		"Pseudo R-squared": raw.PseudoR2,
		"AIC":              raw.AIC,
		"BIC":              raw.BIC,
	}
}

// Spec returns a copy of the model specification.
func (m *Logit) Spec() ModelSpec { return m.spec.clone() }

// Alpha returns the significance level of the stored confidence intervals.
func (m *Logit) Alpha() float64 { return m.alpha }

// SampleY returns the aligned estimation response. The series is
// immutable and keeps the surviving row labels.
func (m *Logit) SampleY() *dataset.Series { return m.sampleY }

// SampleX returns the aligned estimation regressors.
func (m *Logit) SampleX() *dataset.Frame { return m.sampleX }

// StandardizedX returns the z-scored estimation regressors on the same
// row labels as SampleX.
func (m *Logit) StandardizedX() *dataset.Frame { return m.stdX }

// Results returns a copy of the raw-regressor estimation results.
func (m *Logit) Results() *glm.Results { return m.raw.Clone() }

// StandardizedResults returns a copy of the z-scored estimation results.
func (m *Logit) StandardizedResults() *glm.Results { return m.std.Clone() }

// Effects returns a copy of the standardized effect table.
func (m *Logit) Effects() *EffectTable { return m.effects.clone() }

// OddsRatios returns the exponentiated regressor coefficients in
// specification order. The constant is excluded.
func (m *Logit) OddsRatios() []OddsRatio { return append([]OddsRatio(nil), m.odds...) }

// ConfidenceIntervals returns the coefficient intervals at the model's
// alpha, constant first.
func (m *Logit) ConfidenceIntervals() []ConfidenceInterval {
	return append([]ConfidenceInterval(nil), m.confInts...)
}

// ModelSelectionStats returns the likelihood-based selection measures
// keyed by report name: "Log-likelihood", "Pseudo R-squared", "AIC",
// "BIC".
func (m *Logit) ModelSelectionStats() map[string]float64 {
	out := make(map[string]float64, len(m.stats))
	for k, v := range m.stats {
		out[k] = v
	}
	return out
}

// LogLikelihood returns the maximized log-likelihood.
func (m *Logit) LogLikelihood() float64 { return m.raw.LLF }

// PearsonResiduals returns the training-sample Pearson residuals on the
// aligned row labels.
func (m *Logit) PearsonResiduals() *dataset.Series { return m.residuals }

// FittedProbabilities returns the training-sample response probabilities
// on the aligned row labels.
func (m *Logit) FittedProbabilities() *dataset.Series { return m.fitted }
