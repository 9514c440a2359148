// Package diagnostics renders diagnostic plots for fitted models.
package diagnostics

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ogaki-lab/econgo/discrete"
	"github.com/ogaki-lab/econgo/metrics"
	"github.com/ogaki-lab/econgo/pkg/errors"
)

// ROCPlot charts the in-sample ROC curve of a fitted model: its fitted
// probabilities scored against the observed outcomes, with the chance
// diagonal for reference and the AUC in the title.
func ROCPlot(m *discrete.Logit) (*plot.Plot, error) {
	if m == nil {
		return nil, errors.Wrap(errors.ErrEmptyData, "diagnostics.ROCPlot: nil model")
	}
	yTrue := m.SampleY().Vector()
	yScore := m.FittedProbabilities().Vector()

	fpr, tpr, _, err := metrics.ROCCurve(yTrue, yScore)
	if err != nil {
		return nil, err
	}
	auc, err := metrics.AUC(yTrue, yScore)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("ROC curve (AUC = %.4f)", auc)
	p.X.Label.Text = "False positive rate"
	p.Y.Label.Text = "True positive rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	curve := make(plotter.XYs, len(fpr))
	for i := range fpr {
		curve[i].X, curve[i].Y = fpr[i], tpr[i]
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	line.Width = vg.Points(1.5)

	chance, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return nil, err
	}
	chance.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	p.Add(line, chance)
	p.Legend.Add("model", line)
	p.Legend.Add("chance", chance)
	return p, nil
}

// SaveROC writes the ROC plot to path; the file extension picks the
// format (".png", ".pdf", ".svg", ...).
func SaveROC(m *discrete.Logit, path string) error {
	p, err := ROCPlot(m)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
