// Package econgo provides regression reporting for applied econometric
// analysis in Go, centered on binary logistic regression.
//
// The library wraps a maximum likelihood estimation engine with the
// workflow an applied analyst expects from a stats package: label-based
// sample alignment with missing-data handling, a standardized variant of
// every fit for comparable effect sizes, odds ratios, significance
// filtering, and range-aware prediction.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/ogaki-lab/econgo/dataset"
//	    "github.com/ogaki-lab/econgo/discrete"
//	)
//
//	func main() {
//	    ds, _ := dataset.NewFrame(
//	        []string{"approved", "income", "balance"},
//	        [][]float64{approved, income, balance},
//	        nil,
//	    )
//	    m, err := discrete.NewLogit(ds, discrete.ModelSpec{
//	        Dependent:  "approved",
//	        Regressors: []string{"income", "balance"},
//	    })
//	    if err != nil {
//	        // construction is atomic: any failure means no model
//	    }
//	    fmt.Println(m.OddsRatios())
//	    fmt.Println(m.ModelSelectionStats())
//	}
//
// # Packages
//
//   - dataset: labeled series/frame containers and sample alignment
//   - discrete: the reporting model (standardized effects, odds ratios,
//     significance filtering, within-sample prediction)
//   - glm: maximum likelihood logit estimation with statsmodels-style
//     inference output
//   - preprocessing: z-score standardization
//   - metrics: binary classification metrics (log loss, Brier score,
//     ROC/AUC)
//   - diagnostics: ROC curve plots for fitted models
//   - pkg/errors: typed errors with stack traces and structured-log
//     marshaling
//   - pkg/log: slog-based structured logging for estimation progress
//
// Estimates reproduce statsmodels' Logit conventions: standard errors
// from the inverse observed information, two-sided normal p-values, and
// McFadden's pseudo R-squared. Standardized effect sizes follow the
// latent-variable scaling of Long (1997).
package econgo
