package discrete

import (
	"github.com/ogaki-lab/econgo/core/parallel"
	"github.com/ogaki-lab/econgo/dataset"
	"github.com/ogaki-lab/econgo/pkg/errors"
)

// FitModels fits one model per specification against the same dataset,
// in parallel when there is more than one. The returned slice lines up
// with specs.
//
// Each model is built independently; the dataset is only read. If any
// specification fails, FitModels returns the first failure in
// specification order and no models.
func FitModels(ds *dataset.Frame, specs []ModelSpec, opts ...Option) ([]*Logit, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	models := make([]*Logit, len(specs))
	errs := make([]error, len(specs))
	parallel.ParallelizeWithThreshold(len(specs), 1, func(start, end int) {
		for i := start; i < end; i++ {
			// A panic inside a worker goroutine would take down the
			// process; convert it into a per-spec error instead.
			errs[i] = errors.SafeExecute("discrete.FitModels", func() error {
				var err error
				models[i], err = NewLogit(ds, specs[i], opts...)
				return err
			})
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return models, nil
}
