package dataset

import "github.com/ogaki-lab/econgo/pkg/errors"

// Align intersects a dependent series with a regressor frame on row labels
// after dropping missing values from each side independently.
//
// Rows are matched by label, never by position, so inputs whose rows were
// filtered at different points still pair the right observations. The output
// row order follows the order of first appearance in the dependent series.
// Both inputs are left untouched; the returned containers carry the shared
// labels and identical row order.
func Align(y *Series, X *Frame) (*Series, *Frame, error) {
	if y == nil || X == nil {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, "dataset.Align: nil input")
	}
	yd := y.DropNA()
	Xd := X.DropNA()

	inX := make(map[int]struct{}, Xd.NumRows())
	for _, l := range Xd.index {
		inX[l] = struct{}{}
	}
	shared := make([]int, 0, yd.Len())
	for _, l := range yd.index {
		if _, ok := inX[l]; ok {
			shared = append(shared, l)
		}
	}
	return yd.rowsAt(shared), Xd.rowsAt(shared), nil
}
