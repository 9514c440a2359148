package dataset

import (
	"math"
	"testing"
)

func TestAlign_DropsMissingFromBothSides(t *testing.T) {
	y, _ := NewSeries("y", []float64{1, math.NaN(), 0, 1, 0}, nil)
	X, _ := NewFrame(
		[]string{"x1", "x2"},
		[][]float64{
			{1, 2, 3, math.NaN(), 5},
			{10, 20, 30, 40, 50},
		},
		nil,
	)

	ya, Xa, err := Align(y, X)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	// Row 1 lost to missing y, row 3 lost to missing x1.
	wantIdx := []int{0, 2, 4}
	if ya.Len() != len(wantIdx) || Xa.NumRows() != len(wantIdx) {
		t.Fatalf("aligned sizes = (%d, %d), want %d", ya.Len(), Xa.NumRows(), len(wantIdx))
	}
	for i, l := range ya.Index() {
		if l != wantIdx[i] {
			t.Errorf("y index[%d] = %d, want %d", i, l, wantIdx[i])
		}
	}
	for i, l := range Xa.Index() {
		if l != wantIdx[i] {
			t.Errorf("X index[%d] = %d, want %d", i, l, wantIdx[i])
		}
	}
}

func TestAlign_MatchesByLabelNotPosition(t *testing.T) {
	// Regressor rows arrive in a different physical order than the
	// dependent series. Positional pairing would scramble observations.
	y, _ := NewSeries("y", []float64{1, 0, 1, 0}, []int{10, 20, 30, 40})
	X, _ := NewFrame(
		[]string{"x"},
		[][]float64{{400, 100, 300}},
		[]int{40, 10, 30},
	)

	ya, Xa, err := Align(y, X)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	// Output order follows first appearance in y: 10, 30, 40.
	wantIdx := []int{10, 30, 40}
	wantY := []float64{1, 1, 0}
	wantX := []float64{100, 300, 400}
	for i, l := range ya.Index() {
		if l != wantIdx[i] {
			t.Fatalf("aligned index = %v, want %v", ya.Index(), wantIdx)
		}
	}
	for i, v := range ya.Values() {
		if v != wantY[i] {
			t.Errorf("aligned y = %v, want %v", ya.Values(), wantY)
		}
	}
	m := Xa.Matrix()
	for i, want := range wantX {
		if m.At(i, 0) != want {
			t.Errorf("aligned x[%d] = %v, want %v", i, m.At(i, 0), want)
		}
	}
}

func TestAlign_NoMissingValuesRemain(t *testing.T) {
	y, _ := NewSeries("y", []float64{1, math.NaN(), 0, 1}, nil)
	X, _ := NewFrame(
		[]string{"a", "b"},
		[][]float64{
			{math.NaN(), 2, 3, 4},
			{1, 2, math.NaN(), 4},
		},
		nil,
	)

	ya, Xa, err := Align(y, X)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	for i, v := range ya.Values() {
		if math.IsNaN(v) {
			t.Errorf("aligned y[%d] is NaN", i)
		}
	}
	m := Xa.Matrix()
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.IsNaN(m.At(i, j)) {
				t.Errorf("aligned X[%d,%d] is NaN", i, j)
			}
		}
	}
	// Only row 3 survives every filter.
	if r != 1 || ya.Index()[0] != 3 {
		t.Errorf("aligned rows = %d (index %v), want 1 row with label 3", r, ya.Index())
	}
}

func TestAlign_IdenticalIndexes(t *testing.T) {
	y, _ := NewSeries("y", []float64{0, 1, 1}, nil)
	X, _ := NewFrame([]string{"x"}, [][]float64{{5, 6, 7}}, nil)

	ya, Xa, err := Align(y, X)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if ya.Len() != 3 || Xa.NumRows() != 3 {
		t.Errorf("complete data shrank: (%d, %d), want (3, 3)", ya.Len(), Xa.NumRows())
	}
}

func TestAlign_EmptyIntersection(t *testing.T) {
	y, _ := NewSeries("y", []float64{1, 0}, []int{1, 2})
	X, _ := NewFrame([]string{"x"}, [][]float64{{9, 9}}, []int{3, 4})

	ya, Xa, err := Align(y, X)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if ya.Len() != 0 || Xa.NumRows() != 0 {
		t.Errorf("disjoint labels should align to empty: (%d, %d)", ya.Len(), Xa.NumRows())
	}
}

func TestAlign_PureInputsUntouched(t *testing.T) {
	y, _ := NewSeries("y", []float64{1, math.NaN(), 0}, nil)
	X, _ := NewFrame([]string{"x"}, [][]float64{{1, 2, math.NaN()}}, nil)

	if _, _, err := Align(y, X); err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if y.Len() != 3 {
		t.Errorf("Align mutated y: len = %d, want 3", y.Len())
	}
	if X.NumRows() != 3 {
		t.Errorf("Align mutated X: rows = %d, want 3", X.NumRows())
	}
	if !math.IsNaN(y.Values()[1]) {
		t.Error("Align overwrote the missing value in y")
	}
}

func TestAlign_NilInput(t *testing.T) {
	y, _ := NewSeries("y", []float64{1}, nil)
	if _, _, err := Align(y, nil); err == nil {
		t.Error("Align(y, nil): expected error, got nil")
	}
	X, _ := NewFrame([]string{"x"}, [][]float64{{1}}, nil)
	if _, _, err := Align(nil, X); err == nil {
		t.Error("Align(nil, X): expected error, got nil")
	}
}
