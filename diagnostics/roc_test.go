package diagnostics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ogaki-lab/econgo/dataset"
	"github.com/ogaki-lab/econgo/discrete"
)

// twoGroupModel fits admit ~ exam on data where the pass rate is 0.3 in
// one exam group and 0.7 in the other, so the fitted probabilities take
// exactly two values and the in-sample AUC is 0.7 by direct counting.
func twoGroupModel(t *testing.T) *discrete.Logit {
	t.Helper()

	n := 40
	exam := make([]float64, n)
	admit := make([]float64, n)
	for i := 0; i < 20; i++ {
		if i < 6 {
			admit[i] = 1
		}
	}
	for i := 20; i < n; i++ {
		exam[i] = 1
		if i < 34 {
			admit[i] = 1
		}
	}

	f, err := dataset.NewFrame([]string{"admit", "exam"}, [][]float64{admit, exam}, nil)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	m, err := discrete.NewLogit(f, discrete.ModelSpec{Dependent: "admit", Regressors: []string{"exam"}})
	if err != nil {
		t.Fatalf("NewLogit failed: %v", err)
	}
	return m
}

func TestROCPlot(t *testing.T) {
	m := twoGroupModel(t)

	p, err := ROCPlot(m)
	if err != nil {
		t.Fatalf("ROCPlot failed: %v", err)
	}
	if !strings.Contains(p.Title.Text, "ROC curve") {
		t.Errorf("title = %q, want an ROC curve title", p.Title.Text)
	}
	// Two fitted probability levels, 0.3 vs 0.7, give AUC 0.7 exactly.
	if !strings.Contains(p.Title.Text, "0.7000") {
		t.Errorf("title = %q, want AUC 0.7000", p.Title.Text)
	}
	if p.X.Label.Text != "False positive rate" || p.Y.Label.Text != "True positive rate" {
		t.Errorf("axis labels = %q/%q", p.X.Label.Text, p.Y.Label.Text)
	}
}

func TestROCPlot_NilModel(t *testing.T) {
	if _, err := ROCPlot(nil); err == nil {
		t.Error("nil model accepted")
	}
}

func TestSaveROC(t *testing.T) {
	m := twoGroupModel(t)

	path := filepath.Join(t.TempDir(), "roc.png")
	if err := SaveROC(m, path); err != nil {
		t.Fatalf("SaveROC failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("saved plot missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved plot is empty")
	}
}
