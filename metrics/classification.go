package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"

	"github.com/ogaki-lab/econgo/pkg/errors"
)

// checkBinaryPair は二値分類メトリクスの共通入力検証を行う
func checkBinaryPair(op string, yTrue, yScore *mat.VecDense) (int, error) {
	if yTrue == nil || yScore == nil {
		return 0, errors.NewValueError(op, "nil vector")
	}
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError(op, "empty vector")
	}
	if yScore.Len() != n {
		return 0, errors.NewDimensionError(op, n, yScore.Len(), 0)
	}
	for i := 0; i < n; i++ {
		if v := yTrue.AtVec(i); v != 0 && v != 1 {
			return 0, errors.NewValueError(op, "labels must be binary (0 or 1)")
		}
	}
	return n, nil
}

// rocPoints はスコア降順の閾値ごとに累積 (FPR, TPR) 点列を構築する
func rocPoints(op string, yTrue, yScore *mat.VecDense) (fpr, tpr, thresholds []float64, n0, n1 int, err error) {
	n, err := checkBinaryPair(op, yTrue, yScore)
	if err != nil {
		return nil, nil, nil, 0, 0, err
	}

	type pair struct{ score, label float64 }
	pairs := make([]pair, n)
	for i := 0; i < n; i++ {
		s := yScore.AtVec(i)
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, nil, nil, 0, 0, errors.NewValueError(op, "scores must be finite")
		}
		pairs[i] = pair{score: s, label: yTrue.AtVec(i)}
		if pairs[i].label == 1 {
			n1++
		} else {
			n0++
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].score > pairs[j].score })

	// 原点を先頭に置き、その閾値は最大スコアの1つ上とする
	fpr = []float64{0}
	tpr = []float64{0}
	thresholds = []float64{pairs[0].score + 1}

	tp, fp := 0, 0
	for i := 0; i < n; {
		s := pairs[i].score
		for i < n && pairs[i].score == s {
			if pairs[i].label == 1 {
				tp++
			} else {
				fp++
			}
			i++
		}
		fpr = append(fpr, float64(fp)/float64(n0))
		tpr = append(tpr, float64(tp)/float64(n1))
		thresholds = append(thresholds, s)
	}
	return fpr, tpr, thresholds, n0, n1, nil
}

// ROCCurve はROC曲線の (FPR, TPR, 閾値) を計算する
//
// クラスが1種類しか存在しない場合はUndefinedMetricWarningを発行し、
// 定義できない軸はNaNのまま返す。
func ROCCurve(yTrue, yScore *mat.VecDense) (fpr, tpr, thresholds []float64, err error) {
	fpr, tpr, thresholds, n0, n1, err := rocPoints("ROCCurve", yTrue, yScore)
	if err != nil {
		return nil, nil, nil, err
	}
	if n0 == 0 || n1 == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("ROCCurve", "only one class present in yTrue", math.NaN()))
	}
	return fpr, tpr, thresholds, nil
}

// AUC はROC曲線下面積を台形則で計算する
//
// クラスが1種類しか存在しない場合はUndefinedMetricWarningを発行し、
// チャンスレベルの0.5を返す。
func AUC(yTrue, yScore *mat.VecDense) (float64, error) {
	fpr, tpr, _, n0, n1, err := rocPoints("AUC", yTrue, yScore)
	if err != nil {
		return 0, err
	}
	if n0 == 0 || n1 == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("AUC", "only one class present in yTrue", 0.5))
		return 0.5, nil
	}
	return integrate.Trapezoidal(fpr, tpr), nil
}

// AUCMatrix は行列形式の入力に対してAUCを計算する（先頭列を使用する）
func AUCMatrix(yTrue, yScore mat.Matrix) (float64, error) {
	if yTrue == nil || yScore == nil {
		return 0, errors.NewValueError("AUCMatrix", "nil matrix")
	}
	rTrue, cTrue := yTrue.Dims()
	rScore, _ := yScore.Dims()
	if rTrue == 0 || cTrue == 0 {
		return 0, errors.NewValueError("AUCMatrix", "empty matrix")
	}
	if rTrue != rScore {
		return 0, errors.NewDimensionError("AUCMatrix", rTrue, rScore, 0)
	}

	yTrueVec := mat.NewVecDense(rTrue, nil)
	yScoreVec := mat.NewVecDense(rTrue, nil)
	for i := 0; i < rTrue; i++ {
		yTrueVec.SetVec(i, yTrue.At(i, 0))
		yScoreVec.SetVec(i, yScore.At(i, 0))
	}
	return AUC(yTrueVec, yScoreVec)
}

// BinaryLogLoss は二値分類の対数損失（交差エントロピー）を計算する
//
// 確率0および1はlog(0)を避けるため微小値でクリップされる。
func BinaryLogLoss(yTrue, yProb *mat.VecDense) (float64, error) {
	n, err := checkBinaryPair("BinaryLogLoss", yTrue, yProb)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		p := yProb.AtVec(i)
		if !(p >= 0 && p <= 1) {
			return 0, errors.NewValueError("BinaryLogLoss", "probabilities must be in [0, 1]")
		}
		if yTrue.AtVec(i) == 1 {
			sum -= errors.StabilizeLog(p)
		} else {
			sum -= errors.StabilizeLog(1 - p)
		}
	}
	return sum / float64(n), nil
}

// BrierScore は予測確率の平均二乗誤差を計算する
func BrierScore(yTrue, yProb *mat.VecDense) (float64, error) {
	n, err := checkBinaryPair("BrierScore", yTrue, yProb)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		p := yProb.AtVec(i)
		if !(p >= 0 && p <= 1) {
			return 0, errors.NewValueError("BrierScore", "probabilities must be in [0, 1]")
		}
		diff := p - yTrue.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// Accuracy は正解率（ラベルの完全一致率）を計算する
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	if yTrue == nil || yPred == nil {
		return 0, errors.NewValueError("Accuracy", "nil vector")
	}
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// ClassificationError は誤分類率（1 - Accuracy）を計算する
func ClassificationError(yTrue, yPred *mat.VecDense) (float64, error) {
	acc, err := Accuracy(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - acc, nil
}
