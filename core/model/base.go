package model

// BaseEstimator は推定器に埋め込んで適合状態を追跡する。
// 適合前の結果参照を NotFittedError で拒否するための共通基盤。
type BaseEstimator struct {
	fitted bool
}

// IsFitted は推定が完了しているかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.fitted
}

// SetFitted は推定完了を記録する。適合が成功した場合のみ呼ぶこと。
func (e *BaseEstimator) SetFitted() {
	e.fitted = true
}

// Reset は適合状態を破棄し、再適合可能な初期状態に戻す
func (e *BaseEstimator) Reset() {
	e.fitted = false
}
