// このファイルはpanic回復ユーティリティを提供します。
// gonumの密行列演算は形状違反でpanicするため、推定のエントリポイントでは
// panicを構造化されたエラーへ変換してライブラリの安定性を保ちます。

package errors

import (
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// PanicError は回復されたpanicから生成されるエラーです。
// panic時の値と、その時点のスタックトレースを保持します。
type PanicError struct {
	Operation  string      // panicを回復した操作名
	PanicValue interface{} // panic()に渡された元の値
	StackTrace string      // panic時点のスタックトレース
}

// Error はerrorインターフェースを実装します。
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// String はスタックトレースを含む詳細情報を返します。
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// Unwrap はnilを返します。panicは別のエラーをラップしません。
func (e *PanicError) Unwrap() error {
	return nil
}

// MarshalZerologObject はzerolog用の構造化フィールドを出力します。
func (e *PanicError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Str("value", fmt.Sprint(e.PanicValue)).
		Str("stacktrace", e.StackTrace).
		Str("type", "PanicError")
}

// NewPanicError は操作名とpanic値からPanicErrorを生成します。
// スタックトレースは呼び出し時点で採取されるため、recover直後に呼んでください。
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		Operation:  operation,
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
	}
}

// Recover はdeferで使用し、panicをエラーへ変換します。
// 関数のエラー戻り値へのポインタを渡してください。
//
// 使用例:
//
//	func (m *Logit) Fit() (err error) {
//	    defer errors.Recover(&err, "glm.Logit.Fit")
//	    // ... 反復推定 ...
//	    return nil
//	}
//
// panic発生時にすでにエラーが設定されている場合は、そのエラーを
// panic情報でラップします。
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}
	if *err != nil {
		*err = Wrapf(*err, "panic in %s: %v", operation, r)
		return
	}
	*err = WithStack(NewPanicError(operation, r))
}

// SafeExecute は関数を実行し、panicをエラーへ変換して返します。
// 並列実行されるゴルーチン内でpanicし得る処理を包むのに使います。
//
// 使用例:
//
//	err := errors.SafeExecute("discrete.FitModels", func() error {
//	    return fitOne(spec)
//	})
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
