// Package log defines standard attribute keys for estimation operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in econgo. Using these standard keys enables better
// log analysis, monitoring, and debugging of model-fitting workflows.
//
// The attributes are organized into categories:
//   - Model and Operation Context
//   - Sample Shape and Characteristics
//   - Fit Statistics and Performance
//   - Error Context
//
// These keys follow a hierarchical naming convention (e.g., "model.name",
// "data.observations") to enable structured log analysis and filtering.

package log

// Model and Operation Context
// These attributes identify the model, its specification, and the operation
// being performed.
const (
	// ModelNameKey identifies the type of statistical model.
	// Examples: "Logit", "StandardScaler"
	ModelNameKey = "model.name"

	// DepVarKey names the dependent (endogenous) variable of the model.
	DepVarKey = "model.dep_var"

	// AlphaKey records the significance level attached to the model spec.
	AlphaKey = "model.alpha"

	// OperationKey specifies the estimation operation being performed.
	// Standard values: "fit", "predict", "transform", "align", "standardize"
	OperationKey = "est.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "discrete", "glm", "preprocessing", "dataset"
	ComponentKey = "est.component"

	// PhaseKey indicates the phase of the model lifecycle.
	// Examples: "training", "inference", "preparation"
	PhaseKey = "est.phase"
)

// Sample Shape and Characteristics
// These attributes describe the modeling sample being processed.
const (
	// ObservationsKey indicates the number of observations (rows) in the
	// aligned modeling sample.
	ObservationsKey = "data.observations"

	// RegressorsKey indicates the number of independent variables, excluding
	// the constant term.
	RegressorsKey = "data.regressors"

	// DroppedRowsKey counts rows removed during missing-value alignment.
	DroppedRowsKey = "data.dropped_rows"
)

// Fit Statistics and Performance
// These attributes capture convergence, fit quality, and timing information.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// IterationsKey records the number of iterations the optimizer performed.
	IterationsKey = "fit.iterations"

	// ConvergedKey records whether the maximum-likelihood optimization converged.
	ConvergedKey = "fit.converged"

	// LogLikelihoodKey records the maximized log-likelihood.
	LogLikelihoodKey = "fit.log_likelihood"

	// PseudoR2Key records McFadden's pseudo R-squared.
	PseudoR2Key = "fit.pseudo_r2"

	// AICKey records the Akaike information criterion.
	AICKey = "fit.aic"

	// BICKey records the Bayesian information criterion.
	BICKey = "fit.bic"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "DIMENSION_MISMATCH", "NOT_FITTED", "CONVERGENCE_FAILURE"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ValidationError", "ConvergenceError", "InputShapeError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging functions.
	StacktraceKey = "error.stacktrace"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "Check regressor count", "Increase max_iter"
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard estimation operations
	OperationFit         = "fit"
	OperationPredict     = "predict"
	OperationTransform   = "transform"
	OperationAlign       = "align"
	OperationStandardize = "standardize"

	// Standard lifecycle phases
	PhaseTraining    = "training"
	PhaseInference   = "inference"
	PhasePreparation = "preparation"

	// Standard error codes
	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorConvergence       = "CONVERGENCE_FAILURE"
	ErrorSingularMatrix    = "SINGULAR_MATRIX"
)
