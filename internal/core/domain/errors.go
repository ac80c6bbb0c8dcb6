package domain

import "errors"

// Not found errors
var (
	ErrArtifactNotFound   = errors.New("model artifact not found")
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrPatientNotFound    = errors.New("patient not found")
)

// Inference errors. Absorbed inside the prediction service: the rule engine
// is the non-failing backstop, so none of these ever reach a caller.
var (
	ErrNoActiveModel    = errors.New("no active model artifact")
	ErrInvalidRiskLevel = errors.New("risk level must be one of low, medium, high")
)

// Training errors. These DO reach the caller: a failed run must never
// install a degraded model.
var (
	ErrNoTrainingRecords = errors.New("training set is empty")
	ErrInvalidScoring    = errors.New("unsupported scoring metric")
	ErrInvalidFolds      = errors.New("cv_folds must be at least 2")
	ErrTrainingFailed    = errors.New("no candidate produced a usable fit")
)
