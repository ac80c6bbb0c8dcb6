package ml

import "fmt"

// Learner is a trainable multi-class classifier over dense feature vectors.
// Predict returns a class index into the pipeline's class list.
type Learner interface {
	Fit(x [][]float64, y []int, classes int) error
	Predict(x []float64) int
}

// Params is one hyperparameter assignment drawn from a candidate's search
// space.
type Params map[string]int

// Pipeline couples a fitted preprocessor with a fitted learner. It is the
// unit the artifact codec serializes; fields are exported for gob.
type Pipeline struct {
	Pre     *Preprocessor
	Clf     Learner
	Classes []string
}

// PredictRow encodes a single assembled row and returns the predicted class
// label. The caller is responsible for validating the label against the
// risk-level set.
func (p *Pipeline) PredictRow(row Row) (string, error) {
	idx := p.Clf.Predict(p.Pre.Transform(row))
	if idx < 0 || idx >= len(p.Classes) {
		return "", fmt.Errorf("class index %d out of range", idx)
	}
	return p.Classes[idx], nil
}
