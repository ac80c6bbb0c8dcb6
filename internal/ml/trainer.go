package ml

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	log "github.com/sirupsen/logrus"

	"triage-risk-service/internal/core/domain"
)

// Supported scoring metrics for cross-validation.
const (
	ScoringF1Macro  = "f1_macro"
	ScoringAccuracy = "accuracy"
)

// trainingSeed fixes every source of randomness in a run: fold shuffling,
// bootstrap sampling and split selection. Two runs over the same records
// produce the same artifact.
const trainingSeed = 42

// Result is the winning candidate of a training run.
type Result struct {
	Name     string
	Score    float64
	Params   Params
	Pipeline *Pipeline
}

type scorerFunc func(yTrue, yPred []int, classes int) float64

// TrainSelect assembles the training table once, grid-searches every
// available candidate under k-fold cross-validation and returns the
// strictly best-scoring fit. Ties keep the earlier-registered candidate.
func TrainSelect(records []domain.TrainingRecord, scoring string, cvFolds int) (*Result, error) {
	if len(records) == 0 {
		return nil, domain.ErrNoTrainingRecords
	}
	if cvFolds < 2 {
		return nil, domain.ErrInvalidFolds
	}
	scorer, err := scorerFor(scoring)
	if err != nil {
		return nil, err
	}
	if len(records) < cvFolds {
		return nil, fmt.Errorf("%w: %d records cannot fill %d folds", domain.ErrTrainingFailed, len(records), cvFolds)
	}

	table, labels := BuildTrainingTable(records)
	y := encodeLabels(labels)

	return selectBest(Candidates(), table, y, scorer, cvFolds)
}

// selectBest runs the per-candidate grid searches and keeps the single best
// fit. Split out of TrainSelect so tests can inject candidate lists.
func selectBest(candidates []Candidate, table *Table, y []int, scorer scorerFunc, cvFolds int) (*Result, error) {
	bestScore := math.Inf(-1)
	var best *Result

	for _, cand := range candidates {
		if !cand.Available() {
			log.Warnf("learner %s unavailable in this runtime, skipping candidate", cand.Name)
			continue
		}
		res, err := gridSearch(cand, table, y, scorer, cvFolds)
		if err != nil {
			log.WithError(err).Warnf("candidate %s produced no fit", cand.Name)
			continue
		}
		log.WithFields(log.Fields{
			"candidate": cand.Name,
			"score":     res.Score,
			"params":    res.Params,
		}).Info("candidate evaluated")
		if res.Score > bestScore {
			bestScore = res.Score
			best = res
		}
	}

	if best == nil {
		return nil, domain.ErrTrainingFailed
	}
	return best, nil
}

// gridSearch exhaustively evaluates the candidate's search space under
// cross-validation, then refits the winning assignment on the full table.
func gridSearch(cand Candidate, table *Table, y []int, scorer scorerFunc, cvFolds int) (*Result, error) {
	classes := len(domain.RiskLevels)
	folds := foldIndices(len(table.Rows), cvFolds)

	bestScore := math.Inf(-1)
	var bestParams Params

	for _, params := range enumerate(cand.SearchSpace) {
		var sum float64
		fitted := 0
		for f := range folds {
			trainIdx, testIdx := cvSplit(folds, f)
			trainTable := table.subset(trainIdx)

			pre := NewPreprocessor(trainTable)
			clf := cand.New(params)
			if err := clf.Fit(pre.TransformTable(trainTable), pick(y, trainIdx), classes); err != nil {
				continue
			}

			yPred := make([]int, len(testIdx))
			for i, idx := range testIdx {
				yPred[i] = clf.Predict(pre.Transform(table.Rows[idx]))
			}
			sum += scorer(pick(y, testIdx), yPred, classes)
			fitted++
		}
		if fitted == 0 {
			continue
		}
		if mean := sum / float64(fitted); mean > bestScore {
			bestScore = mean
			bestParams = params
		}
	}

	if bestParams == nil {
		return nil, fmt.Errorf("no hyperparameter assignment fit for %s", cand.Name)
	}

	// Refit the winner on the full table.
	pre := NewPreprocessor(table)
	clf := cand.New(bestParams)
	if err := clf.Fit(pre.TransformTable(table), y, classes); err != nil {
		return nil, fmt.Errorf("refit %s: %w", cand.Name, err)
	}

	return &Result{
		Name:   cand.Name,
		Score:  bestScore,
		Params: bestParams,
		Pipeline: &Pipeline{
			Pre:     pre,
			Clf:     clf,
			Classes: classLabels(),
		},
	}, nil
}

// enumerate produces the cartesian product of the search space in a
// deterministic order (keys sorted, values in declared order).
func enumerate(space map[string][]int) []Params {
	keys := make([]string, 0, len(space))
	for k := range space {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := []Params{{}}
	for _, k := range keys {
		var next []Params
		for _, base := range out {
			for _, v := range space[k] {
				p := make(Params, len(base)+1)
				for bk, bv := range base {
					p[bk] = bv
				}
				p[k] = v
				next = append(next, p)
			}
		}
		out = next
	}
	return out
}

// foldIndices shuffles row indices with the training seed and deals them
// into cvFolds near-equal folds.
func foldIndices(n, cvFolds int) [][]int {
	rng := rand.New(rand.NewSource(trainingSeed))
	perm := rng.Perm(n)

	folds := make([][]int, cvFolds)
	for i, idx := range perm {
		f := i % cvFolds
		folds[f] = append(folds[f], idx)
	}
	return folds
}

func cvSplit(folds [][]int, hold int) (train, test []int) {
	for f, idx := range folds {
		if f == hold {
			test = append(test, idx...)
		} else {
			train = append(train, idx...)
		}
	}
	return train, test
}

func scorerFor(name string) (scorerFunc, error) {
	switch name {
	case ScoringF1Macro:
		return f1Macro, nil
	case ScoringAccuracy:
		return accuracy, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrInvalidScoring, name)
}

func accuracy(yTrue, yPred []int, _ int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	hits := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(yTrue))
}

// f1Macro averages the per-class F1 over all classes; a class absent from
// both truth and prediction contributes zero.
func f1Macro(yTrue, yPred []int, classes int) float64 {
	var sum float64
	for c := 0; c < classes; c++ {
		var tp, fp, fn float64
		for i := range yTrue {
			switch {
			case yPred[i] == c && yTrue[i] == c:
				tp++
			case yPred[i] == c:
				fp++
			case yTrue[i] == c:
				fn++
			}
		}
		if tp > 0 {
			precision := tp / (tp + fp)
			recall := tp / (tp + fn)
			sum += 2 * precision * recall / (precision + recall)
		}
	}
	return sum / float64(classes)
}

func encodeLabels(labels []domain.RiskLevel) []int {
	index := make(map[domain.RiskLevel]int, len(domain.RiskLevels))
	for i, r := range domain.RiskLevels {
		index[r] = i
	}
	y := make([]int, len(labels))
	for i, l := range labels {
		y[i] = index[l]
	}
	return y
}

func classLabels() []string {
	out := make([]string, len(domain.RiskLevels))
	for i, r := range domain.RiskLevels {
		out[i] = string(r)
	}
	return out
}

func pick(y []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = y[j]
	}
	return out
}
