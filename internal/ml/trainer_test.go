package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"triage-risk-service/internal/core/domain"
)

// constantLearner always predicts the same class, giving tests a learner
// with a known cross-validation score.
type constantLearner struct {
	Class int
}

func (c *constantLearner) Fit(_ [][]float64, _ []int, _ int) error { return nil }
func (c *constantLearner) Predict(_ []float64) int                 { return c.Class }

func init() {
	RegisterLearner("stubZero", func(Params) Learner { return &constantLearner{Class: 0} })
	RegisterLearner("stubOne", func(Params) Learner { return &constantLearner{Class: 1} })
	RegisterLearner("stubOneAlias", func(Params) Learner { return &constantLearner{Class: 1} })
}

func separableRecords() []domain.TrainingRecord {
	var records []domain.TrainingRecord
	for i := 0; i < 4; i++ {
		records = append(records, domain.TrainingRecord{Amount: float64(10 + i*10), Category: "general", Label: domain.RiskLow})
	}
	for i := 0; i < 4; i++ {
		records = append(records, domain.TrainingRecord{Amount: float64(1500 + i*100), Category: "general", Label: domain.RiskMedium})
	}
	for i := 0; i < 4; i++ {
		records = append(records, domain.TrainingRecord{Amount: float64(20000 + i*1000), Category: "general", Label: domain.RiskHigh})
	}
	return records
}

func TestTrainSelect_ValidationErrors(t *testing.T) {
	records := separableRecords()

	_, err := TrainSelect(nil, ScoringAccuracy, 3)
	assert.ErrorIs(t, err, domain.ErrNoTrainingRecords)

	_, err = TrainSelect(records, ScoringAccuracy, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidFolds)

	_, err = TrainSelect(records, "roc_auc", 3)
	assert.ErrorIs(t, err, domain.ErrInvalidScoring)

	_, err = TrainSelect(records[:2], ScoringAccuracy, 3)
	assert.ErrorIs(t, err, domain.ErrTrainingFailed)
}

func TestTrainSelect_ReturnsFittedPipeline(t *testing.T) {
	res, err := TrainSelect(separableRecords(), ScoringAccuracy, 3)

	assert.NoError(t, err)
	assert.NotNil(t, res.Pipeline)
	assert.Contains(t, []string{"RandomForest", "ExtraTrees", "KNN"}, res.Name)
	assert.GreaterOrEqual(t, res.Score, 0.0)
	assert.LessOrEqual(t, res.Score, 1.0)
	assert.NotEmpty(t, res.Params)

	label, err := res.Pipeline.PredictRow(Row{"amount": 25.0, "category": "general"})
	assert.NoError(t, err)
	_, err = domain.ParseRiskLevel(label)
	assert.NoError(t, err)
}

func TestTrainSelect_Deterministic(t *testing.T) {
	records := separableRecords()

	a, err := TrainSelect(records, ScoringF1Macro, 3)
	assert.NoError(t, err)
	b, err := TrainSelect(records, ScoringF1Macro, 3)
	assert.NoError(t, err)

	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Params, b.Params)

	for _, amount := range []float64{15, 1650, 21000} {
		row := Row{"amount": amount, "category": "general"}
		la, err := a.Pipeline.PredictRow(row)
		assert.NoError(t, err)
		lb, err := b.Pipeline.PredictRow(row)
		assert.NoError(t, err)
		assert.Equal(t, la, lb)
	}
}

func stubTable(n int) (*Table, []int) {
	table := &Table{Columns: []string{"amount"}}
	y := make([]int, n)
	for i := 0; i < n; i++ {
		table.Rows = append(table.Rows, Row{"amount": float64(i)})
		y[i] = 1
	}
	return table, y
}

func TestSelectBest_PrefersHigherScore(t *testing.T) {
	table, y := stubTable(6)
	cands := []Candidate{{Name: "stubZero"}, {Name: "stubOne"}}

	res, err := selectBest(cands, table, y, accuracy, 2)

	assert.NoError(t, err)
	assert.Equal(t, "stubOne", res.Name)
	assert.Equal(t, 1.0, res.Score)
}

func TestSelectBest_TieKeepsEarlierCandidate(t *testing.T) {
	table, y := stubTable(6)
	cands := []Candidate{{Name: "stubOne"}, {Name: "stubOneAlias"}}

	res, err := selectBest(cands, table, y, accuracy, 2)

	assert.NoError(t, err)
	assert.Equal(t, "stubOne", res.Name)
}

func TestSelectBest_SkipsUnavailableCandidates(t *testing.T) {
	table, y := stubTable(6)
	cands := []Candidate{{Name: "phantom"}, {Name: "stubOne"}}

	res, err := selectBest(cands, table, y, accuracy, 2)

	assert.NoError(t, err)
	assert.Equal(t, "stubOne", res.Name)
}

func TestSelectBest_NoAvailableCandidates(t *testing.T) {
	table, y := stubTable(6)

	_, err := selectBest([]Candidate{{Name: "phantom"}}, table, y, accuracy, 2)

	assert.ErrorIs(t, err, domain.ErrTrainingFailed)
}

func TestEnumerate_DeterministicCartesianProduct(t *testing.T) {
	space := map[string][]int{"trees": {100, 300}, "max_depth": {0, 10}}

	got := enumerate(space)

	assert.Len(t, got, 4)
	assert.Equal(t, Params{"max_depth": 0, "trees": 100}, got[0])
	assert.Equal(t, Params{"max_depth": 10, "trees": 300}, got[3])
}

func TestEnumerate_EmptySpaceYieldsSingleAssignment(t *testing.T) {
	got := enumerate(nil)
	assert.Equal(t, []Params{{}}, got)
}

func TestFoldIndices_CoversEveryRowOnce(t *testing.T) {
	folds := foldIndices(10, 3)

	seen := map[int]bool{}
	for _, fold := range folds {
		for _, idx := range fold {
			assert.False(t, seen[idx])
			seen[idx] = true
		}
	}
	assert.Len(t, seen, 10)

	again := foldIndices(10, 3)
	assert.Equal(t, folds, again)
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0.75, accuracy([]int{0, 1, 2, 1}, []int{0, 1, 1, 1}, 3))
	assert.Equal(t, 0.0, accuracy(nil, nil, 3))
}

func TestF1Macro(t *testing.T) {
	assert.Equal(t, 1.0, f1Macro([]int{0, 1, 2}, []int{0, 1, 2}, 3))

	// A class absent from truth and prediction contributes zero.
	assert.InDelta(t, 2.0/3.0, f1Macro([]int{0, 0, 1, 1}, []int{0, 0, 1, 1}, 3), 1e-9)
}

func TestEncodeLabels(t *testing.T) {
	y := encodeLabels([]domain.RiskLevel{domain.RiskHigh, domain.RiskLow, domain.RiskMedium})
	assert.Equal(t, []int{2, 0, 1}, y)
}
