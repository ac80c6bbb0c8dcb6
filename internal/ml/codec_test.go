package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fittedPipeline(t *testing.T, clf Learner) (*Pipeline, *Table) {
	t.Helper()

	table := &Table{
		Columns: []string{"amount", "category"},
		Rows: []Row{
			{"amount": 10.0, "category": "a"},
			{"amount": 20.0, "category": "a"},
			{"amount": 2000.0, "category": "b"},
			{"amount": 3000.0, "category": "b"},
			{"amount": 20000.0, "category": "c"},
			{"amount": 30000.0, "category": "c"},
		},
	}
	y := []int{0, 0, 1, 1, 2, 2}

	pre := NewPreprocessor(table)
	assert.NoError(t, clf.Fit(pre.TransformTable(table), y, 3))

	return &Pipeline{Pre: pre, Clf: clf, Classes: classLabels()}, table
}

func TestSerializeDeserialize_KNNRoundTrip(t *testing.T) {
	p, table := fittedPipeline(t, &KNN{K: 1})

	blob, err := Serialize(p)
	assert.NoError(t, err)
	assert.NotEmpty(t, blob)

	restored, err := Deserialize(blob)
	assert.NoError(t, err)

	for _, row := range table.Rows {
		want, err := p.PredictRow(row)
		assert.NoError(t, err)
		got, err := restored.PredictRow(row)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSerializeDeserialize_ForestRoundTrip(t *testing.T) {
	p, table := fittedPipeline(t, NewForest(50, 10, false))

	blob, err := Serialize(p)
	assert.NoError(t, err)

	restored, err := Deserialize(blob)
	assert.NoError(t, err)

	for _, row := range table.Rows {
		want, err := p.PredictRow(row)
		assert.NoError(t, err)
		got, err := restored.PredictRow(row)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDeserialize_EmptyBlob(t *testing.T) {
	_, err := Deserialize(nil)
	assert.Error(t, err)

	_, err = Deserialize([]byte{})
	assert.Error(t, err)
}

func TestDeserialize_CorruptBlob(t *testing.T) {
	_, err := Deserialize([]byte("not a gob stream"))
	assert.Error(t, err)
}

func TestDeserialize_MissingPipelineState(t *testing.T) {
	blob, err := Serialize(&Pipeline{})
	assert.NoError(t, err)

	_, err = Deserialize(blob)
	assert.ErrorContains(t, err, "missing pipeline state")
}
