package ml

import "triage-risk-service/internal/core/domain"

// Row is one observation keyed by column name.
type Row map[string]any

// Table is an ordered tabular view of assembled rows. Column order is
// deterministic: flat record fields first, then feature-bag keys in
// first-seen order across the training set.
type Table struct {
	Columns []string
	Rows    []Row
}

// AssembleRow merges a flat record with its optional feature bag. The bag is
// merged after the flat fields, so a bag key that collides with a flat field
// overwrites it. That precedence is pinned by a test; do not flip it without
// retraining every stored artifact.
func AssembleRow(record Row, features map[string]any) Row {
	row := make(Row, len(record)+len(features))
	for k, v := range record {
		row[k] = v
	}
	for k, v := range features {
		row[k] = v
	}
	return row
}

// TransactionRow assembles a single inference input into a row with the
// same column naming the trainer used.
func TransactionRow(in domain.TransactionInput) Row {
	return AssembleRow(Row{"amount": in.Amount, "category": in.Category}, in.Features)
}

// BuildTrainingTable assembles the full feature table and the label vector.
// Rows align 1:1 and in order with the returned labels.
func BuildTrainingTable(records []domain.TrainingRecord) (*Table, []domain.RiskLevel) {
	columns := []string{"amount", "category"}
	seen := map[string]bool{"amount": true, "category": true}

	rows := make([]Row, 0, len(records))
	labels := make([]domain.RiskLevel, 0, len(records))
	for _, rec := range records {
		row := AssembleRow(Row{"amount": rec.Amount, "category": rec.Category}, rec.Features)
		for _, k := range sortedKeys(rec.Features) {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
		rows = append(rows, row)
		labels = append(labels, rec.Label)
	}

	return &Table{Columns: columns, Rows: rows}, labels
}

// subset returns a view of the table restricted to the given row indices,
// preserving order. Used to split cross-validation folds.
func (t *Table) subset(idx []int) *Table {
	rows := make([]Row, 0, len(idx))
	for _, i := range idx {
		rows = append(rows, t.Rows[i])
	}
	return &Table{Columns: t.Columns, Rows: rows}
}
