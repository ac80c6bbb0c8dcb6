package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"triage-risk-service/internal/core/domain"
	"triage-risk-service/internal/core/ports/output"
)

type predictionRepo struct {
	pool *pgxpool.Pool
}

func NewPredictionRepository(pool *pgxpool.Pool) ports.PredictionRepository {
	return &predictionRepo{pool: pool}
}

func (r *predictionRepo) Insert(ctx context.Context, prediction *domain.Prediction) error {
	inputJSON, err := json.Marshal(prediction.InputData)
	if err != nil {
		return fmt.Errorf("marshal input data: %w", err)
	}

	query := `
		INSERT INTO prediction (id, created_at, risk_level, input_data)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.pool.Exec(ctx, query,
		prediction.ID, prediction.CreatedAt, string(prediction.RiskLevel), inputJSON,
	); err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}
	return nil
}

func (r *predictionRepo) List(ctx context.Context, limit int) ([]*domain.Prediction, error) {
	query := `
		SELECT id, created_at, risk_level, input_data
		FROM prediction
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer rows.Close()

	var predictions []*domain.Prediction
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prediction row: %w", err)
		}
		predictions = append(predictions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prediction rows: %w", err)
	}
	return predictions, nil
}

func scanPrediction(row pgx.Row) (*domain.Prediction, error) {
	p := &domain.Prediction{}
	var riskLevel string
	var inputJSON []byte

	if err := row.Scan(&p.ID, &p.CreatedAt, &riskLevel, &inputJSON); err != nil {
		return nil, err
	}
	p.RiskLevel = domain.RiskLevel(riskLevel)

	if len(inputJSON) > 0 {
		if err := json.Unmarshal(inputJSON, &p.InputData); err != nil {
			return nil, fmt.Errorf("unmarshal input data: %w", err)
		}
	}
	return p, nil
}
