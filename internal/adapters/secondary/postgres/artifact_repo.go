package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"triage-risk-service/internal/core/domain"
	"triage-risk-service/internal/core/ports/output"
)

type modelArtifactRepo struct {
	pool *pgxpool.Pool
}

func NewModelArtifactRepository(pool *pgxpool.Pool) ports.ModelArtifactRepository {
	return &modelArtifactRepo{pool: pool}
}

// SaveAsActive deactivates the previous active artifact and inserts the new
// one as active inside a single transaction. A concurrent reader sees either
// the old active row or the new one, never both and never neither.
func (r *modelArtifactRepo) SaveAsActive(ctx context.Context, artifact *domain.ModelArtifact) error {
	metricsJSON, err := json.Marshal(artifact.Metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin activation: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE model_artifact SET active = FALSE WHERE active`); err != nil {
		return fmt.Errorf("deactivate previous artifact: %w", err)
	}

	query := `
		INSERT INTO model_artifact (id, created_at, name, metrics, artifact, active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.Exec(ctx, query,
		artifact.ID, artifact.CreatedAt, artifact.Name,
		metricsJSON, artifact.Artifact, artifact.Active,
	); err != nil {
		return fmt.Errorf("insert artifact: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit activation: %w", err)
	}
	return nil
}

func (r *modelArtifactRepo) GetActive(ctx context.Context) (*domain.ModelArtifact, error) {
	query := `
		SELECT id, created_at, name, metrics, artifact, active
		FROM model_artifact
		WHERE active
		ORDER BY created_at DESC
		LIMIT 1
	`
	artifact, err := scanArtifact(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoActiveModel
		}
		return nil, fmt.Errorf("get active artifact: %w", err)
	}
	return artifact, nil
}

func (r *modelArtifactRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelArtifact, error) {
	query := `
		SELECT id, created_at, name, metrics, artifact, active
		FROM model_artifact
		WHERE id = $1
	`
	artifact, err := scanArtifact(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("get artifact by id: %w", err)
	}
	return artifact, nil
}

func (r *modelArtifactRepo) List(ctx context.Context) ([]*domain.ModelArtifact, error) {
	query := `
		SELECT id, created_at, name, metrics, artifact, active
		FROM model_artifact
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []*domain.ModelArtifact
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artifact row: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artifact rows: %w", err)
	}
	return artifacts, nil
}

func scanArtifact(row pgx.Row) (*domain.ModelArtifact, error) {
	a := &domain.ModelArtifact{}
	var metricsJSON []byte

	err := row.Scan(&a.ID, &a.CreatedAt, &a.Name, &metricsJSON, &a.Artifact, &a.Active)
	if err != nil {
		return nil, err
	}

	if len(metricsJSON) > 0 {
		if err := json.Unmarshal(metricsJSON, &a.Metrics); err != nil {
			return nil, fmt.Errorf("unmarshal metrics: %w", err)
		}
	}
	return a, nil
}
