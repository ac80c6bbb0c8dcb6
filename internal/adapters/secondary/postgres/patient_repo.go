package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"triage-risk-service/internal/core/domain"
	"triage-risk-service/internal/core/ports/output"
)

type patientRepo struct {
	pool *pgxpool.Pool
}

func NewPatientRepository(pool *pgxpool.Pool) ports.PatientRepository {
	return &patientRepo{pool: pool}
}

func (r *patientRepo) Create(ctx context.Context, patient *domain.Patient) error {
	query := `
		INSERT INTO patient (id, created_at, name, age, sex)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.pool.Exec(ctx, query,
		patient.ID, patient.CreatedAt, patient.Name, patient.Age, string(patient.Sex),
	); err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	return nil
}

func (r *patientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	query := `SELECT id, created_at, name, age, sex FROM patient WHERE id = $1`
	p, err := scanPatient(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient by id: %w", err)
	}
	return p, nil
}

func (r *patientRepo) Update(ctx context.Context, patient *domain.Patient) error {
	query := `UPDATE patient SET name = $1, age = $2, sex = $3 WHERE id = $4`
	result, err := r.pool.Exec(ctx, query, patient.Name, patient.Age, string(patient.Sex), patient.ID)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func (r *patientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func (r *patientRepo) List(ctx context.Context, limit int) ([]*domain.Patient, error) {
	query := `
		SELECT id, created_at, name, age, sex
		FROM patient
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var patients []*domain.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan patient row: %w", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patient rows: %w", err)
	}
	return patients, nil
}

func scanPatient(row pgx.Row) (*domain.Patient, error) {
	p := &domain.Patient{}
	var sex string
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.Name, &p.Age, &sex); err != nil {
		return nil, err
	}
	p.Sex = domain.Sex(sex)
	return p, nil
}
