package treatment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/psqlbuilder"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/txmanager"
)

// Repository репозиторий для работы с курсами лечения
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория курсов лечения
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create создает курс лечения
func (r *Repository) Create(ctx context.Context, treatment *domain.Treatment) (*domain.Treatment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("treatments").
		Columns(
			"patient_id",
			"doctor_id",
			"diagnosis",
			"treatment_plan",
			"medicines",
			"start_date",
			"end_date",
		).
		Values(
			treatment.PatientID,
			treatment.DoctorID,
			treatment.Diagnosis,
			treatment.TreatmentPlan,
			treatment.Medicines,
			treatment.StartDate,
			treatment.EndDate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *treatment

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - insert treatment: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// GetByPatientID возвращает курсы лечения пациента, новые первыми
func (r *Repository) GetByPatientID(ctx context.Context, patientID int64) ([]*domain.Treatment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"patient_id",
		"doctor_id",
		"diagnosis",
		"treatment_plan",
		"medicines",
		"start_date",
		"end_date",
		"created_at",
		"updated_at",
	).
		From("treatments").
		Where(squirrel.Eq{"patient_id": patientID}).
		OrderBy("start_date DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPatientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPatientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	treatments := make([]*domain.Treatment, 0)
	for rows.Next() {
		var tr domain.Treatment
		var plan, medicines sql.NullString
		var endDate sql.NullTime
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&tr.ID,
			&tr.PatientID,
			&tr.DoctorID,
			&tr.Diagnosis,
			&plan,
			&medicines,
			&tr.StartDate,
			&endDate,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByPatientID - scan row: %v", ErrScanRow, err)
		}

		tr.TreatmentPlan = plan.String
		tr.Medicines = medicines.String
		if endDate.Valid {
			tr.EndDate = &endDate.Time
		}
		tr.CreatedAt = createdAt.Time
		tr.UpdatedAt = updatedAt.Time

		treatments = append(treatments, &tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByPatientID - rows error: %v", ErrScanRow, err)
	}

	return treatments, nil
}
