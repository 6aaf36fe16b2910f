package patient

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/psqlbuilder"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/txmanager"
)

// ProfileUpdate набор обновляемых полей профиля пациента (nil - не трогать)
type ProfileUpdate struct {
	Name           *string
	WeightKg       *float64
	HeightCm       *float64
	Phone          *string
	Email          *string
	Address        *string
	MedicalHistory *string
}

// Repository репозиторий для работы с пациентами
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория пациентов
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetByID получает пациента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"date_of_birth",
		"weight_kg",
		"height_cm",
		"gender",
		"phone",
		"email",
		"address",
		"medical_history",
		"created_at",
		"updated_at",
	).
		From("patients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Patient
	var weightKg, heightCm sql.NullFloat64
	var gender, phone, email, address, medicalHistory sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Name,
		&p.DateOfBirth,
		&weightKg,
		&heightCm,
		&gender,
		&phone,
		&email,
		&address,
		&medicalHistory,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan patient: %v", ErrScanRow, err)
	}

	if weightKg.Valid {
		p.WeightKg = &weightKg.Float64
	}
	if heightCm.Valid {
		p.HeightCm = &heightCm.Float64
	}
	p.Gender = gender.String
	p.Phone = phone.String
	p.Email = email.String
	p.Address = address.String
	p.MedicalHistory = medicalHistory.String
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// UpdateProfile обновляет непустые поля профиля пациента
func (r *Repository) UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("patients").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	fields := 0
	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
		fields++
	}
	if update.WeightKg != nil {
		updateBuilder = updateBuilder.Set("weight_kg", *update.WeightKg)
		fields++
	}
	if update.HeightCm != nil {
		updateBuilder = updateBuilder.Set("height_cm", *update.HeightCm)
		fields++
	}
	if update.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", *update.Phone)
		fields++
	}
	if update.Email != nil {
		updateBuilder = updateBuilder.Set("email", *update.Email)
		fields++
	}
	if update.Address != nil {
		updateBuilder = updateBuilder.Set("address", *update.Address)
		fields++
	}
	if update.MedicalHistory != nil {
		updateBuilder = updateBuilder.Set("medical_history", *update.MedicalHistory)
		fields++
	}

	if fields == 0 {
		return ErrNoFieldsToUpdate
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPatientNotFound
	}

	return nil
}
