package doctor

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/psqlbuilder"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/txmanager"
)

// ProfileUpdate набор обновляемых полей профиля врача.
// Поля с nil не трогаются. Обновление собирается только из этого набора -
// имя колонки никогда не приходит от пользователя.
type ProfileUpdate struct {
	Name              *string
	Gender            *string
	Specialization    *string
	Phone             *string
	Email             *string
	Address           *string
	AppointmentCost   *float64
	YearsOfExperience *int
}

// Repository репозиторий для работы с врачами
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория врачей
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

var doctorColumns = []string{
	"id",
	"name",
	"date_of_birth",
	"gender",
	"specialization",
	"phone",
	"email",
	"address",
	"appointment_cost",
	"years_of_experience",
	"work_status",
	"created_at",
	"updated_at",
}

// GetByID получает врача по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	doc, err := scanDoctor(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan doctor: %v", ErrScanRow, err)
	}

	return doc, nil
}

// List возвращает врачей по фильтру, отсортированных по имени
func (r *Repository) List(ctx context.Context, filter domain.DoctorsFilter) ([]*domain.Doctor, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		OrderBy("name ASC")

	if filter.Specialization != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"specialization": *filter.Specialization})
	}
	if filter.WorkStatus != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"work_status": *filter.WorkStatus})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	doctors := make([]*domain.Doctor, 0)
	for rows.Next() {
		doc, err := scanDoctor(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		doctors = append(doctors, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return doctors, nil
}

// UpdateProfile обновляет непустые поля профиля врача
func (r *Repository) UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("doctors").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	fields := 0
	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
		fields++
	}
	if update.Gender != nil {
		updateBuilder = updateBuilder.Set("gender", *update.Gender)
		fields++
	}
	if update.Specialization != nil {
		updateBuilder = updateBuilder.Set("specialization", *update.Specialization)
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
	if update.AppointmentCost != nil {
		updateBuilder = updateBuilder.Set("appointment_cost", *update.AppointmentCost)
		fields++
	}
	if update.YearsOfExperience != nil {
		updateBuilder = updateBuilder.Set("years_of_experience", *update.YearsOfExperience)
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
		return ErrDoctorNotFound
	}

	return nil
}

// UpdateWorkStatus меняет рабочий статус врача.
// Вызывается при одобрении отпуска в той же транзакции, что и смена
// статуса заявки.
func (r *Repository) UpdateWorkStatus(ctx context.Context, id int64, status domain.DoctorStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("doctors").
		Set("work_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateWorkStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDoctorNotFound
	}

	return nil
}

func scanDoctor(scan func(dest ...interface{}) error) (*domain.Doctor, error) {
	var doc domain.Doctor
	var dob sql.NullTime
	var gender, phone, email, address sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&doc.ID,
		&doc.Name,
		&dob,
		&gender,
		&doc.Specialization,
		&phone,
		&email,
		&address,
		&doc.AppointmentCost,
		&doc.YearsOfExperience,
		&doc.WorkStatus,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if dob.Valid {
		doc.DateOfBirth = &dob.Time
	}
	doc.Gender = gender.String
	doc.Phone = phone.String
	doc.Email = email.String
	doc.Address = address.String
	doc.CreatedAt = createdAt.Time
	doc.UpdatedAt = updatedAt.Time

	return &doc, nil
}
