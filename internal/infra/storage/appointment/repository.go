package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/psqlbuilder"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/txmanager"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/types"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = "23505"

// Repository репозиторий для работы с приёмами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория приёмов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись о приёме.
// Вызывается только из транзакции бронирования: проверка занятости слота и
// вставка должны быть атомарны. Конкурирующая вставка той же тройки
// (врач, дата, слот) падает на уникальном ограничении и транслируется
// в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"patient_id",
			"doctor_id",
			"appointment_date",
			"start_time",
			"purpose",
		).
		Values(
			appt.PatientID,
			appt.DoctorID,
			appt.Date,
			appt.StartTime,
			appt.Purpose,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает приём по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"patient_id",
		"doctor_id",
		"appointment_date",
		"start_time",
		"purpose",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&appt.PatientID,
		&appt.DoctorID,
		&appt.Date,
		&appt.StartTime,
		&appt.Purpose,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// GetOccupiedSlots возвращает занятые слоты врача на дату в порядке возрастания.
// Внутри транзакции читает с FOR UPDATE: повторная проверка занятости перед
// вставкой должна блокировать конкурирующее бронирование той же даты.
func (r *Repository) GetOccupiedSlots(ctx context.Context, doctorID int64, date time.Time) ([]types.TimeString, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("start_time").
		From("appointments").
		Where(squirrel.Eq{"doctor_id": doctorID}).
		Where(squirrel.Eq{"appointment_date": domain.DateOnly(date)}).
		OrderBy("start_time ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]types.TimeString, 0)
	for rows.Next() {
		var slot types.TimeString
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: GetOccupiedSlots - scan start_time: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByDoctorID возвращает приёмы врача вместе с данными пациентов,
// отсортированные по дате и времени
func (r *Repository) GetByDoctorID(ctx context.Context, doctorID int64) ([]*domain.AppointmentWithPatient, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"a.id",
		"a.patient_id",
		"a.doctor_id",
		"a.appointment_date",
		"a.start_time",
		"a.purpose",
		"a.created_at",
		"a.updated_at",
		"p.name",
		"p.date_of_birth",
		"p.gender",
	).
		From("appointments a").
		Join("patients p ON p.id = a.patient_id").
		Where(squirrel.Eq{"a.doctor_id": doctorID}).
		OrderBy("a.appointment_date ASC", "a.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.AppointmentWithPatient, 0)
	for rows.Next() {
		var appt domain.AppointmentWithPatient
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.PatientID,
			&appt.DoctorID,
			&appt.Date,
			&appt.StartTime,
			&appt.Purpose,
			&createdAt,
			&updatedAt,
			&appt.PatientName,
			&appt.PatientDOB,
			&appt.PatientGender,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDoctorID - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorID - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// GetByPatientID возвращает приёмы пациента, отсортированные по дате и времени
func (r *Repository) GetByPatientID(ctx context.Context, patientID int64) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"patient_id",
		"doctor_id",
		"appointment_date",
		"start_time",
		"purpose",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{"patient_id": patientID}).
		OrderBy("appointment_date ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPatientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPatientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.PatientID,
			&appt.DoctorID,
			&appt.Date,
			&appt.StartTime,
			&appt.Purpose,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByPatientID - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByPatientID - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// Delete удаляет приём. Используется при начале лечения: слот
// (врач, дата, время) после удаления снова становится свободным.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
