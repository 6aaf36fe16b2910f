package leave

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/psqlbuilder"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/txmanager"
)

// Repository репозиторий для работы с заявками на отпуск
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория заявок на отпуск
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

var leaveColumns = []string{
	"id",
	"doctor_id",
	"leave_date",
	"return_date",
	"days_count",
	"reason",
	"leave_status",
	"created_at",
	"updated_at",
}

// Create создает заявку на отпуск в статусе pending
func (r *Repository) Create(ctx context.Context, leave *domain.Leave) (*domain.Leave, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("leaves").
		Columns(
			"doctor_id",
			"leave_date",
			"return_date",
			"days_count",
			"reason",
			"leave_status",
		).
		Values(
			leave.DoctorID,
			leave.LeaveDate,
			leave.ReturnDate,
			leave.DaysCount,
			leave.Reason,
			domain.LeaveStatusPending,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *leave
	created.Status = domain.LeaveStatusPending

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - insert leave: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// GetByID получает заявку по ID.
// Внутри транзакции читает с FOR UPDATE: рассмотрение заявки проверяет
// статус и решает её судьбу атомарно.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Leave, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(leaveColumns...).
		From("leaves").
		Where(squirrel.Eq{"id": id})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	lv, err := scanLeave(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrLeaveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan leave: %v", ErrScanRow, err)
	}

	return lv, nil
}

// ListByStatus возвращает заявки в указанном статусе, старые первыми
func (r *Repository) ListByStatus(ctx context.Context, status domain.LeaveStatus) ([]*domain.Leave, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(leaveColumns...).
		From("leaves").
		Where(squirrel.Eq{"leave_status": status}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	leaves := make([]*domain.Leave, 0)
	for rows.Next() {
		lv, err := scanLeave(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByStatus - scan row: %v", ErrScanRow, err)
		}
		leaves = append(leaves, lv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - rows error: %v", ErrScanRow, err)
	}

	return leaves, nil
}

// ListByDoctorID возвращает заявки врача, новые первыми
func (r *Repository) ListByDoctorID(ctx context.Context, doctorID int64) ([]*domain.Leave, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(leaveColumns...).
		From("leaves").
		Where(squirrel.Eq{"doctor_id": doctorID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDoctorID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDoctorID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	leaves := make([]*domain.Leave, 0)
	for rows.Next() {
		lv, err := scanLeave(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDoctorID - scan row: %v", ErrScanRow, err)
		}
		leaves = append(leaves, lv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDoctorID - rows error: %v", ErrScanRow, err)
	}

	return leaves, nil
}

// UpdateStatus переводит заявку из pending в итоговый статус.
// Условие по leave_status в WHERE гарантирует, что уже рассмотренную
// заявку нельзя рассмотреть повторно.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.LeaveStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("leaves").
		Set("leave_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":           id,
			"leave_status": domain.LeaveStatusPending,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrLeaveAlreadyResolved
	}

	return nil
}

func scanLeave(scan func(dest ...interface{}) error) (*domain.Leave, error) {
	var lv domain.Leave
	var reason sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&lv.ID,
		&lv.DoctorID,
		&lv.LeaveDate,
		&lv.ReturnDate,
		&lv.DaysCount,
		&reason,
		&lv.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	lv.Reason = reason.String
	lv.CreatedAt = createdAt.Time
	lv.UpdatedAt = updatedAt.Time

	return &lv, nil
}
