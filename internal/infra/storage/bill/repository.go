package bill

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/psqlbuilder"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/txmanager"
)

// Repository репозиторий для работы со счетами
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория счетов
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create создает счёт. Счёт всегда создается со статусом pending.
// При бронировании приёма вызывается в одной транзакции со вставкой приёма:
// приём без счёта (и счёт без приёма) существовать не должны.
func (r *Repository) Create(ctx context.Context, b *domain.Bill) (*domain.Bill, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bills").
		Columns(
			"patient_id",
			"bill_type",
			"amount",
			"bill_date",
			"payment_status",
		).
		Values(
			b.PatientID,
			b.Type,
			b.Amount,
			b.Date,
			domain.PaymentStatusPending,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.PaymentStatus = domain.PaymentStatusPending
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает счёт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Bill, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"patient_id",
		"bill_type",
		"amount",
		"bill_date",
		"payment_status",
		"created_at",
		"updated_at",
	).
		From("bills").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Bill
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.PatientID,
		&b.Type,
		&b.Amount,
		&b.Date,
		&b.PaymentStatus,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBillNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan bill: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// GetByPatientID возвращает счета пациента, новые первыми.
// Опционально фильтрует по статусу оплаты.
func (r *Repository) GetByPatientID(ctx context.Context, patientID int64, status *domain.PaymentStatus) ([]*domain.Bill, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"patient_id",
		"bill_type",
		"amount",
		"bill_date",
		"payment_status",
		"created_at",
		"updated_at",
	).
		From("bills").
		Where(squirrel.Eq{"patient_id": patientID}).
		OrderBy("bill_date DESC", "id DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"payment_status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPatientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPatientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bills := make([]*domain.Bill, 0)
	for rows.Next() {
		var b domain.Bill
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.PatientID,
			&b.Type,
			&b.Amount,
			&b.Date,
			&b.PaymentStatus,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByPatientID - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bills = append(bills, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByPatientID - rows error: %v", ErrScanRow, err)
	}

	return bills, nil
}

// MarkPaid переводит счёт из pending в paid
func (r *Repository) MarkPaid(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bills").
		Set("payment_status", domain.PaymentStatusPaid).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"payment_status": domain.PaymentStatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBillNotFound
	}

	return nil
}
