package medicine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/psqlbuilder"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/txmanager"
)

// Repository репозиторий для работы с каталогом лекарств
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория лекарств
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

var medicineColumns = []string{
	"id",
	"name",
	"cost",
	"medical_use",
	"created_at",
	"updated_at",
}

// List возвращает весь каталог лекарств, отсортированный по названию
func (r *Repository) List(ctx context.Context) ([]*domain.Medicine, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(medicineColumns...).
		From("medicines").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	medicines := make([]*domain.Medicine, 0)
	for rows.Next() {
		med, err := scanMedicine(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		medicines = append(medicines, med)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return medicines, nil
}

// GetByID получает лекарство по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Medicine, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(medicineColumns...).
		From("medicines").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	med, err := scanMedicine(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrMedicineNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan medicine: %v", ErrScanRow, err)
	}

	return med, nil
}

// GetByIDs получает набор лекарств по списку ID.
// Результат может быть короче запроса - отсутствующие ID проверяет
// вызывающий слой.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Medicine, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if len(ids) == 0 {
		return []*domain.Medicine{}, nil
	}

	query, args, err := psqlbuilder.Select(medicineColumns...).
		From("medicines").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	medicines := make([]*domain.Medicine, 0, len(ids))
	for rows.Next() {
		med, err := scanMedicine(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}
		medicines = append(medicines, med)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return medicines, nil
}

func scanMedicine(scan func(dest ...interface{}) error) (*domain.Medicine, error) {
	var med domain.Medicine
	var medicalUse sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&med.ID,
		&med.Name,
		&med.Cost,
		&medicalUse,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	med.MedicalUse = medicalUse.String
	med.CreatedAt = createdAt.Time
	med.UpdatedAt = updatedAt.Time

	return &med, nil
}
