package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/psqlbuilder"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/txmanager"
)

// Filter фильтр для выборки палат
type Filter struct {
	RoomType      *string // nil - все типы
	OnlyAvailable bool
}

// Repository репозиторий для работы с палатами
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория палат
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

var roomColumns = []string{
	"id",
	"room_type",
	"availability_status",
	"cost",
	"created_at",
	"updated_at",
}

// GetByID получает палату по ID.
// Внутри транзакции читает с FOR UPDATE: бронирование палаты проверяет
// статус и занимает её атомарно.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	rm, err := scanRoom(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return rm, nil
}

// List возвращает палаты по фильтру
func (r *Repository) List(ctx context.Context, filter Filter) ([]*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("room_type ASC", "id ASC")

	if filter.RoomType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_type": *filter.RoomType})
	}
	if filter.OnlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"availability_status": domain.RoomStatusAvailable})
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

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		rm, err := scanRoom(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, rm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// SetStatus меняет статус доступности палаты
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("availability_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

func scanRoom(scan func(dest ...interface{}) error) (*domain.Room, error) {
	var rm domain.Room
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&rm.ID,
		&rm.RoomType,
		&rm.AvailabilityStatus,
		&rm.Cost,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rm.CreatedAt = createdAt.Time
	rm.UpdatedAt = updatedAt.Time

	return &rm, nil
}
