package credential

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/psqlbuilder"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/txmanager"
)

// Repository репозиторий для работы с учетными записями
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория учетных записей
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает учетную запись по ID пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Credential, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"user_id",
		"password",
		"user_type",
	).
		From("credentials").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var cred domain.Credential
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cred.UserID,
		&cred.Password,
		&cred.UserType,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCredentialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan credential: %v", ErrScanRow, err)
	}

	return &cred, nil
}

// Create создает учетную запись и возвращает выданный user_id
func (r *Repository) Create(ctx context.Context, credential *domain.Credential) (*domain.Credential, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("credentials").
		Columns("password", "user_type").
		Values(credential.Password, credential.UserType).
		Suffix("RETURNING user_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *credential
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - insert credential: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// UpdatePassword меняет пароль учетной записи
func (r *Repository) UpdatePassword(ctx context.Context, userID int64, password string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("credentials").
		Set("password", password).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePassword - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePassword - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePassword - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}
