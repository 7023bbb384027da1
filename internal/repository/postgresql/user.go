package postgresql

import (
	"context"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/user"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, tenant_id, role, employee_code, name, phone, email,
	password_hash, is_verified, is_active, created_by, updated_by, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.TenantID,
		&u.Role,
		&u.EmployeeCode,
		&u.Name,
		&u.Phone,
		&u.Email,
		&u.PasswordHash,
		&u.IsVerified,
		&u.IsActive,
		&u.CreatedBy,
		&u.UpdatedBy,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (tenant_id, role, employee_code, name, phone, email,
			password_hash, is_verified, is_active, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query,
		newUser.TenantID,
		newUser.Role,
		newUser.EmployeeCode,
		newUser.Name,
		newUser.Phone,
		newUser.Email,
		newUser.PasswordHash,
		newUser.IsVerified,
		newUser.IsActive,
		newUser.CreatedBy,
		newUser.UpdatedBy,
	))
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND tenant_id = $2`
	return scanUser(q.QueryRow(ctx, query, id, tenantID))
}

// GetByUserID implements user.UserRepository.
func (r *userRepositoryImpl) GetByUserID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByEmployeeCode implements user.UserRepository. The employee code is
// globally unique because it carries the tenant code prefix.
func (r *userRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE employee_code = $1`
	return scanUser(q.QueryRow(ctx, query, employeeCode))
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, tenantID, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE tenant_id = $1 AND email = $2`
	return scanUser(q.QueryRow(ctx, query, tenantID, email))
}

// GetByTenantID implements user.UserRepository.
func (r *userRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE tenant_id = $1 ORDER BY employee_code`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// HasAny implements user.UserRepository.
func (r *userRepositoryImpl) HasAny(ctx context.Context) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users)`).Scan(&exists)
	return exists, err
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash, updatedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, updated_by = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := q.Exec(ctx, query, passwordHash, updatedBy, userID)
	return err
}

// UpdateRole implements user.UserRepository.
func (r *userRepositoryImpl) UpdateRole(ctx context.Context, userID, tenantID string, role user.Role, updatedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET role = $1, updated_by = $2, updated_at = NOW()
		WHERE id = $3 AND tenant_id = $4
	`
	tag, err := q.Exec(ctx, query, role, updatedBy, userID, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
