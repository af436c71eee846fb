package auth

import (
	"context"
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const getUserWithRolesQuery = `
	SELECT u.user_id, u.employee_id, u.email, u.password_hash, r.role_name
	FROM users u
	JOIN user_roles ur ON u.user_id = ur.user_id
	JOIN roles r ON ur.role_id = r.role_id
	WHERE u.email = $1
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetUserWithRolesByEmail(ctx context.Context, email string) ([]UserRole, error) {
	rows, err := r.db.QueryContext(ctx, getUserWithRolesQuery, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]UserRole, 0)
	for rows.Next() {
		var ur UserRole
		if err := rows.Scan(&ur.UserID, &ur.EmployeeID, &ur.Email, &ur.PasswordHash, &ur.RoleName); err != nil {
			return nil, err
		}
		records = append(records, ur)
	}
	return records, rows.Err()
}
