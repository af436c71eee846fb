package user

import (
	"context"
	"database/sql"

	"github.com/salesdist/sales-dist-backend/internal/database"
)

type PostgresRepository struct {
	db *sql.DB
}

const insertUserQuery = `
	INSERT INTO users
	(employee_id, name, dob, department, designation, salary,
	 date_of_join, contact_no, address, rdc_id, email, password_hash)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, u User) error {
	_, err := r.db.ExecContext(ctx, insertUserQuery,
		u.EmployeeID,
		u.Name,
		u.DOB,
		u.Department,
		u.Designation,
		u.Salary,
		u.DateOfJoin,
		u.ContactNo,
		u.Address,
		u.RDCID,
		u.Email,
		u.PasswordHash,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrEmailExists
		}
		return err
	}
	return nil
}
