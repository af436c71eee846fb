package product

import (
	"context"
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT product_id, product_name, unit_price, unit_of_measure
		FROM products
		ORDER BY product_name ASC
	`
	getProductByIDQuery = `
		SELECT product_id, product_name, unit_price, unit_of_measure
		FROM products
		WHERE product_id = $1
	`
	insertProductQuery = `
		INSERT INTO products (product_name, unit_price, unit_of_measure)
		VALUES ($1,$2,$3)
		RETURNING product_id
	`
	updateProductQuery = `
		UPDATE products
		SET product_name = $1,
			unit_price = $2,
			unit_of_measure = $3
		WHERE product_id = $4
	`
	deleteProductQuery = `DELETE FROM products WHERE product_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.UnitPrice, &p.UnitOfMeasure); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, getProductByIDQuery, id).
		Scan(&p.ProductID, &p.ProductName, &p.UnitPrice, &p.UnitOfMeasure)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p Product) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, insertProductQuery,
		p.ProductName, p.UnitPrice, p.UnitOfMeasure).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, p Product) error {
	res, err := r.db.ExecContext(ctx, updateProductQuery,
		p.ProductName, p.UnitPrice, p.UnitOfMeasure, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteProductQuery, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
