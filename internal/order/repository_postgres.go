package order

import (
	"context"
	"database/sql"

	"github.com/salesdist/sales-dist-backend/internal/database"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders
		(retailer_id, rdc_id, estimated_delivery_date, order_status, created_by)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING order_id
	`
	insertOrderItemQuery = `
		INSERT INTO order_items
		(order_id, product_id, quantity, unit_price, total)
		VALUES ($1,$2,$3,$4,$5)
	`
	checkOrderExistsQuery = `SELECT order_id FROM orders WHERE order_id = $1`
	updateOrderQuery      = `
		UPDATE orders
		SET retailer_id = $1,
			rdc_id = $2,
			estimated_delivery_date = $3,
			order_status = $4,
			updated_date = now(),
			updated_by = $5
		WHERE order_id = $6
	`
	deleteOrderItemsQuery = `DELETE FROM order_items WHERE order_id = $1`

	selectOrderColumns = `
		SELECT o.order_id, o.retailer_id, o.rdc_id, o.estimated_delivery_date,
		       o.order_status, o.created_date, o.created_by, o.updated_date, o.updated_by
		FROM orders o
	`
	listOrdersQuery            = selectOrderColumns + ` ORDER BY o.created_date DESC`
	getOrderByIDQuery          = selectOrderColumns + ` WHERE o.order_id = $1`
	listOrdersByCreatedByQuery = selectOrderColumns + ` WHERE o.created_by = $1 ORDER BY o.created_date DESC`
	listOrdersByRetailerQuery  = selectOrderColumns + ` WHERE o.retailer_id = $1 ORDER BY o.created_date DESC`
	listOrdersByRDCQuery       = selectOrderColumns + ` WHERE o.rdc_id = $1 ORDER BY o.created_date DESC`

	listItemsByOrderQuery = `
		SELECT order_item_id, order_id, product_id, quantity, unit_price, total
		FROM order_items
		WHERE order_id = $1
		ORDER BY order_item_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the header and all items in one transaction. Any failure
// rolls the whole order back.
func (r *PostgresRepository) Create(ctx context.Context, ord Order, createdBy string) (int, error) {
	var orderID int

	err := database.WithTransaction(ctx, r.db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, insertOrderQuery,
			ord.RetailerID,
			ord.RegionalDistributionCenterID,
			ord.EstimatedDeliveryDate,
			ord.OrderStatus,
			createdBy,
		).Scan(&orderID)
		if err != nil {
			return err
		}

		return insertItems(ctx, tx, orderID, ord.Items)
	})
	if err != nil {
		return 0, err
	}

	return orderID, nil
}

// Update overwrites the header and replaces the item set inside one
// transaction. Replace-all avoids item-level diffing; item lists are small
// single-order baskets. Orders are never deleted elsewhere, so the existence
// check cannot race a delete.
func (r *PostgresRepository) Update(ctx context.Context, orderID int, ord Order, updatedBy string) error {
	return database.WithTransaction(ctx, r.db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		var existing int
		if err := tx.QueryRowContext(ctx, checkOrderExistsQuery, orderID).Scan(&existing); err != nil {
			if err == sql.ErrNoRows {
				return ErrNotFound
			}
			return err
		}

		if _, err := tx.ExecContext(ctx, updateOrderQuery,
			ord.RetailerID,
			ord.RegionalDistributionCenterID,
			ord.EstimatedDeliveryDate,
			ord.OrderStatus,
			updatedBy,
			orderID,
		); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, deleteOrderItemsQuery, orderID); err != nil {
			return err
		}

		return insertItems(ctx, tx, orderID, ord.Items)
	})
}

func insertItems(ctx context.Context, tx *sql.Tx, orderID int, items []OrderItem) error {
	for _, item := range items {
		total := item.Quantity.Mul(item.UnitPrice)
		if _, err := tx.ExecContext(ctx, insertOrderItemQuery,
			orderID,
			item.ProductID,
			item.Quantity,
			item.UnitPrice,
			total,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Order, error) {
	return r.listOrders(ctx, listOrdersQuery)
}

func (r *PostgresRepository) GetByID(ctx context.Context, orderID int) (Order, error) {
	var ord Order
	err := r.db.QueryRowContext(ctx, getOrderByIDQuery, orderID).Scan(
		&ord.OrderID,
		&ord.RetailerID,
		&ord.RegionalDistributionCenterID,
		&ord.EstimatedDeliveryDate,
		&ord.OrderStatus,
		&ord.CreatedDate,
		&ord.CreatedBy,
		&ord.UpdatedDate,
		&ord.UpdatedBy,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}

	items, err := r.listItems(ctx, ord.OrderID)
	if err != nil {
		return Order{}, err
	}
	ord.Items = items

	return ord, nil
}

func (r *PostgresRepository) ListByCreatedBy(ctx context.Context, createdBy string) ([]Order, error) {
	return r.listOrders(ctx, listOrdersByCreatedByQuery, createdBy)
}

func (r *PostgresRepository) ListByRetailerID(ctx context.Context, retailerID int) ([]Order, error) {
	return r.listOrders(ctx, listOrdersByRetailerQuery, retailerID)
}

func (r *PostgresRepository) ListByRDCID(ctx context.Context, rdcID int) ([]Order, error) {
	return r.listOrders(ctx, listOrdersByRDCQuery, rdcID)
}

func (r *PostgresRepository) listOrders(ctx context.Context, query string, args ...interface{}) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var ord Order
		if err := rows.Scan(
			&ord.OrderID,
			&ord.RetailerID,
			&ord.RegionalDistributionCenterID,
			&ord.EstimatedDeliveryDate,
			&ord.OrderStatus,
			&ord.CreatedDate,
			&ord.CreatedBy,
			&ord.UpdatedDate,
			&ord.UpdatedBy,
		); err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listItems(ctx, orders[i].OrderID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *PostgresRepository) listItems(ctx context.Context, orderID int) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, listItemsByOrderQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItem, 0)
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(
			&item.OrderItemID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.Total,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
