package order

import (
	"context"
	"database/sql"
	"errors"

	"dapuribu-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	ListAll(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID uint) ([]Order, error)
	GetByID(ctx context.Context, id int64) (Order, error)
	CreateTx(ctx context.Context, o Order, items []OrderItem) (Order, error)
	FetchItems(ctx context.Context, orderID int64) ([]OrderItem, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus string) error
	UpdateCustomer(ctx context.Context, id int64, userID uint, upd CustomerUpdate) error
	Cancel(ctx context.Context, id int64, userID uint) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, user_id, customer_name, customer_phone, customer_address,
	total_amount, event_date, order_date, status, payment_status, notes`

func scanOrder(row interface{ Scan(...any) error }) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.CustomerName, &o.CustomerPhone, &o.CustomerAddress,
		&o.TotalAmount, &o.EventDate, &o.OrderDate, &o.Status, &o.PaymentStatus, &o.Notes,
	)
	return o, err
}

func (r *repository) queryOrders(ctx context.Context, query string, args ...any) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *repository) ListAll(ctx context.Context) ([]Order, error) {
	return r.queryOrders(ctx,
		"SELECT "+orderColumns+" FROM orders ORDER BY order_date DESC")
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]Order, error) {
	return r.queryOrders(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY order_date DESC", userID)
}

func (r *repository) GetByID(ctx context.Context, id int64) (Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrOrderNotFound
	}
	return o, err
}

// CreateTx writes the order row and all item rows in one transaction,
// so a failed item insert never leaves a headless order behind.
func (r *repository) CreateTx(ctx context.Context, o Order, items []OrderItem) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.Uint("user_id", o.UserID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return Order{}, err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, customer_name, customer_phone, customer_address,
			total_amount, event_date, status, payment_status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, order_date
	`,
		o.UserID, o.CustomerName, o.CustomerPhone, o.CustomerAddress,
		o.TotalAmount, o.EventDate, o.Status, o.PaymentStatus, o.Notes,
	).Scan(&o.ID, &o.OrderDate)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return Order{}, err
	}

	for i := range items {
		items[i].OrderID = o.ID
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, menu_id, menu_name, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			o.ID, items[i].MenuID, items[i].MenuName,
			items[i].Quantity, items[i].UnitPrice, items[i].Subtotal,
		)
		if err != nil {
			log.Error("failed to insert order item", zap.Error(err),
				zap.Int64("menu_id", items[i].MenuID))
			return Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order", zap.Error(err))
		return Order{}, err
	}

	log.Info("order created", zap.Int64("order_id", o.ID),
		zap.Float64("total_amount", o.TotalAmount))
	return o, nil
}

// FetchItems joins menus for the current category; a deleted menu
// degrades to a placeholder name instead of dropping the row. Zero
// rows is a valid empty result.
func (r *repository) FetchItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.menu_id,
			COALESCE(NULLIF(oi.menu_name, ''), m.name, 'Unknown Item'),
			oi.quantity, oi.unit_price, oi.subtotal
		FROM order_items oi
		LEFT JOIN menus m ON m.id = oi.menu_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []OrderItem{}
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.MenuID, &it.MenuName,
			&it.Quantity, &it.UnitPrice, &it.Subtotal,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateStatus also settles payment when an order completes.
func (r *repository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := "UPDATE orders SET status = $1 WHERE id = $2"
	if status == StatusCompleted {
		query = "UPDATE orders SET status = $1, payment_status = 'paid' WHERE id = $2"
	}

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET payment_status = $1 WHERE id = $2", paymentStatus, id)
	if err != nil {
		return err
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// UpdateCustomer patches only the provided fields, scoped to the owner.
func (r *repository) UpdateCustomer(ctx context.Context, id int64, userID uint, upd CustomerUpdate) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET customer_name = COALESCE($1, customer_name),
		    customer_phone = COALESCE($2, customer_phone),
		    customer_address = COALESCE($3, customer_address),
		    event_date = COALESCE($4, event_date),
		    notes = COALESCE($5, notes)
		WHERE id = $6 AND user_id = $7
	`, upd.Name, upd.Phone, upd.Address, upd.EventDate, upd.Notes, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrPermissionDenied
	}
	return nil
}

func (r *repository) Cancel(ctx context.Context, id int64, userID uint) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = 'cancelled' WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrPermissionDenied
	}
	return nil
}

// Delete removes items first, then the order. An order that exists but
// deletes zero rows was blocked by policy, which is reported apart from
// plain not-found so the caller can say why nothing happened.
func (r *repository) Delete(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DeleteOrder"),
		zap.Int64("order_id", id),
	)

	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrOrderNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM order_items WHERE order_id = $1", id); err != nil {
		log.Error("failed to delete order items", zap.Error(err))
		return err
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete order", zap.Error(err))
		return err
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrPermissionDenied
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info("order deleted")
	return nil
}
