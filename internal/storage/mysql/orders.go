package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"jewelry-crm/internal/storage"
)

const orderColumns = `o.order_id, o.customer_id, o.user_id, o.order_status, o.product_type, o.order_type, o.material,
	o.template_image, o.ring_size, o.thickness, o.width, o.stone_size, o.desired_weight,
	o.budget, o.estimated_price, o.final_price, o.price_confirmed, o.required_by, o.comment,
	o.created_at, o.updated_at`

func scanOrder(row rowScanner) (storage.Order, error) {
	var (
		o                                   storage.Order
		customerID, workerID                sql.NullInt64
		productType, orderType, material    sql.NullString
		templateImage, ringSize, comment    sql.NullString
		thickness, width, stoneSize, weight decimal.NullDecimal
		budget, estimatedPrice, finalPrice  decimal.NullDecimal
		requiredBy                          sql.NullTime
	)

	err := row.Scan(
		&o.ID, &customerID, &workerID, &o.Status, &productType, &orderType, &material,
		&templateImage, &ringSize, &thickness, &width, &stoneSize, &weight,
		&budget, &estimatedPrice, &finalPrice, &o.PriceConfirmed, &requiredBy, &comment,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return storage.Order{}, err
	}

	o.CustomerID = int64Ptr(customerID)
	o.WorkerID = int64Ptr(workerID)
	o.ProductType = storage.ProductType(productType.String)
	o.OrderType = storage.OrderType(orderType.String)
	o.Material = material.String
	o.TemplateImage = stringPtr(templateImage)
	o.RingSize = stringPtr(ringSize)
	o.Thickness = decimalPtr(thickness)
	o.Width = decimalPtr(width)
	o.StoneSize = decimalPtr(stoneSize)
	o.DesiredWeight = decimalPtr(weight)
	o.Budget = decimalPtr(budget)
	o.EstimatedPrice = decimalPtr(estimatedPrice)
	o.FinalPrice = decimalPtr(finalPrice)
	o.Comment = comment.String
	if requiredBy.Valid {
		t := requiredBy.Time
		o.RequiredBy = &t
	}

	return o, nil
}

func (s *Storage) GetOrderByID(ctx context.Context, id int64) (*storage.Order, error) {
	const op = "storage.mysql.GetOrderByID"

	query := `SELECT ` + orderColumns + ` FROM orders o WHERE o.order_id = ?`

	order, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("%s: ошибка получения заказа id=%d: %w", op, id, err)
	}

	return &order, nil
}

// GetOrdersByPeriod: заказы с created_at в полуинтервале [from, until).
func (s *Storage) GetOrdersByPeriod(ctx context.Context, from, until time.Time) ([]storage.Order, error) {
	const op = "storage.mysql.GetOrdersByPeriod"

	query := `SELECT ` + orderColumns + ` FROM orders o
		WHERE o.created_at >= ? AND o.created_at < ?
		ORDER BY o.created_at, o.order_id`

	rows, err := s.db.QueryContext(ctx, query, from, until)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения заказов за период: %w", op, err)
	}
	defer rows.Close()

	var orders []storage.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования заказа: %w", op, err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

func (s *Storage) UpdateOrderPricing(ctx context.Context, order storage.Order) error {
	const op = "storage.mysql.UpdateOrderPricing"

	stmt := `UPDATE orders SET estimated_price = ?, final_price = ?, price_confirmed = ?, updated_at = NOW()
		WHERE order_id = ?`

	_, err := s.db.ExecContext(ctx, stmt,
		nullDecimal(order.EstimatedPrice), nullDecimal(order.FinalPrice), order.PriceConfirmed, order.ID)
	if err != nil {
		return fmt.Errorf("%s: ошибка обновления цены заказа id=%d: %w", op, order.ID, err)
	}

	return nil
}

func (s *Storage) CreateOrder(ctx context.Context, order storage.Order) (int64, error) {
	const op = "storage.mysql.CreateOrder"

	stmt := `INSERT INTO orders (customer_id, order_status, product_type, order_type, material, ring_size,
		budget, estimated_price, comment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	updatedAt := order.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	res, err := s.db.ExecContext(ctx, stmt,
		nullInt64(order.CustomerID), order.Status, order.ProductType, order.OrderType, order.Material,
		nullString(order.RingSize), nullDecimal(order.Budget), nullDecimal(order.EstimatedPrice), order.Comment,
		createdAt, updatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: ошибка создания заказа: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: ошибка получения id заказа: %w", op, err)
	}

	return id, nil
}
