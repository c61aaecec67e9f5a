package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jewelry-crm/internal/storage"
)

func scanCustomer(row rowScanner) (storage.Customer, error) {
	var (
		c                           storage.Customer
		name, surname, phone, email sql.NullString
	)
	if err := row.Scan(&c.ID, &name, &surname, &phone, &email); err != nil {
		return storage.Customer{}, err
	}
	c.Name, c.Surname, c.Phone, c.Email = name.String, surname.String, phone.String, email.String
	return c, nil
}

func (s *Storage) GetCustomerByID(ctx context.Context, id int64) (*storage.Customer, error) {
	const op = "storage.mysql.GetCustomerByID"

	query := `SELECT customer_id, name, surname, phone, email FROM customers WHERE customer_id = ?`

	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrCustomerNotFound)
		}
		return nil, fmt.Errorf("%s: ошибка получения клиента id=%d: %w", op, id, err)
	}

	return &c, nil
}

// GetCustomersByOrderPeriod: клиенты, у которых есть заказы в полуинтервале [from, until).
func (s *Storage) GetCustomersByOrderPeriod(ctx context.Context, from, until time.Time) (map[int64]storage.Customer, error) {
	const op = "storage.mysql.GetCustomersByOrderPeriod"

	query := `SELECT DISTINCT c.customer_id, c.name, c.surname, c.phone, c.email
		FROM customers c
		JOIN orders o ON o.customer_id = c.customer_id
		WHERE o.created_at >= ? AND o.created_at < ?`

	rows, err := s.db.QueryContext(ctx, query, from, until)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения клиентов за период: %w", op, err)
	}
	defer rows.Close()

	customers := make(map[int64]storage.Customer)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования клиента: %w", op, err)
		}
		customers[c.ID] = c
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return customers, nil
}
