package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jewelry-crm/internal/storage"
)

func (s *Storage) GetWorkerByID(ctx context.Context, id int64) (*storage.Worker, error) {
	const op = "storage.mysql.GetWorkerByID"

	query := `SELECT user_id, username, first_name, last_name, role FROM users WHERE user_id = ?`

	var (
		w                 storage.Worker
		first, last, role sql.NullString
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Username, &first, &last, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrWorkerNotFound)
		}
		return nil, fmt.Errorf("%s: ошибка получения сотрудника id=%d: %w", op, id, err)
	}

	w.FirstName, w.LastName, w.Role = first.String, last.String, role.String

	return &w, nil
}

// GetWorkers возвращает сотрудников для назначения на заказ. Пустая роль, все сотрудники.
func (s *Storage) GetWorkers(ctx context.Context, role string) ([]storage.Worker, error) {
	const op = "storage.mysql.GetWorkers"

	query := `SELECT user_id, username, first_name, last_name, role FROM users`
	var args []interface{}
	if role != "" {
		query += ` WHERE role = ?`
		args = append(args, role)
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения сотрудников: %w", op, err)
	}
	defer rows.Close()

	workers := []storage.Worker{}
	for rows.Next() {
		var (
			w                 storage.Worker
			first, last, kind sql.NullString
		)
		if err := rows.Scan(&w.ID, &w.Username, &first, &last, &kind); err != nil {
			return nil, fmt.Errorf("%s: ошибка чтения сотрудника: %w", op, err)
		}
		w.FirstName, w.LastName, w.Role = first.String, last.String, kind.String
		workers = append(workers, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return workers, nil
}
