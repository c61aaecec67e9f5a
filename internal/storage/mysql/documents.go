package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"jewelry-crm/internal/storage"
)

func (s *Storage) GetDocumentByID(ctx context.Context, id int64) (*storage.Document, error) {
	const op = "storage.mysql.GetDocumentByID"

	query := `SELECT document_id, order_id, document_type, document_number, document_date, amount, description, created_by_id
		FROM documents WHERE document_id = ?`

	var (
		doc         storage.Document
		amount      decimal.NullDecimal
		description sql.NullString
		createdBy   sql.NullInt64
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&doc.ID, &doc.OrderID, &doc.Kind, &doc.Number, &doc.Date, &amount, &description, &createdBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: ошибка получения документа id=%d: %w", op, id, err)
	}

	doc.Amount = decimalPtr(amount)
	doc.Description = description.String
	doc.CreatedByID = int64Ptr(createdBy)

	return &doc, nil
}

// SaveDocument возвращает storage.ErrDocumentNumberExists, если номер уже занят.
func (s *Storage) SaveDocument(ctx context.Context, doc storage.Document) (int64, error) {
	const op = "storage.mysql.SaveDocument"

	stmt := `INSERT INTO documents (order_id, document_type, document_number, document_date, amount, description,
		created_by_id, uploaded_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	res, err := s.db.ExecContext(ctx, stmt,
		doc.OrderID, doc.Kind, doc.Number, doc.Date, nullDecimal(doc.Amount), doc.Description, nullInt64(doc.CreatedByID),
	)
	if err != nil {
		if isDuplicate(err) {
			return 0, fmt.Errorf("%s: %s: %w", op, doc.Number, storage.ErrDocumentNumberExists)
		}
		return 0, fmt.Errorf("%s: ошибка сохранения документа: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: ошибка получения id документа: %w", op, err)
	}

	return id, nil
}
