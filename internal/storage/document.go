package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

type DocumentKind string

const (
	KindInvoice  DocumentKind = "invoice"
	KindAct      DocumentKind = "act"
	KindContract DocumentKind = "contract"
	KindReceipt  DocumentKind = "receipt"
)

// Document: бумага по заказу (счёт, акт, договор, чек). Номер уникален в рамках базы.
type Document struct {
	ID          int64            `json:"document_id"`
	OrderID     int64            `json:"order_id"`
	Kind        DocumentKind     `json:"document_type"`
	Number      string           `json:"document_number"`
	Date        time.Time        `json:"document_date"`
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
	CreatedByID *int64           `json:"created_by_id"`
}
