package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"jewelry-crm/internal/service/document"
	"jewelry-crm/internal/storage"
)

const dateLayout = "2006-01-02"

var validate = validator.New()

type DocumentCreator interface {
	CreateDocument(ctx context.Context, orderID int64, in document.NewDocument) (*storage.Document, error)
}

type Request struct {
	Kind        string           `json:"document_type" validate:"required,oneof=invoice act contract receipt"`
	Number      string           `json:"document_number" validate:"max=50"`
	Date        string           `json:"document_date" validate:"omitempty,datetime=2006-01-02"`
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
	CreatedByID *int64           `json:"created_by_id" validate:"omitempty,gt=0"`
}

// SaveDocument создаёт документ по заказу. Пустой номер генерируется, сумма по умолчанию берётся из заказа.
func SaveDocument(log *slog.Logger, creator DocumentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.document.SaveDocument"

		orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "ошибка парсинга JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			log.Warn("Ошибка валидации документа", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректные данные документа", http.StatusBadRequest)
			return
		}

		if req.Amount != nil && req.Amount.IsNegative() {
			http.Error(w, "Сумма не может быть отрицательной", http.StatusBadRequest)
			return
		}

		in := document.NewDocument{
			Kind:        storage.DocumentKind(req.Kind),
			Number:      req.Number,
			Amount:      req.Amount,
			Description: req.Description,
			CreatedByID: req.CreatedByID,
		}
		if req.Date != "" {
			date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
			if err != nil {
				http.Error(w, "Неверный формат даты", http.StatusBadRequest)
				return
			}
			in.Date = &date
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		doc, err := creator.CreateDocument(ctx, orderID, in)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrOrderNotFound):
				http.Error(w, "Заказ не найден", http.StatusNotFound)
			case errors.Is(err, storage.ErrDocumentNumberExists):
				http.Error(w, "Документ с таким номером уже существует", http.StatusConflict)
			default:
				log.Error("Ошибка создания документа", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "ошибка создания документа", http.StatusInternalServerError)
			}
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, doc)
	}
}
