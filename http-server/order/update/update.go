package update

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"
	"jewelry-crm/internal/service/pricing"
	"jewelry-crm/internal/storage"
)

type PriceUpdater interface {
	RecalculatePrice(ctx context.Context, orderID int64, finalPrice *decimal.Decimal) (*storage.Order, error)
}

type Request struct {
	FinalPrice *decimal.Decimal `json:"final_price"`
}

type Response struct {
	OrderID        int64   `json:"order_id"`
	EstimatedPrice *string `json:"estimated_price"`
	FinalPrice     *string `json:"final_price"`
	PriceConfirmed bool    `json:"price_confirmed"`
}

// UpdateOrderPrice пересчитывает оценку сохранённого заказа и фиксирует окончательную цену менеджера.
// Пустое тело запроса только обновляет оценку.
func UpdateOrderPrice(log *slog.Logger, updater PriceUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.order.UpdateOrderPrice"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := updater.RecalculatePrice(ctx, id, req.FinalPrice)
		if err != nil {
			switch {
			case errors.Is(err, pricing.ErrNegativePrice):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, storage.ErrOrderNotFound):
				http.Error(w, "Заказ не найден", http.StatusNotFound)
			default:
				log.Error("Ошибка обновления цены", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "Ошибка обновления цены", http.StatusInternalServerError)
			}
			return
		}

		log.Info("Цена заказа обновлена", slog.Int64("id", id), slog.Bool("confirmed", order.PriceConfirmed))

		render.JSON(w, r, Response{
			OrderID:        order.ID,
			EstimatedPrice: fixed(order.EstimatedPrice),
			FinalPrice:     fixed(order.FinalPrice),
			PriceConfirmed: order.PriceConfirmed,
		})
	}
}

func fixed(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
