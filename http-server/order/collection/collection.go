package collection

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
	"jewelry-crm/internal/service/pricing"
	"jewelry-crm/internal/storage"
)

var validate = validator.New()

type PreOrderCreator interface {
	CreateCollectionOrder(ctx context.Context, productID, customerID int64, ringSize, comment string) (*storage.Order, error)
}

type Request struct {
	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
	RingSize   string `json:"ring_size" validate:"max=10"`
	Comment    string `json:"comment" validate:"max=2000"`
}

type Response struct {
	OrderID        int64  `json:"order_id"`
	Status         string `json:"order_status"`
	EstimatedPrice string `json:"estimated_price"`
}

// CreatePreOrder оформляет предзаказ изделия из коллекции по цене каталога.
func CreatePreOrder(log *slog.Logger, creator PreOrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.order.CreatePreOrder"

		productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid product ID", http.StatusBadRequest)
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			log.Warn("Ошибка валидации предзаказа", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректные данные заказа", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := creator.CreateCollectionOrder(ctx, productID, req.CustomerID, req.RingSize, req.Comment)
		if err != nil {
			if errors.Is(err, pricing.ErrUnknownCollectionID) {
				http.Error(w, "Изделие не найдено", http.StatusNotFound)
				return
			}
			log.Error("Ошибка создания предзаказа", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка создания заказа", http.StatusInternalServerError)
			return
		}

		log.Info("Предзаказ создан", slog.Int64("order_id", order.ID), slog.Int64("product_id", productID))

		resp := Response{
			OrderID: order.ID,
			Status:  string(order.Status),
		}
		if order.EstimatedPrice != nil {
			resp.EstimatedPrice = order.EstimatedPrice.StringFixed(2)
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, resp)
	}
}
