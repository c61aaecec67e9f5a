package pricing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"jewelry-crm/internal/storage"
)

var (
	ErrNegativePrice       = errors.New("цена не может быть отрицательной")
	ErrUnknownCollectionID = errors.New("изделие коллекции не найдено")
)

type PriceStorage interface {
	GetOrderByID(ctx context.Context, id int64) (*storage.Order, error)
	UpdateOrderPricing(ctx context.Context, order storage.Order) error
	CreateOrder(ctx context.Context, order storage.Order) (int64, error)
}

type PriceService struct {
	log     *slog.Logger
	storage PriceStorage
	engine  *Engine
}

func NewPriceService(log *slog.Logger, storage PriceStorage, engine *Engine) *PriceService {
	return &PriceService{log: log, storage: storage, engine: engine}
}

func (s *PriceService) Estimate(order storage.Order) (decimal.Decimal, bool) {
	return s.engine.Estimate(order)
}

// RecalculatePrice пересчитывает оценку сохранённого заказа и, если передана, фиксирует окончательную цену.
func (s *PriceService) RecalculatePrice(ctx context.Context, orderID int64, finalPrice *decimal.Decimal) (*storage.Order, error) {
	const op = "service.pricing.RecalculatePrice"

	if finalPrice != nil && finalPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	order, err := s.storage.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения заказа: %w", op, err)
	}

	if !s.engine.Apply(order) {
		s.log.Debug("недостаточно данных для оценки", slog.String("op", op), slog.Int64("order_id", orderID))
	}

	if finalPrice != nil {
		order.ConfirmFinalPrice(finalPrice)
	}

	if err := s.storage.UpdateOrderPricing(ctx, *order); err != nil {
		return nil, fmt.Errorf("%s: ошибка сохранения цены: %w", op, err)
	}

	return order, nil
}

func (s *PriceService) CreateCollectionOrder(ctx context.Context, productID, customerID int64, ringSize, comment string) (*storage.Order, error) {
	const op = "service.pricing.CreateCollectionOrder"

	item, ok := CollectionProduct(productID)
	if !ok {
		return nil, ErrUnknownCollectionID
	}

	order := NewCollectionOrder(item, customerID, ringSize, comment)
	order.CreatedAt = time.Now().Truncate(time.Second)
	order.UpdatedAt = order.CreatedAt

	id, err := s.storage.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка создания предзаказа: %w", op, err)
	}
	order.ID = id

	return &order, nil
}
