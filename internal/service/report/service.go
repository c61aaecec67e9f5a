package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"jewelry-crm/internal/storage"
)

type OrderStorage interface {
	GetOrdersByPeriod(ctx context.Context, from, until time.Time) ([]storage.Order, error)
	GetCustomersByOrderPeriod(ctx context.Context, from, until time.Time) (map[int64]storage.Customer, error)
}

type Service struct {
	storage OrderStorage
}

func NewService(storage OrderStorage) *Service {
	return &Service{storage: storage}
}

// Orders возвращает заказы периода вместе с данными клиентов.
func (s *Service) Orders(ctx context.Context, p Period) ([]storage.Order, error) {
	const op = "service.report.Orders"

	var (
		orders    []storage.Order
		customers map[int64]storage.Customer
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		orders, err = s.storage.GetOrdersByPeriod(ctx, p.Start, p.Until())
		return err
	})

	g.Go(func() error {
		var err error
		customers, err = s.storage.GetCustomersByOrderPeriod(ctx, p.Start, p.Until())
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: ошибка загрузки заказов за период: %w", op, err)
	}

	for i := range orders {
		if orders[i].CustomerID == nil {
			continue
		}
		if c, ok := customers[*orders[i].CustomerID]; ok {
			orders[i].Customer = &c
		}
	}

	return orders, nil
}

func (s *Service) Build(ctx context.Context, p Period) (Data, error) {
	orders, err := s.Orders(ctx, p)
	if err != nil {
		return Data{}, err
	}
	return Aggregate(orders, p.Start, p.End), nil
}
