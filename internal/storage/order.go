package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductType string

const (
	ProductRing     ProductType = "ring"
	ProductBrooch   ProductType = "brooch"
	ProductBracelet ProductType = "bracelet"
	ProductEarrings ProductType = "earrings"
)

type OrderType string

const (
	OrderTemplate   OrderType = "template"
	OrderCustom     OrderType = "custom"
	OrderCollection OrderType = "collection"
)

type OrderStatus string

const (
	StatusNew       OrderStatus = "new"
	StatusConfirmed OrderStatus = "confirmed"
	StatusInWork    OrderStatus = "in_work"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

// Order: заказ клиента на одно изделие.
// EstimatedPrice вычисляется сервисом цен и никогда не вводится вручную.
type Order struct {
	ID          int64       `json:"order_id"`
	CustomerID  *int64      `json:"customer_id"`
	WorkerID    *int64      `json:"user_id"`
	Status      OrderStatus `json:"order_status"`
	ProductType ProductType `json:"product_type"`
	OrderType   OrderType   `json:"order_type"`
	Material    string      `json:"material"`

	TemplateImage *string          `json:"template_image"`
	RingSize      *string          `json:"ring_size"`
	Thickness     *decimal.Decimal `json:"thickness"`
	Width         *decimal.Decimal `json:"width"`
	StoneSize     *decimal.Decimal `json:"stone_size"`
	DesiredWeight *decimal.Decimal `json:"desired_weight"`

	Budget         *decimal.Decimal `json:"budget"`
	EstimatedPrice *decimal.Decimal `json:"estimated_price"`
	FinalPrice     *decimal.Decimal `json:"final_price"`
	PriceConfirmed bool             `json:"price_confirmed"`

	RequiredBy *time.Time `json:"required_by"`
	Comment    string     `json:"comment"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Заполняется только запросами с join по клиентам (отчёты).
	Customer *Customer `json:"customer,omitempty"`
}

// ConfirmFinalPrice выставляет окончательную цену менеджера.
// Положительная цена считается подтверждённой.
func (o *Order) ConfirmFinalPrice(price *decimal.Decimal) {
	o.FinalPrice = price
	if price != nil && price.IsPositive() {
		o.PriceConfirmed = true
	}
}
