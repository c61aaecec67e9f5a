package pricing

import (
	"github.com/shopspring/decimal"
	"jewelry-crm/internal/storage"
)

// CollectionItem: изделие из готовой коллекции, заказывается по фиксированной цене.
type CollectionItem struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	ProductType storage.ProductType `json:"category"`
	Price       decimal.Decimal     `json:"price"`
	Materials   string              `json:"materials"`
}

var collection = map[int64]CollectionItem{
	1: {ID: 1, Name: "Étoile", ProductType: storage.ProductRing, Price: decimal.NewFromInt(385000), Materials: "Платина 950, бриллианты 1.2 ct"},
	2: {ID: 2, Name: "Aurora", ProductType: "earring", Price: decimal.NewFromInt(520000), Materials: "Белое золото 750, изумруды, бриллианты"},
	3: {ID: 3, Name: "Céleste", ProductType: "necklace", Price: decimal.NewFromInt(1250000), Materials: "Белое золото 750, сапфир 15 ct"},
	4: {ID: 4, Name: "Harmonie", ProductType: storage.ProductBracelet, Price: decimal.NewFromInt(245000), Materials: "Розовое золото 585, бриллианты"},
	5: {ID: 5, Name: "Lumière", ProductType: "pendant", Price: decimal.NewFromInt(195000), Materials: "Белое золото 750, бриллиант 0.8 ct"},
	6: {ID: 6, Name: "Impérial", ProductType: storage.ProductRing, Price: decimal.NewFromInt(890000), Materials: "Платина 950, рубин 2.5 ct"},
}

func CollectionProduct(id int64) (CollectionItem, bool) {
	item, ok := collection[id]
	return item, ok
}

// NewCollectionOrder собирает предзаказ: цена каталога сразу становится оценкой,
// материал берётся свободным текстом из карточки изделия.
func NewCollectionOrder(item CollectionItem, customerID int64, ringSize, comment string) storage.Order {
	price := item.Price
	order := storage.Order{
		CustomerID:     &customerID,
		Status:         storage.StatusNew,
		ProductType:    item.ProductType,
		OrderType:      storage.OrderCollection,
		Material:       item.Materials,
		EstimatedPrice: &price,
		Comment:        comment,
	}
	if ringSize != "" && ringSize != "custom" {
		order.RingSize = &ringSize
	}
	return order
}
