package document

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"jewelry-crm/internal/constants"
	"jewelry-crm/internal/lib/numwords"
	"jewelry-crm/internal/storage"
)

const numberTimeLayout = "20060102150405"

var hundred = decimal.NewFromInt(100)

// ResolvePrice выбирает сумму документа: amount документа, затем final_price, затем budget, иначе 0.
// Нулевые final_price и budget считаются незаполненными.
func ResolvePrice(order storage.Order, doc *storage.Document) decimal.Decimal {
	switch {
	case doc != nil && doc.Amount != nil:
		return doc.Amount.Round(2)
	case order.FinalPrice != nil && !order.FinalPrice.IsZero():
		return order.FinalPrice.Round(2)
	case order.Budget != nil && !order.Budget.IsZero():
		return order.Budget.Round(2)
	}
	return decimal.Zero
}

// DefaultAmount: сумма нового документа, если менеджер её не указал.
func DefaultAmount(order storage.Order) *decimal.Decimal {
	switch {
	case order.FinalPrice != nil && !order.FinalPrice.IsZero():
		v := *order.FinalPrice
		return &v
	case order.Budget != nil && !order.Budget.IsZero():
		v := *order.Budget
		return &v
	}
	return nil
}

// NewNumber генерирует номер документа вида {ПРЕФИКС}-{id заказа}-{ГГГГММДДччммсс}.
func NewNumber(kind storage.DocumentKind, orderID int64, now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", constants.DocumentPrefix(kind), orderID, now.Format(numberTimeLayout))
}

func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// AmountInWords: рубли прописью, копейки двумя цифрами.
func AmountInWords(price decimal.Decimal) (string, error) {
	const op = "document.AmountInWords"

	price = price.Round(2)
	rubles := price.Truncate(0)
	kopecks := price.Sub(rubles).Mul(hundred).IntPart()

	words, err := numwords.Convert(rubles.IntPart())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Sprintf("%s рублей %02d копеек", numwords.Capitalize(words), kopecks), nil
}
