package document

import (
	"fmt"

	"jewelry-crm/internal/constants"
	"jewelry-crm/internal/storage"
)

// Receipt: кассовый чек.
func (b *Builder) Receipt(order storage.Order, customer *storage.Customer, doc storage.Document) (*Page, error) {
	const op = "document.Builder.Receipt"

	c, err := requireCustomer(customer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	price := ResolvePrice(order, &doc)
	words, err := AmountInWords(price)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	amount := FormatMoney(price)

	name := constants.ProductName(order.ProductType)
	if service := constants.OrderTypeServiceName(order.OrderType); service != "" {
		name += " " + service
	}

	return &Page{
		Kind:  string(storage.KindReceipt),
		Title: "Чек № " + doc.Number,
		Sections: []Section{
			{Name: "title", Blocks: []Block{
				Paragraph{Text: "КАССОВЫЙ ЧЕК", Bold: true, Align: AlignCenter},
				Paragraph{Text: fmt.Sprintf("№ %s от %s", doc.Number, doc.Date.Format(dateLayout)), Bold: true, Align: AlignCenter},
				spacer(5),
			}},
			{Name: "company", Blocks: []Block{
				Paragraph{Text: b.company.Name, Bold: true},
				Paragraph{Text: fmt.Sprintf("ИНН %s, КПП %s", b.company.INN, b.company.KPP)},
				Paragraph{Text: b.company.Address},
				Paragraph{Text: "Телефон: " + b.company.Phone},
				spacer(5),
			}},
			{Name: "buyer", Blocks: []Block{
				Paragraph{Text: "Покупатель: " + c.FullName()},
				Paragraph{Text: "Телефон: " + constants.OrDash(c.Phone)},
				spacer(5),
			}},
			{Name: "items", Blocks: []Block{
				Table{
					Columns: []Column{
						{Title: "Наименование", Width: 0.49, Align: AlignCenter},
						{Title: "Количество", Width: 0.11, Align: AlignCenter},
						{Title: "Цена", Width: 0.2, Align: AlignCenter},
						{Title: "Сумма", Width: 0.2, Align: AlignCenter},
					},
					Rows:     [][]string{{name, "1", amount, amount}},
					Bordered: true,
				},
				spacer(5),
			}},
			{Name: "totals", Blocks: []Block{
				Paragraph{Text: fmt.Sprintf("Итого к оплате: %s руб.", amount), Bold: true},
				Paragraph{Text: words},
				spacer(5),
				Paragraph{Text: "Способ оплаты: наличные/безналичная оплата"},
				spacer(10),
			}},
			{Name: "footer", Blocks: []Block{
				Paragraph{Text: fmt.Sprintf("Кассир: %s   Дата: %s", signLine, b.now().Format(dateLayout))},
				spacer(10),
				Paragraph{Text: "Спасибо за покупку!", Bold: true, Align: AlignCenter},
			}},
		},
	}, nil
}
