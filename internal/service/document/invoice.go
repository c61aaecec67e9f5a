package document

import (
	"fmt"

	"jewelry-crm/internal/constants"
	"jewelry-crm/internal/storage"
)

// Invoice: счёт на оплату.
func (b *Builder) Invoice(order storage.Order, customer *storage.Customer, doc storage.Document) (*Page, error) {
	const op = "document.Builder.Invoice"

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

	bank := Table{
		Columns: []Column{{Width: 0.5}, {Width: 0.17}, {Width: 0.33}},
		Rows: [][]string{
			{b.bank.Name, "БИК", b.bank.BIK},
			{"", "Сч. №", b.bank.CorrAccount},
			{"Банк получателя", "", ""},
			{"ИНН " + b.company.INN, "КПП " + b.company.KPP, "Сч. №"},
			{"", "", b.bank.Account},
			{"Получатель", "", ""},
			{b.company.Name, "", ""},
		},
		Bordered: true,
	}

	return &Page{
		Kind:  string(storage.KindInvoice),
		Title: "Счет № " + doc.Number,
		Sections: []Section{
			{Name: "bank", Blocks: []Block{bank, spacer(10)}},
			{Name: "title", Blocks: []Block{
				Heading{Text: fmt.Sprintf("Счет № %s от %s г.", doc.Number, doc.Date.Format(dateLayout))},
				spacer(5),
			}},
			{Name: "parties", Blocks: []Block{
				KeyValue{Fields: []Field{
					{Key: "Поставщик:", Value: fmt.Sprintf("%s, ИНН %s, %s", b.company.Name, b.company.INN, b.company.Address)},
					{Key: "Покупатель:", Value: fmt.Sprintf("%s, тел.: %s", c.FullName(), constants.OrDash(c.Phone))},
				}},
				spacer(5),
			}},
			{Name: "items", Blocks: []Block{itemsTable(order, price), spacer(3)}},
			{Name: "totals", Blocks: []Block{
				Totals{Fields: []Field{
					{Key: "Итого:", Value: amount},
					{Key: "В том числе НДС:", Value: "Без НДС"},
					{Key: "Всего к оплате:", Value: amount},
				}},
				spacer(5),
			}},
			{Name: "amount_in_words", Blocks: []Block{
				Paragraph{Text: fmt.Sprintf("Всего наименований 1, на сумму %s руб.", amount)},
				Paragraph{Text: words, Bold: true},
				spacer(10),
			}},
			{Name: "signatures", Blocks: []Block{
				KeyValue{Fields: []Field{
					{Key: "Руководитель", Value: signLine},
					{Key: "Бухгалтер", Value: signLine},
				}},
			}},
		},
	}, nil
}
