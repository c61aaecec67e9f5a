package document

import (
	"fmt"

	"jewelry-crm/internal/constants"
	"jewelry-crm/internal/storage"
)

const actClosing = "Вышеперечисленные услуги выполнены полностью и в срок. " +
	"Заказчик претензий по объему, качеству и срокам оказания услуг не имеет."

// Act: акт оказания услуг.
func (b *Builder) Act(order storage.Order, customer *storage.Customer, doc storage.Document) (*Page, error) {
	const op = "document.Builder.Act"

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

	return &Page{
		Kind:  string(storage.KindAct),
		Title: "Акт № " + doc.Number,
		Sections: []Section{
			{Name: "title", Blocks: []Block{
				Heading{Text: fmt.Sprintf("Акт № %s от %s", doc.Number, formatDateLong(doc.Date))},
				spacer(10),
			}},
			{Name: "parties", Blocks: []Block{
				Paragraph{Text: "Исполнитель: " + b.company.Name},
				Paragraph{Text: b.companyLine()},
				spacer(5),
				Paragraph{Text: "Заказчик: " + c.FullName()},
				Paragraph{Text: fmt.Sprintf("Телефон: %s, Email: %s", constants.OrDash(c.Phone), constants.OrDash(c.Email))},
				spacer(5),
			}},
			{Name: "basis", Blocks: []Block{
				Paragraph{Text: fmt.Sprintf("Основание: Заказ №%d от %s", order.ID, order.CreatedAt.Format(dateLayout))},
				spacer(10),
			}},
			{Name: "items", Blocks: []Block{itemsTable(order, price), spacer(3)}},
			{Name: "totals", Blocks: []Block{
				Totals{Fields: []Field{
					{Key: "Итого:", Value: amount},
					{Key: "В том числе НДС:", Value: "Без НДС"},
				}},
				spacer(5),
			}},
			{Name: "amount_in_words", Blocks: []Block{
				Paragraph{Text: fmt.Sprintf("Всего оказано услуг 1, на сумму %s руб.", amount)},
				Paragraph{Text: words, Bold: true},
				spacer(10),
			}},
			{Name: "closing", Blocks: []Block{Paragraph{Text: actClosing}, spacer(15)}},
			{Name: "signatures", Blocks: []Block{
				Signatures{
					Left:  []string{"ИСПОЛНИТЕЛЬ", fmt.Sprintf("%s, %s", b.company.DirectorTitle, b.company.Name), "", signLine, "М.П."},
					Right: []string{"ЗАКАЗЧИК", "", "", signLine, ""},
				},
			}},
		},
	}, nil
}
