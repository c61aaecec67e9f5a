package document

import (
	"fmt"

	"jewelry-crm/internal/constants"
	"jewelry-crm/internal/lib/numwords"
	"jewelry-crm/internal/storage"
)

const contractDeadlineFallback = "согласно индивидуальному графику"

// Contract: договор на изготовление изделия, шесть разделов.
func (b *Builder) Contract(order storage.Order, customer *storage.Customer, doc storage.Document) (*Page, error) {
	const op = "document.Builder.Contract"

	c, err := requireCustomer(customer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	price := ResolvePrice(order, &doc)
	words, err := AmountInWords(price)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	product := constants.ProductNameGenitive(order.ProductType)

	preamble := fmt.Sprintf("%s (ИНН %s, ОГРН %s), именуемое в дальнейшем «Исполнитель», "+
		"в лице %s %s, действующего на основании Устава, с одной стороны, "+
		"и %s, именуемый(ая) в дальнейшем «Заказчик», "+
		"с другой стороны, вместе именуемые «Стороны», заключили настоящий Договор о нижеследующем:",
		b.company.Name, b.company.INN, b.company.OGRN, b.company.DirectorTitle, b.company.DirectorFIO, c.FullName())

	subject := []Block{
		Paragraph{Text: fmt.Sprintf("1.1. Исполнитель обязуется изготовить %s (далее – «Изделие») по заказу Заказчика, "+
			"а Заказчик обязуется принять и оплатить Изделие в порядке и на условиях, предусмотренных настоящим Договором.", product)},
		Paragraph{Text: "1.2. Характеристики Изделия:"},
		Paragraph{Text: "   - Тип: " + numwords.Capitalize(product)},
	}
	if order.Material != "" {
		subject = append(subject, Paragraph{Text: "   - Материал: " + constants.MaterialName(order.Material)})
	}
	if order.RingSize != nil && *order.RingSize != "" {
		subject = append(subject, Paragraph{Text: "   - Размер: " + *order.RingSize})
	}
	subject = append(subject,
		Paragraph{Text: fmt.Sprintf("1.3. Стоимость работ по изготовлению Изделия составляет %s (%s).", FormatMoney(price), words), Bold: true},
		spacer(7),
	)

	deadline := contractDeadlineFallback
	if order.RequiredBy != nil {
		deadline = order.RequiredBy.Format(dateLayout)
	}

	return &Page{
		Kind:  string(storage.KindContract),
		Title: "Договор № " + doc.Number,
		Sections: []Section{
			{Name: "title", Blocks: []Block{
				Heading{Text: "ДОГОВОР"},
				Heading{Text: "на изготовление ювелирного изделия № " + doc.Number},
				Paragraph{Text: fmt.Sprintf("%s      %s г.", b.company.City, doc.Date.Format(dateLayout))},
				spacer(10),
			}},
			{Name: "preamble", Blocks: []Block{Paragraph{Text: preamble}, spacer(7)}},
			{Name: "subject", Title: "1. ПРЕДМЕТ ДОГОВОРА", Blocks: subject},
			{Name: "deadlines", Title: "2. СРОКИ ВЫПОЛНЕНИЯ РАБОТ", Blocks: []Block{
				Paragraph{Text: "2.1. Срок изготовления Изделия составляет: " + deadline + "."},
				Paragraph{Text: "2.2. Исполнитель обязуется уведомить Заказчика о готовности Изделия по телефону " + constants.OrDash(c.Phone) + "."},
				spacer(7),
			}},
			{Name: "payment", Title: "3. ПОРЯДОК ОПЛАТЫ", Blocks: []Block{
				Paragraph{Text: "3.1. Заказчик производит предоплату в размере 50% от стоимости работ при подписании настоящего Договора."},
				Paragraph{Text: "3.2. Окончательный расчет производится при получении готового Изделия."},
				Paragraph{Text: "3.3. Оплата производится наличными денежными средствами либо безналичным переводом на расчетный счет Исполнителя."},
				spacer(7),
			}},
			{Name: "liability", Title: "4. ОТВЕТСТВЕННОСТЬ СТОРОН", Blocks: []Block{
				Paragraph{Text: "4.1. За нарушение сроков изготовления Изделия Исполнитель уплачивает Заказчику неустойку " +
					"в размере 0,1% от стоимости работ за каждый день просрочки."},
				Paragraph{Text: "4.2. В случае отказа Заказчика от Изделия после начала работ, предоплата не возвращается."},
				spacer(7),
			}},
			{Name: "final", Title: "5. ЗАКЛЮЧИТЕЛЬНЫЕ ПОЛОЖЕНИЯ", Blocks: []Block{
				Paragraph{Text: "5.1. Настоящий Договор составлен в двух экземплярах, имеющих одинаковую юридическую силу, " +
					"по одному для каждой из Сторон."},
				Paragraph{Text: "5.2. Все изменения и дополнения к настоящему Договору действительны при условии, " +
					"если они совершены в письменной форме и подписаны обеими Сторонами."},
				spacer(10),
			}},
			{Name: "details", Title: "6. РЕКВИЗИТЫ И ПОДПИСИ СТОРОН", Blocks: []Block{
				Signatures{
					Left: []string{
						"ИСПОЛНИТЕЛЬ:",
						b.company.Name,
						"ИНН: " + b.company.INN,
						"КПП: " + b.company.KPP,
						"Адрес: " + b.company.Address,
						"Тел.: " + b.company.Phone,
						"",
						"_______________ " + b.company.DirectorFIO,
						"М.П.",
					},
					Right: []string{
						"ЗАКАЗЧИК:",
						c.FullName(),
						"Телефон: " + constants.OrDash(c.Phone),
						"Email: " + constants.OrDash(c.Email),
						"",
						"",
						"",
						"_______________",
						"",
					},
				},
			}},
		},
	}, nil
}
