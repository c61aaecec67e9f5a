package document

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"jewelry-crm/internal/constants"
	"jewelry-crm/internal/storage"
)

// Brief: техническое задание для модельера. Клиент и исполнитель необязательны.
func (b *Builder) Brief(order storage.Order, customer *storage.Customer, worker *storage.Worker) *Page {
	info := []Field{
		{Key: "Дата создания ТЗ:", Value: b.now().Format(dateTimeLayout)},
		{Key: "Заказ №:", Value: strconv.FormatInt(order.ID, 10)},
		{Key: "Дата создания заказа:", Value: order.CreatedAt.Format(dateLayout)},
		{Key: "Требуемая дата готовности:", Value: formatOptionalDate(order.RequiredBy, dateTimeLayout)},
	}
	if worker != nil {
		info = append(info, Field{Key: "Исполнитель:", Value: worker.DisplayName()})
	}

	client := []Field{
		{Key: "ФИО:", Value: constants.Placeholder},
		{Key: "Телефон:", Value: constants.Placeholder},
	}
	if customer != nil {
		client = []Field{
			{Key: "ФИО:", Value: constants.OrDash(customer.FullName())},
			{Key: "Телефон:", Value: constants.OrDash(customer.Phone)},
		}
		if customer.Email != "" {
			client = append(client, Field{Key: "Email:", Value: customer.Email})
		}
	}

	sections := []Section{
		{Name: "title", Blocks: []Block{
			Heading{Text: "ТЕХНИЧЕСКОЕ ЗАДАНИЕ"},
			Heading{Text: fmt.Sprintf("Заказ #%d", order.ID)},
			spacer(10),
		}},
		{Name: "info", Title: "1. ОСНОВНАЯ ИНФОРМАЦИЯ", Blocks: []Block{KeyValue{Fields: info}, spacer(8)}},
		{Name: "customer", Title: "2. ИНФОРМАЦИЯ О КЛИЕНТЕ", Blocks: []Block{KeyValue{Fields: client}, spacer(8)}},
		{Name: "product", Title: "3. СПЕЦИФИКАЦИЯ ИЗДЕЛИЯ", Blocks: []Block{
			KeyValue{Fields: []Field{
				{Key: "Тип изделия:", Value: briefProductName(order.ProductType)},
				{Key: "Тип заказа:", Value: constants.OrderTypeName(order.OrderType)},
				{Key: "Материал:", Value: constants.MaterialName(order.Material)},
			}},
			spacer(8),
		}},
	}

	params := []Block{Paragraph{Text: "Параметры не указаны"}, spacer(8)}
	if fields := briefParameters(order); len(fields) > 0 {
		params = []Block{KeyValue{Fields: fields}, spacer(8)}
	}
	sections = append(sections, Section{Name: "parameters", Title: "4. ТЕХНИЧЕСКИЕ ПАРАМЕТРЫ", Blocks: params})

	if order.Comment != "" {
		sections = append(sections, Section{Name: "comment", Title: "5. ПОЖЕЛАНИЯ КЛИЕНТА", Blocks: []Block{
			Paragraph{Text: order.Comment},
			spacer(8),
		}})
	}

	sections = append(sections, Section{Name: "signature", Blocks: []Block{
		Paragraph{Text: "_______________________________"},
		Paragraph{Text: "Подпись модельера"},
	}})

	return &Page{
		Kind:     "brief",
		Title:    fmt.Sprintf("ТЗ по заказу #%d", order.ID),
		Sections: sections,
	}
}

// briefParameters: у шаблонных заказов только шаблон и размер кольца,
// у индивидуальных все заполненные размеры. Пустые значения не выводятся.
func briefParameters(order storage.Order) []Field {
	var fields []Field

	switch order.OrderType {
	case storage.OrderTemplate:
		if order.TemplateImage != nil && *order.TemplateImage != "" {
			fields = append(fields, Field{Key: "Шаблон:", Value: *order.TemplateImage})
		}
		if order.ProductType == storage.ProductRing && order.RingSize != nil && *order.RingSize != "" {
			fields = append(fields, Field{Key: "Размер кольца:", Value: *order.RingSize})
		}
	case storage.OrderCustom:
		if order.RingSize != nil && *order.RingSize != "" {
			fields = append(fields, Field{Key: "Размер:", Value: *order.RingSize})
		}
		fields = appendMeasure(fields, "Толщина:", order.Thickness, "мм")
		fields = appendMeasure(fields, "Ширина:", order.Width, "мм")
		fields = appendMeasure(fields, "Размер камня:", order.StoneSize, "карат")
		fields = appendMeasure(fields, "Желаемый вес:", order.DesiredWeight, "г")
	}

	return fields
}

func appendMeasure(fields []Field, key string, v *decimal.Decimal, unit string) []Field {
	if v == nil || v.IsZero() {
		return fields
	}
	return append(fields, Field{Key: key, Value: v.String() + " " + unit})
}

func briefProductName(t storage.ProductType) string {
	if name, ok := constants.ProductNames[t]; ok {
		return name
	}
	return constants.OrDash(string(t))
}
