package document

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"jewelry-crm/internal/service/report"
)

// Report: аналитический отчёт за период.
func (b *Builder) Report(period report.Period, data report.Data) *Page {
	general := Table{
		Columns: []Column{{Title: "Показатель", Width: 0.55}, {Title: "Значение", Width: 0.45}},
		Rows: [][]string{
			{"Всего заказов", strconv.Itoa(data.TotalOrders)},
			{"Общая выручка", rubles(data.TotalRevenue)},
			{"Средний чек", rubles(data.AvgOrderValue)},
		},
		Bordered: true,
	}

	customers := Table{
		Columns:  []Column{{Title: "Клиент", Width: 0.5}, {Title: "Заказов", Width: 0.2}, {Title: "Сумма", Width: 0.3}},
		Rows:     [][]string{},
		Bordered: true,
	}
	for _, c := range data.TopCustomers {
		customers.Rows = append(customers.Rows, []string{c.FullName(), strconv.Itoa(c.Orders), rubles(c.TotalSpent)})
	}

	return &Page{
		Kind:  "report",
		Title: "Отчёт " + period.String(),
		Sections: []Section{
			{Name: "title", Blocks: []Block{
				Heading{Text: "ОТЧЁТ О РАБОТЕ КОМПАНИИ"},
				Paragraph{Text: b.company.Name},
				spacer(3),
				Paragraph{Text: fmt.Sprintf("Период: %s - %s", period.Start.Format(dateLayout), period.End.Format(dateLayout))},
				Paragraph{Text: "Дата формирования отчёта: " + b.now().Format(dateTimeLayout)},
				spacer(5),
			}},
			{Name: "general", Title: "ОБЩАЯ СТАТИСТИКА", Blocks: []Block{general, spacer(5)}},
			{Name: "statuses", Title: "ЗАКАЗЫ ПО СТАТУСАМ", Blocks: []Block{groupTable("Статус", data.StatusStats), spacer(5)}},
			{Name: "products", Title: "ТИПЫ ИЗДЕЛИЙ", Blocks: []Block{groupTable("Тип изделия", data.ProductStats), spacer(5)}},
			{Name: "order_types", Title: "ТИПЫ ЗАКАЗОВ", Blocks: []Block{groupTable("Тип заказа", data.OrderTypeStats), spacer(5)}},
			{Name: "customers", Title: "ТОП-5 КЛИЕНТОВ", Blocks: []Block{customers, spacer(10)}},
			{Name: "footer", Blocks: []Block{
				Paragraph{Text: "Отчёт сформирован автоматически системой CRM " + b.company.Name},
			}},
		},
	}
}

func groupTable(title string, groups []report.Group) Table {
	t := Table{
		Columns:  []Column{{Title: title, Width: 0.55}, {Title: "Количество", Width: 0.45}},
		Rows:     [][]string{},
		Bordered: true,
	}
	for _, g := range groups {
		t.Rows = append(t.Rows, []string{g.Label, strconv.Itoa(g.Count)})
	}
	return t
}

func rubles(d decimal.Decimal) string {
	return FormatMoney(d) + " ₽"
}
