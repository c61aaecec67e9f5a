package excel

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"jewelry-crm/internal/constants"
	"jewelry-crm/internal/service/report"
	"jewelry-crm/internal/storage"
)

const (
	summarySheet = "Сводка"
	ordersSheet  = "Заказы"
	dateLayout   = "02.01.2006"
)

type ReportSource interface {
	Orders(ctx context.Context, p report.Period) ([]storage.Order, error)
}

type GenerateExcelService struct {
	source  ReportSource
	company string
}

func NewGenerateService(source ReportSource, company string) *GenerateExcelService {
	return &GenerateExcelService{source: source, company: company}
}

// GenerateExcel строит xlsx-вариант отчёта: сводка на первом листе, список заказов на втором.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, p report.Period) ([]byte, error) {
	const op = "service.excel.GenerateExcel"

	orders, err := g.source.Orders(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения данных: %w", op, err)
	}

	data := report.Aggregate(orders, p.Start, p.End)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := f.NewSheet(ordersSheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// жирная шапка с заливкой
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	writeSummary(f, p, data, g.company, headerStyle, titleStyle)
	writeOrders(f, p, orders, headerStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка записи файла: %w", op, err)
	}

	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, p report.Period, data report.Data, company string, headerStyle, titleStyle int) {
	row := 1
	f.SetCellValue(summarySheet, cellName(1, row), "ОТЧЁТ О РАБОТЕ КОМПАНИИ")
	f.SetCellStyle(summarySheet, cellName(1, row), cellName(1, row), titleStyle)
	row++
	f.SetCellValue(summarySheet, cellName(1, row), company)
	row++
	f.SetCellValue(summarySheet, cellName(1, row), "Период")
	f.SetCellValue(summarySheet, cellName(2, row), p.Start.Format(dateLayout)+" - "+p.End.Format(dateLayout))
	row += 2

	table := func(header []string, rows [][]interface{}) {
		for i, h := range header {
			f.SetCellValue(summarySheet, cellName(i+1, row), h)
		}
		f.SetCellStyle(summarySheet, cellName(1, row), cellName(len(header), row), headerStyle)
		row++
		for _, r := range rows {
			for i, v := range r {
				f.SetCellValue(summarySheet, cellName(i+1, row), v)
			}
			row++
		}
		row++
	}

	table([]string{"Показатель", "Значение"}, [][]interface{}{
		{"Всего заказов", data.TotalOrders},
		{"Общая выручка", amount(data.TotalRevenue)},
		{"Средний чек", amount(data.AvgOrderValue)},
	})

	table([]string{"Статус", "Количество"}, groupRows(data.StatusStats))
	table([]string{"Тип изделия", "Количество"}, groupRows(data.ProductStats))
	table([]string{"Тип заказа", "Количество"}, groupRows(data.OrderTypeStats))

	customers := make([][]interface{}, 0, len(data.TopCustomers))
	for _, c := range data.TopCustomers {
		customers = append(customers, []interface{}{c.FullName(), c.Orders, amount(c.TotalSpent)})
	}
	table([]string{"Клиент", "Заказов", "Сумма"}, customers)

	f.SetColWidth(summarySheet, "A", "A", 30)
	f.SetColWidth(summarySheet, "B", "C", 18)
}

func writeOrders(f *excelize.File, p report.Period, orders []storage.Order, headerStyle int) {
	headers := []string{"№ Заказа", "Дата", "Клиент", "Изделие", "Тип заказа", "Материал", "Статус", "Бюджет", "Оценка", "Итоговая цена"}
	for i, name := range headers {
		f.SetCellValue(ordersSheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(ordersSheet, "A1", cellName(len(headers), 1), headerStyle)

	rowNum := 2
	for _, o := range orders {
		if !p.Contains(o.CreatedAt) {
			continue
		}

		customer := constants.Placeholder
		if o.Customer != nil {
			customer = o.Customer.FullName()
		}

		f.SetCellValue(ordersSheet, cellName(1, rowNum), o.ID)
		f.SetCellValue(ordersSheet, cellName(2, rowNum), o.CreatedAt.Format(dateLayout))
		f.SetCellValue(ordersSheet, cellName(3, rowNum), customer)
		f.SetCellValue(ordersSheet, cellName(4, rowNum), constants.ProductName(o.ProductType))
		f.SetCellValue(ordersSheet, cellName(5, rowNum), constants.OrderTypeName(o.OrderType))
		f.SetCellValue(ordersSheet, cellName(6, rowNum), constants.MaterialName(o.Material))
		f.SetCellValue(ordersSheet, cellName(7, rowNum), constants.StatusName(o.Status))
		f.SetCellValue(ordersSheet, cellName(8, rowNum), optionalAmount(o.Budget))
		f.SetCellValue(ordersSheet, cellName(9, rowNum), optionalAmount(o.EstimatedPrice))
		f.SetCellValue(ordersSheet, cellName(10, rowNum), optionalAmount(o.FinalPrice))
		rowNum++
	}

	f.SetPanes(ordersSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	f.SetColWidth(ordersSheet, "A", "J", 16)
}

func groupRows(groups []report.Group) [][]interface{} {
	rows := make([][]interface{}, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []interface{}{g.Label, g.Count})
	}
	return rows
}

func amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func optionalAmount(d *decimal.Decimal) interface{} {
	if d == nil {
		return constants.Placeholder
	}
	return amount(*d)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
