package document

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"jewelry-crm/internal/config"
	"jewelry-crm/internal/service/report"
	"jewelry-crm/internal/storage"
)

var fixedNow = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func newTestBuilder() *Builder {
	cfg := config.Default()
	return NewBuilder(cfg.Company, cfg.Bank).WithClock(func() time.Time { return fixedNow })
}

func ptr[T any](v T) *T {
	return &v
}

func testOrder() storage.Order {
	return storage.Order{
		ID:          15,
		ProductType: storage.ProductRing,
		OrderType:   storage.OrderTemplate,
		Material:    "gold_585",
		RingSize:    ptr("17"),
		FinalPrice:  dec("48195"),
		Budget:      dec("40000"),
		CreatedAt:   time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testCustomer() *storage.Customer {
	return &storage.Customer{ID: 3, Name: "Анна", Surname: "Иванова", Phone: "+7 900 000-00-00"}
}

func testDocument(kind storage.DocumentKind) storage.Document {
	return storage.Document{
		ID:      9,
		OrderID: 15,
		Kind:    kind,
		Number:  "СЧ-15-20250305120000",
		Date:    time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC),
	}
}

func joined(p *Page) string {
	return strings.Join(p.Text(), "\n")
}

func TestInvoice(t *testing.T) {
	page, err := newTestBuilder().Invoice(testOrder(), testCustomer(), testDocument(storage.KindInvoice))
	require.NoError(t, err)

	text := joined(page)
	assert.Contains(t, text, "Счет № СЧ-15-20250305120000 от 05.03.2025 г.")
	assert.Contains(t, text, "ПАО Сбербанк")
	assert.Contains(t, text, "Анна Иванова, тел.: +7 900 000-00-00")
	assert.Contains(t, text, "Изготовление Кольцо по шаблону")
	assert.Contains(t, text, "Всего к оплате:")
	assert.Contains(t, text, "Всего наименований 1, на сумму 48195.00 руб.")
	assert.Contains(t, text, "Сорок восемь тысяч сто девяносто пять рублей 00 копеек")

	items := page.Section("items")
	require.NotNil(t, items)
	table := items.Blocks[0].(Table)
	assert.Equal(t, []string{"1", "Изготовление Кольцо по шаблону", "1", "шт.", "48195.00", "48195.00"}, table.Rows[0])

	totals := page.Section("totals").Blocks[0].(Totals)
	assert.Equal(t, "48195.00", totals.Fields[0].Value)
}

func TestInvoice_TotalFollowsDocumentAmount(t *testing.T) {
	doc := testDocument(storage.KindInvoice)
	doc.Amount = dec("1234.5")

	page, err := newTestBuilder().Invoice(testOrder(), testCustomer(), doc)
	require.NoError(t, err)

	totals := page.Section("totals").Blocks[0].(Totals)
	assert.Equal(t, "1234.50", totals.Fields[0].Value)
	assert.Contains(t, joined(page), "Одна тысяча двести тридцать четыре рублей 50 копеек")
}

func TestInvoice_NoCustomer(t *testing.T) {
	_, err := newTestBuilder().Invoice(testOrder(), nil, testDocument(storage.KindInvoice))
	assert.ErrorIs(t, err, ErrNoCustomer)
}

func TestInvoice_UnknownTypesAndMissingContacts(t *testing.T) {
	order := storage.Order{ID: 1, ProductType: "pendant", OrderType: storage.OrderCollection}

	page, err := newTestBuilder().Invoice(order, &storage.Customer{Name: "Олег"}, testDocument(storage.KindInvoice))
	require.NoError(t, err)

	text := joined(page)
	assert.Contains(t, text, "Изготовление Ювелирное изделие\n")
	assert.Contains(t, text, "Олег, тел.: —")
	assert.Contains(t, text, "Ноль рублей 00 копеек")
}

func TestAct(t *testing.T) {
	doc := testDocument(storage.KindAct)
	doc.Number = "АКТ-15-1"

	page, err := newTestBuilder().Act(testOrder(), testCustomer(), doc)
	require.NoError(t, err)

	text := joined(page)
	assert.Contains(t, text, "Акт № АКТ-15-1 от «05» марта 2025 г.")
	assert.Contains(t, text, "Исполнитель: ООО «JEWEllUX»")
	assert.Contains(t, text, "Телефон: +7 900 000-00-00, Email: —")
	assert.Contains(t, text, "Основание: Заказ №15 от 01.03.2025")
	assert.Contains(t, text, "Всего оказано услуг 1, на сумму 48195.00 руб.")
	assert.Contains(t, text, actClosing)
	assert.Contains(t, text, "Генеральный директор, ООО «JEWEllUX»")
	assert.NotContains(t, text, "Всего к оплате:")
}

func TestContract(t *testing.T) {
	order := testOrder()
	order.ProductType = storage.ProductBracelet
	order.RingSize = nil

	page, err := newTestBuilder().Contract(order, testCustomer(), testDocument(storage.KindContract))
	require.NoError(t, err)

	text := joined(page)
	assert.Contains(t, text, "ДОГОВОР")
	assert.Contains(t, text, "г. Москва      05.03.2025 г.")
	assert.Contains(t, text, "Исполнитель обязуется изготовить браслета")
	assert.Contains(t, text, "   - Тип: Браслета")
	assert.Contains(t, text, "   - Материал: Золото 585")
	assert.NotContains(t, text, "   - Размер:")
	assert.Contains(t, text, "48195.00 (Сорок восемь тысяч сто девяносто пять рублей 00 копеек)")
	assert.Contains(t, text, "согласно индивидуальному графику")
	assert.Contains(t, text, "предоплату в размере 50%")
	assert.Contains(t, text, "0,1% от стоимости работ")
	assert.Contains(t, text, "_______________ АБдурахманов Г.Г.")

	for _, title := range []string{
		"1. ПРЕДМЕТ ДОГОВОРА", "2. СРОКИ ВЫПОЛНЕНИЯ РАБОТ", "3. ПОРЯДОК ОПЛАТЫ",
		"4. ОТВЕТСТВЕННОСТЬ СТОРОН", "5. ЗАКЛЮЧИТЕЛЬНЫЕ ПОЛОЖЕНИЯ", "6. РЕКВИЗИТЫ И ПОДПИСИ СТОРОН",
	} {
		assert.Contains(t, text, title)
	}
}

func TestContract_Deadline(t *testing.T) {
	order := testOrder()
	order.RequiredBy = ptr(time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC))

	page, err := newTestBuilder().Contract(order, testCustomer(), testDocument(storage.KindContract))
	require.NoError(t, err)

	text := joined(page)
	assert.Contains(t, text, "Срок изготовления Изделия составляет: 20.04.2025.")
	assert.Contains(t, text, "   - Размер: 17")
}

func TestReceipt(t *testing.T) {
	doc := testDocument(storage.KindReceipt)
	doc.Number = "ЧЕК-15-1"

	page, err := newTestBuilder().Receipt(testOrder(), testCustomer(), doc)
	require.NoError(t, err)

	text := joined(page)
	assert.Contains(t, text, "КАССОВЫЙ ЧЕК")
	assert.Contains(t, text, "№ ЧЕК-15-1 от 05.03.2025")
	assert.Contains(t, text, "Кольцо по шаблону")
	assert.Contains(t, text, "Итого к оплате: 48195.00 руб.")
	assert.Contains(t, text, "Способ оплаты: наличные/безналичная оплата")
	assert.Contains(t, text, "Кассир: __________________   Дата: 10.03.2025")
	assert.Contains(t, text, "Спасибо за покупку!")
}

func TestBrief_Template(t *testing.T) {
	order := testOrder()
	order.TemplateImage = ptr("templates/ring_01.png")
	order.RequiredBy = ptr(time.Date(2025, time.April, 1, 18, 0, 0, 0, time.UTC))
	order.Thickness = dec("2")

	page := newTestBuilder().Brief(order, testCustomer(), &storage.Worker{Username: "modeler"})

	text := joined(page)
	assert.Contains(t, text, "ТЕХНИЧЕСКОЕ ЗАДАНИЕ")
	assert.Contains(t, text, "Заказ #15")
	assert.Contains(t, text, "10.03.2025 09:30")
	assert.Contains(t, text, "01.04.2025 18:00")
	assert.Contains(t, text, "modeler")
	assert.Contains(t, text, "Шаблонный")
	assert.Contains(t, text, "Золото 585")

	params := page.Section("parameters").Blocks[0].(KeyValue)
	assert.Equal(t, []Field{
		{Key: "Шаблон:", Value: "templates/ring_01.png"},
		{Key: "Размер кольца:", Value: "17"},
	}, params.Fields)

	assert.Nil(t, page.Section("comment"))
	assert.NotContains(t, text, "Email:")
	assert.Contains(t, text, "Подпись модельера")
}

func TestBrief_Custom(t *testing.T) {
	order := storage.Order{
		ID:            20,
		ProductType:   storage.ProductEarrings,
		OrderType:     storage.OrderCustom,
		Material:      "silver_925",
		Width:         dec("3.5"),
		StoneSize:     dec("0.5"),
		DesiredWeight: dec("4"),
		Comment:       "Без гравировки",
		CreatedAt:     time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	customer := testCustomer()
	customer.Email = "anna@example.com"

	page := newTestBuilder().Brief(order, customer, nil)

	params := page.Section("parameters").Blocks[0].(KeyValue)
	assert.Equal(t, []Field{
		{Key: "Ширина:", Value: "3.5 мм"},
		{Key: "Размер камня:", Value: "0.5 карат"},
		{Key: "Желаемый вес:", Value: "4 г"},
	}, params.Fields)

	text := joined(page)
	assert.Contains(t, text, "anna@example.com")
	assert.Contains(t, text, "5. ПОЖЕЛАНИЯ КЛИЕНТА")
	assert.Contains(t, text, "Без гравировки")
	assert.NotContains(t, text, "Исполнитель:")
	assert.Contains(t, text, "Требуемая дата готовности:\n—")
}

func TestBrief_NoParameters(t *testing.T) {
	order := storage.Order{ID: 21, ProductType: storage.ProductBrooch, OrderType: storage.OrderTemplate}

	page := newTestBuilder().Brief(order, nil, nil)

	params := page.Section("parameters")
	require.NotNil(t, params)
	assert.Equal(t, Paragraph{Text: "Параметры не указаны"}, params.Blocks[0])
	assert.Contains(t, joined(page), "Материал:\n—")
}

func TestReport(t *testing.T) {
	p, err := report.ParsePeriod("2025-03-01", "2025-03-31")
	require.NoError(t, err)

	orders := []storage.Order{
		{Status: storage.StatusReady, ProductType: storage.ProductRing, OrderType: storage.OrderTemplate,
			Budget: dec("1000"), CreatedAt: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.Local),
			Customer: &storage.Customer{Name: "Анна", Surname: "Иванова"}},
	}

	page := newTestBuilder().Report(p, report.Aggregate(orders, p.Start, p.End))

	text := joined(page)
	assert.Contains(t, text, "ОТЧЁТ О РАБОТЕ КОМПАНИИ")
	assert.Contains(t, text, "Период: 01.03.2025 - 31.03.2025")
	assert.Contains(t, text, "Дата формирования отчёта: 10.03.2025 09:30")
	assert.Contains(t, text, "1000.00 ₽")
	assert.Contains(t, text, "Готов")
	assert.Contains(t, text, "Кольца")
	assert.Contains(t, text, "Шаблонный")
	assert.Contains(t, text, "Анна Иванова")
	assert.Contains(t, text, "Отчёт сформирован автоматически системой CRM ООО «JEWEllUX»")
}

func TestReport_Empty(t *testing.T) {
	p, _ := report.ParsePeriod("2025-03-01", "2025-03-31")

	page := newTestBuilder().Report(p, report.Aggregate(nil, p.Start, p.End))

	general := page.Section("general").Blocks[0].(Table)
	assert.Equal(t, []string{"Всего заказов", "0"}, general.Rows[0])
	assert.Equal(t, []string{"Общая выручка", "0.00 ₽"}, general.Rows[1])
	assert.Equal(t, []string{"Средний чек", "0.00 ₽"}, general.Rows[2])
	assert.Empty(t, page.Section("statuses").Blocks[0].(Table).Rows)
	assert.Empty(t, page.Section("customers").Blocks[0].(Table).Rows)
}
