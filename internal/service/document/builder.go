package document

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"jewelry-crm/internal/config"
	"jewelry-crm/internal/constants"
	"jewelry-crm/internal/storage"
)

const (
	dateLayout     = "02.01.2006"
	dateTimeLayout = "02.01.2006 15:04"
	signLine       = "__________________"
)

var ErrNoCustomer = errors.New("у заказа нет клиента")

// Builder собирает страницы документов. Реквизиты компании и банка передаются явно.
type Builder struct {
	company config.Company
	bank    config.Bank
	now     func() time.Time
}

func NewBuilder(company config.Company, bank config.Bank) *Builder {
	return &Builder{company: company, bank: bank, now: time.Now}
}

// WithClock подменяет источник текущего времени (дата ТЗ, чека и отчёта).
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// serviceName: «Изготовление Кольцо по шаблону»; для неизвестного типа заказа хвост отбрасывается.
func serviceName(order storage.Order) string {
	return strings.TrimSpace(fmt.Sprintf("Изготовление %s %s",
		constants.ProductName(order.ProductType), constants.OrderTypeServiceName(order.OrderType)))
}

func itemsTable(order storage.Order, price decimal.Decimal) Table {
	amount := FormatMoney(price)
	return Table{
		Columns: []Column{
			{Title: "№", Width: 0.06, Align: AlignCenter},
			{Title: "Наименование работ, услуг", Width: 0.44, Align: AlignLeft},
			{Title: "Кол-во", Width: 0.11, Align: AlignCenter},
			{Title: "Ед.", Width: 0.08, Align: AlignCenter},
			{Title: "Цена", Width: 0.155, Align: AlignCenter},
			{Title: "Сумма", Width: 0.155, Align: AlignCenter},
		},
		Rows:     [][]string{{"1", serviceName(order), "1", "шт.", amount, amount}},
		Bordered: true,
	}
}

func (b *Builder) companyLine() string {
	return fmt.Sprintf("ИНН %s, КПП %s, %s", b.company.INN, b.company.KPP, b.company.Address)
}

// formatDateLong: «05» марта 2025 г.
func formatDateLong(t time.Time) string {
	return fmt.Sprintf("«%02d» %s %d г.", t.Day(), constants.MonthsGenitive[t.Month()-1], t.Year())
}

func formatOptionalDate(t *time.Time, layout string) string {
	if t == nil {
		return constants.Placeholder
	}
	return t.Format(layout)
}

func requireCustomer(customer *storage.Customer) (storage.Customer, error) {
	if customer == nil {
		return storage.Customer{}, ErrNoCustomer
	}
	return *customer, nil
}

func spacer(h float64) Spacer {
	return Spacer{Height: h}
}
