package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"jewelry-crm/internal/constants"
	"jewelry-crm/internal/storage"
)

const topCustomersLimit = 5

// Group описывает строку разбивки: код значения, отображаемое название и число заказов.
type Group struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type CustomerStat struct {
	Name       string          `json:"name"`
	Surname    string          `json:"surname"`
	Orders     int             `json:"count"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

func (c CustomerStat) FullName() string {
	return storage.Customer{Name: c.Name, Surname: c.Surname}.FullName()
}

type Data struct {
	TotalOrders    int             `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	AvgOrderValue  decimal.Decimal `json:"avg_order_value"`
	StatusStats    []Group         `json:"status_stats"`
	ProductStats   []Group         `json:"product_stats"`
	OrderTypeStats []Group         `json:"order_type_stats"`
	TopCustomers   []CustomerStat  `json:"top_customers"`
}

// Aggregate сводит заказы, созданные в период [start, end], в статистику отчёта.
// Выручка считается по бюджету заказа, пустой бюджет равен нулю.
// При равном числе заказов группы и клиенты идут в порядке первого появления во входном срезе.
func Aggregate(orders []storage.Order, start, end time.Time) Data {
	period := Period{Start: start, End: end}

	data := Data{
		TotalRevenue:   decimal.Zero,
		AvgOrderValue:  decimal.Zero,
		StatusStats:    []Group{},
		ProductStats:   []Group{},
		OrderTypeStats: []Group{},
		TopCustomers:   []CustomerStat{},
	}

	statuses := newCounter()
	products := newCounter()
	orderTypes := newCounter()

	var customers []*CustomerStat
	customerIdx := make(map[[2]string]*CustomerStat)

	for _, o := range orders {
		if !period.Contains(o.CreatedAt) {
			continue
		}

		budget := decimal.Zero
		if o.Budget != nil {
			budget = *o.Budget
		}

		data.TotalOrders++
		data.TotalRevenue = data.TotalRevenue.Add(budget)

		statuses.add(string(o.Status), constants.StatusName(o.Status))
		products.add(string(o.ProductType), constants.ProductNamePlural(o.ProductType))
		orderTypes.add(string(o.OrderType), constants.OrderTypeName(o.OrderType))

		if o.Customer == nil {
			continue
		}
		key := [2]string{o.Customer.Name, o.Customer.Surname}
		stat, ok := customerIdx[key]
		if !ok {
			stat = &CustomerStat{Name: o.Customer.Name, Surname: o.Customer.Surname, TotalSpent: decimal.Zero}
			customerIdx[key] = stat
			customers = append(customers, stat)
		}
		stat.Orders++
		stat.TotalSpent = stat.TotalSpent.Add(budget)
	}

	if data.TotalOrders > 0 {
		data.AvgOrderValue = data.TotalRevenue.DivRound(decimal.NewFromInt(int64(data.TotalOrders)), 2)
	}

	data.StatusStats = statuses.sorted()
	data.ProductStats = products.sorted()
	data.OrderTypeStats = orderTypes.sorted()

	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].Orders > customers[j].Orders
	})
	for i, c := range customers {
		if i == topCustomersLimit {
			break
		}
		data.TopCustomers = append(data.TopCustomers, *c)
	}

	return data
}

type counter struct {
	groups []Group
	index  map[string]int
}

func newCounter() *counter {
	return &counter{groups: []Group{}, index: make(map[string]int)}
}

func (c *counter) add(key, label string) {
	if i, ok := c.index[key]; ok {
		c.groups[i].Count++
		return
	}
	c.index[key] = len(c.groups)
	c.groups = append(c.groups, Group{Key: key, Label: label, Count: 1})
}

func (c *counter) sorted() []Group {
	sort.SliceStable(c.groups, func(i, j int) bool {
		return c.groups[i].Count > c.groups[j].Count
	})
	return c.groups
}
