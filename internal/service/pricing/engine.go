package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
	"jewelry-crm/internal/config"
	"jewelry-crm/internal/storage"
)

// Table хранит тарифы расчёта: цену материала за грамм, коэффициенты сложности,
// долю трудозатрат и коэффициент шаблонного изделия.
type Table struct {
	Materials           map[string]decimal.Decimal
	Complexity          map[storage.ProductType]decimal.Decimal
	LaborRate           decimal.Decimal
	TemplateCoefficient decimal.Decimal
}

var (
	defaultRingSize       = decimal.NewFromInt(17)
	ringWeightPerSize     = decimal.RequireFromString("0.4")
	minRingWeight         = decimal.NewFromInt(2)
	defaultCustomWeight   = decimal.NewFromInt(5)
	defaultTemplateWeight = decimal.NewFromInt(3)

	// примерный вес шаблонных изделий, г
	templateWeights = map[storage.ProductType]decimal.Decimal{
		storage.ProductBrooch:   decimal.NewFromInt(8),
		storage.ProductBracelet: decimal.NewFromInt(12),
		storage.ProductEarrings: decimal.NewFromInt(2),
	}
)

func DefaultTable() Table {
	return Table{
		Materials: map[string]decimal.Decimal{
			"gold_585":   decimal.NewFromInt(3500),
			"gold_750":   decimal.NewFromInt(4200),
			"silver_925": decimal.NewFromInt(45),
			"platinum":   decimal.NewFromInt(8500),
		},
		Complexity: map[storage.ProductType]decimal.Decimal{
			storage.ProductRing:     decimal.NewFromInt(1),
			storage.ProductBrooch:   decimal.RequireFromString("1.3"),
			storage.ProductBracelet: decimal.RequireFromString("1.1"),
			storage.ProductEarrings: decimal.RequireFromString("0.9"),
		},
		LaborRate:           decimal.RequireFromString("0.35"),
		TemplateCoefficient: decimal.RequireFromString("1.5"),
	}
}

// TableFromConfig накладывает тарифы из конфига поверх стандартной таблицы.
func TableFromConfig(cfg config.Pricing) Table {
	t := DefaultTable()

	for material, price := range cfg.Materials {
		t.Materials[material] = decimal.NewFromFloat(price)
	}
	for product, k := range cfg.Complexity {
		t.Complexity[storage.ProductType(product)] = decimal.NewFromFloat(k)
	}
	if cfg.LaborRate > 0 {
		t.LaborRate = decimal.NewFromFloat(cfg.LaborRate)
	}
	if cfg.TemplateCoefficient > 0 {
		t.TemplateCoefficient = decimal.NewFromFloat(cfg.TemplateCoefficient)
	}

	return t
}

type Engine struct {
	table Table
}

func NewEngine(table Table) *Engine {
	return &Engine{table: table}
}

// Estimate считает предварительную цену заказа.
// ok == false означает «недостаточно данных для оценки», а не ошибку.
func (e *Engine) Estimate(order storage.Order) (decimal.Decimal, bool) {
	if order.Material == "" || order.ProductType == "" {
		return decimal.Zero, false
	}

	materialPrice, ok := e.table.Materials[order.Material]
	if !ok || !materialPrice.IsPositive() {
		return decimal.Zero, false
	}

	complexity, ok := e.table.Complexity[order.ProductType]
	if !ok {
		complexity = decimal.NewFromInt(1)
	}

	var baseCost decimal.Decimal
	switch order.OrderType {
	case storage.OrderTemplate:
		weight, ok := templateWeight(order)
		if !ok {
			return decimal.Zero, false
		}
		baseCost = weight.Mul(materialPrice).Mul(e.table.TemplateCoefficient)
	case storage.OrderCustom:
		weight := defaultCustomWeight
		if order.DesiredWeight != nil {
			weight = *order.DesiredWeight
		}
		if !weight.IsPositive() {
			return decimal.Zero, false
		}
		baseCost = weight.Mul(materialPrice)
	default:
		return decimal.Zero, false
	}

	price := baseCost.Mul(complexity).Mul(decimal.NewFromInt(1).Add(e.table.LaborRate))

	return price.Round(2), true
}

// Apply пересчитывает EstimatedPrice заказа. Если оценка невозможна, прежнее значение сохраняется.
func (e *Engine) Apply(order *storage.Order) bool {
	price, ok := e.Estimate(*order)
	if !ok {
		return false
	}
	order.EstimatedPrice = &price
	return true
}

func templateWeight(order storage.Order) (decimal.Decimal, bool) {
	if order.ProductType != storage.ProductRing {
		if w, ok := templateWeights[order.ProductType]; ok {
			return w, true
		}
		return defaultTemplateWeight, true
	}

	size := defaultRingSize
	if order.RingSize != nil && strings.TrimSpace(*order.RingSize) != "" {
		parsed, err := decimal.NewFromString(strings.TrimSpace(*order.RingSize))
		if err != nil {
			return decimal.Zero, false
		}
		size = parsed
	}

	return decimal.Max(minRingWeight, size.Mul(ringWeightPerSize)), true
}
