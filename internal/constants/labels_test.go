package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"jewelry-crm/internal/storage"
)

func TestProductName(t *testing.T) {
	assert.Equal(t, "Кольцо", ProductName(storage.ProductRing))
	assert.Equal(t, "Серьги", ProductName(storage.ProductEarrings))
	assert.Equal(t, "Ювелирное изделие", ProductName("necklace"))
	assert.Equal(t, "ювелирного изделия", ProductNameGenitive(""))
}

func TestProductNamePlural(t *testing.T) {
	assert.Equal(t, "Браслеты", ProductNamePlural(storage.ProductBracelet))
	assert.Equal(t, "necklace", ProductNamePlural("necklace"))
	assert.Equal(t, "Не указано", ProductNamePlural(""))
}

func TestOrderTypeLabels(t *testing.T) {
	assert.Equal(t, "по шаблону", OrderTypeServiceName(storage.OrderTemplate))
	assert.Equal(t, "индивидуальное", OrderTypeServiceName(storage.OrderCustom))
	assert.Equal(t, "", OrderTypeServiceName(storage.OrderCollection))
	assert.Equal(t, "Индивидуальный", OrderTypeName(storage.OrderCustom))
	assert.Equal(t, "other", OrderTypeName("other"))
}

func TestMaterialName(t *testing.T) {
	assert.Equal(t, "Золото 585", MaterialName("gold_585"))
	assert.Equal(t, "Платина 950, бриллианты 1.2 ct", MaterialName("Платина 950, бриллианты 1.2 ct"))
	assert.Equal(t, "—", MaterialName(""))
}

func TestDocumentLabelAndPrefix(t *testing.T) {
	cases := []struct {
		kind   storage.DocumentKind
		label  string
		prefix string
	}{
		{storage.KindInvoice, "Счёт", "СЧ"},
		{storage.KindAct, "Акт", "АКТ"},
		{storage.KindContract, "Договор", "ДОГ"},
		{storage.KindReceipt, "Чек", "ЧЕК"},
		{"waybill", "Документ", "ДОК"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.label, DocumentLabel(tc.kind))
		assert.Equal(t, tc.prefix, DocumentPrefix(tc.kind))
	}
}
