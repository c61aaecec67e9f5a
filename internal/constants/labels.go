package constants

import "jewelry-crm/internal/storage"

// Единый источник отображаемых названий для документов, ТЗ и отчётов.
var (
	// изделия
	ProductNames = map[storage.ProductType]string{
		storage.ProductRing:     "Кольцо",
		storage.ProductBrooch:   "Брошь",
		storage.ProductBracelet: "Браслет",
		storage.ProductEarrings: "Серьги",
	}

	// родительный падеж, для договора
	ProductNamesGenitive = map[storage.ProductType]string{
		storage.ProductRing:     "кольца",
		storage.ProductBrooch:   "броши",
		storage.ProductBracelet: "браслета",
		storage.ProductEarrings: "серег",
	}

	// множественное число, для отчёта
	ProductNamesPlural = map[storage.ProductType]string{
		storage.ProductRing:     "Кольца",
		storage.ProductBrooch:   "Броши",
		storage.ProductBracelet: "Браслеты",
		storage.ProductEarrings: "Серьги",
	}

	// типы заказа
	OrderTypeService = map[storage.OrderType]string{
		storage.OrderTemplate: "по шаблону",
		storage.OrderCustom:   "индивидуальное",
	}

	OrderTypeNames = map[storage.OrderType]string{
		storage.OrderTemplate:   "Шаблонный",
		storage.OrderCustom:     "Индивидуальный",
		storage.OrderCollection: "Предзаказ",
	}

	// материалы
	MaterialNames = map[string]string{
		"gold_585":   "Золото 585",
		"gold_750":   "Золото 750",
		"silver_925": "Серебро 925",
		"platinum":   "Платина",
	}

	// статусы
	StatusNames = map[storage.OrderStatus]string{
		storage.StatusNew:       "Новый",
		storage.StatusConfirmed: "Подтверждён",
		storage.StatusInWork:    "В работе",
		storage.StatusReady:     "Готов",
		storage.StatusDelivered: "Доставлен",
	}

	// документы
	DocumentLabels = map[storage.DocumentKind]string{
		storage.KindInvoice:  "Счёт",
		storage.KindAct:      "Акт",
		storage.KindContract: "Договор",
		storage.KindReceipt:  "Чек",
	}

	DocumentPrefixes = map[storage.DocumentKind]string{
		storage.KindInvoice:  "СЧ",
		storage.KindReceipt:  "ЧЕК",
		storage.KindAct:      "АКТ",
		storage.KindContract: "ДОГ",
	}

	MonthsGenitive = [...]string{
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	}
)

const (
	DefaultProductName         = "Ювелирное изделие"
	DefaultProductNameGenitive = "ювелирного изделия"
	DefaultDocumentLabel       = "Документ"
	DefaultDocumentPrefix      = "ДОК"
	UnknownValue               = "Не указано"
	Placeholder                = "—"
)

func ProductName(t storage.ProductType) string {
	if name, ok := ProductNames[t]; ok {
		return name
	}
	return DefaultProductName
}

func ProductNameGenitive(t storage.ProductType) string {
	if name, ok := ProductNamesGenitive[t]; ok {
		return name
	}
	return DefaultProductNameGenitive
}

// ProductNamePlural возвращает исходный код типа, если он не из справочника.
func ProductNamePlural(t storage.ProductType) string {
	if name, ok := ProductNamesPlural[t]; ok {
		return name
	}
	if t == "" {
		return UnknownValue
	}
	return string(t)
}

func OrderTypeServiceName(t storage.OrderType) string {
	return OrderTypeService[t]
}

func OrderTypeName(t storage.OrderType) string {
	if name, ok := OrderTypeNames[t]; ok {
		return name
	}
	return string(t)
}

// MaterialName для заказов из коллекции материал, свободный текст и выводится как есть.
func MaterialName(m string) string {
	if name, ok := MaterialNames[m]; ok {
		return name
	}
	if m == "" {
		return Placeholder
	}
	return m
}

func StatusName(s storage.OrderStatus) string {
	if name, ok := StatusNames[s]; ok {
		return name
	}
	return string(s)
}

func DocumentLabel(k storage.DocumentKind) string {
	if label, ok := DocumentLabels[k]; ok {
		return label
	}
	return DefaultDocumentLabel
}

func DocumentPrefix(k storage.DocumentKind) string {
	if prefix, ok := DocumentPrefixes[k]; ok {
		return prefix
	}
	return DefaultDocumentPrefix
}

// OrDash подставляет прочерк вместо пустого значения.
func OrDash(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
