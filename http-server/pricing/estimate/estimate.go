package estimate

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/shopspring/decimal"
	"jewelry-crm/internal/storage"
)

type Estimator interface {
	Estimate(order storage.Order) (decimal.Decimal, bool)
}

// Request: параметры изделия из формы заказа, до сохранения.
type Request struct {
	ProductType   storage.ProductType `json:"product_type"`
	OrderType     storage.OrderType   `json:"order_type"`
	Material      string              `json:"material"`
	TemplateImage *string             `json:"template_image"`
	RingSize      Measure             `json:"ring_size"`
	Thickness     Measure             `json:"thickness"`
	Width         Measure             `json:"width"`
	StoneSize     Measure             `json:"stone_size"`
	DesiredWeight Measure             `json:"desired_weight"`
}

// Measure: размер или вес из формы. Приходит числом или строкой,
// нечисловое значение не ошибка запроса, а отсутствие оценки.
type Measure struct {
	text string
	set  bool
}

func (m *Measure) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Measure{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		*m = Measure{text: s, set: s != ""}
		return nil
	}

	*m = Measure{text: string(data), set: true}
	return nil
}

func (m Measure) Text() *string {
	if !m.set {
		return nil
	}
	s := m.text
	return &s
}

// Decimal возвращает false, если значение задано, но не является числом.
func (m Measure) Decimal() (*decimal.Decimal, bool) {
	if !m.set {
		return nil, true
	}
	d, err := decimal.NewFromString(m.text)
	if err != nil {
		return nil, false
	}
	return &d, true
}

// Numeric: все заданные размеры и вес являются числами. Размер кольца проверяет сам расчёт.
func (r Request) Numeric() bool {
	for _, m := range []Measure{r.Thickness, r.Width, r.StoneSize, r.DesiredWeight} {
		if _, ok := m.Decimal(); !ok {
			return false
		}
	}
	return true
}

type Response struct {
	EstimatedPrice *string `json:"estimated_price"`
}

// Order собирает заказ для расчёта. Нечисловые поля отбрасываются, поэтому сначала проверяется Numeric.
func (r Request) Order() storage.Order {
	thickness, _ := r.Thickness.Decimal()
	width, _ := r.Width.Decimal()
	stoneSize, _ := r.StoneSize.Decimal()
	weight, _ := r.DesiredWeight.Decimal()

	return storage.Order{
		ProductType:   r.ProductType,
		OrderType:     r.OrderType,
		Material:      r.Material,
		TemplateImage: r.TemplateImage,
		RingSize:      r.RingSize.Text(),
		Thickness:     thickness,
		Width:         width,
		StoneSize:     stoneSize,
		DesiredWeight: weight,
	}
}

// EstimatePrice считает предварительную цену. Если данных не хватает, estimated_price = null.
func EstimatePrice(log *slog.Logger, est Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.pricing.EstimatePrice"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		var resp Response
		if !req.Numeric() {
			log.Debug("нечисловые размеры, оценка невозможна", slog.String("op", op))
			render.JSON(w, r, resp)
			return
		}

		price, ok := est.Estimate(req.Order())
		if ok {
			s := price.StringFixed(2)
			resp.EstimatedPrice = &s
		}

		log.Debug("оценка стоимости",
			slog.String("op", op),
			slog.String("order_type", string(req.OrderType)),
			slog.Bool("estimated", ok),
		)

		render.JSON(w, r, resp)
	}
}
