package collection

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jewelry-crm/internal/service/pricing"
	"jewelry-crm/internal/storage"
)

type MockPreOrderCreator struct {
	mock.Mock
}

func (m *MockPreOrderCreator) CreateCollectionOrder(ctx context.Context, productID, customerID int64, ringSize, comment string) (*storage.Order, error) {
	args := m.Called(ctx, productID, customerID, ringSize, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Order), args.Error(1)
}

func serve(creator PreOrderCreator, productID, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/api/collection/{product_id}/orders", CreatePreOrder(slog.Default(), creator))

	req := httptest.NewRequest(http.MethodPost, "/api/collection/"+productID+"/orders", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreatePreOrder_Success(t *testing.T) {
	creator := new(MockPreOrderCreator)
	price := decimal.NewFromInt(385000)
	creator.On("CreateCollectionOrder", mock.Anything, int64(1), int64(42), "17", "к юбилею").
		Return(&storage.Order{ID: 100, Status: storage.StatusNew, EstimatedPrice: &price}, nil)

	rr := serve(creator, "1", `{"customer_id":42,"ring_size":"17","comment":"к юбилею"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"order_id":100,"order_status":"new","estimated_price":"385000.00"}`, rr.Body.String())
	creator.AssertExpectations(t)
}

func TestCreatePreOrder_Validation(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		body      string
	}{
		{name: "bad product id", productID: "x", body: `{"customer_id":1}`},
		{name: "bad json", productID: "1", body: `{"customer_id":`},
		{name: "no customer", productID: "1", body: `{"ring_size":"17"}`},
		{name: "long ring size", productID: "1", body: `{"customer_id":1,"ring_size":"12345678901"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := new(MockPreOrderCreator)

			rr := serve(creator, tt.productID, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			creator.AssertNotCalled(t, "CreateCollectionOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreatePreOrder_UnknownProduct(t *testing.T) {
	creator := new(MockPreOrderCreator)
	creator.On("CreateCollectionOrder", mock.Anything, int64(99), int64(1), "", "").
		Return(nil, pricing.ErrUnknownCollectionID)

	rr := serve(creator, "99", `{"customer_id":1}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreatePreOrder_StorageError(t *testing.T) {
	creator := new(MockPreOrderCreator)
	creator.On("CreateCollectionOrder", mock.Anything, int64(2), int64(1), "", "").
		Return(nil, errors.New("db down"))

	rr := serve(creator, "2", `{"customer_id":1}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Ошибка создания заказа")
}
