package document

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"jewelry-crm/internal/service/report"
	"jewelry-crm/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetOrderByID(ctx context.Context, id int64) (*storage.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Order), args.Error(1)
}

func (m *MockStorage) GetCustomerByID(ctx context.Context, id int64) (*storage.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Customer), args.Error(1)
}

func (m *MockStorage) GetWorkerByID(ctx context.Context, id int64) (*storage.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Worker), args.Error(1)
}

func (m *MockStorage) GetDocumentByID(ctx context.Context, id int64) (*storage.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Document), args.Error(1)
}

func (m *MockStorage) SaveDocument(ctx context.Context, doc storage.Document) (int64, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(int64), args.Error(1)
}

type MockReports struct {
	mock.Mock
}

func (m *MockReports) Build(ctx context.Context, p report.Period) (report.Data, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(report.Data), args.Error(1)
}

// recordingBackend запоминает последнюю отрисованную страницу.
type recordingBackend struct {
	page *Page
	err  error
}

func (b *recordingBackend) Render(page *Page) ([]byte, error) {
	b.page = page
	if b.err != nil {
		return nil, b.err
	}
	return []byte("%PDF-test"), nil
}

func newTestService(st Storage, reports ReportSource, backend Backend) *Service {
	return NewService(slog.Default(), st, reports, newTestBuilder(), backend).
		WithClock(func() time.Time { return fixedNow })
}

func TestRender_ByKind(t *testing.T) {
	tests := []struct {
		kind     storage.DocumentKind
		pageKind string
		filename string
	}{
		{storage.KindInvoice, "invoice", "Счёт_N-1.pdf"},
		{storage.KindAct, "act", "Акт_N-1.pdf"},
		{storage.KindContract, "contract", "Договор_N-1.pdf"},
		{storage.KindReceipt, "receipt", "Чек_N-1.pdf"},
		{"waybill", "invoice", "Документ_N-1.pdf"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			backend := &recordingBackend{}
			svc := newTestService(new(MockStorage), new(MockReports), backend)

			doc := testDocument(tt.kind)
			doc.Number = "N-1"

			art, err := svc.Render(testOrder(), testCustomer(), doc)
			require.NoError(t, err)

			assert.Equal(t, tt.filename, art.Filename)
			assert.Equal(t, ContentTypePDF, art.ContentType)
			assert.Equal(t, []byte("%PDF-test"), art.Data)
			assert.Equal(t, tt.pageKind, backend.page.Kind)
		})
	}
}

func TestRender_BackendError(t *testing.T) {
	svc := newTestService(new(MockStorage), new(MockReports), &recordingBackend{err: errors.New("font")})

	_, err := svc.Render(testOrder(), testCustomer(), testDocument(storage.KindInvoice))
	assert.Error(t, err)
}

func TestExportDocument(t *testing.T) {
	st := new(MockStorage)
	backend := &recordingBackend{}
	svc := newTestService(st, new(MockReports), backend)

	order := testOrder()
	order.CustomerID = ptr(int64(3))
	doc := testDocument(storage.KindAct)

	st.On("GetDocumentByID", mock.Anything, int64(9)).Return(&doc, nil)
	st.On("GetOrderByID", mock.Anything, int64(15)).Return(&order, nil)
	st.On("GetCustomerByID", mock.Anything, int64(3)).Return(testCustomer(), nil)

	art, err := svc.ExportDocument(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, "Акт_СЧ-15-20250305120000.pdf", art.Filename)
	assert.Equal(t, "act", backend.page.Kind)
	st.AssertExpectations(t)
	st.AssertNotCalled(t, "GetWorkerByID", mock.Anything, mock.Anything)
}

func TestExportDocument_NotFound(t *testing.T) {
	st := new(MockStorage)
	svc := newTestService(st, new(MockReports), &recordingBackend{})

	st.On("GetDocumentByID", mock.Anything, int64(1)).Return(nil, storage.ErrDocumentNotFound)

	_, err := svc.ExportDocument(context.Background(), 1)
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestExportDocument_NoCustomer(t *testing.T) {
	st := new(MockStorage)
	svc := newTestService(st, new(MockReports), &recordingBackend{})

	order := testOrder()
	doc := testDocument(storage.KindInvoice)
	st.On("GetDocumentByID", mock.Anything, int64(9)).Return(&doc, nil)
	st.On("GetOrderByID", mock.Anything, int64(15)).Return(&order, nil)

	_, err := svc.ExportDocument(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNoCustomer)
}

func TestExportBrief(t *testing.T) {
	st := new(MockStorage)
	backend := &recordingBackend{}
	svc := newTestService(st, new(MockReports), backend)

	order := testOrder()
	order.CustomerID = ptr(int64(3))
	order.WorkerID = ptr(int64(8))

	st.On("GetOrderByID", mock.Anything, int64(15)).Return(&order, nil)
	st.On("GetCustomerByID", mock.Anything, int64(3)).Return(testCustomer(), nil)
	st.On("GetWorkerByID", mock.Anything, int64(8)).Return(nil, storage.ErrWorkerNotFound)

	art, err := svc.ExportBrief(context.Background(), 15)

	require.NoError(t, err)
	assert.Equal(t, "ТЗ_Заказ_15_20250310.pdf", art.Filename)
	assert.Equal(t, "brief", backend.page.Kind)
	assert.Contains(t, joined(backend.page), "Анна Иванова")
	assert.NotContains(t, joined(backend.page), "Исполнитель:")
}

func TestExportBrief_CustomerError(t *testing.T) {
	st := new(MockStorage)
	svc := newTestService(st, new(MockReports), &recordingBackend{})

	order := testOrder()
	order.CustomerID = ptr(int64(3))
	st.On("GetOrderByID", mock.Anything, int64(15)).Return(&order, nil)
	st.On("GetCustomerByID", mock.Anything, int64(3)).Return(nil, storage.ErrCustomerNotFound)

	_, err := svc.ExportBrief(context.Background(), 15)
	assert.ErrorIs(t, err, storage.ErrCustomerNotFound)
}

func TestExportReport(t *testing.T) {
	reports := new(MockReports)
	backend := &recordingBackend{}
	svc := newTestService(new(MockStorage), reports, backend)

	p, err := report.ParsePeriod("2025-03-01", "2025-03-31")
	require.NoError(t, err)
	reports.On("Build", mock.Anything, p).Return(report.Aggregate(nil, p.Start, p.End), nil)

	art, err := svc.ExportReport(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, "Отчёт_01.03.2025-31.03.2025.pdf", art.Filename)
	assert.Equal(t, "report", backend.page.Kind)
}

func TestCreateDocument_Defaults(t *testing.T) {
	st := new(MockStorage)
	svc := newTestService(st, new(MockReports), &recordingBackend{})

	order := testOrder()
	st.On("GetOrderByID", mock.Anything, int64(15)).Return(&order, nil)
	st.On("SaveDocument", mock.Anything, mock.MatchedBy(func(d storage.Document) bool {
		return d.Number == "СЧ-15-20250310093000" && d.Amount.String() == "48195" && d.Date.Equal(fixedNow)
	})).Return(int64(31), nil)

	doc, err := svc.CreateDocument(context.Background(), 15, NewDocument{Kind: storage.KindInvoice})

	require.NoError(t, err)
	assert.Equal(t, int64(31), doc.ID)
	assert.Equal(t, int64(15), doc.OrderID)
	st.AssertExpectations(t)
}

func TestCreateDocument_Explicit(t *testing.T) {
	st := new(MockStorage)
	svc := newTestService(st, new(MockReports), &recordingBackend{})

	order := testOrder()
	date := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	st.On("GetOrderByID", mock.Anything, int64(15)).Return(&order, nil)
	st.On("SaveDocument", mock.Anything, mock.MatchedBy(func(d storage.Document) bool {
		return d.Number == "Д-7" && d.Amount.String() == "100" && d.Date.Equal(date) && d.Description == "аванс"
	})).Return(int64(2), nil)

	_, err := svc.CreateDocument(context.Background(), 15, NewDocument{
		Kind: storage.KindContract, Number: "Д-7", Date: &date, Amount: dec("100"), Description: "аванс",
	})

	require.NoError(t, err)
	st.AssertExpectations(t)
}

func TestCreateDocument_DuplicateNumber(t *testing.T) {
	st := new(MockStorage)
	svc := newTestService(st, new(MockReports), &recordingBackend{})

	order := testOrder()
	st.On("GetOrderByID", mock.Anything, int64(15)).Return(&order, nil)
	st.On("SaveDocument", mock.Anything, mock.Anything).Return(int64(0), storage.ErrDocumentNumberExists)

	_, err := svc.CreateDocument(context.Background(), 15, NewDocument{Kind: storage.KindInvoice, Number: "dup"})
	assert.ErrorIs(t, err, storage.ErrDocumentNumberExists)
}
