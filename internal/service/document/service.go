package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"jewelry-crm/internal/service/report"
	"jewelry-crm/internal/storage"
)

// Backend отрисовывает страницу в итоговый формат (PDF).
type Backend interface {
	Render(page *Page) ([]byte, error)
}

type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Storage interface {
	GetOrderByID(ctx context.Context, id int64) (*storage.Order, error)
	GetCustomerByID(ctx context.Context, id int64) (*storage.Customer, error)
	GetWorkerByID(ctx context.Context, id int64) (*storage.Worker, error)
	GetDocumentByID(ctx context.Context, id int64) (*storage.Document, error)
	SaveDocument(ctx context.Context, doc storage.Document) (int64, error)
}

type ReportSource interface {
	Build(ctx context.Context, p report.Period) (report.Data, error)
}

// NewDocument: данные менеджера для нового документа; пустые поля заполняются по заказу.
type NewDocument struct {
	Kind        storage.DocumentKind
	Number      string
	Date        *time.Time
	Amount      *decimal.Decimal
	Description string
	CreatedByID *int64
}

type Service struct {
	log     *slog.Logger
	storage Storage
	reports ReportSource
	builder *Builder
	backend Backend
	now     func() time.Time
}

func NewService(log *slog.Logger, storage Storage, reports ReportSource, builder *Builder, backend Backend) *Service {
	return &Service{
		log:     log,
		storage: storage,
		reports: reports,
		builder: builder,
		backend: backend,
		now:     time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	s.builder.WithClock(now)
	return s
}

// Render печатает документ по его виду. Неизвестный вид печатается макетом счёта.
func (s *Service) Render(order storage.Order, customer *storage.Customer, doc storage.Document) (Artifact, error) {
	const op = "document.Service.Render"

	var (
		page *Page
		err  error
	)

	switch doc.Kind {
	case storage.KindAct:
		page, err = s.builder.Act(order, customer, doc)
	case storage.KindContract:
		page, err = s.builder.Contract(order, customer, doc)
	case storage.KindReceipt:
		page, err = s.builder.Receipt(order, customer, doc)
	case storage.KindInvoice:
		page, err = s.builder.Invoice(order, customer, doc)
	default:
		// TODO: отклонять неизвестный вид после миграции старых записей documents на четыре вида
		s.log.Warn("неизвестный вид документа, используется макет счёта",
			slog.String("op", op), slog.String("kind", string(doc.Kind)), slog.String("number", doc.Number))
		page, err = s.builder.Invoice(order, customer, doc)
	}
	if err != nil {
		return Artifact{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.artifact(page, Filename(doc.Kind, doc.Number))
}

func (s *Service) RenderBrief(order storage.Order, customer *storage.Customer, worker *storage.Worker) (Artifact, error) {
	return s.artifact(s.builder.Brief(order, customer, worker), BriefFilename(order.ID, s.now()))
}

func (s *Service) RenderReport(p report.Period, data report.Data) (Artifact, error) {
	return s.artifact(s.builder.Report(p, data), ReportFilename(p, "pdf"))
}

func (s *Service) ExportDocument(ctx context.Context, documentID int64) (Artifact, error) {
	const op = "document.Service.ExportDocument"

	doc, err := s.storage.GetDocumentByID(ctx, documentID)
	if err != nil {
		return Artifact{}, fmt.Errorf("%s: ошибка получения документа: %w", op, err)
	}

	order, customer, _, err := s.loadOrder(ctx, doc.OrderID, false)
	if err != nil {
		return Artifact{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.Render(*order, customer, *doc)
}

func (s *Service) ExportBrief(ctx context.Context, orderID int64) (Artifact, error) {
	const op = "document.Service.ExportBrief"

	order, customer, worker, err := s.loadOrder(ctx, orderID, true)
	if err != nil {
		return Artifact{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.RenderBrief(*order, customer, worker)
}

func (s *Service) ExportReport(ctx context.Context, p report.Period) (Artifact, error) {
	const op = "document.Service.ExportReport"

	data, err := s.reports.Build(ctx, p)
	if err != nil {
		return Artifact{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.RenderReport(p, data)
}

// CreateDocument сохраняет документ по заказу. Номер, дата и сумма по умолчанию берутся из заказа.
func (s *Service) CreateDocument(ctx context.Context, orderID int64, in NewDocument) (*storage.Document, error) {
	const op = "document.Service.CreateDocument"

	order, err := s.storage.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения заказа: %w", op, err)
	}

	now := s.now()
	doc := storage.Document{
		OrderID:     order.ID,
		Kind:        in.Kind,
		Number:      in.Number,
		Date:        now,
		Amount:      in.Amount,
		Description: in.Description,
		CreatedByID: in.CreatedByID,
	}
	if doc.Number == "" {
		doc.Number = NewNumber(in.Kind, order.ID, now)
	}
	if in.Date != nil {
		doc.Date = *in.Date
	}
	if doc.Amount == nil {
		doc.Amount = DefaultAmount(*order)
	}

	id, err := s.storage.SaveDocument(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка сохранения документа: %w", op, err)
	}
	doc.ID = id

	s.log.Info("документ создан", slog.String("op", op),
		slog.Int64("order_id", order.ID), slog.String("number", doc.Number))

	return &doc, nil
}

// loadOrder загружает заказ, затем параллельно клиента и исполнителя.
// Отсутствующий исполнитель не считается ошибкой.
func (s *Service) loadOrder(ctx context.Context, orderID int64, withWorker bool) (*storage.Order, *storage.Customer, *storage.Worker, error) {
	order, err := s.storage.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("ошибка получения заказа: %w", err)
	}

	var (
		customer *storage.Customer
		worker   *storage.Worker
	)

	g, gctx := errgroup.WithContext(ctx)

	if order.CustomerID != nil {
		g.Go(func() error {
			c, err := s.storage.GetCustomerByID(gctx, *order.CustomerID)
			if err != nil {
				return fmt.Errorf("ошибка получения клиента: %w", err)
			}
			customer = c
			return nil
		})
	}

	if withWorker && order.WorkerID != nil {
		g.Go(func() error {
			w, err := s.storage.GetWorkerByID(gctx, *order.WorkerID)
			if errors.Is(err, storage.ErrWorkerNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("ошибка получения исполнителя: %w", err)
			}
			worker = w
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	return order, customer, worker, nil
}

func (s *Service) artifact(page *Page, filename string) (Artifact, error) {
	data, err := s.backend.Render(page)
	if err != nil {
		return Artifact{}, fmt.Errorf("ошибка формирования PDF: %w", err)
	}
	return Artifact{Filename: filename, ContentType: ContentTypePDF, Data: data}, nil
}
