package export

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"jewelry-crm/internal/lib/api"
	"jewelry-crm/internal/service/document"
	"jewelry-crm/internal/service/report"
)

type PDFExporter interface {
	ExportReport(ctx context.Context, p report.Period) (document.Artifact, error)
}

type ExcelGenerator interface {
	GenerateExcel(ctx context.Context, p report.Period) ([]byte, error)
}

func ExportReportPDF(log *slog.Logger, exporter PDFExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.ExportReportPDF"

		period, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		artifact, err := exporter.ExportReport(ctx, period)
		if err != nil {
			log.Error("failed to generate pdf", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка формирования отчёта", http.StatusInternalServerError)
			return
		}

		if err := api.WriteAttachment(w, artifact.Filename, artifact.ContentType, artifact.Data); err != nil {
			log.Error("failed to write file", slog.String("op", op), slog.String("error", err.Error()))
		}
	}
}

func ExportReportExcel(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.ExportReportExcel"

		period, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		// На Excel времени больше: выгружается весь список заказов
		ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateExcel(ctx, period)
		if err != nil {
			log.Error("failed to generate excel", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка формирования отчёта", http.StatusInternalServerError)
			return
		}

		filename := document.ReportFilename(period, "xlsx")
		if err := api.WriteAttachment(w, filename, document.ContentTypeXLSX, excelBytes); err != nil {
			log.Error("failed to write file", slog.String("op", op), slog.String("error", err.Error()))
		}
	}
}

func parsePeriod(w http.ResponseWriter, r *http.Request) (report.Period, bool) {
	q := r.URL.Query()
	period, err := report.ParsePeriod(q.Get("start_date"), q.Get("end_date"))
	switch {
	case errors.Is(err, report.ErrInvalidDate):
		http.Error(w, report.ErrInvalidDate.Error(), http.StatusBadRequest)
		return report.Period{}, false
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return report.Period{}, false
	}
	return period, true
}
