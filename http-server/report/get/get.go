package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"jewelry-crm/internal/service/report"
)

type ReportBuilder interface {
	Build(ctx context.Context, p report.Period) (report.Data, error)
}

type Response struct {
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	PeriodDays int         `json:"period_days"`
	Report     report.Data `json:"report_data"`
}

// GetReport: сводный отчёт по заказам за период ?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD.
func GetReport(log *slog.Logger, builder ReportBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GetReport"

		q := r.URL.Query()
		period, err := report.ParsePeriod(q.Get("start_date"), q.Get("end_date"))
		if err != nil {
			if errors.Is(err, report.ErrInvalidDate) {
				http.Error(w, report.ErrInvalidDate.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		data, err := builder.Build(ctx, period)
		if err != nil {
			log.Error("failed to build report", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка формирования отчёта", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			StartDate:  period.Start.Format(report.DateLayout),
			EndDate:    period.End.Format(report.DateLayout),
			PeriodDays: period.Days(),
			Report:     data,
		})
	}
}
