package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"jewelry-crm/internal/storage"
)

type Workers interface {
	GetWorkers(ctx context.Context, role string) ([]storage.Worker, error)
}

// GetWorkers: сотрудники для назначения на заказ, ?role=modeler сужает список.
func GetWorkers(log *slog.Logger, worker Workers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.GetWorkers"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		workers, err := worker.GetWorkers(ctx, r.URL.Query().Get("role"))
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении сотрудников")
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, workers)
	}
}
