package export

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"jewelry-crm/internal/lib/api"
	"jewelry-crm/internal/service/document"
	"jewelry-crm/internal/storage"
)

type DocumentExporter interface {
	ExportDocument(ctx context.Context, documentID int64) (document.Artifact, error)
	ExportBrief(ctx context.Context, orderID int64) (document.Artifact, error)
}

// ExportDocument отдаёт PDF документа: макет выбирается по виду документа.
func ExportDocument(log *slog.Logger, exporter DocumentExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.document.ExportDocument"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		artifact, err := exporter.ExportDocument(ctx, id)
		if err != nil {
			writeError(w, log, op, err)
			return
		}

		send(w, log, op, artifact)
	}
}

// ExportBrief отдаёт техническое задание модельеру по заказу.
func ExportBrief(log *slog.Logger, exporter DocumentExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.document.ExportBrief"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		artifact, err := exporter.ExportBrief(ctx, id)
		if err != nil {
			writeError(w, log, op, err)
			return
		}

		send(w, log, op, artifact)
	}
}

func writeError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, storage.ErrDocumentNotFound):
		http.Error(w, "Документ не найден", http.StatusNotFound)
	case errors.Is(err, storage.ErrOrderNotFound):
		http.Error(w, "Заказ не найден", http.StatusNotFound)
	case errors.Is(err, document.ErrNoCustomer), errors.Is(err, storage.ErrCustomerNotFound):
		http.Error(w, "У заказа нет клиента", http.StatusUnprocessableEntity)
	default:
		log.Error("failed to render document", slog.String("op", op), slog.String("error", err.Error()))
		http.Error(w, "Ошибка формирования документа", http.StatusInternalServerError)
	}
}

func send(w http.ResponseWriter, log *slog.Logger, op string, a document.Artifact) {
	if err := api.WriteAttachment(w, a.Filename, a.ContentType, a.Data); err != nil {
		log.Error("failed to write file", slog.String("op", op), slog.String("error", err.Error()))
	}
}
