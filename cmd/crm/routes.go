package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	docexport "jewelry-crm/http-server/document/export"
	docsave "jewelry-crm/http-server/document/save"
	"jewelry-crm/http-server/order/collection"
	"jewelry-crm/http-server/order/update"
	"jewelry-crm/http-server/pricing/estimate"
	reportexport "jewelry-crm/http-server/report/export"
	reportget "jewelry-crm/http-server/report/get"
	workersget "jewelry-crm/http-server/workers/get"
	"jewelry-crm/internal/config"
	"jewelry-crm/internal/middleware/auth"
	"jewelry-crm/internal/service/document"
	"jewelry-crm/internal/service/pricing"
	"jewelry-crm/internal/service/report"
	"jewelry-crm/internal/service/report/excel"
)

type services struct {
	prices    *pricing.PriceService
	reports   *report.Service
	excel     *excel.GenerateExcelService
	documents *document.Service
	workers   workersget.Workers
}

func routes(cfg config.Config, log *slog.Logger, svc services) http.Handler {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// форма заказа на сайте
	router.Post("/api/pricing/estimate", estimate.EstimatePrice(log, svc.prices))
	router.Post("/api/collection/{product_id}/orders", collection.CreatePreOrder(log, svc.prices))

	managerRouter := chi.NewRouter()
	managerRouter.Use(auth.BasicAuth(log, cfg.ManagerLogin, cfg.ManagerPass))

	managerRouter.Get("/workers", workersget.GetWorkers(log, svc.workers))
	managerRouter.Put("/orders/{id}/price", update.UpdateOrderPrice(log, svc.prices))
	managerRouter.Post("/orders/{id}/documents", docsave.SaveDocument(log, svc.documents))
	managerRouter.Get("/orders/{id}/brief", docexport.ExportBrief(log, svc.documents))
	managerRouter.Get("/documents/{id}/pdf", docexport.ExportDocument(log, svc.documents))

	managerRouter.Get("/report", reportget.GetReport(log, svc.reports))
	managerRouter.Get("/report/pdf", reportexport.ExportReportPDF(log, svc.documents))
	managerRouter.Get("/report/excel", reportexport.ExportReportExcel(log, svc.excel))

	router.Mount("/api/manager", managerRouter)

	return router
}
