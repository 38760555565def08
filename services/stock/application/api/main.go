package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shelfwatch/pkg/app"
	"github.com/ghuser/shelfwatch/services/stock/application/handlers"
	appsvcs "github.com/ghuser/shelfwatch/services/stock/application/services"
)

// StockRoutes registers stock endpoints on the provided chi router.
func StockRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/stock", func(r chi.Router) {
			get := handlers.NewGetStockHandler(svcs)
			urgency := handlers.NewUrgencyHandler(svcs)

			r.Get("/", get.List)
			r.Post("/", handlers.NewPostStockHandler(svcs).Execute)
			r.Get("/urgency", urgency.Report)
			r.Post("/urgency/ack", urgency.Acknowledge)
			r.Get("/{id}", get.GetByID)
			r.Put("/{id}", handlers.NewPutStockHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteStockHandler(svcs).Execute)
		})
		r.Route("/names", func(r chi.Router) {
			names := handlers.NewNamesHandler(svcs)

			r.Get("/", names.List)
			r.Post("/", names.Save)
			r.Post("/import", handlers.NewImportNamesHandler(svcs).Execute)
			r.Delete("/{key}", names.Delete)
		})
		r.Post("/suggestions", handlers.NewSuggestionsHandler(svcs).Execute)
	})
}
