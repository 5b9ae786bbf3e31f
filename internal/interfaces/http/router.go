package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Careplus-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReceptionistUC *usecase.ReceptionistUseCase
	RosterUC       *usecase.RosterUseCase
	DB             Pinger
	AppName        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", NewHealthHandler(deps.DB, deps.AppName).Check)

	api := app.Group("/api")

	// Receptionists (público; el login no emite token)
	receptionists := api.Group("/receptionists")
	handler := NewReceptionistHandler(deps.ReceptionistUC, deps.RosterUC)
	receptionists.Post("/login", handler.Login)
	receptionists.Get("/", handler.List)
	// Rutas fijas antes de /:id
	receptionists.Get("/search", handler.Search)
	receptionists.Get("/export/pdf", handler.ExportPDF)
	receptionists.Get("/:id", handler.GetByID)
	receptionists.Post("/", handler.Create)
	receptionists.Put("/:id", handler.Update)
	receptionists.Delete("/:id", handler.Delete)
}
