package router

import (
	"os"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/Alijeyrad/cardioai/config"
	"github.com/Alijeyrad/cardioai/internal/api/http/handler"
	"github.com/Alijeyrad/cardioai/internal/service/forecast"
	"github.com/Alijeyrad/cardioai/internal/service/patient"
)

type DashboardParams struct {
	fx.In

	Cfg         *config.Config
	PatientSvc  patient.Service
	ForecastSvc forecast.Service
}

// Dashboard serves the patient registry and forecast charts.
type Dashboard struct {
	p DashboardParams
}

func NewDashboard(p DashboardParams) *Dashboard {
	return &Dashboard{p: p}
}

func (r *Dashboard) Register(app *fiber.App) {
	registerSystemRoutes(app, r.p.Cfg, r.referenceReadable)

	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	forecastH := handler.NewForecastHandler(r.p.ForecastSvc)

	api := app.Group("/api/v1")
	api.Get("/fields", patientH.Fields)

	patients := api.Group("/patients")
	patients.Get("/", patientH.List)
	patients.Post("/", patientH.Create)
	patients.Post("/export", patientH.Export)
	patients.Get("/export.xlsx", patientH.ExportSpreadsheet)

	fc := api.Group("/forecast")
	fc.Post("/complications", forecastH.Complications)
	fc.Post("/fatal-outcome", forecastH.FatalOutcome)
}

// referenceReadable reports whether a fatal-outcome forecast can be served.
func (r *Dashboard) referenceReadable() bool {
	path := r.p.Cfg.Dashboard.ReferencePath
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
