package router

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/Alijeyrad/cardioai/config"
	"github.com/Alijeyrad/cardioai/internal/api/http/handler"
	"github.com/Alijeyrad/cardioai/internal/service/prediction"
)

type PredictionParams struct {
	fx.In

	Cfg           *config.Config
	PredictionSvc prediction.Service
}

// Prediction serves the model scoring API.
type Prediction struct {
	p PredictionParams
}

func NewPrediction(p PredictionParams) *Prediction {
	return &Prediction{p: p}
}

func (r *Prediction) Register(app *fiber.App) {
	registerSystemRoutes(app, r.p.Cfg, nil)

	homeH := handler.NewHomeHandler()
	predictionH := handler.NewPredictionHandler(r.p.PredictionSvc)

	app.Get("/", homeH.Hello)
	app.Get("/bye", homeH.Bye)

	v1 := app.Group("/v1")
	v1.Post("/miokard/predict", predictionH.Predict)
}
