package router

import (
	"github.com/labstack/echo/v4"
)

type PredictRoutes interface {
	Predict(echo.Context) error
	PredictBatch(echo.Context) error
	Recent(echo.Context) error
	Export(echo.Context) error
	Crops(echo.Context) error
	Crop(echo.Context) error
	Defaults(echo.Context) error
}

type FieldRoutes interface {
	Create(echo.Context) error
	Get(echo.Context) error
	List(echo.Context) error
	Predict(echo.Context) error
}

type KBRoutes interface {
	IngestText(echo.Context) error
	IngestURL(echo.Context) error
	Search(echo.Context) error
}

type HealthRoutes interface {
	Health(echo.Context) error
}

// Controllers groups the HTTP handlers. Field and KB are nil when persistence
// is disabled and their routes are then not registered.
type Controllers struct {
	Predict PredictRoutes
	Field   FieldRoutes
	KB      KBRoutes
	Health  HealthRoutes
}

func New(e *echo.Echo, c Controllers) *echo.Echo {
	if c.Health != nil {
		e.GET("/health", c.Health.Health)
	}

	if c.Predict != nil {
		e.POST("/predict", c.Predict.Predict)
		e.POST("/predict/batch", c.Predict.PredictBatch)
		e.GET("/predict/defaults", c.Predict.Defaults)
		e.GET("/predictions", c.Predict.Recent)
		e.GET("/predictions/export", c.Predict.Export)
		e.GET("/crops", c.Predict.Crops)
		e.GET("/crops/:crop", c.Predict.Crop)
	}

	if c.Field != nil {
		g := e.Group("/fields")
		g.POST("", c.Field.Create)
		g.GET("", c.Field.List)
		g.GET("/:id", c.Field.Get)
		g.POST("/:id/predict", c.Field.Predict)
	}

	if c.KB != nil {
		api := e.Group("/kb")
		api.POST("/ingest", c.KB.IngestText)
		api.POST("/ingest/url", c.KB.IngestURL)
		api.GET("/search", c.KB.Search)
	}
	return e
}
