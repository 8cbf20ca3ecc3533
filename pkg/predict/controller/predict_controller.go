package controller

import "github.com/labstack/echo/v4"

type PredictController interface {
	Predict(c echo.Context) error
	PredictBatch(c echo.Context) error
	Recent(c echo.Context) error
	Export(c echo.Context) error
	Crops(c echo.Context) error
	Crop(c echo.Context) error
	Defaults(c echo.Context) error
}
