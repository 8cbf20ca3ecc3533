package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"cropyield/pkg/crop"
	"cropyield/pkg/predict/controller"
	"cropyield/pkg/predict/service"
	"cropyield/pkg/predict/serviceImp"
	"cropyield/pkg/yield"
)

const (
	defaultRecent = 50
	maxRecent     = 500
	maxBatch      = 200
)

type PredictCtrl struct {
	svc   service.PredictService
	table *crop.Table
}

var _ controller.PredictController = (*PredictCtrl)(nil)

func New(svc service.PredictService, table *crop.Table) *PredictCtrl {
	return &PredictCtrl{svc: svc, table: table}
}

// paramErrorJSON renders a validation failure, or returns false when err is
// some other failure.
func paramErrorJSON(c echo.Context, err error) (bool, error) {
	var pe *yield.ParamError
	if !errors.As(err, &pe) {
		return false, nil
	}
	return true, c.JSON(http.StatusBadRequest, echo.Map{"error": pe.Error(), "field": pe.Field})
}

func (h *PredictCtrl) Predict(c echo.Context) error {
	var in yield.FieldObservation
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	p, err := h.svc.Predict(c.Request().Context(), in)
	if err != nil {
		if ok, rerr := paramErrorJSON(c, err); ok {
			return rerr
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PredictCtrl) PredictBatch(c echo.Context) error {
	var body struct {
		Observations []yield.FieldObservation `json:"observations"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if len(body.Observations) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "observations required"})
	}
	if len(body.Observations) > maxBatch {
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "too many observations, max " + strconv.Itoa(maxBatch)})
	}
	items := h.svc.PredictBatch(c.Request().Context(), body.Observations)
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *PredictCtrl) Recent(c echo.Context) error {
	limit := defaultRecent
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
		}
		limit = min(n, maxRecent)
	}
	out, err := h.svc.Recent(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PredictCtrl) Export(c echo.Context) error {
	logs, err := h.svc.Recent(c.Request().Context(), maxRecent)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	f, err := serviceImp.ExportXLSX(logs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	defer f.Close()

	name := "predictions-" + time.Now().UTC().Format("20060102") + ".xlsx"
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	res.WriteHeader(http.StatusOK)
	_, err = f.WriteTo(res)
	return err
}

func (h *PredictCtrl) Crops(c echo.Context) error {
	names := h.table.Crops()
	out := make([]crop.Profile, 0, len(names))
	for _, n := range names {
		out = append(out, h.table.ProfileFor(n))
	}
	return c.JSON(http.StatusOK, echo.Map{"crops": out, "default": h.table.Fallback()})
}

func (h *PredictCtrl) Crop(c echo.Context) error {
	p, ok := h.table.Lookup(c.Param("crop"))
	return c.JSON(http.StatusOK, echo.Map{"profile": p, "fallback": !ok})
}

func (h *PredictCtrl) Defaults(c echo.Context) error {
	return c.JSON(http.StatusOK, yield.DefaultObservation())
}
