package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropyield/entities"
	"cropyield/pkg/field/controller"
	"cropyield/pkg/field/service"
	predictsvc "cropyield/pkg/predict/service"
	"cropyield/pkg/yield"
)

type FieldCtrl struct {
	fields  service.FieldService
	predict predictsvc.PredictService
}

func New(fields service.FieldService, predict predictsvc.PredictService) *FieldCtrl {
	return &FieldCtrl{fields: fields, predict: predict}
}

type createReq struct {
	Name string `json:"name"`
	yield.FieldObservation
}

func badParam(c echo.Context, err error) (bool, error) {
	var pe *yield.ParamError
	if errors.As(err, &pe) {
		return true, c.JSON(http.StatusBadRequest, map[string]string{"error": pe.Error(), "field": pe.Field})
	}
	return false, nil
}

func (h *FieldCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f, err := h.fields.CreateField(&entities.Field{Name: req.Name, FieldObservation: req.FieldObservation})
	if err != nil {
		if ok, rerr := badParam(c, err); ok {
			return rerr
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) find(c echo.Context) (*entities.Field, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	f, err := h.fields.GetFieldByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	if err != nil {
		return nil, c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return f, nil
}

func (h *FieldCtrl) Get(c echo.Context) error {
	f, err := h.find(c)
	if f == nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) List(c echo.Context) error {
	out, err := h.fields.ListFields(100)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldCtrl) Predict(c echo.Context) error {
	f, err := h.find(c)
	if f == nil {
		return err
	}
	p, err := h.predict.PredictField(c.Request().Context(), f)
	if err != nil {
		if ok, rerr := badParam(c, err); ok {
			return rerr
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

var _ controller.FieldController = (*FieldCtrl)(nil)
