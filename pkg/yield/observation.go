package yield

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldObservation is the caller-supplied description of one field. The
// numeric readings are pointers so a missing value is told apart from a
// measured zero; every one of them is required.
type FieldObservation struct {
	CropType       string   `json:"cropType" validate:"required"`
	SoilType       string   `json:"soilType" validate:"required"`
	SoilPH         *float64 `json:"soilPH" validate:"required,finite,gte=0,lte=14"`
	Nitrogen       *float64 `json:"nitrogen" validate:"required,finite,gte=0"`
	Phosphorus     *float64 `json:"phosphorus" validate:"required,finite,gte=0"`
	Potassium      *float64 `json:"potassium" validate:"required,finite,gte=0"`
	Temperature    *float64 `json:"temperature" validate:"required,finite"`
	Rainfall       *float64 `json:"rainfall" validate:"required,finite,gte=0"`
	IrrigationType string   `json:"irrigationType" validate:"required"`
	Region         string   `json:"region"`
}

// Float returns a pointer to v, for building observations in code.
func Float(v float64) *float64 { return &v }

// Reading is the numeric part of an observation after validation.
type Reading struct {
	SoilPH      float64
	Nitrogen    float64
	Phosphorus  float64
	Potassium   float64
	Temperature float64
	Rainfall    float64
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Reading flattens the numeric fields. Call it on validated observations
// only: a missing value reads as 0.
func (o FieldObservation) Reading() Reading {
	return Reading{
		SoilPH:      deref(o.SoilPH),
		Nitrogen:    deref(o.Nitrogen),
		Phosphorus:  deref(o.Phosphorus),
		Potassium:   deref(o.Potassium),
		Temperature: deref(o.Temperature),
		Rainfall:    deref(o.Rainfall),
	}
}

// DefaultObservation returns the values a blank input form starts with.
func DefaultObservation() FieldObservation {
	return FieldObservation{
		CropType:       "corn",
		SoilType:       "loam",
		SoilPH:         Float(6.5),
		Nitrogen:       Float(150),
		Phosphorus:     Float(60),
		Potassium:      Float(120),
		Temperature:    Float(25),
		Rainfall:       Float(800),
		IrrigationType: "drip",
		Region:         "midwest",
	}
}

// ErrInvalidParameter is matched by every *ParamError.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError names the observation field that failed validation.
type ParamError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// Validate returns a *ParamError for the first field that is missing,
// non-finite or outside its physical range.
func (o FieldObservation) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate observation: %w", err)
	}
	fe := verrs[0]
	v := fe.Value()
	if fp, ok := v.(*float64); ok {
		v = nil
		if fp != nil {
			v = *fp
		}
	}
	return &ParamError{Field: fe.Field(), Value: v, Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "finite":
		return "must be a finite number"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	}
	return "failed " + fe.Tag()
}
