package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropyield/pkg/crop"
	"cropyield/pkg/predict/serviceImp"
	"cropyield/pkg/yield"
)

func newCtrl() *PredictCtrl {
	svc := serviceImp.NewPredictService(crop.Default(), yield.FixedNoise(0.5), nil, nil, nil, 2)
	return New(svc, crop.Default())
}

func do(t *testing.T, h echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		_ = json.Unmarshal(rec.Body.Bytes(), &out)
	}
	return rec, out
}

func TestPredictHandler(t *testing.T) {
	body := `{"cropType":"corn","soilType":"loam","soilPH":6.5,"nitrogen":150,"phosphorus":60,
		"potassium":120,"temperature":25,"rainfall":800,"irrigationType":"drip"}`
	rec, out := do(t, newCtrl().Predict, http.MethodPost, "/predict", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 11.59, out["yieldEstimate"], 1e-9)
	assert.Equal(t, 90.0, out["confidence"])
	assert.Equal(t, "tons/ha", out["unit"])
	assert.Equal(t, []any{}, out["limitingFactors"])
	assert.Len(t, out["recommendations"], 1)
}

func TestPredictHandlerRejects(t *testing.T) {
	rec, out := do(t, newCtrl().Predict, http.MethodPost, "/predict",
		`{"cropType":"corn","soilType":"loam","soilPH":15,"irrigationType":"drip"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "soilPH", out["field"])

	rec, _ = do(t, newCtrl().Predict, http.MethodPost, "/predict", `{"cropType":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredictHandlerMissingReading(t *testing.T) {
	body := `{"cropType":"corn","soilType":"loam","nitrogen":150,"phosphorus":60,
		"potassium":120,"temperature":25,"rainfall":800,"irrigationType":"drip"}`
	rec, out := do(t, newCtrl().Predict, http.MethodPost, "/predict", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "soilPH", out["field"])

	zero := `{"cropType":"corn","soilType":"loam","soilPH":6.5,"nitrogen":0,"phosphorus":0,
		"potassium":0,"temperature":0,"rainfall":0,"irrigationType":"drip"}`
	rec, _ = do(t, newCtrl().Predict, http.MethodPost, "/predict", zero)
	assert.Equal(t, http.StatusOK, rec.Code, "measured zeros are valid readings")
}

func TestPredictBatchHandler(t *testing.T) {
	rec, _ := do(t, newCtrl().PredictBatch, http.MethodPost, "/predict/batch", `{"observations":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	obs := `{"cropType":"melon","soilType":"clay","soilPH":6.5,"nitrogen":150,"phosphorus":60,"potassium":120,"temperature":25,"rainfall":800,"irrigationType":"drip"}`
	bad := `{"cropType":"corn","soilType":"loam","soilPH":6.5,"nitrogen":-1,"irrigationType":"drip"}`
	rec, out := do(t, newCtrl().PredictBatch, http.MethodPost, "/predict/batch", `{"observations":[`+obs+`,`+bad+`]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	items := out["items"].([]any)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.InDelta(t, 27.43, first["prediction"].(map[string]any)["yieldEstimate"], 1e-9)
	second := items[1].(map[string]any)
	assert.Equal(t, "nitrogen", second["field"])
	assert.Nil(t, second["prediction"])

	many := "[" + strings.TrimSuffix(strings.Repeat(obs+",", maxBatch+1), ",") + "]"
	rec, _ = do(t, newCtrl().PredictBatch, http.MethodPost, "/predict/batch", `{"observations":`+many+`}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRecentHandler(t *testing.T) {
	rec, _ := do(t, newCtrl().Recent, http.MethodGet, "/predictions?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, newCtrl().Recent, http.MethodGet, "/predictions?limit=5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestExportHandler(t *testing.T) {
	rec, _ := do(t, newCtrl().Export, http.MethodGet, "/predictions/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), ".xlsx")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"), "xlsx is a zip archive")
}

func TestCropsHandlers(t *testing.T) {
	rec, out := do(t, newCtrl().Crops, http.MethodGet, "/crops", "")
	require.Equal(t, http.StatusOK, rec.Code)
	crops := out["crops"].([]any)
	assert.Len(t, crops, crop.Default().Len())
	assert.Equal(t, "default", out["default"].(map[string]any)["name"])

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/crops/barley", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("crop")
	c.SetParamValues("barley")
	require.NoError(t, newCtrl().Crop(c))
	assert.Contains(t, rec.Body.String(), `"fallback":true`)

	rec, out = do(t, newCtrl().Defaults, http.MethodGet, "/predict/defaults", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "corn", out["cropType"])
}
