package serviceImp

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"cropyield/entities"
)

const exportSheet = "predictions"

var exportHeader = []any{
	"prediction_id", "created_at", "crop_type", "profile", "soil_type", "irrigation_type", "region",
	"yield_tons_ha", "confidence", "fallback", "limiting_factors", "recommendations",
}

// ExportXLSX lays the prediction log out as one row per prediction. The
// caller owns the returned file and must Close it.
func ExportXLSX(logs []entities.PredictionLog) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		f.Close()
		return nil, err
	}
	for i, l := range logs {
		factors := make([]string, 0, len(l.Factors))
		for _, fc := range l.Factors {
			factors = append(factors, fmt.Sprintf("%s (%s)", fc.Name.Label(), fc.Impact))
		}
		row := []any{
			l.PredictionID, l.CreatedAt.Format("2006-01-02 15:04:05"), l.CropType, l.Profile,
			l.SoilType, l.IrrigationType, l.Region,
			l.YieldEstimate, l.Confidence, l.Fallback,
			strings.Join(factors, "; "), strings.Join(l.Recommendations, "\n"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
