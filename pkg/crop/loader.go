package crop

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Override is one "crop, param, value" row from a profile sheet.
type Override struct {
	Crop  string
	Param string
	Value string
	Src   string
}

var numericParams = map[string]func(*Profile, float64){
	"baseyield":       func(p *Profile, v float64) { p.BaseYield = v },
	"phoptimal":       func(p *Profile, v float64) { p.PHOptimal = v },
	"phmin":           func(p *Profile, v float64) { p.PHMin = v },
	"phmax":           func(p *Profile, v float64) { p.PHMax = v },
	"noptimal":        func(p *Profile, v float64) { p.NOptimal = v },
	"poptimal":        func(p *Profile, v float64) { p.POptimal = v },
	"koptimal":        func(p *Profile, v float64) { p.KOptimal = v },
	"nmin":            func(p *Profile, v float64) { p.NMin = v },
	"tempoptimal":     func(p *Profile, v float64) { p.TempOptimal = v },
	"tempmin":         func(p *Profile, v float64) { p.TempMin = v },
	"tempmax":         func(p *Profile, v float64) { p.TempMax = v },
	"rainfalloptimal": func(p *Profile, v float64) { p.RainfallOptimal = v },
	"rainfallmin":     func(p *Profile, v float64) { p.RainfallMin = v },
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// LoadFromFiles builds a table from the built-in profiles plus optional
// override sheets. Empty paths are skipped. Rows for an unknown crop add a
// new profile shaped like the default one; crop "default" edits the fallback.
func LoadFromFiles(profilesCSV, profilesXLSX string) (*Table, error) {
	var rows []Override
	if profilesCSV != "" {
		rs, err := readCSV(profilesCSV)
		if err != nil {
			return nil, fmt.Errorf("crop profiles csv: %w", err)
		}
		rows = append(rows, rs...)
	}
	if profilesXLSX != "" {
		rs, err := readXLSX(profilesXLSX)
		if err != nil {
			return nil, fmt.Errorf("crop profiles xlsx: %w", err)
		}
		rows = append(rows, rs...)
	}
	if len(rows) == 0 {
		return Default(), nil
	}
	return Apply(rows)
}

// Apply layers override rows on a fresh copy of the built-in profiles.
func Apply(rows []Override) (*Table, error) {
	byKey := map[string]*Profile{}
	order := []string{}
	for _, p := range builtin() {
		cp := p.clone()
		byKey[Key(p.Name)] = &cp
		order = append(order, Key(p.Name))
	}
	fb := generic.clone()

	for _, r := range rows {
		key := Key(r.Crop)
		if key == "" {
			continue
		}
		var p *Profile
		switch {
		case key == DefaultKey:
			p = &fb
		case byKey[key] != nil:
			p = byKey[key]
		default:
			np := generic.clone()
			np.Name = key
			byKey[key] = &np
			order = append(order, key)
			p = &np
		}
		if err := setParam(p, r.Param, r.Value); err != nil {
			return nil, fmt.Errorf("%s: crop %q: %w", r.Src, r.Crop, err)
		}
	}

	ps := make([]Profile, 0, len(order))
	for _, k := range order {
		if err := check(*byKey[k]); err != nil {
			return nil, err
		}
		ps = append(ps, *byKey[k])
	}
	if err := check(fb); err != nil {
		return nil, err
	}
	return newTable(ps, fb), nil
}

func setParam(p *Profile, param, value string) error {
	param = strings.TrimSpace(param)
	value = strings.TrimSpace(value)
	n := norm(param)

	switch {
	case n == "class":
		p.Class = Class(Key(value))
		return nil
	case n == "rules" || n == "specialrules":
		p.Rules = nil
		for _, s := range strings.Split(value, "|") {
			s = Key(s)
			if s == "" {
				continue
			}
			if r := Rule(s); r != RuleHeatStressSensitive && r != RuleDrainageSensitive {
				return fmt.Errorf("param %s: unknown rule %q", param, s)
			}
			p.Rules = append(p.Rules, Rule(s))
		}
		return nil
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("param %s: bad number %q", param, value)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("param %s: %q is not a finite number", param, value)
	}
	if set, ok := numericParams[n]; ok {
		set(p, v)
		return nil
	}
	// soil.<type> / irrigation.<type>
	if i := strings.IndexByte(param, '.'); i > 0 {
		kind, name := norm(param[:i]), Key(param[i+1:])
		switch kind {
		case "soil":
			p.SoilMultiplier[SoilType(name)] = v
			return nil
		case "irrigation":
			p.IrrigationBonus[IrrigationType(name)] = v
			return nil
		}
	}
	return fmt.Errorf("unknown param %q", param)
}

// check rejects profiles whose optima would divide by zero in the penalty
// curves, non-finite constants and negative soil or irrigation multipliers.
func check(p Profile) error {
	pos := map[string]float64{
		"baseYield": p.BaseYield, "nOptimal": p.NOptimal, "pOptimal": p.POptimal,
		"kOptimal": p.KOptimal, "tempOptimal": p.TempOptimal, "rainfallOptimal": p.RainfallOptimal,
	}
	for name, v := range pos {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("crop %q: %s must be a finite number > 0, got %v", p.Name, name, v)
		}
	}
	finite := map[string]float64{
		"phOptimal": p.PHOptimal, "phMin": p.PHMin, "phMax": p.PHMax, "nMin": p.NMin,
		"tempMin": p.TempMin, "tempMax": p.TempMax, "rainfallMin": p.RainfallMin,
	}
	for name, v := range finite {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("crop %q: %s must be finite, got %v", p.Name, name, v)
		}
	}
	for s, v := range p.SoilMultiplier {
		if !(v >= 0) || math.IsInf(v, 0) {
			return fmt.Errorf("crop %q: soil.%s must be a finite number >= 0, got %v", p.Name, s, v)
		}
	}
	for i, v := range p.IrrigationBonus {
		if !(v >= 0) || math.IsInf(v, 0) {
			return fmt.Errorf("crop %q: irrigation.%s must be a finite number >= 0, got %v", p.Name, i, v)
		}
	}
	if p.PHMin > p.PHMax {
		return fmt.Errorf("crop %q: phMin %v > phMax %v", p.Name, p.PHMin, p.PHMax)
	}
	if p.TempMin > p.TempMax {
		return fmt.Errorf("crop %q: tempMin %v > tempMax %v", p.Name, p.TempMin, p.TempMax)
	}
	return nil
}

// header resolves the crop/param/value columns, accepting a few aliases.
func header(head []string) (cCrop, cParam, cVal int, err error) {
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}
	cCrop = findAny("crop", "crop_type", "croptype")
	cParam = findAny("param", "field", "parameter", "key")
	cVal = findAny("value", "val")
	if cCrop == -1 || cParam == -1 || cVal == -1 {
		return 0, 0, 0, fmt.Errorf("missing required columns, found headers: %v; need crop, param, value", head)
	}
	return cCrop, cParam, cVal, nil
}

func toRows(src string, head []string, recs [][]string) ([]Override, error) {
	cCrop, cParam, cVal, err := header(head)
	if err != nil {
		return nil, err
	}
	out := make([]Override, 0, len(recs))
	for _, rec := range recs {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return rec[idx]
		}
		if strings.TrimSpace(get(cCrop)) == "" && strings.TrimSpace(get(cParam)) == "" {
			continue
		}
		out = append(out, Override{Crop: get(cCrop), Param: get(cParam), Value: get(cVal), Src: src})
	}
	return out, nil
}

func readCSV(path string) ([]Override, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if err != nil {
		return nil, err
	}
	var recs [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		recs = append(recs, rec)
	}
	return toRows(path, head, recs)
}

// readXLSX reads the "profiles" sheet, or the first sheet when it is absent.
func readXLSX(path string) ([]Override, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheet := "profiles"
	if idx, err := x.GetSheetIndex(sheet); err != nil || idx == -1 {
		sheet = x.GetSheetName(0)
	}
	all, err := x.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, errors.New("empty sheet " + sheet)
	}
	return toRows(path+"#"+sheet, all[0], all[1:])
}
