package services

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
)

const specSheet = "Label Spec"

// buildSpecWorkbook renders an approved spec into a two-sheet workbook:
// the bilingual field grid and the medicinal ingredient table.
func buildSpecWorkbook(bundle labelspec.SpecWithContent) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(specSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	c := bundle.Content
	rows := [][]any{
		{"Field", "EN", "FR"},
		{"Product ID", bundle.Spec.ProductID, ""},
		{"Version", strconv.Itoa(bundle.Spec.Version), ""},
		{"Status", string(bundle.Spec.Status), ""},
		{"Product Name", c.ProductNameEN, c.ProductNameFR},
		{"Claim", c.ClaimEN, c.ClaimFR},
		{"Directions", c.DirectionsEN, c.DirectionsFR},
		{"Warning", c.WarningEN, c.WarningFR},
		{"Duration", deref(c.DurationEN), deref(c.DurationFR)},
		{"Storage", deref(c.StorageEN), deref(c.StorageFR)},
		{"Company", deref(c.CompanyBlockEN), deref(c.CompanyBlockFR)},
		{"Website", deref(c.Website), ""},
		{"Made In", deref(c.MadeIn), ""},
		{"Distributed By", deref(c.DistributedBy), ""},
		{"NPN", deref(c.NPN), ""},
		{"Dosage Form", c.DosageForm, ""},
		{"Non-medicinal", deref(c.NonMedicinalEN), deref(c.NonMedicinalFR)},
		{"Batch ID", deref(c.BatchID), ""},
		{"Batch Date", formatDate(c.BatchDate), ""},
		{"Lot Number", deref(c.LotNumber), ""},
		{"Expiry Date", formatDate(c.ExpiryDate), ""},
		{"CoA File", deref(c.CoAFileName), deref(c.CoAFilePath)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(specSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const medicinalSheet = "Medicinal Ingredients"
	if _, err := f.NewSheet(medicinalSheet); err != nil {
		return nil, err
	}
	header := []any{"Name EN", "Name FR", "Part", "Extract Ratio", "Strength (mg)", "Per Serving", "Claim Ref"}
	if err := f.SetSheetRow(medicinalSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, item := range c.Medicinal {
		strength := ""
		if item.StrengthMG != nil {
			strength = item.StrengthMG.String()
		}
		row := []any{
			item.NameEN,
			item.NameFR,
			deref(item.Part),
			deref(item.ExtractRatio),
			strength,
			deref(item.PerServing),
			deref(item.ClaimReferenceID),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(medicinalSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatDate(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format("2006-01-02")
}
