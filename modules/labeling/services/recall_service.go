package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
)

// RecallReportRow is one traceable batch of an approved spec. Only specs
// with a recorded lot number appear; without a lot there is nothing a
// recall could reference.
type RecallReportRow struct {
	SpecID        uuid.UUID  `json:"spec_id"`
	ProductID     string     `json:"product_id"`
	Version       int        `json:"version"`
	ProductNameEN string     `json:"product_name_en"`
	ProductNameFR string     `json:"product_name_fr"`
	BatchID       *string    `json:"batch_id,omitempty"`
	BatchDate     *time.Time `json:"batch_date,omitempty"`
	LotNumber     string     `json:"lot_number"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	CoAFileName   *string    `json:"coa_file_name,omitempty"`
	CoAFilePath   *string    `json:"coa_file_path,omitempty"`
	QAApprovedAt  *time.Time `json:"qa_approved_at,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
}

// RecallReportService assembles batch traceability reports across every
// approved spec of a product.
type RecallReportService struct {
	repo labelspec.Repository
}

func NewRecallReportService(repo labelspec.Repository) *RecallReportService {
	return &RecallReportService{repo: repo}
}

// Generate returns one row per approved spec of the product that carries a
// lot number, newest version first as delivered by the repository.
func (s *RecallReportService) Generate(ctx context.Context, productID string) ([]RecallReportRow, error) {
	bundles, err := s.repo.QueryApprovedWithContent(ctx, productID)
	if err != nil {
		return nil, err
	}

	rows := make([]RecallReportRow, 0, len(bundles))
	for _, bundle := range bundles {
		c := bundle.Content
		if c == nil || c.LotNumber == nil || *c.LotNumber == "" {
			continue
		}
		rows = append(rows, RecallReportRow{
			SpecID:        bundle.Spec.ID,
			ProductID:     bundle.Spec.ProductID,
			Version:       bundle.Spec.Version,
			ProductNameEN: c.ProductNameEN,
			ProductNameFR: c.ProductNameFR,
			BatchID:       c.BatchID,
			BatchDate:     c.BatchDate,
			LotNumber:     *c.LotNumber,
			ExpiryDate:    c.ExpiryDate,
			CoAFileName:   c.CoAFileName,
			CoAFilePath:   c.CoAFilePath,
			QAApprovedAt:  bundle.Spec.QAApprovedAt,
			ApprovedAt:    bundle.Spec.ApprovedAt,
		})
	}
	return rows, nil
}

// GenerateXLSX writes the recall rows into a single-sheet workbook for
// regulators and distributors.
func (s *RecallReportService) GenerateXLSX(ctx context.Context, productID string) ([]byte, error) {
	rows, err := s.Generate(ctx, productID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Recall Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []any{
		"Product ID", "Version", "Product Name (EN)", "Product Name (FR)",
		"Batch ID", "Batch Date", "Lot Number", "Expiry Date",
		"CoA File", "QA Approved At", "Approved At",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		record := []any{
			row.ProductID,
			row.Version,
			row.ProductNameEN,
			row.ProductNameFR,
			deref(row.BatchID),
			formatDate(row.BatchDate),
			row.LotNumber,
			formatDate(row.ExpiryDate),
			deref(row.CoAFileName),
			formatTimestamp(row.QAApprovedAt),
			formatTimestamp(row.ApprovedAt),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatTimestamp(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format(time.RFC3339)
}
